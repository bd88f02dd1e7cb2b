package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
)

const defaultFigureColor = "white"

// FigureSizes returns the fraction of the row (or column) given to each of
// n figures. Without weights every figure gets 1/n.
func FigureSizes(n int, weights []float64) ([]float64, error) {
	if n == 0 {
		return nil, errors.New("no figures")
	}

	sizes := make([]float64, n)
	if weights == nil {
		for i := range sizes {
			sizes[i] = 1.0 / float64(n)
		}
		return sizes, nil
	}

	if len(weights) != n {
		return nil, fmt.Errorf("got %d weights for %d figures", len(weights), n)
	}

	var total float64
	for _, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("negative weight %v", w)
		}
		total += w
	}
	if total == 0 {
		return nil, errors.New("weights sum to zero")
	}

	for i, w := range weights {
		sizes[i] = w / total
	}
	return sizes, nil
}

// Figures returns a table laying out images side by side, or stacked
// vertically when opts.Transpose is set. It does not append to the deck.
func (d *Deck) Figures(ctx context.Context, opts entities.FigureOptions) (string, error) {
	sizes, err := FigureSizes(len(opts.Figures), opts.Weights)
	if err != nil {
		return "", fmt.Errorf("laying out figures: %w", err)
	}
	if opts.URLs != nil && len(opts.URLs) != len(opts.Figures) {
		return "", fmt.Errorf("laying out figures: got %d urls for %d figures", len(opts.URLs), len(opts.Figures))
	}

	height := opts.Height
	if height == 0 {
		height = d.cfg.Height
	}
	bgcolor := opts.BgColor
	if bgcolor == "" {
		bgcolor = defaultFigureColor
	}
	cellBgcolor := opts.CellBgColor
	if cellBgcolor == "" {
		cellBgcolor = defaultFigureColor
	}

	var b strings.Builder
	b.WriteString(Title(opts.Title))
	fmt.Fprintf(&b, "\n<div align=\"center\">\n<table border=0px valign=\"top\" bgcolor=%s height=%d>\n", bgcolor, height)
	if !opts.Transpose {
		fmt.Fprintf(&b, "<tr padding=0px style=\"vertical-align:top\" bgcolor=%s>\n", bgcolor)
	}

	for i, src := range opts.Figures {
		ref, err := d.mediaSource(ctx, src, entities.MediaImage, opts.Embed)
		if err != nil {
			return "", err
		}

		open, closing := "<p>", "</p>"
		if opts.Fragment && i > 0 {
			open = `<p class="fragment">`
		}
		if opts.URLs != nil {
			open += `<a href="` + opts.URLs[i] + `">`
			closing = "</a></p>"
		}

		if opts.Transpose {
			rowHeight := int(sizes[i] * float64(height))
			fmt.Fprintf(&b, "<tr style=\"vertical-align:middle\" bgcolor=\"%s\"  height=\"%dpx\">\n", cellBgcolor, rowHeight)
			fmt.Fprintf(&b, "<td width=\"100%%\" style=\"text-align:top; vertical-align:top\" bgcolor=\"%s\" >\n", cellBgcolor)
			fmt.Fprintf(&b, "%s\n<img class=\"plain\" data-src=\"%s\"  height=\"%dpx\"  />\n%s\n", open, ref, rowHeight, closing)
			b.WriteString("</td>\n</tr>\n")
			continue
		}

		width := int(sizes[i] * float64(d.cfg.Width))
		widthAttr := " "
		if opts.Width != 0 {
			width = int(sizes[i] * float64(opts.Width))
			widthAttr = fmt.Sprintf(`width="%dpx"`, width)
		}
		fmt.Fprintf(&b, "<td height=%d width=\"%d\" padding-top=0px padding-bottom=0px style=\"text-align:center; vertical-align:top\" bgcolor=\"%s\" >\n", height, width, cellBgcolor)
		fmt.Fprintf(&b, "%s\n<img class=\"plain\" data-src=\"%s\"  height=\"%dpx\" %s />\n%s\n", open, ref, height, widthAttr, closing)
		b.WriteString("</td>\n")
	}

	if !opts.Transpose {
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n</div>\n")
	return b.String(), nil
}
