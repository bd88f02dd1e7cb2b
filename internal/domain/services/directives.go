package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
)

// ApplyStats counts what ApplyDirectives did to a deck
type ApplyStats struct {
	Applied int
	Hidden  int
}

// ApplyDirectives appends every directive to deck in order. It stops at
// the first failing directive; directives before it stay applied.
func ApplyDirectives(ctx context.Context, deck *Deck, directives []entities.Directive) (ApplyStats, error) {
	var stats ApplyStats

	for i, d := range directives {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		hidden, err := applyDirective(ctx, deck, d)
		if err != nil {
			return stats, fmt.Errorf("directive %d (%s): %w", i+1, d.Kind, err)
		}
		if hidden {
			stats.Hidden++
			continue
		}
		stats.Applied++
	}

	return stats, nil
}

func applyDirective(ctx context.Context, deck *Deck, d entities.Directive) (bool, error) {
	switch d.Kind {
	case entities.DirectiveSectionOpen:
		if d.Hide {
			return true, nil
		}
		deck.OpenSection()
		return false, nil

	case entities.DirectiveSectionClose:
		if d.Hide {
			return true, nil
		}
		deck.CloseSection()
		return false, nil

	case entities.DirectiveOutline:
		if d.Hide {
			return true, nil
		}
		return false, deck.AddOutlineSlide(ctx, d.OutlineOptions())

	case entities.DirectiveSummary:
		if d.Hide {
			return true, nil
		}
		opts, err := d.SummaryOptions()
		if err != nil {
			return false, err
		}
		return false, deck.AddSummarySlide(ctx, opts)

	case entities.DirectiveSlide, entities.DirectiveFigures:
		opts := d.SlideOptions()
		if opts.Hide {
			// Hidden slides skip media fetching as well
			_, err := deck.AddSlide(ctx, opts)
			return true, err
		}

		content, err := slideContent(ctx, deck, d)
		if err != nil {
			return false, err
		}
		opts.Content = content

		marker, err := deck.AddSlide(ctx, opts)
		return marker == entities.HiddenSlide, err

	default:
		return false, fmt.Errorf("unknown directive kind %q", d.Kind)
	}
}

// slideContent assembles the title, content, figures and references of a
// slide directive in that order
func slideContent(ctx context.Context, deck *Deck, d entities.Directive) (string, error) {
	var b strings.Builder

	if d.Kind == entities.DirectiveSlide {
		b.WriteString(Title(d.Title))
	}
	b.WriteString(d.Content)

	if d.Figures != nil {
		figures := *d.Figures
		if d.Kind == entities.DirectiveFigures && figures.Title == "" {
			figures.Title = d.Title
		}
		if figures.Embed == nil {
			figures.Embed = d.Embed
		}
		grid, err := deck.Figures(ctx, figures)
		if err != nil {
			return "", err
		}
		b.WriteString(grid)
	}

	for _, c := range d.Bib {
		b.WriteString(Citation(c))
	}

	return b.String(), nil
}
