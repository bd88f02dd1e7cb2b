package markup

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
	"github.com/fredcamaral/revealdeck/internal/domain/ports"
)

// GoldmarkConverter renders speaker notes and list entries to HTML
type GoldmarkConverter struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewGoldmarkConverter creates a converter configured from cfg. Raw HTML in
// the input is passed through unless cfg.Sanitize is set.
func NewGoldmarkConverter(cfg entities.MarkupConfig) *GoldmarkConverter {
	extensions := []goldmark.Extender{
		extension.GFM, // tables, strikethrough, autolinks, task lists
	}
	if cfg.Typographer {
		extensions = append(extensions, extension.Typographer)
	}

	rendererOptions := []renderer.Option{html.WithUnsafe()}
	if cfg.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}

	c := &GoldmarkConverter{
		md: goldmark.New(
			goldmark.WithExtensions(extensions...),
			goldmark.WithRendererOptions(rendererOptions...),
		),
	}

	if cfg.Sanitize {
		c.policy = bluemonday.UGCPolicy()
	}

	return c
}

// ToHTML converts markdown to an HTML fragment
func (c *GoldmarkConverter) ToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}

	if c.policy != nil {
		return string(c.policy.SanitizeBytes(buf.Bytes())), nil
	}
	return buf.String(), nil
}

// Ensure GoldmarkConverter implements ports.MarkdownConverter
var _ ports.MarkdownConverter = (*GoldmarkConverter)(nil)
