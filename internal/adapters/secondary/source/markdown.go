package source

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
	"github.com/fredcamaral/revealdeck/internal/domain/ports"
)

const (
	slideDelimiter = "\n---\n"
	notePrefix     = "Note:"
)

// frontmatter holds the deck settings at the top of a markdown deck
type frontmatter struct {
	Deck   entities.DeckConfig `yaml:",inline"`
	Output string              `yaml:"output"`
}

// MarkdownParser reads markdown decks: optional YAML frontmatter followed
// by slides separated by a line holding only "---"
type MarkdownParser struct{}

// NewMarkdownParser creates a markdown deck parser
func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{}
}

// Parse turns every slide into a markdown-mode slide directive. Lines
// starting with "Note:" are moved to the slide's speaker notes.
func (p *MarkdownParser) Parse(ctx context.Context, content []byte) (*entities.Presentation, error) {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))

	fm, body, err := extractFrontmatter(content)
	if err != nil {
		return nil, err
	}

	presentation := &entities.Presentation{
		Deck:   fm.Deck,
		Output: fm.Output,
	}

	for _, slide := range splitSlides(body) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, notes := splitNotes(slide)
		presentation.Directives = append(presentation.Directives, entities.Directive{
			Kind:     entities.DirectiveSlide,
			Content:  text,
			Notes:    notes,
			Markdown: true,
		})
	}

	return presentation, nil
}

// extractFrontmatter splits a leading "---" delimited YAML block from the
// rest of the document. Without one the whole content is the body.
func extractFrontmatter(content []byte) (frontmatter, []byte, error) {
	var fm frontmatter

	if !bytes.HasPrefix(content, []byte("---\n")) {
		return fm, content, nil
	}

	lines := bytes.Split(content, []byte("\n"))
	end := -1
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			end = i
			break
		}
	}
	if end == -1 {
		return fm, content, nil
	}

	raw := bytes.Join(lines[1:end], []byte("\n"))
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := yaml.Unmarshal(raw, &fm); err != nil {
			return fm, nil, fmt.Errorf("parsing frontmatter: %w", err)
		}
	}

	return fm, bytes.Join(lines[end+1:], []byte("\n")), nil
}

// splitSlides splits on slide delimiters and drops empty slides
func splitSlides(content []byte) []string {
	parts := strings.Split(string(content), slideDelimiter)

	slides := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			slides = append(slides, trimmed)
		}
	}
	return slides
}

func splitNotes(slide string) (string, string) {
	var body, notes []string

	for _, line := range strings.Split(slide, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, notePrefix) {
			notes = append(notes, strings.TrimSpace(strings.TrimPrefix(trimmed, notePrefix)))
			continue
		}
		body = append(body, line)
	}

	return strings.TrimSpace(strings.Join(body, "\n")), strings.Join(notes, "\n")
}

// Ensure MarkdownParser implements ports.SourceParser
var _ ports.SourceParser = (*MarkdownParser)(nil)
