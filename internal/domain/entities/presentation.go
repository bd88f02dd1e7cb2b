package entities

import (
	"errors"
	"fmt"
)

// DirectiveKind identifies what a deck source directive appends
type DirectiveKind string

const (
	DirectiveSlide        DirectiveKind = "slide"
	DirectiveOutline      DirectiveKind = "outline"
	DirectiveSummary      DirectiveKind = "summary"
	DirectiveFigures      DirectiveKind = "figures"
	DirectiveSectionOpen  DirectiveKind = "section_open"
	DirectiveSectionClose DirectiveKind = "section_close"
)

// Presentation is a parsed deck source: optional deck settings and the
// ordered directives to apply to a fresh deck
type Presentation struct {
	// Deck holds settings from the source file; zero fields are not overrides
	Deck DeckConfig

	// Output is the output filename requested by the source, if any
	Output string

	Directives []Directive
}

// Validate ensures every directive is well formed
func (p *Presentation) Validate() error {
	for i, d := range p.Directives {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("directive %d: %w", i+1, err)
		}
	}
	return nil
}

// Directive is one step of a deck source. Which fields are used depends on Kind.
type Directive struct {
	Kind     DirectiveKind  `yaml:"kind"`
	Hide     bool           `yaml:"hide"`
	ID       string         `yaml:"id"`
	Title    string         `yaml:"title"`
	Content  string         `yaml:"content"`
	Notes    string         `yaml:"notes"`
	Markdown bool           `yaml:"md"`
	Image    string         `yaml:"image"`
	Video    string         `yaml:"video"`
	Embed    *bool          `yaml:"embed"`
	Current  *int           `yaml:"current"`
	Points   []string       `yaml:"points"`
	Fragment string         `yaml:"fragment"`
	Figures  *FigureOptions `yaml:"figures"`
	Bib      []Citation     `yaml:"bib"`
}

// Validate checks the kind and the fields it depends on
func (d Directive) Validate() error {
	switch d.Kind {
	case DirectiveSlide, DirectiveSectionOpen, DirectiveSectionClose, DirectiveOutline:
	case DirectiveSummary:
		if len(d.Points) == 0 {
			return errors.New("summary needs at least one point")
		}
		if _, err := ParseFragmentStyle(d.Fragment); err != nil {
			return err
		}
	case DirectiveFigures:
		if d.Figures == nil {
			return errors.New("figures directive needs a figures block")
		}
	case "":
		return errors.New("directive kind is required")
	default:
		return fmt.Errorf("unknown directive kind %q", d.Kind)
	}

	if d.Figures != nil && len(d.Figures.Figures) == 0 {
		return errors.New("figures block needs at least one image")
	}

	return nil
}

// SlideOptions returns the generic slide options of a slide directive
func (d Directive) SlideOptions() SlideOptions {
	return SlideOptions{
		Hide:     d.Hide,
		ID:       d.ID,
		Image:    d.Image,
		Video:    d.Video,
		Content:  d.Content,
		Notes:    d.Notes,
		Markdown: d.Markdown,
		Embed:    d.Embed,
	}
}

// OutlineOptions returns the options of an outline directive
func (d Directive) OutlineOptions() OutlineOptions {
	return OutlineOptions{
		Title:   d.Title,
		Current: d.Current,
		Notes:   d.Notes,
	}
}

// SummaryOptions returns the options of a summary directive
func (d Directive) SummaryOptions() (SummaryOptions, error) {
	style, err := ParseFragmentStyle(d.Fragment)
	if err != nil {
		return SummaryOptions{}, err
	}
	return SummaryOptions{
		Title:    d.Title,
		Points:   d.Points,
		Fragment: style,
		Notes:    d.Notes,
	}, nil
}
