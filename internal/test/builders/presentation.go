package builders

import (
	"github.com/fredcamaral/revealdeck/internal/domain/entities"
)

// DeckConfigBuilder helps build DeckConfig values for testing
type DeckConfigBuilder struct {
	cfg entities.DeckConfig
}

// NewDeckConfigBuilder creates a deck config builder with every required field set
func NewDeckConfigBuilder() *DeckConfigBuilder {
	return &DeckConfigBuilder{
		cfg: entities.DeckConfig{
			ShortTitle: "Test",
			Conference: "TestConf",
			Title:      "Test Presentation",
			Author:     "Test Author",
			RevealPath: "https://unpkg.com/reveal.js@5.1.0/",
			Theme:      "simple",
			Width:      1600,
			Height:     1000,
			Margin:     0.1,
		},
	}
}

// WithTitle sets the long and short titles
func (b *DeckConfigBuilder) WithTitle(short, long string) *DeckConfigBuilder {
	b.cfg.ShortTitle = short
	b.cfg.Title = long
	return b
}

// WithAuthor sets the author
func (b *DeckConfigBuilder) WithAuthor(author string) *DeckConfigBuilder {
	b.cfg.Author = author
	return b
}

// WithTheme sets the reveal.js theme name
func (b *DeckConfigBuilder) WithTheme(theme string) *DeckConfigBuilder {
	b.cfg.Theme = theme
	return b
}

// WithRevealPath sets the reveal.js base path
func (b *DeckConfigBuilder) WithRevealPath(path string) *DeckConfigBuilder {
	b.cfg.RevealPath = path
	return b
}

// WithSize sets the slide width and height
func (b *DeckConfigBuilder) WithSize(width, height int) *DeckConfigBuilder {
	b.cfg.Width = width
	b.cfg.Height = height
	return b
}

// WithMargin sets the margin factor
func (b *DeckConfigBuilder) WithMargin(margin float64) *DeckConfigBuilder {
	b.cfg.Margin = margin
	return b
}

// WithDraft turns speaker-visible notes on or off
func (b *DeckConfigBuilder) WithDraft(draft bool) *DeckConfigBuilder {
	b.cfg.Draft = draft
	return b
}

// WithEmbed sets the deck-wide embed default
func (b *DeckConfigBuilder) WithEmbed(embed bool) *DeckConfigBuilder {
	b.cfg.Embed = embed
	return b
}

// WithSections sets the outline sections
func (b *DeckConfigBuilder) WithSections(sections ...string) *DeckConfigBuilder {
	b.cfg.Sections = sections
	return b
}

// Build returns the deck config
func (b *DeckConfigBuilder) Build() entities.DeckConfig {
	cfg := b.cfg
	cfg.Sections = append([]string(nil), b.cfg.Sections...)
	return cfg
}

// SlideBuilder helps build SlideOptions for testing
type SlideBuilder struct {
	opts entities.SlideOptions
}

// NewSlideBuilder creates a slide builder for a plain content slide
func NewSlideBuilder() *SlideBuilder {
	return &SlideBuilder{opts: entities.SlideOptions{Content: "<p>Test content</p>"}}
}

// WithContent sets the slide content
func (b *SlideBuilder) WithContent(content string) *SlideBuilder {
	b.opts.Content = content
	return b
}

// WithNotes sets the speaker notes
func (b *SlideBuilder) WithNotes(notes string) *SlideBuilder {
	b.opts.Notes = notes
	return b
}

// WithImage sets a background image
func (b *SlideBuilder) WithImage(src string) *SlideBuilder {
	b.opts.Image = src
	return b
}

// WithVideo sets a background video
func (b *SlideBuilder) WithVideo(src string) *SlideBuilder {
	b.opts.Video = src
	return b
}

// WithID sets the slide id
func (b *SlideBuilder) WithID(id string) *SlideBuilder {
	b.opts.ID = id
	return b
}

// AsMarkdown marks the content as markdown
func (b *SlideBuilder) AsMarkdown() *SlideBuilder {
	b.opts.Markdown = true
	return b
}

// Hidden hides the slide
func (b *SlideBuilder) Hidden() *SlideBuilder {
	b.opts.Hide = true
	return b
}

// WithEmbed overrides the deck-wide embed default
func (b *SlideBuilder) WithEmbed(embed bool) *SlideBuilder {
	b.opts.Embed = &embed
	return b
}

// Build returns the slide options
func (b *SlideBuilder) Build() entities.SlideOptions {
	return b.opts
}

// DirectiveBuilder helps build deck source directives for testing
type DirectiveBuilder struct {
	d entities.Directive
}

// NewDirectiveBuilder creates a builder for a directive of the given kind
func NewDirectiveBuilder(kind entities.DirectiveKind) *DirectiveBuilder {
	return &DirectiveBuilder{d: entities.Directive{Kind: kind}}
}

// WithTitle sets the directive title
func (b *DirectiveBuilder) WithTitle(title string) *DirectiveBuilder {
	b.d.Title = title
	return b
}

// WithContent sets the directive content
func (b *DirectiveBuilder) WithContent(content string) *DirectiveBuilder {
	b.d.Content = content
	return b
}

// WithPoints sets summary points and their fragment style
func (b *DirectiveBuilder) WithPoints(fragment string, points ...string) *DirectiveBuilder {
	b.d.Fragment = fragment
	b.d.Points = points
	return b
}

// WithFigures attaches a figure grid
func (b *DirectiveBuilder) WithFigures(opts entities.FigureOptions) *DirectiveBuilder {
	b.d.Figures = &opts
	return b
}

// WithCitation appends a reference
func (b *DirectiveBuilder) WithCitation(c entities.Citation) *DirectiveBuilder {
	b.d.Bib = append(b.d.Bib, c)
	return b
}

// Hidden hides the directive
func (b *DirectiveBuilder) Hidden() *DirectiveBuilder {
	b.d.Hide = true
	return b
}

// Build returns the directive
func (b *DirectiveBuilder) Build() entities.Directive {
	return b.d
}
