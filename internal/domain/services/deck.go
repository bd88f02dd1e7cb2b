package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
	"github.com/fredcamaral/revealdeck/internal/domain/ports"
)

// Deck accumulates reveal.js slide fragments in call order and compiles
// them, between a fixed header and footer, into one HTML document.
//
// A Deck is not safe for concurrent use.
type Deck struct {
	cfg       entities.DeckConfig
	markdown  ports.MarkdownConverter
	fetcher   ports.MediaFetcher
	writer    ports.DocumentWriter
	header    string
	footer    string
	fragments []string
}

// NewDeck validates cfg and renders the header and footer.
// It fails with an entities.ConfigError when a required setting is missing.
func NewDeck(cfg entities.DeckConfig, markdown ports.MarkdownConverter, fetcher ports.MediaFetcher, writer ports.DocumentWriter) (*Deck, error) {
	if markdown == nil || fetcher == nil || writer == nil {
		return nil, errors.New("deck needs a markdown converter, a media fetcher and a document writer")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Sections = append([]string(nil), cfg.Sections...)

	var header, footer bytes.Buffer
	if err := deckTemplates.ExecuteTemplate(&header, "header", cfg); err != nil {
		return nil, &entities.ConfigError{Reason: fmt.Sprintf("rendering header: %v", err)}
	}
	if err := deckTemplates.ExecuteTemplate(&footer, "footer", cfg); err != nil {
		return nil, &entities.ConfigError{Reason: fmt.Sprintf("rendering footer: %v", err)}
	}

	return &Deck{
		cfg:      cfg,
		markdown: markdown,
		fetcher:  fetcher,
		writer:   writer,
		header:   header.String(),
		footer:   footer.String(),
	}, nil
}

// Config returns the deck settings
func (d *Deck) Config() entities.DeckConfig {
	return d.cfg
}

// Header returns the rendered document header
func (d *Deck) Header() string {
	return d.header
}

// Footer returns the rendered document footer
func (d *Deck) Footer() string {
	return d.footer
}

// Fragments returns a copy of the body fragments in call order
func (d *Deck) Fragments() []string {
	return append([]string(nil), d.fragments...)
}

// Len returns the number of body fragments
func (d *Deck) Len() int {
	return len(d.fragments)
}

// Render returns header, body and footer as one document
func (d *Deck) Render() string {
	var b strings.Builder
	b.WriteString(d.header)
	for _, f := range d.fragments {
		b.WriteString(f)
	}
	b.WriteString(d.footer)
	return b.String()
}

// Compile writes the rendered document to path, replacing any existing file
func (d *Deck) Compile(ctx context.Context, path string) error {
	if err := d.writer.WriteDocument(ctx, path, []byte(d.Render())); err != nil {
		return fmt.Errorf("compiling deck to %s: %w", path, err)
	}
	return nil
}

// OpenSection starts a vertical stack of slides
func (d *Deck) OpenSection() {
	d.append("<section>")
}

// CloseSection ends a vertical stack of slides
func (d *Deck) CloseSection() {
	d.append("\n</section>\n")
}

// AddSlide appends one generic slide. A hidden slide returns
// entities.HiddenSlide and leaves the body untouched. The body is also
// untouched when an error is returned.
func (d *Deck) AddSlide(ctx context.Context, opts entities.SlideOptions) (string, error) {
	if opts.Hide {
		return entities.HiddenSlide, nil
	}

	id := ""
	if opts.ID != "" {
		id = fmt.Sprintf(` id="%s"`, Slugify(opts.ID, true))
	}

	var b strings.Builder
	switch {
	case opts.Image != "":
		src, err := d.mediaSource(ctx, opts.Image, entities.MediaImage, opts.Embed)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, `<section%s data-background="%s" data-background-size="%dpx"> `, id, src, d.cfg.Height)
	case opts.Video != "":
		src, err := d.mediaSource(ctx, opts.Video, entities.MediaVideo, opts.Embed)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, `<section%s data-background-video="%s">`, id, src)
	case opts.Markdown:
		fmt.Fprintf(&b, "\n<section%s data-markdown>\n<script type=\"text/template\">\n", id)
	default:
		fmt.Fprintf(&b, "<section%s>", id)
	}

	b.WriteString(opts.Content)

	// The template wrapper only exists on plain markdown slides
	if opts.Markdown && opts.Image == "" && opts.Video == "" {
		b.WriteString("\n</script>\n")
	}

	if opts.Notes != "" {
		notes, err := d.markdown.ToHTML(opts.Notes)
		if err != nil {
			return "", fmt.Errorf("rendering speaker notes: %w", err)
		}
		fmt.Fprintf(&b, "\n<aside class=\"notes\">\n%s</aside>\n", notes)
	}

	b.WriteString("\n</section>\n")

	d.append(b.String())
	return "", nil
}

// AddOutlineSlide appends a numbered list of the configured sections.
// The section at opts.Current, if any, is highlighted as a fragment.
func (d *Deck) AddOutlineSlide(ctx context.Context, opts entities.OutlineOptions) error {
	title := opts.Title
	if title == "" {
		title = "Outline"
	}

	var b strings.Builder
	b.WriteString(Title(title))
	b.WriteString("\n<ol>\n")
	for i, section := range d.cfg.Sections {
		entry, err := d.inlineMarkdown(section)
		if err != nil {
			return fmt.Errorf("rendering section %d: %w", i, err)
		}
		if opts.Current != nil && *opts.Current == i {
			fmt.Fprintf(&b, "<h3>\n<li>\n<p class=\"fragment highlight-red\">\n%s\n</p>\n</li>\n</h3>\n", entry)
		} else {
			fmt.Fprintf(&b, "<h3>\n<li>\n%s\n</li>\n</h3>\n", entry)
		}
	}
	b.WriteString("</ol>\n")

	_, err := d.AddSlide(ctx, entities.SlideOptions{Content: b.String(), Notes: opts.Notes})
	return err
}

// AddSummarySlide appends a bullet list of points, each optionally
// revealed with a fragment animation
func (d *Deck) AddSummarySlide(ctx context.Context, opts entities.SummaryOptions) error {
	if !opts.Fragment.Valid() {
		return fmt.Errorf("%w: %q", entities.ErrInvalidFragment, string(opts.Fragment))
	}

	title := opts.Title
	if title == "" {
		title = "Interim summary"
	}

	open := "<p>"
	if opts.Fragment != entities.FragmentNone {
		open = fmt.Sprintf(`<p class="fragment %s">`, opts.Fragment)
	}

	var b strings.Builder
	b.WriteString(Title(title))
	b.WriteString("\n<ul>\n")
	for i, point := range opts.Points {
		entry, err := d.inlineMarkdown(point)
		if err != nil {
			return fmt.Errorf("rendering point %d: %w", i, err)
		}
		fmt.Fprintf(&b, "%s\n<h3>\n<li>%s</li>\n</h3>\n</p>\n", open, entry)
	}
	b.WriteString("</ul>")

	_, err := d.AddSlide(ctx, entities.SlideOptions{Content: b.String(), Notes: opts.Notes})
	return err
}

// Title returns a slide heading, or nothing for an empty title
func Title(title string) string {
	if title == "" {
		return ""
	}
	return "<h3>" + title + "</h3>"
}

// Citation formats a right-aligned bibliographic line
func Citation(c entities.Citation) string {
	journal := c.Journal
	if c.URL != "" {
		journal = fmt.Sprintf(`<a href="%s">%s</a>`, c.URL, journal)
	}
	line := fmt.Sprintf("%s (%s) <small>%s</small> <em>%s</em>", c.Author, c.Year, c.Title, journal)
	return `<div style="text-align:right;">` + line + "</div>"
}

// Imagelet returns a single image tag of the given pixel height
func (d *Deck) Imagelet(ctx context.Context, src string, heightPx int, embed *bool) (string, error) {
	ref, err := d.mediaSource(ctx, src, entities.MediaImage, embed)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`<img class="plain" data-src="%s"  height="%dpx" />`, ref, heightPx), nil
}

// EmbedImage returns src as an image data URI
func (d *Deck) EmbedImage(ctx context.Context, src string) (string, error) {
	return d.Embed(ctx, src, entities.MediaImage)
}

// EmbedVideo returns src as a video data URI
func (d *Deck) EmbedVideo(ctx context.Context, src string) (string, error) {
	return d.Embed(ctx, src, entities.MediaVideo)
}

// Embed fetches src and returns it as a base64 data URI of the given kind
func (d *Deck) Embed(ctx context.Context, src string, kind entities.MediaKind) (string, error) {
	data, err := d.fetcher.Fetch(ctx, src)
	if err != nil {
		return "", err
	}
	return EncodeDataURI(data, src, kind), nil
}

// EncodeDataURI builds "data:KIND/EXT;base64,PAYLOAD". EXT is simply the
// last three characters of src, so "photo.jpeg" yields "image/peg".
func EncodeDataURI(data []byte, src string, kind entities.MediaKind) string {
	ext := src
	if len(src) > 3 {
		ext = src[len(src)-3:]
	}
	return fmt.Sprintf("data:%s/%s;base64,%s", kind, ext, base64.StdEncoding.EncodeToString(data))
}

// shouldEmbed resolves a per-call override against the deck default
func (d *Deck) shouldEmbed(override *bool) bool {
	if override != nil {
		return *override
	}
	return d.cfg.Embed
}

func (d *Deck) mediaSource(ctx context.Context, src string, kind entities.MediaKind, embed *bool) (string, error) {
	if !d.shouldEmbed(embed) {
		return src, nil
	}
	return d.Embed(ctx, src, kind)
}

// inlineMarkdown renders a one-line snippet without its wrapping paragraph
func (d *Deck) inlineMarkdown(src string) (string, error) {
	html, err := d.markdown.ToHTML(src)
	if err != nil {
		return "", err
	}
	html = strings.TrimSpace(html)
	html = strings.TrimPrefix(html, "<p>")
	html = strings.TrimSuffix(html, "</p>")
	return html, nil
}

func (d *Deck) append(fragment string) {
	d.fragments = append(d.fragments, fragment)
}
