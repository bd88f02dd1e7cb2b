package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
)

const sampleManifest = `
deck:
  title: Graph Neural Networks
  short_title: GNNs
  author: Ada Lovelace
  conference: NeurIPS
  theme: white
  width: 1280
output: talk.html
slides:
  - kind: outline
    current: 1
  - kind: section_open
  - kind: slide
    id: Intro_1
    title: Introduction
    content: "<p>hello</p>"
    notes: "Say **hi**"
    embed: false
    bib:
      - author: Doe
        year: 2020
        journal: JMLR
        title: A paper
        url: https://example.com/paper
  - kind: summary
    points: ["one", "two"]
    fragment: fade-up
  - kind: figures
    title: Results
    figures:
      images: [a.png, b.png]
      weights: [2, 1]
      transpose: true
  - kind: section_close
    hide: true
`

func TestManifestParser_Parse(t *testing.T) {
	p, err := NewManifestParser().Parse(context.Background(), []byte(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "Graph Neural Networks", p.Deck.Title)
	assert.Equal(t, "GNNs", p.Deck.ShortTitle)
	assert.Equal(t, 1280, p.Deck.Width)
	assert.Equal(t, "talk.html", p.Output)
	require.Len(t, p.Directives, 6)

	outline := p.Directives[0]
	assert.Equal(t, entities.DirectiveOutline, outline.Kind)
	require.NotNil(t, outline.Current)
	assert.Equal(t, 1, *outline.Current)

	slide := p.Directives[2]
	assert.Equal(t, "Intro_1", slide.ID)
	assert.Equal(t, "Say **hi**", slide.Notes)
	require.NotNil(t, slide.Embed)
	assert.False(t, *slide.Embed)
	require.Len(t, slide.Bib, 1)
	assert.Equal(t, "2020", slide.Bib[0].Year)

	summary := p.Directives[3]
	assert.Equal(t, []string{"one", "two"}, summary.Points)
	assert.Equal(t, "fade-up", summary.Fragment)

	figures := p.Directives[4]
	require.NotNil(t, figures.Figures)
	assert.Equal(t, []string{"a.png", "b.png"}, figures.Figures.Figures)
	assert.Equal(t, []float64{2, 1}, figures.Figures.Weights)
	assert.True(t, figures.Figures.Transpose)

	assert.True(t, p.Directives[5].Hide)
	assert.NoError(t, p.Validate())
}

func TestManifestParser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown directive field", content: "slides:\n  - kind: slide\n    titel: typo\n"},
		{name: "unknown top-level key", content: "decks: {}\n"},
		{name: "malformed yaml", content: "slides: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewManifestParser().Parse(context.Background(), []byte(tt.content))
			assert.Error(t, err)
		})
	}
}

func TestManifestParser_Empty(t *testing.T) {
	p, err := NewManifestParser().Parse(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, p.Directives)
}

func TestManifestParser_FreeFormYear(t *testing.T) {
	content := `
slides:
  - kind: slide
    bib:
      - author: Roe
        year: 2020b
        journal: Cell
      - author: Poe
        year: in press
        journal: Nature
`
	p, err := NewManifestParser().Parse(context.Background(), []byte(content))
	require.NoError(t, err)

	require.Len(t, p.Directives, 1)
	bib := p.Directives[0].Bib
	require.Len(t, bib, 2)
	assert.Equal(t, "2020b", bib[0].Year)
	assert.Equal(t, "in press", bib[1].Year)
}
