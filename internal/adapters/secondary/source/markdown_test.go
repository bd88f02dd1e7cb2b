package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
)

func TestMarkdownParser_Parse(t *testing.T) {
	content := "---\ntitle: My Talk\nauthor: Grace\ndraft: true\noutput: out/talk.html\n---\n" +
		"# First\n\nSome text\nNote: remember this\n\n---\n\n## Second\nNote: one\nNote: two\n\n---\n\n"

	p, err := NewMarkdownParser().Parse(context.Background(), []byte(content))
	require.NoError(t, err)

	assert.Equal(t, "My Talk", p.Deck.Title)
	assert.Equal(t, "Grace", p.Deck.Author)
	assert.True(t, p.Deck.Draft)
	assert.Equal(t, "out/talk.html", p.Output)

	require.Len(t, p.Directives, 2)
	assert.Equal(t, entities.Directive{
		Kind:     entities.DirectiveSlide,
		Content:  "# First\n\nSome text",
		Notes:    "remember this",
		Markdown: true,
	}, p.Directives[0])
	assert.Equal(t, "## Second", p.Directives[1].Content)
	assert.Equal(t, "one\ntwo", p.Directives[1].Notes)
}

func TestMarkdownParser_NoFrontmatter(t *testing.T) {
	p, err := NewMarkdownParser().Parse(context.Background(), []byte("# Only\r\n---\r\n# Two\r\n"))

	require.NoError(t, err)
	assert.Equal(t, entities.DeckConfig{}, p.Deck)
	require.Len(t, p.Directives, 2)
	assert.Equal(t, "# Only", p.Directives[0].Content)
	assert.Equal(t, "# Two", p.Directives[1].Content)
}

func TestMarkdownParser_BadFrontmatter(t *testing.T) {
	_, err := NewMarkdownParser().Parse(context.Background(), []byte("---\ntitle: [oops\n---\n# Slide\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "frontmatter")
}

func TestMarkdownParser_EmptyFrontmatter(t *testing.T) {
	p, err := NewMarkdownParser().Parse(context.Background(), []byte("---\n---\n# Slide\n"))

	require.NoError(t, err)
	require.Len(t, p.Directives, 1)
	assert.Equal(t, "# Slide", p.Directives[0].Content)
}

func TestSplitNotes(t *testing.T) {
	body, notes := splitNotes("text\n  Note:  indented note  \nmore")

	assert.Equal(t, "text\nmore", body)
	assert.Equal(t, "indented note", notes)
}
