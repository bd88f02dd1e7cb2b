package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const markdownDeck = `---
title: Testing Decks
short_title: Tests
author: Test Author
---
# Hello

Note: greet the room

---

## Second slide
`

// execute runs the CLI with a global config path that does not exist, so
// the user's own configuration never leaks into tests
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "missing.toml"), "--log-level", "error"))

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeDeck(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestBuildCommand(t *testing.T) {
	t.Run("writes next to the source", func(t *testing.T) {
		source := writeDeck(t, "talk.md", markdownDeck)

		out, err := execute(t, "build", source)

		require.NoError(t, err)
		want := filepath.Join(filepath.Dir(source), "index.html")
		assert.Contains(t, out, "Wrote "+want)

		html, err := os.ReadFile(want)
		require.NoError(t, err)
		assert.Contains(t, string(html), "<title>Tests - </title>")
		assert.Contains(t, string(html), "# Hello")
		assert.Contains(t, string(html), `<aside class="notes">`)
	})

	t.Run("flags override the source", func(t *testing.T) {
		source := writeDeck(t, "talk.md", markdownDeck)
		output := filepath.Join(t.TempDir(), "out", "deck.html")

		_, err := execute(t, "build", source, "-o", output, "--short-title", "Flagged", "--theme", "white")

		require.NoError(t, err)
		html, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Contains(t, string(html), "<title>Flagged - </title>")
		assert.Contains(t, string(html), "dist/theme/white.css")
	})

	t.Run("dry run prints the document", func(t *testing.T) {
		source := writeDeck(t, "talk.md", markdownDeck)

		out, err := execute(t, "build", source, "--dry-run")

		require.NoError(t, err)
		assert.Contains(t, out, "Reveal.initialize")
		assert.NoFileExists(t, filepath.Join(filepath.Dir(source), "index.html"))
	})

	t.Run("unsupported source", func(t *testing.T) {
		source := writeDeck(t, "talk.txt", "hello")

		_, err := execute(t, "build", source)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported deck source")
	})

	t.Run("missing deck settings", func(t *testing.T) {
		source := writeDeck(t, "talk.md", "# no frontmatter\n")

		_, err := execute(t, "build", source)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "short_title")
	})

	t.Run("requires a source", func(t *testing.T) {
		_, err := execute(t, "build")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "accepts 1 arg(s)")
	})
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "init", dir, "--example")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "revealdeck.toml"))
	assert.FileExists(t, filepath.Join(dir, "revealdeck.toml"))
	assert.FileExists(t, filepath.Join(dir, "deck.yaml"))

	_, err = execute(t, "init", dir)
	assert.Error(t, err, "existing config must not be overwritten")

	out, err = execute(t, "build", filepath.Join(dir, "deck.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+filepath.Join(dir, "index.html"))

	html, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), `id="motivation"`)
	assert.Contains(t, string(html), "Interim summary")
}

func TestSlugCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"slug", "Section_1.Intro"}, want: "section-1-intro\n"},
		{args: []string{"slug", "--keep-case", "CamelCase2Test"}, want: "Camel-Case-2-Test\n"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			out, err := execute(t, tt.args...)

			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCollectFlags(t *testing.T) {
	cmd := newBuildCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--width", "1280", "--draft=false", "--margin", "0.05", "--title", "T"}))

	flags := collectFlags(cmd)

	assert.Equal(t, map[string]interface{}{
		"width":  1280,
		"draft":  false,
		"margin": 0.05,
		"title":  "T",
	}, flags)
}
