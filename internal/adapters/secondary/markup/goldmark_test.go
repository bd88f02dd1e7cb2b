package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	converter := NewGoldmarkConverter(entities.MarkupConfig{})

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "paragraph", input: "Hello", want: "<p>Hello</p>\n"},
		{name: "emphasis", input: "say *this*", want: "<p>say <em>this</em></p>\n"},
		{name: "inline code", input: "run `make`", want: "<p>run <code>make</code></p>\n"},
		{name: "strikethrough", input: "~~old~~", want: "<p><del>old</del></p>\n"},
		{name: "link", input: "[docs](https://revealjs.com)", want: "<p><a href=\"https://revealjs.com\">docs</a></p>\n"},
		{name: "raw html passes through", input: "<b>bold</b>", want: "<p><b>bold</b></p>\n"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := converter.ToHTML(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGoldmarkConverter_Lists(t *testing.T) {
	converter := NewGoldmarkConverter(entities.MarkupConfig{})

	got, err := converter.ToHTML("- one\n- two\n")

	require.NoError(t, err)
	assert.Equal(t, "<ul>\n<li>one</li>\n<li>two</li>\n</ul>\n", got)
}

func TestGoldmarkConverter_Options(t *testing.T) {
	t.Run("sanitize strips scripts", func(t *testing.T) {
		converter := NewGoldmarkConverter(entities.MarkupConfig{Sanitize: true})

		got, err := converter.ToHTML("hi <script>alert(1)</script>")

		require.NoError(t, err)
		assert.NotContains(t, got, "<script>")
		assert.Contains(t, got, "hi")
	})

	t.Run("unsanitized keeps scripts", func(t *testing.T) {
		converter := NewGoldmarkConverter(entities.MarkupConfig{})

		got, err := converter.ToHTML("<script>alert(1)</script>")

		require.NoError(t, err)
		assert.Contains(t, got, "<script>")
	})

	t.Run("hard wraps", func(t *testing.T) {
		converter := NewGoldmarkConverter(entities.MarkupConfig{HardWraps: true})

		got, err := converter.ToHTML("line one\nline two")

		require.NoError(t, err)
		assert.Contains(t, got, "<br>")
	})

	t.Run("typographer", func(t *testing.T) {
		converter := NewGoldmarkConverter(entities.MarkupConfig{Typographer: true})

		got, err := converter.ToHTML("wait...")

		require.NoError(t, err)
		assert.True(t, strings.Contains(got, "&hellip;"), got)
	})
}
