package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
	"github.com/fredcamaral/revealdeck/internal/test/builders"
)

func TestApplyDirectives(t *testing.T) {
	ctx := context.Background()

	t.Run("applies directives in order", func(t *testing.T) {
		deck := mustTestDeck(builders.NewDeckConfigBuilder().WithSections("Intro").Build())
		directives := []entities.Directive{
			builders.NewDirectiveBuilder(entities.DirectiveOutline).Build(),
			builders.NewDirectiveBuilder(entities.DirectiveSectionOpen).Build(),
			builders.NewDirectiveBuilder(entities.DirectiveSlide).WithTitle("First").WithContent("<p>a</p>").Build(),
			builders.NewDirectiveBuilder(entities.DirectiveSlide).WithContent("hidden").Hidden().Build(),
			builders.NewDirectiveBuilder(entities.DirectiveSectionClose).Build(),
			builders.NewDirectiveBuilder(entities.DirectiveSummary).WithPoints("grow", "done").Build(),
		}

		stats, err := ApplyDirectives(ctx, deck.Deck, directives)

		require.NoError(t, err)
		assert.Equal(t, ApplyStats{Applied: 5, Hidden: 1}, stats)

		fragments := deck.Fragments()
		require.Len(t, fragments, 5)
		assert.Contains(t, fragments[0], "<h3>Outline</h3>")
		assert.Equal(t, "<section>", fragments[1])
		assert.Equal(t, "<section><h3>First</h3><p>a</p>\n</section>\n", fragments[2])
		assert.Equal(t, "\n</section>\n", fragments[3])
		assert.Contains(t, fragments[4], `<p class="fragment grow">`)
		assert.NotContains(t, deck.Render(), "hidden")
	})

	t.Run("slide with figures and references", func(t *testing.T) {
		deck := defaultTestDeck()
		d := builders.NewDirectiveBuilder(entities.DirectiveSlide).
			WithContent("<p>intro</p>").
			WithFigures(entities.FigureOptions{Figures: []string{"plot.png"}}).
			WithCitation(entities.Citation{Author: "Doe", Year: "2021", Journal: "Nature"}).
			Build()

		_, err := ApplyDirectives(ctx, deck.Deck, []entities.Directive{d})
		require.NoError(t, err)

		slide := deck.Fragments()[0]
		intro := strings.Index(slide, "<p>intro</p>")
		table := strings.Index(slide, "<table")
		bib := strings.Index(slide, "Doe (2021)")
		assert.True(t, intro < table && table < bib, slide)
	})

	t.Run("figures directive uses its title", func(t *testing.T) {
		deck := defaultTestDeck()
		d := builders.NewDirectiveBuilder(entities.DirectiveFigures).
			WithTitle("Gallery").
			WithFigures(entities.FigureOptions{Figures: []string{"a.png", "b.png"}}).
			Build()

		_, err := ApplyDirectives(ctx, deck.Deck, []entities.Directive{d})
		require.NoError(t, err)

		slide := deck.Fragments()[0]
		assert.Equal(t, 1, strings.Count(slide, "<h3>Gallery</h3>"))
		assert.Less(t, strings.Index(slide, "<h3>Gallery</h3>"), strings.Index(slide, "<table"))
	})

	t.Run("figures inherit the directive embed setting", func(t *testing.T) {
		deck := defaultTestDeck()
		deck.fetcher.files["a.png"] = []byte("png")
		embed := true
		d := builders.NewDirectiveBuilder(entities.DirectiveFigures).
			WithFigures(entities.FigureOptions{Figures: []string{"a.png"}}).
			Build()
		d.Embed = &embed

		_, err := ApplyDirectives(ctx, deck.Deck, []entities.Directive{d})
		require.NoError(t, err)

		assert.Equal(t, []string{"a.png"}, deck.fetcher.calls)
		assert.Contains(t, deck.Fragments()[0], "data:image/png;base64,")
	})

	t.Run("figures embed setting wins over the directive", func(t *testing.T) {
		deck := defaultTestDeck()
		embed, noEmbed := true, false
		d := builders.NewDirectiveBuilder(entities.DirectiveFigures).
			WithFigures(entities.FigureOptions{Figures: []string{"a.png"}, Embed: &noEmbed}).
			Build()
		d.Embed = &embed

		_, err := ApplyDirectives(ctx, deck.Deck, []entities.Directive{d})
		require.NoError(t, err)

		assert.Empty(t, deck.fetcher.calls)
		assert.Contains(t, deck.Fragments()[0], `data-src="a.png"`)
	})

	t.Run("hidden directives do not fetch media", func(t *testing.T) {
		deck := mustTestDeck(builders.NewDeckConfigBuilder().WithEmbed(true).Build())
		d := builders.NewDirectiveBuilder(entities.DirectiveFigures).
			WithFigures(entities.FigureOptions{Figures: []string{"missing.png"}}).
			Hidden().
			Build()

		stats, err := ApplyDirectives(ctx, deck.Deck, []entities.Directive{d})

		require.NoError(t, err)
		assert.Equal(t, 1, stats.Hidden)
		assert.Empty(t, deck.fetcher.calls)
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		deck := mustTestDeck(builders.NewDeckConfigBuilder().WithEmbed(true).Build())
		directives := []entities.Directive{
			builders.NewDirectiveBuilder(entities.DirectiveSlide).WithContent("ok").Build(),
			{Kind: entities.DirectiveSlide, Image: "missing.png"},
			builders.NewDirectiveBuilder(entities.DirectiveSlide).WithContent("never").Build(),
		}

		stats, err := ApplyDirectives(ctx, deck.Deck, directives)

		require.Error(t, err)
		assert.True(t, errors.Is(err, entities.ErrFetch))
		assert.Contains(t, err.Error(), "directive 2 (slide)")
		assert.Equal(t, 1, stats.Applied)
		assert.Equal(t, 1, deck.Len())
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		deck := defaultTestDeck()

		_, err := ApplyDirectives(ctx, deck.Deck, []entities.Directive{{Kind: "poll"}})
		assert.Error(t, err)
	})

	t.Run("honours cancellation", func(t *testing.T) {
		deck := defaultTestDeck()
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := ApplyDirectives(cancelled, deck.Deck, []entities.Directive{
			builders.NewDirectiveBuilder(entities.DirectiveSlide).Build(),
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, deck.Len())
	})
}
