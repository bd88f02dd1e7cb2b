package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirective_Validate(t *testing.T) {
	tests := []struct {
		name      string
		directive Directive
		wantErr   bool
		errMsg    string
	}{
		{name: "slide", directive: Directive{Kind: DirectiveSlide}},
		{name: "outline", directive: Directive{Kind: DirectiveOutline}},
		{name: "section open", directive: Directive{Kind: DirectiveSectionOpen}},
		{name: "summary", directive: Directive{Kind: DirectiveSummary, Points: []string{"a"}, Fragment: "grow"}},
		{name: "figures", directive: Directive{Kind: DirectiveFigures, Figures: &FigureOptions{Figures: []string{"a.png"}}}},
		{name: "missing kind", directive: Directive{}, wantErr: true, errMsg: "kind is required"},
		{name: "unknown kind", directive: Directive{Kind: "poll"}, wantErr: true, errMsg: "unknown directive kind"},
		{name: "summary without points", directive: Directive{Kind: DirectiveSummary}, wantErr: true, errMsg: "at least one point"},
		{name: "summary with bad fragment", directive: Directive{Kind: DirectiveSummary, Points: []string{"a"}, Fragment: "spin"}, wantErr: true, errMsg: "invalid fragment style"},
		{name: "figures without block", directive: Directive{Kind: DirectiveFigures}, wantErr: true, errMsg: "needs a figures block"},
		{name: "empty figures block", directive: Directive{Kind: DirectiveSlide, Figures: &FigureOptions{}}, wantErr: true, errMsg: "at least one image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.directive.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPresentation_Validate(t *testing.T) {
	p := &Presentation{Directives: []Directive{{Kind: DirectiveSlide}, {Kind: "poll"}}}

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directive 2")
}

func TestDirective_Options(t *testing.T) {
	embed := false
	current := 2
	d := Directive{
		Kind:     DirectiveSlide,
		Hide:     true,
		ID:       "intro",
		Title:    "Plan",
		Content:  "body",
		Notes:    "notes",
		Markdown: true,
		Image:    "bg.png",
		Video:    "clip.mp4",
		Embed:    &embed,
		Current:  &current,
		Points:   []string{"p"},
		Fragment: "strike",
	}

	assert.Equal(t, SlideOptions{
		Hide:     true,
		ID:       "intro",
		Image:    "bg.png",
		Video:    "clip.mp4",
		Content:  "body",
		Notes:    "notes",
		Markdown: true,
		Embed:    &embed,
	}, d.SlideOptions())

	assert.Equal(t, OutlineOptions{Title: "Plan", Current: &current, Notes: "notes"}, d.OutlineOptions())

	summary, err := d.SummaryOptions()
	require.NoError(t, err)
	assert.Equal(t, SummaryOptions{Title: "Plan", Points: []string{"p"}, Fragment: FragmentStrike, Notes: "notes"}, summary)
}
