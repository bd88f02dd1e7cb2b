package entities

import (
	"fmt"
	"strings"
)

// FragmentStyle names a reveal.js fragment animation.
// The zero value means no animation.
type FragmentStyle string

const (
	FragmentNone                  FragmentStyle = ""
	FragmentFadeIn                FragmentStyle = "fade-in"
	FragmentFadeOut               FragmentStyle = "fade-out"
	FragmentFadeUp                FragmentStyle = "fade-up"
	FragmentFadeDown              FragmentStyle = "fade-down"
	FragmentFadeLeft              FragmentStyle = "fade-left"
	FragmentFadeRight             FragmentStyle = "fade-right"
	FragmentFadeInThenOut         FragmentStyle = "fade-in-then-out"
	FragmentFadeInThenSemiOut     FragmentStyle = "fade-in-then-semi-out"
	FragmentGrow                  FragmentStyle = "grow"
	FragmentShrink                FragmentStyle = "shrink"
	FragmentStrike                FragmentStyle = "strike"
	FragmentHighlightRed          FragmentStyle = "highlight-red"
	FragmentHighlightGreen        FragmentStyle = "highlight-green"
	FragmentHighlightBlue         FragmentStyle = "highlight-blue"
	FragmentHighlightCurrentRed   FragmentStyle = "highlight-current-red"
	FragmentHighlightCurrentGreen FragmentStyle = "highlight-current-green"
	FragmentHighlightCurrentBlue  FragmentStyle = "highlight-current-blue"
)

var fragmentStyles = map[FragmentStyle]struct{}{
	FragmentFadeIn:                {},
	FragmentFadeOut:               {},
	FragmentFadeUp:                {},
	FragmentFadeDown:              {},
	FragmentFadeLeft:              {},
	FragmentFadeRight:             {},
	FragmentFadeInThenOut:         {},
	FragmentFadeInThenSemiOut:     {},
	FragmentGrow:                  {},
	FragmentShrink:                {},
	FragmentStrike:                {},
	FragmentHighlightRed:          {},
	FragmentHighlightGreen:        {},
	FragmentHighlightBlue:         {},
	FragmentHighlightCurrentRed:   {},
	FragmentHighlightCurrentGreen: {},
	FragmentHighlightCurrentBlue:  {},
}

// Valid reports whether s is FragmentNone or one of the known animations
func (s FragmentStyle) Valid() bool {
	if s == FragmentNone {
		return true
	}
	_, ok := fragmentStyles[s]
	return ok
}

// ParseFragmentStyle converts a name such as "fade-up" into a FragmentStyle
func ParseFragmentStyle(name string) (FragmentStyle, error) {
	style := FragmentStyle(strings.TrimSpace(name))
	if !style.Valid() {
		return FragmentNone, fmt.Errorf("%w: %q", ErrInvalidFragment, name)
	}
	return style, nil
}
