package services

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	slugSeparators   = strings.NewReplacer(".", "-", "_", "-", ":", "-")
	slugLetterDigit  = regexp.MustCompile(`(\D+)(\d+)`)
	slugDigitLetter  = regexp.MustCompile(`(\d+)(\D+)`)
	slugRepeatedDash = regexp.MustCompile(`-{2,}`)
	slugLower        = cases.Lower(language.Und)
)

// Slugify turns s into a hyphen-delimited identifier suitable for a URL
// fragment or an HTML id. Dots, underscores and colons become hyphens,
// hyphens are inserted between letters and digits and at camel-case
// boundaries, anything that is not a letter, a digit or a hyphen is
// dropped and runs of hyphens are collapsed.
//
//	Slugify("Section_1.Intro", true)  == "section-1-intro"
//	Slugify("CamelCase2Test", true)   == "camel-case-2-test"
//
// Applying Slugify to its own output returns it unchanged.
func Slugify(s string, lower bool) string {
	s = slugSeparators.Replace(s)
	s = slugLetterDigit.ReplaceAllString(s, "${1}-${2}")
	s = slugDigitLetter.ReplaceAllString(s, "${1}-${2}")
	s = splitCamelCase(s)

	// Lowering may add combining marks ("İ" becomes "i" + U+0307), so it
	// runs before the filter.
	if lower {
		s = slugLower.String(s)
	}

	s = strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsLetter(r) || unicode.IsNumber(r) {
			return r
		}
		return -1
	}, s)
	return slugRepeatedDash.ReplaceAllString(s, "-")
}

// splitCamelCase puts a hyphen before an upper-case ASCII letter that
// follows a lower-case one, or that starts a capitalised word ("HTTPServer"
// becomes "HTTP-Server"). Only ASCII letters count as cased here.
func splitCamelCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 8)

	for i, r := range runes {
		if isASCIIUpper(r) {
			afterLower := i > 0 && isASCIILower(runes[i-1])
			beforeLower := i > 0 && i+1 < len(runes) && isASCIILower(runes[i+1])
			if afterLower || beforeLower {
				b.WriteByte('-')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
