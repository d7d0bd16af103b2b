package sentiment

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases text using French casing rules, composes accents (NFC)
// and trims surrounding whitespace.
func Normalize(text string) string {
	// cases.Caser is stateful, so one is created per call.
	lower := cases.Lower(language.French).String(text)
	return strings.TrimSpace(norm.NFC.String(lower))
}

// Tokenize splits normalized text into word tokens. Letters and digits form
// words; any other rune (whitespace, punctuation, apostrophes) is a boundary.
func Tokenize(text string) []string {
	return strings.FieldsFunc(Normalize(text), isBoundary)
}

func isBoundary(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r)
}
