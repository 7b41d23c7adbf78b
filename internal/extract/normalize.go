package extract

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// labelNormalizer strips diacritics by decomposing to NFD, removing
// combining marks, and recomposing. Greek station labels carry tonos
// accents ("Μέση") that would otherwise defeat substring matching.
var labelNormalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeLabel lower-cases a label and strips diacritics so keyword
// matching is insensitive to accents and capitalization. On a transform
// failure the lower-cased original is returned; matching then simply
// degrades to accent-sensitive.
func normalizeLabel(s string) string {
	out, _, err := transform.String(labelNormalizer, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
