package entry

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// StripDecoration removes a leading run of Extended_Pictographic symbols
// (emoji) plus the whitespace after it, e.g. "☕ Coffee" -> "Coffee".
// Labels without a decorative prefix are only trimmed.
func StripDecoration(label string) string {
	rest := label
	state := -1
	for rest != "" {
		var cluster string
		var next string
		cluster, next, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if !isDecorative(cluster) {
			break
		}
		rest = next
	}
	return strings.TrimSpace(rest)
}

// isDecorative reports whether a grapheme cluster starts with an
// Extended_Pictographic rune. Variation selectors, skin tone modifiers and
// ZWJ continuations belong to the same cluster and go with it.
func isDecorative(cluster string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	return r != utf8.RuneError && unicode.Is(extendedPictographic, r)
}
