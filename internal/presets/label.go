package presets

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatLabel converts a preset name into its display label: hyphen-separated
// tokens each get an upper-cased first character, the remainder is kept as
// is, and tokens are joined by single spaces. Empty tokens are dropped, so
// "fast--1080p" and "fast-1080p" both become "Fast 1080p".
func FormatLabel(name string) string {
	tokens := strings.Split(name, "-")
	parts := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token == "" {
			continue
		}
		parts = append(parts, upperFirst(token))
	}
	return strings.Join(parts, " ")
}

// upperFirst applies full Unicode upper-casing to the first rune only, so a
// leading "ß" becomes "SS" while "x264" becomes "X264".
func upperFirst(token string) string {
	r, size := utf8.DecodeRuneInString(token)
	if r == utf8.RuneError && size <= 1 {
		return token
	}
	return cases.Upper(language.Und).String(token[:size]) + token[size:]
}
