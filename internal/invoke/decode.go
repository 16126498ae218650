package invoke

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// decodeText converts captured process output to a string, replacing invalid
// UTF-8 with U+FFFD instead of failing.
func decodeText(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	decoded, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), "\uFFFD")
	}
	return string(decoded)
}
