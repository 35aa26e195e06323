package catalog

import (
	"strings"
	"unicode"

	"github.com/aurumworks/showcase/internal/domain"
)

// ColorLabel formats a variant tag for display: first letter capitalized,
// " Gold" appended, e.g. "rose" -> "Rose Gold".
func ColorLabel(color domain.ColorVariant) string {
	tag := string(color)
	if tag == "" {
		return ""
	}

	runes := []rune(tag)
	runes[0] = unicode.ToUpper(runes[0])

	var b strings.Builder
	b.WriteString(string(runes))
	b.WriteString(" Gold")
	return b.String()
}
