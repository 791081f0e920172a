package content

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Initials joins the first letter of each whitespace separated token of name.
// Names are NFC normalised first so a decomposed accent stays with its letter.
func Initials(name string) string {
	var b strings.Builder
	for _, token := range strings.Fields(norm.NFC.String(name)) {
		r, _ := utf8.DecodeRuneInString(token)
		b.WriteRune(r)
	}
	return b.String()
}
