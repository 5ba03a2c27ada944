package css

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Escape serializes text as a CSS identifier.
//
// Every code point is mapped on its own, but positional rules look at the
// first code point of the input:
//
//   - U+0000 becomes U+FFFD
//   - control characters, and a digit at position 0 (or at position 1
//     after a leading '-') become a code-point escape "\hh "
//   - a lone "-" becomes "\-"
//   - non-ASCII code points, '-', '_', ASCII digits and letters are kept
//   - any other character is escaped with a backslash
//
// Escape("") is "".
func Escape(text string) string {
	if text == "" {
		return ""
	}
	first, _ := utf8.DecodeRuneInString(text)
	single := utf8.RuneCountInString(text) == 1
	var b strings.Builder
	b.Grow(len(text) + 8)
	inx := 0
	for _, r := range text {
		switch {
		case r == 0:
			b.WriteRune(utf8.RuneError)
		case r >= 0x01 && r <= 0x1f, r == 0x7f,
			inx == 0 && isDigit(r),
			inx == 1 && first == '-' && isDigit(r):
			writeCodePoint(&b, r)
		case r == '-' && single:
			b.WriteString(`\-`)
		case r >= 0x80, r == '-', r == '_', isDigit(r), isLetter(r):
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
		inx++
	}
	return b.String()
}

// writeCodePoint writes the CSS code-point escape for r, including the
// terminating space.
func writeCodePoint(b *strings.Builder, r rune) {
	b.WriteByte('\\')
	b.WriteString(strconv.FormatInt(int64(r), 16))
	b.WriteByte(' ')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
