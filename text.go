package scribe

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// CleanText strips terminal escape sequences and control characters from
// generated text before it is displayed or saved. Tabs and newlines are kept
// and CRLF line endings become LF.
func CleanText(s string) string {
	s = ansi.Strip(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' {
			return r
		}
		if r <= 0x1F || r == 0x7F {
			return -1
		}
		return r
	}, s)
}
