package scribe

import "strings"

const defaultExportStem = "blog_post"

// ExportName returns the plain-text file name for a post titled title:
// spaces become underscores and path separators are dropped.
func ExportName(title string) string {
	stem := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return -1
		case ' ', '\t':
			return '_'
		}
		return r
	}, strings.TrimSpace(title))
	stem = strings.Trim(stem, ".")
	if stem == "" {
		stem = defaultExportStem
	}
	return stem + ".txt"
}
