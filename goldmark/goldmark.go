// Package goldmark renders generated blog posts to ANSI-styled terminal
// output. goldmark parses the markdown and lipgloss styles it.
package goldmark

import (
	"github.com/fwojciec/scribe"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const defaultWidth = 80

// Render parses markdown source and returns ANSI-styled terminal output
// wrapped to width. Code blocks keep their original line breaks.
func Render(source string, width int, theme scribe.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = defaultWidth
	}
	src := []byte(source)
	return newPostRenderer(theme, width).render(parse(src), src)
}

func parse(source []byte) ast.Node {
	return goldmark.DefaultParser().Parse(text.NewReader(source))
}
