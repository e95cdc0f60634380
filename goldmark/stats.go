package goldmark

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"github.com/yuin/goldmark/ast"
)

// Stats summarizes a generated post.
type Stats struct {
	Words    int // words of prose, excluding markup and code
	Sections int // headings below the title level
	Images   int
}

// Analyze parses markdown source and counts its words, sections, and images.
// Image alt text is not prose.
func Analyze(source string) Stats {
	if source == "" {
		return Stats{}
	}
	src := []byte(source)
	var (
		stats Stats
		prose strings.Builder
	)
	_ = ast.Walk(parse(src), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if n.Type() == ast.TypeBlock {
			prose.WriteByte(' ')
		}
		switch n := n.(type) {
		case *ast.Heading:
			if n.Level > 1 {
				stats.Sections++
			}
		case *ast.Image:
			stats.Images++
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			prose.Write(n.Segment.Value(src))
			if n.SoftLineBreak() || n.HardLineBreak() {
				prose.WriteByte(' ')
			}
		case *ast.String:
			prose.Write(n.Value)
		}
		return ast.WalkContinue, nil
	})
	stats.Words = CountWords(prose.String())
	return stats
}

// CountWords counts Unicode word segments that contain a letter or digit.
func CountWords(s string) int {
	count := 0
	state := -1
	var word string
	for len(s) > 0 {
		word, s, state = uniseg.FirstWordInString(s, state)
		if strings.IndexFunc(word, isWordRune) >= 0 {
			count++
		}
	}
	return count
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
