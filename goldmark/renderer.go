package goldmark

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/scribe"
	"github.com/mattn/go-runewidth"
	"github.com/yuin/goldmark/ast"
)

const (
	codeGutter  = "│ "
	quoteGutter = "┃ "
	bullet      = "• "
	minWrap     = 10
)

type postRenderer struct {
	width int

	title   lipgloss.Style
	section lipgloss.Style
	strong  lipgloss.Style
	em      lipgloss.Style
	code    lipgloss.Style
	link    lipgloss.Style
	muted   lipgloss.Style
	quote   lipgloss.Style
}

func newPostRenderer(theme scribe.Theme, width int) *postRenderer {
	accent := color(theme.Accent)
	muted := color(theme.Muted)
	return &postRenderer{
		width:   width,
		title:   lipgloss.NewStyle().Foreground(color(theme.Title)).Bold(true),
		section: lipgloss.NewStyle().Foreground(accent).Bold(true),
		strong:  lipgloss.NewStyle().Bold(true),
		em:      lipgloss.NewStyle().Italic(true),
		code:    lipgloss.NewStyle().Foreground(accent),
		link:    lipgloss.NewStyle().Underline(true),
		muted:   lipgloss.NewStyle().Foreground(muted).Faint(true),
		quote:   lipgloss.NewStyle().Foreground(muted).Italic(true),
	}
}

func color(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

// render emits each top-level block separated by a blank line.
func (r *postRenderer) render(doc ast.Node, source []byte) string {
	var blocks []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if s := r.block(n, source, r.width); s != "" {
			blocks = append(blocks, s)
		}
	}
	return strings.Join(blocks, "\n\n")
}

func (r *postRenderer) block(node ast.Node, source []byte, width int) string {
	switch n := node.(type) {
	case *ast.Heading:
		return r.heading(n, source, width)
	case *ast.Paragraph, *ast.TextBlock:
		return wrap(r.inline(n, source), width)
	case *ast.List:
		return r.list(n, source, width)
	case *ast.Blockquote:
		return r.blockquote(n, source, width)
	case *ast.FencedCodeBlock:
		lang := string(n.Language(source))
		body := r.codeLines(n, source)
		if lang == "" {
			return body
		}
		return r.muted.Render(lang) + "\n" + body
	case *ast.CodeBlock:
		return r.codeLines(n, source)
	case *ast.ThematicBreak:
		return r.muted.Render(strings.Repeat("─", min(width, defaultWidth)))
	case *ast.HTMLBlock:
		return strings.TrimRight(string(rawLines(n, source)), "\n")
	default:
		var parts []string
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			if s := r.block(c, source, width); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n\n")
	}
}

// heading renders the post title (H1) with an underline rule sized to the
// visible title width. Lower levels are section headings.
func (r *postRenderer) heading(n *ast.Heading, source []byte, width int) string {
	content := r.inline(n, source)
	if n.Level > 1 {
		return wrap(r.section.Render(content), width)
	}
	title := wrap(r.title.Render(content), width)
	rule := min(lipgloss.Width(content), width)
	return title + "\n" + r.section.Render(strings.Repeat("═", rule))
}

func (r *postRenderer) list(n *ast.List, source []byte, width int) string {
	var lines []string
	num := n.Start
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		marker := bullet
		if n.IsOrdered() {
			marker = fmt.Sprintf("%d. ", num)
			num++
		}
		indent := strings.Repeat(" ", runewidth.StringWidth(marker))
		inner := max(width-len(indent), minWrap)

		var parts []string
		for ic := c.FirstChild(); ic != nil; ic = ic.NextSibling() {
			if s := r.block(ic, source, inner); s != "" {
				parts = append(parts, s)
			}
		}
		for i, line := range strings.Split(strings.Join(parts, "\n"), "\n") {
			if i == 0 {
				lines = append(lines, r.muted.Render(marker)+line)
				continue
			}
			lines = append(lines, indent+line)
		}
	}
	return strings.Join(lines, "\n")
}

func (r *postRenderer) blockquote(n *ast.Blockquote, source []byte, width int) string {
	inner := max(width-runewidth.StringWidth(quoteGutter), minWrap)
	var parts []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if s := r.block(c, source, inner); s != "" {
			parts = append(parts, s)
		}
	}
	gutter := r.muted.Render(quoteGutter)
	lines := strings.Split(strings.Join(parts, "\n\n"), "\n")
	for i, line := range lines {
		lines[i] = gutter + r.quote.Render(line)
	}
	return strings.Join(lines, "\n")
}

func (r *postRenderer) codeLines(n ast.Node, source []byte) string {
	gutter := r.muted.Render(codeGutter)
	body := strings.TrimRight(string(rawLines(n, source)), "\n")
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = gutter + line
	}
	return strings.Join(lines, "\n")
}

func rawLines(n ast.Node, source []byte) []byte {
	var out []byte
	segs := n.Lines()
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		out = append(out, seg.Value(source)...)
	}
	return out
}

func (r *postRenderer) inline(node ast.Node, source []byte) string {
	var b strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.inlineNode(c, source, &b)
	}
	return b.String()
}

func (r *postRenderer) inlineNode(node ast.Node, source []byte, b *strings.Builder) {
	switch n := node.(type) {
	case *ast.Text:
		b.Write(n.Segment.Value(source))
		switch {
		case n.HardLineBreak():
			b.WriteByte('\n')
		case n.SoftLineBreak():
			b.WriteByte(' ')
		}
	case *ast.String:
		b.Write(n.Value)
	case *ast.Emphasis:
		if n.Level == 1 {
			b.WriteString(r.em.Render(r.inline(n, source)))
		} else {
			b.WriteString(r.strong.Render(r.inline(n, source)))
		}
	case *ast.CodeSpan:
		b.WriteString(r.code.Render(r.inline(n, source)))
	case *ast.Link:
		b.WriteString(r.link.Render(r.inline(n, source)))
		b.WriteString(" " + r.muted.Render("("+string(n.Destination)+")"))
	case *ast.AutoLink:
		b.WriteString(r.link.Render(string(n.URL(source))))
	case *ast.Image:
		alt := r.inline(n, source)
		if alt == "" {
			alt = "image"
		}
		b.WriteString(r.muted.Render("[" + alt + "]"))
	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(source))
		}
	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.inlineNode(c, source, b)
		}
	}
}

func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}
