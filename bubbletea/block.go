package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/scribe"
	"github.com/fwojciec/scribe/goldmark"
)

// ResultBlock is a renderable generation outcome. View takes a width so the
// root model controls layout and blocks are testable in isolation.
type ResultBlock interface {
	View(width int) string
}

// NewResultBlock returns the block that displays res.
func NewResultBlock(res scribe.Result, targetWords int, theme scribe.Theme, styles Styles) ResultBlock {
	if res.Failure != nil {
		return NewFailureBlock(res.Failure, styles)
	}
	return NewPostBlock(res.Text, targetWords, theme, styles)
}

var _ ResultBlock = (*PostBlock)(nil)

// PostBlock renders a generated post as markdown followed by a word count.
// Rendering is cached per width since the post never changes.
type PostBlock struct {
	text    string
	target  int
	stats   goldmark.Stats
	theme   scribe.Theme
	styles  Styles
	byWidth map[int]string
}

// NewPostBlock creates a block for generated text. targetWords is the
// requested length, shown next to the actual count when positive.
func NewPostBlock(text string, targetWords int, theme scribe.Theme, styles Styles) *PostBlock {
	return &PostBlock{
		text:    text,
		target:  targetWords,
		stats:   goldmark.Analyze(text),
		theme:   theme,
		styles:  styles,
		byWidth: make(map[int]string),
	}
}

// Stats returns the counts shown under the post.
func (b *PostBlock) Stats() goldmark.Stats { return b.stats }

func (b *PostBlock) View(width int) string {
	if cached, ok := b.byWidth[width]; ok {
		return cached
	}
	out := goldmark.Render(b.text, width, b.theme) + "\n\n" + b.styles.Muted.Render(b.statsLine())
	b.byWidth[width] = out
	return out
}

func (b *PostBlock) statsLine() string {
	parts := []string{fmt.Sprintf("%d words", b.stats.Words)}
	if b.target > 0 {
		parts[0] += fmt.Sprintf(" (target %d)", b.target)
	}
	if b.stats.Sections > 0 {
		parts = append(parts, plural(b.stats.Sections, "section"))
	}
	if b.stats.Images > 0 {
		parts = append(parts, plural(b.stats.Images, "image"))
	}
	return strings.Join(parts, " · ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

var _ ResultBlock = (*FailureBlock)(nil)

// FailureBlock renders a marked failure message. Unreachable services are
// shown as warnings, cancellation as a muted note.
type FailureBlock struct {
	failure *scribe.Failure
	styles  Styles
}

// NewFailureBlock creates a FailureBlock.
func NewFailureBlock(f *scribe.Failure, styles Styles) *FailureBlock {
	return &FailureBlock{failure: f, styles: styles}
}

func (b *FailureBlock) View(width int) string {
	var content string
	switch b.failure.Kind {
	case scribe.FailureCanceled:
		content = b.styles.Muted.Render(b.failure.Message)
	case scribe.FailureUnreachable:
		content = b.styles.Warning.Render(b.failure.String())
	default:
		content = b.styles.Error.Render(b.failure.String())
	}
	return lipgloss.NewStyle().Width(width).Render(content)
}
