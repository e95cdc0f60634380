// Package bubbletea provides a Bubble Tea TUI for writing blog posts.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/scribe"
)

// GenerateFunc produces a post for req. It blocks until the result is ready
// or ctx is cancelled and reports every failure through the Result.
type GenerateFunc func(ctx context.Context, req scribe.BlogRequest) scribe.Result

// ExportFunc saves a generated post and returns where it was written.
type ExportFunc func(title, text string) (string, error)

// Config carries the startup state shown by the form.
type Config struct {
	// Context is the parent of every generation; cancelling it aborts an
	// in-flight request. Nil means context.Background.
	Context context.Context
	Service string       // display name of the generation service
	Probe   scribe.Probe // startup probe used to populate the model picker
	Model   string       // preselected model; ignored when not offered
}

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. The context is used for graceful shutdown: when cancelled, the
// program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// GenerationDoneMsg delivers the result of a submitted request.
type GenerationDoneMsg struct {
	Request scribe.BlogRequest
	Result  scribe.Result
}

// ExportDoneMsg reports the outcome of a download.
type ExportDoneMsg struct {
	Path string
	Err  error
}
