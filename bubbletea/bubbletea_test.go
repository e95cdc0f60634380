package bubbletea_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/scribe"
	bt "github.com/fwojciec/scribe/bubbletea"
	"github.com/stretchr/testify/require"
)

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, generate bt.GenerateFunc, export bt.ExportFunc, cfg bt.Config) bt.Model {
	t.Helper()
	m := bt.New(generate, export, scribe.DefaultTheme(), cfg)
	return updateModel(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// pressKeys sends each key type in order.
func pressKeys(t *testing.T, m bt.Model, keys ...tea.KeyType) bt.Model {
	t.Helper()
	for _, k := range keys {
		m = updateModel(t, m, tea.KeyMsg{Type: k})
	}
	return m
}

// typeText sends s as a single runes key message.
func typeText(t *testing.T, m bt.Model, s string) bt.Model {
	t.Helper()
	return updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// connected is a startup state with two installed models.
func connected() bt.Config {
	return bt.Config{
		Service: "Ollama",
		Probe:   scribe.NewProbe([]string{"llama2:latest", "mistral:7b"}),
	}
}

// echoGenerate returns a short post mentioning the requested title.
func echoGenerate(_ context.Context, req scribe.BlogRequest) scribe.Result {
	return scribe.Result{ID: "req-1", Model: req.Model, Text: "# " + req.Title + "\n\nHello from the model."}
}

// nopExport is an export function that is never expected to be called.
func nopExport(string, string) (string, error) {
	return "", nil
}
