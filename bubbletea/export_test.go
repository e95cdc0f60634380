package bubbletea

import "context"

// SetRunningWithCancel puts the model in a running state with a cancel function.
func SetRunningWithCancel(m Model, cancel context.CancelFunc) Model {
	m.running = true
	m.cancel = cancel
	return m
}

// RenderPane exports paneView for testing.
func RenderPane(m Model) string {
	return m.paneView()
}
