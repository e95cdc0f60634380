package bubbletea_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/scribe"
	bt "github.com/fwojciec/scribe/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestPostBlock(t *testing.T) {
	t.Parallel()

	theme := scribe.DefaultTheme()
	styles := bt.NewStyles(theme)

	t.Run("renders post followed by stats", func(t *testing.T) {
		t.Parallel()
		src := "# Title\n\n## One\n\nFirst part.\n\n## Two\n\n![chart](c.png)\n\nSecond part."
		b := bt.NewPostBlock(src, 500, theme, styles)

		view := b.View(60)
		assert.Contains(t, view, "First part.")
		assert.Contains(t, view, "Second part.")
		assert.Contains(t, view, "8 words (target 500) · 2 sections · 1 image")

		stats := b.Stats()
		assert.Equal(t, 2, stats.Sections)
		assert.Equal(t, 1, stats.Images)
	})

	t.Run("omits target when unknown", func(t *testing.T) {
		t.Parallel()
		view := bt.NewPostBlock("just three words", 0, theme, styles).View(60)
		assert.Contains(t, view, "3 words")
		assert.NotContains(t, view, "target")
	})

	t.Run("view is stable per width", func(t *testing.T) {
		t.Parallel()
		b := bt.NewPostBlock(strings.Repeat("lorem ipsum ", 40), 250, theme, styles)
		wide := b.View(80)
		narrow := b.View(30)
		assert.Equal(t, wide, b.View(80))
		assert.NotEqual(t, wide, narrow)
	})
}

func TestFailureBlock(t *testing.T) {
	t.Parallel()

	styles := bt.NewStyles(scribe.DefaultTheme())

	tests := []struct {
		name    string
		failure *scribe.Failure
		want    string
	}{
		{"unreachable uses warning marker", scribe.Unreachable("Ollama"), "⚠️ Cannot reach Ollama"},
		{"not found uses error marker", scribe.NotFound(""), "❌ Not found: the requested model or endpoint does not exist on the server"},
		{"empty response", scribe.EmptyResponse(), "❌ Empty response"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			view := bt.NewFailureBlock(tt.failure, styles).View(200)
			assert.Contains(t, view, tt.want)
		})
	}

	t.Run("canceled has no marker", func(t *testing.T) {
		t.Parallel()
		view := bt.NewFailureBlock(scribe.Canceled(), styles).View(80)
		assert.Contains(t, view, "Generation canceled.")
		assert.NotContains(t, view, scribe.MarkerError)
	})

	t.Run("result dispatch", func(t *testing.T) {
		t.Parallel()
		theme := scribe.DefaultTheme()
		_, isPost := bt.NewResultBlock(scribe.Result{Text: "ok"}, 250, theme, styles).(*bt.PostBlock)
		_, isFailure := bt.NewResultBlock(scribe.Result{Failure: scribe.Canceled()}, 250, theme, styles).(*bt.FailureBlock)
		assert.True(t, isPost)
		assert.True(t, isFailure)
	})
}
