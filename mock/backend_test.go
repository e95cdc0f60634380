package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/scribe"
	"github.com/fwojciec/scribe/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_Name(t *testing.T) {
	t.Parallel()

	t.Run("defaults to mock", func(t *testing.T) {
		t.Parallel()
		b := mock.Backend{}
		assert.Equal(t, "mock", b.Name())
	})

	t.Run("delegates to NameFn", func(t *testing.T) {
		t.Parallel()
		b := mock.Backend{NameFn: func() string { return "Ollama (test)" }}
		assert.Equal(t, "Ollama (test)", b.Name())
	})
}

func TestBackend_Probe(t *testing.T) {
	t.Parallel()

	t.Run("delegates to ProbeFn", func(t *testing.T) {
		t.Parallel()
		want := scribe.NewProbe([]string{"llama2:7b"})
		b := mock.Backend{ProbeFn: func(context.Context) scribe.Probe { return want }}
		assert.Equal(t, want, b.Probe(context.Background()))
	})

	t.Run("panics when ProbeFn not set", func(t *testing.T) {
		t.Parallel()
		b := mock.Backend{}
		assert.Panics(t, func() { b.Probe(context.Background()) })
	})
}

func TestBackend_Generate(t *testing.T) {
	t.Parallel()

	t.Run("delegates to GenerateFn", func(t *testing.T) {
		t.Parallel()
		b := mock.Backend{
			GenerateFn: func(_ context.Context, model, prompt string) (string, error) {
				return model + ":" + prompt, nil
			},
		}
		got, err := b.Generate(context.Background(), "llama2", "hi")
		require.NoError(t, err)
		assert.Equal(t, "llama2:hi", got)
	})

	t.Run("returns error", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("boom")
		b := mock.Backend{
			GenerateFn: func(context.Context, string, string) (string, error) {
				return "", wantErr
			},
		}
		_, err := b.Generate(context.Background(), "llama2", "hi")
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("panics when GenerateFn not set", func(t *testing.T) {
		t.Parallel()
		b := mock.Backend{}
		assert.Panics(t, func() {
			_, _ = b.Generate(context.Background(), "llama2", "hi")
		})
	})
}
