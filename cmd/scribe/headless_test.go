package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/scribe"
	"github.com/fwojciec/scribe/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headlessWriter(generate func(ctx context.Context, model, prompt string) (string, error)) *scribe.Writer {
	backend := &mock.Backend{
		NameFn: func() string { return "Ollama" },
		ProbeFn: func(context.Context) scribe.Probe {
			return scribe.NewProbe([]string{"llama2:latest"})
		},
		GenerateFn: generate,
	}
	return scribe.NewWriter(backend, scribe.WithIDFunc(func() string { return "req-1" }))
}

func headlessRequest() scribe.BlogRequest {
	req := scribe.NewBlogRequest()
	req.Title = "Local LLMs"
	req.Model = "llama2"
	return req
}

func TestRunHeadless(t *testing.T) {
	t.Parallel()

	post := func(context.Context, string, string) (string, error) { return "# Local LLMs\n\nBody.", nil }

	t.Run("prints text", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		err := runHeadless(context.Background(), headlessWriter(post).Write, headlessRequest(), headlessOptions{}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Equal(t, "# Local LLMs\n\nBody.\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("prints marked failure to stderr", func(t *testing.T) {
		t.Parallel()
		req := headlessRequest()
		req.Model = "gemma"
		var stdout, stderr bytes.Buffer
		err := runHeadless(context.Background(), headlessWriter(post).Write, req, headlessOptions{}, &stdout, &stderr)
		assert.ErrorIs(t, err, errGenerationFailed)
		assert.Empty(t, stdout.String())
		assert.Equal(t, "❌ Model 'gemma' not found. Available models: llama2\n", stderr.String())
	})

	t.Run("json envelope", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		err := runHeadless(context.Background(), headlessWriter(post).Write, headlessRequest(), headlessOptions{JSON: true}, &stdout, &stderr)
		require.NoError(t, err)

		var env map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &env))
		assert.Equal(t, "req-1", env["id"])
		assert.Equal(t, "# Local LLMs\n\nBody.", env["text"])
	})

	t.Run("json envelope for failure", func(t *testing.T) {
		t.Parallel()
		empty := func(context.Context, string, string) (string, error) { return "  ", nil }
		var stdout, stderr bytes.Buffer
		err := runHeadless(context.Background(), headlessWriter(empty).Write, headlessRequest(), headlessOptions{JSON: true}, &stdout, &stderr)
		assert.ErrorIs(t, err, errGenerationFailed)

		var env map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &env))
		errObj, ok := env["error"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "empty_response", errObj["kind"])
	})

	t.Run("save writes the post", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		var stdout, stderr bytes.Buffer
		err := runHeadless(context.Background(), headlessWriter(post).Write, headlessRequest(), headlessOptions{Save: true, OutputDir: dir}, &stdout, &stderr)
		require.NoError(t, err)

		path := filepath.Join(dir, "Local_LLMs.txt")
		assert.Equal(t, "Saved to "+path+"\n", stderr.String())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# Local LLMs\n\nBody.", string(data))
	})

	t.Run("save is skipped on failure", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		req := headlessRequest()
		req.Title = ""
		var stdout, stderr bytes.Buffer
		err := runHeadless(context.Background(), headlessWriter(post).Write, req, headlessOptions{Save: true, OutputDir: dir}, &stdout, &stderr)
		assert.ErrorIs(t, err, errGenerationFailed)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
