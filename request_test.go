package scribe_test

import (
	"testing"

	"github.com/fwojciec/scribe"
	"github.com/stretchr/testify/assert"
)

func validRequest() scribe.BlogRequest {
	req := scribe.NewBlogRequest()
	req.Title = "Getting Started with Go"
	req.Keywords = "go, concurrency"
	req.Model = "llama2"
	return req
}

func TestNewBlogRequest_Defaults(t *testing.T) {
	t.Parallel()
	req := scribe.NewBlogRequest()
	assert.Equal(t, 250, req.WordCount)
	assert.Equal(t, 1, req.ImageCount)
	assert.Empty(t, req.Title)
}

func TestBlogRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid request", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validRequest().Validate())
	})

	t.Run("empty keywords are allowed", func(t *testing.T) {
		t.Parallel()
		req := validRequest()
		req.Keywords = ""
		assert.NoError(t, req.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*scribe.BlogRequest)
		want   string
	}{
		{"blank title", func(r *scribe.BlogRequest) { r.Title = "   " }, "title is required"},
		{"word count below range", func(r *scribe.BlogRequest) { r.WordCount = 249 }, "word count"},
		{"word count above range", func(r *scribe.BlogRequest) { r.WordCount = 1001 }, "word count"},
		{"image count below range", func(r *scribe.BlogRequest) { r.ImageCount = 0 }, "image count"},
		{"image count above range", func(r *scribe.BlogRequest) { r.ImageCount = 6 }, "image count"},
		{"missing model", func(r *scribe.BlogRequest) { r.Model = "" }, "model is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := validRequest()
			tt.mutate(&req)
			err := req.Validate()
			assert.ErrorIs(t, err, scribe.ErrValidation)
			assert.ErrorContains(t, err, tt.want)
		})
	}

	t.Run("bounds are inclusive", func(t *testing.T) {
		t.Parallel()
		req := validRequest()
		req.WordCount, req.ImageCount = 1000, 5
		assert.NoError(t, req.Validate())
		req.WordCount, req.ImageCount = 250, 1
		assert.NoError(t, req.Validate())
	})
}

func TestBlogRequest_KeywordList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		keywords string
		want     []string
	}{
		{"empty", "", nil},
		{"comma separated", "go, testing ,tui", []string{"go", "testing", "tui"}},
		{"newline separated", "go\nollama", []string{"go", "ollama"}},
		{"drops blanks", " , go,, ", []string{"go"}},
		{"single phrase keeps spaces", "local language models", []string{"local language models"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := scribe.BlogRequest{Keywords: tt.keywords}
			assert.Equal(t, tt.want, req.KeywordList())
		})
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 250, scribe.ClampWordCount(0))
	assert.Equal(t, 600, scribe.ClampWordCount(600))
	assert.Equal(t, 1000, scribe.ClampWordCount(1050))
	assert.Equal(t, 1, scribe.ClampImageCount(-3))
	assert.Equal(t, 3, scribe.ClampImageCount(3))
	assert.Equal(t, 5, scribe.ClampImageCount(9))
}
