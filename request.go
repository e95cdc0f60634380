package scribe

import (
	"fmt"
	"strings"
)

// Form bounds for a blog request.
const (
	MinWordCount     = 250
	MaxWordCount     = 1000
	DefaultWordCount = 250
	WordCountStep    = 50

	MinImageCount     = 1
	MaxImageCount     = 5
	DefaultImageCount = 1
)

// BlogRequest carries the form values for a single generation.
// ImageCount is collected by the form but does not affect the prompt.
type BlogRequest struct {
	Title      string
	Keywords   string // free text, comma or newline separated
	WordCount  int
	ImageCount int
	Model      string
}

// NewBlogRequest returns a request with the form defaults applied.
func NewBlogRequest() BlogRequest {
	return BlogRequest{
		WordCount:  DefaultWordCount,
		ImageCount: DefaultImageCount,
	}
}

// Validate checks the request against the form bounds.
func (r BlogRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required: %w", ErrValidation)
	}
	if r.WordCount < MinWordCount || r.WordCount > MaxWordCount {
		return fmt.Errorf("word count must be in [%d, %d], got %d: %w", MinWordCount, MaxWordCount, r.WordCount, ErrValidation)
	}
	if r.ImageCount < MinImageCount || r.ImageCount > MaxImageCount {
		return fmt.Errorf("image count must be in [%d, %d], got %d: %w", MinImageCount, MaxImageCount, r.ImageCount, ErrValidation)
	}
	if strings.TrimSpace(r.Model) == "" {
		return fmt.Errorf("model is required: %w", ErrValidation)
	}
	return nil
}

// KeywordList splits Keywords on commas and newlines, dropping blanks.
func (r BlogRequest) KeywordList() []string {
	fields := strings.FieldsFunc(r.Keywords, func(c rune) bool {
		return c == ',' || c == '\n'
	})
	var out []string
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// ClampWordCount bounds n to the allowed word count range.
func ClampWordCount(n int) int {
	return min(max(n, MinWordCount), MaxWordCount)
}

// ClampImageCount bounds n to the allowed image count range.
func ClampImageCount(n int) int {
	return min(max(n, MinImageCount), MaxImageCount)
}
