package scribe_test

import (
	"testing"

	"github.com/fwojciec/scribe"
	"github.com/stretchr/testify/assert"
)

func TestExportName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title, want string
	}{
		{"My First Blog Post", "My_First_Blog_Post.txt"},
		{"  padded title  ", "padded_title.txt"},
		{"Go/Rust compared", "GoRust_compared.txt"},
		{"", "blog_post.txt"},
		{"..", "blog_post.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scribe.ExportName(tt.title))
		})
	}
}
