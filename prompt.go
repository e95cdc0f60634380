package scribe

import (
	"fmt"
	"strings"
)

// ComposePrompt builds the generation instruction for a request.
func ComposePrompt(req BlogRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a well-structured, engaging blog post titled %q.\n\n", strings.TrimSpace(req.Title))
	b.WriteString("Structure the post as follows:\n")
	b.WriteString("1. An introduction that hooks the reader and states what the post covers.\n")
	if kw := req.KeywordList(); len(kw) > 0 {
		fmt.Fprintf(&b, "2. Body sections with descriptive subheadings that naturally use these keywords: %s.\n", strings.Join(kw, ", "))
	} else {
		b.WriteString("2. Body sections with descriptive subheadings.\n")
	}
	b.WriteString("3. A conclusion that summarizes the key points.\n\n")
	fmt.Fprintf(&b, "The post should be approximately %d words long. Format it in Markdown.", req.WordCount)
	return b.String()
}
