package scribe

import (
	"slices"
	"strings"
)

// FallbackModels are offered when the probe reports no installed models.
var FallbackModels = []string{"llama2", "llama3", "mistral", "codellama", "phi", "gemma"}

// BaseModelName strips the version tag from a model identifier:
// "llama2:7b" becomes "llama2".
func BaseModelName(id string) string {
	name, _, _ := strings.Cut(strings.TrimSpace(id), ":")
	return name
}

// BaseModelNames returns the base names of ids, deduplicated in first
// occurrence order.
func BaseModelNames(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		name := BaseModelName(id)
		if name == "" || slices.Contains(out, name) {
			continue
		}
		out = append(out, name)
	}
	return out
}

// ModelOptions returns the models a user can pick from: the probed models,
// or FallbackModels when the probe found none.
func ModelOptions(p Probe) []string {
	if len(p.Models) > 0 {
		return p.Models
	}
	return FallbackModels
}
