// Package gemini implements [scribe.Backend] for the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK and is used when a companion API
// key is configured instead of a local Ollama service.
package gemini

const (
	modelPrefix   = "models/"
	serviceName   = "Gemini API"
	probePageSize = 100
)
