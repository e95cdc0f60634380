// Package ollama implements [scribe.Backend] for a local Ollama service.
//
// It uses two endpoints: GET /api/tags to probe liveness and list the
// installed models, and POST /api/generate with streaming disabled to
// produce a post in a single round trip.
package ollama

const (
	defaultBaseURL = "http://localhost:11434"
	tagsPath       = "/api/tags"
	generatePath   = "/api/generate"
)

// tagsResponse is the body of GET /api/tags.
type tagsResponse struct {
	Models []tagsModel `json:"models"`
}

type tagsModel struct {
	Name string `json:"name"`
}

// generateRequest is the JSON body sent to POST /api/generate.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse is the body of a successful generate call. Response is a
// pointer so an absent field can be told apart from an empty one.
type generateResponse struct {
	Response *string `json:"response"`
}

// errorResponse is the optional body of a failed call.
type errorResponse struct {
	Error string `json:"error"`
}
