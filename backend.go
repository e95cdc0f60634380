package scribe

import "context"

// Backend is a strategy interface for generation services.
//
// Probe never fails: transport errors, bad statuses and undecodable bodies
// all yield the zero Probe. Generate returns the generated text or a
// *Failure describing why there is none.
type Backend interface {
	Name() string
	Probe(ctx context.Context) Probe
	Generate(ctx context.Context, model, prompt string) (string, error)
}
