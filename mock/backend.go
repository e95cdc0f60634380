// Package mock provides test doubles for scribe interfaces using function fields.
package mock

import (
	"context"

	"github.com/fwojciec/scribe"
)

// Interface compliance check.
var _ scribe.Backend = (*Backend)(nil)

// Backend is a test double for scribe.Backend.
// ProbeFn and GenerateFn panic when nil to catch missing setup. NameFn is
// nil-safe and returns "mock".
type Backend struct {
	NameFn     func() string
	ProbeFn    func(ctx context.Context) scribe.Probe
	GenerateFn func(ctx context.Context, model, prompt string) (string, error)
}

// Name delegates to NameFn. Returns "mock" when NameFn is nil.
func (b *Backend) Name() string {
	if b.NameFn == nil {
		return "mock"
	}
	return b.NameFn()
}

// Probe delegates to ProbeFn.
func (b *Backend) Probe(ctx context.Context) scribe.Probe {
	return b.ProbeFn(ctx)
}

// Generate delegates to GenerateFn.
func (b *Backend) Generate(ctx context.Context, model, prompt string) (string, error) {
	return b.GenerateFn(ctx, model, prompt)
}
