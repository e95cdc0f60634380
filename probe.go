package scribe

import "slices"

// Probe is the outcome of a liveness query against a generation service.
// The zero value means the service is unavailable.
type Probe struct {
	Available bool
	Models    []string // base names, probe order, deduplicated
	Tags      []string // raw identifiers as returned by the service
}

// NewProbe creates an available Probe from the raw model identifiers.
func NewProbe(tags []string) Probe {
	return Probe{
		Available: true,
		Models:    BaseModelNames(tags),
		Tags:      tags,
	}
}

// HasModel reports whether the base name of model is among the probed models.
func (p Probe) HasModel(model string) bool {
	return slices.Contains(p.Models, BaseModelName(model))
}
