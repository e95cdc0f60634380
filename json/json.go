// Package json provides the JSON wire format for generation results and
// request files used by the headless command line mode.
package json

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/scribe"
)

const envelopeVersion = 1

// envelope is the v1 wire format for a generation result.
type envelope struct {
	Version int         `json:"version"`
	ID      string      `json:"id,omitempty"`
	Request requestDTO  `json:"request"`
	Text    *string     `json:"text,omitempty"`
	Error   *failureDTO `json:"error,omitempty"`
}

type failureDTO struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Marked  string `json:"marked"`
}

// MarshalResult serializes a request and its result in v1 envelope format.
func MarshalResult(req scribe.BlogRequest, res scribe.Result) ([]byte, error) {
	env := envelope{
		Version: envelopeVersion,
		ID:      res.ID,
		Request: marshalRequest(req),
	}
	if res.Failure != nil {
		env.Error = &failureDTO{
			Kind:    string(res.Failure.Kind),
			Message: res.Failure.Message,
			Marked:  res.Failure.String(),
		}
	} else {
		text := res.Text
		env.Text = &text
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalResult deserializes a v1 envelope.
func UnmarshalResult(data []byte) (scribe.BlogRequest, scribe.Result, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return scribe.BlogRequest{}, scribe.Result{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != envelopeVersion {
		return scribe.BlogRequest{}, scribe.Result{}, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	if (env.Text == nil) == (env.Error == nil) {
		return scribe.BlogRequest{}, scribe.Result{}, fmt.Errorf("envelope must carry exactly one of text or error")
	}
	req := unmarshalRequest(env.Request)
	res := scribe.Result{ID: env.ID, Model: req.Model}
	if env.Error != nil {
		res.Failure = &scribe.Failure{
			Kind:    scribe.FailureKind(env.Error.Kind),
			Message: env.Error.Message,
		}
	} else {
		res.Text = *env.Text
	}
	return req, res, nil
}
