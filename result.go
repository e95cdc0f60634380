package scribe

// Result is the outcome of one generation: either Text or Failure is set,
// never both.
type Result struct {
	ID      string
	Model   string
	Text    string
	Failure *Failure
}

// OK reports whether the result carries generated text.
func (r Result) OK() bool { return r.Failure == nil }

// String returns the generated text, or the marked failure message.
func (r Result) String() string {
	if r.Failure != nil {
		return r.Failure.String()
	}
	return r.Text
}
