package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/scribe"
	"github.com/fwojciec/scribe/fs"
	scribejson "github.com/fwojciec/scribe/json"
)

// errGenerationFailed signals that the failure was already reported.
var errGenerationFailed = errors.New("generation failed")

type headlessOptions struct {
	JSON      bool
	Save      bool
	OutputDir string
}

// runHeadless performs one generation. Text goes to stdout; a failure is
// written marked to stderr and returned as errGenerationFailed. With JSON
// the envelope is printed to stdout for both outcomes.
func runHeadless(ctx context.Context, generate func(context.Context, scribe.BlogRequest) scribe.Result, req scribe.BlogRequest, opts headlessOptions, stdout, stderr io.Writer) error {
	res := generate(ctx, req)

	switch {
	case opts.JSON:
		data, err := scribejson.MarshalResult(req, res)
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Fprintln(stdout, string(data))
	case res.OK():
		fmt.Fprintln(stdout, res.Text)
	default:
		fmt.Fprintln(stderr, res.String())
	}

	if !res.OK() {
		return errGenerationFailed
	}
	if opts.Save {
		path, err := fs.Save(opts.OutputDir, req.Title, res.Text)
		if err != nil {
			return fmt.Errorf("save post: %w", err)
		}
		fmt.Fprintf(stderr, "Saved to %s\n", path)
	}
	return nil
}
