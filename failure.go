package scribe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
	"time"
)

// Marker prefixes distinguish a rendered Failure from generated text.
const (
	MarkerWarning = "⚠️ "
	MarkerError   = "❌ "
)

// Markers lists every prefix a rendered Failure can start with.
var Markers = []string{MarkerWarning, MarkerError}

// IsFailure reports whether s is a rendered Failure rather than generated text.
func IsFailure(s string) bool {
	for _, m := range Markers {
		if strings.HasPrefix(s, m) {
			return true
		}
	}
	return false
}

// FailureKind classifies why a generation produced no text.
type FailureKind string

const (
	FailureInvalid       FailureKind = "invalid"
	FailureUnreachable   FailureKind = "unreachable"
	FailureModelNotFound FailureKind = "model_not_found"
	FailureNotFound      FailureKind = "not_found"
	FailureTimeout       FailureKind = "timeout"
	FailureConnection    FailureKind = "connection"
	FailureRequest       FailureKind = "request"
	FailureEmptyResponse FailureKind = "empty_response"
	FailureCanceled      FailureKind = "canceled"
)

const notFoundFallback = "the requested model or endpoint does not exist on the server"

// Failure is a classified generation failure. It implements error so
// backends can return it through ordinary error paths.
type Failure struct {
	Kind    FailureKind
	Message string
}

// Interface compliance check.
var _ error = (*Failure)(nil)

func (f *Failure) Error() string { return f.Message }

// Marker returns the prefix used when rendering f.
func (f *Failure) Marker() string {
	if f.Kind == FailureUnreachable {
		return MarkerWarning
	}
	return MarkerError
}

// String renders f with its marker prefix.
func (f *Failure) String() string { return f.Marker() + f.Message }

// Invalid reports a request that failed validation.
func Invalid(err error) *Failure {
	return &Failure{Kind: FailureInvalid, Message: fmt.Sprintf("Invalid request: %v", err)}
}

// Unreachable reports that the liveness probe failed before submission.
func Unreachable(service string) *Failure {
	return &Failure{
		Kind:    FailureUnreachable,
		Message: fmt.Sprintf("Cannot reach %s. Make sure it is running (`ollama serve`) and try again.", service),
	}
}

// ModelNotFound reports a model whose base name is not installed.
func ModelNotFound(model string, available []string) *Failure {
	list := "none installed"
	if len(available) > 0 {
		list = strings.Join(available, ", ")
	}
	return &Failure{
		Kind:    FailureModelNotFound,
		Message: fmt.Sprintf("Model '%s' not found. Available models: %s", model, list),
	}
}

// NotFound reports a server-side 404 for the generation call. An empty
// detail falls back to a generic explanation.
func NotFound(detail string) *Failure {
	if strings.TrimSpace(detail) == "" {
		detail = notFoundFallback
	}
	return &Failure{Kind: FailureNotFound, Message: "Not found: " + detail}
}

// Timeout reports a generation call that exceeded its deadline.
func Timeout(after time.Duration) *Failure {
	return &Failure{
		Kind:    FailureTimeout,
		Message: fmt.Sprintf("Request timed out after %s. Try a shorter post or a faster model.", after),
	}
}

// ConnectionFailed reports a transport-level inability to reach the service.
func ConnectionFailed(err error) *Failure {
	return &Failure{
		Kind:    FailureConnection,
		Message: fmt.Sprintf("Connection error: could not connect to the generation service (%v).", err),
	}
}

// RequestFailed reports any other failure, carrying the underlying message.
func RequestFailed(err error) *Failure {
	return &Failure{Kind: FailureRequest, Message: fmt.Sprintf("Request failed: %v", err)}
}

// EmptyResponse reports a successful call that carried no usable text.
func EmptyResponse() *Failure {
	return &Failure{Kind: FailureEmptyResponse, Message: "Empty response: the service returned no text."}
}

// Canceled reports a generation aborted by the caller.
func Canceled() *Failure {
	return &Failure{Kind: FailureCanceled, Message: "Generation canceled."}
}

// AsFailure returns err as a *Failure, wrapping unclassified errors as
// RequestFailed. A nil err yields nil.
func AsFailure(err error) *Failure {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return RequestFailed(err)
}

// TransportFailure classifies an error returned by an HTTP round trip.
// timeout is the deadline that was applied, used in the message.
func TransportFailure(err error, timeout time.Duration) *Failure {
	if errors.Is(err, context.Canceled) {
		return Canceled()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout(timeout)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Timeout(timeout)
	}
	if isConnectionError(err) {
		return ConnectionFailed(err)
	}
	return RequestFailed(err)
}

func isConnectionError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
