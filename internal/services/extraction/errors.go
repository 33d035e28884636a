// errors.go defines the two distinguished failure modes of the model call.
//
// Go Pattern: Custom error types let callers branch with errors.As instead
// of string matching. Everything else from the client is a plain wrapped
// error — the pipeline treats all three as fatal, but entry points report
// them differently (the raw completion is surfaced only for parse errors).
package extraction

import "fmt"

// RemoteError is a transport, auth, throttling, or provider-side failure
// from the hosted model endpoint. Never retried.
type RemoteError struct {
	StatusCode int    // HTTP status from the provider, 0 for transport failures
	Message    string // Provider's error message
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("remote service error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("remote service error: %s", e.Message)
}

// ParseError means the completion was not valid JSON after fence stripping.
// RawText carries the full completion for operator debugging.
type ParseError struct {
	RawText string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse JSON response from model: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
