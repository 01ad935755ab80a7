package domain

import "errors"

// Sentinel errors for search operations
var (
	// ErrServerOffline indicates the recipe server could not be reached
	ErrServerOffline = errors.New("recipe server is unreachable")

	// ErrUnexpectedStatus indicates the server answered with a non-2xx status
	ErrUnexpectedStatus = errors.New("unexpected status from recipe server")

	// ErrMalformedResponse indicates the response body did not have the
	// expected shape
	ErrMalformedResponse = errors.New("malformed response from recipe server")
)

// FailureKind classifies a FetchFailure
type FailureKind int

const (
	FailureTransport FailureKind = iota // network unreachable, request aborted
	FailureStatus                       // non-2xx HTTP status
	FailureParse                        // malformed JSON or missing required field
)

// String returns a short name for the kind
func (k FailureKind) String() string {
	switch k {
	case FailureTransport:
		return "transport"
	case FailureStatus:
		return "status"
	case FailureParse:
		return "parse"
	default:
		return "unknown"
	}
}

// FetchFailure is the single failure type surfaced by a search.
// Message is always human readable and non-empty.
type FetchFailure struct {
	Kind    FailureKind
	Message string
	Err     error
}

// Error implements the error interface
func (f *FetchFailure) Error() string {
	if f.Message != "" {
		return f.Message
	}
	if f.Err != nil {
		return f.Err.Error()
	}
	return "search failed"
}

// Unwrap exposes the underlying cause to errors.Is / errors.As
func (f *FetchFailure) Unwrap() error {
	return f.Err
}

// IsParseError returns true if err is a FetchFailure caused by a response
// that violated the expected shape
func IsParseError(err error) bool {
	var failure *FetchFailure
	return errors.As(err, &failure) && failure.Kind == FailureParse
}
