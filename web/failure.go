package web

import (
	"errors"
	"net/http"
)

// FailureKind discriminates how much HTTP shape a failure carries. The
// dispatcher matches on the kind exhaustively instead of probing types.
type FailureKind int

const (
	// KindGeneric failures carry no HTTP shape of their own; the
	// dispatcher falls back to the caller-supplied default status.
	KindGeneric FailureKind = iota
	// KindHTTP failures carry their own status code and headers.
	KindHTTP
	// KindOAuth failures are authorization-protocol errors whose status
	// and headers come from the protocol error itself.
	KindOAuth
)

// Failure is the one failure shape the dispatcher understands. It is
// created at the failure site, consumed exactly once by the dispatcher,
// and discarded once the response is written.
type Failure struct {
	Kind   FailureKind
	Status int
	Header http.Header
	Err    error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return f.Err.Error()
	}
	if f.Status != 0 {
		return http.StatusText(f.Status)
	}
	return "internal error"
}

func (f *Failure) Unwrap() error { return f.Err }

// NewHTTPFailure wraps err as a failure with its own status code.
func NewHTTPFailure(status int, err error) *Failure {
	return &Failure{Kind: KindHTTP, Status: status, Err: err}
}

// NewOAuthFailure wraps an authorization-protocol error carrying the
// status and headers mandated by the protocol response.
func NewOAuthFailure(status int, header http.Header, err error) *Failure {
	return &Failure{Kind: KindOAuth, Status: status, Header: header, Err: err}
}

// WithHeader returns f with an additional response header set.
func (f *Failure) WithHeader(key, value string) *Failure {
	if f.Header == nil {
		f.Header = make(http.Header)
	}
	f.Header.Set(key, value)
	return f
}

// AsFailure extracts a *Failure from err's chain. Errors with no
// failure in the chain wrap as KindGeneric, leaving the status to the
// dispatcher's caller.
func AsFailure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return &Failure{Kind: KindGeneric, Err: err}
}
