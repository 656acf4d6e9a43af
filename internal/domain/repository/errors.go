package repository

import (
	"errors"
	"fmt"
)

// ErrSymbolNotFound marks a symbol that does not exist upstream.
// Only Alpha Vantage can make this distinction; the chart API reports
// every failure as upstream.
var ErrSymbolNotFound = errors.New("symbol not found")

// UpstreamError wraps a transport failure, timeout, rate limit, malformed
// payload, or coercion failure from a market data upstream.
type UpstreamError struct {
	Provider string
	Op       string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError wraps err as an upstream fault for provider/op.
func NewUpstreamError(provider, op string, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, Op: op, Err: err}
}

// IsNotFound reports whether err is the missing-symbol case.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSymbolNotFound)
}

// IsUpstream reports whether err is an upstream fault.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
