package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	KindNetwork       ErrorKind = "network"
	KindAuth          ErrorKind = "auth"
	KindRateLimit     ErrorKind = "rate_limit"
	KindProvider      ErrorKind = "provider"
	KindEmptyResponse ErrorKind = "empty_response"
)

// UpstreamError is the only error an Invoker returns.
type UpstreamError struct {
	Provider string
	Kind     ErrorKind
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s upstream %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// KindOf reports the kind of an UpstreamError anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Kind, true
	}
	return "", false
}

func kindFromStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusTooManyRequests:
		return KindRateLimit
	case status == 0:
		return KindNetwork
	default:
		return KindProvider
	}
}

func upstream(provider string, kind ErrorKind, err error) *UpstreamError {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		kind = KindNetwork
	}
	return &UpstreamError{Provider: provider, Kind: kind, Err: err}
}
