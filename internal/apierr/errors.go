package apierr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyResult  = errors.New("empty result")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("rate limited")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
	ErrNetwork      = errors.New("network error")
	ErrUnknown      = errors.New("unknown error")
)

// Translate maps an HTTP status and/or a low-level failure to one of the
// sentinel categories, keeping the original detail in the wrapped chain.
// A zero status means no response was received.
func Translate(status int, detail error) error {
	marker := classify(status, detail)
	if detail != nil {
		return fmt.Errorf("%w: %w", marker, detail)
	}
	return fmt.Errorf("%w: http status %d", marker, status)
}

func classify(status int, detail error) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrUnauthorized
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status == http.StatusNotFound:
		return ErrNotFound
	case status >= http.StatusInternalServerError:
		return ErrServer
	case status != 0:
		return ErrUnknown
	}

	if detail == nil {
		return ErrUnknown
	}
	if errors.Is(detail, context.DeadlineExceeded) {
		return ErrNetwork
	}
	var netErr net.Error
	if errors.As(detail, &netErr) {
		return ErrNetwork
	}
	return ErrUnknown
}

// Category returns the sentinel the translated error carries, or ErrUnknown
// when err does not belong to the taxonomy.
func Category(err error) error {
	for _, marker := range []error{
		ErrInvalidInput,
		ErrEmptyResult,
		ErrUnauthorized,
		ErrRateLimited,
		ErrNotFound,
		ErrServer,
		ErrNetwork,
	} {
		if errors.Is(err, marker) {
			return marker
		}
	}
	return ErrUnknown
}
