// Package authcode stores short-lived, single-use authorization codes issued
// by the /authorize endpoint and consumed exactly once by /token.
package authcode

import (
	"context"
	"errors"
)

// ErrCodeNotFound is returned when a code was never issued, already
// exchanged, or has expired. Callers treat all three the same way.
var ErrCodeNotFound = errors.New("authorization code is invalid or expired")

// Store keeps authorization codes keyed to a username. Take removes the code
// so it can only be exchanged once.
type Store interface {
	Put(ctx context.Context, code, username string) error
	Take(ctx context.Context, code string) (string, error)
}
