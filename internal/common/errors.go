// Package common defines shared constants and sentinel errors used across
// the client and server layers of zkpauth. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Protocol errors returned by the verifier.
	ErrUserNotFound      = errors.New("user not found")
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrBadSolution       = errors.New("bad solution")

	// ErrUserExists is returned on re-registration when the registry runs
	// in strict mode.
	ErrUserExists = errors.New("user already registered")

	// ErrInvalidInput marks a malformed byte encoding of a protocol field.
	ErrInvalidInput = errors.New("invalid input")

	// Generic flow-control errors.
	ErrInternal    = errors.New("internal error")
	ErrUnavailable = errors.New("server unavailable")
)
