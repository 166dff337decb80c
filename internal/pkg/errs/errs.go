// Package errs wraps cockroachdb/errors so call sites get stack traces and
// sentinel marking without importing the library directly.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches markErr so Is(err, markErr) holds while the original cause
// and stack are preserved.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is matches sentinels attached via Mark in addition to the wrap chain.
// Stdlib errors.Is only walks Unwrap and never sees marks, so sentinel
// checks on usecase errors must come through here.
func Is(err error, target error) bool {
	return cr.Is(err, target)
}
