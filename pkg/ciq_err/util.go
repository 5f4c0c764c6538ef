// pkg/ciq_err/util.go

package ciq_err

import (
	"errors"
)

// NewExpectedError wraps an error for softer UX handling.
func NewExpectedError(err error) error {
	if err == nil {
		return nil
	}
	return &UserError{cause: err}
}

// IsExpectedUserError checks if the error is marked as expected.
func IsExpectedUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}

// ExitCode maps an error to the process exit status: nil and expected
// user errors exit 0, everything else exits 1.
func ExitCode(err error) int {
	if err == nil || IsExpectedUserError(err) {
		return 0
	}
	return 1
}
