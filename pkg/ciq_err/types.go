// pkg/ciq_err/types.go

package ciq_err

import "errors"

// ErrNotConfigured is returned by client handles built from incomplete configuration.
var ErrNotConfigured = errors.New("supabase client is not configured")

// UserError marks an error as expected and recoverable by the user.
// The CLI exits 0 when the final error is a UserError.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}
