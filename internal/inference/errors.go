package inference

import (
	"errors"
	"fmt"
)

// UnavailableError indicates the remote service could not produce a usable
// response: timeout, transport failure, or non-2xx status. Always
// recoverable; the caller moves to its next fallback tier.
type UnavailableError struct {
	Model  string
	Status int // HTTP status, 0 when the request never completed
	Cause  error
}

func (e *UnavailableError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("remote model %s unavailable: HTTP %d", e.Model, e.Status)
	}
	return fmt.Sprintf("remote model %s unavailable: %v", e.Model, e.Cause)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// MalformedError indicates the remote service responded but the body did not
// contain the expected shape. Recoverable, same as UnavailableError.
type MalformedError struct {
	Model  string
	Detail string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("remote model %s returned malformed response: %s", e.Model, e.Detail)
}

// IsUnavailable reports whether err is an UnavailableError.
func IsUnavailable(err error) bool {
	var ue *UnavailableError
	return errors.As(err, &ue)
}

// IsMalformed reports whether err is a MalformedError.
func IsMalformed(err error) bool {
	var me *MalformedError
	return errors.As(err, &me)
}
