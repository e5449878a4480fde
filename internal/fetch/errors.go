// internal/fetch/errors.go
package fetch

import "fmt"

// FailCause classifies why a fetch produced no content. Every cause is
// non-fatal: the owning task degrades to zero records and siblings run on.
type FailCause string

const (
	CauseStatus    FailCause = "status-error"
	CauseTransport FailCause = "transport-error"
	CauseTimeout   FailCause = "timeout"
)

// Error carries the context of one failed fetch attempt.
type Error struct {
	URL        string
	Cause      FailCause
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Cause, e.Err)
	}
	return fmt.Sprintf("fetch %s: %s (status %d)", e.URL, e.Cause, e.StatusCode)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two fetch errors by cause, so tests and callers can compare
// against a bare &Error{Cause: ...} target. Anything else is left to the
// standard unwrap walk.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Cause == t.Cause
}

func newError(url string, cause FailCause, status int, err error) *Error {
	return &Error{
		URL:        url,
		Cause:      cause,
		StatusCode: status,
		Err:        err,
	}
}
