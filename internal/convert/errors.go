package convert

import (
	"context"
	"errors"
	"fmt"
)

// ExtractionError reports a failed work unit together with the page range it
// covered and the backend that ran it.
type ExtractionError struct {
	Backend string
	Range   PageRange
	Err     error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s extraction failed for %s: %v", e.Backend, e.Range, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// IsCanceled reports whether err represents an interrupted conversion rather
// than an extraction failure, so callers can exit with a distinct signal.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// wrapExtraction tags a unit failure with its originating range. Cancellation
// and already-wrapped errors pass through untouched.
func wrapExtraction(backend Backend, r PageRange, err error) error {
	if IsCanceled(err) {
		return err
	}
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return err
	}
	return &ExtractionError{Backend: backend.Name(), Range: r, Err: err}
}
