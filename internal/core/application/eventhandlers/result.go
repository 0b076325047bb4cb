package eventhandlers

import "errors"

// terminalError marks a handler failure that redelivery cannot fix, such
// as a malformed event or a business rule rejection. The consumer loop
// logs and acknowledges these instead of requeueing.
type terminalError struct {
	err error
}

func (e terminalError) Error() string {
	return e.err.Error()
}

func (e terminalError) Unwrap() error {
	return e.err
}

// Terminal wraps err so the consumer loop drops the message after logging
// it. A nil err stays nil.
func Terminal(err error) error {
	if err == nil {
		return nil
	}
	return terminalError{err: err}
}

// IsTerminal reports whether err (or anything it wraps) was marked with
// Terminal. Any other non-nil handler error is retryable: the message goes
// back on the queue.
func IsTerminal(err error) bool {
	var t terminalError
	return errors.As(err, &t)
}
