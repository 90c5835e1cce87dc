package errs

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/withstack"
)

// PublicError is an error that, when caught by error handler, should return a user-friendly error response to the user.
type PublicError struct {
	err     error
	message string
}

func (p PublicError) Error() string {
	return p.err.Error()
}

func (p PublicError) Message() string {
	return p.message
}

func (p PublicError) Unwrap() error {
	return p.err
}

func NewPublicError(message string) error {
	return withstack.WithStackDepth(&PublicError{err: errors.New(message), message: message}, 1)
}

// WithPublicMessage marks err as public. The message is err's text, prefixed when prefix is not empty.
// Returns nil if err is nil.
func WithPublicMessage(err error, prefix string) error {
	if err == nil {
		return nil
	}
	message := err.Error()
	if prefix != "" {
		message = fmt.Sprintf("%s: %s", prefix, message)
	}
	return withstack.WithStackDepth(&PublicError{err: err, message: message}, 1)
}

// IsPublicKind reports whether err is of a kind that is safe and useful to show to API callers.
func IsPublicKind(err error) bool {
	for _, kind := range []ErrorKind{NotFound, InvalidArgument, InvalidState, InsufficientCapacity, Unsupported, OverflowUint64, OverflowUint128} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
