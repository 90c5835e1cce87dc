package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// SomethingWentWrong is returned when something went wrong and the cause is unknown.
	SomethingWentWrong = ErrorKind("Something went wrong")

	// NotFound is returned when a requested item (cell, record, capability) is not found.
	NotFound = ErrorKind("Not Found")

	// InvalidArgument is returned when the given argument or payload is invalid or malformed.
	InvalidArgument = ErrorKind("Invalid Argument")

	// InvalidState is returned when an item exists but its state does not allow the operation.
	InvalidState = ErrorKind("Invalid State")

	// InsufficientCapacity is returned when the available cells can't fund an operation.
	InsufficientCapacity = ErrorKind("Insufficient Capacity")

	// Unsupported is returned when a feature, lock or network is not supported.
	Unsupported = ErrorKind("Unsupported")

	OverflowUint64  = ErrorKind("overflow uint64")
	OverflowUint128 = ErrorKind("overflow uint128")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
