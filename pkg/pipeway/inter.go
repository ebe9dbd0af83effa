package pipeway

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful value
	Value() T
	// CreatedAt time of creation (UTC)
	CreatedAt() time.Time
}

// WithError describes types that expose either a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if the operation failed
	Err() error
	// IsSuccess returns true if the operation succeeded
	IsSuccess() bool
}

// WithCancel extends WithError with cancellation reporting
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the operation was cancelled
	IsCancel() bool
}

var _ WithCancel[struct{}] = Result[struct{}]{}
