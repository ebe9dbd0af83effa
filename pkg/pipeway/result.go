package pipeway

import (
	"time"

	"github.com/google/uuid"
)

// Result is a tagged union holding exactly one successful value of type T,
// or exactly one error. A failed Result may additionally be marked as a
// cancellation, meaning the failure came from the surrounding context
// (deadline, cancel) rather than from the step's own logic.
//
// A Result is immutable once constructed. Steps consume one Result and
// produce a new one; the id and creation time identify a Result across
// propagation.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
	isCancel  bool
	hasValue  bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		isCancel:  false,
		createdAt: time.Now().UTC(),
		hasValue:  true,
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		isCancel:  false,
		createdAt: time.Now().UTC(),
		hasValue:  false,
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		hasValue:  false,
		id:        uuid.New(),
	}
}

// FailFrom carries a non-success Result over to a new value type, keeping
// the original error, identity and creation time. The first failure in a
// pipeline must reach the caller unchanged; FailFrom is how type-changing
// operations honor that.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		isCancel:  false,
		createdAt: from.createdAt,
		hasValue:  false,
		id:        from.id,
	}
}

// CancelFrom is FailFrom for cancellations.
func CancelFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		isCancel:  true,
		createdAt: from.createdAt,
		hasValue:  false,
		id:        from.id,
	}
}

// Value returns the successful value; the zero value of T when the Result
// is not a success.
func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure reports a failed Result that is not a cancellation.
func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && !r.isCancel
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) HasValue() bool {
	return r.hasValue
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isCancel && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
