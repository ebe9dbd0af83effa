package eval

import (
	"context"

	"github.com/avandel/pipeway/pkg/pipeway"
)

// Step is a single fallible transformation in a pipeline. A Step receives
// the current payload and returns a new Result, which may be a success or
// a failure; it is never invoked when the incoming Result is already a
// failure.
type Step[T any] func(ctx context.Context, in T) pipeway.Result[T]

// Evaluate applies steps to initial strictly left to right. As soon as the
// current Result is not a success, the remaining steps are skipped and that
// Result is returned unchanged. An empty step list returns initial.
//
// Evaluate itself produces no errors and performs no side effects; it only
// propagates what the steps return.
func Evaluate[T any](ctx context.Context, initial pipeway.Result[T], steps ...Step[T]) pipeway.Result[T] {
	current := initial
	for _, step := range steps {
		if !current.IsSuccess() {
			return current
		}
		current = step(ctx, current.Value())
	}
	return current
}

// Lift adapts a transformation that cannot fail into a Step.
func Lift[T any](fn func(ctx context.Context, in T) T) Step[T] {
	return func(ctx context.Context, in T) pipeway.Result[T] {
		return pipeway.Success(fn(ctx, in))
	}
}

// Try adapts a (T, error) function into a Step. A non-nil error becomes a
// failure; context cancellation and deadline errors become a cancellation.
func Try[T any](fn func(ctx context.Context, in T) (T, error)) Step[T] {
	return func(ctx context.Context, in T) pipeway.Result[T] {
		out, err := fn(ctx, in)
		if err != nil {
			if pipeway.IsCancellationError(err) {
				return pipeway.Cancel[T](err)
			}
			return pipeway.Fail[T](err)
		}
		return pipeway.Success(out)
	}
}

// Tee adapts a side effect into a Step that passes the payload through.
func Tee[T any](fn func(ctx context.Context, in T)) Step[T] {
	return func(ctx context.Context, in T) pipeway.Result[T] {
		fn(ctx, in)
		return pipeway.Success(in)
	}
}
