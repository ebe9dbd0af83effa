package chain

import (
	"context"

	"github.com/avandel/pipeway/pkg/pipeway"
	"github.com/avandel/pipeway/pkg/pipeway/solo"
)

// Chain wraps a pipeway.Result with context to enable fluent chaining.
type Chain[T any] struct {
	ctx context.Context
	res pipeway.Result[T]
}

// Start creates a new chain from a pipeway.Result
func Start[T any](ctx context.Context, r pipeway.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, pipeway.Success(v))
}

// Result returns the underlying pipeway.Result
func (c Chain[T]) Result() pipeway.Result[T] {
	return c.res
}

// Then composes a function that already returns pipeway.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) pipeway.Result[T]) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

// ThenTry composes a function that returns (T, error)
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Try[T, T](c.ctx, c.res, try)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Map[T, T](c.ctx, c.res, onSuccess)}
}

// Ensure triggers side effects for success/failure/cancel without changing
// the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T),
	onFailure func(context.Context, error),
	onCancel func(context.Context, error)) Chain[T] {

	if c.res.IsCancel() {
		if onCancel != nil {
			onCancel(c.ctx, c.res.Err())
		}
		return c
	}

	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Or returns the first successful chain among the receiver and the
// alternative; when none succeeds, cancellations win over failures.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	return c.or(alternative)
}

func (c Chain[T]) or(chains ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	hasCancel := false
	hasFail := false
	var cancelChain, failChain Chain[T]

	for _, ch := range candidates {
		res := ch.res

		if res.IsSuccess() {
			return ch
		}

		if res.IsCancel() {
			if !hasCancel {
				hasCancel = true
				cancelChain = ch
			}
		} else if res.IsFailure() {
			if !hasFail {
				hasFail = true
				failChain = ch
			}
		}
	}

	if hasCancel {
		return cancelChain
	}
	if hasFail {
		return failChain
	}

	return c
}

// And returns the first non-success chain among the receiver and the
// required chain; when all succeed, the last one wins.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	return c.and(required)
}

func (c Chain[T]) and(chains ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	last := c
	for _, ch := range candidates {
		if !ch.res.IsSuccess() {
			return ch
		}
		last = ch
	}

	return last
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
	onCancel func(context.Context, error) T,
) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure, onCancel)
}

// Then chains a function that switches the value type via solo.Switch
func Then[T, U any](c Chain[T], onSuccess func(context.Context, T) pipeway.Result[U]) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: solo.Switch[T, U](c.ctx, c.res, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T], tryOnSuccess func(context.Context, T) (U, error)) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: solo.Try[T, U](c.ctx, c.res, tryOnSuccess),
	}
}

// Map chains a pure transformation function (T -> U)
func Map[T, U any](c Chain[T], onSuccess func(context.Context, T) U) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: solo.Map[T, U](c.ctx, c.res, onSuccess),
	}
}

// Finally collapses the chain into a final value of another type
func Finally[T, U any](c Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally[T, U](c.ctx, c.res, onSuccess, onFailure, onCancel)
}
