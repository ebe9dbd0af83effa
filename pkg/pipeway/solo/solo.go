package solo

import (
	"context"
	"errors"

	"github.com/avandel/pipeway/pkg/pipeway"
)

func Succeed[T any](input T) pipeway.Result[T] {
	return pipeway.Success(input)
}

func Fail[T any](err error) pipeway.Result[T] {
	return pipeway.Fail[T](err)
}

func Cancel[T any](err error) pipeway.Result[T] {
	return pipeway.Cancel[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) pipeway.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input pipeway.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) pipeway.Result[T] {

	if input.IsSuccess() {

		if valid, errMsg := validate(ctx, input.Value()); valid {
			return input
		} else {
			return pipeway.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

// ValidateAll runs every validation function over the input, joining the
// collected errors. With breakOnError the first failure wins instead.
func ValidateAll[T any](
	ctx context.Context,
	input pipeway.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in pipeway.Result[T]) pipeway.Result[T]) pipeway.Result[T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current pipeway.Result[T]) pipeway.Result[T] {

			if current.IsFailure() {
				e := pipeway.GetErrors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if pipeway.IsNil(err) {
				return current
			}

			return pipeway.Fail[T](err)
		},
		inputsF...,
	)
}

func Switch[In any, Out any](ctx context.Context,
	input pipeway.Result[In],
	onSuccess func(ctx context.Context, r In) pipeway.Result[Out]) pipeway.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	} else {
		if input.IsCancel() {
			return pipeway.CancelFrom[In, Out](input)
		} else {
			return pipeway.FailFrom[In, Out](input)
		}
	}
}

func Map[In any, Out any](ctx context.Context,
	input pipeway.Result[In],
	onSuccess func(ctx context.Context, r In) Out) pipeway.Result[Out] {

	if input.IsSuccess() {
		return pipeway.Success(onSuccess(ctx, input.Value()))
	} else {
		if input.IsCancel() {
			return pipeway.CancelFrom[In, Out](input)
		} else {
			return pipeway.FailFrom[In, Out](input)
		}
	}
}

func Tee[T any](ctx context.Context,
	input pipeway.Result[T],
	onSuccess func(ctx context.Context, r pipeway.Result[T])) pipeway.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input pipeway.Result[T],
	condition func(ctx context.Context, r pipeway.Result[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r pipeway.Result[T])) pipeway.Result[T] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input pipeway.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) pipeway.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		if input.IsCancel() {
			onCancel(ctx, input.Err())
		} else {
			onError(ctx, input.Err())
		}
	}

	return input
}

func DoubleMap[In any, Out any](ctx context.Context, input pipeway.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) pipeway.Result[Out] {

	if input.IsSuccess() {
		return pipeway.Success(onSuccess(ctx, input.Value()))
	}

	if input.IsCancel() {
		onCancel(ctx, input.Err())
		return pipeway.CancelFrom[In, Out](input)
	}

	onError(ctx, input.Err())
	return pipeway.FailFrom[In, Out](input)
}

func Try[In any, Out any](ctx context.Context, input pipeway.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) pipeway.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			if pipeway.IsCancellationError(err) {
				return pipeway.Cancel[Out](err)
			}
			return pipeway.Fail[Out](err)
		}

		return pipeway.Success(out)
	}

	if input.IsCancel() {
		return pipeway.CancelFrom[In, Out](input)
	} else {
		return pipeway.FailFrom[In, Out](input)
	}
}

func FailOnError[T any](ctx context.Context, input pipeway.Result[T],
	maybeErr func(ctx context.Context, in T) error) pipeway.Result[T] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.Value())
		if err != nil {
			return pipeway.Fail[T](err)
		} else {
			return input
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input pipeway.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	} else if input.IsCancel() {
		return onCancel(ctx, input.Err())
	} else {
		return onError(ctx, input.Err())
	}
}

// Join folds several result functions over the input sequentially. With
// breakOnError the first failure stops the fold; otherwise concat decides
// how failures accumulate.
func Join[T any](ctx context.Context,
	input pipeway.Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current pipeway.Result[T]) pipeway.Result[T],
	inputsF ...func(ctx context.Context, in pipeway.Result[T]) pipeway.Result[T]) pipeway.Result[T] {

	if len(inputsF) == 0 || concat == nil || !pipeway.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !pipeway.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !pipeway.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
