package chain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/avandel/pipeway/pkg/pipeway"
)

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	res := pipeway.Success(5)

	out := Start(ctx, res).Result()
	if !out.IsSuccess() || out.Value() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 7).Result()
	if !out.IsSuccess() || out.Value() != 7 {
		t.Fatalf("expected success with 7, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")

	called := false
	out := Start(ctx, pipeway.Fail[int](err)).
		Then(func(_ context.Context, n int) pipeway.Result[int] {
			called = true
			return pipeway.Success(n + 1)
		}).Result()

	if out.IsSuccess() || !errors.Is(out.Err(), err) {
		t.Fatalf("expected failure 'boom', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
	if called {
		t.Fatalf("onSuccess should not be called when the result is a failure")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 3).
		Then(func(_ context.Context, n int) pipeway.Result[int] { return pipeway.Success(n * 2) }).
		Result()

	if !out.IsSuccess() || out.Value() != 6 {
		t.Fatalf("expected success with 6, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestThenTry_ErrorPropagation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 10).
		ThenTry(func(_ context.Context, _ int) (int, error) {
			return 0, errors.New("try-error")
		}).Result()

	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestThenTry_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 4).
		ThenTry(func(_ context.Context, n int) (int, error) { return n * n, nil }).
		Result()

	if !out.IsSuccess() || out.Value() != 16 {
		t.Fatalf("expected success with 16, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestMap_Method(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 5).
		Map(func(_ context.Context, n int) int { return n + 100 }).
		Result()

	if !out.IsSuccess() || out.Value() != 105 {
		t.Fatalf("expected success with 105, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestEnsure_Branches(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var branch string
	FromValue(ctx, 1).Ensure(
		func(_ context.Context, _ int) { branch = "success" },
		func(_ context.Context, _ error) { branch = "failure" },
		func(_ context.Context, _ error) { branch = "cancel" })
	if branch != "success" {
		t.Fatalf("expected success branch, got %q", branch)
	}

	Start(ctx, pipeway.Fail[int](errors.New("x"))).Ensure(
		func(_ context.Context, _ int) { branch = "success" },
		func(_ context.Context, _ error) { branch = "failure" },
		func(_ context.Context, _ error) { branch = "cancel" })
	if branch != "failure" {
		t.Fatalf("expected failure branch, got %q", branch)
	}

	Start(ctx, pipeway.Cancel[int](context.Canceled)).Ensure(
		func(_ context.Context, _ int) { branch = "success" },
		func(_ context.Context, _ error) { branch = "failure" },
		func(_ context.Context, _ error) { branch = "cancel" })
	if branch != "cancel" {
		t.Fatalf("expected cancel branch, got %q", branch)
	}
}

func TestOr_FirstSuccessWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, pipeway.Fail[int](errors.New("x"))).
		Or(FromValue(ctx, 2)).
		Result()

	if !out.IsSuccess() || out.Value() != 2 {
		t.Fatalf("expected the alternative to win, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestOr_CancelWinsOverFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, pipeway.Fail[int](errors.New("x"))).
		Or(Start(ctx, pipeway.Cancel[int](context.Canceled))).
		Result()

	if !out.IsCancel() {
		t.Fatalf("expected the cancellation to win, got: cancel=%v, err=%v", out.IsCancel(), out.Err())
	}
}

func TestAnd_FailureWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("required failed")

	out := FromValue(ctx, 1).
		And(Start(ctx, pipeway.Fail[int](err))).
		Result()

	if out.IsSuccess() || !errors.Is(out.Err(), err) {
		t.Fatalf("expected the required failure, got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestAnd_AllSucceedLastWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 1).
		And(FromValue(ctx, 2)).
		Result()

	if !out.IsSuccess() || out.Value() != 2 {
		t.Fatalf("expected success with 2, got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
}

func TestFinally_Method(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Start(ctx, pipeway.Fail[int](errors.New("x"))).Finally(
		func(_ context.Context, n int) int { return n },
		func(_ context.Context, _ error) int { return -1 },
		func(_ context.Context, _ error) int { return -2 })

	if got != -1 {
		t.Fatalf("expected -1 from the failure handler, got %v", got)
	}
}

func TestPackageLevelThen_TypeSwitch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Then(FromValue(ctx, 21), func(_ context.Context, n int) pipeway.Result[string] {
		return pipeway.Success(fmt.Sprintf("n=%d", n*2))
	}).Result()

	if !out.IsSuccess() || out.Value() != "n=42" {
		t.Fatalf("expected success with n=42, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestPackageLevelMap_KeepsFailureIdentity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	in := pipeway.Fail[int](errors.New("boom"))

	out := Map(Start(ctx, in), func(_ context.Context, n int) string {
		return fmt.Sprint(n)
	}).Result()

	if out.Id() != in.Id() || !out.IsFailure() {
		t.Fatalf("failure must keep its identity across the type switch: id=%v want %v", out.Id(), in.Id())
	}
}

func TestPackageLevelThenTry_Finally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Finally(
		ThenTry(FromValue(ctx, "12"), func(_ context.Context, s string) (int, error) {
			if s == "" {
				return 0, errors.New("empty")
			}
			return len(s), nil
		}),
		func(_ context.Context, n int) string { return fmt.Sprintf("len:%d", n) },
		func(_ context.Context, _ error) string { return "err" },
		func(_ context.Context, _ error) string { return "cancel" })

	if got != "len:2" {
		t.Fatalf("expected len:2, got %q", got)
	}
}
