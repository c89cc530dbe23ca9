package tiny

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/flow/pkg/flow"
)

func value[T any](r flow.Result[T]) T {
	v, _ := r.Value()
	return v
}

func toGeneral(err error) flow.Result[int] {
	return flow.Failed[int](flow.GeneralFailure(err.Error(), flow.WithException(err)))
}

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	chain := Start(ctx, flow.Success(5))

	out := chain.Result()
	if !out.IsSuccess() || value(out) != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v, err=%v", out.IsSuccess(), value(out), out.Err())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	out := FromValue(context.Background(), 7).Result()
	if !out.IsSuccess() || value(out) != 7 {
		t.Fatalf("expected success with 7, got: success=%v, val=%v, err=%v", out.IsSuccess(), value(out), out.Err())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := flow.ApplicationFailure("boom")

	called := false
	out := Start(ctx, flow.Failed[int](f)).
		Then(func(ctx context.Context, t int) flow.Result[int] {
			called = true
			return flow.Success(t + 1)
		}).
		Result()

	if out.IsSuccess() || out.Err() != f {
		t.Fatalf("expected failure 'boom', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
	if called {
		t.Fatalf("onSuccess should not be called when initial result is failure")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	out := FromValue(context.Background(), 3).
		Then(func(ctx context.Context, t int) flow.Result[int] { return flow.Success(t * 2) }).
		Result()

	if value(out) != 6 {
		t.Fatalf("expected success with 6, got: success=%v, val=%v, err=%v", out.IsSuccess(), value(out), out.Err())
	}
}

func TestThen_StopsOnCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	out := FromValue(ctx, 1).
		Then(func(ctx context.Context, t int) flow.Result[int] { called = true; return flow.Success(t) }).
		Result()

	if called {
		t.Fatalf("step should not run on a cancelled context")
	}
	if !flow.IsKind(out.Err(), flow.KindTaskCancellationFailure) || !flow.IsCancellation(out.Err()) {
		t.Fatalf("expected task cancellation failure, got: %v", out.Err())
	}
}

func TestThenTry_ErrorGoesToHandler(t *testing.T) {
	t.Parallel()
	out := FromValue(context.Background(), 10).
		ThenTry(func(ctx context.Context, t int) (int, error) {
			return 0, errors.New("try-error")
		}, toGeneral).
		Result()

	if !flow.IsKind(out.Err(), flow.KindGeneralFailure) || out.Err().Error() != "GeneralFailure: try-error" {
		t.Fatalf("expected general failure 'try-error', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestThenTry_PanicGoesToHandler(t *testing.T) {
	t.Parallel()
	out := FromValue(context.Background(), 10).
		ThenTry(func(ctx context.Context, t int) (int, error) { panic("repo exploded") }, toGeneral).
		Result()

	var pe *flow.PanicError
	if !errors.As(out.Err(), &pe) {
		t.Fatalf("expected a recovered panic, got: %v", out.Err())
	}
}

func TestThenTry_Success(t *testing.T) {
	t.Parallel()
	out := FromValue(context.Background(), 4).
		ThenTry(func(ctx context.Context, t int) (int, error) { return t * t, nil }, toGeneral).
		Result()

	if value(out) != 16 {
		t.Fatalf("expected success with 16, got: success=%v, val=%v, err=%v", out.IsSuccess(), value(out), out.Err())
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 1).Map(func(ctx context.Context, t int) int { return t + 100 }).Result()
	if value(out) != 101 {
		t.Fatalf("expected 101, got %v", value(out))
	}

	out = Start(ctx, flow.Failed[int](flow.IOFailure("oops"))).
		Map(func(ctx context.Context, t int) int { return t + 100 }).
		Result()
	if !flow.IsKind(out.Err(), flow.KindIOFailure) {
		t.Fatalf("expected io failure, got %v", out.Err())
	}
}

func TestRecoverAndMapFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, flow.Failed[int](flow.CacheFailure("miss"))).
		MapFailure(func(ctx context.Context, f *flow.Failure) *flow.Failure {
			return flow.ItemNotFoundFailure(f.Reason())
		}).
		Result()
	if !flow.IsKind(out.Err(), flow.KindItemNotFoundFailure) {
		t.Fatalf("expected item not found, got %v", out.Err())
	}

	out = Start(ctx, out).
		Recover(func(ctx context.Context, f *flow.Failure) flow.Result[int] { return flow.Success(0) }).
		Map(func(ctx context.Context, t int) int { return t + 1 }).
		Result()
	if value(out) != 1 {
		t.Fatalf("expected recovered 1, got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var successes, failures int
	onSuccess := func(context.Context, int) { successes++ }
	onFailure := func(context.Context, *flow.Failure) { failures++ }

	FromValue(ctx, 1).Ensure(onSuccess, onFailure)
	Start(ctx, flow.Failed[int](flow.DomainFailure("x"))).Ensure(onSuccess, onFailure)
	Start(ctx, flow.Failed[int](flow.DomainFailure("x"))).Ensure(onSuccess, nil)

	if successes != 1 || failures != 1 {
		t.Fatalf("expected 1 success and 1 failure, got %d and %d", successes, failures)
	}
}

func TestOr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	first := flow.ServiceFailure("first")
	failedA := Start(ctx, flow.Failed[int](first))
	failedB := Start(ctx, flow.Failed[int](flow.ServiceFailure("second")))

	if out := failedA.Or(failedB, FromValue(ctx, 9)).Result(); value(out) != 9 {
		t.Fatalf("expected the successful alternative, got %v", out.Err())
	}
	if out := failedA.Or(failedB).Result(); out.Err() != first {
		t.Fatalf("expected the first failure, got %v", out.Err())
	}
}

func TestAnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := flow.ValidationFailure("required")

	if out := FromValue(ctx, 1).And(FromValue(ctx, 2)).Result(); value(out) != 2 {
		t.Fatalf("expected the last success, got %v", value(out))
	}
	if out := FromValue(ctx, 1).And(Start(ctx, flow.Failed[int](f)), FromValue(ctx, 3)).Result(); out.Err() != f {
		t.Fatalf("expected the failure, got %v", out.Err())
	}
}

func TestRepeatUntil(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	inc := func(ctx context.Context, t int) flow.Result[int] { return flow.Success(t + 1) }

	out := FromValue(ctx, 0).RepeatUntil(inc, func(ctx context.Context, t int) bool { return t >= 5 }).Result()
	if value(out) != 5 {
		t.Fatalf("expected 5, got %v", value(out))
	}

	out = FromValue(ctx, 10).RepeatUntil(inc, func(ctx context.Context, t int) bool { return true }).Result()
	if value(out) != 11 {
		t.Fatalf("expected a single run, got %v", value(out))
	}

	failAt3 := func(ctx context.Context, t int) flow.Result[int] {
		if t == 3 {
			return flow.Failed[int](flow.GeneralFailure("stop"))
		}
		return flow.Success(t + 1)
	}
	out = FromValue(ctx, 0).RepeatUntil(failAt3, func(ctx context.Context, t int) bool { return false }).Result()
	if !out.IsFailure() {
		t.Fatalf("expected the loop to stop on failure")
	}
}

func TestWhile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	double := func(ctx context.Context, t int) flow.Result[int] { return flow.Success(t * 2) }

	out := FromValue(ctx, 1).While(double, func(ctx context.Context, t int) bool { return t < 100 }).Result()
	if value(out) != 128 {
		t.Fatalf("expected 128, got %v", value(out))
	}

	out = FromValue(ctx, 500).While(double, func(ctx context.Context, t int) bool { return t < 100 }).Result()
	if value(out) != 500 {
		t.Fatalf("expected no iteration, got %v", value(out))
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	onFailure := func(context.Context, *flow.Failure) int { return -1 }
	onSuccess := func(ctx context.Context, t int) int { return t }

	if got := FromValue(ctx, 42).Map(func(ctx context.Context, t int) int { return t * 2 }).Finally(onFailure, onSuccess); got != 84 {
		t.Fatalf("expected 84, got %d", got)
	}
	if got := Start(ctx, flow.Failed[int](flow.ApplicationFailure("x"))).Finally(onFailure, onSuccess); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}
