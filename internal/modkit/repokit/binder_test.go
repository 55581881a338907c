package repokit

import (
	"context"
	"testing"

	"dealdesk/internal/platform/store"
)

type fakeQ struct{}

func (f *fakeQ) Exec(ctx context.Context, sql string, args ...any) (store.CommandTag, error) {
	var z store.CommandTag
	return z, nil
}

func (f *fakeQ) Query(ctx context.Context, sql string, args ...any) (store.Rows, error) {
	var z store.Rows
	return z, nil
}

func (f *fakeQ) QueryRow(ctx context.Context, sql string, args ...any) store.Row {
	var z store.Row
	return z
}

var _ Queryer = (*fakeQ)(nil)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("%s: expected panic, got none", name)
		}
	}()
	fn()
}

func TestBindFunc_BindCallsFunc(t *testing.T) {
	t.Parallel()

	var q Queryer // nil is fine; BindFunc doesn't use it
	b := BindFunc[string](func(_ Queryer) string {
		return "bound"
	})

	got := b.Bind(q)
	if got != "bound" {
		t.Fatalf("BindFunc.Bind = %q, want %q", got, "bound")
	}
}

func TestRequireQueryer_PanicsOnNil(t *testing.T) {
	t.Parallel()

	var q Queryer // nil interface
	mustPanic(t, "RequireQueryer(nil)", func() {
		_ = RequireQueryer(q)
	})
}

func TestMustBind_BindsWithValidQueryer(t *testing.T) {
	t.Parallel()

	q := &fakeQ{}
	b := BindFunc[Queryer](func(got Queryer) Queryer { return got })

	got := MustBind[Queryer](b, q)
	if got != Queryer(q) {
		t.Fatalf("MustBind did not pass the provided Queryer through")
	}
}

func TestMustBind_PanicsOnNilQueryer(t *testing.T) {
	t.Parallel()

	b := BindFunc[int](func(_ Queryer) int { return 0 })
	mustPanic(t, "MustBind(nil q)", func() {
		_ = MustBind[int](b, nil)
	})
}

func TestWithTx_DelegatesToRunner(t *testing.T) {
	t.Parallel()

	tx := fakeTx{q: &fakeQ{}}
	var seen Queryer
	err := WithTx(context.Background(), tx, func(q Queryer) error {
		seen = q
		return nil
	})
	if err != nil {
		t.Fatalf("WithTx returned error: %v", err)
	}
	if seen != Queryer(tx.q) {
		t.Fatalf("WithTx did not hand the tx bound Queryer to fn")
	}
}

type fakeTx struct{ q *fakeQ }

func (f fakeTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error { return fn(f.q) }

func (f fakeTx) Exec(ctx context.Context, sql string, args ...any) (store.CommandTag, error) {
	return f.q.Exec(ctx, sql, args...)
}

func (f fakeTx) Query(ctx context.Context, sql string, args ...any) (store.Rows, error) {
	return f.q.Query(ctx, sql, args...)
}

func (f fakeTx) QueryRow(ctx context.Context, sql string, args ...any) store.Row {
	return f.q.QueryRow(ctx, sql, args...)
}
