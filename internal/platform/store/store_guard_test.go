package store

import (
	"context"
	"errors"
	"testing"
)

// pingableTx is a TxRunner that also implements Pinger
type pingableTx struct {
	fakeQuerier
	pingErr error
}

func (p *pingableTx) Tx(ctx context.Context, fn func(q RowQuerier) error) error { return fn(p) }
func (p *pingableTx) Ping(ctx context.Context) error                            { return p.pingErr }

type fakeCH struct {
	pingErr  error
	closed   bool
	closeErr error
}

func (f *fakeCH) Insert(ctx context.Context, table string, data any) error { return nil }
func (f *fakeCH) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return &fakeRows{}, nil
}
func (f *fakeCH) Close() error                    { f.closed = true; return f.closeErr }
func (f *fakeCH) Ping(ctx context.Context) error  { return f.pingErr }

func TestGuard(t *testing.T) {
	var s *Store
	if err := s.Guard(context.Background()); err == nil {
		t.Fatalf("nil store Guard should error")
	}

	// healthy seams
	s = &Store{PG: &pingableTx{}, CH: &fakeCH{}}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("Guard(healthy) = %v", err)
	}

	// failing pg is reported
	s = &Store{PG: &pingableTx{pingErr: errors.New("down")}}
	if err := s.Guard(context.Background()); err == nil {
		t.Fatalf("Guard(pg down) should error")
	}

	// failing ch is reported
	s = &Store{CH: &fakeCH{pingErr: errors.New("ch down")}}
	if err := s.Guard(context.Background()); err == nil {
		t.Fatalf("Guard(ch down) should error")
	}
}

func TestClose(t *testing.T) {
	ch := &fakeCH{}
	s := &Store{CH: ch}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close = %v", err)
	}
	if !ch.closed {
		t.Fatalf("CH not closed")
	}

	ch2 := &fakeCH{closeErr: errors.New("close fail")}
	s = &Store{CH: ch2}
	if err := s.Close(context.Background()); err == nil {
		t.Fatalf("Close should surface CH close error")
	}
}
