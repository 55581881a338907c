package store

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	perr "dealdesk/internal/platform/errors"
)

type cmdTag string

func (c cmdTag) String() string { return string(c) }
func (c cmdTag) RowsAffected() int64 {
	s := string(c)
	i := strings.LastIndexByte(s, ' ')
	if i < 0 {
		return 0
	}
	n, err := strconv.ParseInt(s[i+1:], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

type fakeRows struct {
	data [][]any
	idx  int
	err  error
}

func (f *fakeRows) Next() bool { return f.idx < len(f.data) }
func (f *fakeRows) Scan(dest ...any) error {
	row := f.data[f.idx]
	f.idx++
	for i := range dest {
		switch d := dest[i].(type) {
		case *string:
			*d = row[i].(string)
		case *int:
			*d = row[i].(int)
		default:
			return errors.New("fakeRows: unsupported dest")
		}
	}
	return nil
}
func (f *fakeRows) Err() error        { return f.err }
func (f *fakeRows) Close()            {}
func (f *fakeRows) Columns() []string { return nil }

type fakeQuerier struct {
	execTag  CommandTag
	execErr  error
	rows     Rows
	queryErr error
}

func (f *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return f.execTag, f.execErr
}

func (f *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return f.rows, f.queryErr
}

func (f *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return &rowFromRows{rows: f.rows}
}

func TestExecOne(t *testing.T) {
	q := &fakeQuerier{execTag: cmdTag("UPDATE 1")}
	if err := ExecOne(context.Background(), q, "UPDATE x"); err != nil {
		t.Fatalf("ExecOne(UPDATE 1) err = %v", err)
	}
	q.execTag = cmdTag("UPDATE 0")
	if err := ExecOne(context.Background(), q, "UPDATE x"); err == nil {
		t.Fatalf("ExecOne(UPDATE 0) expected error")
	}
	q.execErr = errors.New("boom")
	if err := ExecOne(context.Background(), q, "UPDATE x"); err == nil {
		t.Fatalf("ExecOne with exec error expected error")
	}
}

func scanPair(r Row) (struct {
	Name string
	N    int
}, error,
) {
	var out struct {
		Name string
		N    int
	}
	err := r.Scan(&out.Name, &out.N)
	return out, err
}

func TestOne(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{data: [][]any{{"lead", 3}}}}
	got, err := One(context.Background(), q, scanPair, "SELECT")
	if err != nil || got.Name != "lead" || got.N != 3 {
		t.Fatalf("One = %+v, %v", got, err)
	}

	// zero rows -> ErrNotFound
	q.rows = &fakeRows{}
	if _, err := One(context.Background(), q, scanPair, "SELECT"); !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("One(empty) err = %v, want ErrNotFound", err)
	}

	// more than one row -> error
	q.rows = &fakeRows{data: [][]any{{"a", 1}, {"b", 2}}}
	if _, err := One(context.Background(), q, scanPair, "SELECT"); err == nil {
		t.Fatalf("One(two rows) expected error")
	}

	// query error passthrough
	q.rows = nil
	q.queryErr = errors.New("q fail")
	if _, err := One(context.Background(), q, scanPair, "SELECT"); err == nil {
		t.Fatalf("One(query error) expected error")
	}
}

func TestMany(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{data: [][]any{{"a", 1}, {"b", 2}}}}
	got, err := Many(context.Background(), q, scanPair, "SELECT")
	if err != nil || len(got) != 2 || got[1].Name != "b" {
		t.Fatalf("Many = %+v, %v", got, err)
	}

	q.rows = &fakeRows{}
	got, err = Many(context.Background(), q, scanPair, "SELECT")
	if err != nil || len(got) != 0 {
		t.Fatalf("Many(empty) = %+v, %v", got, err)
	}
}

func TestScalar(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{data: [][]any{{7}}}}
	n, err := Scalar[int](context.Background(), q, "SELECT count(*)")
	if err != nil || n != 7 {
		t.Fatalf("Scalar = %d, %v", n, err)
	}
}
