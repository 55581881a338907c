package recurrence

import (
	"testing"
	"time"

	perr "dealdesk/internal/platform/errors"
)

func TestEncode_KnownVectors(t *testing.T) {
	t.Parallel()

	until := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)

	cases := []struct {
		name string
		p    Pattern
		want string
	}{
		{
			name: "weekly three days",
			p:    New(Weekly, WithWeekdays(0, 2, 4)),
			want: "FREQ=WEEKLY;BYDAY=MO,WE,FR",
		},
		{
			name: "biweekly monday",
			p:    New(Weekly, WithInterval(2), WithWeekdays(0)),
			want: "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO",
		},
		{
			name: "daily count",
			p:    New(Daily, WithCount(10)),
			want: "FREQ=DAILY;COUNT=10",
		},
		{
			name: "monthly until",
			p:    New(Monthly, WithUntil(until)),
			want: "FREQ=MONTHLY;UNTIL=20241231T235959Z",
		},
		{
			name: "interval one omitted",
			p:    New(Daily, WithInterval(1)),
			want: "FREQ=DAILY",
		},
		{
			name: "count wins over until",
			p:    New(Daily, WithCount(3), WithUntil(until)),
			want: "FREQ=DAILY;COUNT=3",
		},
		{
			name: "full field order",
			p:    New(Monthly, WithInterval(2), WithMonthDays(15), WithMonths(5, 1, 3), WithWeekdays(4, 0), WithCount(6)),
			want: "FREQ=MONTHLY;INTERVAL=2;BYMONTHDAY=15;BYMONTH=1,3,5;BYDAY=MO,FR;COUNT=6",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Encode(tc.p); got != tc.want {
				t.Fatalf("Encode = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEncode_SetOrderDoesNotMatter(t *testing.T) {
	t.Parallel()

	a := New(Weekly, WithWeekdays(4, 0, 2))
	b := New(Weekly, WithWeekdays(0, 2, 4))
	if Encode(a) != Encode(b) {
		t.Fatalf("encode differs for same set: %q vs %q", Encode(a), Encode(b))
	}
}

func TestDecode_KnownVector(t *testing.T) {
	t.Parallel()

	got, err := Decode("FREQ=MONTHLY;INTERVAL=2;BYMONTHDAY=15;BYMONTH=1,3,5;COUNT=6")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	want := New(Monthly, WithInterval(2), WithMonthDays(15), WithMonths(1, 3, 5), WithCount(6))
	if !got.Equal(want) {
		t.Fatalf("Decode = %+v, want %+v", got, want)
	}
}

func TestDecode_IgnoresUnknownKeys(t *testing.T) {
	t.Parallel()

	got, err := Decode("FREQ=DAILY;WKST=MO;X-CUSTOM=1")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got.Frequency != Daily || got.Interval != 1 {
		t.Fatalf("unexpected pattern %+v", got)
	}
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
	}{
		{"missing freq", "INTERVAL=2;BYDAY=MO"},
		{"unknown freq", "FREQ=HOURLY"},
		{"interval not numeric", "FREQ=DAILY;INTERVAL=abc"},
		{"interval zero", "FREQ=DAILY;INTERVAL=0"},
		{"interval negative", "FREQ=DAILY;INTERVAL=-2"},
		{"byday unknown token", "FREQ=WEEKLY;BYDAY=MO,XX"},
		{"bymonthday out of range", "FREQ=MONTHLY;BYMONTHDAY=32"},
		{"bymonthday zero", "FREQ=MONTHLY;BYMONTHDAY=0"},
		{"bymonth out of range", "FREQ=YEARLY;BYMONTH=13"},
		{"bymonth not numeric", "FREQ=YEARLY;BYMONTH=jan"},
		{"count zero", "FREQ=DAILY;COUNT=0"},
		{"until garbage", "FREQ=MONTHLY;UNTIL=2024-12-31"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Decode(tc.in); !perr.IsCode(err, perr.ErrorCodeMalformedRule) {
				t.Fatalf("Decode(%q) err = %v, want MalformedRule", tc.in, err)
			}
		})
	}
}

func TestRoundTrip_FieldWiseAndStringFixedPoint(t *testing.T) {
	t.Parallel()

	until := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	patterns := []Pattern{
		New(Daily),
		New(Daily, WithCount(10)),
		New(Weekly, WithWeekdays(0, 2, 4)),
		New(Weekly, WithInterval(2), WithWeekdays(6)),
		New(Monthly, WithMonthDays(1, 15, 28), WithUntil(until)),
		New(Yearly, WithMonths(3, 6, 9, 12), WithInterval(3)),
		New(Weekly, WithMonthDays(15)), // odd combination passes through
	}

	for _, p := range patterns {
		enc := Encode(p)
		dec, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", enc, err)
		}
		if !dec.Equal(p) {
			t.Fatalf("round trip mismatch for %q: got %+v want %+v", enc, dec, p)
		}
		if re := Encode(dec); re != enc {
			t.Fatalf("string not a fixed point: %q re-encoded to %q", enc, re)
		}
	}
}
