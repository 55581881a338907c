// Package recurrence converts between structured recurring-appointment
// patterns and their iCalendar-style RRULE string form.
// The grammar is the RFC-5545 subset actually used by the scheduler
// FREQ INTERVAL BYMONTHDAY BYMONTH BYDAY COUNT UNTIL
package recurrence

import (
	"sort"
	"time"
)

// Frequency is the base recurrence unit
type Frequency string

// Supported frequencies
const (
	Daily   Frequency = "DAILY"
	Weekly  Frequency = "WEEKLY"
	Monthly Frequency = "MONTHLY"
	Yearly  Frequency = "YEARLY"
)

// Valid reports whether f is one of the supported frequencies
func (f Frequency) Valid() bool {
	switch f {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

// Pattern is an immutable value describing a recurrence
// weekdays are 0 Monday through 6 Sunday
type Pattern struct {
	Frequency  Frequency
	Interval   int
	ByWeekday  []int
	ByMonthDay []int
	ByMonth    []int
	Count      *int
	Until      *time.Time
}

// Option mutates a pattern under construction
type Option func(*Pattern)

// WithInterval sets the every-N-units interval
func WithInterval(n int) Option { return func(p *Pattern) { p.Interval = n } }

// WithWeekdays sets the weekday set (0 Monday .. 6 Sunday)
func WithWeekdays(days ...int) Option { return func(p *Pattern) { p.ByWeekday = days } }

// WithMonthDays sets the day-of-month set (1..31)
func WithMonthDays(days ...int) Option { return func(p *Pattern) { p.ByMonthDay = days } }

// WithMonths sets the month set (1..12)
func WithMonths(months ...int) Option { return func(p *Pattern) { p.ByMonth = months } }

// WithCount bounds the recurrence to n occurrences
func WithCount(n int) Option { return func(p *Pattern) { p.Count = &n } }

// WithUntil bounds the recurrence to an absolute UTC end
func WithUntil(t time.Time) Option { return func(p *Pattern) { u := t.UTC(); p.Until = &u } }

// New builds a pattern for freq with the given options
// interval defaults to 1 and list fields are normalized ascending
func New(freq Frequency, opts ...Option) Pattern {
	p := Pattern{Frequency: freq, Interval: 1}
	for _, opt := range opts {
		opt(&p)
	}
	p.normalize()
	return p
}

// normalize sorts the set fields ascending so patterns differing only in
// input iteration order encode identically
func (p *Pattern) normalize() {
	sort.Ints(p.ByWeekday)
	sort.Ints(p.ByMonthDay)
	sort.Ints(p.ByMonth)
}

// Equal compares field for field with absent optionals treated as absent
func (p Pattern) Equal(o Pattern) bool {
	if p.Frequency != o.Frequency || p.Interval != o.Interval {
		return false
	}
	if !intsEqual(p.ByWeekday, o.ByWeekday) ||
		!intsEqual(p.ByMonthDay, o.ByMonthDay) ||
		!intsEqual(p.ByMonth, o.ByMonth) {
		return false
	}
	if (p.Count == nil) != (o.Count == nil) {
		return false
	}
	if p.Count != nil && *p.Count != *o.Count {
		return false
	}
	if (p.Until == nil) != (o.Until == nil) {
		return false
	}
	if p.Until != nil && !p.Until.Equal(*o.Until) {
		return false
	}
	return true
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
