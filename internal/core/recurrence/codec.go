package recurrence

import (
	"strconv"
	"strings"
	"time"

	perr "dealdesk/internal/platform/errors"
)

// untilLayout is the compact basic ISO-8601 UTC form used on the wire
const untilLayout = "20060102T150405Z"

// weekdayCodes maps 0 Monday .. 6 Sunday to the two-letter RRULE codes
var weekdayCodes = [7]string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"}

var codeWeekdays = map[string]int{
	"MO": 0, "TU": 1, "WE": 2, "TH": 3, "FR": 4, "SA": 5, "SU": 6,
}

// Encode renders p in the fixed field order
// FREQ INTERVAL BYMONTHDAY BYMONTH BYDAY then COUNT or UNTIL
// encode is a pure formatter and rejects nothing; odd combinations such as
// BYMONTHDAY on a WEEKLY rule pass through untouched
func Encode(p Pattern) string {
	var b strings.Builder
	b.WriteString("FREQ=")
	b.WriteString(string(p.Frequency))

	if p.Interval > 1 {
		b.WriteString(";INTERVAL=")
		b.WriteString(strconv.Itoa(p.Interval))
	}
	if len(p.ByMonthDay) > 0 {
		b.WriteString(";BYMONTHDAY=")
		writeInts(&b, sortedCopy(p.ByMonthDay))
	}
	if len(p.ByMonth) > 0 {
		b.WriteString(";BYMONTH=")
		writeInts(&b, sortedCopy(p.ByMonth))
	}
	if len(p.ByWeekday) > 0 {
		b.WriteString(";BYDAY=")
		for i, d := range sortedCopy(p.ByWeekday) {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(weekdayCodes[d])
		}
	}
	switch {
	case p.Count != nil:
		b.WriteString(";COUNT=")
		b.WriteString(strconv.Itoa(*p.Count))
	case p.Until != nil:
		b.WriteString(";UNTIL=")
		b.WriteString(p.Until.UTC().Format(untilLayout))
	}
	return b.String()
}

// Decode parses s back into a pattern
// unrecognized keys are ignored; every grammar violation surfaces as a
// MalformedRule error with no partial result
func Decode(s string) (Pattern, error) {
	var zero Pattern
	fields := map[string]string{}
	for _, seg := range strings.Split(s, ";") {
		if seg == "" {
			continue
		}
		key, val := seg, ""
		if i := strings.IndexByte(seg, '='); i >= 0 {
			key, val = seg[:i], seg[i+1:]
		}
		fields[key] = val
	}

	freq, ok := fields["FREQ"]
	if !ok {
		return zero, perr.MalformedRulef("rrule %q missing FREQ", s)
	}
	p := Pattern{Frequency: Frequency(freq), Interval: 1}
	if !p.Frequency.Valid() {
		return zero, perr.MalformedRulef("rrule %q has unknown FREQ %q", s, freq)
	}

	if v, ok := fields["INTERVAL"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return zero, perr.MalformedRulef("rrule %q has invalid INTERVAL %q", s, v)
		}
		p.Interval = n
	}
	if v, ok := fields["BYMONTHDAY"]; ok {
		days, err := parseIntList(v, 1, 31)
		if err != nil {
			return zero, perr.MalformedRulef("rrule %q has invalid BYMONTHDAY %q", s, v)
		}
		p.ByMonthDay = days
	}
	if v, ok := fields["BYMONTH"]; ok {
		months, err := parseIntList(v, 1, 12)
		if err != nil {
			return zero, perr.MalformedRulef("rrule %q has invalid BYMONTH %q", s, v)
		}
		p.ByMonth = months
	}
	if v, ok := fields["BYDAY"]; ok {
		for _, tok := range strings.Split(v, ",") {
			d, ok := codeWeekdays[tok]
			if !ok {
				return zero, perr.MalformedRulef("rrule %q has unknown BYDAY token %q", s, tok)
			}
			p.ByWeekday = append(p.ByWeekday, d)
		}
	}
	if v, ok := fields["COUNT"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return zero, perr.MalformedRulef("rrule %q has invalid COUNT %q", s, v)
		}
		p.Count = &n
	}
	if v, ok := fields["UNTIL"]; ok {
		t, err := time.Parse(untilLayout, v)
		if err != nil {
			return zero, perr.MalformedRulef("rrule %q has invalid UNTIL %q", s, v)
		}
		u := t.UTC()
		p.Until = &u
	}

	p.normalize()
	return p, nil
}

func sortedCopy(xs []int) []int {
	out := make([]int, len(xs))
	copy(out, xs)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func writeInts(b *strings.Builder, xs []int) {
	for i, x := range xs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(x))
	}
}

func parseIntList(v string, lo, hi int) ([]int, error) {
	parts := strings.Split(v, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		if n < lo || n > hi {
			return nil, strconv.ErrRange
		}
		out = append(out, n)
	}
	return out, nil
}
