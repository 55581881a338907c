package recurrence

import (
	"time"

	"github.com/teambition/rrule-go"

	perr "dealdesk/internal/platform/errors"
)

// maxOccurrences is a safety cap so an unbounded rule cannot explode an
// agenda query
const maxOccurrences = 5000

// Occurrences expands an RRULE string into concrete start times within
// [from, to] inclusive, anchored at dtstart
// results beyond the safety cap are truncated
func Occurrences(rule string, dtstart, from, to time.Time) ([]time.Time, error) {
	if to.Before(from) {
		return nil, perr.InvalidArgf("occurrence range end %s before start %s", to, from)
	}
	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, perr.MalformedRulef("rrule %q rejected by expander: %v", rule, err)
	}
	r.DTStart(dtstart)

	var set rrule.Set
	set.RRule(r)

	occ := set.Between(from, to, true)
	if len(occ) > maxOccurrences {
		occ = occ[:maxOccurrences]
	}
	return occ, nil
}
