// Package urgency classifies how soon a deadline falls
// pure and total over any deadline, past or future
package urgency

import "time"

// Tier is a coarse urgency classification driving notification severity
type Tier string

// Tiers from most to least urgent
const (
	Critical Tier = "CRITICAL"
	High     Tier = "HIGH"
	Medium   Tier = "MEDIUM"
	Normal   Tier = "NORMAL"
)

// Classify maps the time remaining until deadline to a tier
// overdue deadlines land in Critical alongside imminent ones; the boundaries
// at 3h 6h and 24h belong to the less urgent side
func Classify(deadline, now time.Time) Tier {
	h := deadline.Sub(now).Hours()
	switch {
	case h < 3:
		return Critical
	case h < 6:
		return High
	case h < 24:
		return Medium
	default:
		return Normal
	}
}
