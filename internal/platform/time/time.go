// Package time contains time related helpers
package time

import "time"

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// Deref returns the value behind p or the zero time when p is nil
func Deref(p *time.Time) time.Time {
	if p == nil {
		return time.Time{}
	}
	return *p
}
