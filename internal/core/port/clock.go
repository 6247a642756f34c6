package port

import "time"

type Clock interface {
	// Now returns the current instant, truncated to the store precision
	Now() time.Time
}

type ClockFunc func() time.Time

// Now implements Clock.
func (fn ClockFunc) Now() time.Time {
	return fn()
}

var _ Clock = ClockFunc(nil)
