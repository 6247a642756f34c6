package service

import (
	"time"

	"github.com/wagner1975/eezycollectionz/internal/core/port"
)

// Precision is the resolution of the timestamps produced by SystemClock.
const Precision = time.Microsecond

// SystemClock reads the host clock and truncates the result to Precision.
type SystemClock struct {
	retrieveNow func() time.Time
}

// Now implements port.Clock.
func (c *SystemClock) Now() time.Time {
	return Truncate(c.retrieveNow())
}

// Truncate discards the sub-microsecond part of t. It never rounds up and
// strips the monotonic clock reading.
func Truncate(t time.Time) time.Time {
	return t.Truncate(Precision)
}

func NewSystemClock() *SystemClock {
	return NewClockFrom(func() time.Time {
		return time.Now().UTC()
	})
}

// NewClockFrom returns a clock truncating the instants returned by retrieveNow.
func NewClockFrom(retrieveNow func() time.Time) *SystemClock {
	return &SystemClock{
		retrieveNow: retrieveNow,
	}
}

var _ port.Clock = &SystemClock{}
