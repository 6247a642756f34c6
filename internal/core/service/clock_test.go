package service

import (
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	type testCase struct {
		Input    time.Time
		Expected time.Time
	}

	testCases := []testCase{
		{
			Input:    time.Unix(1702468152, 888888).UTC(),
			Expected: time.Unix(1702468152, 888000).UTC(),
		},
		{
			Input:    time.Unix(1702468152, 999999999).UTC(),
			Expected: time.Unix(1702468152, 999999000).UTC(),
		},
		{
			Input:    time.Unix(1702468152, 1000).UTC(),
			Expected: time.Unix(1702468152, 1000).UTC(),
		},
		{
			Input:    time.Unix(1702468152, 999).UTC(),
			Expected: time.Unix(1702468152, 0).UTC(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Input.Format(time.RFC3339Nano), func(t *testing.T) {
			if e, g := tc.Expected, Truncate(tc.Input); !e.Equal(g) {
				t.Errorf("Truncate(): expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestSystemClockNow(t *testing.T) {
	clock := NewClockFrom(func() time.Time {
		return time.Unix(1702468152, 888888).UTC()
	})

	now := clock.Now()

	if e, g := 888000, now.Nanosecond(); e != g {
		t.Errorf("now.Nanosecond(): expected %d, got %d", e, g)
	}

	if e, g := int64(1702468152), now.Unix(); e != g {
		t.Errorf("now.Unix(): expected %d, got %d", e, g)
	}
}

func TestSystemClockOrdering(t *testing.T) {
	clock := NewSystemClock()

	before := time.Now().Truncate(Precision)
	now := clock.Now()
	after := time.Now()

	if now.Before(before) {
		t.Errorf("clock.Now(): expected '%v' not to be before '%v'", now, before)
	}

	if now.After(after) {
		t.Errorf("clock.Now(): expected '%v' not to be after '%v'", now, after)
	}

	if e, g := 0, now.Nanosecond()%1000; e != g {
		t.Errorf("now.Nanosecond() %% 1000: expected %d, got %d", e, g)
	}

	if e, g := time.UTC, now.Location(); e != g {
		t.Errorf("now.Location(): expected '%v', got '%v'", e, g)
	}
}
