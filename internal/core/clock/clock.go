// Package clock abstracts wall-clock access so that time-dependent logic
// (per-year folio sequences) can be tested deterministically.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// System reads the real system clock.
type System struct{}

// Now implements Clock.
func (System) Now() time.Time { return time.Now() }

// Fixed always returns the same instant. Use in tests to simulate
// year rollover without waiting for one.
type Fixed struct {
	T time.Time
}

// Now implements Clock.
func (f Fixed) Now() time.Time { return f.T }
