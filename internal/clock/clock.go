// Package clock provides an injectable time source so that handlers and
// services never read the wall clock directly. Production code uses the
// real clock; tests supply a fixed one for deterministic timestamps.
package clock

import "time"

// Clock is the single-method time capability threaded through services
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// New returns a clock backed by the system time, in UTC
func New() Clock {
	return realClock{}
}

// Fixed is a Clock that always returns the same instant
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}
