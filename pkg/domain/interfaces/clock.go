package interfaces

import "time"

// Clock supplies the current time to staleness checks and session validation
// so tests can pin it
type Clock interface {
	Now() time.Time
}

// RealClock is the wall clock
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always reports the same instant
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Time
}
