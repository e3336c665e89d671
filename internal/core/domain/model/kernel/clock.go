package kernel

import "time"

// Clock abstracts time.Now for the use cases.
type Clock interface {
	Now() time.Time
}

// SystemClock reports the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}
