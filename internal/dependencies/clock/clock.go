// Package clock supplies the timestamps stamped on sessions.
package clock

import "time"

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

// System reads the host clock, truncated to the second and in UTC so
// session timestamps round-trip through JSON storage unchanged.
type System struct{}

// New returns the host clock
func New() System {
	return System{}
}

func (System) Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
