package core

import "time"

// TimeProvider abstracts the wall clock. Operations read Now once and reuse the
// value as their anchor moment.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
