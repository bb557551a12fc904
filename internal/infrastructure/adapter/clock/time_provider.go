package clock

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/amirhossein-jamali/time-calculator/internal/domain/port/core"
)

// TimeProvider implements core.TimeProvider on top of a clockwork clock
type TimeProvider struct {
	clock clockwork.Clock
}

// NewTimeProvider wraps the given clock
func NewTimeProvider(clock clockwork.Clock) core.TimeProvider {
	return &TimeProvider{clock: clock}
}

// NewRealTimeProvider creates a provider backed by the wall clock
func NewRealTimeProvider() core.TimeProvider {
	return NewTimeProvider(clockwork.NewRealClock())
}

// Now returns the current local time
func (p *TimeProvider) Now() time.Time {
	return p.clock.Now()
}

// Since returns the time elapsed since t
func (p *TimeProvider) Since(t time.Time) time.Duration {
	return p.clock.Since(t)
}
