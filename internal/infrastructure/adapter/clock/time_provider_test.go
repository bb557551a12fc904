package clock

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestTimeProvider_FakeClock(t *testing.T) {
	start := time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)
	fake := clockwork.NewFakeClockAt(start)
	tp := NewTimeProvider(fake)

	assert.Equal(t, start, tp.Now())

	fake.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), tp.Now())
	assert.Equal(t, 90*time.Second, tp.Since(start))
}

func TestNewRealTimeProvider(t *testing.T) {
	tp := NewRealTimeProvider()

	before := time.Now()
	now := tp.Now()
	assert.False(t, now.Before(before.Add(-time.Second)))
	assert.GreaterOrEqual(t, tp.Since(before), time.Duration(0))
}
