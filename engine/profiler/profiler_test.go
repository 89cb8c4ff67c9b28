package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfiler_LogsOncePerInterval(t *testing.T) {
	now := time.Unix(1000, 0)
	p := NewProfiler()
	p.now = func() time.Time { return now }
	p.lastTime = now
	p.SetInterval(time.Second)

	for range 59 {
		now = now.Add(16 * time.Millisecond)
		assert.False(t, p.Tick("Narrative"))
	}
	assert.Equal(t, 59, p.Frames())

	now = now.Add(100 * time.Millisecond)
	assert.True(t, p.Tick("Explore"))
	assert.Equal(t, 0, p.Frames(), "counter resets after logging")
}

func TestProfiler_SetIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler()
	p.SetInterval(0)
	assert.Equal(t, time.Second, p.updateInterval)
}
