package stopwatch_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mk/internal/adapters/stopwatch"
)

func TestStopwatch_Start(t *testing.T) {
	sw := stopwatch.New()

	stop := sw.Start()
	time.Sleep(20 * time.Millisecond)
	timing := stop()

	assert.GreaterOrEqual(t, timing.Wall, 20*time.Millisecond)
	// No child ran between Start and stop, so the CPU deltas stay small.
	assert.GreaterOrEqual(t, timing.User, time.Duration(0))
	assert.GreaterOrEqual(t, timing.System, time.Duration(0))
}

func TestStopwatch_IndependentMeasurements(t *testing.T) {
	sw := stopwatch.New()

	first := sw.Start()
	time.Sleep(5 * time.Millisecond)
	second := sw.Start()
	time.Sleep(5 * time.Millisecond)

	assert.Greater(t, first().Wall, second().Wall)
}
