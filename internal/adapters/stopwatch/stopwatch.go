// Package stopwatch measures the resource usage of compiler invocations.
package stopwatch

import (
	"time"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
)

var _ ports.Stopwatch = (*Stopwatch)(nil)

// Stopwatch implements ports.Stopwatch using wall-clock time plus, where the
// platform provides it, the child rusage of the current process.
type Stopwatch struct{}

// New creates a new Stopwatch.
func New() *Stopwatch {
	return &Stopwatch{}
}

// Start begins a measurement.
//
// Child rusage is cumulative over the process lifetime, so CPU times are
// reported as the delta between Start and stop. The measurement is only
// accurate when no unrelated child runs concurrently; the scheduler
// serializes timed builds for that reason.
func (s *Stopwatch) Start() func() domain.Timing {
	startWall := time.Now()
	before := childRusage()

	return func() domain.Timing {
		wall := time.Since(startWall)
		after := childRusage()
		return domain.Timing{
			Wall:   wall,
			User:   after.user - before.user,
			System: after.system - before.system,
			MaxRSS: after.maxRSS,
		}
	}
}

// rusage is the subset of child resource usage the stopwatch reports.
type rusage struct {
	user   time.Duration
	system time.Duration
	maxRSS int64
}
