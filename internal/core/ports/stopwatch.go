package ports

import "go.trai.ch/mk/internal/core/domain"

// Stopwatch measures the resource usage of compiler invocations.
//
//go:generate go run go.uber.org/mock/mockgen -source=stopwatch.go -destination=mocks/mock_stopwatch.go -package=mocks
type Stopwatch interface {
	// Start begins a measurement. The returned stop function yields the
	// timing observed between Start and the call to stop.
	Start() func() domain.Timing
}
