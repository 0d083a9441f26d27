package domain

import "time"

// Timing captures the resource usage of one compiler invocation.
type Timing struct {
	Wall   time.Duration
	User   time.Duration
	System time.Duration
	// MaxRSS is the peak resident set size in kilobytes, 0 when unavailable.
	MaxRSS int64
}
