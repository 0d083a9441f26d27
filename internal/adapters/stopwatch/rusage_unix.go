//go:build unix

package stopwatch

import (
	"syscall"
	"time"
)

// childRusage samples getrusage(RUSAGE_CHILDREN).
func childRusage() rusage {
	var ru syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_CHILDREN, &ru); err != nil {
		return rusage{}
	}
	return rusage{
		user:   time.Duration(ru.Utime.Nano()),
		system: time.Duration(ru.Stime.Nano()),
		maxRSS: int64(ru.Maxrss),
	}
}
