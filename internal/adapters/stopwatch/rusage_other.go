//go:build !unix

package stopwatch

// childRusage is unavailable here; the stopwatch reports wall time only.
func childRusage() rusage {
	return rusage{}
}
