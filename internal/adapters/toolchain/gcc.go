// Package toolchain provides the native compiler adapters.
package toolchain

import (
	"go.trai.ch/mk/internal/core/domain"
)

// gccFlags is the fixed optimization flag set for C targets.
var gccFlags = []string{
	"-O3",
	"-Wall",
	"-fomit-frame-pointer",
	"-march=native",
	"-funroll-loops",
	"-static",
}

// GCC invokes the GNU C compiler.
type GCC struct{}

// NewGCC creates a new GCC toolchain.
func NewGCC() *GCC {
	return &GCC{}
}

// Name returns the toolchain identifier.
func (g *GCC) Name() string { return "gcc" }

// Compile builds the gcc invocation for the target on the platform.
func (g *GCC) Compile(t *domain.Target, p domain.Platform) *domain.Invocation {
	argv := make([]string, 0, 1+len(gccFlags)+len(t.ExtraFlags)+4)
	argv = append(argv, "gcc")
	argv = append(argv, gccFlags...)
	argv = append(argv, t.ExtraFlags...)
	argv = append(argv, t.Source.String(), "-o", p.Executable(t.Output.String()))
	// Link flags go last so the math library resolves against the objects.
	argv = append(argv, "-lm")

	return &domain.Invocation{
		Argv:        argv,
		Environment: t.Environment,
	}
}

// Artifacts enumerates the files gcc leaves behind for the target.
func (g *GCC) Artifacts(t *domain.Target, p domain.Platform) []string {
	return []string{p.Executable(t.Output.String())}
}
