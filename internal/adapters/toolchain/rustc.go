package toolchain

import (
	"go.trai.ch/mk/internal/core/domain"
)

// rustcFlags is the fixed optimization flag set for Rust targets.
var rustcFlags = []string{
	"-C", "opt-level=3",
	"-C", "target-cpu=native",
	"-C", "codegen-units=1",
}

// Rustc invokes the Rust compiler directly, without cargo.
type Rustc struct{}

// NewRustc creates a new Rustc toolchain.
func NewRustc() *Rustc {
	return &Rustc{}
}

// Name returns the toolchain identifier.
func (r *Rustc) Name() string { return "rustc" }

// Compile builds the rustc invocation for the target on the platform.
func (r *Rustc) Compile(t *domain.Target, p domain.Platform) *domain.Invocation {
	argv := make([]string, 0, 1+len(rustcFlags)+len(t.ExtraFlags)+3)
	argv = append(argv, "rustc")
	argv = append(argv, rustcFlags...)
	argv = append(argv, t.ExtraFlags...)
	argv = append(argv, t.Source.String(), "-o", p.Executable(t.Output.String()))

	return &domain.Invocation{
		Argv:        argv,
		Environment: t.Environment,
	}
}

// Artifacts enumerates the files rustc leaves behind for the target.
// The .pdb sidecar only appears on Windows builds, but clean always lists it.
func (r *Rustc) Artifacts(t *domain.Target, p domain.Platform) []string {
	return []string{
		p.Executable(t.Output.String()),
		t.Output.String() + ".pdb",
	}
}
