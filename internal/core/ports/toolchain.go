package ports

import "go.trai.ch/mk/internal/core/domain"

// Toolchain turns a target into a concrete compiler invocation.
type Toolchain interface {
	// Name returns the toolchain identifier used in target definitions.
	Name() string

	// Compile builds the compiler invocation for the target on the platform.
	Compile(t *domain.Target, p domain.Platform) *domain.Invocation

	// Artifacts enumerates every file the toolchain may leave behind for the
	// target, including debug sidecars. Used by clean.
	Artifacts(t *domain.Target, p domain.Platform) []string
}

// ToolchainRegistry resolves toolchain names from target definitions.
type ToolchainRegistry interface {
	// Lookup returns the toolchain with the given name.
	// It returns domain.ErrUnknownToolchain when the name is not registered.
	Lookup(name string) (Toolchain, error)

	// Names returns the registered toolchain names, sorted.
	Names() []string
}
