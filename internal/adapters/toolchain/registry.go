package toolchain

import (
	"sort"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolchainRegistry = (*Registry)(nil)

// Registry implements ports.ToolchainRegistry over a fixed set of toolchains.
type Registry struct {
	toolchains map[string]ports.Toolchain
}

// NewRegistry creates a registry holding the given toolchains.
func NewRegistry(toolchains ...ports.Toolchain) *Registry {
	m := make(map[string]ports.Toolchain, len(toolchains))
	for _, tc := range toolchains {
		m[tc.Name()] = tc
	}
	return &Registry{toolchains: m}
}

// NewDefaultRegistry creates a registry with every built-in toolchain.
func NewDefaultRegistry() *Registry {
	return NewRegistry(NewGCC(), NewRustc())
}

// Lookup returns the toolchain with the given name.
func (r *Registry) Lookup(name string) (ports.Toolchain, error) {
	tc, ok := r.toolchains[name]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownToolchain, "toolchain", name)
	}
	return tc, nil
}

// Names returns the registered toolchain names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.toolchains))
	for name := range r.toolchains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
