// Package config provides the configuration loader for mk.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the workspace root.
const DefaultFilename = "mk.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
// When the file does not exist, it falls back to the built-in workspace of
// the two nbody benchmark targets.
type Loader struct {
	filename   string
	logger     ports.Logger
	toolchains ports.ToolchainRegistry
}

// NewLoader creates a new Loader with the default filename.
func NewLoader(logger ports.Logger, toolchains ports.ToolchainRegistry) *Loader {
	return &Loader{
		filename:   DefaultFilename,
		logger:     logger,
		toolchains: toolchains,
	}
}

// SetPath overrides the configuration file path, relative to the working directory.
func (l *Loader) SetPath(path string) {
	if path != "" {
		l.filename = path
	}
}

// Load reads the configuration from the given working directory.
func (l *Loader) Load(cwd string) (*domain.Graph, error) {
	path := filepath.Join(cwd, l.filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Info("no " + l.filename + " found, using built-in nbody workspace")
			return l.defaultGraph()
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var ws Workspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	if ws.Version != "" && ws.Version != "1" {
		return nil, zerr.With(zerr.New("unsupported config version"), "version", ws.Version)
	}

	return l.buildGraph(&ws)
}

func (l *Loader) buildGraph(ws *Workspace) (*domain.Graph, error) {
	g := domain.NewGraph()

	targetNames := make(map[string]bool, len(ws.Targets))
	for name := range ws.Targets {
		targetNames[name] = true
	}

	for name, dto := range ws.Targets {
		if name == "all" {
			return nil, zerr.With(zerr.New("target name 'all' is reserved"), "target_name", name)
		}

		if _, err := l.toolchains.Lookup(dto.Toolchain); err != nil {
			return nil, zerr.With(err, "target_name", name)
		}

		if dto.Source == "" {
			return nil, zerr.With(zerr.New("target has no source"), "target_name", name)
		}
		if dto.Output == "" {
			return nil, zerr.With(zerr.New("target has no output"), "target_name", name)
		}

		for _, dep := range dto.DependsOn {
			if !targetNames[dep] {
				return nil, zerr.With(domain.ErrMissingDependency, "missing_dependency", dep)
			}
		}

		target := &domain.Target{
			Name:         domain.NewInternedString(name),
			Toolchain:    domain.NewInternedString(dto.Toolchain),
			Source:       domain.NewInternedString(filepath.ToSlash(dto.Source)),
			Output:       domain.NewInternedString(filepath.ToSlash(dto.Output)),
			ExtraFlags:   dto.Flags,
			Dependencies: internStrings(dto.DependsOn),
			Environment:  dto.Environment,
		}

		if err := g.AddTarget(target); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// defaultGraph reproduces the classic hard-coded nbody driver workspace.
func (l *Loader) defaultGraph() (*domain.Graph, error) {
	g := domain.NewGraph()

	targets := []*domain.Target{
		{
			Name:      domain.NewInternedString("nbody-c"),
			Toolchain: domain.NewInternedString("gcc"),
			Source:    domain.NewInternedString("nbody-c/main.c"),
			Output:    domain.NewInternedString("nbody-c/nbody-c"),
		},
		{
			Name:      domain.NewInternedString("nbody-rs"),
			Toolchain: domain.NewInternedString("rustc"),
			Source:    domain.NewInternedString("nbody-rs/src/main.rs"),
			Output:    domain.NewInternedString("nbody-rs/src/nbody-rs"),
		},
	}

	for _, t := range targets {
		if err := g.AddTarget(t); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func internStrings(strs []string) []domain.InternedString {
	res := make([]domain.InternedString, len(strs))
	for i, s := range strs {
		res[i] = domain.NewInternedString(s)
	}
	return res
}
