// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/mk/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory and
	// returns the target graph. When no configuration file exists, the
	// loader returns the built-in default workspace.
	Load(cwd string) (*domain.Graph, error)
}
