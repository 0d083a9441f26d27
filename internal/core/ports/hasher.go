package ports

import "go.trai.ch/mk/internal/core/domain"

// Hasher defines the interface for computing build input and output hashes.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash computes the content hash of a single file.
	ComputeFileHash(path string) (uint64, error)

	// ComputeInputHash computes a single hash covering the target
	// definition, the resolved compiler argv, the environment, and the
	// content of the source file.
	ComputeInputHash(target *domain.Target, argv []string, env map[string]string, root string) (string, error)

	// ComputeOutputHash computes the combined hash of the output files.
	ComputeOutputHash(outputs []string, root string) (string, error)
}
