package domain

import "go.trai.ch/zerr"

var (
	// ErrTargetAlreadyExists is returned when adding a target whose name is taken.
	ErrTargetAlreadyExists = zerr.New("target already exists")

	// ErrMissingDependency is returned when a target references a dependency
	// that does not exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when the target dependency graph has a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTargetNotFound is returned when a requested target is not in the graph.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrUnknownToolchain is returned when a target names a toolchain the
	// driver does not know how to invoke.
	ErrUnknownToolchain = zerr.New("unknown toolchain")

	// ErrTimingUnsupported is returned when the time command runs on a
	// platform without a usable timing facility.
	ErrTimingUnsupported = zerr.New("timing is not supported on this platform")

	// ErrBuildFailed is returned when one or more target builds failed.
	ErrBuildFailed = zerr.New("build failed")
)
