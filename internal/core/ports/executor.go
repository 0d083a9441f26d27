package ports

import (
	"context"
	"io"

	"go.trai.ch/mk/internal/core/domain"
)

// Executor defines the interface for running compiler invocations.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the invocation, streaming the compiler's stdout and
	// stderr to the given writers as they are produced.
	//
	// It returns an error if the invocation fails, carrying the exit code
	// as metadata when one is available.
	Execute(ctx context.Context, inv *domain.Invocation, stdout, stderr io.Writer) error
}
