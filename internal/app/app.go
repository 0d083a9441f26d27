// Package app implements the application layer for mk.
package app

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"runtime"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/mk/internal/engine/scheduler"
	"go.trai.ch/mk/internal/ui/output"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scheduler    *scheduler.Scheduler
	toolchains   ports.ToolchainRegistry
	logger       ports.Logger
	platform     domain.Platform
	printer      *output.Printer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sched *scheduler.Scheduler,
	toolchains ports.ToolchainRegistry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		scheduler:    sched,
		toolchains:   toolchains,
		logger:       logger,
		platform:     domain.CurrentPlatform(),
		printer:      output.New(os.Stdout),
	}
}

// SetPlatform overrides the detected platform. Used for testing.
func (a *App) SetPlatform(p domain.Platform) {
	a.platform = p
}

// SetOutput redirects command output. Used for testing.
func (a *App) SetOutput(w io.Writer) {
	a.printer = output.New(w)
}

// BuildOptions configures the build and time operations.
type BuildOptions struct {
	// Only restricts the operation to targets of the named toolchain.
	Only string
	// Force bypasses the build info cache.
	Force bool
	// Jobs caps concurrent compiler invocations; 0 means runtime.NumCPU().
	Jobs int
}

// CleanOptions configures the clean operation.
type CleanOptions struct {
	// Only restricts the operation to targets of the named toolchain.
	Only string
}

// Build compiles the requested targets (default: all).
func (a *App) Build(ctx context.Context, targetNames []string, opts BuildOptions) error {
	graph, roots, err := a.plan(targetNames, opts.Only)
	if err != nil {
		return err
	}

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = runtime.NumCPU()
	}

	results, runErr := a.scheduler.Run(ctx, graph, roots, a.platform, scheduler.Options{
		Parallelism: jobs,
		Force:       opts.Force,
	})
	a.printer.Summary(results)

	if runErr != nil {
		// The compiler output already went through the executor's logging;
		// join the sentinel so main can exit without logging twice.
		return errors.Join(domain.ErrBuildFailed, runErr)
	}
	return nil
}

// Time compiles the requested targets with per-target timing.
// On platforms without a timing facility it warns and does nothing,
// like the classic driver scripts.
func (a *App) Time(ctx context.Context, targetNames []string, opts BuildOptions) error {
	if !a.platform.SupportsTiming() {
		a.logger.Warn("the time command only works on unix-like systems")
		return nil
	}

	graph, roots, err := a.plan(targetNames, opts.Only)
	if err != nil {
		return err
	}

	results, runErr := a.scheduler.Run(ctx, graph, roots, a.platform, scheduler.Options{
		Timed: true,
	})
	a.printer.TimingReport(results)

	if runErr != nil {
		return errors.Join(domain.ErrBuildFailed, runErr)
	}
	return nil
}

// Clean removes the artifacts of the requested targets (default: all).
// Missing artifacts are not an error.
func (a *App) Clean(_ context.Context, targetNames []string, opts CleanOptions) error {
	graph, roots, err := a.plan(targetNames, opts.Only)
	if err != nil {
		return err
	}

	for _, name := range roots {
		target, _ := graph.Target(name)

		tc, err := a.toolchains.Lookup(target.Toolchain.String())
		if err != nil {
			return err
		}

		for _, artifact := range tc.Artifacts(&target, a.platform) {
			if err := os.Remove(artifact); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				return zerr.With(zerr.Wrap(err, "failed to remove artifact"), "path", artifact)
			}
			a.logger.Info("removed " + artifact)
		}
	}

	return nil
}

// plan loads and validates the graph and resolves the requested target names,
// applying the toolchain restriction.
func (a *App) plan(targetNames []string, only string) (*domain.Graph, []domain.InternedString, error) {
	graph, err := a.configLoader.Load(".")
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	if err := graph.Validate(); err != nil {
		return nil, nil, err
	}

	var roots []domain.InternedString
	if len(targetNames) == 0 {
		for target := range graph.Walk() {
			roots = append(roots, target.Name)
		}
	} else {
		for _, name := range targetNames {
			interned := domain.NewInternedString(name)
			if _, ok := graph.Target(interned); !ok {
				return nil, nil, zerr.With(domain.ErrTargetNotFound, "target_name", name)
			}
			roots = append(roots, interned)
		}
	}

	if only != "" {
		filtered := roots[:0]
		for _, name := range roots {
			target, _ := graph.Target(name)
			if target.Toolchain.String() == only {
				filtered = append(filtered, name)
			}
		}
		roots = filtered
	}

	return graph, roots, nil
}
