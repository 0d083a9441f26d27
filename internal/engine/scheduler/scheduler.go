// Package scheduler implements the target build scheduler.
package scheduler

import (
	"context"
	"sync"
	"time"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// timeNow is a seam for tests.
var timeNow = time.Now

// TargetStatus represents the status of a target.
type TargetStatus string

const (
	// StatusPending indicates the target is waiting to be built.
	StatusPending TargetStatus = "Pending"
	// StatusRunning indicates the target is currently building.
	StatusRunning TargetStatus = "Running"
	// StatusCompleted indicates the target built successfully.
	StatusCompleted TargetStatus = "Completed"
	// StatusFailed indicates the target build failed.
	StatusFailed TargetStatus = "Failed"
	// StatusCached indicates the target was skipped because it was up to date.
	StatusCached TargetStatus = "Cached"
)

// Options configures one scheduler run.
type Options struct {
	// Parallelism caps the number of concurrent compiler invocations.
	Parallelism int
	// Force bypasses the build info cache.
	Force bool
	// Timed measures every invocation and implies Force. Timed runs are
	// serialized so child rusage samples stay attributable.
	Timed bool
}

// Result reports the outcome of one target.
type Result struct {
	Target domain.InternedString
	Status TargetStatus
	Timing *domain.Timing
}

// Scheduler builds targets in dependency order.
type Scheduler struct {
	executor   ports.Executor
	store      ports.BuildInfoStore
	hasher     ports.Hasher
	toolchains ports.ToolchainRegistry
	telemetry  ports.Telemetry
	stopwatch  ports.Stopwatch

	mu     sync.RWMutex
	status map[domain.InternedString]TargetStatus
}

// NewScheduler creates a new Scheduler with the given dependencies.
func NewScheduler(
	executor ports.Executor,
	store ports.BuildInfoStore,
	hasher ports.Hasher,
	toolchains ports.ToolchainRegistry,
	telemetry ports.Telemetry,
	stopwatch ports.Stopwatch,
) *Scheduler {
	return &Scheduler{
		executor:   executor,
		store:      store,
		hasher:     hasher,
		toolchains: toolchains,
		telemetry:  telemetry,
		stopwatch:  stopwatch,
		status:     make(map[domain.InternedString]TargetStatus),
	}
}

// Status returns the current status of a target.
func (s *Scheduler) Status(name domain.InternedString) TargetStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status[name]
}

func (s *Scheduler) updateStatus(name domain.InternedString, status TargetStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[name] = status
}

// Run builds the requested targets plus their transitive dependencies on the
// given platform. Targets are grouped into topological waves; within a wave,
// independent targets build concurrently.
func (s *Scheduler) Run(
	ctx context.Context,
	graph *domain.Graph,
	targets []domain.InternedString,
	platform domain.Platform,
	opts Options,
) ([]Result, error) {
	if opts.Timed && !platform.SupportsTiming() {
		return nil, domain.ErrTimingUnsupported
	}

	if err := graph.Validate(); err != nil {
		return nil, err
	}

	ordered, err := graph.Closure(targets)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for _, name := range ordered {
		s.status[name] = StatusPending
	}
	s.mu.Unlock()

	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}
	if opts.Timed {
		// Rusage of children is process-wide; concurrent compiles would
		// pollute each other's samples.
		parallelism = 1
	}

	results := make(map[domain.InternedString]Result, len(ordered))
	var resultsMu sync.Mutex

	for _, wave := range waves(graph, ordered) {
		eg, waveCtx := errgroup.WithContext(ctx)
		eg.SetLimit(parallelism)

		for _, name := range wave {
			target, _ := graph.Target(name)
			eg.Go(func() error {
				res, buildErr := s.buildTarget(waveCtx, &target, platform, opts)

				resultsMu.Lock()
				results[name] = res
				resultsMu.Unlock()

				if buildErr != nil {
					return zerr.With(zerr.Wrap(buildErr, "target build failed"), "target", name.String())
				}
				return nil
			})
		}

		// A failed wave stops the run; dependents would build against
		// missing or stale artifacts.
		if err := eg.Wait(); err != nil {
			return orderResults(ordered, results), err
		}
	}

	return orderResults(ordered, results), nil
}

// buildTarget compiles one target, consulting the build cache first.
func (s *Scheduler) buildTarget(
	ctx context.Context,
	target *domain.Target,
	platform domain.Platform,
	opts Options,
) (Result, error) {
	res := Result{Target: target.Name}

	tc, err := s.toolchains.Lookup(target.Toolchain.String())
	if err != nil {
		s.updateStatus(target.Name, StatusFailed)
		res.Status = StatusFailed
		return res, err
	}

	inv := tc.Compile(target, platform)
	artifacts := tc.Artifacts(target, platform)

	inputHash, err := s.hasher.ComputeInputHash(target, inv.Argv, target.Environment, ".")
	if err != nil {
		s.updateStatus(target.Name, StatusFailed)
		res.Status = StatusFailed
		return res, err
	}

	ctx, vertex := s.telemetry.Record(ctx, target.Name.String())

	if !opts.Force && !opts.Timed && s.isCacheHit(target.Name.String(), inputHash, artifacts) {
		s.updateStatus(target.Name, StatusCached)
		vertex.Cached()
		vertex.Complete(nil)
		res.Status = StatusCached
		return res, nil
	}

	s.updateStatus(target.Name, StatusRunning)

	var stop func() domain.Timing
	if opts.Timed {
		stop = s.stopwatch.Start()
	}

	execErr := s.executor.Execute(ctx, inv, vertex.Stdout(), vertex.Stderr())

	if stop != nil {
		timing := stop()
		res.Timing = &timing
	}

	vertex.Complete(execErr)

	if execErr != nil {
		s.updateStatus(target.Name, StatusFailed)
		res.Status = StatusFailed
		return res, execErr
	}

	if err := s.recordBuild(target, artifacts, inputHash); err != nil {
		s.updateStatus(target.Name, StatusFailed)
		res.Status = StatusFailed
		return res, err
	}

	s.updateStatus(target.Name, StatusCompleted)
	res.Status = StatusCompleted
	return res, nil
}

// isCacheHit reports whether the stored build info still matches both the
// inputs and the executable on disk. A clean or an out-of-band removal of
// the artifact invalidates the entry; a stale record must never mask a
// missing executable.
func (s *Scheduler) isCacheHit(targetName, inputHash string, artifacts []string) bool {
	info, err := s.store.Get(targetName)
	if err != nil || info == nil || info.InputHash != inputHash {
		return false
	}

	outputHash, err := s.hasher.ComputeOutputHash(primaryArtifact(artifacts), ".")
	return err == nil && outputHash == info.OutputHash
}

// primaryArtifact narrows an artifact list to the executable, excluding
// debug sidecars that need not exist on every platform.
func primaryArtifact(artifacts []string) []string {
	if len(artifacts) == 0 {
		return nil
	}
	return artifacts[:1]
}

// recordBuild hashes the produced executable and stores the build info.
func (s *Scheduler) recordBuild(target *domain.Target, artifacts []string, inputHash string) error {
	outputHash, err := s.hasher.ComputeOutputHash(primaryArtifact(artifacts), ".")
	if err != nil {
		return err
	}

	info := domain.BuildInfo{
		TargetName: target.Name.String(),
		InputHash:  inputHash,
		OutputHash: outputHash,
		Timestamp:  timeNow(),
	}

	if err := s.store.Put(info); err != nil {
		return zerr.Wrap(err, "failed to store build info")
	}
	return nil
}

// waves groups the ordered targets into dependency levels: a target's wave is
// one past the deepest wave among its dependencies within the run set.
func waves(graph *domain.Graph, ordered []domain.InternedString) [][]domain.InternedString {
	level := make(map[domain.InternedString]int, len(ordered))
	inRun := make(map[domain.InternedString]bool, len(ordered))
	for _, name := range ordered {
		inRun[name] = true
	}

	maxLevel := 0
	for _, name := range ordered {
		target, _ := graph.Target(name)
		l := 0
		for _, dep := range target.Dependencies {
			if inRun[dep] && level[dep]+1 > l {
				l = level[dep] + 1
			}
		}
		level[name] = l
		if l > maxLevel {
			maxLevel = l
		}
	}

	grouped := make([][]domain.InternedString, maxLevel+1)
	for _, name := range ordered {
		grouped[level[name]] = append(grouped[level[name]], name)
	}
	return grouped
}

func orderResults(ordered []domain.InternedString, results map[domain.InternedString]Result) []Result {
	out := make([]Result, 0, len(results))
	for _, name := range ordered {
		if res, ok := results[name]; ok {
			out = append(out, res)
		}
	}
	return out
}
