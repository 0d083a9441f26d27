// Package domain contains the core domain models for the target dependency graph.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Graph represents a dependency graph of targets.
type Graph struct {
	targets        map[InternedString]Target
	executionOrder []InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		targets: make(map[InternedString]Target),
	}
}

// AddTarget adds a target to the graph.
// It returns an error if a target with the same name already exists.
func (g *Graph) AddTarget(t *Target) error {
	if _, exists := g.targets[t.Name]; exists {
		return zerr.With(ErrTargetAlreadyExists, "target_name", t.Name.String())
	}
	g.targets[t.Name] = *t
	return nil
}

// Target returns the target with the given name.
func (g *Graph) Target(name InternedString) (Target, bool) {
	t, ok := g.targets[name]
	return t, ok
}

// TargetCount returns the number of targets in the graph.
func (g *Graph) TargetCount() int {
	return len(g.targets)
}

// Validate checks for cycles in the graph using a topological sort.
// It populates the execution order on success.
func (g *Graph) Validate() error {
	g.executionOrder = make([]InternedString, 0, len(g.targets))
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		target, exists := g.targets[u]
		if !exists {
			return zerr.With(ErrMissingDependency, "dependency", u.String())
		}

		for _, dep := range target.Dependencies {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	for name := range g.targets {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []InternedString, dep InternedString) error {
	cyclePath := ""
	startIdx := -1
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += dep.String()
	return zerr.With(ErrCycleDetected, "cycle", cyclePath)
}

// Walk returns an iterator that yields targets in execution order.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[Target] {
	return func(yield func(Target) bool) {
		for _, name := range g.executionOrder {
			if !yield(g.targets[name]) {
				return
			}
		}
	}
}

// Dependents returns the names of targets that depend directly on the given target.
func (g *Graph) Dependents(name InternedString) []InternedString {
	var dependents []InternedString
	for _, t := range g.targets {
		for _, dep := range t.Dependencies {
			if dep == name {
				dependents = append(dependents, t.Name)
				break
			}
		}
	}
	return dependents
}

// Closure returns the requested targets plus their transitive dependencies,
// in execution order. It assumes Validate() has been called and returned nil.
func (g *Graph) Closure(names []InternedString) ([]InternedString, error) {
	wanted := make(map[InternedString]bool, len(names))

	var mark func(u InternedString) error
	mark = func(u InternedString) error {
		if wanted[u] {
			return nil
		}
		target, exists := g.targets[u]
		if !exists {
			return zerr.With(ErrTargetNotFound, "target_name", u.String())
		}
		wanted[u] = true
		for _, dep := range target.Dependencies {
			if err := mark(dep); err != nil {
				return err
			}
		}
		return nil
	}

	for _, name := range names {
		if err := mark(name); err != nil {
			return nil, err
		}
	}

	ordered := make([]InternedString, 0, len(wanted))
	for _, name := range g.executionOrder {
		if wanted[name] {
			ordered = append(ordered, name)
		}
	}
	return ordered, nil
}
