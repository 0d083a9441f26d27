package domain_test

import (
	"testing"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestGraph_AddTarget(t *testing.T) {
	g := domain.NewGraph()
	target := domain.Target{Name: domain.NewInternedString("nbody-c")}

	if err := g.AddTarget(&target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := g.AddTarget(&target); err == nil {
		t.Error("expected error when adding duplicate target, got nil")
	} else {
		zErr, ok := err.(*zerr.Error)
		if !ok {
			t.Errorf("expected *zerr.Error, got %T", err)
		}
		meta := zErr.Metadata()
		if name, ok := meta["target_name"].(string); !ok || name != "nbody-c" {
			t.Errorf("expected metadata target_name=nbody-c, got %v", meta["target_name"])
		}
	}
}

func TestGraph_Validate_Cycle(t *testing.T) {
	g := domain.NewGraph()
	targetA := domain.Target{
		Name:         domain.NewInternedString("A"),
		Dependencies: []domain.InternedString{domain.NewInternedString("B")},
	}
	targetB := domain.Target{
		Name:         domain.NewInternedString("B"),
		Dependencies: []domain.InternedString{domain.NewInternedString("A")},
	}

	if err := g.AddTarget(&targetA); err != nil {
		t.Fatalf("failed to add target A: %v", err)
	}
	if err := g.AddTarget(&targetB); err != nil {
		t.Fatalf("failed to add target B: %v", err)
	}

	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}

	meta := zErr.Metadata()
	if cycle, ok := meta["cycle"].(string); !ok || cycle == "" {
		t.Errorf("expected metadata cycle to be non-empty string, got %v", meta["cycle"])
	}
}

func TestGraph_Validate_MissingDependency(t *testing.T) {
	g := domain.NewGraph()
	target := domain.Target{
		Name:         domain.NewInternedString("A"),
		Dependencies: []domain.InternedString{domain.NewInternedString("ghost")},
	}

	if err := g.AddTarget(&target); err != nil {
		t.Fatalf("failed to add target: %v", err)
	}

	if err := g.Validate(); err == nil {
		t.Fatal("expected error for missing dependency, got nil")
	}
}

func TestGraph_Walk(t *testing.T) {
	g := domain.NewGraph()
	// A -> B -> C
	// Execution order: C, B, A
	targetA := domain.Target{
		Name:         domain.NewInternedString("A"),
		Dependencies: []domain.InternedString{domain.NewInternedString("B")},
	}
	targetB := domain.Target{
		Name:         domain.NewInternedString("B"),
		Dependencies: []domain.InternedString{domain.NewInternedString("C")},
	}
	targetC := domain.Target{
		Name: domain.NewInternedString("C"),
	}

	for _, target := range []*domain.Target{&targetA, &targetB, &targetC} {
		if err := g.AddTarget(target); err != nil {
			t.Fatalf("failed to add target %s: %v", target.Name.String(), err)
		}
	}

	if err := g.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	executed := make([]string, 0, 3)
	for target := range g.Walk() {
		executed = append(executed, target.Name.String())
	}

	if len(executed) != 3 {
		t.Fatalf("expected 3 targets executed, got %d", len(executed))
	}

	if executed[0] != "C" || executed[1] != "B" || executed[2] != "A" {
		t.Errorf("unexpected execution order: %v", executed)
	}
}

func TestGraph_Closure(t *testing.T) {
	g := domain.NewGraph()
	// A -> B -> C, D standalone
	targetA := domain.Target{
		Name:         domain.NewInternedString("A"),
		Dependencies: []domain.InternedString{domain.NewInternedString("B")},
	}
	targetB := domain.Target{
		Name:         domain.NewInternedString("B"),
		Dependencies: []domain.InternedString{domain.NewInternedString("C")},
	}
	targetC := domain.Target{Name: domain.NewInternedString("C")}
	targetD := domain.Target{Name: domain.NewInternedString("D")}

	for _, target := range []*domain.Target{&targetA, &targetB, &targetC, &targetD} {
		if err := g.AddTarget(target); err != nil {
			t.Fatalf("failed to add target %s: %v", target.Name.String(), err)
		}
	}

	if err := g.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	closure, err := g.Closure([]domain.InternedString{domain.NewInternedString("A")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := make([]string, len(closure))
	for i, name := range closure {
		got[i] = name.String()
	}

	if len(got) != 3 || got[0] != "C" || got[1] != "B" || got[2] != "A" {
		t.Errorf("unexpected closure: %v", got)
	}
}

func TestGraph_Closure_UnknownTarget(t *testing.T) {
	g := domain.NewGraph()
	if err := g.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	_, err := g.Closure([]domain.InternedString{domain.NewInternedString("ghost")})
	if err == nil {
		t.Fatal("expected error for unknown target, got nil")
	}
}

func TestGraph_Dependents(t *testing.T) {
	g := domain.NewGraph()
	targetA := domain.Target{
		Name:         domain.NewInternedString("A"),
		Dependencies: []domain.InternedString{domain.NewInternedString("B")},
	}
	targetB := domain.Target{Name: domain.NewInternedString("B")}

	if err := g.AddTarget(&targetA); err != nil {
		t.Fatalf("failed to add target A: %v", err)
	}
	if err := g.AddTarget(&targetB); err != nil {
		t.Fatalf("failed to add target B: %v", err)
	}

	deps := g.Dependents(domain.NewInternedString("B"))
	if len(deps) != 1 || deps[0].String() != "A" {
		t.Errorf("unexpected dependents: %v", deps)
	}
}
