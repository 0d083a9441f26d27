package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mk/internal/core/domain"
)

func TestWaves(t *testing.T) {
	g := domain.NewGraph()
	// D -> B -> A, C -> A; expected waves: [A], [B, C], [D]
	a := domain.Target{Name: domain.NewInternedString("A")}
	b := domain.Target{
		Name:         domain.NewInternedString("B"),
		Dependencies: []domain.InternedString{a.Name},
	}
	c := domain.Target{
		Name:         domain.NewInternedString("C"),
		Dependencies: []domain.InternedString{a.Name},
	}
	d := domain.Target{
		Name:         domain.NewInternedString("D"),
		Dependencies: []domain.InternedString{b.Name},
	}

	for _, target := range []*domain.Target{&a, &b, &c, &d} {
		require.NoError(t, g.AddTarget(target))
	}
	require.NoError(t, g.Validate())

	ordered, err := g.Closure([]domain.InternedString{c.Name, d.Name})
	require.NoError(t, err)

	grouped := waves(g, ordered)
	require.Len(t, grouped, 3)
	assert.Equal(t, []domain.InternedString{a.Name}, grouped[0])
	assert.ElementsMatch(t, []domain.InternedString{b.Name, c.Name}, grouped[1])
	assert.Equal(t, []domain.InternedString{d.Name}, grouped[2])
}

func TestWaves_IgnoresDepsOutsideRunSet(t *testing.T) {
	g := domain.NewGraph()
	a := domain.Target{Name: domain.NewInternedString("A")}
	b := domain.Target{
		Name:         domain.NewInternedString("B"),
		Dependencies: []domain.InternedString{a.Name},
	}
	require.NoError(t, g.AddTarget(&a))
	require.NoError(t, g.AddTarget(&b))
	require.NoError(t, g.Validate())

	// Only B is in the run set; its dependency on A does not raise its level.
	grouped := waves(g, []domain.InternedString{b.Name})
	require.Len(t, grouped, 1)
	assert.Equal(t, []domain.InternedString{b.Name}, grouped[0])
}
