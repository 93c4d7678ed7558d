package octocase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestBuildDefaultDevice(t *testing.T) {
	p := DefaultParams()
	asm, err := Build(p)
	require.NoError(t, err)
	require.NotNil(t, asm.Enclosure)
	require.NotNil(t, asm.Button)
	require.NotNil(t, asm.Profile)
	assert.NotEmpty(t, asm.History())

	s := asm.Enclosure
	// Power button open through the right wall.
	assert.Positive(t, s.Evaluate(r3.Vec{X: 18.75, Z: 25}))
	// USB-C opening.
	assert.Positive(t, s.Evaluate(r3.Vec{X: 18.75, Z: 12}))
	// Push-to-talk opening.
	assert.Positive(t, s.Evaluate(r3.Vec{X: 18.75, Z: 105}))
	// Acoustic hole on the front.
	assert.Positive(t, s.Evaluate(r3.Vec{Y: 18.75, Z: 10}))
	// Center grille hole.
	grilleV := p.Height - 20 - 0.8*asm.Profile.LongEdge()
	assert.Positive(t, s.Evaluate(r3.Vec{Y: 18.75, Z: grilleV}))
	// LED row.
	assert.Positive(t, s.Evaluate(r3.Vec{X: -8, Y: 18.75, Z: p.Height - 10}))
	// Undisturbed front wall between mic and grille.
	assert.Negative(t, s.Evaluate(r3.Vec{Y: 18.75, Z: 60}))
	// Mounting post fused inside the back wall.
	assert.Negative(t, s.Evaluate(r3.Vec{X: 8, Y: -17.0, Z: 80}))
}

func TestDefaultFeatureNamesUnique(t *testing.T) {
	p := DefaultParams()
	pr, err := NewProfile(p.Width, p.Ratio, p.CornerRound)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, f := range DefaultFeatures(p, pr) {
		name := f.Meta().Name
		assert.False(t, seen[name], "duplicate feature name %q", name)
		seen[name] = true
	}
}

func TestBatteryClearance(t *testing.T) {
	// An 18650 cell (18.6 mm with wrap) must fit the interior with room
	// to spare.
	p := DefaultParams()
	assert.InDelta(t, 16.4, p.InteriorFlat()-18.6, 1e-9)
}

func TestBuildIsDeterministic(t *testing.T) {
	p := DefaultParams()
	a, err := Build(p)
	require.NoError(t, err)
	b, err := Build(p)
	require.NoError(t, err)

	require.Equal(t, len(a.History()), len(b.History()))
	probes := []r3.Vec{
		{X: 18.75, Z: 25},
		{Y: 18.75, Z: 60},
		{X: 8, Y: -17.0, Z: 80},
		{X: 21, Z: 129},
	}
	for _, pt := range probes {
		assert.Equal(t, a.Enclosure.Evaluate(pt), b.Enclosure.Evaluate(pt))
	}
}

func TestBuildRejectsBadParams(t *testing.T) {
	p := DefaultParams()
	p.Width = -1
	_, err := Build(p)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
