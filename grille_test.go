package octocase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestGrilleExpansion(t *testing.T) {
	g := GrilleBatch{
		FeatureMeta:  FeatureMeta{Name: "grille", Face: FaceFront, V: AtMM(110)},
		Radius:       9.95,
		HoleDiameter: 0.75,
		Spacing:      2.5,
	}
	holes := g.Holes()
	require.Len(t, holes, 45)

	reach := g.Radius - g.HoleDiameter/2
	for _, h := range holes {
		assert.Equal(t, 0.75, h.Diameter)
		assert.Equal(t, FaceFront, h.Face)
		r := math.Hypot(h.U, h.V.resolve(150)-110)
		assert.LessOrEqual(t, r, reach+1e-9, "hole %s", h.Name)
	}
}

func TestGrilleExpansionDeterministic(t *testing.T) {
	g := GrilleBatch{
		FeatureMeta:  FeatureMeta{Name: "grille", Face: FaceFront, V: AtMM(110)},
		Radius:       9.95,
		HoleDiameter: 0.75,
		Spacing:      2.5,
	}
	a, b := g.Holes(), g.Holes()
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i], b[i])
	}
}

func TestGrilleDegenerate(t *testing.T) {
	assert.Nil(t, GrilleBatch{Radius: -1, HoleDiameter: 1, Spacing: 1}.Holes())
	assert.Nil(t, GrilleBatch{Radius: 5, HoleDiameter: 0, Spacing: 1}.Holes())
	assert.Nil(t, GrilleBatch{Radius: 5, HoleDiameter: 1, Spacing: 0}.Holes())
}

func TestGrillePlacement(t *testing.T) {
	p := DefaultParams()
	asm := applyFeatures(t, p, GrilleBatch{
		FeatureMeta:  FeatureMeta{Name: "grille", Face: FaceFront, V: AtMM(110)},
		Radius:       9.95,
		HoleDiameter: 1.5,
		Spacing:      2.5,
	})

	// Center hole open through the wall, web between holes intact.
	assert.Positive(t, asm.Enclosure.Evaluate(r3.Vec{Y: 18.75, Z: 110}))
	assert.Negative(t, asm.Enclosure.Evaluate(r3.Vec{X: 1.25, Y: 18.75, Z: 110}))
	// Nothing cut past the grille boundary.
	assert.Negative(t, asm.Enclosure.Evaluate(r3.Vec{X: 11, Y: 18.75, Z: 110}))
}

func TestGrilleValidation(t *testing.T) {
	p := DefaultParams()
	body := buildTestShell(t, p)
	eng := newEngine(body, NewFrames(body.Bounds()), p)

	_, err := eng.place(GrilleBatch{
		FeatureMeta: FeatureMeta{Name: "grille", Face: FaceFront, V: AtMM(110)},
		Radius:      -1, HoleDiameter: 1, Spacing: 1,
	})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = eng.place(GrilleBatch{
		FeatureMeta: FeatureMeta{Name: "grille", Face: FaceFront, V: AtMM(110)},
		Radius:      2, HoleDiameter: 5, Spacing: 1,
	})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
