package octocase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestProfileEdgeRatio(t *testing.T) {
	pr, err := NewProfile(40, 7.0/3.0, 0)
	require.NoError(t, err)

	assert.InDelta(t, 7.0/3.0, pr.LongEdge()/pr.ShortEdge(), 1e-9)
	assert.InDelta(t, 24.905, pr.LongEdge(), 1e-3)
	assert.InDelta(t, 10.674, pr.ShortEdge(), 1e-3)
	assert.Equal(t, 40.0, pr.Width())
	assert.InDelta(t, pr.Width(), pr.LongEdge()+2*pr.Chamfer(), 1e-12)
}

func TestProfileVerticesCounterclockwise(t *testing.T) {
	pr, err := NewProfile(40, 7.0/3.0, 0)
	require.NoError(t, err)

	verts := pr.Vertices()
	require.Len(t, verts, 8)
	// Shoelace area must be positive for a counterclockwise winding.
	var area float64
	for i, a := range verts {
		b := verts[(i+1)%len(verts)]
		area += a.X*b.Y - b.X*a.Y
	}
	assert.Greater(t, area, 0.0)

	classes := pr.EdgeClasses()
	require.Len(t, classes, 8)
	for i, c := range classes {
		if i%2 == 0 {
			assert.Equal(t, EdgeLong, c, "edge %d", i)
		} else {
			assert.Equal(t, EdgeShort, c, "edge %d", i)
		}
	}
}

func TestProfileDegenerate(t *testing.T) {
	_, err := NewProfile(40, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewProfile(40, 7.0/3.0, -1)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewProfile(0, 7.0/3.0, 0)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestProfileSDF(t *testing.T) {
	pr, err := NewProfile(40, 7.0/3.0, 0)
	require.NoError(t, err)
	s, warns := pr.SDF()
	require.Empty(t, warns)

	assert.Negative(t, s.Evaluate(r2.Vec{}))
	assert.Negative(t, s.Evaluate(r2.Vec{X: 19.9}))
	assert.Positive(t, s.Evaluate(r2.Vec{X: 20.1}))

	// The chamfer planes sit at (half + k)/sqrt2 ~ 22.95 from center.
	d := 22.9 / 1.41421356
	assert.Negative(t, s.Evaluate(r2.Vec{X: d, Y: d}))
	d = 23.0 / 1.41421356
	assert.Positive(t, s.Evaluate(r2.Vec{X: d, Y: d}))
}

func TestProfileSmoothing(t *testing.T) {
	pr, err := NewProfile(40, 7.0/3.0, 4)
	require.NoError(t, err)
	s, warns := pr.SDF()
	require.Empty(t, warns)

	// Smoothing trims the sharp corner but leaves the flats alone.
	corner := pr.Vertices()[0]
	assert.Positive(t, s.Evaluate(corner))
	assert.Negative(t, s.Evaluate(r2.Vec{X: 19.9}))
	assert.Positive(t, s.Evaluate(r2.Vec{X: 20.1}))
}

func TestProfileErrorsAreDistinct(t *testing.T) {
	_, errParam := NewProfile(40, -1, 0)
	_, errGeom := NewProfile(0, 1, 0)
	assert.False(t, errors.Is(errParam, ErrInvalidGeometry))
	assert.False(t, errors.Is(errGeom, ErrInvalidParameter))
}
