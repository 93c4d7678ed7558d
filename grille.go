package octocase

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// GrilleBatch is a circular speaker grille: a bounded square grid of
// small holes. The batch expands to plain Hole features, one per grid
// point that fits inside the grille boundary.
type GrilleBatch struct {
	FeatureMeta
	// Radius bounds the grille disk.
	Radius float64
	// HoleDiameter is the diameter of each perforation.
	HoleDiameter float64
	// Spacing is the center-to-center grid pitch.
	Spacing float64
}

// Holes enumerates the perforations. A grid point is kept only when
// its distance from the grille center is at most Radius - d/2, so no
// hole's material ever breaches the grille boundary. The expansion is
// a pure function of the inputs: enumerating twice yields the same
// sequence.
func (g GrilleBatch) Holes() []Hole {
	if g.Radius <= 0 || g.Spacing <= 0 || g.HoleDiameter <= 0 {
		return nil
	}
	reach := g.Radius - g.HoleDiameter/2
	n := int(g.Radius/g.Spacing) + 1
	var holes []Hole
	for i := -n; i <= n; i++ {
		for j := -n; j <= n; j++ {
			off := r2.Vec{X: float64(i) * g.Spacing, Y: float64(j) * g.Spacing}
			if math.Hypot(off.X, off.Y) > reach {
				continue
			}
			holes = append(holes, Hole{
				FeatureMeta: FeatureMeta{
					Name: featName(g.Name, len(holes)),
					Face: g.Face,
					U:    g.U + off.X,
					V:    g.V.Plus(off.Y),
					Tol:  g.Tol,
				},
				Diameter: g.HoleDiameter,
			})
		}
	}
	return holes
}

func (e *engine) placeGrille(g GrilleBatch) ([]placed, error) {
	if g.Radius <= 0 || g.Spacing <= 0 || g.HoleDiameter <= 0 {
		return nil, paramErrf("grille %q: radius %v, hole %v, spacing %v",
			g.Name, g.Radius, g.HoleDiameter, g.Spacing)
	}
	if g.HoleDiameter >= 2*g.Radius {
		return nil, paramErrf("grille %q: hole %v does not fit radius %v",
			g.Name, g.HoleDiameter, g.Radius)
	}
	var out []placed
	for _, h := range g.Holes() {
		p, err := e.place(h)
		if err != nil {
			return nil, err
		}
		out = append(out, p...)
	}
	return out, nil
}
