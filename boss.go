package octocase

import (
	"github.com/soypat/sdf"
	form2 "github.com/soypat/sdf/form2/must2"
	form3 "github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

// defaultBossMinWall is the minimum material around a boss bore when
// the feature does not declare its own.
const defaultBossMinWall = 1.0

// Boss is a raised cylindrical mounting post on the interior of a
// face, with an optional concentric screw bore entering from the free
// end. Tolerance class press-fit narrows the post's outer diameter;
// clearance widens the bore.
type Boss struct {
	FeatureMeta
	Height   float64
	Diameter float64
	// BoreDiameter and BoreDepth describe the screw bore. Zero means
	// a solid post.
	BoreDiameter float64
	BoreDepth    float64
	// MinWall is the minimum material between bore and outer surface.
	MinWall float64
}

// Ring is a raised annulus on the outside of a face, typically guarding
// an existing cutout such as the power button.
type Ring struct {
	FeatureMeta
	InnerDiameter float64
	Width         float64 // radial material width
	Height        float64 // protrusion past the outer wall
}

func (e *engine) placeBoss(b Boss, fr FaceFrame) ([]placed, error) {
	if b.Height <= 0 || b.Diameter <= 0 {
		return nil, paramErrf("boss %q: height %v diameter %v", b.Name, b.Height, b.Diameter)
	}
	outerD := b.Diameter + e.params.bossOffset(b.Tol)
	boreD := b.BoreDiameter
	if boreD > 0 {
		boreD += e.params.holeOffset(b.Tol)
	}
	minWall := b.MinWall
	if minWall == 0 {
		minWall = defaultBossMinWall
	}
	if boreD > 0 && boreD >= outerD-2*minWall {
		return nil, paramErrf("boss %q: bore %v too wide for post %v with %v min wall",
			b.Name, boreD, outerD, minWall)
	}
	if b.BoreDepth >= b.Height && boreD > 0 {
		return nil, paramErrf("boss %q: bore depth %v through the %v post", b.Name, b.BoreDepth, b.Height)
	}

	// Built along the local z axis; the end toward the wall is
	// embedded featureMargin deep so the union always fuses.
	h := b.Height + featureMargin
	var s sdf.SDF3 = form3.Cylinder(h, outerD/2, 0)
	if boreD > 0 && b.BoreDepth > 0 {
		sign := fr.axisSign()
		var bore sdf.SDF3 = form3.Cylinder(b.BoreDepth+featureMargin, boreD/2, 0)
		zOfs := -sign * (h - b.BoreDepth + featureMargin) / 2
		bore = sdf.Transform3D(bore, sdf.Translate3D(r3.Vec{Z: zOfs}))
		s = sdf.Difference3D(s, bore)
	}

	along := e.body.Wall + b.Height/2 - featureMargin/2
	center := r3.Add(e.surfacePoint(fr, b.U, b.V), r3.Scale(-along, fr.Normal))
	return []placed{{
		name:    b.Name,
		feature: b,
		op:      opAdd,
		solid:   fr.orientTo(s, center),
	}}, nil
}

func (e *engine) placeRing(r Ring, fr FaceFrame) ([]placed, error) {
	if r.InnerDiameter <= 0 || r.Width <= 0 || r.Height <= 0 {
		return nil, paramErrf("ring %q: inner %v width %v height %v",
			r.Name, r.InnerDiameter, r.Width, r.Height)
	}
	innerD := r.InnerDiameter + e.params.holeOffset(r.Tol)
	outerD := innerD + 2*r.Width
	ring2 := sdf.Difference2D(form2.Circle(outerD/2), form2.Circle(innerD/2))

	// Extrude from just inside the outer wall so the union fuses.
	depth := r.Height + featureMargin
	s := sdf.Extrude3D(ring2, depth)
	center := r3.Add(e.surfacePoint(fr, r.U, r.V),
		r3.Scale((r.Height-featureMargin)/2, fr.Normal))
	return []placed{{
		name:     r.Name,
		feature:  r,
		op:       opAdd,
		solid:    fr.orientTo(s, center),
		protrude: r.Height,
	}}, nil
}
