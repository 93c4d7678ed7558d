package octocase

import (
	"github.com/soypat/sdf"
	form2 "github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// AcousticMount seats a bottom-ported MEMS microphone behind a wall:
// an interior mounting pocket sized to the board footprint plus
// clearance, a through-hole to the exterior, and an interior relief
// bore that keeps the acoustic path open behind the inner surface.
//
// KeepOutRadius declares the obstruction-free law: after composition
// no other feature may intersect a disk of that radius centered on the
// through-hole at the interior wall face. The compositor enforces it;
// a blocked port destroys the port's entire value, so a violation is
// structural, not cosmetic.
type AcousticMount struct {
	FeatureMeta
	// Footprint is the microphone board outline.
	Footprint r2.Vec
	// FootprintClearance is added to each footprint dimension.
	FootprintClearance float64
	// PocketDepth is the interior pocket depth.
	PocketDepth float64
	// HoleDiameter is the exterior acoustic hole.
	HoleDiameter float64
	// ReliefDiameter is the interior bore aligned with the mic port.
	ReliefDiameter float64
	// KeepOutRadius is the obstruction-free radius on the interior face.
	KeepOutRadius float64
}

func (e *engine) placeAcoustic(a AcousticMount, fr FaceFrame) ([]placed, error) {
	switch {
	case a.Footprint.X <= 0 || a.Footprint.Y <= 0:
		return nil, paramErrf("acoustic %q: footprint %v", a.Name, a.Footprint)
	case a.HoleDiameter <= 0 || a.ReliefDiameter <= 0:
		return nil, paramErrf("acoustic %q: hole %v relief %v", a.Name, a.HoleDiameter, a.ReliefDiameter)
	case a.PocketDepth <= 0 || a.KeepOutRadius < 0:
		return nil, paramErrf("acoustic %q: pocket depth %v keep-out %v", a.Name, a.PocketDepth, a.KeepOutRadius)
	}
	wall := e.body.Wall

	// Exterior acoustic hole through the full wall. The keep-out disk
	// sits where the hole meets the interior surface.
	hole := placed{
		name:      a.Name,
		feature:   a,
		op:        opCut,
		solid:     e.throughCutter(fr, form2.Circle(a.HoleDiameter/2), a.U, a.V),
		keepOutR:  a.KeepOutRadius,
		keepOutAt: r3.Add(e.surfacePoint(fr, a.U, a.V), r3.Scale(-wall, fr.Normal)),
	}

	pocket, err := e.place(Pocket{
		FeatureMeta: FeatureMeta{
			Name: a.Name + "-pocket",
			Face: a.Face,
			U:    a.U,
			V:    a.V,
		},
		Size: r2.Vec{
			X: a.Footprint.X + a.FootprintClearance,
			Y: a.Footprint.Y + a.FootprintClearance,
		},
		Depth: a.PocketDepth,
	})
	if err != nil {
		return nil, err
	}

	// Relief bore from the inner surface toward the mic, long enough
	// to clear the keep-out region.
	reliefDepth := a.KeepOutRadius + a.PocketDepth
	relief2 := form2.Circle(a.ReliefDiameter / 2)
	relief3 := sdf.Extrude3D(relief2, reliefDepth+featureMargin)
	along := wall + (reliefDepth-featureMargin)/2
	center := r3.Add(e.surfacePoint(fr, a.U, a.V), r3.Scale(-along, fr.Normal))
	relief := placed{
		name:    a.Name + "-relief",
		feature: a,
		op:      opCut,
		solid:   fr.orientTo(relief3, center),
	}

	out := []placed{hole}
	out = append(out, pocket...)
	return append(out, relief), nil
}
