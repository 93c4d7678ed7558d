package octocase

import (
	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// cavitySlack extends the cavity cut past both ends of the prism so
// the hollowing difference can never leave a membrane from floating
// point slack.
const cavitySlack = 1.0

// Body is one state of the enclosure solid. Builders never mutate a
// Body: every applied feature yields a new value, so intermediate
// states stay inspectable.
type Body struct {
	// Solid is the enclosure at this state.
	Solid sdf.SDF3
	// Cavity is the hollowed interior volume, kept so additive
	// features that wrap the outside (the button frame) can be clipped
	// against it.
	Cavity sdf.SDF3
	// Outer and Inner are the boundary cross-sections of the wall.
	Outer, Inner sdf.SDF2

	Width, Height, Wall float64
}

// withSolid derives the next body state from a new solid.
func (b Body) withSolid(s sdf.SDF3) Body {
	b.Solid = s
	return b
}

// Bounds returns the bounding box of the current solid.
func (b Body) Bounds() r3.Box { return b.Solid.Bounds() }

// BuildShell extrudes the profile to height and hollows it to the wall
// thickness. The bottom face sits at z=0, the top at z=height.
//
// Top and bottom edge rounding is applied to the outer solid before
// the cavity is subtracted; rounding an edge next to a freshly cut
// face is the classic way to make a kernel fail, and doing it
// pre-hollow sidesteps that entire failure class. If the kernel still
// rejects the radius the shell is built square-edged and a warning is
// recorded: an enclosure is always produced, edge cosmetics are best
// effort.
func BuildShell(pr *Profile, p Params) (Body, []Warning, error) {
	if p.Wall >= pr.Chamfer() {
		return Body{}, nil, geomErrf("wall %v consumes the %v chamfer, inner profile degenerate",
			p.Wall, pr.Chamfer())
	}
	outer2, warns := pr.SDF()

	outer3, w := roundedPrism(outer2, p.Height, p.EdgeRound)
	warns = append(warns, w...)

	inner2 := sdf.Offset2D(outer2, -p.Wall)
	cavity := sdf.Extrude3D(inner2, p.Height+2*cavitySlack)

	// Lift so the prism spans z in [0, height].
	lift := sdf.Translate3D(r3.Vec{Z: p.Height / 2})
	outer3 = sdf.Transform3D(outer3, lift)
	cavity = sdf.Transform3D(cavity, lift)

	return Body{
		Solid:  sdf.Difference3D(outer3, cavity),
		Cavity: cavity,
		Outer:  outer2,
		Inner:  inner2,
		Width:  pr.Width(),
		Height: p.Height,
		Wall:   p.Wall,
	}, warns, nil
}

// roundedPrism extrudes the section with rounded top and bottom edges.
// The rounded extrusion inflates laterally by the rounding radius, so
// the section is first shrunk by the same amount to keep the
// flat-to-flat width exact.
func roundedPrism(section sdf.SDF2, height, round float64) (sdf.SDF3, []Warning) {
	if round <= 0 {
		return sdf.Extrude3D(section, height), nil
	}
	s := sdf.ExtrudeRounded3D(sdf.Offset2D(section, -round), height, round)
	if solidEmpty(s) {
		return sdf.Extrude3D(section, height), []Warning{
			warnf("shell", "edge rounding", "radius %v rejected for height %v", round, height),
		}
	}
	return s, nil
}

// solidEmpty reports whether the kernel degraded an operation to the
// empty solid.
func solidEmpty(s sdf.SDF3) bool {
	if s == nil {
		return true
	}
	bb := s.Bounds()
	return bb.Max.X <= bb.Min.X || bb.Max.Y <= bb.Min.Y || bb.Max.Z <= bb.Min.Z
}
