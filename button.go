package octocase

import (
	"math"

	"github.com/soypat/sdf"
	form2 "github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// TaperButton is the large push-to-talk button assembly: a rectangular
// through-opening in the referenced face, a separately printed button
// body (flat base section lofted into a tapered crown), and a raised
// frame that follows the opening at a fixed clearance gap.
//
// The button spans the full width of a long face, so the frame's
// outline necessarily runs onto the two neighboring chamfer faces. The
// frame is therefore clipped against an outward offset of the whole
// outer profile rather than a single flat face plane, which makes it
// conform around the chamfers by construction.
type TaperButton struct {
	FeatureMeta
	// Width and Height are the button footprint at the wall surface.
	Width, Height float64
	// BaseDepth is the straight section before the taper begins;
	// BevelDepth the tapered section. Total protrusion is their sum.
	BaseDepth, BevelDepth float64
	// TaperDeg is the bevel angle in degrees from the face normal.
	TaperDeg float64
	// CornerRound rounds the button footprint corners.
	CornerRound float64
	// OpeningClearance enlarges the through-opening past the footprint.
	OpeningClearance float64
	// FrameGap is the standoff between opening edge and frame.
	// FrameWidth and FrameHeight size the raised frame itself.
	FrameGap, FrameWidth, FrameHeight float64
}

func (e *engine) placeButton(b TaperButton, fr FaceFrame) ([]placed, error) {
	switch {
	case b.Width <= 0 || b.Height <= 0:
		return nil, paramErrf("button %q: footprint %v x %v", b.Name, b.Width, b.Height)
	case b.BaseDepth < 0 || b.BevelDepth <= 0:
		return nil, paramErrf("button %q: base %v bevel %v", b.Name, b.BaseDepth, b.BevelDepth)
	case b.TaperDeg <= 0 || b.TaperDeg >= 90:
		return nil, paramErrf("button %q: taper %v deg", b.Name, b.TaperDeg)
	case b.FrameGap < 0 || b.FrameWidth <= 0 || b.FrameHeight <= 0:
		return nil, paramErrf("button %q: frame gap %v width %v height %v",
			b.Name, b.FrameGap, b.FrameWidth, b.FrameHeight)
	}

	// Through-opening, clearance past the footprint on every side.
	openW := b.Width + b.OpeningClearance
	openH := b.Height + b.OpeningClearance
	openRound := b.CornerRound + b.OpeningClearance/2
	opening := placed{
		name:    b.Name,
		feature: b,
		op:      opCut,
		solid:   e.throughCutter(fr, form2.Box(r2.Vec{X: openW, Y: openH}, openRound), b.U, b.V),
	}

	button, err := e.buttonBody(b, fr)
	if err != nil {
		return nil, err
	}
	opening.detached = button

	frame, err := e.buttonFrame(b, fr)
	if err != nil {
		return nil, err
	}
	return []placed{opening, frame}, nil
}

// buttonBody builds the detached button solid: a straight base section
// topped by a loft to a crown rectangle inset by BevelDepth*tan(taper)
// on each side.
func (e *engine) buttonBody(b TaperButton, fr FaceFrame) (sdf.SDF3, error) {
	inset := b.BevelDepth * math.Tan(b.TaperDeg*math.Pi/180)
	topW := b.Width - 2*inset
	topH := b.Height - 2*inset
	if topW <= 0 || topH <= 0 {
		return nil, geomErrf("button %q: taper %v deg over %v consumes the %v x %v footprint",
			b.Name, b.TaperDeg, b.BevelDepth, b.Width, b.Height)
	}
	base2 := form2.Box(r2.Vec{X: b.Width, Y: b.Height}, b.CornerRound)
	// Crown corner radius scales with the footprint reduction.
	top2 := form2.Box(r2.Vec{X: topW, Y: topH}, b.CornerRound*topW/b.Width)

	crown := sdf.Loft3D(base2, top2, b.BevelDepth, 0)
	if solidEmpty(crown) {
		return nil, geomErrf("button %q: degenerate crown loft", b.Name)
	}
	var body sdf.SDF3 = crown
	if b.BaseDepth > 0 {
		base3 := sdf.Extrude3D(base2, b.BaseDepth)
		crown = sdf.Transform3D(crown, sdf.Translate3D(r3.Vec{Z: (b.BaseDepth + b.BevelDepth) / 2}))
		body = sdf.Union3D(base3, crown)
	}
	// Base flush with the wall surface, crown pointing outward.
	center := r3.Add(e.surfacePoint(fr, b.U, b.V), r3.Scale(b.BaseDepth/2, fr.Normal))
	return fr.orientTo(body, center), nil
}

// buttonFrame builds the raised frame: an offset ring around the
// opening, extruded well past the wall, clipped to an outward offset
// of the outer profile and to the outside of the cavity. The outward
// edge rounding is best effort; a sharp-edged frame with a recorded
// warning is the fallback.
func (e *engine) buttonFrame(b TaperButton, fr FaceFrame) (placed, error) {
	innerW := b.Width + b.OpeningClearance + 2*b.FrameGap
	innerH := b.Height + b.OpeningClearance + 2*b.FrameGap
	innerRound := b.CornerRound + b.OpeningClearance/2 + b.FrameGap
	outerW := innerW + 2*b.FrameWidth
	outerH := innerH + 2*b.FrameWidth

	ring2 := sdf.Difference2D(
		form2.Box(r2.Vec{X: outerW, Y: outerH}, innerRound+b.FrameWidth),
		form2.Box(r2.Vec{X: innerW, Y: innerH}, innerRound),
	)

	// Deep slab: reaches past the chamfer faces on both sides of the
	// long face; the clips below trim it to the shell.
	slab := b.FrameHeight + e.body.Width/2
	round := math.Min(b.FrameHeight, b.FrameWidth) * 0.3
	frame3 := sdf.ExtrudeRounded3D(sdf.Offset2D(ring2, -round), slab, round)
	if solidEmpty(frame3) {
		e.warnf(b.Name, "frame rounding", "radius %v rejected, frame left sharp-edged", round)
		frame3 = sdf.Extrude3D(ring2, slab)
	}

	center := r3.Add(e.surfacePoint(fr, b.U, b.V),
		r3.Scale(b.FrameHeight-slab/2, fr.Normal))
	solid := fr.orientTo(frame3, center)

	// Conform to the shell: nothing past an outward offset of the
	// outer profile, nothing inside the cavity.
	limit := sdf.Extrude3D(sdf.Offset2D(e.body.Outer, b.FrameHeight), e.body.Height)
	limit = sdf.Transform3D(limit, sdf.Translate3D(r3.Vec{Z: e.body.Height / 2}))
	solid = sdf.Difference3D(sdf.Intersect3D(solid, limit), e.body.Cavity)

	return placed{
		name:     b.Name + "-frame",
		feature:  b,
		op:       opAdd,
		solid:    solid,
		protrude: b.FrameHeight,
	}, nil
}
