package octocase

import (
	"fmt"

	"github.com/soypat/sdf"
	form2 "github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// featureMargin is how far a cutting solid overshoots both wall
// surfaces. Under-extrusion that leaves a membrane inside a hole is a
// known failure mode; the margin makes it impossible regardless of
// floating point slack.
const featureMargin = 1.0

// interiorSetback is how far an interior recess starts behind the
// inner wall surface.
const interiorSetback = 1.0

// VPos is a vertical position on a side face: a fraction of the total
// height plus a millimeter offset, measured from the bottom. The
// placement engine normalizes it to millimeters before any geometry is
// built.
type VPos struct {
	Frac float64
	MM   float64
}

// AtMM positions at an absolute offset from the bottom.
func AtMM(mm float64) VPos { return VPos{MM: mm} }

// AtFrac positions at a fraction of the enclosure height.
func AtFrac(f float64) VPos { return VPos{Frac: f} }

// Plus shifts the position by a millimeter delta.
func (v VPos) Plus(mm float64) VPos {
	v.MM += mm
	return v
}

func (v VPos) resolve(height float64) float64 {
	return v.Frac*height + v.MM
}

// FeatureMeta is the placement data shared by every feature variant:
// which face, where on that face, and the tolerance class.
type FeatureMeta struct {
	Name string
	Face FaceID
	U    float64 // horizontal offset from the face center
	V    VPos    // vertical position
	Tol  Tolerance
}

// Meta returns the shared placement data.
func (m FeatureMeta) Meta() FeatureMeta { return m }

func (FeatureMeta) feature() {}

// Feature describes one cutout or addition declaratively. Features are
// data: building one has no side effects, and the same feature placed
// twice yields identical solids. The variant set is closed; every
// variant embeds FeatureMeta and is consumed by the one placement
// engine.
type Feature interface {
	Meta() FeatureMeta
	feature()
}

// Hole is a circular cut through the full wall.
type Hole struct {
	FeatureMeta
	Diameter float64
}

// Pocket is a rectangular recess. With IntoWall set it removes wall
// material from the interior side, locally thinning the wall by Depth
// (a declared thinned region). Otherwise it is carved into the
// interior starting behind the inner surface.
type Pocket struct {
	FeatureMeta
	Size     r2.Vec
	Round    float64
	Depth    float64
	IntoWall bool
}

// Stadium is a rounded-rectangle cut through the full wall, the shape
// of a USB-C opening.
type Stadium struct {
	FeatureMeta
	Size  r2.Vec
	Round float64
}

type op uint8

const (
	opCut op = iota
	opAdd
)

// placed is one feature solid ready for composition.
type placed struct {
	name    string
	feature Feature
	op      op
	solid   sdf.SDF3
	// protrude is the declared intentional extent past the outer wall
	// (raised rings, frames). Zero for cuts.
	protrude float64
	// keepOutR > 0 demands a disk of that radius around keepOutAt be
	// free of every other feature.
	keepOutR  float64
	keepOutAt r3.Vec
	// detached is a separately manufactured solid (the button body);
	// it is reported, not composed into the main body.
	detached sdf.SDF3
}

// engine converts feature specs into placed solids. All math happens
// in the 2D face frame; only the finished solid is transformed into
// the global frame.
type engine struct {
	body   Body
	frames Frames
	params Params
	warns  []Warning
}

func newEngine(body Body, frames Frames, p Params) *engine {
	return &engine{body: body, frames: frames, params: p}
}

func (e *engine) warnf(feature, op, format string, args ...interface{}) {
	e.warns = append(e.warns, warnf(feature, op, format, args...))
}

// place builds the solid(s) for one feature.
func (e *engine) place(f Feature) ([]placed, error) {
	meta := f.Meta()
	fr, err := e.frames.Frame(meta.Face)
	if err != nil {
		return nil, err
	}
	switch f := f.(type) {
	case Hole:
		return e.placeHole(f, fr)
	case Pocket:
		return e.placePocket(f, fr)
	case Stadium:
		return e.placeStadium(f, fr)
	case GrilleBatch:
		return e.placeGrille(f)
	case Boss:
		return e.placeBoss(f, fr)
	case Ring:
		return e.placeRing(f, fr)
	case TaperButton:
		return e.placeButton(f, fr)
	case AcousticMount:
		return e.placeAcoustic(f, fr)
	}
	return nil, paramErrf("feature %q: unknown variant %T", meta.Name, f)
}

func (e *engine) placeHole(h Hole, fr FaceFrame) ([]placed, error) {
	d := h.Diameter + e.params.holeOffset(h.Tol)
	if d <= 0 {
		return nil, paramErrf("hole %q: diameter %v", h.Name, h.Diameter)
	}
	return []placed{{
		name:    h.Name,
		feature: h,
		op:      opCut,
		solid:   e.throughCutter(fr, form2.Circle(d/2), h.U, h.V),
	}}, nil
}

func (e *engine) placeStadium(s Stadium, fr FaceFrame) ([]placed, error) {
	if s.Size.X <= 0 || s.Size.Y <= 0 {
		return nil, paramErrf("stadium %q: size %v", s.Name, s.Size)
	}
	off := e.params.holeOffset(s.Tol)
	size := r2.Vec{X: s.Size.X + off, Y: s.Size.Y + off}
	return []placed{{
		name:    s.Name,
		feature: s,
		op:      opCut,
		solid:   e.throughCutter(fr, form2.Box(size, s.Round+off/2), s.U, s.V),
	}}, nil
}

func (e *engine) placePocket(p Pocket, fr FaceFrame) ([]placed, error) {
	if p.Size.X <= 0 || p.Size.Y <= 0 || p.Depth <= 0 {
		return nil, paramErrf("pocket %q: size %v depth %v", p.Name, p.Size, p.Depth)
	}
	wall := e.body.Wall
	var along, depth float64
	if p.IntoWall {
		if p.Depth >= wall {
			return nil, geomErrf("pocket %q: thinning depth %v breaches the %v wall",
				p.Name, p.Depth, wall)
		}
		// Span the wall's interior side plus margin into the cavity.
		depth = p.Depth + featureMargin
		along = wall + (featureMargin-p.Depth)/2
	} else {
		depth = p.Depth
		along = wall + interiorSetback + p.Depth/2
	}
	shape := form2.Box(p.Size, p.Round)
	s := sdf.Extrude3D(shape, depth)
	v := p.V.resolve(e.frames.Height())
	center := r3.Add(fr.point(p.U, v), r3.Scale(-along, fr.Normal))
	return []placed{{
		name:    p.Name,
		feature: p,
		op:      opCut,
		solid:   fr.orientTo(s, center),
	}}, nil
}

// throughCutter extrudes a face-local 2D shape across the full wall
// with margin on both sides.
func (e *engine) throughCutter(fr FaceFrame, shape sdf.SDF2, u float64, v VPos) sdf.SDF3 {
	depth := e.body.Wall + 2*featureMargin
	s := sdf.Extrude3D(shape, depth)
	vv := v.resolve(e.frames.Height())
	center := r3.Add(fr.point(u, vv), r3.Scale(-e.body.Wall/2, fr.Normal))
	return fr.orientTo(s, center)
}

// surfacePoint is the point on the outer wall at face coordinates
// (u, v).
func (e *engine) surfacePoint(fr FaceFrame, u float64, v VPos) r3.Vec {
	return fr.point(u, v.resolve(e.frames.Height()))
}

func featName(base string, i int) string {
	return fmt.Sprintf("%s-%d", base, i)
}
