package octocase

import (
	"math"

	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// FaceID names one face of the enclosure. The identifiers are stable:
// external tooling may key on them.
type FaceID uint8

const (
	FaceFront FaceID = iota
	FaceRight
	FaceBack
	FaceLeft
	FaceTop
	FaceBottom
	numFaces
)

func (f FaceID) String() string {
	switch f {
	case FaceFront:
		return "front"
	case FaceRight:
		return "right"
	case FaceBack:
		return "back"
	case FaceLeft:
		return "left"
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	}
	return "unknown"
}

// FaceFrame is a local 2D coordinate system embedded on one face:
// an origin on the face surface, in-plane axes U (horizontal) and V
// (vertical), and the outward normal. Frames are derived from the
// shell's bounding geometry and never independently mutated.
type FaceFrame struct {
	Face   FaceID
	Origin r3.Vec
	U      r3.Vec // in-plane horizontal axis, U = up x Normal on side faces
	V      r3.Vec // in-plane vertical axis
	Normal r3.Vec // outward, away from the interior

	// yaw rotates a locally built solid's extrusion axis onto the
	// face normal; side reports whether that rotation is needed at
	// all (top/bottom extrude along z already).
	yaw  float64
	side bool
}

// point maps face coordinates (u, v) to the global frame. On side
// faces v is measured up from the bottom of the enclosure.
func (f FaceFrame) point(u, v float64) r3.Vec {
	p := r3.Add(f.Origin, r3.Scale(u, f.U))
	return r3.Add(p, r3.Scale(v, f.V))
}

// Frames is the face frame registry: exactly one frame per named face.
// The front face looks along +Y and the face 90 degrees clockwise from
// it (viewed along -Z) is the right face, along +X.
type Frames struct {
	width  float64
	height float64
	frames [numFaces]FaceFrame
}

// NewFrames derives the registry from the shell's bounding box.
func NewFrames(bb r3.Box) Frames {
	w := bb.Max.X - bb.Min.X
	h := bb.Max.Z - bb.Min.Z
	half := w / 2
	up := r3.Vec{Z: 1}

	fr := Frames{width: w, height: h}
	side := func(id FaceID, n r3.Vec, yaw float64) FaceFrame {
		return FaceFrame{
			Face:   id,
			Origin: r3.Vec{X: half * n.X, Y: half * n.Y, Z: bb.Min.Z},
			U:      r3.Cross(up, n),
			V:      up,
			Normal: n,
			yaw:    yaw,
			side:   true,
		}
	}
	fr.frames[FaceFront] = side(FaceFront, r3.Vec{Y: 1}, math.Pi)
	fr.frames[FaceRight] = side(FaceRight, r3.Vec{X: 1}, math.Pi/2)
	fr.frames[FaceBack] = side(FaceBack, r3.Vec{Y: -1}, 0)
	fr.frames[FaceLeft] = side(FaceLeft, r3.Vec{X: -1}, -math.Pi/2)
	fr.frames[FaceTop] = FaceFrame{
		Face:   FaceTop,
		Origin: r3.Vec{Z: bb.Max.Z},
		U:      r3.Vec{X: 1},
		V:      r3.Vec{Y: 1},
		Normal: r3.Vec{Z: 1},
	}
	fr.frames[FaceBottom] = FaceFrame{
		Face:   FaceBottom,
		Origin: r3.Vec{Z: bb.Min.Z},
		U:      r3.Vec{X: 1},
		V:      r3.Vec{Y: -1},
		Normal: r3.Vec{Z: -1},
	}
	return fr
}

// Frame returns the frame of a named face.
func (f Frames) Frame(id FaceID) (FaceFrame, error) {
	if id >= numFaces {
		return FaceFrame{}, paramErrf("unknown face %d", id)
	}
	return f.frames[id], nil
}

// Height is the enclosure height the registry was derived from, used
// to resolve fractional vertical positions.
func (f Frames) Height() float64 { return f.height }

// Width is the flat-to-flat width the registry was derived from.
func (f Frames) Width() float64 { return f.width }

// orientTo places a locally built solid (extruded along its local z
// axis, local y up) onto the face: local z ends up along the face
// normal, local y along the face's vertical axis.
func (f FaceFrame) orientTo(s sdf.SDF3, center r3.Vec) sdf.SDF3 {
	m := sdf.Translate3D(center)
	if f.side {
		m = m.Mul(sdf.RotateZ(f.yaw)).Mul(sdf.RotateX(math.Pi / 2))
	}
	return sdf.Transform3D(s, m)
}

// axisSign is the sign of the local z axis projected on the outward
// normal after orientation. Only the bottom face flips it.
func (f FaceFrame) axisSign() float64 {
	if f.Face == FaceBottom {
		return -1
	}
	return 1
}
