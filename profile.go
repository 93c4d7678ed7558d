package octocase

import (
	"math"

	"github.com/soypat/sdf"
	form2 "github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// profileSmoothFacets is the arc facet count used when smoothing the
// profile's corners.
const profileSmoothFacets = 6

// EdgeClass tags one edge of the cross-section profile.
type EdgeClass uint8

const (
	// EdgeLong is one of the four flat faces of the octagon.
	EdgeLong EdgeClass = iota
	// EdgeShort is one of the four 45-degree chamfer faces.
	EdgeShort
)

// Profile is the closed octagonal cross-section of the enclosure.
// It is built once per run from width and edge ratio and never
// mutated afterwards.
//
// The octagon is a square of side Width with its corners chamfered at
// 45 degrees. From Width = L + 2c and L/S = ratio with S = c*sqrt(2)
// the chamfer distance has the closed form
//
//	c = Width / (2 + ratio*sqrt(2))
//
// which for the stock 7:3 ratio gives c ~ Width/5.3.
type Profile struct {
	verts   []r2.Vec    // 8 vertices, counterclockwise
	edges   []EdgeClass // edges[i] joins verts[i] and verts[i+1]
	width   float64
	chamfer float64
	round   float64
}

// NewProfile derives the octagon from the flat-to-flat width and the
// long:short edge ratio. round smooths the corners at profile level;
// the smoothing is cosmetic and may be dropped with a warning when the
// kernel rejects the radius, but a degenerate octagon is fatal.
func NewProfile(width, ratio, round float64) (*Profile, error) {
	if ratio <= 0 {
		return nil, paramErrf("profile ratio = %v, must be positive", ratio)
	}
	if round < 0 {
		return nil, paramErrf("profile corner round = %v, must not be negative", round)
	}
	c := width / (2 + ratio*math.Sqrt2)
	if c <= 0 || c >= width/2 {
		return nil, geomErrf("chamfer %v for width %v yields a degenerate octagon", c, width)
	}
	h := width / 2
	k := h - c
	p := &Profile{
		width:   width,
		chamfer: c,
		round:   round,
		// Counterclockwise from the bottom of the right face. Long and
		// short edges alternate, starting with the right long face.
		verts: []r2.Vec{
			{X: h, Y: -k},
			{X: h, Y: k},
			{X: k, Y: h},
			{X: -k, Y: h},
			{X: -h, Y: k},
			{X: -h, Y: -k},
			{X: -k, Y: -h},
			{X: k, Y: -h},
		},
		edges: []EdgeClass{
			EdgeLong, EdgeShort, EdgeLong, EdgeShort,
			EdgeLong, EdgeShort, EdgeLong, EdgeShort,
		},
	}
	return p, nil
}

// Width returns the flat-to-flat distance across opposite long faces.
func (p *Profile) Width() float64 { return p.width }

// Chamfer returns the 45-degree corner cut distance.
func (p *Profile) Chamfer() float64 { return p.chamfer }

// LongEdge returns the length of a long (flat face) edge.
func (p *Profile) LongEdge() float64 { return p.width - 2*p.chamfer }

// ShortEdge returns the length of a short (chamfer) edge.
func (p *Profile) ShortEdge() float64 { return p.chamfer * math.Sqrt2 }

// Vertices returns a copy of the eight profile vertices in
// counterclockwise order.
func (p *Profile) Vertices() []r2.Vec {
	v := make([]r2.Vec, len(p.verts))
	copy(v, p.verts)
	return v
}

// EdgeClasses returns a copy of the per-edge tags. Edge i joins
// vertices i and (i+1) mod 8.
func (p *Profile) EdgeClasses() []EdgeClass {
	e := make([]EdgeClass, len(p.edges))
	copy(e, p.edges)
	return e
}

// SDF builds the 2D distance field of the profile. Corner smoothing is
// best effort: when the polygon builder rejects the radius the plain
// octagon is returned alongside a warning.
func (p *Profile) SDF() (sdf.SDF2, []Warning) {
	if p.round > 0 {
		s, err := p.smoothedSDF()
		if err == nil {
			return s, nil
		}
		return form2.Polygon(p.Vertices()), []Warning{
			warnf("profile", "corner smoothing", "radius %v rejected: %v", p.round, err),
		}
	}
	return form2.Polygon(p.Vertices()), nil
}

func (p *Profile) smoothedSDF() (s sdf.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			s, err = nil, geomErrf("polygon smoothing: %v", a)
		}
	}()
	b := form2.NewPolygon()
	for _, v := range p.verts {
		b.AddV2(v).Smooth(p.round, profileSmoothFacets)
	}
	return form2.Polygon(b.Vertices()), nil
}
