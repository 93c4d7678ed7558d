package octocase

import (
	"math"

	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// containSlack relaxes the containment check by the margin cut solids
// legitimately overshoot the wall.
const containSlack = featureMargin + 0.5

// Stage is one intermediate body state of a composition run, kept so
// a failed or surprising build can be bisected feature by feature.
type Stage struct {
	Feature string
	Solid   sdf.SDF3
}

// Assembly is the final named solid set for one parameter table,
// immutable once produced. It is the unit handed to the export
// boundary; each solid is closed and non-self-intersecting by
// construction of the distance field.
type Assembly struct {
	// Enclosure is the main printed body.
	Enclosure sdf.SDF3
	// Button is the detachable push-to-talk button, printed
	// separately. Nil when no taper button was declared.
	Button sdf.SDF3
	// Profile is the cross-section the body was built from.
	Profile *Profile
	// Warnings lists every cosmetic operation that degraded.
	Warnings []Warning

	stages []Stage
}

// History returns the intermediate body states in application order.
func (a *Assembly) History() []Stage {
	s := make([]Stage, len(a.stages))
	copy(s, a.stages)
	return s
}

// Compositor applies feature specs to a body in a fixed order: every
// subtractive solid first, then every additive solid, so added
// geometry is never re-cut by a subtraction meant for the plain shell.
// Cosmetic degradations surface as warnings; structural problems abort
// with the offending feature attached.
type Compositor struct {
	body    Body
	frames  Frames
	params  Params
	profile *Profile
}

// NewCompositor prepares a composition run over a hollowed body.
func NewCompositor(body Body, frames Frames, p Params, pr *Profile) *Compositor {
	return &Compositor{body: body, frames: frames, params: p, profile: pr}
}

// Apply places and composes all features, runs the cross-feature
// checks, and returns the finished assembly.
func (c *Compositor) Apply(features []Feature) (*Assembly, error) {
	eng := newEngine(c.body, c.frames, c.params)

	var cuts, adds []placed
	var detached []placed
	for _, f := range features {
		ps, err := eng.place(f)
		if err != nil {
			return nil, err
		}
		for _, p := range ps {
			if err := c.checkPlaced(p); err != nil {
				return nil, err
			}
			if p.detached != nil {
				detached = append(detached, p)
			}
			switch p.op {
			case opCut:
				cuts = append(cuts, p)
			case opAdd:
				adds = append(adds, p)
			}
		}
	}
	if len(detached) > 1 {
		return nil, &CompositionError{
			Feature: detached[1].name, Op: "detach",
			Detail: "more than one detachable part declared",
		}
	}

	body := c.body
	stages := make([]Stage, 0, len(cuts)+len(adds))
	for _, p := range cuts {
		body = body.withSolid(sdf.Difference3D(body.Solid, p.solid))
		stages = append(stages, Stage{Feature: p.name, Solid: body.Solid})
	}
	for _, p := range adds {
		body = body.withSolid(sdf.Union3D(body.Solid, p.solid))
		stages = append(stages, Stage{Feature: p.name, Solid: body.Solid})
	}

	all := append(append([]placed{}, cuts...), adds...)
	if err := c.checkKeepOut(all); err != nil {
		return nil, err
	}

	asm := &Assembly{
		Enclosure: body.Solid,
		Profile:   c.profile,
		Warnings:  eng.warns,
		stages:    stages,
	}
	if len(detached) == 1 {
		asm.Button = detached[0].detached
	}
	return asm, nil
}

// checkPlaced rejects structurally unusable feature solids before any
// boolean runs: empty solids, and solids whose extent falls outside
// the body (allowing the cut margin and any declared protrusion).
func (c *Compositor) checkPlaced(p placed) error {
	if solidEmpty(p.solid) {
		return &CompositionError{Feature: p.name, Op: "place", Detail: "empty solid"}
	}
	bodyBB := c.body.Bounds()
	fbb := p.solid.Bounds()
	slack := containSlack + p.protrude
	switch {
	case fbb.Min.X < bodyBB.Min.X-slack || fbb.Max.X > bodyBB.Max.X+slack,
		fbb.Min.Y < bodyBB.Min.Y-slack || fbb.Max.Y > bodyBB.Max.Y+slack,
		fbb.Min.Z < bodyBB.Min.Z-slack || fbb.Max.Z > bodyBB.Max.Z+slack:
		return &CompositionError{
			Feature: p.name, Op: "contain",
			Detail: "feature extent exceeds the enclosure bounds",
		}
	}
	if !boxesIntersect(fbb, bodyBB) {
		return &CompositionError{
			Feature: p.name, Op: "contain",
			Detail: "feature does not reach the enclosure",
		}
	}
	return nil
}

// checkKeepOut enforces every declared obstruction-free disk: no other
// feature's solid may reach into it. Sampled on the disk center and
// two concentric rings; the sample spacing is far below any feature
// dimension in use.
func (c *Compositor) checkKeepOut(all []placed) error {
	for _, k := range all {
		if k.keepOutR <= 0 {
			continue
		}
		fr, err := c.frames.Frame(k.feature.Meta().Face)
		if err != nil {
			return err
		}
		pts := diskSamples(k.keepOutAt, fr.U, fr.V, k.keepOutR)
		for _, other := range all {
			if other.feature == k.feature {
				continue
			}
			for _, pt := range pts {
				if other.solid.Evaluate(pt) < -1e-6 {
					return &CompositionError{
						Feature: other.name, Op: "keep-out",
						Detail: "obstructs the acoustic clearance disk of " + k.name,
					}
				}
			}
		}
	}
	return nil
}

// diskSamples covers a disk with its center and two rings of eight
// points each.
func diskSamples(center, u, v r3.Vec, radius float64) []r3.Vec {
	pts := []r3.Vec{center}
	for _, r := range []float64{radius / 2, radius} {
		for i := 0; i < 8; i++ {
			a := 2 * math.Pi * float64(i) / 8
			p := r3.Add(center, r3.Scale(r*math.Cos(a), u))
			p = r3.Add(p, r3.Scale(r*math.Sin(a), v))
			pts = append(pts, p)
		}
	}
	return pts
}

func boxesIntersect(a, b r3.Box) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}
