package octocase

import "gonum.org/v1/gonum/spatial/r2"

// Stock feature dimensions of the handheld device, in millimeters.
// Positions are face-relative; the faces themselves come from the
// frame registry.
const (
	ledDiameter = 3
	ledSpacing  = 8
	ledFromTop  = 10

	grilleHoleDiameter = 1.5
	grilleSpacing      = 2.5

	micFromBottom      = 10
	micAcousticHole    = 1.5
	micReliefBore      = 1.0
	micPocketDepth     = 2
	micClearanceRadius = 2
	micFootprintTol    = 0.4

	powerFromBottom   = 25
	powerDiameter     = 8
	powerRingGap      = 1
	powerRingWidth    = 1
	powerRingHeight   = 1
	usbFromBottom     = 12
	usbWidth          = 9.5
	usbHeight         = 3.7
	usbCornerRadius   = 1.6
	usbEffectiveWall  = 1.6
	buttonBaseDepth   = 4
	buttonBevelDepth  = 4
	buttonTaperDeg    = 45
	buttonCornerRound = 8
	buttonClearance   = 0.5
	frameGap          = 0.25
	frameWidth        = 2
	frameHeight       = 2

	postHeight   = 4
	postDiameter = 5
	postBore     = 1.8
	postBoreDep  = 3
)

// InteriorFlat is the flat-to-flat distance of the hollow interior.
func (p Params) InteriorFlat() float64 { return p.Width - 2*p.Wall }

// micFootprint is the INMP441 breakout outline.
var micFootprint = r2.Vec{X: 4.72, Y: 3.76}

// DefaultFeatures declares the stock device layout: LEDs, speaker
// grille and microphone on the front; power button, USB-C port and the
// push-to-talk button on the right; two board mounting posts inside
// the back wall.
func DefaultFeatures(p Params, pr *Profile) []Feature {
	long := pr.LongEdge()
	grilleRadius := 0.8 * long / 2
	ledV := p.Height - ledFromTop
	// Grille center sits one grille diameter plus 10 mm below the LEDs.
	grilleV := ledV - 10 - 2*grilleRadius

	feats := []Feature{
		GrilleBatch{
			FeatureMeta:  FeatureMeta{Name: "grille", Face: FaceFront, V: AtMM(grilleV)},
			Radius:       grilleRadius,
			HoleDiameter: grilleHoleDiameter,
			Spacing:      grilleSpacing,
		},
		AcousticMount{
			FeatureMeta:        FeatureMeta{Name: "mic", Face: FaceFront, V: AtMM(micFromBottom)},
			Footprint:          micFootprint,
			FootprintClearance: micFootprintTol,
			PocketDepth:        micPocketDepth,
			HoleDiameter:       micAcousticHole,
			ReliefDiameter:     micReliefBore,
			KeepOutRadius:      micClearanceRadius,
		},
		Hole{
			FeatureMeta: FeatureMeta{Name: "power", Face: FaceRight, V: AtMM(powerFromBottom), Tol: TolClearance},
			Diameter:    powerDiameter,
		},
		Ring{
			FeatureMeta:   FeatureMeta{Name: "power-ring", Face: FaceRight, V: AtMM(powerFromBottom)},
			InnerDiameter: powerDiameter + 2*powerRingGap,
			Width:         powerRingWidth,
			Height:        powerRingHeight,
		},
		Stadium{
			FeatureMeta: FeatureMeta{Name: "usb", Face: FaceRight, V: AtMM(usbFromBottom), Tol: TolClearance},
			Size:        r2.Vec{X: usbWidth, Y: usbHeight},
			Round:       usbCornerRadius,
		},
		TaperButton{
			FeatureMeta:      FeatureMeta{Name: "talk-button", Face: FaceRight, V: AtFrac(0.70)},
			Width:            long,
			Height:           0.30 * p.Height,
			BaseDepth:        buttonBaseDepth,
			BevelDepth:       buttonBevelDepth,
			TaperDeg:         buttonTaperDeg,
			CornerRound:      buttonCornerRound,
			OpeningClearance: buttonClearance,
			FrameGap:         frameGap,
			FrameWidth:       frameWidth,
			FrameHeight:      frameHeight,
		},
	}
	for i, u := range []float64{-ledSpacing, 0, ledSpacing} {
		feats = append(feats, Hole{
			FeatureMeta: FeatureMeta{
				Name: featName("led", i), Face: FaceFront,
				U: u, V: AtMM(ledV), Tol: TolClearance,
			},
			Diameter: ledDiameter,
		})
	}
	// USB-C needs a thinner wall than the bulk shell provides: declare
	// a thinned region behind the port.
	if p.Wall > usbEffectiveWall {
		feats = append(feats, Pocket{
			FeatureMeta: FeatureMeta{Name: "usb-thin", Face: FaceRight, V: AtMM(usbFromBottom)},
			Size:        r2.Vec{X: usbWidth + 2.5, Y: usbHeight + 3.3},
			Round:       1,
			Depth:       p.Wall - usbEffectiveWall,
			IntoWall:    true,
		})
	}
	for i, u := range []float64{-8, 8} {
		feats = append(feats, Boss{
			FeatureMeta: FeatureMeta{Name: featName("post", i), Face: FaceBack, U: u, V: AtMM(80)},
			Height:       postHeight,
			Diameter:     postDiameter,
			BoreDiameter: postBore,
			BoreDepth:    postBoreDep,
		})
	}
	return feats
}

// Build runs the whole pipeline for one parameter table: profile,
// hollow shell, stock feature set, composition. The run either yields
// a complete assembly (possibly with warnings) or no output and a
// specific error; a partially cut solid is never returned.
func Build(p Params) (*Assembly, error) {
	pr, err := buildProfile(p)
	if err != nil {
		return nil, err
	}
	return BuildWith(p, pr, DefaultFeatures(p, pr))
}

// BuildWith runs the pipeline with a caller-supplied feature set.
func BuildWith(p Params, pr *Profile, features []Feature) (*Assembly, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	body, warns, err := BuildShell(pr, p)
	if err != nil {
		return nil, err
	}
	frames := NewFrames(body.Bounds())
	asm, err := NewCompositor(body, frames, p, pr).Apply(features)
	if err != nil {
		return nil, err
	}
	asm.Warnings = append(warns, asm.Warnings...)
	return asm, nil
}

func buildProfile(p Params) (*Profile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return NewProfile(p.Width, p.Ratio, p.CornerRound)
}
