package octocase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func testButton(pr *Profile, p Params) TaperButton {
	return TaperButton{
		FeatureMeta:      FeatureMeta{Name: "talk", Face: FaceRight, V: AtFrac(0.70)},
		Width:            pr.LongEdge(),
		Height:           0.30 * p.Height,
		BaseDepth:        4,
		BevelDepth:       4,
		TaperDeg:         45,
		CornerRound:      8,
		OpeningClearance: 0.5,
		FrameGap:         0.25,
		FrameWidth:       2,
		FrameHeight:      2,
	}
}

func TestButtonAssembly(t *testing.T) {
	p := DefaultParams()
	pr, err := NewProfile(p.Width, p.Ratio, p.CornerRound)
	require.NoError(t, err)
	asm, err := BuildWith(p, pr, []Feature{testButton(pr, p)})
	require.NoError(t, err)
	require.NotNil(t, asm.Button)

	// Opening cut through the wall at the button center.
	assert.Positive(t, asm.Enclosure.Evaluate(r3.Vec{X: 18.75, Z: 105}))
	// Wall intact above the frame.
	assert.Negative(t, asm.Enclosure.Evaluate(r3.Vec{X: 19.9, Z: 140}))
}

func TestButtonBodyTaper(t *testing.T) {
	p := DefaultParams()
	pr, err := NewProfile(p.Width, p.Ratio, p.CornerRound)
	require.NoError(t, err)
	asm, err := BuildWith(p, pr, []Feature{testButton(pr, p)})
	require.NoError(t, err)
	b := asm.Button
	require.NotNil(t, b)

	// Base flush with the wall, crown 8 mm proud of it.
	bb := b.Bounds()
	assert.InDelta(t, 28, bb.Max.X, 1e-6)

	// Straight base keeps the full footprint; the crown tapers in.
	halfH := 0.15 * p.Height // 22.5
	assert.Negative(t, b.Evaluate(r3.Vec{X: 20.5, Z: 105 + halfH - 3}))
	assert.Negative(t, b.Evaluate(r3.Vec{X: 27.5, Z: 105}))
	assert.Positive(t, b.Evaluate(r3.Vec{X: 27.5, Z: 105 + halfH - 3}))
}

func TestButtonFrameWrapsOpening(t *testing.T) {
	p := DefaultParams()
	pr, err := NewProfile(p.Width, p.Ratio, p.CornerRound)
	require.NoError(t, err)
	asm, err := BuildWith(p, pr, []Feature{testButton(pr, p)})
	require.NoError(t, err)

	// Raised frame bar above the opening: material 1 mm off the wall,
	// air past the 2 mm frame height.
	assert.Negative(t, asm.Enclosure.Evaluate(r3.Vec{X: 21, Z: 129}))
	assert.Positive(t, asm.Enclosure.Evaluate(r3.Vec{X: 22.5, Z: 129}))
	// The frame never leaks into the cavity.
	assert.Positive(t, asm.Enclosure.Evaluate(r3.Vec{X: 15, Z: 129}))
}

func TestButtonTaperConsumesFootprint(t *testing.T) {
	p := DefaultParams()
	pr, err := NewProfile(p.Width, p.Ratio, p.CornerRound)
	require.NoError(t, err)

	b := testButton(pr, p)
	b.Width = 10
	b.BevelDepth = 6 // 45 degrees over 6 mm eats the whole footprint
	_, err = BuildWith(p, pr, []Feature{b})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestButtonValidation(t *testing.T) {
	p := DefaultParams()
	pr, err := NewProfile(p.Width, p.Ratio, p.CornerRound)
	require.NoError(t, err)
	body := buildTestShell(t, p)
	eng := newEngine(body, NewFrames(body.Bounds()), p)

	b := testButton(pr, p)
	b.TaperDeg = 95
	_, err = eng.place(b)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	b = testButton(pr, p)
	b.FrameWidth = 0
	_, err = eng.place(b)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestSingleDetachedPart(t *testing.T) {
	p := DefaultParams()
	pr, err := NewProfile(p.Width, p.Ratio, p.CornerRound)
	require.NoError(t, err)

	a := testButton(pr, p)
	b := testButton(pr, p)
	b.Name = "talk-2"
	b.Face = FaceLeft
	_, err = BuildWith(p, pr, []Feature{a, b})
	var cerr *CompositionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "detach", cerr.Op)
}
