package octocase

// Unit is the unit of a named parameter.
type Unit uint8

const (
	Millimeter Unit = iota
	Degree
	Unitless
)

func (u Unit) String() string {
	switch u {
	case Millimeter:
		return "mm"
	case Degree:
		return "deg"
	}
	return ""
}

// Param is one named value of the parameter table.
type Param struct {
	Value float64
	Unit  Unit
}

// Params is the parameter table for one generation run. It is treated
// as immutable once handed to Build: every builder takes it by value
// and no stage writes it back.
type Params struct {
	// Width is the flat-to-flat distance across opposite long faces.
	Width float64
	// Height is the extrusion length of the prism.
	Height float64
	// Wall is the bulk wall thickness. Declared thinned regions may
	// locally reduce it.
	Wall float64
	// Ratio is the long:short edge ratio of the octagon profile.
	Ratio float64
	// CornerRound smooths the profile's eight corners before
	// extrusion. Zero disables smoothing.
	CornerRound float64
	// EdgeRound rounds the top and bottom outer edges. Applied to the
	// outer solid before hollowing. Zero disables rounding.
	EdgeRound float64

	// ClearanceOffset widens holes of tolerance class clearance.
	ClearanceOffset float64
	// PressFitOffset narrows bosses of tolerance class press-fit.
	PressFitOffset float64
}

// DefaultParams returns the stock device dimensions: a 40 mm
// flat-to-flat, 150 mm tall octagon with a 7:3 long:short edge ratio
// and 2.5 mm walls.
func DefaultParams() Params {
	return Params{
		Width:           40,
		Height:          150,
		Wall:            2.5,
		Ratio:           7.0 / 3.0,
		CornerRound:     4,
		EdgeRound:       4,
		ClearanceOffset: 0.2,
		PressFitOffset:  0.1,
	}
}

// Table flattens the parameter set to its named, unit-tagged form for
// boundary consumers (documentation, report generators).
func (p Params) Table() map[string]Param {
	return map[string]Param{
		"width":            {p.Width, Millimeter},
		"height":           {p.Height, Millimeter},
		"wall":             {p.Wall, Millimeter},
		"ratio":            {p.Ratio, Unitless},
		"corner_round":     {p.CornerRound, Millimeter},
		"edge_round":       {p.EdgeRound, Millimeter},
		"clearance_offset": {p.ClearanceOffset, Millimeter},
		"press_fit_offset": {p.PressFitOffset, Millimeter},
	}
}

// Validate rejects malformed parameter tables before any geometry work
// begins. Lengths must be positive, offsets non-negative.
func (p Params) Validate() error {
	lengths := []struct {
		name string
		v    float64
	}{
		{"width", p.Width},
		{"height", p.Height},
		{"wall", p.Wall},
	}
	for _, l := range lengths {
		if l.v <= 0 {
			return paramErrf("%s = %v, must be positive", l.name, l.v)
		}
	}
	if p.Ratio <= 0 {
		return paramErrf("ratio = %v, must be positive", p.Ratio)
	}
	if p.CornerRound < 0 || p.EdgeRound < 0 {
		return paramErrf("rounding radii must not be negative")
	}
	if p.ClearanceOffset < 0 || p.PressFitOffset < 0 {
		return paramErrf("tolerance offsets must not be negative")
	}
	if p.Wall >= p.Width/2 {
		return paramErrf("wall %v leaves no interior for width %v", p.Wall, p.Width)
	}
	return nil
}

// Tolerance is the dimensional policy applied to a mating feature
// before its geometry is generated.
type Tolerance uint8

const (
	// TolNone generates the feature at nominal size.
	TolNone Tolerance = iota
	// TolClearance widens a hole so the mating part moves freely.
	TolClearance
	// TolPressFit narrows a boss so it presses into a receiving hole.
	TolPressFit
)

func (t Tolerance) String() string {
	switch t {
	case TolClearance:
		return "clearance"
	case TolPressFit:
		return "press-fit"
	}
	return "none"
}

// holeOffset is the diameter delta for a cut of tolerance class t.
func (p Params) holeOffset(t Tolerance) float64 {
	if t == TolClearance {
		return p.ClearanceOffset
	}
	return 0
}

// bossOffset is the diameter delta for an added post of tolerance
// class t. Press-fit narrows.
func (p Params) bossOffset(t Tolerance) float64 {
	if t == TolPressFit {
		return -p.PressFitOffset
	}
	return 0
}
