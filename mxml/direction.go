package mxml

// Direction is a positioned non-note event: dynamics, wedges, tempo
// marks, free text, segno/coda. It attaches at the current point of the
// time cursor but never advances it. Offset shifts the attachment point
// in divisions without moving the cursor.
type Direction struct {
	Placement AboveBelow // "" = unspecified
	Types     []DirectionType
	Offset    *int
	Voice     string
	Staff     int // 0 = unspecified
	Sound     *Sound
}

// DirectionType is the sum over direction content kinds. Each entry is
// emitted inside its own direction-type wrapper.
type DirectionType interface {
	directionType()
}

func (*Dynamics) directionType()  {}
func (*Wedge) directionType()     {}
func (*Metronome) directionType() {}
func (*Words) directionType()     {}
func (*Segno) directionType()     {}
func (*Coda) directionType()      {}

// Dynamics is one or more dynamics marks (each an empty element named
// after the mark).
type Dynamics struct {
	Values []DynamicsValue
}

// Wedge is one end of a crescendo/diminuendo hairpin.
type Wedge struct {
	Type   WedgeType
	Number int // 0 = unnumbered
	Spread *float64
}

// Metronome is a tempo marking: a beat unit with dots, equated to a
// per-minute value (which the format allows as free text, e.g. "c. 120").
type Metronome struct {
	BeatUnit     NoteTypeValue
	BeatUnitDots int
	PerMinute    string
	Parentheses  bool
}

// Words is free direction text.
type Words struct {
	Text string
}

// Segno is a segno sign.
type Segno struct{}

// Coda is a coda sign.
type Coda struct{}
