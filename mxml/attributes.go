package mxml

import "fmt"

// Attributes carries the sticky measure-level declarations: divisions
// per quarter note, key and time signatures, staff count, clefs, and
// transpositions. Divisions, once declared, scales every duration in
// the part until redeclared.
type Attributes struct {
	Divisions  *int
	Keys       []Key
	Times      []Time
	Staves     *int
	Clefs      []Clef
	Transposes []Transpose
}

// Key is a traditional circle-of-fifths key signature. Number scopes it
// to one staff (0 = all staves).
type Key struct {
	Number int
	Fifths int
	Mode   Mode // "" = unspecified
}

// Time is a time signature. SenzaMisura replaces beats/beat-type for
// unmetered music.
type Time struct {
	Number      int // staff, 0 = all
	Beats       string
	BeatType    string
	SenzaMisura bool
}

// Clef positions a clef sign. Number scopes it to one staff when the
// part is multi-staff.
type Clef struct {
	Number       int // staff, 0 = unspecified
	Sign         ClefSign
	Line         int // 0 = sign default
	OctaveChange int // e.g. -1 for a tenor G clef
}

// Transpose describes written-to-sounding transposition.
type Transpose struct {
	Diatonic     int
	Chromatic    int
	OctaveChange int
	Double       bool
}

// TrebleClef returns the everyday G clef on line 2.
func TrebleClef() Clef { return Clef{Sign: ClefG, Line: 2} }

// BassClef returns the F clef on line 4.
func BassClef() Clef { return Clef{Sign: ClefF, Line: 4} }

// majorFifths maps a tonic letter to its fifths count in major; each
// sharp on the tonic adds 7, each flat subtracts 7.
var majorFifths = map[Step]int{
	StepC: 0, StepD: 2, StepE: 4, StepF: -1,
	StepG: 1, StepA: 3, StepB: 5,
}

// modeOffsets shifts the major-tonic fifths count to the named mode's
// signature. Relative minor of C major is A minor, three fifths down.
var modeOffsets = map[Mode]int{
	ModeMajor: 0, ModeIonian: 0,
	ModeMixolydian: -1,
	ModeDorian:     -2,
	ModeMinor:      -3, ModeAeolian: -3,
	ModePhrygian: -4,
	ModeLocrian:  -5,
	ModeLydian:   1,
}

// FifthsForKey maps a tonic (letter plus sharp/flat alteration in
// semitones) and mode to a circle-of-fifths signature count. Modes
// outside the fifths-based system are rejected rather than guessed.
func FifthsForKey(tonic Step, alter int, mode Mode) (int, error) {
	base, ok := majorFifths[tonic]
	if !ok {
		return 0, &InvalidDataError{
			Note:    -1,
			Field:   "key",
			Message: fmt.Sprintf("unknown tonic step %q", string(tonic)),
		}
	}
	if mode == "" {
		mode = ModeMajor
	}
	off, ok := modeOffsets[mode]
	if !ok {
		return 0, &InvalidDataError{
			Note:    -1,
			Field:   "key",
			Message: fmt.Sprintf("unsupported mode %q for fifths-based signature", string(mode)),
		}
	}
	return base + 7*alter + off, nil
}
