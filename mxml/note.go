package mxml

// NoteKind distinguishes the three note forms the format defines.
type NoteKind uint8

const (
	// RegularNote has pitched/rest/unpitched content and an integer
	// duration, and advances the time cursor unless marked as a chord
	// member.
	RegularNote NoteKind = iota
	// GraceNote has no duration of its own; it steals time from its
	// neighbors and never advances the cursor.
	GraceNote
	// CueNote has a duration but no ties; it is display-only.
	CueNote
)

// String returns the kind name.
func (k NoteKind) String() string {
	switch k {
	case RegularNote:
		return "regular"
	case GraceNote:
		return "grace"
	case CueNote:
		return "cue"
	default:
		return "unknown"
	}
}

// Note is one notated event. Exactly one of Pitch, Rest, Unpitched must
// be set. Duration is in divisions and must be zero for grace notes and
// positive otherwise. The first note of a simultaneous group leaves
// Chord false and advances the cursor; every later member sets Chord.
type Note struct {
	Kind  NoteKind
	Grace *Grace // set iff Kind == GraceNote
	Chord bool

	Pitch     *Pitch
	Rest      *Rest
	Unpitched *Unpitched

	Duration int
	Ties     []Tie // 0..2 sound ties (start and/or stop)

	Voice string
	Type  NoteTypeValue // "" = no displayed type
	Dots  int

	Accidental *Accidental
	TimeMod    *TimeModification

	Stem     StemValue // "" = unspecified
	Notehead *Notehead
	Staff    int // 0 = unspecified
	Beams    []Beam

	Notations []Notation
	Lyrics    []Lyric
}

// Grace carries the display hints specific to grace notes.
type Grace struct {
	Slash              bool
	StealTimePrevious  *float64 // percentage
	StealTimeFollowing *float64 // percentage
}

// Pitch is a real sounding pitch: letter step, fractional semitone
// alteration, octave (4 contains middle C).
type Pitch struct {
	Step   Step
	Alter  *float64
	Octave int
}

// Rest is a silence. DisplayStep/DisplayOctave position the rest glyph
// on the staff; Measure marks a whole-measure rest.
type Rest struct {
	Measure       bool
	DisplayStep   Step // "" = default position
	DisplayOctave int  // meaningful only with DisplayStep
}

// Unpitched is a percussion-style note with display position only.
type Unpitched struct {
	DisplayStep   Step
	DisplayOctave int
}

// Tie is a sound tie marker (the visual curve is Tied in notations).
type Tie struct {
	Type StartStop
}

// Accidental is a displayed accidental, optionally cautionary
// (parenthesized courtesy accidental) or editorial.
type Accidental struct {
	Value      AccidentalValue
	Cautionary bool
	Editorial  bool
}

// TimeModification scales the note's nominal duration by
// NormalNotes/ActualNotes (3:2 actual:normal is a triplet). NormalType
// and NormalDots describe the normal note when it differs from the
// note's own type; they affect display grouping, not arithmetic.
type TimeModification struct {
	ActualNotes int
	NormalNotes int
	NormalType  NoteTypeValue // "" = same as note type
	NormalDots  int
}

// Notehead selects an alternate notehead shape.
type Notehead struct {
	Value       NoteheadValue
	Filled      *bool
	Parentheses *bool
}

// Beam is one beam level's state.
type Beam struct {
	Number int // beam level, 1 = eighth-level beam
	Value  BeamValue
}

// Lyric is one lyric line entry on a note.
type Lyric struct {
	Number   string // lyric line, "" = first
	Syllabic Syllabic
	Text     string
	Extend   bool
}

// IsRest reports whether the note is a rest.
func (n *Note) IsRest() bool { return n.Rest != nil }

// AdvancesCursor reports whether the note advances its measure's time
// cursor: chord members and grace notes do not.
func (n *Note) AdvancesCursor() bool {
	return !n.Chord && n.Kind != GraceNote
}

// pitchContentCount counts how many of the pitch/rest/unpitched
// alternatives are set; exactly one is valid.
func (n *Note) pitchContentCount() int {
	c := 0
	if n.Pitch != nil {
		c++
	}
	if n.Rest != nil {
		c++
	}
	if n.Unpitched != nil {
		c++
	}
	return c
}
