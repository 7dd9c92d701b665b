package mxml

// Notation is the sum over the independent sub-notations that can attach
// to one note. The emitter wraps a note's notations in a single
// container element; the parser accepts any number of containers and
// flattens them.
type Notation interface {
	notation()
}

func (*Tied) notation()          {}
func (*Slur) notation()          {}
func (*TupletBracket) notation() {}
func (*Fermata) notation()       {}
func (*Articulations) notation() {}
func (*Ornaments) notation()     {}
func (*Technical) notation()     {}
func (*Arpeggiate) notation()    {}

// Tied is the visual tie curve. The sound tie lives on Note.Ties; the
// two usually travel together but the format keeps them distinct.
type Tied struct {
	Type   TiedType
	Number int // 0 = unnumbered
}

// Slur is a phrase curve spanning notes. Number disambiguates nested or
// overlapping slurs.
type Slur struct {
	Type      StartStopContinue
	Number    int // 0 = unnumbered
	Placement AboveBelow
}

// TupletBracket is the visual tuplet bracket/number. Duration scaling is
// TimeModification on the note; this only draws.
type TupletBracket struct {
	Type    StartStop
	Number  int    // 0 = unnumbered
	Bracket *bool  // nil = renderer default
	ShowNum string // "actual", "both", "none", "" = default
}

// Fermata is a hold mark.
type Fermata struct {
	Type  UprightInverted // "" = upright
	Shape string          // "normal", "angled", "square", "" = default
}

// Articulations groups the articulation marks on one note.
type Articulations struct {
	Marks []Articulation
}

// Articulation is one articulation mark, spelled as its element name
// ("staccato", "accent", "tenuto", "strong-accent", ...).
type Articulation struct {
	Name      string
	Placement AboveBelow
}

var validArticulations = map[string]bool{
	"accent": true, "strong-accent": true, "staccato": true,
	"tenuto": true, "detached-legato": true, "staccatissimo": true,
	"spiccato": true, "scoop": true, "plop": true, "doit": true,
	"falloff": true, "breath-mark": true, "caesura": true,
	"stress": true, "unstress": true,
}

// Ornaments groups ornament marks, each optionally followed by
// accidental marks in the source; the accidentals are kept per ornament.
type Ornaments struct {
	Marks []Ornament
}

// Ornament is one ornament mark ("trill-mark", "turn", "mordent", ...).
type Ornament struct {
	Name        string
	Placement   AboveBelow
	Accidentals []AccidentalValue // accidental-mark children
}

var validOrnaments = map[string]bool{
	"trill-mark": true, "turn": true, "delayed-turn": true,
	"inverted-turn": true, "shake": true, "wavy-line": true,
	"mordent": true, "inverted-mordent": true, "schleifer": true,
	"tremolo": true, "haydn": true,
}

// Technical groups instrument-technique marks.
type Technical struct {
	Marks []TechnicalMark
}

// TechnicalMark is one technique mark. Flag-like marks ("up-bow",
// "open-string") have empty Text; valued marks ("fingering", "fret",
// "string") carry it.
type TechnicalMark struct {
	Name string
	Text string
}

var validTechnical = map[string]bool{
	"up-bow": true, "down-bow": true, "harmonic": true,
	"open-string": true, "thumb-position": true, "fingering": true,
	"pluck": true, "double-tongue": true, "triple-tongue": true,
	"stopped": true, "snap-pizzicato": true, "fret": true,
	"string": true, "hammer-on": true, "pull-off": true, "tap": true,
	"heel": true, "toe": true, "fingernails": true,
}

// Arpeggiate marks a chord as rolled.
type Arpeggiate struct {
	Number    int    // 0 = unnumbered
	Direction UpDown // "" = unspecified
}
