package mxml

// Score is the root of the document model: work and movement metadata,
// the part-list declarations, and the parts themselves in source order.
// Pure data; the codec reads it but never mutates it.
type Score struct {
	Work           *Work
	MovementNumber string
	MovementTitle  string
	Identification *Identification
	Credits        []Credit
	PartList       []ScorePart
	Parts          []Part
}

// Work holds opus-level metadata.
type Work struct {
	Number string
	Title  string
}

// Identification holds creator/rights/encoding metadata.
type Identification struct {
	Creators []Creator
	Rights   []string
	Encoding *Encoding
	Source   string
}

// Creator is one creator entry, typed by role ("composer", "lyricist").
type Creator struct {
	Type string
	Name string
}

// Encoding records the producing software and date.
type Encoding struct {
	Software []string
	Date     string
}

// Credit is a free-form credit block, usually title-page text.
type Credit struct {
	Page  int // 0 = unspecified
	Words []string
}

// ScorePart declares one part in the part-list: its id, display names,
// and optional instrument and playback-device bindings.
type ScorePart struct {
	ID           string
	Name         string
	Abbreviation string
	Instruments  []ScoreInstrument
	MIDIDevices  []MIDIDevice
	MIDIInstrs   []MIDIInstrument
}

// ScoreInstrument names one instrument within a part.
type ScoreInstrument struct {
	ID   string
	Name string
}

// MIDIDevice binds a part to a playback device/port.
type MIDIDevice struct {
	ID   string // optional instrument id attribute
	Port int    // 0 = unspecified
	Name string
}

// MIDIInstrument carries playback channel/program settings.
type MIDIInstrument struct {
	ID      string
	Channel int // 0 = unspecified (document values are 1-16)
	Program int // 0 = unspecified (document values are 1-128)
	Volume  *float64
	Pan     *float64
}

// Part is one performer line: an id matching a ScorePart declaration and
// its measures in order.
type Part struct {
	ID       string
	Measures []Measure
}

// Measure is a numbered container of music data. The order of Music is
// musically meaningful: it is the playback/layout sequence along the
// measure's time cursor.
type Measure struct {
	Number   string
	Implicit bool // pickup/anacrusis measures not counted in numbering
	Music    []MusicData
}

// MusicData is the sum over everything that can appear inside a measure.
// Exactly the pointer types below implement it; the emitter and parser
// switch over the full set.
type MusicData interface {
	musicData()
}

func (*Note) musicData()        {}
func (*Backup) musicData()      {}
func (*Forward) musicData()     {}
func (*Direction) musicData()   {}
func (*Attributes) musicData()  {}
func (*Barline) musicData()     {}
func (*Harmony) musicData()     {}
func (*FiguredBass) musicData() {}
func (*Print) musicData()       {}
func (*Sound) musicData()       {}

// Backup rewinds the measure's time cursor by Duration divisions,
// without emitting sounding or visible content. Used to interleave
// voices and staves within one measure.
type Backup struct {
	Duration int
}

// Forward advances the measure's time cursor by Duration divisions.
type Forward struct {
	Duration int
	Voice    string
	Staff    int // 0 = unspecified
}

// Barline marks a measure boundary style, repeat, or volta ending.
type Barline struct {
	Location RightLeftMiddle // "" = unspecified (schema default: right)
	Style    BarStyle        // "" = unspecified
	Repeat   *Repeat
	Ending   *Ending
}

// Repeat is a repeat sign on a barline.
type Repeat struct {
	Direction BackwardForward
	Times     int // 0 = unspecified
}

// Ending is a volta bracket on a barline.
type Ending struct {
	Number string // comma-separated ending numbers, e.g. "1,2"
	Type   StartStopDiscontinue
	Text   string
}

// Harmony is a chord symbol: root, kind, optional bass and inversion.
// Kind keeps the document spelling verbatim; the kind vocabulary is long
// and open-ended enough that pass-through round-trips better than a
// fixed table.
type Harmony struct {
	Root      *HarmonyRoot
	Kind      string
	Inversion int // 0 = unspecified
	Bass      *HarmonyBass
}

// HarmonyRoot is the root step of a chord symbol.
type HarmonyRoot struct {
	Step  Step
	Alter *float64
}

// HarmonyBass is an explicit bass note of a chord symbol.
type HarmonyBass struct {
	Step  Step
	Alter *float64
}

// FiguredBass is a figured-bass annotation with its own duration span.
type FiguredBass struct {
	Figures  []Figure
	Duration int // 0 = unspecified
}

// Figure is one figure line within a figured-bass block.
type Figure struct {
	Prefix string
	Number string
	Suffix string
}

// Print carries layout hints attached at a point in the measure.
type Print struct {
	NewSystem *bool
	NewPage   *bool
}

// Sound carries playback hints. It appears both standalone in a measure
// and as the trailing child of a Direction.
type Sound struct {
	Tempo    *float64
	Dynamics *float64
}

// PartByID returns the part with the given id, or nil.
func (s *Score) PartByID(id string) *Part {
	for i := range s.Parts {
		if s.Parts[i].ID == id {
			return &s.Parts[i]
		}
	}
	return nil
}

// ScorePartByID returns the part-list declaration for id, or nil.
func (s *Score) ScorePartByID(id string) *ScorePart {
	for i := range s.PartList {
		if s.PartList[i].ID == id {
			return &s.PartList[i]
		}
	}
	return nil
}

// Validate checks the cross-list invariant: every Part's id must have a
// matching part-list declaration. Emission performs the same check.
func (s *Score) Validate() error {
	for i := range s.Parts {
		if s.ScorePartByID(s.Parts[i].ID) == nil {
			return &InvalidDataError{
				Part:    s.Parts[i].ID,
				Note:    -1,
				Field:   "part",
				Message: "no matching score-part declaration in part-list",
			}
		}
	}
	return nil
}
