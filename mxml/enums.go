package mxml

// Enumerated value types for the document format. Each type keeps the
// document's own spelling as its underlying string so emission is a plain
// write-through; parse helpers validate incoming text and report unknown
// spellings as InvalidEnumError.

// Step is a diatonic pitch letter, A through G.
type Step string

const (
	StepA Step = "A"
	StepB Step = "B"
	StepC Step = "C"
	StepD Step = "D"
	StepE Step = "E"
	StepF Step = "F"
	StepG Step = "G"
)

func parseStep(raw string, off int64) (Step, error) {
	switch Step(raw) {
	case StepA, StepB, StepC, StepD, StepE, StepF, StepG:
		return Step(raw), nil
	}
	return "", &InvalidEnumError{Context: "step", Raw: raw, Offset: off}
}

// NoteTypeValue is a notated duration type, from maxima down to 1024th.
type NoteTypeValue string

const (
	TypeMaxima  NoteTypeValue = "maxima"
	TypeLong    NoteTypeValue = "long"
	TypeBreve   NoteTypeValue = "breve"
	TypeWhole   NoteTypeValue = "whole"
	TypeHalf    NoteTypeValue = "half"
	TypeQuarter NoteTypeValue = "quarter"
	TypeEighth  NoteTypeValue = "eighth"
	Type16th    NoteTypeValue = "16th"
	Type32nd    NoteTypeValue = "32nd"
	Type64th    NoteTypeValue = "64th"
	Type128th   NoteTypeValue = "128th"
	Type256th   NoteTypeValue = "256th"
	Type512th   NoteTypeValue = "512th"
	Type1024th  NoteTypeValue = "1024th"
)

func parseNoteType(raw string, off int64) (NoteTypeValue, error) {
	if _, ok := typeQuarters[NoteTypeValue(raw)]; ok {
		return NoteTypeValue(raw), nil
	}
	return "", &InvalidEnumError{Context: "note type", Raw: raw, Offset: off}
}

// AccidentalValue names a displayed accidental.
type AccidentalValue string

const (
	AccSharp             AccidentalValue = "sharp"
	AccNatural           AccidentalValue = "natural"
	AccFlat              AccidentalValue = "flat"
	AccDoubleSharp       AccidentalValue = "double-sharp"
	AccSharpSharp        AccidentalValue = "sharp-sharp"
	AccFlatFlat          AccidentalValue = "flat-flat"
	AccNaturalSharp      AccidentalValue = "natural-sharp"
	AccNaturalFlat       AccidentalValue = "natural-flat"
	AccQuarterFlat       AccidentalValue = "quarter-flat"
	AccQuarterSharp      AccidentalValue = "quarter-sharp"
	AccThreeQuartersFlat AccidentalValue = "three-quarters-flat"
	AccThreeQuartersShrp AccidentalValue = "three-quarters-sharp"
)

var validAccidentals = map[AccidentalValue]bool{
	AccSharp: true, AccNatural: true, AccFlat: true,
	AccDoubleSharp: true, AccSharpSharp: true, AccFlatFlat: true,
	AccNaturalSharp: true, AccNaturalFlat: true,
	AccQuarterFlat: true, AccQuarterSharp: true,
	AccThreeQuartersFlat: true, AccThreeQuartersShrp: true,
}

func parseAccidental(raw string, off int64) (AccidentalValue, error) {
	if validAccidentals[AccidentalValue(raw)] {
		return AccidentalValue(raw), nil
	}
	return "", &InvalidEnumError{Context: "accidental", Raw: raw, Offset: off}
}

// StemValue is a stem display hint.
type StemValue string

const (
	StemUp     StemValue = "up"
	StemDown   StemValue = "down"
	StemNone   StemValue = "none"
	StemDouble StemValue = "double"
)

func parseStem(raw string, off int64) (StemValue, error) {
	switch StemValue(raw) {
	case StemUp, StemDown, StemNone, StemDouble:
		return StemValue(raw), nil
	}
	return "", &InvalidEnumError{Context: "stem", Raw: raw, Offset: off}
}

// ClefSign is a clef symbol.
type ClefSign string

const (
	ClefG          ClefSign = "G"
	ClefF          ClefSign = "F"
	ClefC          ClefSign = "C"
	ClefPercussion ClefSign = "percussion"
	ClefTAB        ClefSign = "TAB"
	ClefJianpu     ClefSign = "jianpu"
	ClefNone       ClefSign = "none"
)

func parseClefSign(raw string, off int64) (ClefSign, error) {
	switch ClefSign(raw) {
	case ClefG, ClefF, ClefC, ClefPercussion, ClefTAB, ClefJianpu, ClefNone:
		return ClefSign(raw), nil
	}
	return "", &InvalidEnumError{Context: "clef sign", Raw: raw, Offset: off}
}

// BarStyle is a barline rendering style.
type BarStyle string

const (
	BarRegular    BarStyle = "regular"
	BarDotted     BarStyle = "dotted"
	BarDashed     BarStyle = "dashed"
	BarHeavy      BarStyle = "heavy"
	BarLightLight BarStyle = "light-light"
	BarLightHeavy BarStyle = "light-heavy"
	BarHeavyLight BarStyle = "heavy-light"
	BarHeavyHeavy BarStyle = "heavy-heavy"
	BarTick       BarStyle = "tick"
	BarShort      BarStyle = "short"
	BarNone       BarStyle = "none"
)

var validBarStyles = map[BarStyle]bool{
	BarRegular: true, BarDotted: true, BarDashed: true, BarHeavy: true,
	BarLightLight: true, BarLightHeavy: true, BarHeavyLight: true,
	BarHeavyHeavy: true, BarTick: true, BarShort: true, BarNone: true,
}

func parseBarStyle(raw string, off int64) (BarStyle, error) {
	if validBarStyles[BarStyle(raw)] {
		return BarStyle(raw), nil
	}
	return "", &InvalidEnumError{Context: "bar-style", Raw: raw, Offset: off}
}

// StartStop marks the two ends of a paired element (tie, tuplet).
type StartStop string

const (
	Start StartStop = "start"
	Stop  StartStop = "stop"
)

func parseStartStop(context, raw string, off int64) (StartStop, error) {
	switch StartStop(raw) {
	case Start, Stop:
		return StartStop(raw), nil
	}
	return "", &InvalidEnumError{Context: context, Raw: raw, Offset: off}
}

// StartStopContinue marks spanning elements that can carry through
// intermediate notes (slurs).
type StartStopContinue string

const (
	SpanStart    StartStopContinue = "start"
	SpanStop     StartStopContinue = "stop"
	SpanContinue StartStopContinue = "continue"
)

func parseStartStopContinue(context, raw string, off int64) (StartStopContinue, error) {
	switch StartStopContinue(raw) {
	case SpanStart, SpanStop, SpanContinue:
		return StartStopContinue(raw), nil
	}
	return "", &InvalidEnumError{Context: context, Raw: raw, Offset: off}
}

// TiedType extends StartStopContinue with let-ring for the visual tie.
type TiedType string

const (
	TiedStart    TiedType = "start"
	TiedStop     TiedType = "stop"
	TiedContinue TiedType = "continue"
	TiedLetRing  TiedType = "let-ring"
)

func parseTiedType(raw string, off int64) (TiedType, error) {
	switch TiedType(raw) {
	case TiedStart, TiedStop, TiedContinue, TiedLetRing:
		return TiedType(raw), nil
	}
	return "", &InvalidEnumError{Context: "tied", Raw: raw, Offset: off}
}

// StartStopDiscontinue marks volta ending brackets.
type StartStopDiscontinue string

const (
	EndingStart       StartStopDiscontinue = "start"
	EndingStop        StartStopDiscontinue = "stop"
	EndingDiscontinue StartStopDiscontinue = "discontinue"
)

func parseEndingType(raw string, off int64) (StartStopDiscontinue, error) {
	switch StartStopDiscontinue(raw) {
	case EndingStart, EndingStop, EndingDiscontinue:
		return StartStopDiscontinue(raw), nil
	}
	return "", &InvalidEnumError{Context: "ending", Raw: raw, Offset: off}
}

// BackwardForward is a repeat direction.
type BackwardForward string

const (
	RepeatBackward BackwardForward = "backward"
	RepeatForward  BackwardForward = "forward"
)

func parseRepeatDirection(raw string, off int64) (BackwardForward, error) {
	switch BackwardForward(raw) {
	case RepeatBackward, RepeatForward:
		return BackwardForward(raw), nil
	}
	return "", &InvalidEnumError{Context: "repeat", Raw: raw, Offset: off}
}

// RightLeftMiddle is a barline location within its measure.
type RightLeftMiddle string

const (
	LocationRight  RightLeftMiddle = "right"
	LocationLeft   RightLeftMiddle = "left"
	LocationMiddle RightLeftMiddle = "middle"
)

func parseBarlineLocation(raw string, off int64) (RightLeftMiddle, error) {
	switch RightLeftMiddle(raw) {
	case LocationRight, LocationLeft, LocationMiddle:
		return RightLeftMiddle(raw), nil
	}
	return "", &InvalidEnumError{Context: "barline location", Raw: raw, Offset: off}
}

// AboveBelow is a placement hint relative to the staff.
type AboveBelow string

const (
	PlacementAbove AboveBelow = "above"
	PlacementBelow AboveBelow = "below"
)

func parsePlacement(raw string, off int64) (AboveBelow, error) {
	switch AboveBelow(raw) {
	case PlacementAbove, PlacementBelow:
		return AboveBelow(raw), nil
	}
	return "", &InvalidEnumError{Context: "placement", Raw: raw, Offset: off}
}

// UpDown is a direction for arpeggiate marks.
type UpDown string

const (
	DirUp   UpDown = "up"
	DirDown UpDown = "down"
)

func parseUpDown(context, raw string, off int64) (UpDown, error) {
	switch UpDown(raw) {
	case DirUp, DirDown:
		return UpDown(raw), nil
	}
	return "", &InvalidEnumError{Context: context, Raw: raw, Offset: off}
}

// WedgeType is the role of a wedge mark within a crescendo/diminuendo pair.
type WedgeType string

const (
	WedgeCrescendo  WedgeType = "crescendo"
	WedgeDiminuendo WedgeType = "diminuendo"
	WedgeStop       WedgeType = "stop"
	WedgeContinue   WedgeType = "continue"
)

func parseWedgeType(raw string, off int64) (WedgeType, error) {
	switch WedgeType(raw) {
	case WedgeCrescendo, WedgeDiminuendo, WedgeStop, WedgeContinue:
		return WedgeType(raw), nil
	}
	return "", &InvalidEnumError{Context: "wedge", Raw: raw, Offset: off}
}

// BeamValue is one beam level's state on a note.
type BeamValue string

const (
	BeamBegin        BeamValue = "begin"
	BeamContinue     BeamValue = "continue"
	BeamEnd          BeamValue = "end"
	BeamForwardHook  BeamValue = "forward hook"
	BeamBackwardHook BeamValue = "backward hook"
)

func parseBeamValue(raw string, off int64) (BeamValue, error) {
	switch BeamValue(raw) {
	case BeamBegin, BeamContinue, BeamEnd, BeamForwardHook, BeamBackwardHook:
		return BeamValue(raw), nil
	}
	return "", &InvalidEnumError{Context: "beam", Raw: raw, Offset: off}
}

// Syllabic positions a lyric syllable within its word.
type Syllabic string

const (
	SyllabicSingle Syllabic = "single"
	SyllabicBegin  Syllabic = "begin"
	SyllabicEnd    Syllabic = "end"
	SyllabicMiddle Syllabic = "middle"
)

func parseSyllabic(raw string, off int64) (Syllabic, error) {
	switch Syllabic(raw) {
	case SyllabicSingle, SyllabicBegin, SyllabicEnd, SyllabicMiddle:
		return Syllabic(raw), nil
	}
	return "", &InvalidEnumError{Context: "syllabic", Raw: raw, Offset: off}
}

// Mode is a key signature mode.
type Mode string

const (
	ModeMajor      Mode = "major"
	ModeMinor      Mode = "minor"
	ModeDorian     Mode = "dorian"
	ModePhrygian   Mode = "phrygian"
	ModeLydian     Mode = "lydian"
	ModeMixolydian Mode = "mixolydian"
	ModeAeolian    Mode = "aeolian"
	ModeIonian     Mode = "ionian"
	ModeLocrian    Mode = "locrian"
	ModeNone       Mode = "none"
)

var validModes = map[Mode]bool{
	ModeMajor: true, ModeMinor: true, ModeDorian: true, ModePhrygian: true,
	ModeLydian: true, ModeMixolydian: true, ModeAeolian: true,
	ModeIonian: true, ModeLocrian: true, ModeNone: true,
}

func parseMode(raw string, off int64) (Mode, error) {
	if validModes[Mode(raw)] {
		return Mode(raw), nil
	}
	return "", &InvalidEnumError{Context: "mode", Raw: raw, Offset: off}
}

// DynamicsValue is one dynamics mark, spelled as its element name.
type DynamicsValue string

const (
	DynP    DynamicsValue = "p"
	DynPP   DynamicsValue = "pp"
	DynPPP  DynamicsValue = "ppp"
	DynPPPP DynamicsValue = "pppp"
	DynF    DynamicsValue = "f"
	DynFF   DynamicsValue = "ff"
	DynFFF  DynamicsValue = "fff"
	DynFFFF DynamicsValue = "ffff"
	DynMP   DynamicsValue = "mp"
	DynMF   DynamicsValue = "mf"
	DynSF   DynamicsValue = "sf"
	DynSFP  DynamicsValue = "sfp"
	DynSFPP DynamicsValue = "sfpp"
	DynFP   DynamicsValue = "fp"
	DynRF   DynamicsValue = "rf"
	DynRFZ  DynamicsValue = "rfz"
	DynSFZ  DynamicsValue = "sfz"
	DynSFFZ DynamicsValue = "sffz"
	DynFZ   DynamicsValue = "fz"
	DynN    DynamicsValue = "n"
	DynPF   DynamicsValue = "pf"
)

var validDynamics = map[DynamicsValue]bool{
	DynP: true, DynPP: true, DynPPP: true, DynPPPP: true,
	DynF: true, DynFF: true, DynFFF: true, DynFFFF: true,
	DynMP: true, DynMF: true, DynSF: true, DynSFP: true, DynSFPP: true,
	DynFP: true, DynRF: true, DynRFZ: true, DynSFZ: true, DynSFFZ: true,
	DynFZ: true, DynN: true, DynPF: true,
}

// NoteheadValue is an alternate notehead shape.
type NoteheadValue string

const (
	NoteheadNormal   NoteheadValue = "normal"
	NoteheadSlash    NoteheadValue = "slash"
	NoteheadTriangle NoteheadValue = "triangle"
	NoteheadDiamond  NoteheadValue = "diamond"
	NoteheadSquare   NoteheadValue = "square"
	NoteheadCross    NoteheadValue = "cross"
	NoteheadX        NoteheadValue = "x"
	NoteheadCircleX  NoteheadValue = "circle-x"
	NoteheadNone     NoteheadValue = "none"
)

var validNoteheads = map[NoteheadValue]bool{
	NoteheadNormal: true, NoteheadSlash: true, NoteheadTriangle: true,
	NoteheadDiamond: true, NoteheadSquare: true, NoteheadCross: true,
	NoteheadX: true, NoteheadCircleX: true, NoteheadNone: true,
}

func parseNotehead(raw string, off int64) (NoteheadValue, error) {
	if validNoteheads[NoteheadValue(raw)] {
		return NoteheadValue(raw), nil
	}
	return "", &InvalidEnumError{Context: "notehead", Raw: raw, Offset: off}
}

// UprightInverted orients a fermata.
type UprightInverted string

const (
	FermataUpright  UprightInverted = "upright"
	FermataInverted UprightInverted = "inverted"
)

func parseFermataType(raw string, off int64) (UprightInverted, error) {
	switch UprightInverted(raw) {
	case FermataUpright, FermataInverted:
		return UprightInverted(raw), nil
	}
	return "", &InvalidEnumError{Context: "fermata", Raw: raw, Offset: off}
}

// YesNo is the document format's boolean attribute spelling.
type YesNo string

const (
	Yes YesNo = "yes"
	No  YesNo = "no"
)

func parseYesNo(context, raw string, off int64) (bool, error) {
	switch YesNo(raw) {
	case Yes:
		return true, nil
	case No:
		return false, nil
	}
	return false, &InvalidEnumError{Context: context, Raw: raw, Offset: off}
}
