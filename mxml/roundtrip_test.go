package mxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fourQuartersScore is the canonical end-to-end fixture: four quarter
// notes C4 D4 E4 F4 at divisions=1 under 4/4 and a treble clef.
func fourQuartersScore() *Score {
	div := 1
	return &Score{
		PartList: []ScorePart{{ID: "P1", Name: "Music"}},
		Parts: []Part{{
			ID: "P1",
			Measures: []Measure{{
				Number: "1",
				Music: []MusicData{
					&Attributes{
						Divisions: &div,
						Keys:      []Key{{Fifths: 0}},
						Times:     []Time{{Beats: "4", BeatType: "4"}},
						Clefs:     []Clef{TrebleClef()},
					},
					quarterAt(StepC, 4, 1),
					quarterAt(StepD, 4, 1),
					quarterAt(StepE, 4, 1),
					quarterAt(StepF, 4, 1),
				},
			}},
		}},
	}
}

// richScore exercises most of the model surface in one document.
// Divisions is 24 so eighths (12), triplet eighths (8), 16ths (6) and
// dotted quarters (36) are all integral.
func richScore() *Score {
	div := 24
	staves := 1
	tempo := 96.0
	offset := -12
	spread := 15.0

	return &Score{
		Work:           &Work{Number: "Op. 3", Title: "Nocturne"},
		MovementNumber: "2",
		MovementTitle:  "Largo",
		Identification: &Identification{
			Creators: []Creator{
				{Type: "composer", Name: "A. Author"},
				{Type: "lyricist", Name: "B. Writer"},
			},
			Rights:   []string{"Copyright 2026"},
			Encoding: &Encoding{Software: []string{"partita"}, Date: "2026-08-30"},
			Source:   "manuscript",
		},
		Credits: []Credit{{Page: 1, Words: []string{"Nocturne", "for voice"}}},
		PartList: []ScorePart{
			{
				ID:           "P1",
				Name:         "Voice",
				Abbreviation: "V.",
				Instruments:  []ScoreInstrument{{ID: "P1-I1", Name: "Soprano"}},
				MIDIDevices:  []MIDIDevice{{Port: 1}},
				MIDIInstrs: []MIDIInstrument{
					{ID: "P1-I1", Channel: 1, Program: 53, Volume: fptr(80), Pan: fptr(-20)},
				},
			},
			{ID: "P2", Name: "Drums"},
		},
		Parts: []Part{
			{
				ID: "P1",
				Measures: []Measure{
					{
						Number: "1",
						Music: []MusicData{
							&Print{NewSystem: bptr(true)},
							&Attributes{
								Divisions:  &div,
								Keys:       []Key{{Fifths: -3, Mode: ModeMinor}},
								Times:      []Time{{Beats: "6", BeatType: "8"}},
								Staves:     &staves,
								Clefs:      []Clef{TrebleClef()},
								Transposes: []Transpose{{Diatonic: -1, Chromatic: -2}},
							},
							&Direction{
								Placement: PlacementBelow,
								Types: []DirectionType{
									&Dynamics{Values: []DynamicsValue{DynPP}},
									&Words{Text: "sotto voce"},
								},
								Offset: &offset,
								Staff:  1,
								Sound:  &Sound{Dynamics: fptr(40)},
							},
							&Direction{
								Placement: PlacementAbove,
								Types: []DirectionType{
									&Metronome{BeatUnit: TypeQuarter, BeatUnitDots: 1, PerMinute: "40", Parentheses: true},
								},
								Sound: &Sound{Tempo: &tempo},
							},
							&Note{
								Pitch:      &Pitch{Step: StepE, Alter: fptr(-1), Octave: 4},
								Duration:   36,
								Voice:      "1",
								Type:       TypeQuarter,
								Dots:       1,
								Accidental: &Accidental{Value: AccFlat},
								Stem:       StemUp,
								Staff:      1,
								Lyrics:     []Lyric{{Number: "1", Syllabic: SyllabicBegin, Text: "No", Extend: false}},
							},
							&Note{
								Kind:  GraceNote,
								Grace: &Grace{Slash: true, StealTimePrevious: fptr(25)},
								Pitch: &Pitch{Step: StepF, Octave: 4},
								Type:  Type16th,
								Staff: 1,
							},
							&Note{
								Pitch:    &Pitch{Step: StepG, Octave: 4},
								Duration: 12,
								Voice:    "1",
								Type:     TypeEighth,
								Beams:    []Beam{{Number: 1, Value: BeamBegin}},
								Staff:    1,
								Notations: []Notation{
									&Slur{Type: SpanStart, Number: 1, Placement: PlacementAbove},
								},
								Lyrics: []Lyric{{Number: "1", Syllabic: SyllabicEnd, Text: "ct", Extend: true}},
							},
							&Note{
								Pitch:    &Pitch{Step: StepA, Alter: fptr(-1), Octave: 4},
								Duration: 12,
								Voice:    "1",
								Type:     TypeEighth,
								Beams:    []Beam{{Number: 1, Value: BeamEnd}},
								Staff:    1,
								Notations: []Notation{
									&Slur{Type: SpanStop, Number: 1},
									&Fermata{Type: FermataInverted, Shape: "normal"},
								},
							},
							&Backup{Duration: 60},
							&Note{
								Pitch:    &Pitch{Step: StepC, Octave: 4},
								Duration: 72,
								Voice:    "2",
								Type:     TypeHalf,
								Dots:     1,
								Stem:     StemDown,
								Staff:    1,
							},
							&Harmony{
								Root:      &HarmonyRoot{Step: StepC, Alter: fptr(0)},
								Kind:      "minor",
								Inversion: 1,
								Bass:      &HarmonyBass{Step: StepE, Alter: fptr(-1)},
							},
							&FiguredBass{
								Figures:  []Figure{{Number: "6"}, {Prefix: "flat", Number: "3"}},
								Duration: 24,
							},
						},
					},
					{
						Number: "2",
						Music: []MusicData{
							// Triplet of eighths: 8 divisions each under 3:2.
							&Note{
								Pitch:    &Pitch{Step: StepC, Octave: 5},
								Duration: 8,
								Voice:    "1",
								Type:     TypeEighth,
								TimeMod:  &TimeModification{ActualNotes: 3, NormalNotes: 2, NormalType: TypeEighth},
								Notations: []Notation{
									&TupletBracket{Type: Start, Number: 1, Bracket: bptr(true), ShowNum: "actual"},
								},
							},
							&Note{
								Pitch:    &Pitch{Step: StepD, Octave: 5},
								Duration: 8,
								Voice:    "1",
								Type:     TypeEighth,
								TimeMod:  &TimeModification{ActualNotes: 3, NormalNotes: 2, NormalType: TypeEighth},
							},
							&Note{
								Pitch:    &Pitch{Step: StepE, Alter: fptr(-1), Octave: 5},
								Duration: 8,
								Voice:    "1",
								Type:     TypeEighth,
								TimeMod:  &TimeModification{ActualNotes: 3, NormalNotes: 2, NormalType: TypeEighth},
								Notations: []Notation{
									&TupletBracket{Type: Stop, Number: 1},
								},
							},
							// A tied chord with a cautionary accidental.
							&Note{
								Pitch:      &Pitch{Step: StepF, Alter: fptr(1), Octave: 4},
								Duration:   24,
								Voice:      "1",
								Type:       TypeQuarter,
								Ties:       []Tie{{Type: Start}},
								Accidental: &Accidental{Value: AccSharp, Cautionary: true},
								Notations:  []Notation{&Tied{Type: TiedStart}, &Arpeggiate{Direction: DirUp}},
							},
							&Note{
								Chord:     true,
								Pitch:     &Pitch{Step: StepA, Octave: 4},
								Duration:  24,
								Voice:     "1",
								Type:      TypeQuarter,
								Notations: []Notation{&Arpeggiate{Direction: DirUp}},
							},
							&Note{
								Kind:     CueNote,
								Pitch:    &Pitch{Step: StepC, Octave: 5},
								Duration: 24,
								Voice:    "1",
								Type:     TypeQuarter,
							},
							&Barline{
								Location: LocationRight,
								Style:    BarLightHeavy,
								Ending:   &Ending{Number: "1", Type: EndingStop},
								Repeat:   &Repeat{Direction: RepeatBackward, Times: 2},
							},
						},
					},
				},
			},
			{
				ID: "P2",
				Measures: []Measure{
					{
						Number:   "0",
						Implicit: true,
						Music: []MusicData{
							&Attributes{
								Divisions: &div,
								Clefs:     []Clef{{Sign: ClefPercussion}},
							},
							&Sound{Tempo: &tempo},
							&Note{
								Unpitched: &Unpitched{DisplayStep: StepE, DisplayOctave: 4},
								Duration:  24,
								Type:      TypeQuarter,
								Notehead:  &Notehead{Value: NoteheadX},
								Notations: []Notation{
									&Articulations{Marks: []Articulation{
										{Name: "accent", Placement: PlacementAbove},
										{Name: "staccato"},
									}},
									&Ornaments{Marks: []Ornament{
										{Name: "trill-mark", Accidentals: []AccidentalValue{AccSharp}},
									}},
									&Technical{Marks: []TechnicalMark{
										{Name: "fingering", Text: "2"},
										{Name: "up-bow"},
									}},
								},
							},
							&Note{
								Rest:     &Rest{DisplayStep: StepB, DisplayOctave: 4},
								Duration: 24,
								Type:     TypeQuarter,
							},
							&Forward{Duration: 24, Voice: "1"},
							&Note{
								Rest:     &Rest{Measure: true},
								Duration: 24,
							},
						},
					},
					{
						Number: "1",
						Music: []MusicData{
							&Attributes{
								Times: []Time{{SenzaMisura: true}},
							},
							&Direction{
								Types: []DirectionType{
									&Segno{},
									&Wedge{Type: WedgeCrescendo, Number: 1, Spread: &spread},
								},
							},
							&Note{Rest: &Rest{Measure: true}, Duration: 96},
							&Direction{
								Types: []DirectionType{
									&Wedge{Type: WedgeStop, Number: 1},
									&Coda{},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestRoundTrip_Stability(t *testing.T) {
	tests := []struct {
		name  string
		score *Score
	}{
		{"four quarters", fourQuartersScore()},
		{"rich score", richScore()},
		{"minimal", minimalScore(&Note{Rest: &Rest{Measure: true}, Duration: 4})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := Emit(tt.score)
			require.NoError(t, err)

			reparsed, err := Parse(first)
			require.NoError(t, err)

			second, err := Emit(reparsed)
			require.NoError(t, err)
			assert.Equal(t, first, second, "double round trip must be byte-stable")
		})
	}
}

func TestRoundTrip_SemanticEquality(t *testing.T) {
	for _, score := range []*Score{fourQuartersScore(), richScore()} {
		doc, err := Emit(score)
		require.NoError(t, err)
		reparsed, err := Parse(doc)
		require.NoError(t, err)
		assert.Equal(t, score, reparsed)
	}
}

func TestRoundTrip_TieAndCautionaryAccidental(t *testing.T) {
	div := 4
	score := minimalScore(&Attributes{Divisions: &div}, &Note{
		Pitch:      &Pitch{Step: StepF, Alter: fptr(1), Octave: 5},
		Duration:   4,
		Type:       TypeQuarter,
		Ties:       []Tie{{Type: Start}},
		Accidental: &Accidental{Value: AccSharp, Cautionary: true},
		Notations:  []Notation{&Tied{Type: TiedStart}},
	})
	doc, err := Emit(score)
	require.NoError(t, err)

	reparsed, err := Parse(doc)
	require.NoError(t, err)

	part := reparsed.PartByID("P1")
	require.NotNil(t, part)
	require.Len(t, part.Measures, 1)

	var note *Note
	for _, md := range part.Measures[0].Music {
		if n, ok := md.(*Note); ok {
			note = n
		}
	}
	require.NotNil(t, note)
	require.Len(t, note.Ties, 1)
	assert.Equal(t, Start, note.Ties[0].Type)
	require.NotNil(t, note.Accidental)
	assert.Equal(t, AccSharp, note.Accidental.Value)
	assert.True(t, note.Accidental.Cautionary)
}

func TestRoundTrip_EndToEndScenario(t *testing.T) {
	score := fourQuartersScore()

	first, err := Emit(score)
	require.NoError(t, err)

	reparsed, err := Parse(first)
	require.NoError(t, err)

	second, err := Emit(reparsed)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.Len(t, reparsed.Parts, 1)
	part := reparsed.Parts[0]
	require.Len(t, part.Measures, 1)

	var notes []*Note
	for _, md := range part.Measures[0].Music {
		if n, ok := md.(*Note); ok {
			notes = append(notes, n)
		}
	}
	require.Len(t, notes, 4)
	wantSteps := []Step{StepC, StepD, StepE, StepF}
	for i, n := range notes {
		assert.Equal(t, RegularNote, n.Kind, "note %d", i)
		require.NotNil(t, n.Pitch, "note %d", i)
		assert.Equal(t, wantSteps[i], n.Pitch.Step, "note %d", i)
		assert.Equal(t, 4, n.Pitch.Octave, "note %d", i)
		assert.Equal(t, 1, n.Duration, "note %d", i)
	}
}
