package mxml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmit_DocumentFraming(t *testing.T) {
	doc, err := Emit(fourQuartersScore())
	require.NoError(t, err)

	lines := strings.Split(doc, "\n")
	require.Greater(t, len(lines), 3)
	assert.Equal(t, xmlDeclaration, lines[0])
	assert.Equal(t, doctype, lines[1])
	assert.Equal(t, `<score-partwise version="3.1">`, lines[2])
	assert.True(t, strings.HasSuffix(doc, "</score-partwise>\n"))
}

func TestEmit_SchemaChildOrderWithinNote(t *testing.T) {
	div := 8
	score := minimalScore(&Attributes{Divisions: &div}, &Note{
		Chord:      true,
		Pitch:      &Pitch{Step: StepC, Alter: fptr(1), Octave: 4},
		Duration:   8,
		Ties:       []Tie{{Type: Start}},
		Voice:      "1",
		Type:       TypeQuarter,
		Accidental: &Accidental{Value: AccSharp},
		Stem:       StemUp,
		Staff:      1,
		Notations:  []Notation{&Tied{Type: TiedStart}},
		Lyrics:     []Lyric{{Syllabic: SyllabicSingle, Text: "la"}},
	})
	doc, err := Emit(score)
	require.NoError(t, err)

	order := []string{
		"<chord/>", "<pitch>", "<duration>", "<tie ", "<voice>",
		"<type>", "<accidental>", "<stem>", "<staff>", "<notations>", "<lyric>",
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(doc, marker)
		require.GreaterOrEqual(t, idx, 0, "missing %s", marker)
		assert.Greater(t, idx, last, "%s out of order", marker)
		last = idx
	}
}

func TestEmit_AbsentOptionalsOmitted(t *testing.T) {
	div := 1
	score := minimalScore(&Attributes{Divisions: &div}, &Note{
		Pitch:    &Pitch{Step: StepC, Octave: 4},
		Duration: 1,
	})
	doc, err := Emit(score)
	require.NoError(t, err)

	assert.NotContains(t, doc, "<voice>")
	assert.NotContains(t, doc, "<type>")
	assert.NotContains(t, doc, "<alter>")
	assert.NotContains(t, doc, "<notations>")
	assert.NotContains(t, doc, "<work>")
}

func TestEmit_EscapesReservedCharacters(t *testing.T) {
	score := fourQuartersScore()
	score.Work = &Work{Title: `Airs & "Graces" <op. 1>`}
	doc, err := Emit(score)
	require.NoError(t, err)
	assert.Contains(t, doc, "Airs &amp; &quot;Graces&quot; &lt;op. 1&gt;")
}

func TestEmit_DurationTypeMismatchRejected(t *testing.T) {
	div := 960
	score := minimalScore(&Attributes{Divisions: &div}, &Note{
		Pitch:    &Pitch{Step: StepC, Octave: 4},
		Duration: 961, // not a quarter at 960
		Type:     TypeQuarter,
	})
	_, err := Emit(score)
	require.Error(t, err)
	var ide *InvalidDataError
	require.ErrorAs(t, err, &ide)
	assert.Equal(t, "duration", ide.Field)
	assert.Equal(t, "960", ide.Expected)
	assert.Equal(t, "961", ide.Actual)
	assert.Equal(t, "P1", ide.Part)
	assert.Equal(t, "1", ide.Measure)
}

func TestEmit_PitchContentChoiceEnforced(t *testing.T) {
	score := minimalScore(&Note{Duration: 1})
	_, err := Emit(score)
	require.Error(t, err)
	var ide *InvalidDataError
	require.ErrorAs(t, err, &ide)
	assert.Contains(t, ide.Message, "exactly one")

	score = minimalScore(&Note{
		Pitch:    &Pitch{Step: StepC, Octave: 4},
		Rest:     &Rest{},
		Duration: 1,
	})
	_, err = Emit(score)
	assert.Error(t, err)
}

func TestEmit_GraceAndCueConstraints(t *testing.T) {
	score := minimalScore(&Note{
		Kind:     GraceNote,
		Grace:    &Grace{},
		Pitch:    &Pitch{Step: StepC, Octave: 4},
		Duration: 4,
	})
	_, err := Emit(score)
	assert.Error(t, err, "grace note with duration")

	score = minimalScore(&Note{
		Kind:     CueNote,
		Pitch:    &Pitch{Step: StepC, Octave: 4},
		Duration: 4,
		Ties:     []Tie{{Type: Start}},
	})
	_, err = Emit(score)
	assert.Error(t, err, "cue note with tie")
}

func TestEmit_UndeclaredPartRejected(t *testing.T) {
	score := &Score{
		PartList: []ScorePart{{ID: "P1", Name: "One"}},
		Parts:    []Part{{ID: "P2"}},
	}
	_, err := Emit(score)
	require.Error(t, err)
	var ide *InvalidDataError
	require.ErrorAs(t, err, &ide)
	assert.Equal(t, "P2", ide.Part)
}

func TestEmit_HarmonyRequiresCompleteFields(t *testing.T) {
	_, err := Emit(minimalScore(&Harmony{Kind: "major"}))
	assert.Error(t, err, "missing root")

	_, err = Emit(minimalScore(&Harmony{Root: &HarmonyRoot{Step: StepC}}))
	assert.Error(t, err, "missing kind")

	_, err = Emit(minimalScore(&Harmony{
		Root: &HarmonyRoot{Step: StepC},
		Kind: "major",
		Bass: &HarmonyBass{},
	}))
	assert.Error(t, err, "bass without step")
}

func TestEmit_BackupForwardDurations(t *testing.T) {
	score := minimalScore(&Backup{Duration: 0})
	_, err := Emit(score)
	assert.Error(t, err)

	score = minimalScore(&Forward{Duration: -4})
	_, err = Emit(score)
	assert.Error(t, err)
}

func TestEmit_SelfClosingFlagForms(t *testing.T) {
	div := 4
	score := minimalScore(&Attributes{Divisions: &div}, &Note{
		Rest:     &Rest{Measure: true},
		Duration: 16,
	})
	doc, err := Emit(score)
	require.NoError(t, err)
	assert.Contains(t, doc, `<rest measure="yes"/>`)
	assert.NotContains(t, doc, "<rest></rest>")
}

func TestEmit_Deterministic(t *testing.T) {
	score := richScore()
	first, err := Emit(score)
	require.NoError(t, err)
	second, err := Emit(score)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// minimalScore wraps music data in a single-part, single-measure score.
func minimalScore(music ...MusicData) *Score {
	return &Score{
		PartList: []ScorePart{{ID: "P1", Name: "Music"}},
		Parts: []Part{{
			ID:       "P1",
			Measures: []Measure{{Number: "1", Music: music}},
		}},
	}
}

func fptr(f float64) *float64 { return &f }
func iptr(i int) *int         { return &i }
func bptr(b bool) *bool       { return &b }
