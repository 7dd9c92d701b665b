package mxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDurations_CleanScore(t *testing.T) {
	assert.Empty(t, CheckDurations(fourQuartersScore()))
	assert.Empty(t, CheckDurations(richScore()))
}

func TestCheckDurations_ReportsMismatch(t *testing.T) {
	// Parsing accepts a rounded duration; the checker reports it.
	in := doc(`<attributes><divisions>3</divisions></attributes>
<note>
  <pitch><step>C</step><octave>4</octave></pitch>
  <duration>2</duration>
  <type>quarter</type>
</note>`)

	s, err := Parse(in)
	require.NoError(t, err)

	got := CheckDurations(s)
	require.Len(t, got, 1)
	m := got[0]
	assert.Equal(t, "P1", m.Part)
	assert.Equal(t, "1", m.Measure)
	assert.Equal(t, TypeQuarter, m.Type)
	assert.Equal(t, 3, m.Expected)
	assert.Equal(t, 2, m.Actual)
	assert.Contains(t, m.String(), "implies duration 3")
}

func TestCheckDurations_SuggestsImpliedSpelling(t *testing.T) {
	// A dotted-quarter duration declared as a plain quarter: the
	// advisory names the spelling the duration actually implies.
	div := 4
	s := minimalScore(
		&Attributes{Divisions: &div},
		&Note{
			Pitch:    &Pitch{Step: StepG, Octave: 4},
			Duration: 6,
			Type:     TypeQuarter,
		},
	)
	got := CheckDurations(s)
	require.Len(t, got, 1)
	m := got[0]
	assert.Equal(t, 4, m.Expected)
	assert.Equal(t, 6, m.Actual)
	assert.Equal(t, TypeQuarter, m.SuggestedType)
	assert.Equal(t, 1, m.SuggestedDots)
	assert.Contains(t, m.String(), "duration spells quarter with 1 dot(s)")
}

func TestCheckDurations_UncomputableExpectation(t *testing.T) {
	// Triplet eighth at divisions=1 has no integral duration; the checker
	// reports why instead of guessing.
	div := 1
	s := minimalScore(
		&Attributes{Divisions: &div},
		&Note{
			Pitch:    &Pitch{Step: StepC, Octave: 4},
			Duration: 1,
			Type:     TypeEighth,
			TimeMod:  &TimeModification{ActualNotes: 3, NormalNotes: 2},
		},
	)
	got := CheckDurations(s)
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].Reason)
	assert.Contains(t, got[0].String(), got[0].Reason)
}

func TestCheckDurations_SkipsUncheckableNotes(t *testing.T) {
	div := 4
	s := minimalScore(
		// No divisions yet: unchecked.
		&Note{Pitch: &Pitch{Step: StepC, Octave: 4}, Duration: 7, Type: TypeQuarter},
		&Attributes{Divisions: &div},
		// Grace: unchecked.
		&Note{Kind: GraceNote, Grace: &Grace{}, Pitch: &Pitch{Step: StepD, Octave: 4}, Type: Type16th},
		// No type: unchecked.
		&Note{Pitch: &Pitch{Step: StepE, Octave: 4}, Duration: 5},
	)
	assert.Empty(t, CheckDurations(s))
}

func TestValidate_PartWithoutDeclaration(t *testing.T) {
	s := &Score{
		PartList: []ScorePart{{ID: "P1", Name: "Music"}},
		Parts:    []Part{{ID: "P1"}, {ID: "P9"}},
	}
	err := s.Validate()
	var ide *InvalidDataError
	require.ErrorAs(t, err, &ide)
	assert.Equal(t, "P9", ide.Part)
	assert.Equal(t, "part", ide.Field)
}

func TestPartLookups(t *testing.T) {
	s := fourQuartersScore()
	require.NotNil(t, s.PartByID("P1"))
	assert.Nil(t, s.PartByID("P2"))
	require.NotNil(t, s.ScorePartByID("P1"))
	assert.Nil(t, s.ScorePartByID("P2"))
}
