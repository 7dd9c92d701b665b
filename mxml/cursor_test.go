package mxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quarterAt(step Step, octave, duration int) *Note {
	return &Note{
		Pitch:    &Pitch{Step: step, Octave: octave},
		Duration: duration,
		Type:     TypeQuarter,
	}
}

func TestMeasureSpan_ChordAdvancesOnce(t *testing.T) {
	// Three simultaneous notes: the group occupies one duration.
	first := quarterAt(StepC, 4, 960)
	second := quarterAt(StepE, 4, 960)
	second.Chord = true
	third := quarterAt(StepG, 4, 960)
	third.Chord = true

	m := Measure{Number: "1", Music: []MusicData{first, second, third}}
	span, err := m.Span()
	require.NoError(t, err)
	assert.Equal(t, 960, span)
}

func TestMeasureSpan_SequentialNotes(t *testing.T) {
	m := Measure{Number: "1", Music: []MusicData{
		quarterAt(StepC, 4, 960),
		quarterAt(StepD, 4, 960),
		quarterAt(StepE, 4, 960),
		quarterAt(StepF, 4, 960),
	}}
	span, err := m.Span()
	require.NoError(t, err)
	assert.Equal(t, 3840, span)
}

func TestMeasureSpan_BackupInterleavesVoices(t *testing.T) {
	// Voice 1 fills the measure, backup rewinds, voice 2 fills it again.
	m := Measure{Number: "1", Music: []MusicData{
		&Note{Pitch: &Pitch{Step: StepC, Octave: 5}, Duration: 1920, Type: TypeHalf, Voice: "1"},
		&Backup{Duration: 1920},
		&Note{Pitch: &Pitch{Step: StepE, Octave: 3}, Duration: 1920, Type: TypeHalf, Voice: "2"},
	}}
	span, err := m.Span()
	require.NoError(t, err)
	assert.Equal(t, 1920, span)
}

func TestMeasureSpan_ForwardPads(t *testing.T) {
	m := Measure{Number: "1", Music: []MusicData{
		quarterAt(StepC, 4, 960),
		&Forward{Duration: 960},
		quarterAt(StepD, 4, 960),
	}}
	span, err := m.Span()
	require.NoError(t, err)
	assert.Equal(t, 2880, span)
}

func TestMeasureSpan_GraceNotesDoNotAdvance(t *testing.T) {
	grace := &Note{
		Kind:  GraceNote,
		Grace: &Grace{Slash: true},
		Pitch: &Pitch{Step: StepB, Octave: 3},
		Type:  TypeEighth,
	}
	m := Measure{Number: "1", Music: []MusicData{grace, quarterAt(StepC, 4, 960)}}
	span, err := m.Span()
	require.NoError(t, err)
	assert.Equal(t, 960, span)
}

func TestMeasureSpan_BackupPastStart(t *testing.T) {
	m := Measure{Number: "3", Music: []MusicData{
		quarterAt(StepC, 4, 960),
		&Backup{Duration: 2000},
	}}
	_, err := m.Span()
	require.Error(t, err)
	var ide *InvalidDataError
	require.ErrorAs(t, err, &ide)
	assert.Equal(t, "3", ide.Measure)
}

func TestMeasureCursor_DirectionsDoNotAdvance(t *testing.T) {
	var c MeasureCursor
	require.NoError(t, c.Apply(&Direction{Types: []DirectionType{&Words{Text: "dolce"}}}))
	assert.Equal(t, 0, c.Pos())
	require.NoError(t, c.Apply(quarterAt(StepC, 4, 960)))
	assert.Equal(t, 960, c.Pos())
	assert.Equal(t, 960, c.Max())
}
