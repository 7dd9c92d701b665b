package mxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFifthsForKey(t *testing.T) {
	tests := []struct {
		name  string
		tonic Step
		alter int
		mode  Mode
		want  int
	}{
		{"C major", StepC, 0, ModeMajor, 0},
		{"G major", StepG, 0, ModeMajor, 1},
		{"D major", StepD, 0, ModeMajor, 2},
		{"F major", StepF, 0, ModeMajor, -1},
		{"B flat major", StepB, -1, ModeMajor, -2},
		{"E flat major", StepE, -1, ModeMajor, -3},
		{"F sharp major", StepF, 1, ModeMajor, 6},
		{"A minor", StepA, 0, ModeMinor, 0},
		{"E minor", StepE, 0, ModeMinor, 1},
		{"C minor", StepC, 0, ModeMinor, -3},
		{"G sharp minor", StepG, 1, ModeMinor, 5},
		{"D dorian", StepD, 0, ModeDorian, 0},
		{"G mixolydian", StepG, 0, ModeMixolydian, 0},
		{"F lydian", StepF, 0, ModeLydian, 0},
		{"empty mode defaults to major", StepA, 0, "", 3},
		{"aeolian equals minor", StepA, 0, ModeAeolian, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FifthsForKey(tt.tonic, tt.alter, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFifthsForKey_Unsupported(t *testing.T) {
	_, err := FifthsForKey(StepC, 0, ModeNone)
	var ide *InvalidDataError
	require.ErrorAs(t, err, &ide)
	assert.Equal(t, "key", ide.Field)
	assert.Contains(t, ide.Message, "mode")

	_, err = FifthsForKey("H", 0, ModeMajor)
	require.ErrorAs(t, err, &ide)
	assert.Contains(t, ide.Message, "tonic")
}
