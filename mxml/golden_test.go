package mxml

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// Golden tests pin the canonical emission byte for byte. Regenerate
// with `go test -update` after a deliberate format change.
func TestEmit_Golden(t *testing.T) {
	tests := []struct {
		name  string
		score *Score
	}{
		{"four_quarters", fourQuartersScore()},
		{"two_voices", twoVoicesScore()},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Emit(tt.score)
			require.NoError(t, err)
			g.Assert(t, tt.name, []byte(doc))
		})
	}
}

// twoVoicesScore interleaves two voices with a backup, ending on a
// final barline.
func twoVoicesScore() *Score {
	div := 2
	return &Score{
		MovementTitle: "Duet",
		PartList:      []ScorePart{{ID: "P1", Name: "Keyboard"}},
		Parts: []Part{{
			ID: "P1",
			Measures: []Measure{{
				Number: "1",
				Music: []MusicData{
					&Attributes{
						Divisions: &div,
						Times:     []Time{{Beats: "2", BeatType: "4"}},
						Clefs:     []Clef{TrebleClef()},
					},
					&Note{
						Pitch:    &Pitch{Step: StepE, Octave: 5},
						Duration: 2,
						Voice:    "1",
						Type:     TypeQuarter,
						Stem:     StemUp,
					},
					&Note{
						Pitch:    &Pitch{Step: StepD, Octave: 5},
						Duration: 2,
						Voice:    "1",
						Type:     TypeQuarter,
						Stem:     StemUp,
					},
					&Backup{Duration: 4},
					&Note{
						Pitch:    &Pitch{Step: StepC, Octave: 4},
						Duration: 4,
						Voice:    "2",
						Type:     TypeHalf,
						Stem:     StemDown,
					},
					&Barline{Location: LocationRight, Style: BarLightHeavy},
				},
			}},
		}},
	}
}
