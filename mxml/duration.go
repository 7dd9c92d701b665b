package mxml

import (
	"fmt"
	"math/big"
)

// Duration arithmetic. Durations in the document are integers scaled by
// the divisions-per-quarter value in force; the notated type, dots, and
// tuplet ratio must agree with that integer exactly. All scaling here is
// exact rational arithmetic; a non-integer result is a data error, never
// a rounding.

// noteTypeOrder lists the notated types from longest to shortest.
var noteTypeOrder = []NoteTypeValue{
	TypeMaxima, TypeLong, TypeBreve, TypeWhole, TypeHalf, TypeQuarter,
	TypeEighth, Type16th, Type32nd, Type64th, Type128th, Type256th,
	Type512th, Type1024th,
}

// typeQuarters maps each notated type to its length in quarter notes,
// anchored at quarter = 1.
var typeQuarters = map[NoteTypeValue]*big.Rat{
	TypeMaxima:  big.NewRat(32, 1),
	TypeLong:    big.NewRat(16, 1),
	TypeBreve:   big.NewRat(8, 1),
	TypeWhole:   big.NewRat(4, 1),
	TypeHalf:    big.NewRat(2, 1),
	TypeQuarter: big.NewRat(1, 1),
	TypeEighth:  big.NewRat(1, 2),
	Type16th:    big.NewRat(1, 4),
	Type32nd:    big.NewRat(1, 8),
	Type64th:    big.NewRat(1, 16),
	Type128th:   big.NewRat(1, 32),
	Type256th:   big.NewRat(1, 64),
	Type512th:   big.NewRat(1, 128),
	Type1024th:  big.NewRat(1, 256),
}

// dotFactor returns the cumulative dot multiplier as an exact rational:
// each dot adds half of the previous increment, so the total is
// (2^(dots+1) - 1) / 2^dots.
func dotFactor(dots int) *big.Rat {
	num := new(big.Int).Lsh(big.NewInt(1), uint(dots+1))
	num.Sub(num, big.NewInt(1))
	den := new(big.Int).Lsh(big.NewInt(1), uint(dots))
	return new(big.Rat).SetFrac(num, den)
}

// DivisionsFor converts a notated type plus dot count into an integer
// division count under the given divisions-per-quarter scale.
func DivisionsFor(t NoteTypeValue, dots int, divisionsPerQuarter int) (int, error) {
	if divisionsPerQuarter <= 0 {
		return 0, &InvalidDataError{
			Note:    -1,
			Field:   "divisions",
			Message: fmt.Sprintf("divisions per quarter must be positive, have %d", divisionsPerQuarter),
		}
	}
	if dots < 0 {
		return 0, &InvalidDataError{
			Note:    -1,
			Field:   "dots",
			Message: fmt.Sprintf("dot count must be non-negative, have %d", dots),
		}
	}
	q, ok := typeQuarters[t]
	if !ok {
		return 0, &InvalidDataError{
			Note:    -1,
			Field:   "type",
			Message: fmt.Sprintf("unknown note type %q", string(t)),
		}
	}

	dur := new(big.Rat).Mul(q, big.NewRat(int64(divisionsPerQuarter), 1))
	dur.Mul(dur, dotFactor(dots))
	if !dur.IsInt() {
		return 0, &InvalidDataError{
			Note:    -1,
			Field:   "duration",
			Message: fmt.Sprintf("%s with %d dot(s) at %d divisions/quarter is not an integer duration (%s)",
				string(t), dots, divisionsPerQuarter, dur.RatString()),
		}
	}
	return int(dur.Num().Int64()), nil
}

// ApplyTimeModification scales an integer duration by a tuplet ratio
// (normal/actual). A nil modification is the identity. Truncation loss
// means the divisions scale is too coarse for the requested tuplet and
// is surfaced as an error.
func ApplyTimeModification(duration int, tm *TimeModification) (int, error) {
	if tm == nil {
		return duration, nil
	}
	if tm.ActualNotes <= 0 || tm.NormalNotes <= 0 {
		return 0, &InvalidDataError{
			Note:    -1,
			Field:   "time-modification",
			Message: fmt.Sprintf("actual/normal notes must be positive, have %d:%d", tm.ActualNotes, tm.NormalNotes),
		}
	}
	scaled := big.NewRat(int64(duration)*int64(tm.NormalNotes), int64(tm.ActualNotes))
	if !scaled.IsInt() {
		return 0, &InvalidDataError{
			Note:  -1,
			Field: "duration",
			Message: fmt.Sprintf("duration %d under %d:%d tuplet is not an integer (%s); divisions too coarse",
				duration, tm.ActualNotes, tm.NormalNotes, scaled.RatString()),
		}
	}
	return int(scaled.Num().Int64()), nil
}

// NotatedDuration computes the full notated duration of a note: type and
// dots under divisionsPerQuarter, then the note's tuplet ratio if any.
func NotatedDuration(t NoteTypeValue, dots int, tm *TimeModification, divisionsPerQuarter int) (int, error) {
	d, err := DivisionsFor(t, dots, divisionsPerQuarter)
	if err != nil {
		return 0, err
	}
	return ApplyTimeModification(d, tm)
}

// NoteTypeFromDuration is the best-effort inverse: it finds a type and
// dot count (0-3) whose notated duration equals the given integer under
// the divisions scale. The boolean result is false when no combination
// matches (e.g. tuplet-scaled or irregular durations).
func NoteTypeFromDuration(duration, divisionsPerQuarter int) (NoteTypeValue, int, bool) {
	if duration <= 0 || divisionsPerQuarter <= 0 {
		return "", 0, false
	}
	want := big.NewRat(int64(duration), int64(divisionsPerQuarter))
	for _, t := range noteTypeOrder {
		for dots := 0; dots <= 3; dots++ {
			got := new(big.Rat).Mul(typeQuarters[t], dotFactor(dots))
			if got.Cmp(want) == 0 {
				return t, dots, true
			}
		}
	}
	return "", 0, false
}
