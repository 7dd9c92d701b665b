package mxml

import "fmt"

// DurationMismatch reports a note whose displayed type and dots disagree
// with its integer duration under the active divisions and tuplet ratio.
// On the read side duration is authoritative and type/dots are display
// hints — many producer tools round the display without exact
// arithmetic — so these are advisories, not errors. The emitter, by
// contrast, refuses to write such a note.
type DurationMismatch struct {
	Part    string
	Measure string
	Note    int // index within the measure's music data
	Type    NoteTypeValue
	Dots    int

	Expected int
	Actual   int
	Reason   string // set when the expectation itself is uncomputable

	// SuggestedType/SuggestedDots hold the plain spelling the document's
	// duration actually implies, when one exists.
	SuggestedType NoteTypeValue
	SuggestedDots int
}

func (m DurationMismatch) String() string {
	if m.Reason != "" {
		return fmt.Sprintf("part %q measure %s note %d: %s", m.Part, m.Measure, m.Note, m.Reason)
	}
	msg := fmt.Sprintf("part %q measure %s note %d: type %s with %d dot(s) implies duration %d, document says %d",
		m.Part, m.Measure, m.Note, m.Type, m.Dots, m.Expected, m.Actual)
	if m.SuggestedType != "" {
		msg += fmt.Sprintf("; duration spells %s with %d dot(s)", m.SuggestedType, m.SuggestedDots)
	}
	return msg
}

// CheckDurations walks the score with the same sticky-divisions rule the
// emitter uses and returns every type/duration disagreement it finds.
// Notes with no displayed type, grace notes, and notes before any
// divisions declaration are skipped.
func CheckDurations(s *Score) []DurationMismatch {
	var out []DurationMismatch
	for pi := range s.Parts {
		part := &s.Parts[pi]
		divisions := 0
		for mi := range part.Measures {
			m := &part.Measures[mi]
			for ni, md := range m.Music {
				switch v := md.(type) {
				case *Attributes:
					if v.Divisions != nil && *v.Divisions > 0 {
						divisions = *v.Divisions
					}
				case *Note:
					if v.Kind == GraceNote || v.Type == "" || divisions == 0 {
						continue
					}
					want, err := NotatedDuration(v.Type, v.Dots, v.TimeMod, divisions)
					if err != nil {
						out = append(out, DurationMismatch{
							Part: part.ID, Measure: m.Number, Note: ni,
							Type: v.Type, Dots: v.Dots,
							Actual: v.Duration,
							Reason: err.Error(),
						})
						continue
					}
					if want != v.Duration {
						mm := DurationMismatch{
							Part: part.ID, Measure: m.Number, Note: ni,
							Type: v.Type, Dots: v.Dots,
							Expected: want, Actual: v.Duration,
						}
						if st, sd, ok := NoteTypeFromDuration(v.Duration, divisions); ok && v.TimeMod == nil {
							mm.SuggestedType = st
							mm.SuggestedDots = sd
						}
						out = append(out, mm)
					}
				}
			}
		}
	}
	return out
}
