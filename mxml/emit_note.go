package mxml

import "strconv"

func (e *emitter) emitNote(n *Note) error {
	if err := e.checkNote(n); err != nil {
		return err
	}

	e.w.open("note")
	switch n.Kind {
	case GraceNote:
		var attrs []attr
		g := n.Grace
		if g != nil {
			if g.Slash {
				attrs = append(attrs, attr{"slash", "yes"})
			}
			if g.StealTimePrevious != nil {
				attrs = append(attrs, attr{"steal-time-previous", formatFloat(*g.StealTimePrevious)})
			}
			if g.StealTimeFollowing != nil {
				attrs = append(attrs, attr{"steal-time-following", formatFloat(*g.StealTimeFollowing)})
			}
		}
		e.w.empty("grace", attrs...)
	case CueNote:
		e.w.empty("cue")
	}
	if n.Chord {
		e.w.empty("chord")
	}

	switch {
	case n.Pitch != nil:
		p := n.Pitch
		e.w.open("pitch")
		e.w.text("step", string(p.Step))
		if p.Alter != nil {
			e.w.text("alter", formatFloat(*p.Alter))
		}
		e.w.textInt("octave", p.Octave)
		e.w.close("pitch")
	case n.Rest != nil:
		r := n.Rest
		var attrs []attr
		if r.Measure {
			attrs = append(attrs, attr{"measure", "yes"})
		}
		if r.DisplayStep == "" {
			e.w.empty("rest", attrs...)
		} else {
			e.w.open("rest", attrs...)
			e.w.text("display-step", string(r.DisplayStep))
			e.w.textInt("display-octave", r.DisplayOctave)
			e.w.close("rest")
		}
	case n.Unpitched != nil:
		u := n.Unpitched
		if u.DisplayStep == "" {
			e.w.empty("unpitched")
		} else {
			e.w.open("unpitched")
			e.w.text("display-step", string(u.DisplayStep))
			e.w.textInt("display-octave", u.DisplayOctave)
			e.w.close("unpitched")
		}
	}

	if n.Kind != GraceNote {
		e.w.textInt("duration", n.Duration)
	}
	for _, t := range n.Ties {
		e.w.empty("tie", attr{"type", string(t.Type)})
	}
	e.w.textOpt("voice", n.Voice)
	e.w.textOpt("type", string(n.Type))
	for i := 0; i < n.Dots; i++ {
		e.w.empty("dot")
	}
	if a := n.Accidental; a != nil {
		var attrs []attr
		if a.Cautionary {
			attrs = append(attrs, attr{"cautionary", "yes"})
		}
		if a.Editorial {
			attrs = append(attrs, attr{"editorial", "yes"})
		}
		e.w.text("accidental", string(a.Value), attrs...)
	}
	if tm := n.TimeMod; tm != nil {
		e.w.open("time-modification")
		e.w.textInt("actual-notes", tm.ActualNotes)
		e.w.textInt("normal-notes", tm.NormalNotes)
		if tm.NormalType != "" {
			e.w.text("normal-type", string(tm.NormalType))
			for i := 0; i < tm.NormalDots; i++ {
				e.w.empty("normal-dot")
			}
		}
		e.w.close("time-modification")
	}
	if n.Stem != "" {
		e.w.text("stem", string(n.Stem))
	}
	if nh := n.Notehead; nh != nil {
		var attrs []attr
		if nh.Filled != nil {
			attrs = append(attrs, attr{"filled", yesNo(*nh.Filled)})
		}
		if nh.Parentheses != nil {
			attrs = append(attrs, attr{"parentheses", yesNo(*nh.Parentheses)})
		}
		e.w.text("notehead", string(nh.Value), attrs...)
	}
	if n.Staff > 0 {
		e.w.textInt("staff", n.Staff)
	}
	for _, b := range n.Beams {
		num := b.Number
		if num == 0 {
			num = 1
		}
		e.w.text("beam", string(b.Value), attr{"number", strconv.Itoa(num)})
	}
	if len(n.Notations) > 0 {
		e.emitNotations(n.Notations)
	}
	for _, l := range n.Lyrics {
		var attrs []attr
		if l.Number != "" {
			attrs = append(attrs, attr{"number", l.Number})
		}
		e.w.open("lyric", attrs...)
		e.w.textOpt("syllabic", string(l.Syllabic))
		e.w.text("text", l.Text)
		if l.Extend {
			e.w.empty("extend")
		}
		e.w.close("lyric")
	}
	e.w.close("note")
	return nil
}

func (e *emitter) emitNotations(list []Notation) {
	e.w.open("notations")
	for _, nt := range list {
		switch v := nt.(type) {
		case *Tied:
			attrs := []attr{{"type", string(v.Type)}}
			if v.Number > 0 {
				attrs = append(attrs, attr{"number", strconv.Itoa(v.Number)})
			}
			e.w.empty("tied", attrs...)
		case *Slur:
			attrs := []attr{{"type", string(v.Type)}}
			if v.Number > 0 {
				attrs = append(attrs, attr{"number", strconv.Itoa(v.Number)})
			}
			if v.Placement != "" {
				attrs = append(attrs, attr{"placement", string(v.Placement)})
			}
			e.w.empty("slur", attrs...)
		case *TupletBracket:
			attrs := []attr{{"type", string(v.Type)}}
			if v.Number > 0 {
				attrs = append(attrs, attr{"number", strconv.Itoa(v.Number)})
			}
			if v.Bracket != nil {
				attrs = append(attrs, attr{"bracket", yesNo(*v.Bracket)})
			}
			if v.ShowNum != "" {
				attrs = append(attrs, attr{"show-number", v.ShowNum})
			}
			e.w.empty("tuplet", attrs...)
		case *Fermata:
			var attrs []attr
			if v.Type != "" {
				attrs = append(attrs, attr{"type", string(v.Type)})
			}
			if v.Shape == "" {
				e.w.empty("fermata", attrs...)
			} else {
				e.w.text("fermata", v.Shape, attrs...)
			}
		case *Articulations:
			e.w.open("articulations")
			for _, m := range v.Marks {
				var attrs []attr
				if m.Placement != "" {
					attrs = append(attrs, attr{"placement", string(m.Placement)})
				}
				e.w.empty(m.Name, attrs...)
			}
			e.w.close("articulations")
		case *Ornaments:
			e.w.open("ornaments")
			for _, m := range v.Marks {
				var attrs []attr
				if m.Placement != "" {
					attrs = append(attrs, attr{"placement", string(m.Placement)})
				}
				e.w.empty(m.Name, attrs...)
				for _, acc := range m.Accidentals {
					e.w.text("accidental-mark", string(acc))
				}
			}
			e.w.close("ornaments")
		case *Technical:
			e.w.open("technical")
			for _, m := range v.Marks {
				if m.Text == "" {
					e.w.empty(m.Name)
				} else {
					e.w.text(m.Name, m.Text)
				}
			}
			e.w.close("technical")
		case *Arpeggiate:
			var attrs []attr
			if v.Number > 0 {
				attrs = append(attrs, attr{"number", strconv.Itoa(v.Number)})
			}
			if v.Direction != "" {
				attrs = append(attrs, attr{"direction", string(v.Direction)})
			}
			e.w.empty("arpeggiate", attrs...)
		}
	}
	e.w.close("notations")
}

// checkNote enforces the cross-field invariants the type system cannot:
// exactly one pitch content, duration presence per kind, and agreement
// between the integer duration and the declared type/dots under the
// active divisions and tuplet ratio.
func (e *emitter) checkNote(n *Note) error {
	if c := n.pitchContentCount(); c != 1 {
		return e.invalid("note", "need exactly one of pitch, rest, unpitched; have %d", c)
	}
	switch n.Kind {
	case GraceNote:
		if n.Duration != 0 {
			return e.invalid("duration", "grace notes carry no duration, have %d", n.Duration)
		}
	case CueNote:
		if n.Duration <= 0 {
			return e.invalid("duration", "cue note duration must be positive, have %d", n.Duration)
		}
		if len(n.Ties) > 0 {
			return e.invalid("tie", "cue notes cannot carry ties")
		}
	default:
		if n.Duration <= 0 {
			return e.invalid("duration", "note duration must be positive, have %d", n.Duration)
		}
	}
	if len(n.Ties) > 2 {
		return e.invalid("tie", "at most two tie markers per note, have %d", len(n.Ties))
	}

	// Type/dots vs integer duration, checkable only once divisions are
	// declared and the note displays a type.
	if n.Kind != GraceNote && n.Type != "" && e.divisions > 0 {
		want, err := NotatedDuration(n.Type, n.Dots, n.TimeMod, e.divisions)
		if err != nil {
			if ide, ok := err.(*InvalidDataError); ok {
				ide.Part = e.part
				ide.Measure = e.measure
				ide.Note = e.noteIndex
			}
			return err
		}
		if want != n.Duration {
			return &InvalidDataError{
				Part:     e.part,
				Measure:  e.measure,
				Note:     e.noteIndex,
				Field:    "duration",
				Message:  "declared type and dots disagree with duration under active divisions",
				Expected: strconv.Itoa(want),
				Actual:   strconv.Itoa(n.Duration),
			}
		}
	}
	return nil
}
