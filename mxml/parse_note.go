package mxml

import "encoding/xml"

func (p *parser) parseNote(start xml.StartElement) (*Note, error) {
	n := &Note{Kind: RegularNote}
	sawDuration := false
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "grace":
			g := &Grace{}
			slash, err := p.yesNoAttr(child, "slash", "grace slash")
			if err != nil {
				return false, err
			}
			g.Slash = slash
			if g.StealTimePrevious, err = p.floatAttr(child, "steal-time-previous", "grace steal-time-previous"); err != nil {
				return false, err
			}
			if g.StealTimeFollowing, err = p.floatAttr(child, "steal-time-following", "grace steal-time-following"); err != nil {
				return false, err
			}
			if err := p.skip(); err != nil {
				return false, err
			}
			n.Kind = GraceNote
			n.Grace = g
		case "cue":
			if _, err := p.text(); err != nil {
				return false, err
			}
			n.Kind = CueNote
		case "chord":
			if _, err := p.text(); err != nil {
				return false, err
			}
			n.Chord = true
		case "pitch":
			pitch, err := p.parsePitch()
			if err != nil {
				return false, err
			}
			n.Pitch = pitch
		case "rest":
			rest, err := p.parseRest(child)
			if err != nil {
				return false, err
			}
			n.Rest = rest
		case "unpitched":
			u, err := p.parseUnpitched()
			if err != nil {
				return false, err
			}
			n.Unpitched = u
		case "duration":
			v, err := p.intText("note duration")
			if err != nil {
				return false, err
			}
			n.Duration = v
			sawDuration = true
		case "tie":
			raw, ok := attrVal(child, "type")
			if !ok {
				return false, &MissingElementError{Parent: "tie", Element: "type", Offset: p.off()}
			}
			typ, err := parseStartStop("tie", raw, p.off())
			if err != nil {
				return false, err
			}
			if _, err := p.text(); err != nil {
				return false, err
			}
			n.Ties = append(n.Ties, Tie{Type: typ})
		case "voice":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			n.Voice = v
		case "type":
			raw, err := p.text()
			if err != nil {
				return false, err
			}
			t, err := parseNoteType(raw, p.off())
			if err != nil {
				return false, err
			}
			n.Type = t
		case "dot":
			if _, err := p.text(); err != nil {
				return false, err
			}
			n.Dots++
		case "accidental":
			acc, err := p.parseAccidentalElem(child)
			if err != nil {
				return false, err
			}
			n.Accidental = acc
		case "time-modification":
			tm, err := p.parseTimeModification()
			if err != nil {
				return false, err
			}
			n.TimeMod = tm
		case "stem":
			raw, err := p.text()
			if err != nil {
				return false, err
			}
			stem, err := parseStem(raw, p.off())
			if err != nil {
				return false, err
			}
			n.Stem = stem
		case "notehead":
			nh, err := p.parseNotehead(child)
			if err != nil {
				return false, err
			}
			n.Notehead = nh
		case "staff":
			v, err := p.intText("note staff")
			if err != nil {
				return false, err
			}
			n.Staff = v
		case "beam":
			number, err := p.intAttr(child, "number", "beam number")
			if err != nil {
				return false, err
			}
			if number == 0 {
				number = 1
			}
			raw, err := p.text()
			if err != nil {
				return false, err
			}
			bv, err := parseBeamValue(raw, p.off())
			if err != nil {
				return false, err
			}
			n.Beams = append(n.Beams, Beam{Number: number, Value: bv})
		case "notations":
			if err := p.parseNotations(n); err != nil {
				return false, err
			}
		case "lyric":
			l, err := p.parseLyric(child)
			if err != nil {
				return false, err
			}
			n.Lyrics = append(n.Lyrics, l)
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	if n.pitchContentCount() == 0 {
		return nil, &UnexpectedStructureError{
			Element: "note",
			Message: "none of pitch, rest, unpitched present",
			Offset:  p.off(),
		}
	}
	if n.Kind != GraceNote && !sawDuration {
		return nil, &MissingElementError{Parent: "note", Element: "duration", Offset: p.off()}
	}
	return n, nil
}

func (p *parser) parsePitch() (*Pitch, error) {
	pitch := &Pitch{}
	sawStep, sawOctave := false, false
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "step":
			raw, err := p.text()
			if err != nil {
				return false, err
			}
			step, err := parseStep(raw, p.off())
			if err != nil {
				return false, err
			}
			pitch.Step = step
			sawStep = true
		case "alter":
			v, err := p.floatText("alter")
			if err != nil {
				return false, err
			}
			pitch.Alter = &v
		case "octave":
			v, err := p.intText("octave")
			if err != nil {
				return false, err
			}
			pitch.Octave = v
			sawOctave = true
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if !sawStep {
		return nil, &MissingElementError{Parent: "pitch", Element: "step", Offset: p.off()}
	}
	if !sawOctave {
		return nil, &MissingElementError{Parent: "pitch", Element: "octave", Offset: p.off()}
	}
	return pitch, nil
}

func (p *parser) parseRest(start xml.StartElement) (*Rest, error) {
	rest := &Rest{}
	measure, err := p.yesNoAttr(start, "measure", "rest measure")
	if err != nil {
		return nil, err
	}
	rest.Measure = measure
	err = p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "display-step":
			raw, err := p.text()
			if err != nil {
				return false, err
			}
			step, err := parseStep(raw, p.off())
			if err != nil {
				return false, err
			}
			rest.DisplayStep = step
		case "display-octave":
			v, err := p.intText("display-octave")
			if err != nil {
				return false, err
			}
			rest.DisplayOctave = v
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return rest, nil
}

func (p *parser) parseUnpitched() (*Unpitched, error) {
	u := &Unpitched{}
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "display-step":
			raw, err := p.text()
			if err != nil {
				return false, err
			}
			step, err := parseStep(raw, p.off())
			if err != nil {
				return false, err
			}
			u.DisplayStep = step
		case "display-octave":
			v, err := p.intText("display-octave")
			if err != nil {
				return false, err
			}
			u.DisplayOctave = v
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (p *parser) parseAccidentalElem(start xml.StartElement) (*Accidental, error) {
	acc := &Accidental{}
	var err error
	if acc.Cautionary, err = p.yesNoAttr(start, "cautionary", "accidental cautionary"); err != nil {
		return nil, err
	}
	if acc.Editorial, err = p.yesNoAttr(start, "editorial", "accidental editorial"); err != nil {
		return nil, err
	}
	raw, err := p.text()
	if err != nil {
		return nil, err
	}
	value, err := parseAccidental(raw, p.off())
	if err != nil {
		return nil, err
	}
	acc.Value = value
	return acc, nil
}

func (p *parser) parseTimeModification() (*TimeModification, error) {
	tm := &TimeModification{}
	sawActual, sawNormal := false, false
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "actual-notes":
			v, err := p.intText("actual-notes")
			if err != nil {
				return false, err
			}
			tm.ActualNotes = v
			sawActual = true
		case "normal-notes":
			v, err := p.intText("normal-notes")
			if err != nil {
				return false, err
			}
			tm.NormalNotes = v
			sawNormal = true
		case "normal-type":
			raw, err := p.text()
			if err != nil {
				return false, err
			}
			t, err := parseNoteType(raw, p.off())
			if err != nil {
				return false, err
			}
			tm.NormalType = t
		case "normal-dot":
			if _, err := p.text(); err != nil {
				return false, err
			}
			tm.NormalDots++
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if !sawActual {
		return nil, &MissingElementError{Parent: "time-modification", Element: "actual-notes", Offset: p.off()}
	}
	if !sawNormal {
		return nil, &MissingElementError{Parent: "time-modification", Element: "normal-notes", Offset: p.off()}
	}
	return tm, nil
}

func (p *parser) parseNotehead(start xml.StartElement) (*Notehead, error) {
	nh := &Notehead{}
	var err error
	if nh.Filled, err = p.yesNoAttrPtr(start, "filled", "notehead filled"); err != nil {
		return nil, err
	}
	if nh.Parentheses, err = p.yesNoAttrPtr(start, "parentheses", "notehead parentheses"); err != nil {
		return nil, err
	}
	raw, err := p.text()
	if err != nil {
		return nil, err
	}
	value, err := parseNotehead(raw, p.off())
	if err != nil {
		return nil, err
	}
	nh.Value = value
	return nh, nil
}

// parseNotations flattens one notations container onto the note. A note
// with several containers in the source ends up with one merged list;
// emission writes a single container back.
func (p *parser) parseNotations(n *Note) error {
	return p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "tied":
			raw, ok := attrVal(child, "type")
			if !ok {
				return false, &MissingElementError{Parent: "tied", Element: "type", Offset: p.off()}
			}
			typ, err := parseTiedType(raw, p.off())
			if err != nil {
				return false, err
			}
			number, err := p.intAttr(child, "number", "tied number")
			if err != nil {
				return false, err
			}
			if err := p.skip(); err != nil {
				return false, err
			}
			n.Notations = append(n.Notations, &Tied{Type: typ, Number: number})
		case "slur":
			raw, ok := attrVal(child, "type")
			if !ok {
				return false, &MissingElementError{Parent: "slur", Element: "type", Offset: p.off()}
			}
			typ, err := parseStartStopContinue("slur", raw, p.off())
			if err != nil {
				return false, err
			}
			s := &Slur{Type: typ}
			if s.Number, err = p.intAttr(child, "number", "slur number"); err != nil {
				return false, err
			}
			if praw, ok := attrVal(child, "placement"); ok {
				if s.Placement, err = parsePlacement(praw, p.off()); err != nil {
					return false, err
				}
			}
			if err := p.skip(); err != nil {
				return false, err
			}
			n.Notations = append(n.Notations, s)
		case "tuplet":
			raw, ok := attrVal(child, "type")
			if !ok {
				return false, &MissingElementError{Parent: "tuplet", Element: "type", Offset: p.off()}
			}
			typ, err := parseStartStop("tuplet", raw, p.off())
			if err != nil {
				return false, err
			}
			tb := &TupletBracket{Type: typ}
			if tb.Number, err = p.intAttr(child, "number", "tuplet number"); err != nil {
				return false, err
			}
			if tb.Bracket, err = p.yesNoAttrPtr(child, "bracket", "tuplet bracket"); err != nil {
				return false, err
			}
			tb.ShowNum, _ = attrVal(child, "show-number")
			if err := p.skip(); err != nil {
				return false, err
			}
			n.Notations = append(n.Notations, tb)
		case "fermata":
			f := &Fermata{}
			if raw, ok := attrVal(child, "type"); ok {
				typ, err := parseFermataType(raw, p.off())
				if err != nil {
					return false, err
				}
				f.Type = typ
			}
			shape, err := p.text()
			if err != nil {
				return false, err
			}
			f.Shape = shape
			n.Notations = append(n.Notations, f)
		case "articulations":
			arts, err := p.parseArticulations()
			if err != nil {
				return false, err
			}
			n.Notations = append(n.Notations, arts)
		case "ornaments":
			orns, err := p.parseOrnaments()
			if err != nil {
				return false, err
			}
			n.Notations = append(n.Notations, orns)
		case "technical":
			tech, err := p.parseTechnical()
			if err != nil {
				return false, err
			}
			n.Notations = append(n.Notations, tech)
		case "arpeggiate":
			a := &Arpeggiate{}
			var err error
			if a.Number, err = p.intAttr(child, "number", "arpeggiate number"); err != nil {
				return false, err
			}
			if raw, ok := attrVal(child, "direction"); ok {
				if a.Direction, err = parseUpDown("arpeggiate direction", raw, p.off()); err != nil {
					return false, err
				}
			}
			if err := p.skip(); err != nil {
				return false, err
			}
			n.Notations = append(n.Notations, a)
		default:
			return false, nil
		}
		return true, nil
	})
}

func (p *parser) parseArticulations() (*Articulations, error) {
	arts := &Articulations{}
	err := p.children(func(child xml.StartElement) (bool, error) {
		name := child.Name.Local
		if !validArticulations[name] {
			return false, nil
		}
		m := Articulation{Name: name}
		if raw, ok := attrVal(child, "placement"); ok {
			placement, err := parsePlacement(raw, p.off())
			if err != nil {
				return false, err
			}
			m.Placement = placement
		}
		if err := p.skip(); err != nil {
			return false, err
		}
		arts.Marks = append(arts.Marks, m)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return arts, nil
}

func (p *parser) parseOrnaments() (*Ornaments, error) {
	orns := &Ornaments{}
	err := p.children(func(child xml.StartElement) (bool, error) {
		name := child.Name.Local
		if name == "accidental-mark" {
			// Attaches to the preceding ornament; a leading stray mark
			// has nothing to attach to and is dropped.
			raw, err := p.text()
			if err != nil {
				return false, err
			}
			if len(orns.Marks) == 0 {
				return true, nil
			}
			acc, err := parseAccidental(raw, p.off())
			if err != nil {
				return false, err
			}
			last := &orns.Marks[len(orns.Marks)-1]
			last.Accidentals = append(last.Accidentals, acc)
			return true, nil
		}
		if !validOrnaments[name] {
			return false, nil
		}
		m := Ornament{Name: name}
		if raw, ok := attrVal(child, "placement"); ok {
			placement, err := parsePlacement(raw, p.off())
			if err != nil {
				return false, err
			}
			m.Placement = placement
		}
		if err := p.skip(); err != nil {
			return false, err
		}
		orns.Marks = append(orns.Marks, m)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return orns, nil
}

func (p *parser) parseTechnical() (*Technical, error) {
	tech := &Technical{}
	err := p.children(func(child xml.StartElement) (bool, error) {
		name := child.Name.Local
		if !validTechnical[name] {
			return false, nil
		}
		text, err := p.text()
		if err != nil {
			return false, err
		}
		tech.Marks = append(tech.Marks, TechnicalMark{Name: name, Text: text})
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return tech, nil
}

func (p *parser) parseLyric(start xml.StartElement) (Lyric, error) {
	l := Lyric{}
	l.Number, _ = attrVal(start, "number")
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "syllabic":
			raw, err := p.text()
			if err != nil {
				return false, err
			}
			syl, err := parseSyllabic(raw, p.off())
			if err != nil {
				return false, err
			}
			l.Syllabic = syl
		case "text":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			l.Text = v
		case "extend":
			if _, err := p.text(); err != nil {
				return false, err
			}
			l.Extend = true
		default:
			return false, nil
		}
		return true, nil
	})
	return l, err
}
