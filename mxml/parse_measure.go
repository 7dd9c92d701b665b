package mxml

import "encoding/xml"

func (p *parser) parseBackup() (*Backup, error) {
	b := &Backup{}
	sawDuration := false
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "duration":
			v, err := p.intText("backup duration")
			if err != nil {
				return false, err
			}
			b.Duration = v
			sawDuration = true
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if !sawDuration {
		return nil, &MissingElementError{Parent: "backup", Element: "duration", Offset: p.off()}
	}
	return b, nil
}

func (p *parser) parseForward() (*Forward, error) {
	f := &Forward{}
	sawDuration := false
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "duration":
			v, err := p.intText("forward duration")
			if err != nil {
				return false, err
			}
			f.Duration = v
			sawDuration = true
		case "voice":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			f.Voice = v
		case "staff":
			v, err := p.intText("forward staff")
			if err != nil {
				return false, err
			}
			f.Staff = v
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if !sawDuration {
		return nil, &MissingElementError{Parent: "forward", Element: "duration", Offset: p.off()}
	}
	return f, nil
}

func (p *parser) parseAttributes() (*Attributes, error) {
	a := &Attributes{}
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "divisions":
			v, err := p.intText("divisions")
			if err != nil {
				return false, err
			}
			a.Divisions = &v
		case "key":
			k, err := p.parseKey(child)
			if err != nil {
				return false, err
			}
			a.Keys = append(a.Keys, k)
		case "time":
			t, err := p.parseTime(child)
			if err != nil {
				return false, err
			}
			a.Times = append(a.Times, t)
		case "staves":
			v, err := p.intText("staves")
			if err != nil {
				return false, err
			}
			a.Staves = &v
		case "clef":
			c, err := p.parseClef(child)
			if err != nil {
				return false, err
			}
			a.Clefs = append(a.Clefs, c)
		case "transpose":
			t, err := p.parseTranspose()
			if err != nil {
				return false, err
			}
			a.Transposes = append(a.Transposes, t)
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (p *parser) parseKey(start xml.StartElement) (Key, error) {
	k := Key{}
	number, err := p.intAttr(start, "number", "key number")
	if err != nil {
		return k, err
	}
	k.Number = number
	sawFifths := false
	sawKeyStep := false
	err = p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "fifths":
			v, err := p.intText("fifths")
			if err != nil {
				return false, err
			}
			k.Fifths = v
			sawFifths = true
		case "mode":
			raw, err := p.text()
			if err != nil {
				return false, err
			}
			mode, err := parseMode(raw, p.off())
			if err != nil {
				return false, err
			}
			k.Mode = mode
		case "key-step", "key-alter", "key-accidental":
			sawKeyStep = true
			return false, nil
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return k, err
	}
	if !sawFifths {
		if sawKeyStep {
			return k, &UnexpectedStructureError{
				Element: "key",
				Message: "non-traditional (non-fifths) key signatures are not supported",
				Offset:  p.off(),
			}
		}
		return k, &MissingElementError{Parent: "key", Element: "fifths", Offset: p.off()}
	}
	return k, nil
}

func (p *parser) parseTime(start xml.StartElement) (Time, error) {
	t := Time{}
	number, err := p.intAttr(start, "number", "time number")
	if err != nil {
		return t, err
	}
	t.Number = number
	err = p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "beats":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			t.Beats = v
		case "beat-type":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			t.BeatType = v
		case "senza-misura":
			if _, err := p.text(); err != nil {
				return false, err
			}
			t.SenzaMisura = true
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return t, err
	}
	if !t.SenzaMisura {
		if t.Beats == "" {
			return t, &MissingElementError{Parent: "time", Element: "beats", Offset: p.off()}
		}
		if t.BeatType == "" {
			return t, &MissingElementError{Parent: "time", Element: "beat-type", Offset: p.off()}
		}
	}
	return t, nil
}

func (p *parser) parseClef(start xml.StartElement) (Clef, error) {
	c := Clef{}
	number, err := p.intAttr(start, "number", "clef number")
	if err != nil {
		return c, err
	}
	c.Number = number
	sawSign := false
	err = p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "sign":
			raw, err := p.text()
			if err != nil {
				return false, err
			}
			sign, err := parseClefSign(raw, p.off())
			if err != nil {
				return false, err
			}
			c.Sign = sign
			sawSign = true
		case "line":
			v, err := p.intText("clef line")
			if err != nil {
				return false, err
			}
			c.Line = v
		case "clef-octave-change":
			v, err := p.intText("clef-octave-change")
			if err != nil {
				return false, err
			}
			c.OctaveChange = v
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return c, err
	}
	if !sawSign {
		return c, &MissingElementError{Parent: "clef", Element: "sign", Offset: p.off()}
	}
	return c, nil
}

func (p *parser) parseTranspose() (Transpose, error) {
	t := Transpose{}
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "diatonic":
			v, err := p.intText("diatonic")
			if err != nil {
				return false, err
			}
			t.Diatonic = v
		case "chromatic":
			v, err := p.intText("chromatic")
			if err != nil {
				return false, err
			}
			t.Chromatic = v
		case "octave-change":
			v, err := p.intText("octave-change")
			if err != nil {
				return false, err
			}
			t.OctaveChange = v
		case "double":
			if _, err := p.text(); err != nil {
				return false, err
			}
			t.Double = true
		default:
			return false, nil
		}
		return true, nil
	})
	return t, err
}

func (p *parser) parseBarline(start xml.StartElement) (*Barline, error) {
	b := &Barline{}
	if raw, ok := attrVal(start, "location"); ok {
		loc, err := parseBarlineLocation(raw, p.off())
		if err != nil {
			return nil, err
		}
		b.Location = loc
	}
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "bar-style":
			raw, err := p.text()
			if err != nil {
				return false, err
			}
			style, err := parseBarStyle(raw, p.off())
			if err != nil {
				return false, err
			}
			b.Style = style
		case "ending":
			e := &Ending{}
			e.Number, _ = attrVal(child, "number")
			raw, ok := attrVal(child, "type")
			if !ok {
				return false, &MissingElementError{Parent: "ending", Element: "type", Offset: p.off()}
			}
			typ, err := parseEndingType(raw, p.off())
			if err != nil {
				return false, err
			}
			e.Type = typ
			text, err := p.text()
			if err != nil {
				return false, err
			}
			e.Text = text
			b.Ending = e
		case "repeat":
			r := &Repeat{}
			raw, ok := attrVal(child, "direction")
			if !ok {
				return false, &MissingElementError{Parent: "repeat", Element: "direction", Offset: p.off()}
			}
			dir, err := parseRepeatDirection(raw, p.off())
			if err != nil {
				return false, err
			}
			r.Direction = dir
			times, err := p.intAttr(child, "times", "repeat times")
			if err != nil {
				return false, err
			}
			r.Times = times
			if err := p.skip(); err != nil {
				return false, err
			}
			b.Repeat = r
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (p *parser) parseDirection(start xml.StartElement) (*Direction, error) {
	d := &Direction{}
	if raw, ok := attrVal(start, "placement"); ok {
		placement, err := parsePlacement(raw, p.off())
		if err != nil {
			return nil, err
		}
		d.Placement = placement
	}
	sawTypeWrapper := false
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "direction-type":
			sawTypeWrapper = true
			if err := p.parseDirectionTypes(d); err != nil {
				return false, err
			}
		case "offset":
			v, err := p.intText("offset")
			if err != nil {
				return false, err
			}
			d.Offset = &v
		case "voice":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			d.Voice = v
		case "staff":
			v, err := p.intText("direction staff")
			if err != nil {
				return false, err
			}
			d.Staff = v
		case "sound":
			s, err := p.parseSound(child)
			if err != nil {
				return false, err
			}
			d.Sound = s
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if len(d.Types) == 0 {
		// A wrapper whose content is all unrecognized (pedal,
		// rehearsal, octave-shift, ...) drops the whole direction;
		// only a direction with no wrapper at all is an error.
		if sawTypeWrapper {
			return nil, nil
		}
		return nil, &MissingElementError{Parent: "direction", Element: "direction-type", Offset: p.off()}
	}
	return d, nil
}

// parseDirectionTypes decodes one direction-type wrapper, appending each
// recognized content entry to the direction.
func (p *parser) parseDirectionTypes(d *Direction) error {
	return p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "dynamics":
			dyn, err := p.parseDynamics()
			if err != nil {
				return false, err
			}
			d.Types = append(d.Types, dyn)
		case "wedge":
			w := &Wedge{}
			raw, ok := attrVal(child, "type")
			if !ok {
				return false, &MissingElementError{Parent: "wedge", Element: "type", Offset: p.off()}
			}
			typ, err := parseWedgeType(raw, p.off())
			if err != nil {
				return false, err
			}
			w.Type = typ
			if w.Number, err = p.intAttr(child, "number", "wedge number"); err != nil {
				return false, err
			}
			if w.Spread, err = p.floatAttr(child, "spread", "wedge spread"); err != nil {
				return false, err
			}
			if err := p.skip(); err != nil {
				return false, err
			}
			d.Types = append(d.Types, w)
		case "metronome":
			m, err := p.parseMetronome(child)
			if err != nil {
				return false, err
			}
			d.Types = append(d.Types, m)
		case "words":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			d.Types = append(d.Types, &Words{Text: v})
		case "segno":
			if _, err := p.text(); err != nil {
				return false, err
			}
			d.Types = append(d.Types, &Segno{})
		case "coda":
			if _, err := p.text(); err != nil {
				return false, err
			}
			d.Types = append(d.Types, &Coda{})
		default:
			return false, nil
		}
		return true, nil
	})
}

func (p *parser) parseDynamics() (*Dynamics, error) {
	dyn := &Dynamics{}
	err := p.children(func(child xml.StartElement) (bool, error) {
		name := DynamicsValue(child.Name.Local)
		if !validDynamics[name] {
			return false, nil
		}
		if _, err := p.text(); err != nil {
			return false, err
		}
		dyn.Values = append(dyn.Values, name)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return dyn, nil
}

func (p *parser) parseMetronome(start xml.StartElement) (*Metronome, error) {
	m := &Metronome{}
	parens, err := p.yesNoAttr(start, "parentheses", "metronome parentheses")
	if err != nil {
		return nil, err
	}
	m.Parentheses = parens
	err = p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "beat-unit":
			raw, err := p.text()
			if err != nil {
				return false, err
			}
			bu, err := parseNoteType(raw, p.off())
			if err != nil {
				return false, err
			}
			m.BeatUnit = bu
		case "beat-unit-dot":
			if _, err := p.text(); err != nil {
				return false, err
			}
			m.BeatUnitDots++
		case "per-minute":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			m.PerMinute = v
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if m.BeatUnit == "" {
		return nil, &MissingElementError{Parent: "metronome", Element: "beat-unit", Offset: p.off()}
	}
	if m.PerMinute == "" {
		return nil, &MissingElementError{Parent: "metronome", Element: "per-minute", Offset: p.off()}
	}
	return m, nil
}

func (p *parser) parseHarmony() (*Harmony, error) {
	h := &Harmony{}
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "root":
			root := &HarmonyRoot{}
			err := p.children(func(rc xml.StartElement) (bool, error) {
				switch rc.Name.Local {
				case "root-step":
					raw, err := p.text()
					if err != nil {
						return false, err
					}
					step, err := parseStep(raw, p.off())
					if err != nil {
						return false, err
					}
					root.Step = step
				case "root-alter":
					v, err := p.floatText("root-alter")
					if err != nil {
						return false, err
					}
					root.Alter = &v
				default:
					return false, nil
				}
				return true, nil
			})
			if err != nil {
				return false, err
			}
			if root.Step == "" {
				return false, &MissingElementError{Parent: "root", Element: "root-step", Offset: p.off()}
			}
			h.Root = root
		case "kind":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			h.Kind = v
		case "inversion":
			v, err := p.intText("inversion")
			if err != nil {
				return false, err
			}
			h.Inversion = v
		case "bass":
			bass := &HarmonyBass{}
			err := p.children(func(bc xml.StartElement) (bool, error) {
				switch bc.Name.Local {
				case "bass-step":
					raw, err := p.text()
					if err != nil {
						return false, err
					}
					step, err := parseStep(raw, p.off())
					if err != nil {
						return false, err
					}
					bass.Step = step
				case "bass-alter":
					v, err := p.floatText("bass-alter")
					if err != nil {
						return false, err
					}
					bass.Alter = &v
				default:
					return false, nil
				}
				return true, nil
			})
			if err != nil {
				return false, err
			}
			if bass.Step == "" {
				return false, &MissingElementError{Parent: "bass", Element: "bass-step", Offset: p.off()}
			}
			h.Bass = bass
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if h.Root == nil {
		return nil, &MissingElementError{Parent: "harmony", Element: "root", Offset: p.off()}
	}
	if h.Kind == "" {
		return nil, &MissingElementError{Parent: "harmony", Element: "kind", Offset: p.off()}
	}
	return h, nil
}

func (p *parser) parseFiguredBass() (*FiguredBass, error) {
	fb := &FiguredBass{}
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "figure":
			f := Figure{}
			err := p.children(func(fc xml.StartElement) (bool, error) {
				switch fc.Name.Local {
				case "prefix":
					v, err := p.text()
					if err != nil {
						return false, err
					}
					f.Prefix = v
				case "figure-number":
					v, err := p.text()
					if err != nil {
						return false, err
					}
					f.Number = v
				case "suffix":
					v, err := p.text()
					if err != nil {
						return false, err
					}
					f.Suffix = v
				default:
					return false, nil
				}
				return true, nil
			})
			if err != nil {
				return false, err
			}
			fb.Figures = append(fb.Figures, f)
		case "duration":
			v, err := p.intText("figured-bass duration")
			if err != nil {
				return false, err
			}
			fb.Duration = v
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return fb, nil
}

func (p *parser) parsePrint(start xml.StartElement) (*Print, error) {
	pr := &Print{}
	var err error
	if pr.NewSystem, err = p.yesNoAttrPtr(start, "new-system", "print new-system"); err != nil {
		return nil, err
	}
	if pr.NewPage, err = p.yesNoAttrPtr(start, "new-page", "print new-page"); err != nil {
		return nil, err
	}
	if err := p.skip(); err != nil {
		return nil, err
	}
	return pr, nil
}

func (p *parser) parseSound(start xml.StartElement) (*Sound, error) {
	s := &Sound{}
	var err error
	if s.Tempo, err = p.floatAttr(start, "tempo", "sound tempo"); err != nil {
		return nil, err
	}
	if s.Dynamics, err = p.floatAttr(start, "dynamics", "sound dynamics"); err != nil {
		return nil, err
	}
	if err := p.skip(); err != nil {
		return nil, err
	}
	return s, nil
}
