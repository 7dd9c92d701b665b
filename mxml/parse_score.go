package mxml

import "encoding/xml"

func (p *parser) parseScore(root xml.StartElement) (*Score, error) {
	s := &Score{}
	sawPartList := false
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "work":
			w, err := p.parseWork()
			if err != nil {
				return false, err
			}
			s.Work = w
		case "movement-number":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			s.MovementNumber = v
		case "movement-title":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			s.MovementTitle = v
		case "identification":
			id, err := p.parseIdentification()
			if err != nil {
				return false, err
			}
			s.Identification = id
		case "credit":
			c, err := p.parseCredit(child)
			if err != nil {
				return false, err
			}
			s.Credits = append(s.Credits, c)
		case "part-list":
			list, err := p.parsePartList()
			if err != nil {
				return false, err
			}
			s.PartList = list
			sawPartList = true
		case "part":
			part, err := p.parsePart(child)
			if err != nil {
				return false, err
			}
			s.Parts = append(s.Parts, part)
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if !sawPartList {
		return nil, &MissingElementError{Parent: rootPartwise, Element: "part-list", Offset: p.off()}
	}
	if len(s.Parts) == 0 {
		return nil, &MissingElementError{Parent: rootPartwise, Element: "part", Offset: p.off()}
	}
	return s, nil
}

func (p *parser) parseWork() (*Work, error) {
	w := &Work{}
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "work-number":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			w.Number = v
		case "work-title":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			w.Title = v
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (p *parser) parseIdentification() (*Identification, error) {
	id := &Identification{}
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "creator":
			typ, _ := attrVal(child, "type")
			name, err := p.text()
			if err != nil {
				return false, err
			}
			id.Creators = append(id.Creators, Creator{Type: typ, Name: name})
		case "rights":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			id.Rights = append(id.Rights, v)
		case "encoding":
			enc, err := p.parseEncoding()
			if err != nil {
				return false, err
			}
			id.Encoding = enc
		case "source":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			id.Source = v
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return id, nil
}

func (p *parser) parseEncoding() (*Encoding, error) {
	enc := &Encoding{}
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "software":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			enc.Software = append(enc.Software, v)
		case "encoding-date":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			enc.Date = v
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return enc, nil
}

func (p *parser) parseCredit(start xml.StartElement) (Credit, error) {
	c := Credit{}
	page, err := p.intAttr(start, "page", "credit page")
	if err != nil {
		return c, err
	}
	c.Page = page
	err = p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "credit-words":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			c.Words = append(c.Words, v)
		default:
			return false, nil
		}
		return true, nil
	})
	return c, err
}

func (p *parser) parsePartList() ([]ScorePart, error) {
	var list []ScorePart
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "score-part":
			sp, err := p.parseScorePart(child)
			if err != nil {
				return false, err
			}
			list = append(list, sp)
		default:
			// part-group and friends are layout-only; dropped.
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (p *parser) parseScorePart(start xml.StartElement) (ScorePart, error) {
	sp := ScorePart{}
	id, ok := attrVal(start, "id")
	if !ok {
		return sp, &MissingElementError{Parent: "score-part", Element: "id", Offset: p.off()}
	}
	sp.ID = id
	sawName := false
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "part-name":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			sp.Name = v
			sawName = true
		case "part-abbreviation":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			sp.Abbreviation = v
		case "score-instrument":
			inst, err := p.parseScoreInstrument(child)
			if err != nil {
				return false, err
			}
			sp.Instruments = append(sp.Instruments, inst)
		case "midi-device":
			dev := MIDIDevice{}
			dev.ID, _ = attrVal(child, "id")
			port, err := p.intAttr(child, "port", "midi-device port")
			if err != nil {
				return false, err
			}
			dev.Port = port
			name, err := p.text()
			if err != nil {
				return false, err
			}
			dev.Name = name
			sp.MIDIDevices = append(sp.MIDIDevices, dev)
		case "midi-instrument":
			mi, err := p.parseMIDIInstrument(child)
			if err != nil {
				return false, err
			}
			sp.MIDIInstrs = append(sp.MIDIInstrs, mi)
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return sp, err
	}
	if !sawName {
		return sp, &MissingElementError{Parent: "score-part", Element: "part-name", Offset: p.off()}
	}
	return sp, nil
}

func (p *parser) parseScoreInstrument(start xml.StartElement) (ScoreInstrument, error) {
	inst := ScoreInstrument{}
	id, ok := attrVal(start, "id")
	if !ok {
		return inst, &MissingElementError{Parent: "score-instrument", Element: "id", Offset: p.off()}
	}
	inst.ID = id
	sawName := false
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "instrument-name":
			v, err := p.text()
			if err != nil {
				return false, err
			}
			inst.Name = v
			sawName = true
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return inst, err
	}
	if !sawName {
		return inst, &MissingElementError{Parent: "score-instrument", Element: "instrument-name", Offset: p.off()}
	}
	return inst, nil
}

func (p *parser) parseMIDIInstrument(start xml.StartElement) (MIDIInstrument, error) {
	mi := MIDIInstrument{}
	id, ok := attrVal(start, "id")
	if !ok {
		return mi, &MissingElementError{Parent: "midi-instrument", Element: "id", Offset: p.off()}
	}
	mi.ID = id
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "midi-channel":
			v, err := p.intText("midi-channel")
			if err != nil {
				return false, err
			}
			mi.Channel = v
		case "midi-program":
			v, err := p.intText("midi-program")
			if err != nil {
				return false, err
			}
			mi.Program = v
		case "volume":
			v, err := p.floatText("volume")
			if err != nil {
				return false, err
			}
			mi.Volume = &v
		case "pan":
			v, err := p.floatText("pan")
			if err != nil {
				return false, err
			}
			mi.Pan = &v
		default:
			return false, nil
		}
		return true, nil
	})
	return mi, err
}

func (p *parser) parsePart(start xml.StartElement) (Part, error) {
	part := Part{}
	id, ok := attrVal(start, "id")
	if !ok {
		return part, &MissingElementError{Parent: "part", Element: "id", Offset: p.off()}
	}
	part.ID = id
	err := p.children(func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "measure":
			m, err := p.parseMeasure(child)
			if err != nil {
				return false, err
			}
			part.Measures = append(part.Measures, m)
		default:
			return false, nil
		}
		return true, nil
	})
	return part, err
}

func (p *parser) parseMeasure(start xml.StartElement) (Measure, error) {
	m := Measure{}
	number, ok := attrVal(start, "number")
	if !ok {
		return m, &MissingElementError{Parent: "measure", Element: "number", Offset: p.off()}
	}
	m.Number = number
	implicit, err := p.yesNoAttr(start, "implicit", "measure implicit")
	if err != nil {
		return m, err
	}
	m.Implicit = implicit
	err = p.children(func(child xml.StartElement) (bool, error) {
		md, handled, err := p.parseMusicData(child)
		if err != nil {
			return false, err
		}
		if !handled {
			return false, nil
		}
		if md != nil {
			m.Music = append(m.Music, md)
		}
		return true, nil
	})
	return m, err
}

// parseMusicData dispatches one measure child to its decoder. Unknown
// names report handled=false so the caller's skip policy applies.
func (p *parser) parseMusicData(child xml.StartElement) (MusicData, bool, error) {
	switch child.Name.Local {
	case "note":
		n, err := p.parseNote(child)
		return n, true, err
	case "backup":
		b, err := p.parseBackup()
		return b, true, err
	case "forward":
		f, err := p.parseForward()
		return f, true, err
	case "direction":
		d, err := p.parseDirection(child)
		if d == nil {
			return nil, true, err
		}
		return d, true, err
	case "attributes":
		a, err := p.parseAttributes()
		return a, true, err
	case "barline":
		b, err := p.parseBarline(child)
		return b, true, err
	case "harmony":
		h, err := p.parseHarmony()
		return h, true, err
	case "figured-bass":
		fb, err := p.parseFiguredBass()
		return fb, true, err
	case "print":
		pr, err := p.parsePrint(child)
		return pr, true, err
	case "sound":
		s, err := p.parseSound(child)
		return s, true, err
	default:
		return nil, false, nil
	}
}
