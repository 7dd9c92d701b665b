package mxml

import "strconv"

func (e *emitter) emitMeasure(m *Measure) error {
	e.measure = m.Number
	attrs := []attr{{"number", m.Number}}
	if m.Implicit {
		attrs = append(attrs, attr{"implicit", "yes"})
	}
	e.w.open("measure", attrs...)
	for i, md := range m.Music {
		e.noteIndex = i
		var err error
		switch v := md.(type) {
		case *Note:
			err = e.emitNote(v)
		case *Backup:
			err = e.emitBackup(v)
		case *Forward:
			err = e.emitForward(v)
		case *Direction:
			e.emitDirection(v)
		case *Attributes:
			err = e.emitAttributes(v)
		case *Barline:
			e.emitBarline(v)
		case *Harmony:
			err = e.emitHarmony(v)
		case *FiguredBass:
			e.emitFiguredBass(v)
		case *Print:
			e.emitPrint(v)
		case *Sound:
			e.emitSound(v)
		default:
			err = e.invalid("measure", "unknown music data variant %T", md)
		}
		if err != nil {
			return err
		}
	}
	e.w.close("measure")
	e.noteIndex = -1
	return nil
}

func (e *emitter) emitBackup(b *Backup) error {
	if b.Duration <= 0 {
		return e.invalid("backup", "duration must be positive, have %d", b.Duration)
	}
	e.w.open("backup")
	e.w.textInt("duration", b.Duration)
	e.w.close("backup")
	return nil
}

func (e *emitter) emitForward(f *Forward) error {
	if f.Duration <= 0 {
		return e.invalid("forward", "duration must be positive, have %d", f.Duration)
	}
	e.w.open("forward")
	e.w.textInt("duration", f.Duration)
	e.w.textOpt("voice", f.Voice)
	if f.Staff > 0 {
		e.w.textInt("staff", f.Staff)
	}
	e.w.close("forward")
	return nil
}

func (e *emitter) emitAttributes(a *Attributes) error {
	e.w.open("attributes")
	if a.Divisions != nil {
		if *a.Divisions <= 0 {
			return e.invalid("divisions", "divisions per quarter must be positive, have %d", *a.Divisions)
		}
		e.divisions = *a.Divisions
		e.w.textInt("divisions", *a.Divisions)
	}
	for _, k := range a.Keys {
		var attrs []attr
		if k.Number > 0 {
			attrs = append(attrs, attr{"number", strconv.Itoa(k.Number)})
		}
		e.w.open("key", attrs...)
		e.w.textInt("fifths", k.Fifths)
		e.w.textOpt("mode", string(k.Mode))
		e.w.close("key")
	}
	for _, t := range a.Times {
		var attrs []attr
		if t.Number > 0 {
			attrs = append(attrs, attr{"number", strconv.Itoa(t.Number)})
		}
		e.w.open("time", attrs...)
		if t.SenzaMisura {
			e.w.empty("senza-misura")
		} else {
			e.w.text("beats", t.Beats)
			e.w.text("beat-type", t.BeatType)
		}
		e.w.close("time")
	}
	if a.Staves != nil {
		e.w.textInt("staves", *a.Staves)
	}
	for _, c := range a.Clefs {
		var attrs []attr
		if c.Number > 0 {
			attrs = append(attrs, attr{"number", strconv.Itoa(c.Number)})
		}
		e.w.open("clef", attrs...)
		e.w.text("sign", string(c.Sign))
		if c.Line > 0 {
			e.w.textInt("line", c.Line)
		}
		if c.OctaveChange != 0 {
			e.w.textInt("clef-octave-change", c.OctaveChange)
		}
		e.w.close("clef")
	}
	for _, tr := range a.Transposes {
		e.w.open("transpose")
		if tr.Diatonic != 0 {
			e.w.textInt("diatonic", tr.Diatonic)
		}
		e.w.textInt("chromatic", tr.Chromatic)
		if tr.OctaveChange != 0 {
			e.w.textInt("octave-change", tr.OctaveChange)
		}
		if tr.Double {
			e.w.empty("double")
		}
		e.w.close("transpose")
	}
	e.w.close("attributes")
	return nil
}

func (e *emitter) emitBarline(b *Barline) {
	var attrs []attr
	if b.Location != "" {
		attrs = append(attrs, attr{"location", string(b.Location)})
	}
	e.w.open("barline", attrs...)
	e.w.textOpt("bar-style", string(b.Style))
	if b.Ending != nil {
		endAttrs := []attr{
			{"number", b.Ending.Number},
			{"type", string(b.Ending.Type)},
		}
		if b.Ending.Text == "" {
			e.w.empty("ending", endAttrs...)
		} else {
			e.w.text("ending", b.Ending.Text, endAttrs...)
		}
	}
	if b.Repeat != nil {
		repAttrs := []attr{{"direction", string(b.Repeat.Direction)}}
		if b.Repeat.Times > 0 {
			repAttrs = append(repAttrs, attr{"times", strconv.Itoa(b.Repeat.Times)})
		}
		e.w.empty("repeat", repAttrs...)
	}
	e.w.close("barline")
}

func (e *emitter) emitDirection(d *Direction) {
	var attrs []attr
	if d.Placement != "" {
		attrs = append(attrs, attr{"placement", string(d.Placement)})
	}
	e.w.open("direction", attrs...)
	for _, dt := range d.Types {
		e.w.open("direction-type")
		switch v := dt.(type) {
		case *Dynamics:
			e.w.open("dynamics")
			for _, dyn := range v.Values {
				e.w.empty(string(dyn))
			}
			e.w.close("dynamics")
		case *Wedge:
			wedgeAttrs := []attr{{"type", string(v.Type)}}
			if v.Number > 0 {
				wedgeAttrs = append(wedgeAttrs, attr{"number", strconv.Itoa(v.Number)})
			}
			if v.Spread != nil {
				wedgeAttrs = append(wedgeAttrs, attr{"spread", formatFloat(*v.Spread)})
			}
			e.w.empty("wedge", wedgeAttrs...)
		case *Metronome:
			var metAttrs []attr
			if v.Parentheses {
				metAttrs = append(metAttrs, attr{"parentheses", "yes"})
			}
			e.w.open("metronome", metAttrs...)
			e.w.text("beat-unit", string(v.BeatUnit))
			for i := 0; i < v.BeatUnitDots; i++ {
				e.w.empty("beat-unit-dot")
			}
			e.w.text("per-minute", v.PerMinute)
			e.w.close("metronome")
		case *Words:
			e.w.text("words", v.Text)
		case *Segno:
			e.w.empty("segno")
		case *Coda:
			e.w.empty("coda")
		}
		e.w.close("direction-type")
	}
	if d.Offset != nil {
		e.w.textInt("offset", *d.Offset)
	}
	e.w.textOpt("voice", d.Voice)
	if d.Staff > 0 {
		e.w.textInt("staff", d.Staff)
	}
	if d.Sound != nil {
		e.emitSound(d.Sound)
	}
	e.w.close("direction")
}

func (e *emitter) emitSound(s *Sound) {
	var attrs []attr
	if s.Tempo != nil {
		attrs = append(attrs, attr{"tempo", formatFloat(*s.Tempo)})
	}
	if s.Dynamics != nil {
		attrs = append(attrs, attr{"dynamics", formatFloat(*s.Dynamics)})
	}
	e.w.empty("sound", attrs...)
}

func (e *emitter) emitHarmony(h *Harmony) error {
	if h.Root == nil {
		return e.invalid("harmony", "missing root")
	}
	if h.Kind == "" {
		return e.invalid("harmony", "missing kind")
	}
	if h.Bass != nil && h.Bass.Step == "" {
		return e.invalid("harmony", "bass missing step")
	}
	e.w.open("harmony")
	e.w.open("root")
	e.w.text("root-step", string(h.Root.Step))
	if h.Root.Alter != nil {
		e.w.text("root-alter", formatFloat(*h.Root.Alter))
	}
	e.w.close("root")
	e.w.text("kind", h.Kind)
	if h.Inversion > 0 {
		e.w.textInt("inversion", h.Inversion)
	}
	if h.Bass != nil {
		e.w.open("bass")
		e.w.text("bass-step", string(h.Bass.Step))
		if h.Bass.Alter != nil {
			e.w.text("bass-alter", formatFloat(*h.Bass.Alter))
		}
		e.w.close("bass")
	}
	e.w.close("harmony")
	return nil
}

func (e *emitter) emitFiguredBass(fb *FiguredBass) {
	e.w.open("figured-bass")
	for _, f := range fb.Figures {
		e.w.open("figure")
		e.w.textOpt("prefix", f.Prefix)
		e.w.textOpt("figure-number", f.Number)
		e.w.textOpt("suffix", f.Suffix)
		e.w.close("figure")
	}
	if fb.Duration > 0 {
		e.w.textInt("duration", fb.Duration)
	}
	e.w.close("figured-bass")
}

func (e *emitter) emitPrint(p *Print) {
	var attrs []attr
	if p.NewSystem != nil {
		attrs = append(attrs, attr{"new-system", yesNo(*p.NewSystem)})
	}
	if p.NewPage != nil {
		attrs = append(attrs, attr{"new-page", yesNo(*p.NewPage)})
	}
	e.w.empty("print", attrs...)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
