package mxml

import (
	"fmt"
	"strconv"
	"strings"
)

// Document framing. The doctype public identifier is fixed by the
// format; the version attribute on the root element must match it.
const (
	xmlDeclaration  = `<?xml version="1.0" encoding="UTF-8"?>`
	doctype         = `<!DOCTYPE score-partwise PUBLIC "-//Recordare//DTD MusicXML 3.1 Partwise//EN" "http://www.musicxml.org/dtds/partwise.dtd">`
	documentVersion = "3.1"
	rootPartwise    = "score-partwise"
	rootTimewise    = "score-timewise"
)

// EmitOptions configures document emission.
type EmitOptions struct {
	// Indent is the per-level indentation string.
	Indent string
}

// DefaultEmitOptions returns the canonical two-space indentation.
func DefaultEmitOptions() EmitOptions {
	return EmitOptions{Indent: "  "}
}

// Emit writes the score as a complete document: declaration, doctype,
// root element, children in schema order. Emission is canonical — equal
// scores produce byte-identical text — and side-effect free. It fails
// only when the tree violates a cross-field invariant (InvalidDataError).
func Emit(s *Score) (string, error) {
	return EmitWithOptions(s, DefaultEmitOptions())
}

// EmitWithOptions emits with custom options.
func EmitWithOptions(s *Score, opts EmitOptions) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	e := &emitter{w: xmlWriter{indent: opts.Indent}}
	e.w.raw(xmlDeclaration)
	e.w.raw(doctype)
	e.w.open(rootPartwise, attr{"version", documentVersion})
	e.emitHeader(s)
	for i := range s.Parts {
		if err := e.emitPart(&s.Parts[i]); err != nil {
			return "", err
		}
	}
	e.w.close(rootPartwise)
	return e.w.String(), nil
}

// emitter walks the tree, tracking the active divisions scale and the
// current location for error reporting.
type emitter struct {
	w xmlWriter

	part      string
	measure   string
	noteIndex int
	divisions int // active divisions per quarter, 0 = not yet declared
}

func (e *emitter) emitHeader(s *Score) {
	if s.Work != nil {
		e.w.open("work")
		e.w.textOpt("work-number", s.Work.Number)
		e.w.textOpt("work-title", s.Work.Title)
		e.w.close("work")
	}
	e.w.textOpt("movement-number", s.MovementNumber)
	e.w.textOpt("movement-title", s.MovementTitle)
	if id := s.Identification; id != nil {
		e.w.open("identification")
		for _, c := range id.Creators {
			e.w.text("creator", c.Name, attr{"type", c.Type})
		}
		for _, r := range id.Rights {
			e.w.text("rights", r)
		}
		if id.Encoding != nil {
			e.w.open("encoding")
			for _, sw := range id.Encoding.Software {
				e.w.text("software", sw)
			}
			e.w.textOpt("encoding-date", id.Encoding.Date)
			e.w.close("encoding")
		}
		e.w.textOpt("source", id.Source)
		e.w.close("identification")
	}
	for _, c := range s.Credits {
		var attrs []attr
		if c.Page > 0 {
			attrs = append(attrs, attr{"page", strconv.Itoa(c.Page)})
		}
		e.w.open("credit", attrs...)
		for _, words := range c.Words {
			e.w.text("credit-words", words)
		}
		e.w.close("credit")
	}
	e.emitPartList(s.PartList)
}

func (e *emitter) emitPartList(list []ScorePart) {
	e.w.open("part-list")
	for i := range list {
		sp := &list[i]
		e.w.open("score-part", attr{"id", sp.ID})
		e.w.text("part-name", sp.Name)
		e.w.textOpt("part-abbreviation", sp.Abbreviation)
		for _, inst := range sp.Instruments {
			e.w.open("score-instrument", attr{"id", inst.ID})
			e.w.text("instrument-name", inst.Name)
			e.w.close("score-instrument")
		}
		for _, dev := range sp.MIDIDevices {
			var attrs []attr
			if dev.ID != "" {
				attrs = append(attrs, attr{"id", dev.ID})
			}
			if dev.Port > 0 {
				attrs = append(attrs, attr{"port", strconv.Itoa(dev.Port)})
			}
			if dev.Name == "" && len(attrs) > 0 {
				e.w.empty("midi-device", attrs...)
			} else {
				e.w.text("midi-device", dev.Name, attrs...)
			}
		}
		for _, mi := range sp.MIDIInstrs {
			e.w.open("midi-instrument", attr{"id", mi.ID})
			if mi.Channel > 0 {
				e.w.textInt("midi-channel", mi.Channel)
			}
			if mi.Program > 0 {
				e.w.textInt("midi-program", mi.Program)
			}
			if mi.Volume != nil {
				e.w.text("volume", formatFloat(*mi.Volume))
			}
			if mi.Pan != nil {
				e.w.text("pan", formatFloat(*mi.Pan))
			}
			e.w.close("midi-instrument")
		}
		e.w.close("score-part")
	}
	e.w.close("part-list")
}

func (e *emitter) emitPart(p *Part) error {
	e.part = p.ID
	e.divisions = 0
	e.w.open("part", attr{"id", p.ID})
	for i := range p.Measures {
		if err := e.emitMeasure(&p.Measures[i]); err != nil {
			return err
		}
	}
	e.w.close("part")
	return nil
}

// invalid builds an InvalidDataError at the emitter's current location.
func (e *emitter) invalid(field, format string, args ...any) *InvalidDataError {
	return &InvalidDataError{
		Part:    e.part,
		Measure: e.measure,
		Note:    e.noteIndex,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// formatFloat writes the shortest decimal representation.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// attr is one attribute on an element.
type attr struct {
	name  string
	value string
}

// xmlWriter produces indented element text with escaping. One element
// per line keeps emission canonical and diffs readable.
type xmlWriter struct {
	sb     strings.Builder
	indent string
	level  int
}

func (w *xmlWriter) String() string { return w.sb.String() }

// raw writes a preformatted line at column zero (declaration, doctype).
func (w *xmlWriter) raw(s string) {
	w.sb.WriteString(s)
	w.sb.WriteByte('\n')
}

func (w *xmlWriter) writeIndent() {
	for i := 0; i < w.level; i++ {
		w.sb.WriteString(w.indent)
	}
}

func (w *xmlWriter) writeTag(name string, attrs []attr, close string) {
	w.sb.WriteByte('<')
	w.sb.WriteString(name)
	for _, a := range attrs {
		w.sb.WriteByte(' ')
		w.sb.WriteString(a.name)
		w.sb.WriteString(`="`)
		w.sb.WriteString(escapeXML(a.value))
		w.sb.WriteByte('"')
	}
	w.sb.WriteString(close)
}

// open writes a start tag and increases the nesting level.
func (w *xmlWriter) open(name string, attrs ...attr) {
	w.writeIndent()
	w.writeTag(name, attrs, ">")
	w.sb.WriteByte('\n')
	w.level++
}

// close writes the matching end tag.
func (w *xmlWriter) close(name string) {
	w.level--
	w.writeIndent()
	w.sb.WriteString("</")
	w.sb.WriteString(name)
	w.sb.WriteString(">\n")
}

// empty writes a self-closing element (flag elements such as chord).
func (w *xmlWriter) empty(name string, attrs ...attr) {
	w.writeIndent()
	w.writeTag(name, attrs, "/>")
	w.sb.WriteByte('\n')
}

// text writes an element with character content on one line.
func (w *xmlWriter) text(name, content string, attrs ...attr) {
	w.writeIndent()
	w.writeTag(name, attrs, ">")
	w.sb.WriteString(escapeXML(content))
	w.sb.WriteString("</")
	w.sb.WriteString(name)
	w.sb.WriteString(">\n")
}

// textOpt writes a text element only when content is non-empty.
func (w *xmlWriter) textOpt(name, content string, attrs ...attr) {
	if content == "" {
		return
	}
	w.text(name, content, attrs...)
}

// textInt writes an integer-content element.
func (w *xmlWriter) textInt(name string, v int) {
	w.text(name, strconv.Itoa(v))
}

// escapeXML escapes the five reserved characters.
func escapeXML(s string) string {
	if !strings.ContainsAny(s, `&<>"'`) {
		return s
	}
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '"':
			sb.WriteString("&quot;")
		case '\'':
			sb.WriteString("&apos;")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
