package mxml

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// Parse reads document text and rebuilds the typed Score. The input is
// consumed as a forward-only token stream: each element is decoded into
// its typed form as soon as its end tag is reached, so memory use is
// bounded by nesting depth rather than document size.
//
// Unknown child elements are skipped whole — documents written against
// newer schema revisions still parse, dropping only what this model does
// not represent. Child order is not enforced. Self-closing and
// open/close spellings of empty elements are equivalent.
func Parse(input string) (*Score, error) {
	return ParseReader(strings.NewReader(input))
}

// ParseReader parses from a reader. Documents in non-UTF-8 encodings
// declared by their XML declaration are transcoded on the fly.
func ParseReader(r io.Reader) (*Score, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	p := &parser{dec: dec}
	return p.parseDocument()
}

// parser wraps the token stream. All decode methods follow the same
// per-element state machine: loop over child events, dispatch known
// names, skip unknown ones, and check required fields when the end tag
// arrives.
type parser struct {
	dec *xml.Decoder
}

func (p *parser) parseDocument() (*Score, error) {
	for {
		tok, err := p.dec.Token()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, p.malformed(err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			// Declaration, doctype, comments, whitespace.
			continue
		}
		switch start.Name.Local {
		case rootPartwise:
			return p.parseScore(start)
		default:
			// score-timewise is recognized by name; the error text
			// distinguishes the known variant from arbitrary roots.
			return nil, &UnsupportedRootError{Root: start.Name.Local}
		}
	}
}

// off returns the current byte offset for error context.
func (p *parser) off() int64 { return p.dec.InputOffset() }

func (p *parser) malformed(err error) error {
	return &MalformedDocumentError{Err: err, Offset: p.off()}
}

// skip consumes the rest of the current element, including nested
// structure.
func (p *parser) skip() error {
	if err := p.dec.Skip(); err != nil {
		return p.malformed(err)
	}
	return nil
}

// children runs the per-element loop: fn is called for each child start
// element and reports whether it consumed the child; unhandled children
// are skipped whole. Returns when the parent's end tag is reached.
func (p *parser) children(fn func(child xml.StartElement) (bool, error)) error {
	for {
		tok, err := p.dec.Token()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return p.malformed(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			handled, err := fn(t)
			if err != nil {
				return err
			}
			if !handled {
				if err := p.skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// text consumes the current element through its end tag and returns the
// trimmed character content. Nested elements are discarded. A
// self-closing element yields "".
func (p *parser) text() (string, error) {
	var sb strings.Builder
	for {
		tok, err := p.dec.Token()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return "", p.malformed(err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			if err := p.skip(); err != nil {
				return "", err
			}
		case xml.EndElement:
			return strings.TrimSpace(sb.String()), nil
		}
	}
}

// intText reads integer element content.
func (p *parser) intText(context string) (int, error) {
	s, err := p.text()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InvalidEnumError{Context: context, Raw: s, Offset: p.off()}
	}
	return v, nil
}

// floatText reads decimal element content.
func (p *parser) floatText(context string) (float64, error) {
	s, err := p.text()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &InvalidEnumError{Context: context, Raw: s, Offset: p.off()}
	}
	return v, nil
}

// attrVal finds an attribute by local name.
func attrVal(se xml.StartElement, name string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// intAttr reads an optional integer attribute; absent yields zero.
func (p *parser) intAttr(se xml.StartElement, name, context string) (int, error) {
	s, ok := attrVal(se, name)
	if !ok || s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InvalidEnumError{Context: context, Raw: s, Offset: p.off()}
	}
	return v, nil
}

// floatAttr reads an optional decimal attribute as a pointer.
func (p *parser) floatAttr(se xml.StartElement, name, context string) (*float64, error) {
	s, ok := attrVal(se, name)
	if !ok || s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, &InvalidEnumError{Context: context, Raw: s, Offset: p.off()}
	}
	return &v, nil
}

// yesNoAttr reads an optional yes/no attribute; absent yields false.
func (p *parser) yesNoAttr(se xml.StartElement, name, context string) (bool, error) {
	s, ok := attrVal(se, name)
	if !ok || s == "" {
		return false, nil
	}
	return parseYesNo(context, s, p.off())
}

// yesNoAttrPtr reads an optional yes/no attribute as a pointer so the
// emitted document preserves an explicit "no".
func (p *parser) yesNoAttrPtr(se xml.StartElement, name, context string) (*bool, error) {
	s, ok := attrVal(se, name)
	if !ok || s == "" {
		return nil, nil
	}
	v, err := parseYesNo(context, s, p.off())
	if err != nil {
		return nil, err
	}
	return &v, nil
}
