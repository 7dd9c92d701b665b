package mxml

import "fmt"

// InvalidDataError reports a cross-field inconsistency in a Score handed
// to the emitter: the tree is well-typed but violates an invariant the
// document format requires (for example a note whose declared type and
// dots disagree with its integer duration under the active divisions).
// The emitter never repairs such trees; it names the violation and stops.
type InvalidDataError struct {
	Part    string // part id, if known
	Measure string // measure number, if known
	Note    int    // zero-based note position within the measure, -1 when not note-scoped
	Field   string // offending field, e.g. "duration"
	Message string

	Expected string
	Actual   string
}

func (e *InvalidDataError) Error() string {
	loc := ""
	if e.Part != "" {
		loc = fmt.Sprintf(" (part %q", e.Part)
		if e.Measure != "" {
			loc += fmt.Sprintf(", measure %s", e.Measure)
		}
		if e.Note >= 0 {
			loc += fmt.Sprintf(", note %d", e.Note)
		}
		loc += ")"
	}
	msg := fmt.Sprintf("invalid data in %s%s: %s", e.Field, loc, e.Message)
	if e.Expected != "" || e.Actual != "" {
		msg += fmt.Sprintf(" (expected %s, got %s)", e.Expected, e.Actual)
	}
	return msg
}

// MalformedDocumentError reports input that is not well-formed XML at
// all. Err holds the underlying decoder error.
type MalformedDocumentError struct {
	Err    error
	Offset int64
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed document at byte %d: %v", e.Offset, e.Err)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Err }

// UnsupportedRootError reports a document whose root element is not the
// partwise score. The timewise variant is recognized by name and called
// out explicitly so callers can tell a deliberate non-goal from garbage.
type UnsupportedRootError struct {
	Root string
}

func (e *UnsupportedRootError) Error() string {
	if e.Root == "score-timewise" {
		return "time-ordered (score-timewise) documents are not supported; convert to score-partwise"
	}
	return fmt.Sprintf("unsupported root element <%s>, want <score-partwise>", e.Root)
}

// MissingElementError reports a schema-required child that was still
// absent when its parent element closed.
type MissingElementError struct {
	Parent  string
	Element string
	Offset  int64
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("<%s> missing required <%s> (near byte %d)", e.Parent, e.Element, e.Offset)
}

// InvalidEnumError reports text content or an attribute value that
// matched no known spelling of an enumerated type.
type InvalidEnumError struct {
	Context string // element or attribute being decoded
	Raw     string
	Offset  int64
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s value %q (near byte %d)", e.Context, e.Raw, e.Offset)
}

// UnexpectedStructureError reports a structural impossibility: a
// required choice with none of its alternatives present, or content
// where none is allowed.
type UnexpectedStructureError struct {
	Element string
	Message string
	Offset  int64
}

func (e *UnexpectedStructureError) Error() string {
	return fmt.Sprintf("<%s>: %s (near byte %d)", e.Element, e.Message, e.Offset)
}
