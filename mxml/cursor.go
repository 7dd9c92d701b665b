package mxml

import "fmt"

// MeasureCursor tracks the time position within one measure while
// walking its music data in order. Notes advance it by their duration
// unless they are chord members or grace notes; Backup rewinds it,
// Forward advances it; everything else leaves it in place.
type MeasureCursor struct {
	pos int // current position in divisions
	max int // furthest position reached
}

// Pos returns the current position in divisions.
func (c *MeasureCursor) Pos() int { return c.pos }

// Max returns the furthest position reached, i.e. the measure's
// occupied span so far.
func (c *MeasureCursor) Max() int { return c.max }

// Apply advances or rewinds the cursor for one music-data element.
func (c *MeasureCursor) Apply(md MusicData) error {
	switch v := md.(type) {
	case *Note:
		if v.AdvancesCursor() {
			c.advance(v.Duration)
		}
	case *Forward:
		c.advance(v.Duration)
	case *Backup:
		c.pos -= v.Duration
		if c.pos < 0 {
			return &InvalidDataError{
				Note:    -1,
				Field:   "backup",
				Message: fmt.Sprintf("backup of %d rewinds past the start of the measure", v.Duration),
			}
		}
	}
	return nil
}

func (c *MeasureCursor) advance(n int) {
	c.pos += n
	if c.pos > c.max {
		c.max = c.pos
	}
}

// Span walks an entire measure and returns its occupied length in
// divisions. Chord members share their group's onset, so a three-note
// chord contributes a single note's duration.
func (m *Measure) Span() (int, error) {
	var c MeasureCursor
	for _, md := range m.Music {
		if err := c.Apply(md); err != nil {
			if ide, ok := err.(*InvalidDataError); ok {
				ide.Measure = m.Number
			}
			return 0, err
		}
	}
	return c.Max(), nil
}
