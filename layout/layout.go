// Package layout holds the fixed page geometry and the vertical write cursor
// shared by all drawing stages, plus the text wrapping and width measurement
// primitives they depend on.
//
// The cursor is a value type: stages take a Cursor and return the advanced
// Cursor, so a single generation threads one cursor top to bottom and
// concurrent generations never share layout state.
package layout

// Page dimensions in PDF user units (points). A4 portrait with uniform
// 50-point margins.
const (
	PageWidth  = 595.28
	PageHeight = 841.89
	Margin     = 50.0
)

// Page describes the fixed geometry of a single page.
type Page struct {
	Width        float64
	Height       float64
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
}

// A4 returns the standard page geometry used for generated documents.
func A4() Page {
	return Page{
		Width:        PageWidth,
		Height:       PageHeight,
		MarginLeft:   Margin,
		MarginRight:  Margin,
		MarginTop:    Margin,
		MarginBottom: Margin,
	}
}

// ContentWidth returns the horizontal space between the left and right margins.
func (p Page) ContentWidth() float64 {
	return p.Width - p.MarginLeft - p.MarginRight
}

// ContentRight returns the x coordinate of the right content edge.
func (p Page) ContentRight() float64 {
	return p.Width - p.MarginRight
}

// Bottom returns the y coordinate of the bottom content edge.
func (p Page) Bottom() float64 {
	return p.Height - p.MarginBottom
}

// Cursor is the running vertical write position on a page. It is passed by
// value through every drawing stage.
type Cursor struct {
	Page Page
	Y    float64
}

// NewCursor returns a cursor positioned at the top content edge of p.
func NewCursor(p Page) Cursor {
	return Cursor{Page: p, Y: p.MarginTop}
}

// Advance returns a cursor moved down by h.
func (c Cursor) Advance(h float64) Cursor {
	c.Y += h
	return c
}

// Fits reports whether a block of height h still fits above the bottom margin.
func (c Cursor) Fits(h float64) bool {
	return c.Y+h <= c.Page.Bottom()
}
