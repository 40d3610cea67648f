package layout

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Measurer computes string widths from an embeddable font's glyph advances.
// It is a pure function of (text, size) for a given font, which keeps line
// breaking deterministic and independent of any drawing backend.
//
// A Measurer is safe for concurrent use; the sfnt working buffer is guarded
// by a mutex.
type Measurer struct {
	font *sfnt.Font

	mu  sync.Mutex
	buf sfnt.Buffer
}

// NewMeasurer parses raw TrueType/OpenType font bytes.
func NewMeasurer(fontBytes []byte) (*Measurer, error) {
	f, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("layout: parsing font: %w", err)
	}
	return &Measurer{font: f}, nil
}

// Width returns the advance width of s in points at the given point size.
// Runes without a glyph in the font are counted at half the point size.
func (m *Measurer) Width(s string, size float64) float64 {
	ppem := fixed.Int26_6(size * 64)
	missing := size / 2

	m.mu.Lock()
	defer m.mu.Unlock()

	var w float64
	for _, r := range s {
		gi, err := m.font.GlyphIndex(&m.buf, r)
		if err != nil || gi == 0 {
			w += missing
			continue
		}
		adv, err := m.font.GlyphAdvance(&m.buf, gi, ppem, font.HintingNone)
		if err != nil {
			w += missing
			continue
		}
		w += float64(adv) / 64
	}
	return w
}

// Measure returns a MeasureFunc bound to the given point size.
func (m *Measurer) Measure(size float64) MeasureFunc {
	return func(s string) float64 {
		return m.Width(s, size)
	}
}
