package quotepdf

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	embeddedFontFamily = "Embedded"
	coreFontFamily     = "Helvetica"
)

// registerFont installs the caller-supplied font bytes into the document and
// returns the family name stages draw with. Without font bytes the built-in
// Helvetica core font is used, which limits text to the Latin-1 repertoire.
// The same font file backs the bold style; there is no separate bold face.
func (g *Generator) registerFont(pdf *fpdf.Fpdf) (string, error) {
	if len(g.fontBytes) == 0 {
		return coreFontFamily, nil
	}
	pdf.AddUTF8FontFromBytes(embeddedFontFamily, "", g.fontBytes)
	pdf.AddUTF8FontFromBytes(embeddedFontFamily, "B", g.fontBytes)
	if pdf.Err() {
		return "", fmt.Errorf("%w: %v", ErrFontEmbed, pdf.Error())
	}
	return embeddedFontFamily, nil
}
