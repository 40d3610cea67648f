package quotepdf

import (
	"fmt"

	"github.com/billdoc/quotepdf/layout"
)

const (
	summaryFontSize   = 11.0
	summaryLineHeight = 18.0
	summaryBlockWidth = 220.0
	totalFontSize     = 12.0
	summaryTopGap     = 10.0
)

// drawSummary renders subtotal, tax and total right-aligned against the
// content's right edge, with a separating rule before the bold total line.
func (r *renderer) drawSummary(cur layout.Cursor) layout.Cursor {
	cur = r.ensureSpace(cur, summaryTopGap+3*summaryLineHeight+10)
	cur = cur.Advance(summaryTopGap)

	right := cur.Page.ContentRight()
	x := right - summaryBlockWidth
	code := r.snap.CurrencyCode

	r.setFont("", summaryFontSize)
	cur = r.summaryLine(cur, x, r.pick(labelSubtotal), r.loc.Money(code, r.snap.Subtotal))

	taxLabel := fmt.Sprintf("%s (%s)", r.pick(labelTax), r.loc.Percent(r.snap.TaxRate))
	cur = r.summaryLine(cur, x, taxLabel, r.loc.Money(code, r.snap.TaxAmount))

	r.pdf.Line(x, cur.Y+2, right, cur.Y+2)
	cur = cur.Advance(6)

	r.setFont("B", totalFontSize)
	cur = r.summaryLine(cur, x, r.pick(labelTotal), r.loc.Money(code, r.snap.Total))

	return cur.Advance(8)
}

func (r *renderer) summaryLine(cur layout.Cursor, x float64, label, amount string) layout.Cursor {
	w := cur.Page.ContentRight() - x
	r.text(x, cur.Y, w/2, summaryLineHeight, label, "L")
	r.text(x+w/2, cur.Y, w/2, summaryLineHeight, amount, "R")
	return cur.Advance(summaryLineHeight)
}
