package quotepdf

import (
	"strconv"

	"github.com/billdoc/quotepdf/layout"
)

// Items table geometry. Column widths are fixed; the description column is
// the only one whose content wraps.
const (
	colDescWidth   = 250.0
	colQtyWidth    = 60.0
	colUnitWidth   = 100.0
	colAmountWidth = 100.0

	itemFontSize    = 10.0
	itemLineHeight  = 14.0
	rowPadding      = 8.0 // top + bottom
	minRowHeight    = 22.0
	headerRowHeight = 24.0
	cellPadX        = 6.0
)

type itemColumn struct {
	width float64
	label LocalizedText
	align string
}

func itemColumns() [4]itemColumn {
	return [4]itemColumn{
		{colDescWidth, labelDescription, "L"},
		{colQtyWidth, labelQuantity, "C"},
		{colUnitWidth, labelUnitPrice, "R"},
		{colAmountWidth, labelAmount, "R"},
	}
}

// drawItems renders the shaded header row and one row per line item. Row
// height grows with the wrapped line count of the description; rows that
// would cross the bottom margin break to a new page and the header row is
// repeated there. With no line items only the header row is drawn.
func (r *renderer) drawItems(cur layout.Cursor) layout.Cursor {
	cur = r.ensureSpace(cur, headerRowHeight+minRowHeight)
	cur = r.drawItemsHeader(cur)

	measure := r.measure(itemFontSize)
	textW := colDescWidth - 2*cellPadX

	for _, it := range r.snap.LineItems {
		lines := layout.Wrap(r.pick(it.Description), textW, measure)
		rowH := float64(len(lines))*itemLineHeight + rowPadding
		if rowH < minRowHeight {
			rowH = minRowHeight
		}
		if r.g.cfg.paginate && !cur.Fits(rowH) {
			cur = r.newPage()
			cur = r.drawItemsHeader(cur)
		}
		cur = r.drawItemRow(cur, it, lines, rowH)
	}
	return cur
}

func (r *renderer) drawItemsHeader(cur layout.Cursor) layout.Cursor {
	x := cur.Page.MarginLeft
	r.pdf.SetFillColor(230, 230, 230)
	r.setFont("B", itemFontSize)
	for _, col := range itemColumns() {
		r.pdf.Rect(x, cur.Y, col.width, headerRowHeight, "FD")
		r.text(x+cellPadX, cur.Y+(headerRowHeight-itemLineHeight)/2,
			col.width-2*cellPadX, itemLineHeight, r.pick(col.label), "C")
		x += col.width
	}
	return cur.Advance(headerRowHeight)
}

func (r *renderer) drawItemRow(cur layout.Cursor, it LineItem, descLines []string, rowH float64) layout.Cursor {
	left := cur.Page.MarginLeft
	cols := itemColumns()

	x := left
	for _, col := range cols {
		r.pdf.Rect(x, cur.Y, col.width, rowH, "D")
		x += col.width
	}

	r.setFont("", itemFontSize)

	ty := cur.Y + rowPadding/2
	for _, line := range descLines {
		r.text(left+cellPadX, ty, colDescWidth-2*cellPadX, itemLineHeight, line, "L")
		ty += itemLineHeight
	}

	midY := cur.Y + (rowH-itemLineHeight)/2
	x = left + colDescWidth
	r.text(x+cellPadX, midY, colQtyWidth-2*cellPadX, itemLineHeight, formatQuantity(it.Quantity), "C")
	x += colQtyWidth
	r.text(x+cellPadX, midY, colUnitWidth-2*cellPadX, itemLineHeight, r.loc.Amount(it.UnitPrice), "R")
	x += colUnitWidth
	r.text(x+cellPadX, midY, colAmountWidth-2*cellPadX, itemLineHeight, r.loc.Amount(it.LineTotal), "R")

	return cur.Advance(rowH)
}

// formatQuantity renders a quantity without trailing zeros.
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
