package quotepdf

import (
	"strconv"

	"github.com/billdoc/quotepdf/format"
	"github.com/billdoc/quotepdf/layout"
)

const (
	instFontSize     = 10.0
	instRowHeight    = 22.0
	instHeaderHeight = 24.0
	instTitleHeight  = 20.0

	instTermWidth    = 70.0
	instPercentWidth = 90.0
	instDueWidth     = 170.0
)

// drawInstallments renders the payment-term schedule: a title line and a
// four-column table (term index, percentage, due date, amount) with the same
// shaded-header convention as the items table. Rows are fixed height; the
// labels are short and never wrap. Percentages are drawn as supplied and not
// checked against a 100% sum.
func (r *renderer) drawInstallments(cur layout.Cursor) layout.Cursor {
	cur = r.ensureSpace(cur, instTitleHeight+instHeaderHeight+instRowHeight)

	r.setFont("B", summaryFontSize)
	r.text(cur.Page.MarginLeft, cur.Y, cur.Page.ContentWidth(), instTitleHeight, r.pick(labelTerms), "L")
	cur = cur.Advance(instTitleHeight)

	cur = r.drawInstallmentsHeader(cur)
	for _, ins := range r.snap.InstallmentSchedule {
		if r.g.cfg.paginate && !cur.Fits(instRowHeight) {
			cur = r.newPage()
			cur = r.drawInstallmentsHeader(cur)
		}
		cur = r.drawInstallmentRow(cur, ins)
	}
	return cur.Advance(8)
}

func (r *renderer) installmentWidths(page layout.Page) [4]float64 {
	amount := page.ContentWidth() - instTermWidth - instPercentWidth - instDueWidth
	return [4]float64{instTermWidth, instPercentWidth, instDueWidth, amount}
}

func (r *renderer) drawInstallmentsHeader(cur layout.Cursor) layout.Cursor {
	labels := [4]LocalizedText{labelTerm, labelPercent, labelDueDate, labelAmount}
	widths := r.installmentWidths(cur.Page)

	x := cur.Page.MarginLeft
	r.pdf.SetFillColor(230, 230, 230)
	r.setFont("B", instFontSize)
	for i, w := range widths {
		r.pdf.Rect(x, cur.Y, w, instHeaderHeight, "FD")
		r.text(x+cellPadX, cur.Y+(instHeaderHeight-itemLineHeight)/2,
			w-2*cellPadX, itemLineHeight, r.pick(labels[i]), "C")
		x += w
	}
	return cur.Advance(instHeaderHeight)
}

func (r *renderer) drawInstallmentRow(cur layout.Cursor, ins Installment) layout.Cursor {
	widths := r.installmentWidths(cur.Page)
	cells := [4]struct {
		text  string
		align string
	}{
		{strconv.Itoa(ins.Index), "C"},
		{r.loc.Percent(ins.Percentage), "C"},
		{format.Date(ins.DueDate), "C"},
		{r.loc.Money(r.snap.CurrencyCode, ins.Amount), "R"},
	}

	r.setFont("", instFontSize)
	midY := cur.Y + (instRowHeight-itemLineHeight)/2
	x := cur.Page.MarginLeft
	for i, w := range widths {
		r.pdf.Rect(x, cur.Y, w, instRowHeight, "D")
		r.text(x+cellPadX, midY, w-2*cellPadX, itemLineHeight, cells[i].text, cells[i].align)
		x += w
	}
	return cur.Advance(instRowHeight)
}
