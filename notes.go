package quotepdf

import (
	"github.com/billdoc/quotepdf/layout"
)

const (
	noteFontSize    = 10.0
	noteLineHeight  = 14.0
	noteTitleHeight = 20.0
)

// drawNotes renders the free-text notes block, wrapped with the same greedy
// character wrap as the items table against the full content width.
func (r *renderer) drawNotes(cur layout.Cursor) layout.Cursor {
	cur = r.ensureSpace(cur, noteTitleHeight+noteLineHeight)

	left := cur.Page.MarginLeft
	contentW := cur.Page.ContentWidth()

	r.setFont("B", summaryFontSize)
	r.text(left, cur.Y, contentW, noteTitleHeight, r.pick(labelNotes), "L")
	cur = cur.Advance(noteTitleHeight)

	r.setFont("", noteFontSize)
	lines := layout.Wrap(r.pick(*r.snap.Notes), contentW, r.measure(noteFontSize))
	for _, line := range lines {
		cur = r.ensureSpace(cur, noteLineHeight)
		r.text(left, cur.Y, contentW, noteLineHeight, line, "L")
		cur = cur.Advance(noteLineHeight)
	}
	return cur.Advance(8)
}
