package quotepdf

import (
	"fmt"

	"github.com/billdoc/quotepdf/layout"
)

const partyLineHeight = 18.0

// drawParty renders the counterparty block: a label and the locale-selected
// display name, with a dash placeholder when the pair is absent.
func (r *renderer) drawParty(cur layout.Cursor) layout.Cursor {
	name := r.loc.PickOr(r.snap.CounterpartyName.Primary, r.snap.CounterpartyName.Secondary, "-")
	r.setFont("", metaFontSize)
	r.text(cur.Page.MarginLeft, cur.Y, cur.Page.ContentWidth(), partyLineHeight,
		fmt.Sprintf("%s: %s", r.pick(labelCustomer), name), "L")
	return cur.Advance(partyLineHeight + 8)
}
