package quotepdf

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/billdoc/quotepdf/format"
	"github.com/billdoc/quotepdf/layout"
)

const (
	titleFontSize  = 24.0
	titleBandH     = 30.0
	metaFontSize   = 11.0
	metaLineHeight = 16.0
	headerGap      = 12.0

	logoMaxWidth  = 120.0
	logoMaxHeight = 48.0
)

// drawHeader renders the optional logo, the centered document title, the
// optional issuer name and the number/date lines. The logo sits inside the
// title band and never moves the cursor, so a failed logo fetch leaves the
// returned Y identical to a snapshot without a logo.
func (r *renderer) drawHeader(ctx context.Context, cur layout.Cursor) layout.Cursor {
	if r.snap.LogoRef != "" {
		img, err := r.g.fetcher.Fetch(ctx, r.snap.LogoRef)
		if err != nil {
			r.log.Warn("logo unavailable, rendering without it",
				zap.String("ref", r.snap.LogoRef), zap.Error(err))
		} else {
			r.putImage(img, cur.Page.MarginLeft, cur.Y, logoMaxWidth, logoMaxHeight)
		}
	}

	left := cur.Page.MarginLeft
	contentW := cur.Page.ContentWidth()

	r.setFont("B", titleFontSize)
	r.text(left, cur.Y, contentW, titleBandH, r.pick(labelTitle), "C")
	cur = cur.Advance(titleBandH + headerGap)

	if r.snap.IssuerDisplayName != nil && !r.snap.IssuerDisplayName.IsZero() {
		r.setFont("", metaFontSize)
		r.text(left, cur.Y, contentW, metaLineHeight, r.pick(*r.snap.IssuerDisplayName), "C")
		cur = cur.Advance(metaLineHeight)
	}

	r.setFont("", metaFontSize)
	meta := []string{
		fmt.Sprintf("%s: %s", r.pick(labelNumber), r.snap.DocumentNumber),
		fmt.Sprintf("%s: %s", r.pick(labelIssueDate), format.Date(r.snap.IssueDate)),
		fmt.Sprintf("%s: %s", r.pick(labelExpiryDate), format.Date(r.snap.ExpiryDate)),
	}
	for _, line := range meta {
		r.text(left, cur.Y, contentW, metaLineHeight, line, "R")
		cur = cur.Advance(metaLineHeight)
	}
	return cur.Advance(headerGap)
}
