package quotepdf

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/billdoc/quotepdf/assets"
	"github.com/billdoc/quotepdf/layout"
)

const (
	bankLineHeight  = 16.0
	bankTitleHeight = 20.0

	passbookMaxWidth  = 220.0
	passbookMaxHeight = 110.0
	signatureMaxWidth = 150.0
	signatureMaxHeight = 60.0
	mediaGap           = 6.0
)

// drawMedia renders the optional closing block: bank details as label lines,
// then the passbook and signature images. Each image is independently
// optional and follows the same non-fatal fetch policy as the logo; a
// malformed or unreachable image is logged and skipped.
func (r *renderer) drawMedia(ctx context.Context, cur layout.Cursor) layout.Cursor {
	if r.snap.Bank != nil {
		cur = r.drawBank(*r.snap.Bank, cur)
	}
	cur = r.drawOptionalImage(ctx, "passbook", r.snap.PassbookRef, passbookMaxWidth, passbookMaxHeight, cur)
	cur = r.drawOptionalImage(ctx, "signature", r.snap.SignatureRef, signatureMaxWidth, signatureMaxHeight, cur)
	return cur
}

func (r *renderer) drawBank(bank BankDetails, cur layout.Cursor) layout.Cursor {
	lines := []struct {
		label LocalizedText
		value string
	}{
		{labelBankName, bank.BankName},
		{labelBankAccount, bank.AccountNumber},
		{labelBankCode, bank.BankCode},
	}

	cur = r.ensureSpace(cur, bankTitleHeight+3*bankLineHeight)
	left := cur.Page.MarginLeft
	contentW := cur.Page.ContentWidth()

	r.setFont("B", summaryFontSize)
	r.text(left, cur.Y, contentW, bankTitleHeight, r.pick(labelBank), "L")
	cur = cur.Advance(bankTitleHeight)

	r.setFont("", noteFontSize)
	for _, line := range lines {
		if line.value == "" {
			continue
		}
		r.text(left, cur.Y, contentW, bankLineHeight,
			fmt.Sprintf("%s: %s", r.pick(line.label), line.value), "L")
		cur = cur.Advance(bankLineHeight)
	}
	return cur.Advance(mediaGap)
}

func (r *renderer) drawOptionalImage(ctx context.Context, kind, ref string, maxW, maxH float64, cur layout.Cursor) layout.Cursor {
	if ref == "" {
		return cur
	}
	img, err := r.g.fetcher.Fetch(ctx, ref)
	if err != nil {
		r.log.Warn("embedded image unavailable, skipping",
			zap.String("kind", kind), zap.String("ref", ref), zap.Error(err))
		return cur
	}

	h := float64(img.Height) * assets.FitScale(float64(img.Width), float64(img.Height), maxW, maxH)
	cur = r.ensureSpace(cur, h+mediaGap)
	r.putImage(img, cur.Page.MarginLeft, cur.Y, maxW, maxH)
	return cur.Advance(h + mediaGap)
}
