package quotepdf

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/pdf417"
	"github.com/boombuler/barcode/qr"
	"github.com/go-pdf/fpdf"
)

// Drawn extent of the reference stamp in page units, anchored just below the
// bottom content edge on the left. Gap plus stamp height must stay within
// the bottom margin so the symbol is never clipped at the page edge.
const (
	qrStampSize      = 40.0
	pdf417StampWidth = 120.0
	pdf417StampRatio = 3.0
	stampGap         = 5.0
)

// stampBarcode stamps the document number as a machine-readable code on the
// current (last) page. A failed encode is a misconfiguration and fatal to the
// generation; the stage never runs unless enabled via WithBarcode.
func (r *renderer) stampBarcode() error {
	num := r.snap.DocumentNumber
	if num == "" {
		return nil
	}

	var (
		bc   barcode.Barcode
		err  error
		w, h float64
		px   [2]int
	)
	switch r.g.cfg.barcode {
	case BarcodeQR:
		bc, err = qr.Encode(num, qr.M, qr.Auto)
		w, h = qrStampSize, qrStampSize
		px = [2]int{240, 240}
	case BarcodePDF417:
		bc, err = pdf417.Encode(num, 2)
		w, h = pdf417StampWidth, pdf417StampWidth/pdf417StampRatio
		px = [2]int{360, 120}
	default:
		return nil
	}
	if err != nil {
		return stageError("barcode", fmt.Errorf("%w: %v", ErrBarcode, err))
	}

	scaled, err := barcode.Scale(bc, px[0], px[1])
	if err != nil {
		return stageError("barcode", fmt.Errorf("%w: %v", ErrBarcode, err))
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return stageError("barcode", fmt.Errorf("%w: %v", ErrBarcode, err))
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	name := "refstamp"
	if r.pdf.GetImageInfo(name) == nil {
		r.pdf.RegisterImageOptionsReader(name, opts, &buf)
	}
	r.pdf.ImageOptions(name, r.page.MarginLeft, r.page.Bottom()+stampGap, w, h, false, opts, 0, "")
	return nil
}
