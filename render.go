package quotepdf

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"github.com/billdoc/quotepdf/assets"
	"github.com/billdoc/quotepdf/format"
	"github.com/billdoc/quotepdf/layout"
)

// Generator renders document snapshots to PDF buffers. Its state (font,
// options, image fetcher, imported stationery) is fixed after first use and
// it is safe for concurrent use; per-document state lives in the renderer
// each Generate call builds.
type Generator struct {
	cfg       config
	log       *zap.Logger
	fontBytes []byte
	measurer  *layout.Measurer
	fetcher   *assets.Fetcher

	stOnce sync.Once
	st     *stationery
	stErr  error
}

// New builds a Generator around the raw bytes of an embeddable
// TrueType/OpenType font. fontBytes may be nil, in which case the built-in
// Helvetica core font is used and only Latin-1 text renders correctly.
// Unparseable font bytes are rejected here rather than at render time.
func New(fontBytes []byte, opts ...Option) (*Generator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Generator{
		cfg:       cfg,
		log:       cfg.logger.Named("quotepdf"),
		fontBytes: fontBytes,
	}
	if len(fontBytes) > 0 {
		m, err := layout.NewMeasurer(fontBytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFontEmbed, err)
		}
		g.measurer = m
	}
	g.fetcher = assets.NewFetcher(cfg.client, cfg.logger, cfg.imageTTL, cfg.maxImageEdge)
	return g, nil
}

// Generate renders one document. The stage order is fixed: header, party
// info, items table, financial summary, then installment schedule, notes and
// supplementary media when present. Any error returned here is fatal only to
// this generation; other concurrent or subsequent generations are unaffected.
func (g *Generator) Generate(ctx context.Context, snap *DocumentSnapshot, locale string) ([]byte, error) {
	loc := format.ParseLocale(locale)
	r, err := g.newRenderer(snap, loc)
	if err != nil {
		return nil, err
	}

	cur := r.newPage()
	cur = r.drawHeader(ctx, cur)
	cur = r.drawParty(cur)
	cur = r.drawItems(cur)
	cur = r.drawSummary(cur)
	if len(snap.InstallmentSchedule) > 0 {
		cur = r.drawInstallments(cur)
	}
	if snap.Notes != nil && !snap.Notes.IsZero() {
		cur = r.drawNotes(cur)
	}
	if snap.Bank != nil || snap.PassbookRef != "" || snap.SignatureRef != "" {
		cur = r.drawMedia(ctx, cur)
	}

	if g.cfg.barcode != BarcodeNone {
		if err := r.stampBarcode(); err != nil {
			return nil, err
		}
	}

	if r.pdf.Err() {
		return nil, stageError("finalize", r.pdf.Error())
	}
	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, stageError("finalize", err)
	}
	if r.stationery != nil {
		out, err := r.stationery.embedObjects(buf.Bytes())
		if err != nil {
			return nil, stageError("stationery", err)
		}
		return out, nil
	}
	return buf.Bytes(), nil
}

// loadStationeryOnce imports the configured letterhead on first use and
// reuses the frozen result for every later generation, keeping the embedded
// stationery bytes identical across runs.
func (g *Generator) loadStationeryOnce() (*stationery, error) {
	g.stOnce.Do(func() {
		g.st, g.stErr = loadStationery(g.cfg.stationery, layout.A4())
	})
	return g.st, g.stErr
}

// renderer is the per-document drawing state: one PDF object, one cursor
// lineage, one locale. Never shared across generations.
type renderer struct {
	g          *Generator
	pdf        *fpdf.Fpdf
	log        *zap.Logger
	snap       *DocumentSnapshot
	loc        format.Locale
	family     string
	page       layout.Page
	stationery *stationery
}

func (g *Generator) newRenderer(snap *DocumentSnapshot, loc format.Locale) (*renderer, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCreationDate(g.cfg.creationDate)
	pdf.SetModificationDate(g.cfg.creationDate)
	pdf.SetCompression(g.cfg.compress)
	pdf.SetAutoPageBreak(false, 0)
	// Resource dictionaries are emitted in map order unless told to sort,
	// which would make repeated runs differ once two fonts are registered.
	pdf.SetCatalogSort(true)
	if snap.DocumentNumber != "" {
		pdf.SetTitle(snap.DocumentNumber, true)
	}

	family, err := g.registerFont(pdf)
	if err != nil {
		return nil, stageError("fonts", err)
	}

	r := &renderer{
		g:      g,
		pdf:    pdf,
		log:    g.log,
		snap:   snap,
		loc:    loc,
		family: family,
		page:   layout.A4(),
	}

	if len(g.cfg.stationery) > 0 {
		st, err := g.loadStationeryOnce()
		if err != nil {
			return nil, stageError("stationery", err)
		}
		st.register(pdf)
		r.stationery = st
	}
	return r, nil
}

// newPage starts a fresh page, applies the stationery underlay when
// configured, and returns a cursor at the top content edge.
func (r *renderer) newPage() layout.Cursor {
	r.pdf.AddPage()
	if r.stationery != nil {
		r.stationery.apply(r.pdf)
	}
	return layout.NewCursor(r.page)
}

// ensureSpace breaks to a new page when h does not fit above the bottom
// margin. With pagination disabled it is a no-op and content draws past the
// margin, matching the legacy single-page behavior.
func (r *renderer) ensureSpace(cur layout.Cursor, h float64) layout.Cursor {
	if r.g.cfg.paginate && !cur.Fits(h) {
		return r.newPage()
	}
	return cur
}

func (r *renderer) pick(t LocalizedText) string {
	return r.loc.Pick(t.Primary, t.Secondary)
}

func (r *renderer) setFont(style string, size float64) {
	r.pdf.SetFont(r.family, style, size)
}

// measure returns the width function wrapping uses at the given size: glyph
// advances from the embedded font when one was supplied, otherwise the
// drawing backend's core-font widths.
func (r *renderer) measure(size float64) layout.MeasureFunc {
	if r.g.measurer != nil {
		return r.g.measurer.Measure(size)
	}
	return func(s string) float64 {
		r.pdf.SetFont(r.family, "", size)
		return r.pdf.GetStringWidth(s)
	}
}

// text draws a single aligned line inside a w×h box at (x, y).
func (r *renderer) text(x, y, w, h float64, s, align string) {
	r.pdf.SetXY(x, y)
	r.pdf.CellFormat(w, h, s, "", 0, align, false, 0, "")
}

// putImage embeds img scaled to fit the maxW×maxH box anchored at (x, y),
// preserving aspect ratio. Returns the drawn extent.
func (r *renderer) putImage(img assets.Image, x, y, maxW, maxH float64) (w, h float64) {
	scale := assets.FitScale(float64(img.Width), float64(img.Height), maxW, maxH)
	if scale <= 0 {
		return 0, 0
	}
	w = float64(img.Width) * scale
	h = float64(img.Height) * scale

	opts := fpdf.ImageOptions{ImageType: img.Format}
	if r.pdf.GetImageInfo(img.Ref) == nil {
		r.pdf.RegisterImageOptionsReader(img.Ref, opts, bytes.NewReader(img.Data))
	}
	r.pdf.ImageOptions(img.Ref, x, y, w, h, false, opts, 0, "")
	return w, h
}
