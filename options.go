package quotepdf

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// BarcodeKind selects the symbology of the optional document-reference stamp.
type BarcodeKind int

const (
	BarcodeNone BarcodeKind = iota
	BarcodeQR
	BarcodePDF417
)

// Option is a functional option for configuring a Generator via New.
type Option func(*config)

type config struct {
	logger       *zap.Logger
	client       *http.Client
	stationery   []byte
	barcode      BarcodeKind
	compress     bool
	paginate     bool
	imageTTL     time.Duration
	maxImageEdge int
	creationDate time.Time
}

// defaultCreationDate pins the document creation timestamp so that two runs
// over identical inputs produce byte-identical output.
var defaultCreationDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

func defaultConfig() config {
	return config{
		logger:       zap.NewNop(),
		compress:     true,
		paginate:     true,
		imageTTL:     5 * time.Minute,
		maxImageEdge: 1600,
		creationDate: defaultCreationDate,
	}
}

// WithLogger sets the structured logger. Non-fatal image failures are logged
// at Warn level. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.logger = log
		}
	}
}

// WithHTTPClient sets the client used to fetch referenced images. Defaults to
// http.DefaultClient.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.client = client
	}
}

// WithStationery underlays page 1 of the given PDF (a letterhead) beneath the
// drawn content of every generated page. A malformed stationery PDF is fatal
// to the generation.
func WithStationery(pdfBytes []byte) Option {
	return func(c *config) {
		c.stationery = pdfBytes
	}
}

// WithBarcode stamps the document number as a machine-readable code near the
// bottom-left page corner. Disabled by default.
func WithBarcode(kind BarcodeKind) Option {
	return func(c *config) {
		c.barcode = kind
	}
}

// WithCompression toggles content stream compression. On by default; tests
// turn it off to inspect drawn text.
func WithCompression(on bool) Option {
	return func(c *config) {
		c.compress = on
	}
}

// WithSinglePage restores the legacy single-page behavior: rows that would
// cross the bottom margin draw past it instead of breaking to a new page.
func WithSinglePage() Option {
	return func(c *config) {
		c.paginate = false
	}
}

// WithImageCacheTTL sets how long fetched images are reused across
// generations from the same Generator.
func WithImageCacheTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.imageTTL = ttl
	}
}

// WithMaxImageEdge bounds the longer pixel edge of embedded images; larger
// rasters are downscaled before embedding. Zero disables downscaling.
func WithMaxImageEdge(px int) Option {
	return func(c *config) {
		c.maxImageEdge = px
	}
}

// WithCreationDate overrides the pinned PDF creation timestamp.
func WithCreationDate(t time.Time) Option {
	return func(c *config) {
		c.creationDate = t
	}
}
