// Package assets retrieves and prepares the optional embedded images (logo,
// signature, passbook) referenced by a document snapshot.
//
// Every failure in this package is recoverable by design: the drawing stages
// log the error and render without the image. A single unreachable or
// malformed image must never abort a document.
package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	_ "image/jpeg"
	_ "image/png"
)

// Image is a fetched, decoded and possibly downscaled raster image ready for
// embedding.
type Image struct {
	Ref    string // source reference, also the embed name
	Data   []byte
	Format string // "PNG" or "JPG"
	Width  int    // pixels
	Height int    // pixels
}

// Fetcher retrieves images by URL or filesystem path.
type Fetcher struct {
	client  *http.Client
	log     *zap.Logger
	cache   *imageCache
	ttl     time.Duration
	maxEdge int
}

// NewFetcher builds a Fetcher. A nil client uses http.DefaultClient, a nil
// logger discards. maxEdge bounds the longer pixel edge of embedded images;
// larger rasters are downscaled before embedding. maxEdge <= 0 disables
// downscaling.
func NewFetcher(client *http.Client, log *zap.Logger, ttl time.Duration, maxEdge int) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{
		client:  client,
		log:     log.Named("assets"),
		cache:   newImageCache(),
		ttl:     ttl,
		maxEdge: maxEdge,
	}
}

// Fetch retrieves the image behind ref. HTTP(S) references are fetched over
// the network with ctx; anything else is read as a filesystem path.
func (f *Fetcher) Fetch(ctx context.Context, ref string) (Image, error) {
	if img, ok := f.cache.get(ref); ok {
		return img, nil
	}

	data, err := f.read(ctx, ref)
	if err != nil {
		return Image{}, err
	}

	img, err := prepare(ref, data, f.maxEdge)
	if err != nil {
		return Image{}, err
	}

	f.cache.set(ref, img, f.ttl)
	return img, nil
}

func (f *Fetcher) read(ctx context.Context, ref string) ([]byte, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
		if err != nil {
			return nil, fmt.Errorf("assets: building request for %s: %w", ref, err)
		}
		resp, err := f.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("assets: fetching %s: %w", ref, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("assets: fetching %s: unexpected status %d", ref, resp.StatusCode)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("assets: reading %s: %w", ref, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("assets: reading %s: %w", ref, err)
	}
	return data, nil
}

// prepare sniffs the format, decodes the pixel dimensions and downscales
// oversized rasters.
func prepare(ref string, data []byte, maxEdge int) (Image, error) {
	format := Sniff(data, ref)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("assets: decoding %s: %w", ref, err)
	}

	if maxEdge > 0 && (cfg.Width > maxEdge || cfg.Height > maxEdge) {
		src, err := imaging.Decode(bytes.NewReader(data))
		if err != nil {
			return Image{}, fmt.Errorf("assets: decoding %s: %w", ref, err)
		}
		fitted := imaging.Fit(src, maxEdge, maxEdge, imaging.Lanczos)

		var buf bytes.Buffer
		enc := imaging.JPEG
		if format == "PNG" {
			enc = imaging.PNG
		}
		if err := imaging.Encode(&buf, fitted, enc); err != nil {
			return Image{}, fmt.Errorf("assets: re-encoding %s: %w", ref, err)
		}
		b := fitted.Bounds()
		data = buf.Bytes()
		cfg.Width, cfg.Height = b.Dx(), b.Dy()
	}

	return Image{
		Ref:    ref,
		Data:   data,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Sniff determines the embed format from the image bytes, falling back to the
// legacy ".png" reference-suffix heuristic when the magic bytes match neither
// PNG nor JPEG.
func Sniff(data []byte, ref string) string {
	if bytes.HasPrefix(data, pngSignature) {
		return "PNG"
	}
	if len(data) >= 2 && data[0] == 0xff && data[1] == 0xd8 {
		return "JPG"
	}
	if strings.Contains(strings.ToLower(ref), ".png") {
		return "PNG"
	}
	return "JPG"
}

// FitScale returns the uniform scale factor that fits a w×h image inside a
// maxW×maxH bounding box while preserving aspect ratio.
func FitScale(w, h, maxW, maxH float64) float64 {
	if w <= 0 || h <= 0 {
		return 0
	}
	sw := maxW / w
	sh := maxH / h
	if sw < sh {
		return sw
	}
	return sh
}
