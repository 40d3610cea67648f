package assets_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/billdoc/quotepdf/assets"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 40), G: uint8(y * 40), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
	return buf.Bytes()
}

func TestFetchDecodesAndCaches(t *testing.T) {
	data := testPNG(t, 4, 4)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write(data)
	}))
	defer srv.Close()

	f := assets.NewFetcher(srv.Client(), nil, time.Minute, 0)

	img, err := f.Fetch(context.Background(), srv.URL+"/logo.png")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if img.Format != "PNG" {
		t.Fatalf("expected PNG, got %q", img.Format)
	}
	if img.Width != 4 || img.Height != 4 {
		t.Fatalf("expected 4x4, got %dx%d", img.Width, img.Height)
	}

	if _, err := f.Fetch(context.Background(), srv.URL+"/logo.png"); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if n := hits.Load(); n != 1 {
		t.Fatalf("expected 1 upstream hit, got %d", n)
	}
}

func TestFetchHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := assets.NewFetcher(srv.Client(), nil, 0, 0)
	if _, err := f.Fetch(context.Background(), srv.URL+"/missing.png"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestFetchUndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not an image"))
	}))
	defer srv.Close()

	f := assets.NewFetcher(srv.Client(), nil, 0, 0)
	if _, err := f.Fetch(context.Background(), srv.URL+"/broken.png"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetchDownscalesOversizedImages(t *testing.T) {
	data := testPNG(t, 6, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	defer srv.Close()

	f := assets.NewFetcher(srv.Client(), nil, 0, 3)
	img, err := f.Fetch(context.Background(), srv.URL+"/big.png")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if img.Width > 3 || img.Height > 3 {
		t.Fatalf("expected downscale within 3px, got %dx%d", img.Width, img.Height)
	}
}

func TestSniff(t *testing.T) {
	pngData := testPNG(t, 1, 1)
	if got := assets.Sniff(pngData, "whatever"); got != "PNG" {
		t.Fatalf("png magic: got %q", got)
	}
	if got := assets.Sniff([]byte{0xff, 0xd8, 0xff, 0xe0}, "whatever"); got != "JPG" {
		t.Fatalf("jpeg magic: got %q", got)
	}
	// Unknown bytes fall back to the reference-suffix heuristic.
	if got := assets.Sniff([]byte("??"), "https://cdn.example.com/logo.PNG?v=2"); got != "PNG" {
		t.Fatalf("suffix heuristic: got %q", got)
	}
	if got := assets.Sniff([]byte("??"), "https://cdn.example.com/logo"); got != "JPG" {
		t.Fatalf("default format: got %q", got)
	}
}

func TestFitScale(t *testing.T) {
	if got := assets.FitScale(200, 100, 100, 100); got != 0.5 {
		t.Fatalf("landscape: got %v", got)
	}
	if got := assets.FitScale(50, 100, 100, 100); got != 1 {
		t.Fatalf("portrait: got %v", got)
	}
	if got := assets.FitScale(0, 0, 100, 100); got != 0 {
		t.Fatalf("degenerate: got %v", got)
	}
}
