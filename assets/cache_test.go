package assets

import (
	"testing"
	"time"
)

func TestImageCacheRoundTrip(t *testing.T) {
	c := newImageCache()
	want := Image{Ref: "a", Format: "PNG", Width: 2, Height: 2}
	c.set("a", want, time.Minute)

	got, ok := c.get("a")
	if !ok || got.Ref != "a" || got.Width != 2 {
		t.Fatalf("expected cached image, got %+v ok=%v", got, ok)
	}
	if _, ok := c.get("b"); ok {
		t.Fatal("unexpected hit for unknown key")
	}
}

func TestImageCacheExpiry(t *testing.T) {
	c := newImageCache()
	c.set("a", Image{Ref: "a"}, 5*time.Millisecond)
	time.Sleep(15 * time.Millisecond)
	if _, ok := c.get("a"); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestImageCacheZeroTTLNeverExpires(t *testing.T) {
	c := newImageCache()
	c.set("a", Image{Ref: "a"}, 0)
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.get("a"); !ok {
		t.Fatal("zero TTL entry should persist")
	}
}

func TestNilCacheIsInert(t *testing.T) {
	var c *imageCache
	c.set("a", Image{}, time.Minute)
	if _, ok := c.get("a"); ok {
		t.Fatal("nil cache returned a hit")
	}
}
