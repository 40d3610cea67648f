package layout_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/billdoc/quotepdf/layout"
)

// fixedWidth measures every rune at the given width, which makes expected
// line breaks trivial to compute by hand.
func fixedWidth(w float64) layout.MeasureFunc {
	return func(s string) float64 {
		return float64(utf8.RuneCountInString(s)) * w
	}
}

func TestWrapSingleLine(t *testing.T) {
	lines := layout.Wrap("hello", 100, fixedWidth(10))
	if len(lines) != 1 || lines[0] != "hello" {
		t.Fatalf("expected [hello], got %q", lines)
	}
}

func TestWrapCJKColumnDeterministic(t *testing.T) {
	// 300 ideographs at 12 units each in a 250-unit column: 20 fit per line
	// (21 would measure 252), so exactly 15 lines.
	text := strings.Repeat("測", 300)
	lines := layout.Wrap(text, 250, fixedWidth(12))

	if len(lines) != 15 {
		t.Fatalf("expected 15 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != 20 {
			t.Fatalf("line %d: expected 20 runes, got %d", i, n)
		}
	}
	if strings.Join(lines, "") != text {
		t.Fatal("wrapped lines do not reassemble the input")
	}

	again := layout.Wrap(text, 250, fixedWidth(12))
	if len(again) != len(lines) {
		t.Fatalf("wrap is not deterministic: %d vs %d lines", len(again), len(lines))
	}
}

func TestWrapParagraphBreaks(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a\nb", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
		{"a\n", []string{"a"}},
		{"\n", []string{""}},
		{"", []string{""}},
	}
	for _, tc := range cases {
		got := layout.Wrap(tc.in, 100, fixedWidth(10))
		if len(got) != len(tc.want) {
			t.Fatalf("Wrap(%q): expected %q, got %q", tc.in, tc.want, got)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("Wrap(%q): expected %q, got %q", tc.in, tc.want, got)
			}
		}
	}
}

func TestWrapOversizeRune(t *testing.T) {
	// A single rune wider than the column still occupies its own line.
	lines := layout.Wrap("abc", 5, fixedWidth(10))
	if len(lines) != 3 {
		t.Fatalf("expected one rune per line, got %q", lines)
	}
}

func TestWrapNeverExceedsWidth(t *testing.T) {
	measure := fixedWidth(7)
	for _, text := range []string{
		"the quick brown fox jumps over the lazy dog",
		strings.Repeat("字", 57),
		"mixed 中文 and latin text with spaces",
	} {
		for _, width := range []float64{30, 70, 210} {
			for _, line := range layout.Wrap(text, width, measure) {
				if utf8.RuneCountInString(line) > 1 && measure(line) > width {
					t.Fatalf("line %q wider than %v", line, width)
				}
			}
		}
	}
}
