package layout

// MeasureFunc reports the rendered width of s at the font size the wrapping
// caller is drawing with. It must be a pure function of its input.
type MeasureFunc func(s string) float64

// Wrap breaks text into lines no wider than maxWidth using greedy
// character accumulation: runes are appended to the current line until adding
// the next one would exceed maxWidth, then the line is flushed. A '\n' always
// flushes, even when the current line is empty.
//
// Wrapping is character-granular, not word-granular. That is correct for CJK
// text and may split Latin words mid-word; callers wanting word wrapping for
// Latin locales need a different breaker.
//
// A rune wider than maxWidth is emitted on a line of its own rather than
// dropped. The result always contains at least one line.
func Wrap(text string, maxWidth float64, measure MeasureFunc) []string {
	var lines []string
	var line []rune
	for _, r := range text {
		if r == '\n' {
			lines = append(lines, string(line))
			line = line[:0]
			continue
		}
		candidate := string(append(line, r))
		if len(line) > 0 && measure(candidate) > maxWidth {
			lines = append(lines, string(line))
			line = []rune{r}
			continue
		}
		line = append(line, r)
	}
	if len(line) > 0 || len(lines) == 0 {
		lines = append(lines, string(line))
	}
	return lines
}
