package format

import (
	"math"
	"strings"

	"golang.org/x/text/message"
)

// Amount renders a numeric amount with locale-aware thousands grouping.
// Whole amounts render without decimals; fractional amounts keep two.
// For full-width locales the ASCII digits and separators are remapped to
// their full-width forms (see FullWidth).
func (l Locale) Amount(v float64) string {
	p := message.NewPrinter(l.tag)
	var s string
	if v == math.Trunc(v) {
		s = p.Sprintf("%d", int64(v))
	} else {
		s = p.Sprintf("%.2f", v)
	}
	if l.fullWidth {
		s = FullWidth(s)
	}
	return s
}

// Money renders a currency code followed by the grouped amount. Full-width
// locales join the two with an ideographic space, e.g. "TWD　９０，３００".
func (l Locale) Money(code string, v float64) string {
	sep := " "
	if l.fullWidth {
		sep = "　"
	}
	return code + sep + l.Amount(v)
}

// Percent renders a percentage value, e.g. "5%" or "12.5%".
func (l Locale) Percent(v float64) string {
	p := message.NewPrinter(l.tag)
	if v == math.Trunc(v) {
		return p.Sprintf("%d%%", int64(v))
	}
	s := p.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s + "%"
}

var fullWidthMap = map[rune]rune{
	'0': '０', '1': '１', '2': '２', '3': '３', '4': '４',
	'5': '５', '6': '６', '7': '７', '8': '８', '9': '９',
	',': '，', '.': '．', ' ': '　',
}

// FullWidth remaps ASCII digits, comma, period and space to their full-width
// Unicode equivalents. This is a presentation policy of the target
// typography, applied to currency amounts only.
func FullWidth(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		if fw, ok := fullWidthMap[r]; ok {
			r = fw
		}
		b.WriteRune(r)
	}
	return b.String()
}
