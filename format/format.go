// Package format selects the locale branch of localized text pairs and
// renders amounts and dates with the typography the generated documents use.
// The engine never translates; every user-facing string arrives as a
// primary/secondary pair and one branch is picked per the requested locale.
package format

import (
	"time"

	"golang.org/x/text/language"
)

var chineseBase, _ = language.Chinese.Base()

// Locale is a resolved render locale. The primary text branch is used for
// Chinese-script locales ("zh", "zh-TW", ...); every other locale uses the
// secondary branch.
type Locale struct {
	tag       language.Tag
	primary   bool
	fullWidth bool
}

// ParseLocale resolves a BCP 47 locale string. Unparseable input falls back
// to English.
func ParseLocale(s string) Locale {
	tag, err := language.Parse(s)
	if err != nil {
		tag = language.English
	}
	base, _ := tag.Base()
	primary := base == chineseBase
	return Locale{tag: tag, primary: primary, fullWidth: primary}
}

// Tag returns the underlying language tag.
func (l Locale) Tag() language.Tag {
	return l.tag
}

// String returns the canonical tag string, used in output file naming by
// callers.
func (l Locale) String() string {
	return l.tag.String()
}

// Pick selects the locale branch of a text pair, falling back to the other
// branch when the selected one is empty.
func (l Locale) Pick(primary, secondary string) string {
	if l.primary {
		if primary != "" {
			return primary
		}
		return secondary
	}
	if secondary != "" {
		return secondary
	}
	return primary
}

// PickOr is Pick with a placeholder for a fully absent pair.
func (l Locale) PickOr(primary, secondary, placeholder string) string {
	if s := l.Pick(primary, secondary); s != "" {
		return s
	}
	return placeholder
}

// Date renders a date as 2006-01-02, or a dash placeholder for the zero time.
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
