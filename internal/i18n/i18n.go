// Package i18n resolves translatable copy against a participant locale.
package i18n

import "sort"

// Locale selects which language rendering of copy to produce.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleNL Locale = "nl"
)

// Translatable is a reference to translatable copy: one string per locale.
// It is a value type; construct it fully and do not mutate it afterwards.
type Translatable map[Locale]string

// NewTranslatable builds a Translatable from english and dutch copy.
func NewTranslatable(en, nl string) Translatable {
	return Translatable{LocaleEN: en, LocaleNL: nl}
}

// Translate resolves t for loc. It is total: a missing locale falls back to
// english, then to the lexically smallest locale present, then to "".
// The result is stable for a given (t, loc) pair.
func Translate(t Translatable, loc Locale) string {
	if s, ok := t[loc]; ok {
		return s
	}
	if s, ok := t[LocaleEN]; ok {
		return s
	}
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, string(k))
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	return t[Locale(keys[0])]
}

// Header is the localized page header supplied by the flow driver.
type Header struct {
	Title Translatable
}

// PreparedHeader is a header with its copy resolved for display.
type PreparedHeader struct {
	Title string
}

// PrepareHeader resolves the header title for loc. Pure pass-through to
// Translate; no side effects.
func PrepareHeader(h Header, loc Locale) PreparedHeader {
	return PreparedHeader{Title: Translate(h.Title, loc)}
}
