// Package i18n holds the dashboard's translation tables.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Default is the language used when nothing better matches.
const Default = "en"

var tables = map[string]map[string]string{
	"en": en,
	"hi": hi,
	"ta": ta,
	"te": te,
	"bn": bn,
}

// supported is ordered for the matcher; the first entry is the fallback.
var supported = []string{"en", "hi", "ta", "te", "bn"}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Hindi,
	language.Tamil,
	language.Telugu,
	language.Bengali,
})

// Supported returns the language codes in selector order.
func Supported() []string {
	return append([]string(nil), supported...)
}

// IsSupported reports whether lang has a translation table.
func IsSupported(lang string) bool {
	_, ok := tables[lang]
	return ok
}

// T translates key into lang. An unknown language or a key missing from
// the language's table yields the key itself.
func T(lang, key string) string {
	table, ok := tables[lang]
	if !ok {
		return key
	}
	if val, ok := table[key]; ok && val != "" {
		return val
	}
	return key
}

// Table returns a copy of the translation table for lang.
func Table(lang string) (map[string]string, bool) {
	table, ok := tables[lang]
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out, true
}

// Negotiate picks the best supported language for an Accept-Language header.
func Negotiate(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return supported[idx]
}

// FormatNumber renders v with the digit grouping of lang, keeping at most
// two fraction digits.
func FormatNumber(lang string, v float64) string {
	tag, err := language.Parse(lang)
	if err != nil || !IsSupported(lang) {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}
