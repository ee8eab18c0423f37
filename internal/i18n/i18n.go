// Package i18n holds the static UI translation tables.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

const Default = "en"

var tables = map[string]map[string]string{
	"en": english,
	"fr": french,
	"pt": portuguese,
}

// Supported lists the language codes in matcher preference order.
var Supported = []string{"en", "fr", "pt"}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
	language.Portuguese,
})

// T translates key, falling back to English and then to the key itself.
func T(lang, key string) string {
	if v, ok := tables[lang][key]; ok {
		return v
	}
	if v, ok := english[key]; ok {
		return v
	}
	return key
}

// Table returns a copy of the whole table for lang (English if unknown).
func Table(lang string) map[string]string {
	src, ok := tables[lang]
	if !ok {
		src = english
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Negotiate picks a supported language. An explicit override such as ?lang=fr
// wins over the Accept-Language header.
func Negotiate(override, acceptLanguage, fallback string) string {
	if l := strings.ToLower(strings.TrimSpace(override)); l != "" {
		if _, ok := tables[l]; ok {
			return l
		}
	}
	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			if _, idx, conf := matcher.Match(tags...); conf != language.No {
				return Supported[idx]
			}
		}
	}
	if _, ok := tables[fallback]; ok {
		return fallback
	}
	return Default
}
