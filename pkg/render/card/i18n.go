package card

import "strings"

// Card title translations, keyed by lowercase locale identifier.
var titles = map[string]string{
	"en":    "Most Used Languages",
	"de":    "Meist verwendete Sprachen",
	"es":    "Lenguajes más usados",
	"fr":    "Langages les plus utilisés",
	"it":    "Linguaggi più utilizzati",
	"ja":    "最もよく使っている言語",
	"ko":    "가장 많이 사용된 언어",
	"nl":    "Meest gebruikte talen",
	"pt-br": "Linguagens mais usadas",
	"ru":    "Наиболее часто используемые языки",
	"cn":    "最常用的语言",
}

// TitleFor resolves the card title: a non-empty custom title wins, otherwise
// the locale's translation, otherwise English. Locale matching ignores case
// and falls back to the language part of a region-qualified identifier
// ("pt-BR" matches "pt-br", "de-AT" matches "de").
func TitleFor(locale, custom string) string {
	if custom != "" {
		return custom
	}

	key := strings.ToLower(strings.TrimSpace(locale))
	if title, ok := titles[key]; ok {
		return title
	}
	if base, _, found := strings.Cut(key, "-"); found {
		if title, ok := titles[base]; ok {
			return title
		}
	}
	return titles["en"]
}
