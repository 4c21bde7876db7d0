package constants

import "strings"

type Language string

const (
	LanguageEN Language = "EN"
	LanguageFR Language = "FR"
	LanguageAR Language = "AR"
)

var languageCases = []Language{LanguageEN, LanguageFR, LanguageAR}

// LanguageTryFrom resolves a two-letter code, ok is false for unknown codes.
func LanguageTryFrom(code string) (Language, bool) {
	l := Language(strings.TrimSpace(code))
	for _, c := range languageCases {
		if c == l {
			return c, true
		}
	}
	return "", false
}

// LanguageFromName is case-insensitive. Names and codes coincide for languages.
func LanguageFromName(name string) (Language, bool) {
	return LanguageTryFrom(strings.ToUpper(name))
}

func LanguageFallback() Language {
	return LanguageEN
}

func LanguageValues() []string {
	out := make([]string, 0, len(languageCases))
	for _, c := range languageCases {
		out = append(out, string(c))
	}
	return out
}

func ResolveLanguage(value string) Language {
	if l, ok := LanguageTryFrom(value); ok {
		return l
	}
	if l, ok := LanguageFromName(value); ok {
		return l
	}
	return LanguageFallback()
}

func (l Language) IsValid() bool {
	_, ok := LanguageTryFrom(string(l))
	return ok
}

func (l Language) String() string {
	return string(l)
}
