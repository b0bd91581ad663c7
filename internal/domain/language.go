package domain

import "strings"

// Language is a UI/report language code.
type Language string

const (
	LangEnglish Language = "en"
	LangTelugu  Language = "te"
	LangHindi   Language = "hi"
	LangTamil   Language = "ta"
	LangKannada Language = "kn"
)

var languageNames = map[Language]string{
	LangEnglish: "English",
	LangTelugu:  "Telugu",
	LangHindi:   "Hindi",
	LangTamil:   "Tamil",
	LangKannada: "Kannada",
}

// ParseLanguage normalises a code, falling back to English.
func ParseLanguage(code string) Language {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	if _, ok := languageNames[lang]; ok {
		return lang
	}
	return LangEnglish
}

// Name returns the English name of the language.
func (l Language) Name() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return languageNames[LangEnglish]
}

// Known reports whether the code is supported.
func (l Language) Known() bool {
	_, ok := languageNames[l]
	return ok
}
