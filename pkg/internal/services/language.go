package services

import (
	"github.com/pemistahl/lingua-go"
)

var languageDetector lingua.LanguageDetector

func init() {
	languageDetector = lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.Russian,
			lingua.French,
			lingua.German,
			lingua.Spanish,
			lingua.Chinese,
			lingua.Japanese,
		).
		Build()
}

// DetectLanguage tags post text with an ISO 639-1 code, or "unknown" when
// the detector cannot tell.
func DetectLanguage(content string) string {
	if language, ok := languageDetector.DetectLanguageOf(content); ok {
		return language.IsoCode639_1().String()
	}
	return "unknown"
}
