package constants

import "strings"

// Language selects the pattern bank and normalizer behavior.
type Language string

const (
	LangEnglish   Language = "en"
	LangHungarian Language = "hu"
)

// NormalizeLanguage maps loose language labels onto the supported set.
// Unknown labels default to English.
func NormalizeLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hu", "hun", "hungarian", "magyar":
		return LangHungarian
	default:
		return LangEnglish
	}
}
