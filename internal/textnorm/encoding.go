package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// mojibakeMarker shows up when UTF-8 multi-byte sequences were mis-decoded
// as Latin-1 ("é" becomes "Ã©").
const mojibakeMarker = "Ã"

// charMapFallback covers the Hungarian accented set for streams the generic
// re-decode cannot repair (typically Windows-1252 round trips that mangled
// the 0x80-0x9F range).
var charMapFallback = []struct{ broken, fixed string }{
	{"Ã¡", "á"}, {"Ã©", "é"}, {"Ã­", "í"}, {"Ã³", "ó"}, {"Ãº", "ú"},
	{"Ã¶", "ö"}, {"Ã¼", "ü"}, {"Å‘", "ő"}, {"Å±", "ű"},
	{"Ã", "Á"}, {"Ã‰", "É"}, {"Ã", "Í"}, {"Ã“", "Ó"}, {"Ãš", "Ú"},
	{"Ã–", "Ö"}, {"Ãœ", "Ü"}, {"Å", "Ő"}, {"Å°", "Ű"},
}

// RepairEncoding fixes UTF-8 text that was mis-decoded as Latin-1. Text
// without the marker character passes through untouched.
func RepairEncoding(s string) string {
	if !strings.Contains(s, mojibakeMarker) {
		return s
	}

	// Re-interpret: encode the runes back to their single-byte form, then
	// read the byte sequence as UTF-8.
	for _, cm := range []*charmap.Charmap{charmap.ISO8859_1, charmap.Windows1252} {
		if fixed, err := cm.NewEncoder().String(s); err == nil && utf8.ValidString(fixed) {
			if !strings.Contains(fixed, mojibakeMarker) {
				return fixed
			}
		}
	}

	// Deterministic character-map fallback.
	for _, cm := range charMapFallback {
		s = strings.ReplaceAll(s, cm.broken, cm.fixed)
	}
	return s
}

// foldTransform strips combining marks after canonical decomposition,
// so "fizetendő" folds to "fizetendo".
var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldDiacritics lowercases and removes diacritics, for accent-insensitive
// keyword matching.
func FoldDiacritics(s string) string {
	return strings.ToLower(FoldAccents(s))
}

// FoldAccents removes diacritics but preserves case, so captures taken from
// the folded text keep their original casing.
func FoldAccents(s string) string {
	out, _, err := transform.String(foldTransform, s)
	if err != nil {
		return s
	}
	return out
}
