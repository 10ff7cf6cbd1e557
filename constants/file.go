package constants

import "strings"

// SourceKind is the declared kind of an ingested document.
type SourceKind string

const (
	SourcePDF   SourceKind = "pdf"
	SourceText  SourceKind = "plain-text"
	SourceEmail SourceKind = "email"
)

// FileTypes holds the allowed format values for rows in extract_job.
var FileTypes = []string{"PDF", "TXT", "EML"}

// AllowedExtensions holds the default allowed file extensions for ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
	"eml": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat returns the extract_job format value for an extension,
// or "" if the extension is not supported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return "PDF"
	case "txt":
		return "TXT"
	case "eml":
		return "EML"
	}
	return ""
}
