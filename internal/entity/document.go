package entity

import "github.com/akaraszi/billscan/constants"

// RawDocument is an owned byte buffer plus its declared source kind.
// Created at pipeline entry, discarded after decode.
type RawDocument struct {
	Data     []byte
	Kind     constants.SourceKind
	FileName string
}

// PositionedTextRun is one atomic text fragment emitted by the PDF decoder.
// Coordinates are PDF user-space units with the origin at the bottom-left,
// so larger Y means higher on the page.
type PositionedTextRun struct {
	Text     string
	X        float64
	Y        float64
	Width    float64
	Height   float64
	FontName string
	FontSize float64
}

// Page is the decoded form of one document page. Read-only after
// decode + layout reconstruction.
type Page struct {
	Number    int
	PlainText string
	Runs      []PositionedTextRun
	Lines     [][]PositionedTextRun
	Width     float64
	Height    float64
}

// DecodeTier records which decoder tier produced a document's text.
type DecodeTier string

const (
	TierStructured DecodeTier = "structured"   // object-model parse, positioned runs
	TierStream     DecodeTier = "stream-scan"  // raw Tj/TJ string literal scan
	TierScrape     DecodeTier = "byte-scrape"  // printable byte-run scrape
	TierNone       DecodeTier = "none"         // nothing recovered
)
