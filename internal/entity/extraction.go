package entity

import (
	"github.com/akaraszi/billscan/constants"
)

// ExtractionContext is the orchestrator input. Exactly one of RawText and
// Document must be set; the orchestrator enforces the invariant at entry.
type ExtractionContext struct {
	RawText     string
	Document    *RawDocument
	Language    constants.Language
	Source      SourceIdentifiers
	Schema      []FieldSchemaEntry // immutable snapshot for this invocation
	UseStemming bool
	Debug       bool
}

// FieldMatch records one per-field pattern hit for the debug trace.
type FieldMatch struct {
	Field   string `json:"field"`
	Pattern string `json:"pattern"`
	Raw     string `json:"raw"`
	Value   string `json:"value"`
}

// DebugTrace is the optional diagnostics payload. It never affects
// success or confidence.
type DebugTrace struct {
	TextExcerpt         string             `json:"text_excerpt"`
	DecodeTier          DecodeTier         `json:"decode_tier,omitempty"`
	Matches             []FieldMatch       `json:"matches,omitempty"`
	ConfidenceBreakdown map[string]float32 `json:"confidence_breakdown,omitempty"`
}

// ExtractionResult is the terminal pipeline artifact. Ownership passes to
// the caller. Err carries the failure taxonomy when Success is false; a
// low-confidence run still returns best-effort bills for inspection.
type ExtractionResult struct {
	Success    bool
	Bills      []Bill
	Confidence float32
	Err        error
	Trace      *DebugTrace
}
