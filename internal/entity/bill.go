package entity

import (
	"time"

	"github.com/akaraszi/billscan/constants"
)

// FieldSchemaEntry is a caller-supplied dynamic field definition.
// Read-only within the pipeline.
type FieldSchemaEntry struct {
	Name         string              `json:"name"`
	DisplayName  string              `json:"display_name"`
	FieldType    constants.FieldType `json:"field_type"`
	Enabled      bool                `json:"is_enabled"`
	DisplayOrder int                 `json:"display_order"`
	MatchPattern string              `json:"match_pattern,omitempty"`
}

// CanonicalFields is the fixed set the pipeline always attempts to populate.
// Zero values mean "not found"; Provenance records which pattern or strategy
// produced each populated field.
type CanonicalFields struct {
	Vendor        string
	Amount        float64
	Currency      string
	IssueDate     time.Time
	DueDate       time.Time
	AccountNumber string
	InvoiceNumber string
	Category      constants.Category
	Provenance    map[string]string
}

// SetProvenance records the producing pattern/strategy for a canonical field.
func (c *CanonicalFields) SetProvenance(field, source string) {
	if c.Provenance == nil {
		c.Provenance = map[string]string{}
	}
	c.Provenance[field] = source
}

// HasVendorOrAmount reports whether at least one of the two success-gating
// fields is populated.
func (c *CanonicalFields) HasVendorOrAmount() bool {
	return (c.Vendor != "" && !IsPlaceholderText(c.Vendor)) || c.Amount != 0
}

// SourceIdentifiers ties a bill back to where its document came from.
type SourceIdentifiers struct {
	Type         constants.SourceKind `json:"type"`
	MessageID    string               `json:"message_id,omitempty"`
	AttachmentID string               `json:"attachment_id,omitempty"`
	FileName     string               `json:"file_name,omitempty"`
}

// Bill is the terminal artifact of one extraction: the canonical fields plus
// dynamic fields keyed by FieldSchemaEntry.Name.
type Bill struct {
	CanonicalFields
	Dynamic          map[string]Value
	Source           SourceIdentifiers
	ExtractionMethod string
}

// SetDynamic stores a dynamic field value, refusing to overwrite an existing
// non-placeholder value (lower-priority sources never clobber earlier ones).
func (b *Bill) SetDynamic(name string, v Value) bool {
	if b.Dynamic == nil {
		b.Dynamic = map[string]Value{}
	}
	if cur, ok := b.Dynamic[name]; ok && !cur.IsZero() && !cur.IsPlaceholder() {
		return false
	}
	b.Dynamic[name] = v
	return true
}
