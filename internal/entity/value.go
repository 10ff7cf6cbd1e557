package entity

import (
	"fmt"
	"strings"
	"time"
)

// ValueKind tags the dynamic field value union.
type ValueKind int

const (
	KindText ValueKind = iota
	KindNumber
	KindDate
	KindBoolean
)

// Value is a tagged union for dynamic field values. Bills carry a fixed
// canonical struct plus a name->Value map for schema-defined extras, which
// keeps runtime-defined fields type safe.
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
	Date   time.Time
	Bool   bool
}

func TextValue(s string) Value    { return Value{Kind: KindText, Text: s} }
func NumberValue(f float64) Value { return Value{Kind: KindNumber, Number: f} }
func DateValue(t time.Time) Value { return Value{Kind: KindDate, Date: t} }
func BoolValue(b bool) Value      { return Value{Kind: KindBoolean, Bool: b} }

// IsZero reports whether the value carries no usable content.
func (v Value) IsZero() bool {
	switch v.Kind {
	case KindText:
		return strings.TrimSpace(v.Text) == ""
	case KindNumber:
		return v.Number == 0
	case KindDate:
		return v.Date.IsZero()
	case KindBoolean:
		return false
	}
	return true
}

// placeholders that never count as real content.
var placeholders = map[string]struct{}{
	"unknown": {},
	"n/a":     {},
	"na":      {},
	"-":       {},
	"":        {},
}

// IsPlaceholder reports whether a text value is a filler like "Unknown" or "N/A".
func (v Value) IsPlaceholder() bool {
	if v.Kind != KindText {
		return false
	}
	_, ok := placeholders[strings.ToLower(strings.TrimSpace(v.Text))]
	return ok
}

// String renders the value for logs and exports. Dates use YYYY-MM-DD.
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return fmt.Sprintf("%g", v.Number)
	case KindDate:
		if v.Date.IsZero() {
			return ""
		}
		return v.Date.Format("2006-01-02")
	case KindBoolean:
		return fmt.Sprintf("%t", v.Bool)
	}
	return ""
}

// IsPlaceholderText reports whether a bare string is a filler value.
func IsPlaceholderText(s string) bool {
	_, ok := placeholders[strings.ToLower(strings.TrimSpace(s))]
	return ok
}
