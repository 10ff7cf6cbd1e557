package pipeline

import (
	"regexp"
	"strings"

	"github.com/akaraszi/billscan/constants"
	"github.com/akaraszi/billscan/internal/amount"
	"github.com/akaraszi/billscan/internal/entity"
	"github.com/akaraszi/billscan/internal/fields"
)

// Strategy produces one candidate field set from normalized text. Competing
// candidates are reconciled afterwards; a strategy never sees another
// strategy's output.
type Strategy interface {
	Name() string
	Extract(text string, ec *entity.ExtractionContext) (entity.CanonicalFields, []entity.FieldMatch)
}

// PatternStrategy runs the built-in per-language pattern banks.
type PatternStrategy struct {
	Extractor *fields.Extractor
}

func (s *PatternStrategy) Name() string { return "pattern" }

func (s *PatternStrategy) Extract(text string, ec *entity.ExtractionContext) (entity.CanonicalFields, []entity.FieldMatch) {
	return s.Extractor.Extract(text, ec.Language)
}

// SchemaStrategy runs the caller's own match patterns for schema entries
// that shadow canonical fields. A profile that knows its vendors' exact
// layouts can out-extract the generic banks this way.
type SchemaStrategy struct{}

func (s *SchemaStrategy) Name() string { return "schema" }

func (s *SchemaStrategy) Extract(text string, ec *entity.ExtractionContext) (entity.CanonicalFields, []entity.FieldMatch) {
	var cf entity.CanonicalFields
	var trace []entity.FieldMatch

	for _, e := range ec.Schema {
		if !e.Enabled || e.MatchPattern == "" {
			continue
		}
		field := canonicalFieldFor(e)
		if field == "" {
			continue
		}
		re, err := regexp.Compile(e.MatchPattern)
		if err != nil {
			continue
		}
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := m[0]
		for _, g := range m[1:] {
			if s := strings.TrimSpace(g); s != "" {
				raw = s
				break
			}
		}
		if applyCanonical(&cf, field, raw, ec.Language) {
			prov := "schema:" + e.Name
			cf.SetProvenance(field, prov)
			trace = append(trace, entity.FieldMatch{Field: field, Pattern: prov, Raw: raw, Value: raw})
		}
	}
	return cf, trace
}

// canonicalFieldFor maps a schema entry name onto the canonical field it
// shadows, or "" when it is a purely dynamic extra.
func canonicalFieldFor(e entity.FieldSchemaEntry) string {
	name := strings.ToLower(e.Name + " " + e.DisplayName)
	switch {
	case strings.Contains(name, "due"):
		return constants.FieldDueDate
	case strings.Contains(name, "issue"), strings.Contains(name, "kelt"):
		return constants.FieldIssueDate
	case strings.Contains(name, "amount"), strings.Contains(name, "total"), strings.Contains(name, "osszeg"):
		return constants.FieldAmount
	case strings.Contains(name, "currency"), strings.Contains(name, "penznem"):
		return constants.FieldCurrency
	case strings.Contains(name, "account"), strings.Contains(name, "ugyfel"):
		return constants.FieldAccountNumber
	case strings.Contains(name, "invoice"), strings.Contains(name, "szamlaszam"):
		return constants.FieldInvoiceNumber
	case strings.Contains(name, "vendor"), strings.Contains(name, "provider"), strings.Contains(name, "szolgaltato"):
		return constants.FieldVendor
	}
	return ""
}

func applyCanonical(cf *entity.CanonicalFields, field, raw string, lang constants.Language) bool {
	switch field {
	case constants.FieldAmount:
		v := amount.Parse(raw)
		if v == 0 {
			return false
		}
		cf.Amount = v
	case constants.FieldDueDate:
		t, ok := fields.ParseDate(raw, lang)
		if !ok {
			return false
		}
		cf.DueDate = t
	case constants.FieldIssueDate:
		t, ok := fields.ParseDate(raw, lang)
		if !ok {
			return false
		}
		cf.IssueDate = t
	case constants.FieldCurrency:
		cf.Currency = strings.ToUpper(strings.TrimSpace(raw))
	case constants.FieldVendor:
		cf.Vendor = strings.TrimSpace(raw)
	case constants.FieldAccountNumber:
		cf.AccountNumber = strings.TrimSpace(raw)
	case constants.FieldInvoiceNumber:
		cf.InvoiceNumber = strings.TrimSpace(raw)
	default:
		return false
	}
	return true
}
