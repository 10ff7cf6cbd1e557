package reconcile

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/akaraszi/billscan/constants"
	"github.com/akaraszi/billscan/internal/amount"
	"github.com/akaraszi/billscan/internal/entity"
	"github.com/akaraszi/billscan/internal/fields"
)

// MapToSchema projects reconciled canonical fields onto the caller's field
// schema, producing the bill. Entries resolve in display order: an explicit
// MatchPattern run against the document text wins, then name heuristics
// bind the entry to a canonical field. Disabled entries are skipped and an
// already-set non-placeholder dynamic value is never overwritten.
func MapToSchema(cf entity.CanonicalFields, schema []entity.FieldSchemaEntry, text string, lang constants.Language) entity.Bill {
	bill := entity.Bill{CanonicalFields: cf}

	entries := make([]entity.FieldSchemaEntry, 0, len(schema))
	for _, e := range schema {
		if e.Enabled {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DisplayOrder < entries[j].DisplayOrder
	})

	for _, e := range entries {
		if e.MatchPattern != "" {
			if v, ok := matchPatternValue(e, text, lang); ok {
				bill.SetDynamic(e.Name, v)
				continue
			}
		}
		if v, ok := heuristicValue(e, cf); ok {
			bill.SetDynamic(e.Name, v)
		}
	}
	return bill
}

// matchPatternValue applies the entry's own regex to the document text. An
// invalid pattern is treated as no match, not an error; one bad schema row
// must not fail the whole mapping.
func matchPatternValue(e entity.FieldSchemaEntry, text string, lang constants.Language) (entity.Value, bool) {
	re, err := regexp.Compile(e.MatchPattern)
	if err != nil {
		return entity.Value{}, false
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return entity.Value{}, false
	}
	raw := m[0]
	for _, g := range m[1:] {
		if s := strings.TrimSpace(g); s != "" {
			raw = s
			break
		}
	}
	return convert(raw, e.FieldType, lang)
}

// heuristicValue binds a schema entry to a canonical field by name
// substring. The checks run most specific first so "invoice_date" lands on
// the issue date, not the invoice number.
func heuristicValue(e entity.FieldSchemaEntry, cf entity.CanonicalFields) (entity.Value, bool) {
	name := strings.ToLower(e.Name + " " + e.DisplayName)

	switch {
	case containsOne(name, "due"):
		return dateOrNothing(cf.DueDate)
	case containsOne(name, "issue", "invoice_date", "invoice date", "statement date", "kelt"):
		return dateOrNothing(cf.IssueDate)
	case containsOne(name, "amount", "total", "osszeg", "charge"):
		return numberOrNothing(cf.Amount)
	case containsOne(name, "currency", "penznem"):
		return textOrNothing(cf.Currency)
	case containsOne(name, "account", "customer", "ugyfel"):
		return textOrNothing(cf.AccountNumber)
	case containsOne(name, "invoice", "bill_no", "szamlaszam", "reference"):
		return textOrNothing(cf.InvoiceNumber)
	case containsOne(name, "vendor", "provider", "biller", "szolgaltato", "payee"):
		return textOrNothing(cf.Vendor)
	case containsOne(name, "category", "kategoria", "type"):
		if cf.Category == "" {
			return entity.Value{}, false
		}
		return entity.TextValue(string(cf.Category)), true
	case containsOne(name, "date", "datum"):
		// Generic date entries fall back to whichever date exists,
		// preferring the due date.
		if v, ok := dateOrNothing(cf.DueDate); ok {
			return v, ok
		}
		return dateOrNothing(cf.IssueDate)
	}
	return entity.Value{}, false
}

func convert(raw string, ft constants.FieldType, lang constants.Language) (entity.Value, bool) {
	switch ft {
	case constants.FieldTypeNumber, constants.FieldTypeCurrency:
		v := amount.Parse(raw)
		if v == 0 {
			return entity.Value{}, false
		}
		return entity.NumberValue(v), true
	case constants.FieldTypeDate:
		t, ok := fields.ParseDate(raw, lang)
		if !ok {
			return entity.Value{}, false
		}
		return entity.DateValue(t), true
	case constants.FieldTypeBoolean:
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "true", "yes", "igen", "1":
			return entity.BoolValue(true), true
		case "false", "no", "nem", "0":
			return entity.BoolValue(false), true
		}
		return entity.Value{}, false
	default:
		return textOrNothing(strings.TrimSpace(raw))
	}
}

func containsOne(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func textOrNothing(s string) (entity.Value, bool) {
	if s == "" || entity.IsPlaceholderText(s) {
		return entity.Value{}, false
	}
	return entity.TextValue(s), true
}

func numberOrNothing(f float64) (entity.Value, bool) {
	if f == 0 {
		return entity.Value{}, false
	}
	return entity.NumberValue(f), true
}

func dateOrNothing(t time.Time) (entity.Value, bool) {
	if t.IsZero() {
		return entity.Value{}, false
	}
	return entity.DateValue(t), true
}
