package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akaraszi/billscan/constants"
	"github.com/akaraszi/billscan/internal/entity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMergeDefinedBeatsUndefined(t *testing.T) {
	a := entity.CanonicalFields{Amount: 0}
	b := entity.CanonicalFields{Amount: 50}

	out := Merge(a, b)
	assert.Equal(t, 50.0, out.Amount)

	// Order of candidates must not change the outcome.
	out = Merge(b, a)
	assert.Equal(t, 50.0, out.Amount)
}

func TestMergePlaceholderLosesToRealString(t *testing.T) {
	a := entity.CanonicalFields{Vendor: "Unknown"}
	b := entity.CanonicalFields{Vendor: "Acme Power"}

	assert.Equal(t, "Acme Power", Merge(a, b).Vendor)
	assert.Equal(t, "Acme Power", Merge(b, a).Vendor)
}

func TestMergeLongerStringWins(t *testing.T) {
	a := entity.CanonicalFields{Vendor: "Acme"}
	b := entity.CanonicalFields{Vendor: "Acme Power Company"}

	assert.Equal(t, "Acme Power Company", Merge(a, b).Vendor)
	assert.Equal(t, "Acme Power Company", Merge(b, a).Vendor)
}

func TestMergeLaterDateWins(t *testing.T) {
	a := entity.CanonicalFields{DueDate: day(2023, time.May, 1)}
	b := entity.CanonicalFields{DueDate: day(2023, time.June, 1)}

	assert.Equal(t, day(2023, time.June, 1), Merge(a, b).DueDate)
	assert.Equal(t, day(2023, time.June, 1), Merge(b, a).DueDate)
}

func TestMergeLargerNumberWins(t *testing.T) {
	a := entity.CanonicalFields{Amount: 124.56}
	b := entity.CanonicalFields{Amount: 45678}

	assert.Equal(t, 45678.0, Merge(a, b).Amount)
	assert.Equal(t, 45678.0, Merge(b, a).Amount)
}

func TestMergeCarriesWinnersProvenance(t *testing.T) {
	a := entity.CanonicalFields{Vendor: "Unknown"}
	a.SetProvenance(constants.FieldVendor, "vendor:first-line-heuristic")
	b := entity.CanonicalFields{Vendor: "Acme Power"}
	b.SetProvenance(constants.FieldVendor, "en:vendor:company-suffix")

	out := Merge(a, b)
	assert.Equal(t, "en:vendor:company-suffix", out.Provenance[constants.FieldVendor])
}

func TestMergeCategoryPrefersSpecific(t *testing.T) {
	a := entity.CanonicalFields{Category: constants.Other}
	b := entity.CanonicalFields{Category: constants.Utility}

	assert.Equal(t, constants.Utility, Merge(a, b).Category)
	assert.Equal(t, constants.Utility, Merge(b, a).Category)
}

func TestScoreWeights(t *testing.T) {
	cf := entity.CanonicalFields{
		Vendor:  "Acme Power",
		Amount:  124.56,
		DueDate: day(2023, time.June, 1),
	}
	total, breakdown := Score(cf)

	assert.InDelta(t, 0.55, float64(total), 0.0001)
	assert.InDelta(t, 0.20, float64(breakdown[constants.FieldVendor]), 0.0001)
	assert.InDelta(t, 0.15, float64(breakdown[constants.FieldDueDate]), 0.0001)
	assert.NotContains(t, breakdown, constants.FieldIssueDate)
}

func TestScoreIgnoresPlaceholderVendorAndOtherCategory(t *testing.T) {
	cf := entity.CanonicalFields{Vendor: "N/A", Category: constants.Other}
	total, breakdown := Score(cf)

	assert.Zero(t, total)
	assert.Empty(t, breakdown)
}

func TestScoreFullHouse(t *testing.T) {
	cf := entity.CanonicalFields{
		Vendor:        "Magyar Aram Zrt.",
		Amount:        45678,
		Currency:      "HUF",
		IssueDate:     day(2023, time.May, 15),
		DueDate:       day(2023, time.June, 1),
		AccountNumber: "556677",
		InvoiceNumber: "2023/000123",
		Category:      constants.Utility,
	}
	total, _ := Score(cf)
	assert.InDelta(t, 1.0, float64(total), 0.0001)
}

func TestStemScore(t *testing.T) {
	assert.InDelta(t, 0.0, float64(StemScore(false, 0)), 0.0001)
	assert.InDelta(t, 0.3, float64(StemScore(true, 0)), 0.0001)
	assert.InDelta(t, 0.6, float64(StemScore(true, 0.6)), 0.0001)
	assert.InDelta(t, 0.8, float64(StemScore(true, 1.0)), 0.0001)
}

func TestMapToSchemaNameHeuristics(t *testing.T) {
	cf := entity.CanonicalFields{
		Vendor:   "Acme Power",
		Amount:   124.56,
		Currency: "USD",
		DueDate:  day(2023, time.June, 1),
	}
	schema := []entity.FieldSchemaEntry{
		{Name: "payee_name", DisplayName: "Vendor", FieldType: constants.FieldTypeText, Enabled: true, DisplayOrder: 1},
		{Name: "total_amount", FieldType: constants.FieldTypeCurrency, Enabled: true, DisplayOrder: 2},
		{Name: "payment_due", FieldType: constants.FieldTypeDate, Enabled: true, DisplayOrder: 3},
		{Name: "disabled_field", DisplayName: "Vendor", FieldType: constants.FieldTypeText, Enabled: false, DisplayOrder: 4},
	}

	bill := MapToSchema(cf, schema, "", constants.LangEnglish)

	assert.Equal(t, entity.TextValue("Acme Power"), bill.Dynamic["payee_name"])
	assert.Equal(t, entity.NumberValue(124.56), bill.Dynamic["total_amount"])
	assert.Equal(t, entity.DateValue(day(2023, time.June, 1)), bill.Dynamic["payment_due"])
	assert.NotContains(t, bill.Dynamic, "disabled_field")
}

func TestMapToSchemaMatchPatternWins(t *testing.T) {
	cf := entity.CanonicalFields{InvoiceNumber: "FALLBACK-1"}
	schema := []entity.FieldSchemaEntry{
		{
			Name:         "invoice_ref",
			FieldType:    constants.FieldTypeText,
			Enabled:      true,
			MatchPattern: `Ref[:\s]+([A-Z0-9-]+)`,
		},
	}

	bill := MapToSchema(cf, schema, "order text Ref: ABC-99 end", constants.LangEnglish)
	assert.Equal(t, entity.TextValue("ABC-99"), bill.Dynamic["invoice_ref"])
}

func TestMapToSchemaBadPatternFallsBack(t *testing.T) {
	cf := entity.CanonicalFields{InvoiceNumber: "INV-7"}
	schema := []entity.FieldSchemaEntry{
		{Name: "invoice_no", FieldType: constants.FieldTypeText, Enabled: true, MatchPattern: `([`},
	}

	bill := MapToSchema(cf, schema, "anything", constants.LangEnglish)
	assert.Equal(t, entity.TextValue("INV-7"), bill.Dynamic["invoice_no"])
}

func TestMapToSchemaUnmatchableEntryLeftUnset(t *testing.T) {
	schema := []entity.FieldSchemaEntry{
		{Name: "meter_reading", FieldType: constants.FieldTypeNumber, Enabled: true},
	}

	bill := MapToSchema(entity.CanonicalFields{}, schema, "", constants.LangEnglish)
	require.NotContains(t, bill.Dynamic, "meter_reading")
}
