package fields

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akaraszi/billscan/constants"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExtractEnglishUtilityBill(t *testing.T) {
	text := "Acme Power Company\n" +
		"Account Number: ACCT12345\n" +
		"Invoice Number: INV-2023-0601\n" +
		"Statement Date: 05/15/2023\n" +
		"Due Date: 06/01/2023\n" +
		"Current Charges: $124.56\n" +
		"Thank you for your electricity business."

	ex := NewExtractor(0, nil)
	cf, trace := ex.Extract(text, constants.LangEnglish)

	assert.Equal(t, "ACCT12345", cf.AccountNumber, "identifier case must survive folding")
	assert.Equal(t, "INV-2023-0601", cf.InvoiceNumber)
	assert.InDelta(t, 124.56, cf.Amount, 0.001)
	assert.Equal(t, "USD", cf.Currency)
	assert.Equal(t, date(2023, time.June, 1), cf.DueDate)
	assert.Equal(t, date(2023, time.May, 15), cf.IssueDate)
	assert.Equal(t, "Acme Power Company", cf.Vendor)
	assert.Equal(t, constants.Utility, cf.Category)
	assert.NotEmpty(t, trace)
	assert.Equal(t, "en:amount:current-charges", cf.Provenance[constants.FieldAmount])
}

func TestExtractHungarianBill(t *testing.T) {
	// Accent-folded input, the form the extractor receives after locale
	// normalization.
	text := "Magyar Aram Zrt.\n" +
		"Ugyfelszam: 556677\n" +
		"Szamlaszam: 2023/000123\n" +
		"Szamla kelte: 2023.05.15.\n" +
		"Fizetesi hatarido: 2023.06.01\n" +
		"Fizetendo osszeg: 45 678 Ft\n" +
		"Villamos energia szolgaltatas"

	ex := NewExtractor(0, nil)
	cf, _ := ex.Extract(text, constants.LangHungarian)

	assert.Equal(t, "556677", cf.AccountNumber)
	assert.Equal(t, "2023/000123", cf.InvoiceNumber)
	assert.InDelta(t, 45678, cf.Amount, 0.001)
	assert.Equal(t, "HUF", cf.Currency)
	assert.Equal(t, date(2023, time.June, 1), cf.DueDate)
	assert.Equal(t, date(2023, time.May, 15), cf.IssueDate)
	assert.Equal(t, "hu:amount:fizetendo-osszeg", cf.Provenance[constants.FieldAmount])
}

func TestExtractAccentedInputStillMatches(t *testing.T) {
	// Raw accented text must match the accent-free banks because the
	// extractor folds before matching.
	text := "Fizetendő összeg: 12 345 Ft\nFizetési határidő: 2023.07.10."

	ex := NewExtractor(0, nil)
	cf, _ := ex.Extract(text, constants.LangHungarian)

	assert.InDelta(t, 12345, cf.Amount, 0.001)
	assert.Equal(t, date(2023, time.July, 10), cf.DueDate)
}

func TestOrderedBankFirstWins(t *testing.T) {
	// Both "Total Amount Due" and plain "Total" are present; the earlier
	// bank entry decides.
	text := "Total: 999.99\nTotal Amount Due: 42.00"

	ex := NewExtractor(0, nil)
	cf, _ := ex.Extract(text, constants.LangEnglish)

	assert.InDelta(t, 42.00, cf.Amount, 0.001)
	assert.Equal(t, "en:amount:total-amount-due", cf.Provenance[constants.FieldAmount])
}

func TestKeywordWindowScoring(t *testing.T) {
	// No labeled amount pattern applies. 500 sits near both a bill keyword
	// and a payable keyword; 77 sits near neither.
	text := "page 77 of the report\nyour invoice balance is 500 this month"

	ex := NewExtractor(0, nil)
	cf, _ := ex.Extract(text, constants.LangEnglish)

	assert.InDelta(t, 500, cf.Amount, 0.001)
	assert.Equal(t, "amount:keyword-window", cf.Provenance[constants.FieldAmount])
}

func TestKeywordWindowBoundsDistance(t *testing.T) {
	filler := make([]byte, 80)
	for i := range filler {
		filler[i] = 'x'
	}
	// The keyword sits well outside the 50-char window, so the number gets
	// no contextual score and the currency-adjacent fallback finds nothing.
	text := "invoice " + string(filler) + " 500"

	ex := NewExtractor(50, nil)
	cf, _ := ex.Extract(text, constants.LangEnglish)

	assert.Zero(t, cf.Amount)
}

func TestCurrencyAdjacentFallback(t *testing.T) {
	text := "random preamble\n$89.10 paid by card"

	ex := NewExtractor(0, nil)
	cf, _ := ex.Extract(text, constants.LangEnglish)

	require.InDelta(t, 89.10, cf.Amount, 0.001)
	assert.Equal(t, "amount:currency-adjacent", cf.Provenance[constants.FieldAmount])
	assert.Equal(t, "USD", cf.Currency)
}

func TestVendorLineHeuristic(t *testing.T) {
	text := "ab\nTelekom Hungary\nsome body text without labels"

	ex := NewExtractor(0, nil)
	cf, _ := ex.Extract(text, constants.LangEnglish)

	assert.Equal(t, "Telekom Hungary", cf.Vendor)
	assert.Equal(t, "vendor:first-line-heuristic", cf.Provenance[constants.FieldVendor])
}

func TestCategorySelectsVendorPatterns(t *testing.T) {
	// "Metro City Water" carries no generic company suffix; the utility
	// classification brings in the utility-specific vendor bank.
	text := "Metro City Water\nAmount Due: $30.00\nYour water and gas service"

	ex := NewExtractor(0, nil)
	cf, _ := ex.Extract(text, constants.LangEnglish)

	assert.Equal(t, constants.Utility, cf.Category)
	assert.Equal(t, "Metro City Water", cf.Vendor)
	assert.Equal(t, "en:vendor:utility-suffix", cf.Provenance[constants.FieldVendor])
}

func TestCategorySelectsVendorPatternsHungarian(t *testing.T) {
	text := "Fovarosi Vizmuvek\nFizetendo osszeg: 12 500 Ft\nviz szolgaltatas"

	ex := NewExtractor(0, nil)
	cf, _ := ex.Extract(text, constants.LangHungarian)

	assert.Equal(t, constants.Utility, cf.Category)
	assert.Equal(t, "Fovarosi Vizmuvek", cf.Vendor)
	assert.Equal(t, "hu:vendor:muvek-suffix", cf.Provenance[constants.FieldVendor])
}

func TestVendorHeuristicNeedsBillSignal(t *testing.T) {
	// Long prose lines but no amounts, dates, keywords, or category hits:
	// the first line must not become a vendor.
	text := "Meeting notes from Tuesday\nWe discussed the garden and the new fence."

	ex := NewExtractor(0, nil)
	cf, _ := ex.Extract(text, constants.LangEnglish)

	assert.Empty(t, cf.Vendor)
	assert.False(t, cf.HasVendorOrAmount())
}

func TestVendorHeuristicSkipsNumericLines(t *testing.T) {
	text := "20230601 1234\nAcme Waterworks\nmore text here"

	ex := NewExtractor(0, nil)
	cf, _ := ex.Extract(text, constants.LangEnglish)

	assert.Equal(t, "Acme Waterworks", cf.Vendor)
}

func TestExtractEmptyText(t *testing.T) {
	ex := NewExtractor(0, nil)
	cf, trace := ex.Extract("", constants.LangEnglish)

	assert.False(t, cf.HasVendorOrAmount())
	assert.Empty(t, trace)
}
