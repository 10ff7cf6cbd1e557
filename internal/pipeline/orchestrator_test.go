package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akaraszi/billscan/constants"
	"github.com/akaraszi/billscan/internal/common"
	"github.com/akaraszi/billscan/internal/entity"
	"github.com/akaraszi/billscan/internal/schema"
)

func testConfig() common.ExtractConfig {
	return common.ExtractConfig{
		DecodeTimeout:     5 * time.Second,
		PageTimeout:       2 * time.Second,
		PipelineTimeout:   10 * time.Second,
		KeywordWindow:     50,
		MinConfidence:     0.2,
		MinStemConfidence: 0.3,
	}
}

const englishBillText = `Acme Power Company
Account Number: ACCT12345
Invoice Number: INV-2023-0601
Statement Date: 05/15/2023
Due Date: 06/01/2023
Current Charges: $124.56
Thank you for your electricity business.`

const hungarianBillText = `Magyar Áram Zrt.
Ügyfélszám: 556677
Számlaszám: 2023/000123
Számla kelte: 2023.05.15.
Fizetési határidő: 2023.06.01
Fizetendő összeg: 45 678 Ft`

func TestRunEnglishRawText(t *testing.T) {
	o := NewOrchestrator(testConfig(), nil)
	res := o.Run(context.Background(), &entity.ExtractionContext{
		RawText: englishBillText,
		Schema:  schema.Default(),
	})

	require.True(t, res.Success, "err: %v", res.Err)
	require.Len(t, res.Bills, 1)
	bill := res.Bills[0]
	assert.Equal(t, "Acme Power Company", bill.Vendor)
	assert.InDelta(t, 124.56, bill.Amount, 0.001)
	assert.Equal(t, "USD", bill.Currency)
	assert.Equal(t, "ACCT12345", bill.AccountNumber)
	assert.Equal(t, time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), bill.DueDate)
	assert.Equal(t, constants.Utility, bill.Category)
	assert.GreaterOrEqual(t, res.Confidence, float32(0.2))
}

func TestRunHungarianDetectsLanguage(t *testing.T) {
	o := NewOrchestrator(testConfig(), nil)
	res := o.Run(context.Background(), &entity.ExtractionContext{
		RawText: hungarianBillText,
		Schema:  schema.Default(),
	})

	require.True(t, res.Success, "err: %v", res.Err)
	require.Len(t, res.Bills, 1)
	bill := res.Bills[0]
	assert.InDelta(t, 45678, bill.Amount, 0.001)
	assert.Equal(t, "HUF", bill.Currency)
	assert.Equal(t, "556677", bill.AccountNumber)
	assert.Equal(t, time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), bill.DueDate)
}

func TestRunIsIdempotent(t *testing.T) {
	o := NewOrchestrator(testConfig(), nil)
	ctx := context.Background()

	first := o.Run(ctx, &entity.ExtractionContext{RawText: englishBillText, Schema: schema.Default()})
	second := o.Run(ctx, &entity.ExtractionContext{RawText: englishBillText, Schema: schema.Default()})

	require.True(t, first.Success)
	require.True(t, second.Success)
	assert.Equal(t, first.Bills[0].CanonicalFields.Vendor, second.Bills[0].CanonicalFields.Vendor)
	assert.Equal(t, first.Bills[0].Amount, second.Bills[0].Amount)
	assert.Equal(t, first.Confidence, second.Confidence)
}

func TestRunRejectsAmbiguousInput(t *testing.T) {
	o := NewOrchestrator(testConfig(), nil)

	res := o.Run(context.Background(), &entity.ExtractionContext{
		RawText:  "text",
		Document: &entity.RawDocument{Data: []byte("x"), Kind: constants.SourceText},
	})
	require.False(t, res.Success)
	assert.True(t, errors.Is(res.Err, common.ErrInvalidInput))

	res = o.Run(context.Background(), &entity.ExtractionContext{})
	require.False(t, res.Success)
	assert.Equal(t, "InvalidInput", common.FailureKind(res.Err))
}

func TestRunNoBillContent(t *testing.T) {
	o := NewOrchestrator(testConfig(), nil)
	res := o.Run(context.Background(), &entity.ExtractionContext{
		RawText: "ab cd\nef gh",
		Schema:  schema.Default(),
	})

	require.False(t, res.Success)
	assert.True(t, errors.Is(res.Err, common.ErrLowConfidence))
	assert.Equal(t, "LowConfidence", common.FailureKind(res.Err))
	// Best-effort output still comes back for inspection.
	assert.Len(t, res.Bills, 1)
}

func TestRunProseIsNotABill(t *testing.T) {
	// Ordinary prose with full-length lines: the opening line must not be
	// promoted to a vendor, so nothing clears the threshold.
	o := NewOrchestrator(testConfig(), nil)
	res := o.Run(context.Background(), &entity.ExtractionContext{
		RawText: "Meeting notes from Tuesday\nWe discussed the garden and the new fence.",
		Schema:  schema.Default(),
	})

	require.False(t, res.Success)
	assert.True(t, errors.Is(res.Err, common.ErrLowConfidence))
	assert.Less(t, res.Confidence, float32(0.2))
	require.Len(t, res.Bills, 1)
	assert.Empty(t, res.Bills[0].Vendor)
	assert.Zero(t, res.Bills[0].Amount)
}

func TestRunSchemaStrategyOverridesPattern(t *testing.T) {
	// The profile knows this vendor's exact layout; its pattern finds an
	// amount the generic banks label differently.
	sch := append(schema.Default(), entity.FieldSchemaEntry{
		Name:         "grand_total",
		FieldType:    constants.FieldTypeCurrency,
		Enabled:      true,
		DisplayOrder: 20,
		MatchPattern: `Grand[ ]Sum[:\s]+([0-9 ]+)`,
	})

	o := NewOrchestrator(testConfig(), nil)
	res := o.Run(context.Background(), &entity.ExtractionContext{
		RawText:  "Vendor: Acme Utilities\nGrand Sum: 99 000\naccount payment bill",
		Language: constants.LangEnglish,
		Schema:   sch,
	})

	require.True(t, res.Success, "err: %v", res.Err)
	assert.InDelta(t, 99000, res.Bills[0].Amount, 0.001)
}

func TestRunHungarianStemmingPath(t *testing.T) {
	// No labeled field patterns apply, but the text is saturated with
	// billing stems; the stemming path clears its own threshold.
	text := "Tisztelt Ügyfelünk! A számlája fizetendő összege esedékes. " +
		"A befizetés határideje hamarosan lejár. Díja: 5 990 Ft"

	o := NewOrchestrator(testConfig(), nil)
	res := o.Run(context.Background(), &entity.ExtractionContext{
		RawText:     text,
		Language:    constants.LangHungarian,
		Schema:      schema.Default(),
		UseStemming: true,
	})

	require.True(t, res.Success, "err: %v", res.Err)
	// Field patterns alone cannot reach this score on label-free prose;
	// only the stem coverage path can.
	assert.GreaterOrEqual(t, res.Confidence, float32(0.5))
}

func TestRunEmailDocument(t *testing.T) {
	msg := "From: billing@acme.example\r\n" +
		"To: user@example.com\r\n" +
		"Message-Id: <abc123@acme.example>\r\n" +
		"Subject: Your bill\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"Acme Power Company\r\n" +
		"Account Number: ACCT12345\r\n" +
		"Due Date: 06/01/2023\r\n" +
		"Total Amount Due: $42.00\r\n"

	o := NewOrchestrator(testConfig(), nil)
	res := o.Run(context.Background(), &entity.ExtractionContext{
		Document: &entity.RawDocument{Data: []byte(msg), Kind: constants.SourceEmail, FileName: "bill.eml"},
		Schema:   schema.Default(),
	})

	require.True(t, res.Success, "err: %v", res.Err)
	require.Len(t, res.Bills, 1)
	assert.InDelta(t, 42.00, res.Bills[0].Amount, 0.001)
	assert.Equal(t, "ACCT12345", res.Bills[0].AccountNumber)
}

func TestRunDebugTrace(t *testing.T) {
	o := NewOrchestrator(testConfig(), nil)
	res := o.Run(context.Background(), &entity.ExtractionContext{
		RawText: englishBillText,
		Schema:  schema.Default(),
		Debug:   true,
	})

	require.True(t, res.Success)
	require.NotNil(t, res.Trace)
	assert.NotEmpty(t, res.Trace.Matches)
	assert.NotEmpty(t, res.Trace.TextExcerpt)
	assert.NotEmpty(t, res.Trace.ConfidenceBreakdown)
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, constants.LangHungarian, DetectLanguage("Fizetendő összeg: 100 Ft"))
	assert.Equal(t, constants.LangEnglish, DetectLanguage("Total amount due: $10"))
	assert.Equal(t, constants.LangEnglish, DetectLanguage(""))
}
