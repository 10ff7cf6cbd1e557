package schema

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akaraszi/billscan/constants"
	"github.com/akaraszi/billscan/internal/common"
)

func TestParseValidSchema(t *testing.T) {
	data := []byte(`[
		{"name": "payee", "display_name": "Payee", "field_type": "text", "is_enabled": true, "display_order": 1},
		{"name": "total", "field_type": "currency", "is_enabled": true, "display_order": 2, "match_pattern": "Total[:\\s]+([0-9.]+)"}
	]`)

	entries, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "payee", entries[0].Name)
	assert.Equal(t, constants.FieldTypeCurrency, entries[1].FieldType)
	assert.Equal(t, `Total[:\s]+([0-9.]+)`, entries[1].MatchPattern)
}

func TestParseRejectsUnknownFieldType(t *testing.T) {
	data := []byte(`[{"name": "x", "field_type": "blob"}]`)

	_, err := Parse(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrSchemaUnavailable))
	assert.Equal(t, "SchemaUnavailable", common.FailureKind(err))
}

func TestParseRejectsDuplicateNames(t *testing.T) {
	data := []byte(`[
		{"name": "total", "field_type": "number"},
		{"name": "Total", "field_type": "currency"}
	]`)

	_, err := Parse(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrSchemaUnavailable))
}

func TestParseRejectsNonArray(t *testing.T) {
	_, err := Parse([]byte(`{"name": "x"}`))
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte(`{{{`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrSchemaUnavailable))
}

func TestDefaultCoversCanonicalFields(t *testing.T) {
	entries := Default()
	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		assert.True(t, e.Enabled)
		names[e.Name] = true
	}
	for _, want := range []string{
		constants.FieldVendor, constants.FieldAmount, constants.FieldCurrency,
		constants.FieldIssueDate, constants.FieldDueDate,
		constants.FieldAccountNumber, constants.FieldInvoiceNumber, constants.FieldCategory,
	} {
		assert.True(t, names[want], "missing default entry %s", want)
	}
}

func TestStaticProviderFallsBackToDefault(t *testing.T) {
	p := &StaticProvider{}
	entries, err := p.FetchFieldSchema(context.Background(), "profile-1")
	require.NoError(t, err)
	assert.Len(t, entries, len(Default()))
}
