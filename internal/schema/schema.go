// Package schema loads and validates caller-supplied field schemas. A bad
// or missing schema degrades the pipeline to the canonical default fields,
// it never fails an extraction on its own.
package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/akaraszi/billscan/constants"
	"github.com/akaraszi/billscan/internal/common"
	"github.com/akaraszi/billscan/internal/entity"
)

// Provider fetches the field schema configured for a profile.
type Provider interface {
	FetchFieldSchema(ctx context.Context, profileID string) ([]entity.FieldSchemaEntry, error)
}

const fieldSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["name", "field_type"],
    "properties": {
      "name": {"type": "string", "minLength": 1, "maxLength": 64},
      "display_name": {"type": "string", "maxLength": 128},
      "field_type": {"enum": ["text", "number", "date", "boolean", "currency"]},
      "is_enabled": {"type": "boolean"},
      "display_order": {"type": "integer", "minimum": 0},
      "match_pattern": {"type": "string", "maxLength": 512}
    },
    "additionalProperties": false
  }
}`

var fieldSchemaValidator = jsonschema.MustCompileString("field_schema.json", fieldSchemaJSON)

// Parse validates and decodes a field schema JSON document. Duplicate entry
// names are rejected: the mapping stage keys dynamic values by name.
func Parse(data []byte) ([]entity.FieldSchemaEntry, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, common.NewAppError("SCHEMA_JSON", "field schema is not valid JSON", common.ErrSchemaUnavailable)
	}
	if err := fieldSchemaValidator.Validate(doc); err != nil {
		return nil, common.NewAppError("SCHEMA_VALIDATE", err.Error(), common.ErrSchemaUnavailable)
	}

	var entries []entity.FieldSchemaEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, common.NewAppError("SCHEMA_DECODE", "field schema decode failed", common.ErrSchemaUnavailable)
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if !constants.ValidFieldType(e.FieldType) {
			return nil, common.NewAppError("SCHEMA_FIELD_TYPE",
				fmt.Sprintf("unsupported field type %q", e.FieldType), common.ErrSchemaUnavailable)
		}
		key := strings.ToLower(e.Name)
		if _, dup := seen[key]; dup {
			return nil, common.NewAppError("SCHEMA_DUPLICATE",
				fmt.Sprintf("duplicate field schema entry %q", e.Name), common.ErrSchemaUnavailable)
		}
		seen[key] = struct{}{}
	}
	return entries, nil
}

// Default is the canonical field set used when no profile schema exists or
// the configured one cannot be loaded.
func Default() []entity.FieldSchemaEntry {
	return []entity.FieldSchemaEntry{
		{Name: constants.FieldVendor, DisplayName: "Vendor", FieldType: constants.FieldTypeText, Enabled: true, DisplayOrder: 1},
		{Name: constants.FieldAmount, DisplayName: "Amount", FieldType: constants.FieldTypeCurrency, Enabled: true, DisplayOrder: 2},
		{Name: constants.FieldCurrency, DisplayName: "Currency", FieldType: constants.FieldTypeText, Enabled: true, DisplayOrder: 3},
		{Name: constants.FieldIssueDate, DisplayName: "Issue Date", FieldType: constants.FieldTypeDate, Enabled: true, DisplayOrder: 4},
		{Name: constants.FieldDueDate, DisplayName: "Due Date", FieldType: constants.FieldTypeDate, Enabled: true, DisplayOrder: 5},
		{Name: constants.FieldAccountNumber, DisplayName: "Account Number", FieldType: constants.FieldTypeText, Enabled: true, DisplayOrder: 6},
		{Name: constants.FieldInvoiceNumber, DisplayName: "Invoice Number", FieldType: constants.FieldTypeText, Enabled: true, DisplayOrder: 7},
		{Name: constants.FieldCategory, DisplayName: "Category", FieldType: constants.FieldTypeText, Enabled: true, DisplayOrder: 8},
	}
}

// StaticProvider serves a fixed schema snapshot, falling back to the
// default field set when no entries are configured.
type StaticProvider struct {
	Entries []entity.FieldSchemaEntry
}

func (p *StaticProvider) FetchFieldSchema(ctx context.Context, profileID string) ([]entity.FieldSchemaEntry, error) {
	if len(p.Entries) == 0 {
		return Default(), nil
	}
	return p.Entries, nil
}
