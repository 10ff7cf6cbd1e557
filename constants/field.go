package constants

// Canonical field names. The pipeline always attempts to populate these
// regardless of any caller-supplied schema.
const (
	FieldVendor        = "vendor"
	FieldAmount        = "amount"
	FieldCurrency      = "currency"
	FieldIssueDate     = "issueDate"
	FieldDueDate       = "dueDate"
	FieldAccountNumber = "accountNumber"
	FieldInvoiceNumber = "invoiceNumber"
	FieldCategory      = "category"
)

// FieldType is the declared type of a dynamic schema field.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeBoolean  FieldType = "boolean"
	FieldTypeCurrency FieldType = "currency"
)

// ValidFieldType reports whether t is one of the declared schema field types.
func ValidFieldType(t FieldType) bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeBoolean, FieldTypeCurrency:
		return true
	}
	return false
}
