package reconcile

import (
	"github.com/akaraszi/billscan/constants"
	"github.com/akaraszi/billscan/internal/entity"
)

// Per-field confidence weights. Vendor and amount dominate because they gate
// success; the rest are corroborating signals. The weights sum to 1.0.
var fieldWeights = map[string]float32{
	constants.FieldVendor:        0.20,
	constants.FieldAmount:        0.20,
	constants.FieldDueDate:       0.15,
	constants.FieldIssueDate:     0.15,
	constants.FieldAccountNumber: 0.10,
	constants.FieldInvoiceNumber: 0.10,
	constants.FieldCategory:      0.10,
}

// Score sums the weights of every populated canonical field. The breakdown
// maps field name to its contributed weight, for the debug trace.
func Score(cf entity.CanonicalFields) (float32, map[string]float32) {
	breakdown := make(map[string]float32, len(fieldWeights))
	add := func(field string, populated bool) {
		if populated {
			breakdown[field] = fieldWeights[field]
		}
	}

	add(constants.FieldVendor, cf.Vendor != "" && !entity.IsPlaceholderText(cf.Vendor))
	add(constants.FieldAmount, cf.Amount != 0)
	add(constants.FieldDueDate, !cf.DueDate.IsZero())
	add(constants.FieldIssueDate, !cf.IssueDate.IsZero())
	add(constants.FieldAccountNumber, cf.AccountNumber != "")
	add(constants.FieldInvoiceNumber, cf.InvoiceNumber != "")
	add(constants.FieldCategory, cf.Category != "" && cf.Category != constants.Other)

	var total float32
	for _, w := range breakdown {
		total += w
	}
	return total, breakdown
}

// StemScore is the confidence used on the Hungarian stemming path: a fixed
// credit for any required billing stem appearing at all, plus a share
// proportional to how many of the required stems were covered.
func StemScore(anyStemFound bool, coverage float64) float32 {
	var s float32
	if anyStemFound {
		s += 0.3
	}
	s += float32(0.5 * coverage)
	return s
}
