// Package reconcile merges candidate field sets from competing extraction
// strategies, scores the result, and maps it onto the caller's field schema.
package reconcile

import (
	"time"

	"github.com/akaraszi/billscan/constants"
	"github.com/akaraszi/billscan/internal/entity"
)

// Merge combines two candidate field sets deterministically. A defined value
// beats an undefined one; when both are defined the tie-breaks are:
// non-placeholder then longer for strings, non-zero then larger for numbers,
// later for dates. The first argument wins exact ties, so merge order is
// stable across runs.
func Merge(a, b entity.CanonicalFields) entity.CanonicalFields {
	out := entity.CanonicalFields{}

	pick := func(field, av, bv string) string {
		v, fromA := betterString(av, bv)
		out.SetProvenance(field, provenanceOf(field, a, b, fromA))
		return v
	}

	out.Vendor = pick(constants.FieldVendor, a.Vendor, b.Vendor)
	out.Currency = pick(constants.FieldCurrency, a.Currency, b.Currency)
	out.AccountNumber = pick(constants.FieldAccountNumber, a.AccountNumber, b.AccountNumber)
	out.InvoiceNumber = pick(constants.FieldInvoiceNumber, a.InvoiceNumber, b.InvoiceNumber)

	var fromA bool
	out.Amount, fromA = betterNumber(a.Amount, b.Amount)
	out.SetProvenance(constants.FieldAmount, provenanceOf(constants.FieldAmount, a, b, fromA))

	out.IssueDate, fromA = betterDate(a.IssueDate, b.IssueDate)
	out.SetProvenance(constants.FieldIssueDate, provenanceOf(constants.FieldIssueDate, a, b, fromA))

	out.DueDate, fromA = betterDate(a.DueDate, b.DueDate)
	out.SetProvenance(constants.FieldDueDate, provenanceOf(constants.FieldDueDate, a, b, fromA))

	out.Category = a.Category
	if out.Category == constants.Other || out.Category == "" {
		out.Category = b.Category
	}
	if out.Category == "" {
		out.Category = constants.Other
	}

	pruneEmptyProvenance(&out)
	return out
}

// betterString returns the preferred value and whether it came from a.
func betterString(a, b string) (string, bool) {
	aDef := a != "" && !entity.IsPlaceholderText(a)
	bDef := b != "" && !entity.IsPlaceholderText(b)
	switch {
	case aDef && !bDef:
		return a, true
	case bDef && !aDef:
		return b, false
	case !aDef && !bDef:
		// Neither is real content; keep a placeholder over nothing.
		if a != "" {
			return a, true
		}
		return b, false
	}
	if len(b) > len(a) {
		return b, false
	}
	return a, true
}

func betterNumber(a, b float64) (float64, bool) {
	switch {
	case a != 0 && b == 0:
		return a, true
	case b != 0 && a == 0:
		return b, false
	}
	if b > a {
		return b, false
	}
	return a, true
}

func betterDate(a, b time.Time) (time.Time, bool) {
	switch {
	case !a.IsZero() && b.IsZero():
		return a, true
	case !b.IsZero() && a.IsZero():
		return b, false
	}
	if b.After(a) {
		return b, false
	}
	return a, true
}

func provenanceOf(field string, a, b entity.CanonicalFields, fromA bool) string {
	if fromA {
		return a.Provenance[field]
	}
	return b.Provenance[field]
}

func pruneEmptyProvenance(cf *entity.CanonicalFields) {
	for k, v := range cf.Provenance {
		if v == "" {
			delete(cf.Provenance, k)
		}
	}
}
