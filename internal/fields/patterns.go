package fields

import (
	"regexp"

	"github.com/akaraszi/billscan/constants"
)

// pattern is one entry of an ordered, first-success-wins bank. The name is
// recorded as provenance on the field it populates.
type pattern struct {
	name string
	re   *regexp.Regexp
}

// bank holds the per-language pattern lists. All regexes run against
// accent-folded text (case preserved), so Hungarian patterns are written
// accent-free.
type bank struct {
	amount  []pattern
	dueDate []pattern
	issue   []pattern
	account []pattern
	invoice []pattern
	vendor  []pattern

	// vendorByCategory holds extra vendor patterns consulted when the
	// document classifies into that category.
	vendorByCategory map[constants.Category][]pattern

	billKeywords []string // context hints: this number belongs to a bill
	dueKeywords  []string // context hints: this number is the payable total
}

// vendorBank returns the vendor patterns for a classified document: the
// generic language bank first, then the category-specific variants.
func (b *bank) vendorBank(cat constants.Category) []pattern {
	extra := b.vendorByCategory[cat]
	if len(extra) == 0 {
		return b.vendor
	}
	out := make([]pattern, 0, len(b.vendor)+len(extra))
	out = append(out, b.vendor...)
	return append(out, extra...)
}

// Shared sub-expressions.
const (
	numExpr  = `([0-9]+(?:[ .,][0-9]{3})*(?:[.,][0-9]{1,2})?)`
	idExpr   = `([A-Za-z0-9][A-Za-z0-9/_-]{2,29})`
	dateExpr = `([0-9]{4}[. /-][0-9]{1,2}[. /-][0-9]{1,2}\.?|[0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{2,4}|[A-Za-z]{3,9}\.? [0-9]{1,2},? [0-9]{4}|[0-9]{1,2} [A-Za-z]{3,9} [0-9]{4})`
)

var englishBank = &bank{
	amount: []pattern{
		{"en:amount:total-amount-due", regexp.MustCompile(`(?i)total\s+amount\s+due[:\s]*\$?\s*` + numExpr)},
		{"en:amount:amount-due", regexp.MustCompile(`(?i)amount\s+due[:\s]*\$?\s*` + numExpr)},
		{"en:amount:current-charges", regexp.MustCompile(`(?i)current\s+charges[:\s]*\$?\s*` + numExpr)},
		{"en:amount:balance-due", regexp.MustCompile(`(?i)balance\s+due[:\s]*\$?\s*` + numExpr)},
		{"en:amount:total", regexp.MustCompile(`(?i)\btotal[:\s]*\$?\s*` + numExpr)},
	},
	dueDate: []pattern{
		{"en:due:due-date", regexp.MustCompile(`(?i)due\s+date[:\s]*` + dateExpr)},
		{"en:due:payment-due", regexp.MustCompile(`(?i)payment\s+due(?:\s+by)?[:\s]*` + dateExpr)},
		{"en:due:due-by", regexp.MustCompile(`(?i)due\s+by[:\s]*` + dateExpr)},
	},
	issue: []pattern{
		{"en:issue:invoice-date", regexp.MustCompile(`(?i)invoice\s+date[:\s]*` + dateExpr)},
		{"en:issue:issue-date", regexp.MustCompile(`(?i)(?:issue|issued)\s+date[:\s]*` + dateExpr)},
		{"en:issue:statement-date", regexp.MustCompile(`(?i)(?:statement|billing)\s+date[:\s]*` + dateExpr)},
	},
	account: []pattern{
		{"en:account:account-number", regexp.MustCompile(`(?i)account\s+(?:number|no\.?|#)[:\s]*` + idExpr)},
		{"en:account:customer-number", regexp.MustCompile(`(?i)customer\s+(?:number|id)[:\s]*` + idExpr)},
	},
	invoice: []pattern{
		{"en:invoice:invoice-number", regexp.MustCompile(`(?i)invoice\s+(?:number|no\.?|#)[:\s]*` + idExpr)},
		{"en:invoice:bill-number", regexp.MustCompile(`(?i)bill\s+(?:number|no\.?|#)[:\s]*` + idExpr)},
		{"en:invoice:reference", regexp.MustCompile(`(?i)reference\s+(?:number|no\.?)[:\s]*` + idExpr)},
	},
	vendor: []pattern{
		{"en:vendor:from", regexp.MustCompile(`(?i)(?:^|\n)\s*from[:\s]+([A-Z][A-Za-z0-9&.,' -]{4,60})`)},
		{"en:vendor:biller", regexp.MustCompile(`(?i)(?:biller|provider|vendor)[:\s]+([A-Z][A-Za-z0-9&.,' -]{4,60})`)},
		{"en:vendor:company-suffix", regexp.MustCompile(`([A-Z][A-Za-z0-9&' -]{2,50}\b(?:Inc|LLC|Ltd|Corp|Co|Company|Utilities|Energy|Power)\.?)`)},
	},
	vendorByCategory: map[constants.Category][]pattern{
		constants.Utility: {
			{"en:vendor:utility-suffix", regexp.MustCompile(`([A-Z][A-Za-z0-9&' -]{2,50}\b(?:Water|Gas|Electric|Light)\.?)`)},
		},
		constants.Telecom: {
			{"en:vendor:telecom-suffix", regexp.MustCompile(`([A-Z][A-Za-z0-9&' -]{2,50}\b(?:Telecom|Telekom|Communications|Mobile|Wireless|Broadband)\.?)`)},
		},
		constants.Insurance: {
			{"en:vendor:insurance-suffix", regexp.MustCompile(`([A-Z][A-Za-z0-9&' -]{2,50}\b(?:Insurance|Assurance|Mutual)\.?)`)},
		},
		constants.Travel: {
			{"en:vendor:travel-suffix", regexp.MustCompile(`([A-Z][A-Za-z0-9&' -]{2,50}\b(?:Airlines|Airways|Hotels)\.?)`)},
		},
	},
	billKeywords: []string{"bill", "invoice", "payment", "charge", "account", "statement"},
	dueKeywords:  []string{"total", "due", "payable", "balance", "charges"},
}

var hungarianBank = &bank{
	amount: []pattern{
		{"hu:amount:fizetendo-osszeg", regexp.MustCompile(`(?i)fizetendo\s+(?:vegosszeg|osszeg)[:\s]*` + numExpr)},
		{"hu:amount:fizetendo", regexp.MustCompile(`(?i)fizetendo[:\s]*` + numExpr)},
		{"hu:amount:vegosszeg", regexp.MustCompile(`(?i)vegosszeg[:\s]*` + numExpr)},
		{"hu:amount:osszesen", regexp.MustCompile(`(?i)(?:mindosszesen|osszesen)[:\s]*` + numExpr)},
		{"hu:amount:bruto", regexp.MustCompile(`(?i)brutto\s+(?:ertek|osszeg)[:\s]*` + numExpr)},
	},
	dueDate: []pattern{
		{"hu:due:fizetesi-hatarido", regexp.MustCompile(`(?i)fizetesi\s+hatarido[:\s]*` + dateExpr)},
		{"hu:due:befizetesi-hatarido", regexp.MustCompile(`(?i)befizetesi\s+hatarido[:\s]*` + dateExpr)},
		{"hu:due:esedekesseg", regexp.MustCompile(`(?i)esedekes(?:seg)?[:\s]*` + dateExpr)},
	},
	issue: []pattern{
		{"hu:issue:szamla-kelte", regexp.MustCompile(`(?i)szamla\s+kelte[:\s]*` + dateExpr)},
		{"hu:issue:kelt", regexp.MustCompile(`(?i)\bkelt[:\s]*` + dateExpr)},
		{"hu:issue:kiallitas", regexp.MustCompile(`(?i)kiallitas\s+(?:datuma|kelte)[:\s]*` + dateExpr)},
	},
	account: []pattern{
		{"hu:account:ugyfelszam", regexp.MustCompile(`(?i)ugyfel(?:szam|\s*azonosito)[:\s]*` + idExpr)},
		{"hu:account:felhasznalo", regexp.MustCompile(`(?i)felhasznalo(?:i)?\s*(?:azonosito|szam)[:\s]*` + idExpr)},
		{"hu:account:fogyasztasi-hely", regexp.MustCompile(`(?i)fogyasztasi\s+hely(?:\s+azonosito)?[:\s]*` + idExpr)},
	},
	invoice: []pattern{
		{"hu:invoice:szamlaszam", regexp.MustCompile(`(?i)szamla(?:szam|sorszam|\s+sorszama)[:\s]*` + idExpr)},
		{"hu:invoice:bizonylatszam", regexp.MustCompile(`(?i)bizonylat(?:szam)?[:\s]*` + idExpr)},
	},
	vendor: []pattern{
		{"hu:vendor:szolgaltato", regexp.MustCompile(`(?i)szolgaltato(?:\s+neve)?[:\s]+([A-Z][A-Za-z0-9&.,' -]{4,60})`)},
		{"hu:vendor:kibocsato", regexp.MustCompile(`(?i)(?:kibocsato|elado)[:\s]+([A-Z][A-Za-z0-9&.,' -]{4,60})`)},
		{"hu:vendor:company-suffix", regexp.MustCompile(`([A-Z][A-Za-z0-9&' -]{2,50}\b(?:Zrt|Nyrt|Kft|Bt|Kkt)\.?)`)},
	},
	vendorByCategory: map[constants.Category][]pattern{
		constants.Utility: {
			{"hu:vendor:muvek-suffix", regexp.MustCompile(`([A-Z][A-Za-z' -]{1,40}[mM]uvek\b(?:\s+(?:Zrt|Nyrt|Kft)\.?)?)`)},
			{"hu:vendor:energia-suffix", regexp.MustCompile(`([A-Z][A-Za-z' -]{2,40}\b[eE]nergia\b(?:\s+(?:Zrt|Nyrt|Kft)\.?)?)`)},
		},
		constants.Telecom: {
			{"hu:vendor:tavkozles-suffix", regexp.MustCompile(`((?:Magyar\s+)?Telekom\b(?:\s+(?:Nyrt|Zrt)\.?)?|[A-Z][A-Za-z' -]{2,40}\bTavkozlesi\b(?:\s+(?:Zrt|Nyrt|Kft)\.?)?)`)},
		},
		constants.Insurance: {
			{"hu:vendor:biztosito-suffix", regexp.MustCompile(`([A-Z][A-Za-z' -]{2,40}\bBiztosito\b(?:\s+(?:Zrt|Nyrt)\.?)?)`)},
		},
	},
	billKeywords: []string{"szamla", "dij", "fizet", "egyenleg", "tartozas"},
	dueKeywords:  []string{"osszeg", "fizetendo", "osszesen", "esedekes", "hatarido", "vegosszeg"},
}

func bankFor(lang constants.Language) *bank {
	if lang == constants.LangHungarian {
		return hungarianBank
	}
	return englishBank
}

// currencyMarkers map symbols and codes seen near amounts to ISO 4217.
var currencyMarkers = []struct {
	re   *regexp.Regexp
	code string
}{
	{regexp.MustCompile(`(?i)\bhuf\b|\bft\b`), "HUF"},
	{regexp.MustCompile(`(?i)\busd\b|\$`), "USD"},
	{regexp.MustCompile(`(?i)\beur\b|€`), "EUR"},
	{regexp.MustCompile(`(?i)\bgbp\b|£`), "GBP"},
	{regexp.MustCompile(`(?i)\bchf\b`), "CHF"},
}

// genericNumber finds unlabeled numeric tokens for the keyword-window pass.
var genericNumber = regexp.MustCompile(numExpr)

// currencyAdjacent finds a number immediately next to a currency marker,
// the narrow direct-match fallback for the amount field.
var currencyAdjacent = regexp.MustCompile(`(?i)(?:[\$€£]\s*` + numExpr + `|` + numExpr + `\s*(?:ft|huf|eur|usd|gbp)\b)`)
