// Package fields applies ordered per-field, per-language pattern banks to
// normalized document text. The first pattern producing a non-empty capture
// wins a field; a narrower direct-match pass runs when the primary pass
// leaves amount or vendor empty.
package fields

import (
	"log/slog"
	"strings"

	"github.com/akaraszi/billscan/constants"
	"github.com/akaraszi/billscan/internal/amount"
	"github.com/akaraszi/billscan/internal/entity"
	"github.com/akaraszi/billscan/internal/textnorm"
)

// DefaultKeywordWindow bounds how far (in characters) a contextual keyword
// may sit from a numeric match and still count as its context.
const DefaultKeywordWindow = 50

type Extractor struct {
	Window int
	Log    *slog.Logger
}

func NewExtractor(window int, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if window <= 0 {
		window = DefaultKeywordWindow
	}
	return &Extractor{Window: window, Log: logger}
}

// Extract populates canonical fields from normalized text. The returned
// matches feed the debug trace only.
func (e *Extractor) Extract(text string, lang constants.Language) (entity.CanonicalFields, []entity.FieldMatch) {
	var cf entity.CanonicalFields
	var trace []entity.FieldMatch

	b := bankFor(lang)
	matchText := textnorm.FoldAccents(text)

	record := func(field, patternName, raw, value string) {
		cf.SetProvenance(field, patternName)
		trace = append(trace, entity.FieldMatch{Field: field, Pattern: patternName, Raw: raw, Value: value})
	}

	cf.Category = Classify(text)
	if cf.Category != constants.Other {
		record(constants.FieldCategory, "category:keywords", "", string(cf.Category))
	}

	// Amount: labeled patterns first, then keyword-window scoring over
	// unlabeled numeric tokens.
	if raw, name, ok := firstMatch(b.amount, matchText); ok {
		cf.Amount = amount.Parse(raw)
		record(constants.FieldAmount, name, raw, raw)
	} else if raw, ok := e.bestWindowAmount(matchText, b); ok {
		cf.Amount = amount.Parse(raw)
		record(constants.FieldAmount, "amount:keyword-window", raw, raw)
	}

	if code, ok := e.findCurrency(matchText); ok {
		cf.Currency = code
		record(constants.FieldCurrency, "currency:marker", code, code)
	}

	if raw, name, ok := firstMatch(b.dueDate, matchText); ok {
		if t, parsed := ParseDate(raw, lang); parsed {
			cf.DueDate = t
			record(constants.FieldDueDate, name, raw, t.Format("2006-01-02"))
		}
	}
	if raw, name, ok := firstMatch(b.issue, matchText); ok {
		if t, parsed := ParseDate(raw, lang); parsed {
			cf.IssueDate = t
			record(constants.FieldIssueDate, name, raw, t.Format("2006-01-02"))
		}
	}

	if raw, name, ok := firstMatch(b.account, matchText); ok {
		cf.AccountNumber = raw
		record(constants.FieldAccountNumber, name, raw, raw)
	}
	if raw, name, ok := firstMatch(b.invoice, matchText); ok {
		cf.InvoiceNumber = raw
		record(constants.FieldInvoiceNumber, name, raw, raw)
	}

	if raw, name, ok := firstMatch(b.vendorBank(cf.Category), matchText); ok {
		cf.Vendor = cleanVendor(raw)
		record(constants.FieldVendor, name, raw, cf.Vendor)
	}

	// Direct fallback pass: only when the primary pass came up empty. The
	// vendor line heuristic additionally needs independent bill evidence,
	// so plain prose never gains a vendor from its opening line.
	if cf.Vendor == "" && hasBillSignal(cf, strings.ToLower(matchText), b) {
		if v, ok := vendorLineHeuristic(text); ok {
			cf.Vendor = v
			record(constants.FieldVendor, "vendor:first-line-heuristic", v, v)
		}
	}
	if cf.Amount == 0 {
		if raw, ok := currencyAdjacentAmount(matchText); ok {
			cf.Amount = amount.Parse(raw)
			record(constants.FieldAmount, "amount:currency-adjacent", raw, raw)
		}
	}

	return cf, trace
}

// firstMatch walks an ordered bank and returns the first non-empty capture.
func firstMatch(bank []pattern, text string) (capture, name string, ok bool) {
	for _, p := range bank {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		for _, g := range m[1:] {
			if s := strings.TrimSpace(g); s != "" {
				return s, p.name, true
			}
		}
	}
	return "", "", false
}

// bestWindowAmount scores every unlabeled numeric token by contextual
// keywords within the window: one point for a bill keyword nearby, one for
// a total/due keyword. A match near both beats a match near one; ties go
// to the earliest occurrence.
func (e *Extractor) bestWindowAmount(text string, b *bank) (string, bool) {
	lower := strings.ToLower(text)
	locs := genericNumber.FindAllStringIndex(text, -1)

	best, bestScore := "", 0
	for _, loc := range locs {
		tok := text[loc[0]:loc[1]]
		if len(strings.Trim(tok, "0 .,")) == 0 {
			continue
		}
		lo := loc[0] - e.Window
		if lo < 0 {
			lo = 0
		}
		hi := loc[1] + e.Window
		if hi > len(lower) {
			hi = len(lower)
		}
		window := lower[lo:hi]

		score := 0
		if containsAny(window, b.billKeywords) {
			score++
		}
		if containsAny(window, b.dueKeywords) {
			score++
		}
		if score > bestScore {
			best, bestScore = tok, score
		}
	}
	return best, bestScore > 0
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// findCurrency maps a currency symbol or code anywhere in the text to ISO
// 4217, earliest marker winning.
func (e *Extractor) findCurrency(text string) (string, bool) {
	bestIdx := -1
	code := ""
	for _, cm := range currencyMarkers {
		if loc := cm.re.FindStringIndex(text); loc != nil {
			if bestIdx == -1 || loc[0] < bestIdx {
				bestIdx, code = loc[0], cm.code
			}
		}
	}
	return code, bestIdx >= 0
}

// currencyAdjacentAmount is the degraded amount path: a numeric token
// directly next to a currency marker.
func currencyAdjacentAmount(text string) (string, bool) {
	m := currencyAdjacent.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	for _, g := range m[1:] {
		if s := strings.TrimSpace(g); s != "" {
			return s, true
		}
	}
	return "", false
}

// hasBillSignal reports whether anything besides the vendor marks the text
// as a bill: a parsed amount, date, or identifier, a recognized currency,
// a classified category, or a bill keyword anywhere in the text.
func hasBillSignal(cf entity.CanonicalFields, lower string, b *bank) bool {
	if cf.Amount != 0 || cf.AccountNumber != "" || cf.InvoiceNumber != "" || cf.Currency != "" {
		return true
	}
	if !cf.DueDate.IsZero() || !cf.IssueDate.IsZero() {
		return true
	}
	if cf.Category != constants.Other {
		return true
	}
	return containsAny(lower, b.billKeywords) || containsAny(lower, b.dueKeywords)
}

// vendorLineHeuristic picks the first mostly non-numeric line of at least
// six characters from the first ten lines; bill headers usually open with
// the issuer's name.
func vendorLineHeuristic(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len([]rune(line)) < 6 {
			continue
		}
		digits := 0
		for _, r := range line {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits*4 >= len([]rune(line)) {
			continue
		}
		return cleanVendor(line), true
	}
	return "", false
}

func cleanVendor(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, ":;,-")
	return strings.TrimSpace(s)
}
