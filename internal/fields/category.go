package fields

import (
	"strings"

	"github.com/akaraszi/billscan/constants"
	"github.com/akaraszi/billscan/internal/textnorm"
)

// categoryKeywords holds diacritic-folded keyword sets per taxonomy entry,
// covering both languages. Classification is set membership over the folded
// document text; the category with the most hits wins, ties going to the
// order below.
var categoryOrder = []constants.Category{
	constants.Utility,
	constants.Telecom,
	constants.Subscription,
	constants.BuildingService,
	constants.Insurance,
	constants.Travel,
	constants.Shopping,
}

var categoryKeywords = map[constants.Category][]string{
	constants.Utility: {
		"electricity", "electric", "gas", "water", "utility", "power", "energy",
		"aram", "villany", "gaz", "viz", "tavho", "kozmu", "energia", "mvm", "fotav",
	},
	constants.Telecom: {
		"mobile", "telecom", "internet", "broadband", "phone plan", "wireless",
		"mobil", "telefon", "tavkozles", "vodafone", "telekom", "yettel", "digi",
	},
	constants.Subscription: {
		"subscription", "membership", "streaming", "monthly plan", "renewal",
		"elofizetes", "tagsag", "megujitas", "netflix", "spotify",
	},
	constants.BuildingService: {
		"common cost", "building", "rent", "maintenance fee", "property management",
		"kozos koltseg", "tarsashaz", "berleti dij", "uzemeltetes",
	},
	constants.Insurance: {
		"insurance", "policy", "premium", "coverage",
		"biztositas", "biztosito", "kotveny", "dijfizetes",
	},
	constants.Travel: {
		"flight", "airline", "hotel", "booking", "travel", "fare",
		"repulojegy", "szallas", "utazas", "jegy",
	},
	constants.Shopping: {
		"order confirmation", "your order", "shipment", "purchase", "webshop",
		"rendeles", "megrendeles", "vasarlas", "szallitas",
	},
}

// Classify buckets the document into the fixed taxonomy via keyword-set
// membership. Documents matching nothing fall to Other.
func Classify(text string) constants.Category {
	folded := textnorm.FoldDiacritics(text)

	best := constants.Other
	bestHits := 0
	for _, cat := range categoryOrder {
		hits := 0
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(folded, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = cat, hits
		}
	}
	return best
}
