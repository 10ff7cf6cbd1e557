package constants

import (
	"strings"
)

// Category classifies a bill into the fixed taxonomy used both as the
// category field and to select category-specific vendor patterns.
type Category string

const (
	Utility         Category = "Utility"
	Telecom         Category = "Telecom"
	Subscription    Category = "Subscription"
	BuildingService Category = "BuildingService"
	Shopping        Category = "Shopping"
	Travel          Category = "Travel"
	Insurance       Category = "Insurance"
	Other           Category = "Other"
)

var allCategories = []Category{
	Utility,
	Telecom,
	Subscription,
	BuildingService,
	Shopping,
	Travel,
	Insurance,
	Other,
}

// AsStringSlice lists the taxonomy for enum validation at the storage layer.
func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps free-form category labels onto the taxonomy.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"electricity":   Utility,
		"gas":           Utility,
		"water":         Utility,
		"közmű":         Utility,
		"mobile":        Telecom,
		"phone":         Telecom,
		"internet":      Telecom,
		"távközlés":     Telecom,
		"streaming":     Subscription,
		"saas":          Subscription,
		"előfizetés":    Subscription,
		"common cost":   BuildingService,
		"közös költség": BuildingService,
		"rent":          BuildingService,
		"webshop":       Shopping,
		"store":         Shopping,
		"airline":       Travel,
		"hotel":         Travel,
		"taxi":          Travel,
		"utazás":        Travel,
		"biztosítás":    Insurance,
		"policy":        Insurance,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}
