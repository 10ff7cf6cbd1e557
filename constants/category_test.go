package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		in    string
		want  Category
		known bool
	}{
		{"Utility", Utility, true},
		{"utility", Utility, true},
		{"electricity", Utility, true},
		{"közmű", Utility, true},
		{"phone", Telecom, true},
		{"streaming", Subscription, true},
		{"közös költség", BuildingService, true},
		{"hotel", Travel, true},
		{"policy", Insurance, true},
		{"  Telecom  ", Telecom, true},
		{"groceries", Other, false},
		{"", Other, false},
	}
	for _, tc := range cases {
		got, known := Canonicalize(tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
		assert.Equal(t, tc.known, known, "input %q", tc.in)
	}
}

func TestAsStringSliceCoversTaxonomy(t *testing.T) {
	list := AsStringSlice()
	assert.Len(t, list, len(allCategories))
	assert.Contains(t, list, string(Other))
	for _, s := range list {
		got, known := Canonicalize(s)
		assert.True(t, known, "category %q must canonicalize to itself", s)
		assert.Equal(t, s, string(got))
	}
}
