package amount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_LocaleRoundTrips(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"dot thousands", "12.345", 12345},
		{"space thousands", "1 234 567", 1234567},
		{"comma decimal", "123,45", 123.45},
		{"combined", "1.234,56", 1234.56},
		{"dot thousands no decimal", "123.456", 123456},
		{"multi dot thousands", "1.234.567", 1234567},
		{"plain dot decimal", "124.56", 124.56},
		{"plain integer", "45678", 45678},
		{"space thousands short", "45 678", 45678},
		{"currency noise stripped", "$1,234.56", 1234.56},
		{"huf noise stripped", "45 678 Ft", 45678},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Parse(tt.in), 1e-9)
		})
	}
}

func TestParse_SmallAmountBoundary(t *testing.T) {
	// Genuinely small values must not pick up the thousands correction.
	tests := []struct {
		in   string
		want float64
	}{
		{"9", 9},
		{"7", 7},
		{"3.45", 3.45},
		{"99,99", 99.99},
		{"0.5", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.InDelta(t, tt.want, Parse(tt.in), 1e-9)
		})
	}
}

func TestParse_Garbage(t *testing.T) {
	assert.Equal(t, float64(0), Parse(""))
	assert.Equal(t, float64(0), Parse("no digits here"))
	assert.Equal(t, float64(0), Parse("..,,"))
}

func TestParse_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, Parse("1.234,56"), Parse("1.234,56"))
	}
}
