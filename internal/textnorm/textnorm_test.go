package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairEncoding(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean text untouched", "Fizetendő összeg", "Fizetendő összeg"},
		{"latin1 mojibake", "FizetendÃ©s", "Fizetendés"},
		{"accented vowels", "Ã¡rvÃ­ztÅ±rÅ", "árvíztűrő"},
		{"ascii passthrough", "Account Number: 12345", "Account Number: 12345"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RepairEncoding(tt.in))
		})
	}
}

func TestFoldDiacritics(t *testing.T) {
	assert.Equal(t, "fizetendo osszeg", FoldDiacritics("Fizetendő Összeg"))
	assert.Equal(t, "hatarido", FoldDiacritics("határidő"))
}

func TestNormalize(t *testing.T) {
	in := "line one  \r\n\r\n\r\n\r\nline\ttwo   spaced\n----\nend  "
	got := Normalize(in)
	assert.Equal(t, "line one\n\nline two spaced\n\nend", got)
}

func TestTokenize(t *testing.T) {
	toks := Tokenize("Fizetendő összeg: 45 678 Ft.")
	assert.Equal(t, []string{"Fizetendő", "összeg", "45", "678", "Ft"}, toks)
}

func TestStemmer_Lookup(t *testing.T) {
	s := NewHungarianStemmer()

	tests := []struct {
		token string
		stem  string
		ok    bool
	}{
		{"fizetendő", "fizet", true},
		{"Fizetési", "fizet", true},
		{"összeget", "osszeg", true},
		{"határidő", "hatarido", true},
		{"számlaszám", "szamla", true},
		{"díjbekérő", "dij", true},
		{"fizetve", "fizet", true}, // unseen inflection, prefix path
		{"banana", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			stem, ok := s.Stem(tt.token)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.stem, stem)
		})
	}
}

func TestStemmer_Coverage(t *testing.T) {
	s := NewHungarianStemmer()

	text := "Fizetendő összeg: 45 678 Ft. Fizetési határidő: 2023.06.01"
	found, score := s.Coverage(text, RequiredBillStems)
	// fizet, összeg, határidő found; számla and díj absent.
	assert.True(t, found["fizet"])
	assert.True(t, found["osszeg"])
	assert.True(t, found["hatarido"])
	assert.InDelta(t, 3.0/5.0, float64(score), 1e-6)

	_, none := s.Coverage("nothing relevant here", RequiredBillStems)
	assert.Zero(t, none)
}
