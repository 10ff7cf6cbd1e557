package textnorm

import (
	"strings"
)

// Stemmer resolves inflected tokens to canonical stems via a fixed
// dictionary. Lookup order: exact variant match, then prefix match in both
// directions for unseen inflections. Ambiguous tokens resolve to no stem
// rather than a guess.
type Stemmer struct {
	variants map[string]string // folded variant -> stem
	stems    []string          // folded stems, for prefix scans
}

// hungarianStems maps each stem to the inflected variants observed on
// Hungarian bills. Keys and variants are stored diacritic-folded.
var hungarianStems = map[string][]string{
	"fizet":       {"fizetendő", "fizetendo", "fizetési", "fizetés", "fizetnivaló", "befizetés", "befizetendő"},
	"összeg":      {"összege", "összeget", "összegű", "összegben"},
	"határidő":    {"határideje", "határidőig", "határidore"},
	"számla":      {"számlaszám", "számlázás", "számlát", "számlája", "számlán", "részszámla"},
	"esedékes":    {"esedékesség", "esedékessége"},
	"díj":         {"díja", "díjak", "díjat", "díjbekérő", "alapdíj", "havidíj"},
	"szolgáltató": {"szolgáltatás", "szolgáltatási", "szolgáltatója"},
	"ügyfél":      {"ügyfélszám", "ügyfélazonosító", "ügyfelek"},
	"tartozás":    {"tartozása", "tartozást"},
	"egyenleg":    {"egyenlege", "egyenleget"},
	"fogyasztás":  {"fogyasztási", "fogyasztó", "fogyasztott"},
	"időszak":     {"időszakra", "időszakban", "elszámolási"},
}

// RequiredBillStems is the stem set whose coverage feeds the stemming-path
// confidence score.
var RequiredBillStems = []string{"fizet", "összeg", "számla", "díj", "határidő"}

// NewHungarianStemmer builds the fixed Hungarian stem dictionary.
func NewHungarianStemmer() *Stemmer {
	s := &Stemmer{variants: map[string]string{}}
	for stem, vars := range hungarianStems {
		folded := FoldDiacritics(stem)
		s.stems = append(s.stems, folded)
		s.variants[folded] = folded
		for _, v := range vars {
			s.variants[FoldDiacritics(v)] = folded
		}
	}
	return s
}

// Stem resolves one token to its canonical stem. The second return is false
// when no unambiguous stem exists.
func (s *Stemmer) Stem(token string) (string, bool) {
	t := FoldDiacritics(strings.TrimSpace(token))
	if t == "" {
		return "", false
	}

	if stem, ok := s.variants[t]; ok {
		return stem, true
	}

	// Unseen inflection: the token extends a known stem, or truncation cut
	// the token short of one. A single candidate wins; more than one is
	// ambiguous and resolves to no stem.
	var match string
	for _, stem := range s.stems {
		if strings.HasPrefix(t, stem) || (len(t) >= 4 && strings.HasPrefix(stem, t)) {
			if match != "" && match != stem {
				return "", false
			}
			match = stem
		}
	}
	if match == "" {
		return "", false
	}
	return match, true
}

// Coverage computes |found required stems| / |required stems| over the text.
func (s *Stemmer) Coverage(text string, required []string) (map[string]bool, float32) {
	found := make(map[string]bool, len(required))
	req := make(map[string]struct{}, len(required))
	for _, r := range required {
		req[FoldDiacritics(r)] = struct{}{}
	}

	for _, tok := range Tokenize(text) {
		stem, ok := s.Stem(tok)
		if !ok {
			continue
		}
		if _, want := req[stem]; want {
			found[stem] = true
		}
	}

	if len(required) == 0 {
		return found, 0
	}
	return found, float32(len(found)) / float32(len(required))
}
