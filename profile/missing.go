package profile

import "sort"

// Default tokens treated as "no data". Deliberately short: placeholder
// tokens are never inferred from the data, so a legitimate value like
// 0 or -1 can not be mistaken for missing.
var defaultMissing = []string{"", "NA", "NaN"}

// Vocabulary is the set of tokens treated as missing values. Matching
// is exact and case-sensitive on the trimmed cell value. The zero
// value matches nothing; use DefaultVocabulary or NewVocabulary.
type Vocabulary struct {
	tokens map[string]struct{}
}

// DefaultVocabulary returns the fixed default vocabulary.
func DefaultVocabulary() Vocabulary {
	return NewVocabulary()
}

// NewVocabulary returns the default vocabulary extended with the given
// nodata tokens.
func NewVocabulary(extra ...string) Vocabulary {
	tokens := make(map[string]struct{}, len(defaultMissing)+len(extra))

	for _, t := range defaultMissing {
		tokens[t] = struct{}{}
	}

	for _, t := range extra {
		tokens[t] = struct{}{}
	}

	return Vocabulary{tokens: tokens}
}

func (v Vocabulary) Contains(s string) bool {
	_, ok := v.tokens[s]
	return ok
}

// Tokens returns the vocabulary sorted, so descriptors built from the
// same configuration are byte-identical across runs.
func (v Vocabulary) Tokens() []string {
	ts := make([]string, 0, len(v.tokens))

	for t := range v.tokens {
		ts = append(ts, t)
	}

	sort.Strings(ts)

	return ts
}
