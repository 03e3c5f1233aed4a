// Package advisor implements the deterministic rule-based medication advisor.
// It maps reported symptoms to candidate conditions, classifies severity,
// screens severity-tier medications against the patient context, and folds
// everything into a single result. The engine is a pure function of its inputs
// and the active ruleset; it never mutates either.
package advisor

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips combining marks so accented vocabulary entries
// compare equal to plain-ASCII spellings. Chains are stateful, so a fresh one
// is built per call rather than shared.
func foldTransformer() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Fold normalizes a phrase for matching: trim, strip diacritics, lower-case.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer(), s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// PhraseMatches reports whether a reported symptom and a vocabulary phrase
// match: after folding, either must contain the other. Empty strings never
// match. The substring semantics are deliberately loose ("ear pain" matches
// "pain"); this is a known precision limitation of the matching vocabulary,
// kept for behavioral compatibility with the published guidance tables.
func PhraseMatches(reported, phrase string) bool {
	a := Fold(reported)
	b := Fold(phrase)
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// anySymptomMatches reports whether any reported symptom matches the phrase.
func anySymptomMatches(symptoms []string, phrase string) bool {
	for _, s := range symptoms {
		if PhraseMatches(s, phrase) {
			return true
		}
	}
	return false
}
