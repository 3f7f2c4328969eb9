package recommend

import (
	"strings"

	"github.com/kljensen/snowball/english"
)

var curlyQuotes = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", "'",
	"”", "'",
)

// NormalizeText lowercases, folds curly quotes, strips punctuation,
// stems each token and rejoins with single spaces. The output feeds the
// vector space model only; exact and fuzzy matching elsewhere work on
// raw strings.
func NormalizeText(raw string) string {
	tokens := Tokenize(raw)
	for i, t := range tokens {
		tokens[i] = english.Stem(t, true)
	}
	return strings.Join(tokens, " ")
}

// Tokenize splits normalized text into lowercase alphanumeric tokens.
func Tokenize(raw string) []string {
	if raw == "" {
		return nil
	}

	s := strings.ToLower(raw)
	s = curlyQuotes.Replace(s)
	s = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		if r >= '0' && r <= '9' {
			return r
		}
		return ' '
	}, s)

	return strings.Fields(s)
}
