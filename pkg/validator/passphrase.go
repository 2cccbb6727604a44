package validator

import (
	"fmt"
	"math"
	"unicode"

	"github.com/dmitrymomot/formkit/pkg/attribute"
)

// Passphrase entropy algorithms.
const (
	AlgorithmShannon  = "shannon"
	AlgorithmRenyi    = "renyi"
	AlgorithmEnhanced = "enhanced"
)

var recommendedEntropy = map[string]int{
	AlgorithmShannon:  76,
	AlgorithmRenyi:    57,
	AlgorithmEnhanced: 19,
}

// RecommendedEntropy is the required score for an algorithm when no entropy attribute is set.
func RecommendedEntropy(algorithm string) (int, bool) {
	n, ok := recommendedEntropy[algorithm]
	return n, ok
}

// Passphrase scores passphrases by entropy instead of character class rules.
type Passphrase struct {
	defaultAlgorithm string
}

func NewPassphrase(cfg Config) Passphrase {
	return Passphrase{defaultAlgorithm: cfg.PassphraseAlgorithm}
}

type passphraseConstraints struct {
	algorithm string
	required  int
}

func (p Passphrase) constraints(attrs *attribute.Set) (passphraseConstraints, error) {
	c := passphraseConstraints{algorithm: p.defaultAlgorithm}
	if s, ok := attrs.Text(attribute.KindAlgorithm); ok {
		c.algorithm = s
	}
	recommended, known := RecommendedEntropy(c.algorithm)
	if !known {
		return c, misconfigured(attribute.KindAlgorithm, "unknown passphrase algorithm %q", c.algorithm)
	}
	n, ok, err := intBound(attrs, attribute.KindEntropy)
	if err != nil {
		return c, err
	}
	c.required = recommended
	if ok {
		c.required = n
	}
	return c, nil
}

func (p Passphrase) CheckConstraints(attrs *attribute.Set) error {
	_, err := p.constraints(orEmpty(attrs))
	return err
}

func (p Passphrase) Validate(candidate any, attrs *attribute.Set) (Result, error) {
	c, err := p.constraints(orEmpty(attrs))
	if err != nil {
		return Result{}, err
	}
	value, ok := stringOf(candidate)
	if !ok {
		return Failed(candidate, "Passphrase must be a string."), nil
	}

	got := Entropy(c.algorithm, value)
	return Guess(value, Apply(Rule{
		Check:   func() bool { return got >= c.required },
		Message: fmt.Sprintf("Passphrase is not strong enough. Required strength of: %d, got %d.", c.required, got),
	})), nil
}

// Entropy scores s with the named algorithm: the per-character score rounded up,
// multiplied by the number of characters. Unknown algorithms score zero.
func Entropy(algorithm, s string) int {
	runes := []rune(s)
	var score int
	switch algorithm {
	case AlgorithmShannon:
		score = shannon(runes)
	case AlgorithmRenyi:
		score = renyi(runes)
	case AlgorithmEnhanced:
		score = enhanced(runes)
	}
	return score * len(runes)
}

func frequencies(runes []rune) map[rune]int {
	counts := make(map[rune]int, len(runes))
	for _, r := range runes {
		counts[r]++
	}
	return counts
}

func shannon(runes []rune) int {
	if len(runes) == 0 {
		return 0
	}
	var h float64
	size := float64(len(runes))
	for _, n := range frequencies(runes) {
		p := float64(n) / size
		h -= p * math.Log2(p)
	}
	return int(math.Ceil(h))
}

// renyi is the order 2 Rényi entropy in natural log units.
func renyi(runes []rune) int {
	if len(runes) == 0 {
		return 0
	}
	const alpha = 2.0
	var sum float64
	size := float64(len(runes))
	for _, n := range frequencies(runes) {
		p := float64(n) / size
		sum += math.Pow(p, alpha)
	}
	return int(math.Ceil(math.Log(sum) / (1 - alpha)))
}

var enhancedClasses = []struct {
	match  func(rune) bool
	weight float64
}{
	{unicode.IsLower, 1.0},
	{unicode.IsUpper, 1.4},
	{unicode.IsNumber, 1.1},
	{func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsNumber(r) }, 1.7},
}

// enhanced weighs the Shannon entropy of each character class present in
// runes, averages over those classes and spreads the result per character.
func enhanced(runes []rune) int {
	var total float64
	present := 0
	for _, class := range enhancedClasses {
		var only []rune
		for _, r := range runes {
			if class.match(r) {
				only = append(only, r)
			}
		}
		if len(only) == 0 {
			continue
		}
		present++
		total += float64(shannon(only)) * class.weight
	}
	if present == 0 {
		return 0
	}
	return int(math.Ceil(total / float64(present) / float64(len(runes))))
}
