package sentiment

import "math"

const (
	baselineWeight = 0.3
	lexiconWeight  = 0.7

	positiveHit        = 0.5
	negatedPositiveHit = -0.5
	negativeHit        = -0.5
	negatedNegativeHit = 0.3
	intensifierBoost   = 0.3

	// Negation clears after a non-negation token whose loop index is a
	// positive multiple of negationResetPeriod.
	negationResetPeriod = 3
)

// Scorer computes sentiment scores. The zero value is not usable; use NewScorer.
type Scorer struct {
	baseline BaselineAnalyzer
}

// NewScorer creates a Scorer. A nil baseline selects the built-in PolarityAnalyzer.
func NewScorer(baseline BaselineAnalyzer) *Scorer {
	if baseline == nil {
		baseline = NewPolarityAnalyzer()
	}
	return &Scorer{baseline: baseline}
}

var defaultScorer = NewScorer(nil)

// Score scores text with the default Scorer.
func Score(text string) float64 {
	return defaultScorer.Score(text)
}

// Score returns the sentiment of text in [-1, 1]. Text without any word
// tokens scores exactly 0.
func (s *Scorer) Score(text string) float64 {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return 0
	}

	baseline := s.baseline.Score(tokens)
	if math.IsNaN(baseline) || math.IsInf(baseline, 0) {
		baseline = 0
	}

	final := baseline*baselineWeight + LexiconScore(tokens)*lexiconWeight
	return clamp(final, -1, 1)
}

// LexiconScore runs the rule-based pass over already tokenized text.
func LexiconScore(tokens []string) float64 {
	var score float64
	negated := false

	for i, tok := range tokens {
		if IsNegation(tok) {
			negated = true
			continue
		}

		switch {
		case IsPositive(tok) && negated:
			score += negatedPositiveHit
		case IsPositive(tok):
			score += positiveHit
		case IsNegative(tok) && negated:
			score += negatedNegativeHit
		case IsNegative(tok):
			score += negativeHit
		}

		if IsIntensifier(tok) && i < len(tokens)-1 {
			next := tokens[i+1]
			if IsPositive(next) {
				score += intensifierBoost
			} else if IsNegative(next) {
				score -= intensifierBoost
			}
		}

		if negated && i > 0 && i%negationResetPeriod == 0 {
			negated = false
		}
	}

	return score
}

// clamp maps NaN to 0.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
