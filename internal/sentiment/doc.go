// Package sentiment scores free-text feedback in [-1, 1].
//
// The Scorer blends a baseline polarity analyzer (30%) with a French rule-based
// lexicon pass (70%) that understands negations and intensifiers.
// Scoring is pure and safe for concurrent use.
package sentiment
