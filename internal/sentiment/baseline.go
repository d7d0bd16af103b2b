package sentiment

// BaselineAnalyzer is the generic statistical scorer blended with the lexicon
// pass. The sign of the result gives the polarity.
type BaselineAnalyzer interface {
	Score(tokens []string) float64
}

// BaselineFunc adapts a plain function to BaselineAnalyzer.
type BaselineFunc func(tokens []string) float64

func (f BaselineFunc) Score(tokens []string) float64 { return f(tokens) }

// PolarityAnalyzer sums the polarity of every known word and divides by the
// number of tokens, so unknown words dilute the result.
type PolarityAnalyzer struct {
	vocabulary map[string]float64
}

// NewPolarityAnalyzer returns an analyzer over the built-in French vocabulary.
func NewPolarityAnalyzer() *PolarityAnalyzer {
	return &PolarityAnalyzer{vocabulary: frenchPolarity}
}

func (a *PolarityAnalyzer) Score(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}

	var sum float64
	for _, tok := range tokens {
		sum += a.vocabulary[tok]
	}
	return sum / float64(len(tokens))
}

// Word polarities in [-1, 1].
var frenchPolarity = map[string]float64{
	"excellent":      0.9,
	"excellente":     0.9,
	"merveilleux":    0.85,
	"fantastique":    0.85,
	"magnifique":     0.85,
	"parfait":        0.8,
	"parfaite":       0.8,
	"adore":          0.8,
	"formidable":     0.8,
	"incroyable":     0.7,
	"génial":         0.75,
	"géniale":        0.75,
	"beau":           0.75,
	"belle":          0.75,
	"heureux":        0.7,
	"heureuse":       0.7,
	"aime":           0.6,
	"bon":            0.6,
	"bonne":          0.6,
	"super":          0.6,
	"agréable":       0.6,
	"satisfait":      0.6,
	"content":        0.6,
	"bravo":          0.6,
	"meilleur":       0.5,
	"bien":           0.5,
	"efficace":       0.5,
	"utile":          0.4,
	"pratique":       0.4,
	"facile":         0.4,
	"rapide":         0.4,
	"merci":          0.3,
	"terrible":       -0.9,
	"catastrophique": -0.9,
	"horrible":       -0.85,
	"déteste":        -0.8,
	"nul":            -0.75,
	"nulle":          -0.75,
	"décevant":       -0.7,
	"décevante":      -0.7,
	"triste":         -0.7,
	"médiocre":       -0.65,
	"mauvais":        -0.6,
	"mauvaise":       -0.6,
	"déçu":           -0.6,
	"déçue":          -0.6,
	"inacceptable":   -0.6,
	"pire":           -0.5,
	"inutile":        -0.5,
	"désagréable":    -0.5,
	"cassé":          -0.5,
	"panne":          -0.5,
	"problème":       -0.4,
	"erreur":         -0.4,
	"bug":            -0.4,
	"lent":           -0.4,
	"difficile":      -0.3,
	"compliqué":      -0.3,
	"cher":           -0.3,
}
