package sentiment

type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s wordSet) has(word string) bool {
	_, ok := s[word]
	return ok
}

// French lexicon. Entries are lowercase and NFC-composed to match Tokenize output.
var (
	positiveWords = newWordSet(
		"bon", "bonne", "bons", "bonnes", "bien", "excellent", "excellente",
		"super", "génial", "géniale", "parfait", "parfaite", "agréable",
		"satisfait", "satisfaite", "content", "contente", "heureux", "heureuse",
		"merveilleux", "fantastique", "top", "efficace", "rapide", "utile",
		"facile", "simple", "beau", "belle", "magnifique", "formidable",
		"aime", "adore", "recommande", "meilleur", "meilleure", "incroyable",
		"sympa", "intéressant", "intéressante", "clair", "claire", "pratique",
		"bravo", "merci", "réussi", "fiable", "fluide", "intuitif", "intuitive",
	)

	negativeWords = newWordSet(
		"mauvais", "mauvaise", "nul", "nulle", "horrible", "terrible",
		"décevant", "décevante", "déçu", "déçue", "lent", "lente", "difficile",
		"compliqué", "compliquée", "problème", "problèmes", "bug", "bugs",
		"erreur", "erreurs", "cher", "chère", "pire", "inutile", "médiocre",
		"désagréable", "triste", "déteste", "catastrophique", "insatisfait",
		"insatisfaite", "mécontent", "mécontente", "cassé", "cassée", "panne",
		"ennuyeux", "ennuyeuse", "lourd", "lourde", "confus", "confuse",
		"inacceptable", "honteux", "plante",
	)

	negationWords = newWordSet(
		"ne", "n", "pas", "non", "jamais", "rien", "aucun", "aucune", "ni",
		"personne", "guère", "sans",
	)

	intensifierWords = newWordSet(
		"très", "trop", "vraiment", "extrêmement", "tellement", "totalement",
		"complètement", "absolument", "particulièrement", "hyper", "vachement",
		"fort", "si", "tout", "ultra", "franchement",
	)
)

// IsPositive reports whether word is in the positive lexicon.
func IsPositive(word string) bool { return positiveWords.has(word) }

// IsNegative reports whether word is in the negative lexicon.
func IsNegative(word string) bool { return negativeWords.has(word) }

// IsNegation reports whether word is a negation word.
func IsNegation(word string) bool { return negationWords.has(word) }

// IsIntensifier reports whether word is an intensifier.
func IsIntensifier(word string) bool { return intensifierWords.has(word) }
