package verse

// PolarityScorer assigns a signed sentiment weight to text. Positive values
// mean positive sentiment; the magnitude grows with the number and strength
// of sentiment words.
type PolarityScorer interface {
	Polarity(text string) float64
}

// NegationWindow is how many preceding tokens are checked for a negation.
const NegationWindow = 2

// Polarity sums the weights of every known word in text. A word preceded by a
// negation within NegationWindow tokens, with no punctuation in between,
// contributes its weight reversed.
func (sl *Lexicon) Polarity(text string) float64 {
	tokens := Tokenize(text)

	var total int
	for i, token := range tokens {
		if token.IsPunct() {
			continue
		}

		weight := sl.Weight(token.Text)
		if weight == 0 {
			continue
		}

		if sl.negated(tokens, i) {
			weight = -weight
		}
		total += weight
	}

	return float64(total)
}

// PolarityWords returns the tokens of text that carry a non-zero weight,
// after negation, in order of appearance.
func (sl *Lexicon) PolarityWords(text string) []WordWeight {
	tokens := Tokenize(text)

	var out []WordWeight
	for i, token := range tokens {
		weight := sl.Weight(token.Text)
		if weight == 0 || token.IsPunct() {
			continue
		}
		negated := sl.negated(tokens, i)
		if negated {
			weight = -weight
		}
		out = append(out, WordWeight{Word: token.Text, Position: token.Start, Weight: weight, Negated: negated})
	}
	return out
}

// WordWeight is one word's contribution to a polarity score.
type WordWeight struct {
	Word     string `json:"word"`
	Position int    `json:"position"`
	Weight   int    `json:"weight"`
	Negated  bool   `json:"negated,omitempty"`
}

// negated detects a negation in the window before position.
func (sl *Lexicon) negated(tokens []Token, position int) bool {
	start := maxInt(0, position-NegationWindow)

	for i := position - 1; i >= start; i-- {
		// A clause boundary closes the scope of any earlier negation.
		if tokens[i].IsPunct() {
			return false
		}
		if sl.IsNegation(tokens[i].Text) {
			return true
		}
	}
	return false
}

// maxInt returns the maximum of two integers
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
