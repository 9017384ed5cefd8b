// Package verse classifies the emotion of short texts such as poems and maps
// the result to presentation themes and related moods.
package verse

import "strings"

// DefaultMaxKeywords caps the evidence returned in Analysis.Keywords.
const DefaultMaxKeywords = 5

// Polarity thresholds beyond which the keyword scores are nudged.
const (
	positiveThreshold = 3
	negativeThreshold = -3
)

// A ClassifierOpt represents a setting that changes how a Classifier scores text.
//
// For example, it might swap in a custom lexicon:
//
//	c := verse.NewClassifier(verse.UsingLexicon(lex))
type ClassifierOpt func(c *Classifier)

// UsingPolarityScorer specifies the PolarityScorer to use.
func UsingPolarityScorer(scorer PolarityScorer) ClassifierOpt {
	return func(c *Classifier) {
		if scorer != nil {
			c.polarity = scorer
		}
	}
}

// UsingLexicon scores polarity with the given lexicon.
func UsingLexicon(lex *Lexicon) ClassifierOpt {
	return func(c *Classifier) {
		if lex != nil {
			c.polarity = lex
		}
	}
}

// WithMaxKeywords lowers how many evidence tokens are kept. Values above
// DefaultMaxKeywords are capped; negative values are ignored.
func WithMaxKeywords(n int) ClassifierOpt {
	return func(c *Classifier) {
		switch {
		case n > DefaultMaxKeywords:
			c.maxKeywords = DefaultMaxKeywords
		case n >= 0:
			c.maxKeywords = n
		}
	}
}

// Classifier assigns an Emotion to text. It holds no mutable state and is
// safe for concurrent use.
type Classifier struct {
	polarity    PolarityScorer
	maxKeywords int
}

// NewClassifier creates a Classifier according to the user-specified options.
func NewClassifier(opts ...ClassifierOpt) *Classifier {
	c := &Classifier{
		polarity:    DefaultLexicon(),
		maxKeywords: DefaultMaxKeywords,
	}
	for _, applyOpt := range opts {
		applyOpt(c)
	}
	return c
}

var defaultClassifier = NewClassifier()

// Analyze classifies text with the default classifier.
func Analyze(text string) Analysis {
	return defaultClassifier.Analyze(text)
}

// Analyze scores text against every label's keywords, nudges the scores by
// overall polarity and picks the winner. It never fails: text without any
// signal is Neutral with zero confidence.
func (c *Classifier) Analyze(text string) Analysis {
	normalized := strings.ToLower(text)

	scores := make(map[Emotion]int, len(declared))
	for _, label := range declared {
		scores[label] = 0
		for _, m := range keywordMatchers[label] {
			scores[label] += m.count(normalized)
		}
	}

	polarity := c.polarity.Polarity(normalized)
	switch {
	case polarity > positiveThreshold:
		scores[Happy] += 2
		scores[Motivational]++
	case polarity < negativeThreshold:
		scores[Sad] += 2
		scores[Angry]++
	}

	primary, maxScore, total := Neutral, 0, 0
	for _, label := range declared {
		score := scores[label]
		total += score
		if score > maxScore {
			primary, maxScore = label, score
		}
	}

	var confidence float64
	if total > 0 {
		confidence = float64(maxScore) / float64(total)
	}
	if confidence > 1 {
		confidence = 1
	}

	return Analysis{
		Primary:    primary,
		Confidence: confidence,
		Scores:     scores,
		Keywords:   c.extractKeywords(normalized, primary),
		Polarity:   polarity,
	}
}

// extractKeywords returns the whitespace-separated tokens of text that
// contain any stem of e, in their original order.
func (c *Classifier) extractKeywords(text string, e Emotion) []string {
	stems := keywordStems[e]
	keywords := []string{}
	if len(stems) == 0 || c.maxKeywords == 0 {
		return keywords
	}

	for _, word := range strings.Fields(text) {
		for _, stem := range stems {
			if strings.Contains(word, stem) {
				keywords = append(keywords, word)
				break
			}
		}
		if len(keywords) == c.maxKeywords {
			break
		}
	}
	return keywords
}
