package verse

import (
	"errors"
	"fmt"
	"strings"
)

// An Emotion is the dominant mood assigned to a piece of text.
type Emotion string

const (
	Sad          Emotion = "sad"
	Happy        Emotion = "happy"
	Romantic     Emotion = "romantic"
	Motivational Emotion = "motivational"
	Peaceful     Emotion = "peaceful"
	Angry        Emotion = "angry"
	Nostalgic    Emotion = "nostalgic"
	Neutral      Emotion = "neutral"
)

// declared is the fixed iteration order. Earlier labels win ties.
var declared = [...]Emotion{Sad, Happy, Romantic, Motivational, Peaceful, Angry, Nostalgic, Neutral}

// ErrUnknownEmotion is returned when a string does not name one of the eight labels.
var ErrUnknownEmotion = errors.New("unknown emotion")

// Emotions returns every label in declaration order.
func Emotions() []Emotion {
	out := make([]Emotion, len(declared))
	copy(out, declared[:])
	return out
}

// ParseEmotion converts a case-insensitive label name into an Emotion.
func ParseEmotion(s string) (Emotion, error) {
	e := Emotion(strings.ToLower(strings.TrimSpace(s)))
	if !e.Valid() {
		return Neutral, fmt.Errorf("%w: %q", ErrUnknownEmotion, s)
	}
	return e, nil
}

// Valid reports whether e is one of the eight declared labels.
func (e Emotion) Valid() bool {
	for _, d := range declared {
		if e == d {
			return true
		}
	}
	return false
}

// String returns the label name.
func (e Emotion) String() string {
	return string(e)
}

// Analysis is the result of classifying one piece of text.
type Analysis struct {
	Primary    Emotion         `json:"primary"`    // Highest scoring label
	Confidence float64         `json:"confidence"` // Winning share of the total score, 0.0-1.0
	Scores     map[Emotion]int `json:"scores"`     // One entry per label
	Keywords   []string        `json:"keywords"`   // Evidence tokens for Primary, at most 5
	Polarity   float64         `json:"polarity"`   // Lexicon polarity of the normalized text
}

// Effect names the ambient animation shown behind a themed poem.
type Effect string

const (
	Rain    Effect = "rain"
	Petals  Effect = "petals"
	Sunrise Effect = "sunrise"
	Stars   Effect = "stars"
	None    Effect = "none"
)

// Gradient is a two-stop linear gradient.
type Gradient struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Angle int    `json:"angle"` // Degrees
}

// Theme describes how a poem with a given emotion is presented.
type Theme struct {
	Gradient Gradient `json:"gradient"`
	Effect   Effect   `json:"effect"`
	Colors   []string `json:"colors"`
}

// Strategy selects how related moods are chosen.
type Strategy string

const (
	Match   Strategy = "match"   // Reinforce the current mood
	Balance Strategy = "balance" // Counteract the current mood
)

// ErrUnknownStrategy is returned by ParseStrategy for anything but match or balance.
var ErrUnknownStrategy = errors.New("unknown strategy")

// ParseStrategy converts a case-insensitive strategy name into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(strings.ToLower(strings.TrimSpace(s))); st {
	case Match, Balance:
		return st, nil
	default:
		return Match, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}
