// Package fusion combines two poems into a new one with a text generation
// service.
package fusion

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tsawler/verse"
)

// MinContentLength is the shortest poem, in characters, that may be fused.
const MinContentLength = 50

// TTL is how long a generated fusion stays valid.
const TTL = 24 * time.Hour

// Poem is a source poem.
type Poem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Style selects how the two poems are combined.
type Style string

const (
	Blend     Style = "blend"
	Alternate Style = "alternate"
	Thematic  Style = "thematic"
	Emotional Style = "emotional"
)

// ErrUnknownStyle is returned by ParseStyle.
var ErrUnknownStyle = errors.New("unknown fusion style")

// ParseStyle converts a case-insensitive style name into a Style.
func ParseStyle(s string) (Style, error) {
	switch st := Style(strings.ToLower(strings.TrimSpace(s))); st {
	case Blend, Alternate, Thematic, Emotional:
		return st, nil
	default:
		return Blend, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
	}
}

// SourceRef identifies one of the poems a fusion was made from.
type SourceRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Fusion is a generated poem.
type Fusion struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Sources   []SourceRef `json:"source_poems"`
	Style     Style       `json:"fusion_style"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Expired reports whether the fusion is past its expiry at now.
func (f Fusion) Expired(now time.Time) bool {
	return !now.Before(f.ExpiresAt)
}

// Validation failures reported by CanFuse.
var (
	ErrMissingPoem  = errors.New("both poems must be provided")
	ErrSamePoem     = errors.New("cannot fuse a poem with itself")
	ErrEmptyContent = errors.New("both poems must have content")
	ErrTooShort     = errors.New("poems must be substantial enough to fuse")
)

// ValidationError explains why two poems cannot be fused. The message is
// safe to show to users.
type ValidationError struct {
	Reason error
}

func (e *ValidationError) Error() string {
	return e.Reason.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// CanFuse checks that a and b may be fused. It returns a *ValidationError
// wrapping one of the Err* reasons above, or nil.
func CanFuse(a, b *Poem) error {
	switch {
	case a == nil || b == nil:
		return &ValidationError{Reason: ErrMissingPoem}
	case a.ID == b.ID:
		return &ValidationError{Reason: ErrSamePoem}
	case a.Content == "" || b.Content == "":
		return &ValidationError{Reason: ErrEmptyContent}
	case utf8.RuneCountInString(a.Content) < MinContentLength || utf8.RuneCountInString(b.Content) < MinContentLength:
		return &ValidationError{Reason: ErrTooShort}
	}
	return nil
}

type emotionPair [2]verse.Emotion

func (p emotionPair) has(a, b verse.Emotion) bool {
	return (p[0] == a && p[1] == b) || (p[0] == b && p[1] == a)
}

var (
	opposites = []emotionPair{
		{verse.Sad, verse.Happy},
		{verse.Angry, verse.Peaceful},
		{verse.Nostalgic, verse.Motivational},
	}
	complementary = []emotionPair{
		{verse.Romantic, verse.Peaceful},
		{verse.Happy, verse.Motivational},
		{verse.Sad, verse.Nostalgic},
	}
)

// RecommendStyle picks a style from the two poems' emotions: identical moods
// blend, opposite moods alternate, complementary moods make an emotional
// journey, and anything else is fused thematically.
func RecommendStyle(a, b verse.Emotion) Style {
	if a == b {
		return Blend
	}
	for _, p := range opposites {
		if p.has(a, b) {
			return Alternate
		}
	}
	for _, p := range complementary {
		if p.has(a, b) {
			return Emotional
		}
	}
	return Thematic
}
