package verse

import (
	"fmt"
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// ArcSegment is one sentence of a poem and its classification.
type ArcSegment struct {
	Text     string   `json:"text"`
	Start    int      `json:"start"`
	End      int      `json:"end"`
	Analysis Analysis `json:"analysis"`
}

// Arc traces how the mood of a poem moves from sentence to sentence.
type Arc struct {
	Segments []ArcSegment `json:"segments"`
	Overall  Analysis     `json:"overall"`
	Path     []Emotion    `json:"path"` // Primaries with consecutive repeats collapsed
}

var (
	segmenter     *sentences.DefaultSentenceTokenizer
	segmenterErr  error
	segmenterOnce sync.Once
)

func sentenceTokenizer() (*sentences.DefaultSentenceTokenizer, error) {
	segmenterOnce.Do(func() {
		segmenter, segmenterErr = english.NewSentenceTokenizer(nil)
	})
	return segmenter, segmenterErr
}

// AnalyzeArc classifies each sentence of text with the default classifier.
func AnalyzeArc(text string) (Arc, error) {
	return defaultClassifier.AnalyzeArc(text)
}

// AnalyzeArc classifies each sentence of text and the text as a whole.
func (c *Classifier) AnalyzeArc(text string) (Arc, error) {
	arc := Arc{
		Segments: []ArcSegment{},
		Overall:  c.Analyze(text),
		Path:     []Emotion{},
	}
	if strings.TrimSpace(text) == "" {
		return arc, nil
	}

	tokenizer, err := sentenceTokenizer()
	if err != nil {
		return arc, fmt.Errorf("failed to load sentence tokenizer: %w", err)
	}

	for _, sent := range tokenizer.Tokenize(text) {
		body := strings.TrimSpace(sent.Text)
		if body == "" {
			continue
		}
		analysis := c.Analyze(body)
		arc.Segments = append(arc.Segments, ArcSegment{
			Text:     body,
			Start:    sent.Start,
			End:      sent.End,
			Analysis: analysis,
		})
		if n := len(arc.Path); n == 0 || arc.Path[n-1] != analysis.Primary {
			arc.Path = append(arc.Path, analysis.Primary)
		}
	}

	return arc, nil
}
