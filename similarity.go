package verse

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Vector returns the scores in declaration order.
func (a Analysis) Vector() []float64 {
	vec := make([]float64, len(declared))
	for i, label := range declared {
		vec[i] = float64(a.Scores[label])
	}
	return vec
}

// Similarity is the cosine similarity of two analyses' score vectors. It is
// 0 when either vector is all zeros.
func Similarity(a, b Analysis) float64 {
	return cosine(a.Vector(), b.Vector())
}

func cosine(a, b []float64) float64 {
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}

// Candidate is a poem offered for mood-based ranking.
type Candidate struct {
	ID       string
	Analysis Analysis
}

// Ranked is a candidate's position in a mood ranking.
type Ranked struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// moodVector weights the recommended moods 3, 2, 1 in rank order.
func moodVector(moods []Emotion) []float64 {
	vec := make([]float64, len(declared))
	for rank, mood := range moods {
		for i, label := range declared {
			if label == mood {
				vec[i] += float64(len(moods) - rank)
			}
		}
	}
	return vec
}

// RankByMood orders candidates by how closely their scores fit the moods
// recommended for target under strategy. Ties keep the input order.
func RankByMood(target Emotion, strategy Strategy, candidates []Candidate) []Ranked {
	want := moodVector(Recommend(target, strategy))

	ranked := make([]Ranked, len(candidates))
	for i, c := range candidates {
		ranked[i] = Ranked{ID: c.ID, Score: cosine(want, c.Analysis.Vector())}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
