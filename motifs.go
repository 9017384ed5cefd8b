package verse

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bbalet/stopwords"
)

// minMotifLength drops fragments such as contraction leftovers.
const minMotifLength = 3

// Motifs returns up to n of the most frequent content words in text, most
// frequent first. Ties keep first-occurrence order.
func Motifs(text string, n int) []string {
	if n <= 0 {
		return nil
	}

	// The stopwords library uses ISO 639-1 language codes
	cleaned := stopwords.CleanString(text, "en", false)

	counts := make(map[string]int)
	var order []string
	for _, word := range strings.Fields(cleaned) {
		word = strings.ToLower(strings.Trim(word, "'’-_"))
		if utf8.RuneCountInString(word) < minMotifLength {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order
}

// SharedMotifs returns the motifs of a that also occur among the motifs of b,
// in a's order.
func SharedMotifs(a, b string, n int) []string {
	other := make(map[string]bool)
	for _, m := range Motifs(b, n) {
		other[m] = true
	}

	var shared []string
	for _, m := range Motifs(a, n) {
		if other[m] {
			shared = append(shared, m)
		}
	}
	return shared
}
