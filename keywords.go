package verse

import "regexp"

// keywordStems holds the lowercase stems scored for each label. Neutral has
// none; it is only ever the fallback.
var keywordStems = map[Emotion][]string{
	Sad:          {"tear", "cry", "sorrow", "pain", "loss", "grief", "lonely", "empty", "broken", "dark", "despair", "melancholy"},
	Happy:        {"joy", "smile", "laugh", "delight", "cheerful", "bright", "sunshine", "celebrate", "bliss", "wonderful"},
	Romantic:     {"love", "heart", "kiss", "embrace", "passion", "desire", "romance", "beloved", "darling", "forever", "together"},
	Motivational: {"strength", "courage", "rise", "fight", "overcome", "achieve", "dream", "inspire", "power", "victory", "believe"},
	Peaceful:     {"calm", "serene", "tranquil", "quiet", "gentle", "soft", "peace", "still", "harmony", "rest"},
	Angry:        {"rage", "fury", "anger", "hate", "bitter", "storm", "fire", "burn", "destroy", "fight"},
	Nostalgic:    {"memory", "remember", "past", "yesterday", "once", "used to", "childhood", "old", "forgotten", "time"},
	Neutral:      {},
}

// stemMatcher counts word-anchored prefix matches of one stem, so "fire"
// matches "fire" and "fireplace" but not "bonfire".
type stemMatcher struct {
	stem string
	re   *regexp.Regexp
}

var keywordMatchers = compileMatchers(keywordStems)

func compileMatchers(stems map[Emotion][]string) map[Emotion][]stemMatcher {
	out := make(map[Emotion][]stemMatcher, len(stems))
	for label, list := range stems {
		matchers := make([]stemMatcher, 0, len(list))
		for _, stem := range list {
			matchers = append(matchers, stemMatcher{
				stem: stem,
				re:   regexp.MustCompile(`\b` + regexp.QuoteMeta(stem) + `\w*\b`),
			})
		}
		out[label] = matchers
	}
	return out
}

// Keywords returns a copy of the stems scored for e.
func Keywords(e Emotion) []string {
	stems := keywordStems[e]
	out := make([]string, len(stems))
	copy(out, stems)
	return out
}

// count returns the number of non-overlapping matches in lowercased text.
func (m stemMatcher) count(text string) int {
	return len(m.re.FindAllStringIndex(text, -1))
}
