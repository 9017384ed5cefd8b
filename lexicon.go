package verse

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

// Lexicon maps words to integer polarity weights between -5 and 5.
// A Lexicon is never modified after construction.
type Lexicon struct {
	words     map[string]int
	negations map[string]bool
}

// ExternalLexicon is the JSON layout accepted by LoadLexicon.
type ExternalLexicon struct {
	Words     map[string]int `json:"words"`
	Negations []string       `json:"negations,omitempty"`
}

var (
	defaultLexicon     *Lexicon
	defaultLexiconOnce sync.Once
)

// DefaultLexicon returns the shared built-in English lexicon.
func DefaultLexicon() *Lexicon {
	defaultLexiconOnce.Do(func() {
		defaultLexicon = NewLexicon(englishWeights, englishNegations)
	})
	return defaultLexicon
}

// NewLexicon builds a lexicon from a weight table and a list of negation words.
// Keys are lowercased; both inputs are copied.
func NewLexicon(words map[string]int, negations []string) *Lexicon {
	lex := &Lexicon{
		words:     make(map[string]int, len(words)),
		negations: make(map[string]bool, len(negations)),
	}
	for w, score := range words {
		lex.words[strings.ToLower(w)] = clampWeight(score)
	}
	for _, n := range negations {
		lex.negations[strings.ToLower(n)] = true
	}
	return lex
}

// LoadLexicon reads an external JSON lexicon and merges it over the default
// English lexicon. Entries in the file win.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading lexicon file: %w", err)
	}

	var external ExternalLexicon
	if err := json.Unmarshal(data, &external); err != nil {
		return nil, fmt.Errorf("error parsing lexicon JSON: %w", err)
	}

	return DefaultLexicon().Merge(external), nil
}

// Merge returns a new lexicon holding sl's entries overlaid with ext.
func (sl *Lexicon) Merge(ext ExternalLexicon) *Lexicon {
	words := make(map[string]int, len(sl.words)+len(ext.Words))
	for w, score := range sl.words {
		words[w] = score
	}
	for w, score := range ext.Words {
		words[strings.ToLower(w)] = score
	}

	negations := make([]string, 0, len(sl.negations)+len(ext.Negations))
	for n := range sl.negations {
		negations = append(negations, n)
	}
	negations = append(negations, ext.Negations...)

	return NewLexicon(words, negations)
}

// Weight returns the polarity weight of word, or 0 if it is unknown.
func (sl *Lexicon) Weight(word string) int {
	if score, ok := sl.words[word]; ok {
		return score
	}
	return sl.words[strings.ToLower(word)]
}

// IsNegation checks if word negates the words that follow it.
func (sl *Lexicon) IsNegation(word string) bool {
	lower := strings.ToLower(word)
	return sl.negations[lower] || strings.HasSuffix(lower, "n't")
}

// HasWord checks if a word exists in the lexicon
func (sl *Lexicon) HasWord(word string) bool {
	_, ok := sl.words[strings.ToLower(word)]
	return ok
}

// Size returns the number of weighted words.
func (sl *Lexicon) Size() int {
	return len(sl.words)
}

func clampWeight(score int) int {
	switch {
	case score > 5:
		return 5
	case score < -5:
		return -5
	}
	return score
}

var englishNegations = []string{
	"not", "no", "never", "nor", "neither", "none", "nothing", "nobody",
	"nowhere", "cannot", "without", "hardly", "barely",
}

// englishWeights is an AFINN-style list biased toward the vocabulary of
// verse and song lyrics.
var englishWeights = map[string]int{
	// Strong positive
	"ecstatic": 4, "euphoric": 4, "magnificent": 4, "marvelous": 3, "outstanding": 5,
	"superb": 5, "wonderful": 4, "fantastic": 4, "breathtaking": 5, "triumph": 4,
	"triumphant": 4, "heavenly": 4, "glorious": 4, "rapture": 4, "bliss": 3,
	"blissful": 3, "amazing": 4, "awesome": 4, "brilliant": 4, "excellent": 3,
	"perfect": 3, "love": 3, "loved": 3, "loves": 3, "loving": 2, "lovely": 3,
	"adore": 3, "adored": 3, "joy": 3, "joyful": 3, "joyous": 3, "delight": 3,
	"delighted": 3, "delightful": 3, "elated": 3, "thrilled": 5, "victory": 3,
	"victorious": 3, "celebrate": 3, "celebration": 3, "paradise": 3, "treasure": 2,

	// Moderate positive
	"happy": 3, "happiness": 3, "glad": 3, "cheer": 2, "cheerful": 2, "smile": 2,
	"smiles": 2, "smiling": 2, "laugh": 1, "laughter": 2, "laughing": 1, "beautiful": 3,
	"beauty": 3, "good": 3, "great": 3, "nice": 3, "kind": 2, "kindness": 2,
	"sweet": 2, "warm": 1, "tender": 2, "gentle": 1, "grace": 2, "graceful": 2,
	"hope": 2, "hopeful": 2, "hopes": 2, "faith": 1, "free": 1, "freedom": 2,
	"brave": 2, "courage": 2, "courageous": 2, "strong": 2, "strength": 2,
	"inspire": 2, "inspired": 2, "inspiring": 3, "dream": 1, "dreams": 1,
	"win": 4, "winning": 4, "won": 3, "success": 2, "achieve": 2, "proud": 2,
	"peace": 2, "peaceful": 2, "calm": 2, "serene": 2, "harmony": 2,
	"comfort": 2, "bright": 1, "shine": 2, "shining": 2, "sunshine": 2,
	"fun": 4, "enjoy": 2, "pleasant": 3, "grateful": 3, "thankful": 2,
	"bless": 2, "blessed": 3, "blessing": 3, "wonder": 2, "alive": 1,
	"passion": 1, "passionate": 2, "desire": 1, "embrace": 1, "kiss": 2,
	"beloved": 3, "darling": 2, "dear": 2, "friend": 1, "friends": 1,

	// Mild positive
	"okay": 1, "ok": 1, "fine": 2, "like": 2, "soft": 1, "rise": 1,
	"better": 2, "best": 3,

	// Strong negative
	"hell": -4, "torture": -4, "tortured": -4, "agony": -3, "anguish": -3,
	"terrible": -3, "horrible": -3, "awful": -3, "dreadful": -3, "hate": -3,
	"hated": -3, "hateful": -3, "despair": -3, "devastated": -2, "miserable": -3,
	"misery": -3, "murder": -2, "kill": -3, "killed": -3, "dead": -3, "death": -2,
	"die": -3, "died": -3, "dying": -3, "rage": -2, "fury": -2, "furious": -3,
	"evil": -3, "cruel": -3, "worst": -3, "disaster": -2, "tragic": -2,
	"tragedy": -2, "destroy": -3, "destroyed": -3, "grief": -2, "heartbroken": -3,

	// Moderate negative
	"sad": -2, "sadness": -2, "sorrow": -2, "sorrowful": -2, "cry": -1,
	"crying": -2, "cried": -2, "tears": -2, "tear": -2, "weep": -2, "weeping": -2,
	"pain": -2, "painful": -2, "hurt": -2, "hurts": -2, "wound": -2, "wounded": -2,
	"lonely": -2, "alone": -2, "loneliness": -2, "lost": -3, "loss": -3,
	"broken": -1, "bitter": -2, "angry": -3, "anger": -3, "mad": -3,
	"fear": -2, "afraid": -2, "scared": -2, "bad": -3,
	"wrong": -2, "fail": -2, "failed": -2, "failure": -2, "regret": -2,
	"shame": -2, "guilt": -3, "guilty": -3, "cold": -1, "gloom": -1,
	"gloomy": -2, "melancholy": -2, "empty": -1, "hollow": -1, "ugly": -3,
	"burn": -1, "burning": -1, "storm": -1, "war": -2, "fight": -1,
	"bleed": -2, "bleeding": -2, "suffer": -2, "suffering": -2, "doom": -2,
	"abandon": -2, "abandoned": -2, "betray": -3, "betrayed": -3,

	// Mild negative
	"dark": -1, "darkness": -1, "grey": -1, "gray": -1, "tired": -2,
	"weary": -2, "worry": -3, "worried": -3, "sigh": -1, "miss": -2,
	"missing": -2, "forget": -1, "forgotten": -1, "fade": -1, "faded": -1,
}
