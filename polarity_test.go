package verse

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestPolarity(t *testing.T) {
	tests := []struct {
		text     string
		expected float64
		desc     string
	}{
		{"", 0, "Empty text"},
		{"I love this", 3, "Single positive word"},
		{"joy and sorrow", 1, "Mixed words are summed"},
		{"terrible, horrible, awful", -9, "Strong negative"},
		{"i do not love this", -3, "Negation reverses"},
		{"i don't love this", -3, "Contraction negation"},
		{"never sad", 2, "Negated negative"},
		{"not, love", 3, "Clause boundary ends the negation"},
		{"not a single good thing", 3, "Negation outside the window"},
		{"LOVE", 3, "Uppercase input"},
		{"the table is made of wood", 0, "No sentiment words"},
	}

	lex := DefaultLexicon()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := lex.Polarity(tt.text); got != tt.expected {
				t.Errorf("Text: %q\nExpected polarity: %.1f\nGot: %.1f", tt.text, tt.expected, got)
			}
		})
	}
}

func TestPolarityWords(t *testing.T) {
	words := DefaultLexicon().PolarityWords("I do not love the rain, but joy remains")

	if len(words) != 2 {
		t.Fatalf("Expected 2 weighted words, got %v", words)
	}
	if words[0].Word != "love" || words[0].Weight != -3 || !words[0].Negated {
		t.Errorf("Unexpected first word: %+v", words[0])
	}
	if words[1].Word != "joy" || words[1].Weight != 3 || words[1].Negated {
		t.Errorf("Unexpected second word: %+v", words[1])
	}
}

func TestPolarityWordsInvalidUTF8(t *testing.T) {
	words := DefaultLexicon().PolarityWords("not \xff happy")
	if len(words) != 1 || words[0].Word != "happy" || !words[0].Negated || words[0].Weight != -3 {
		t.Errorf("Expected negated happy, got %+v", words)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
		desc     string
	}{
		{"", nil, "Empty text"},
		{"Don't stop", []string{"Don't", "stop"}, "Contraction stays whole"},
		{"moon-lit night!", []string{"moon-lit", "night", "!"}, "Hyphenated word and punctuation"},
		{"'quoted' words", []string{"'", "quoted", "words"}, "Leading and trailing apostrophes"},
		{"one,two", []string{"one", ",", "two"}, "Punctuation without spaces"},
		{"not \xff happy", []string{"not", "happy"}, "Invalid byte is a separator"},
		{"a\ufffdb", []string{"a", "\ufffd", "b"}, "Replacement character is a symbol"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			var got []string
			for _, tok := range Tokenize(tt.text) {
				got = append(got, tok.Text)
				if tt.text[tok.Start:tok.End] != tok.Text {
					t.Errorf("Offsets %d:%d do not match %q", tok.Start, tok.End, tok.Text)
				}
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Text: %q\nExpected: %q\nGot: %q", tt.text, tt.expected, got)
			}
		})
	}
}

func TestNewLexiconClampsWeights(t *testing.T) {
	lex := NewLexicon(map[string]int{"Radiant": 9, "vile": -12, "meh": 0}, []string{"Scarcely"})

	if w := lex.Weight("radiant"); w != 5 {
		t.Errorf("Expected 5, got %d", w)
	}
	if w := lex.Weight("VILE"); w != -5 {
		t.Errorf("Expected -5, got %d", w)
	}
	if !lex.HasWord("meh") || lex.Size() != 3 {
		t.Errorf("Unexpected lexicon contents, size %d", lex.Size())
	}
	if !lex.IsNegation("scarcely") {
		t.Error("Expected scarcely to be a negation")
	}
}

func TestLoadLexicon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.json")
	data := `{"words": {"moonlit": 4, "love": -1}, "negations": ["scarcely"]}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	lex, err := LoadLexicon(path)
	if err != nil {
		t.Fatalf("Failed to load lexicon: %v", err)
	}

	if w := lex.Weight("moonlit"); w != 4 {
		t.Errorf("Expected external word weight 4, got %d", w)
	}
	if w := lex.Weight("love"); w != -1 {
		t.Errorf("Expected external entry to override, got %d", w)
	}
	if w := lex.Weight("joy"); w != 3 {
		t.Errorf("Expected default entries to survive the merge, got %d", w)
	}
	if p := lex.Polarity("scarcely moonlit"); p != -4 {
		t.Errorf("Expected external negation to apply, got %.1f", p)
	}
	if DefaultLexicon().HasWord("moonlit") {
		t.Error("Merge modified the default lexicon")
	}
}

func TestLoadLexiconErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadLexicon(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLexicon(bad); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}
