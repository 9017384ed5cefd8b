package verse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Token is a word or a single punctuation symbol.
type Token struct {
	Text  string // The token's content
	Start int    // Byte offset in the original text
	End   int    // Byte offset just past the token
}

// IsPunct reports whether the token is a punctuation symbol.
func (t Token) IsPunct() bool {
	for _, r := range t.Text {
		return !isWordRune(r)
	}
	return false
}

// Tokenize splits text into word and punctuation tokens. Apostrophes and
// hyphens inside a word are kept, so "don't" and "moon-lit" are one token.
func Tokenize(text string) []Token {
	var (
		tokens []Token
		start  = -1
	)

	flush := func(end int) {
		if start >= 0 {
			word := strings.Trim(text[start:end], "'’-")
			if word != "" {
				offset := start + strings.Index(text[start:end], word)
				tokens = append(tokens, Token{Text: word, Start: offset, End: offset + len(word)})
			}
			start = -1
		}
	}

	for i, r := range text {
		switch {
		case isWordRune(r) || (start >= 0 && isJoiner(r)):
			if start < 0 {
				start = i
			}
		case unicode.IsSpace(r):
			flush(i)
		default:
			flush(i)
			_, size := utf8.DecodeRuneInString(text[i:])
			if r == utf8.RuneError && size == 1 {
				// Invalid bytes separate words like whitespace.
				continue
			}
			if unicode.IsPunct(r) || unicode.IsSymbol(r) {
				tokens = append(tokens, Token{Text: text[i : i+size], Start: i, End: i + size})
			}
		}
	}
	flush(len(text))

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func isJoiner(r rune) bool {
	return r == '\'' || r == '’' || r == '-'
}
