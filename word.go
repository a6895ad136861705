package translit

import (
	"strings"
	"unicode"
)

// Word is a sequence of runes (i.e. Unicode code-points) without internal
// whitespace. It is the unit of context for transliteration rules: rules
// inspect neighboring runes of the current word, never across word
// boundaries.
//
// Drivers treat words as scratch buffers with a lifetime of a single
// word conversion; see BorrowWord.
type Word []rune

// MakeWord creates a word from the runes of a Go string.
func MakeWord(s string) Word {
	return Word([]rune(s))
}

// Len returns the length of the word in runes.
func (w Word) Len() int {
	return len(w)
}

// At returns the rune at position pos. The second return value is false
// if pos lies outside the word. Accessing a word out of bounds is a
// regular condition, not an error: rules probe for neighbors which may
// not exist.
func (w Word) At(pos int) (rune, bool) {
	if pos < 0 || pos >= len(w) {
		return 0, false
	}
	return w[pos], true
}

// Prev returns the rune preceding position pos, if any.
func (w Word) Prev(pos int) (rune, bool) {
	return w.At(pos - 1)
}

// Next returns the rune following position pos, if any.
func (w Word) Next(pos int) (rune, bool) {
	return w.At(pos + 1)
}

// IsLast is true if pos denotes the final rune of the word.
func (w Word) IsLast(pos int) bool {
	return len(w) > 0 && pos == len(w)-1
}

func (w Word) String() string {
	return string(w)
}

// WithCaseOf adjusts the case of a candidate Latin rendering to the case
// of the source rune it replaces. Candidates are authored with a leading
// uppercase letter ("Je", "Hh", "Štš"). An uppercase source selects the
// candidate unchanged, i.e. the title-cased digraph; any other source
// selects the fully lowercased form.
func WithCaseOf(src rune, candidate string) string {
	if unicode.IsUpper(src) {
		return candidate
	}
	return strings.ToLower(candidate)
}
