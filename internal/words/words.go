// internal/words/words.go
//
// Letter and word codec for the solver core.
// Defines:
//   - Letter: one alphabet position as a small integer code (0..25).
//   - Word: a fixed sequence of exactly 5 Letters, comparable by value.
//   - LetterSet: a bitmask over the alphabet with named bit helpers.
//   - List: an ordered entry list whose prefix is the legal answer set.
//
// The codec is strict: Parse rejects anything that is not exactly 5
// lowercase ASCII letters. Normalization (trimming, lowercasing) is the
// loader's job, so a Word can never hold an out-of-range code.

package words

import (
	"errors"
	"strings"
)

const (
	// Length is the fixed word length of the puzzle.
	Length = 5

	// AlphabetSize is the number of distinct letters. LetterSet packs one
	// bit per letter, so the alphabet must fit in a single 32-bit word;
	// this is a hard precondition, not something checked per call.
	AlphabetSize = 26
)

// Decode errors returned by Parse.
var (
	ErrWordLength = errors.New("words: word must be exactly 5 letters")
	ErrWordChar   = errors.New("words: word may only contain a-z")
)

// Letter is one alphabet position, 0 for 'a' through 25 for 'z'.
// Unknown is the sentinel for "no letter known here".
type Letter int8

const Unknown Letter = -1

// LetterSet is a bitmask where bit i means letter i is in the set.
type LetterSet uint32

// Add sets the bit for l. l must be a real letter, never Unknown.
func (s *LetterSet) Add(l Letter) { *s |= 1 << uint(l) }

// Has reports whether the bit for l is set.
func (s LetterSet) Has(l Letter) bool { return s&(1<<uint(l)) != 0 }

// ContainsAll reports whether every letter in sub is also in s.
func (s LetterSet) ContainsAll(sub LetterSet) bool { return s&sub == sub }

// Word is a fixed-length sequence of Letters. Words are immutable values:
// equality and map-key behavior come from position-wise letter equality.
type Word [Length]Letter

// Parse decodes a 5-letter lowercase token into a Word.
func Parse(s string) (Word, error) {
	var w Word
	if len(s) != Length {
		return w, ErrWordLength
	}
	for i := 0; i < Length; i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return w, ErrWordChar
		}
		w[i] = Letter(c - 'a')
	}
	return w, nil
}

// MustParse is Parse for known-good constants; it panics on bad input.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic("words: MustParse(" + s + "): " + err.Error())
	}
	return w
}

// String decodes the Word back to its lowercase text form.
func (w Word) String() string {
	var b strings.Builder
	b.Grow(Length)
	for _, l := range w {
		b.WriteByte(byte(l) + 'a')
	}
	return b.String()
}

// Letters returns the set of letters appearing anywhere in the word.
func (w Word) Letters() LetterSet {
	var s LetterSet
	for _, l := range w {
		s.Add(l)
	}
	return s
}

// List is the full guessable entry list. The first NumAnswers entries are
// the legal secrets; the remainder are words accepted as guesses only.
type List struct {
	Words      []Word
	NumAnswers int
}

// NewList builds a List from an answer list and extra guess-only words.
func NewList(answers, extras []Word) List {
	entries := make([]Word, 0, len(answers)+len(extras))
	entries = append(entries, answers...)
	entries = append(entries, extras...)
	return List{Words: entries, NumAnswers: len(answers)}
}

// Answers returns the answer-only prefix of the entry list.
func (l List) Answers() []Word { return l.Words[:l.NumAnswers] }

// Len returns the total number of guessable entries.
func (l List) Len() int { return len(l.Words) }

// At returns the entry at index i.
func (l List) At(i int) Word { return l.Words[i] }

// IndexOf returns the index of w in the entry list, or -1 if absent.
func (l List) IndexOf(w Word) int {
	for i, e := range l.Words {
		if e == w {
			return i
		}
	}
	return -1
}
