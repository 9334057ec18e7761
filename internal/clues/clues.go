// internal/clues/clues.go
//
// Clue accumulation and candidate matching.
// Defines:
//   - Clues: the constraint state built up from scored guesses.
//   - Score/Apply: derive feedback for a guess and fold it into the state.
//   - Matches: test whether a word is still consistent with the state.

package clues

import "github.com/Rob-Crane/wordle/internal/words"

// Clues is the accumulated constraint state of a game in progress. It
// records, per position, the confirmed letter (if any) and the letters
// ruled out there, plus the set of letters known to occur somewhere in
// the answer. Zero value is not ready to use; call New.
type Clues struct {
	match    [words.Length]words.Letter
	wrong    [words.Length]words.LetterSet
	inAnswer words.LetterSet
}

// New returns an empty constraint state: every position unknown, no
// letters excluded anywhere, no letters required.
func New() Clues {
	var c Clues
	for i := range c.match {
		c.match[i] = words.Unknown
	}
	return c
}

// Score classifies guess against secret position by position. Exact
// matches are checked first; a non-exact letter that occurs anywhere in
// the secret is misplaced, and only letters absent from the whole secret
// are absent. The membership test uses the secret's full letter set, so
// a letter that is exact at one position and guessed again at another is
// misplaced there, never absent.
func Score(guess, secret words.Word) Feedback {
	return scoreWith(guess, secret, secret.Letters())
}

// scoreWith is Score with the secret's letter set precomputed, for
// callers scoring many guesses against one secret.
func scoreWith(guess, secret words.Word, secretSet words.LetterSet) Feedback {
	var fb Feedback
	for i := 0; i < words.Length; i++ {
		l := guess[i]
		switch {
		case l == secret[i]:
			fb.Exact |= 1 << uint(i)
			fb.Present.Add(l)
		case secretSet.Has(l):
			fb.Misplaced |= 1 << uint(i)
			fb.Present.Add(l)
		default:
			fb.Absent.Add(l)
		}
	}
	return fb
}

// Apply folds the feedback for guess into the state. Exact positions pin
// the letter, misplaced positions exclude the letter there, and absent
// letters are excluded at every position. inAnswer grows by the guessed
// letters the secret contains; clues only ever narrow, never loosen.
func (c *Clues) Apply(guess words.Word, fb Feedback) {
	for i := 0; i < words.Length; i++ {
		bit := uint8(1) << uint(i)
		switch {
		case fb.Exact&bit != 0:
			c.match[i] = guess[i]
		case fb.Misplaced&bit != 0:
			c.wrong[i].Add(guess[i])
		}
	}
	if fb.Absent != 0 {
		for i := range c.wrong {
			c.wrong[i] |= fb.Absent
		}
	}
	c.inAnswer |= fb.Present
}

// Matches reports whether w is consistent with every clue accumulated so
// far: each pinned position holds its letter, no position holds a letter
// excluded there, and w contains every letter known to be in the answer.
// It never mutates the state, so one Clues value can screen a whole
// candidate list.
func (c *Clues) Matches(w words.Word) bool {
	var inWord words.LetterSet
	for i := 0; i < words.Length; i++ {
		l := w[i]
		if c.match[i] != words.Unknown && c.match[i] != l {
			return false
		}
		if c.wrong[i].Has(l) {
			return false
		}
		inWord.Add(l)
	}
	return inWord.ContainsAll(c.inAnswer)
}
