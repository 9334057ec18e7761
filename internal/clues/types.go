// internal/clues/types.go
//
// Core type definitions for the clue engine.
// Defines:
//   - Feedback: the per-position classification of one guess against one
//     secret, packed small enough to cache by value.
//   - Mark: per-letter display label for a guess (hit/present/miss).

package clues

import "github.com/Rob-Crane/wordle/internal/words"

// Feedback is the complete clue signature a guess earns against a secret.
// Exact and Misplaced are position bitmasks (bit i = position i); Absent
// and Present are letter sets. A Feedback value depends only on the
// (guess, secret) pair, which is what makes it cacheable.
type Feedback struct {
	Exact     uint8           // positions where the guess letter is the secret's letter
	Misplaced uint8           // positions whose letter occurs in the secret, elsewhere
	Absent    words.LetterSet // guessed letters occurring nowhere in the secret
	Present   words.LetterSet // guessed letters occurring somewhere in the secret
}

// Mark represents the display label for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "miss":    letter does not exist in the answer at all.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Marks renders the feedback as per-position labels. The labels follow
// the constraint rule (letter-membership, not occurrence counting), so a
// duplicated guess letter shows "present" at every non-exact occurrence
// while the secret contains it at all.
func (fb Feedback) Marks() [words.Length]Mark {
	var m [words.Length]Mark
	for i := 0; i < words.Length; i++ {
		bit := uint8(1) << uint(i)
		switch {
		case fb.Exact&bit != 0:
			m[i] = MarkHit
		case fb.Misplaced&bit != 0:
			m[i] = MarkPresent
		default:
			m[i] = MarkMiss
		}
	}
	return m
}

// AllExact reports whether every position was an exact match, i.e. the
// guess was the secret itself.
func (fb Feedback) AllExact() bool {
	return fb.Exact == 1<<words.Length-1
}
