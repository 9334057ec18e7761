// internal/clues/trial.go
//
// Trial: a constraint state coupled with a known secret, used by the
// solver to score guesses and replay guess histories.

package clues

import "github.com/Rob-Crane/wordle/internal/words"

// Trial pairs a Clues state with the secret it is being played against.
// The secret's letter set is precomputed once so repeated scoring stays
// cheap. Trial is a value type; copies never share mutable state.
type Trial struct {
	clues     Clues
	secret    words.Word
	secretSet words.LetterSet
}

// NewTrial starts a trial against secret with no clues yet.
func NewTrial(secret words.Word) Trial {
	return Trial{
		clues:     New(),
		secret:    secret,
		secretSet: secret.Letters(),
	}
}

// Feedback computes the feedback w would earn against the secret without
// recording it.
func (t *Trial) Feedback(w words.Word) Feedback {
	return scoreWith(w, t.secret, t.secretSet)
}

// Guess scores w against the secret, folds the resulting clues in, and
// returns the feedback.
func (t *Trial) Guess(w words.Word) Feedback {
	fb := t.Feedback(w)
	t.clues.Apply(w, fb)
	return fb
}

// Replay applies a sequence of prior guesses in order.
func (t *Trial) Replay(guesses []words.Word) {
	for _, g := range guesses {
		t.Guess(g)
	}
}

// Matches reports whether w is still consistent with the clues so far.
func (t *Trial) Matches(w words.Word) bool {
	return t.clues.Matches(w)
}

// Clues returns a copy of the accumulated state, safe for the caller to
// extend without disturbing the trial.
func (t *Trial) Clues() Clues {
	return t.clues
}

// Secret returns the answer this trial is played against.
func (t *Trial) Secret() words.Word {
	return t.secret
}
