package clues

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Rob-Crane/wordle/internal/words"
)

func TestScore(t *testing.T) {
	t.Parallel()
	type testCase struct {
		name      string
		guess     string
		secret    string
		exact     uint8
		misplaced uint8
		absent    string
		present   string
	}
	cases := []testCase{
		{
			name:   "all exact",
			guess:  "crane",
			secret: "crane",
			exact:  0b11111, present: "crane",
		},
		{
			name:   "all absent",
			guess:  "stump",
			secret: "crane",
			absent: "stump",
		},
		{
			name:      "misplaced letters",
			guess:     "caner",
			secret:    "crane",
			exact:     0b00001,
			misplaced: 0b11110,
			present:   "caner",
		},
		{
			// The duplicated e is exact at the last position; the two
			// earlier e's land in the secret's letter set, so they are
			// misplaced, not absent.
			name:      "duplicate guess letter",
			guess:     "melee",
			secret:    "crane",
			exact:     0b10000,
			misplaced: 0b01010,
			absent:    "ml",
			present:   "e",
		},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			fb := Score(words.MustParse(c.guess), words.MustParse(c.secret))
			require.Equal(t, c.exact, fb.Exact, "exact mask")
			require.Equal(t, c.misplaced, fb.Misplaced, "misplaced mask")
			require.Equal(t, letterSet(c.absent), fb.Absent, "absent set")
			require.Equal(t, letterSet(c.present), fb.Present, "present set")
		})
	}
}

func TestApplyNarrows(t *testing.T) {
	t.Parallel()
	secret := words.MustParse("crane")

	t.Run("excluded letter rejects candidates", func(t *testing.T) {
		t.Parallel()
		tr := NewTrial(secret)
		tr.Guess(words.MustParse("melee"))
		require.True(t, tr.Matches(secret))
		// l was absent, so any candidate containing l is out.
		require.False(t, tr.Matches(words.MustParse("elite")))
		// e is pinned at the last position.
		require.False(t, tr.Matches(words.MustParse("crank")))
		// Consistent with everything learned so far.
		require.True(t, tr.Matches(words.MustParse("haste")))
	})

	t.Run("required letter rejects candidates", func(t *testing.T) {
		t.Parallel()
		tr := NewTrial(secret)
		tr.Guess(words.MustParse("route"))
		// abide clears every positional check but lacks the known r.
		require.False(t, tr.Matches(words.MustParse("abide")))
		require.True(t, tr.Matches(secret))
	})

	t.Run("misplaced letter excluded at its position", func(t *testing.T) {
		t.Parallel()
		tr := NewTrial(secret)
		tr.Guess(words.MustParse("caner"))
		// a was misplaced at the second position, so it cannot sit there.
		require.False(t, tr.Matches(words.MustParse("cacao")))
		require.True(t, tr.Matches(secret))
	})
}

// The secret always survives its own clues, whatever was guessed.
func TestSecretAlwaysConsistent(t *testing.T) {
	t.Parallel()
	list := []string{"crane", "slate", "melee", "abide", "roate", "gaudy", "nymph"}
	for _, s := range list {
		for _, g := range list {
			tr := NewTrial(words.MustParse(s))
			tr.Guess(words.MustParse(g))
			require.True(t, tr.Matches(words.MustParse(s)), "secret %s after guessing %s", s, g)
		}
	}
}

func TestApplyIdempotent(t *testing.T) {
	t.Parallel()
	guess := words.MustParse("route")
	fb := Score(guess, words.MustParse("crane"))

	once := New()
	once.Apply(guess, fb)
	twice := once
	twice.Apply(guess, fb)
	require.Equal(t, once, twice)
}

func TestMatchesDoesNotMutate(t *testing.T) {
	t.Parallel()
	tr := NewTrial(words.MustParse("crane"))
	tr.Replay([]words.Word{words.MustParse("melee"), words.MustParse("route")})

	before := tr.Clues()
	for _, w := range []string{"crane", "haste", "elite", "abide"} {
		tr.Matches(words.MustParse(w))
	}
	require.Equal(t, before, tr.Clues())
}

func TestCluesCopyIsIndependent(t *testing.T) {
	t.Parallel()
	tr := NewTrial(words.MustParse("crane"))
	tr.Guess(words.MustParse("route"))

	before := tr.Clues()
	st := tr.Clues()
	st.Apply(words.MustParse("bling"), Score(words.MustParse("bling"), words.MustParse("crane")))
	// Extending the copy must not disturb the trial's own state.
	require.Equal(t, before, tr.Clues())
	require.NotEqual(t, st, tr.Clues())
	require.True(t, tr.Matches(words.MustParse("crane")))
}

func TestMarks(t *testing.T) {
	t.Parallel()
	fb := Score(words.MustParse("melee"), words.MustParse("crane"))
	require.Equal(t,
		[words.Length]Mark{MarkMiss, MarkPresent, MarkMiss, MarkPresent, MarkHit},
		fb.Marks())
	require.False(t, fb.AllExact())

	win := Score(words.MustParse("crane"), words.MustParse("crane"))
	require.Equal(t,
		[words.Length]Mark{MarkHit, MarkHit, MarkHit, MarkHit, MarkHit},
		win.Marks())
	require.True(t, win.AllExact())
}

func letterSet(s string) words.LetterSet {
	var set words.LetterSet
	for _, r := range s {
		set.Add(words.Letter(r - 'a'))
	}
	return set
}
