// internal/solver/solver.go
//
// Greedy narrowing solver.
// Plays a fixed opener against a known secret, then repeatedly scores
// every legal guess by the number of candidates it would leave behind
// and plays the best one until a single candidate remains.

package solver

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Rob-Crane/wordle/internal/clues"
	"github.com/Rob-Crane/wordle/internal/words"
)

var (
	// ErrSecretIndex reports a trial request whose secret index falls
	// outside the answer prefix of the entry list.
	ErrSecretIndex = errors.New("solver: secret index outside answer prefix")

	// ErrDiverged reports that narrowing eliminated the secret itself.
	// The simulation and the real feedback can only disagree through an
	// internal bug, so callers must treat this as fatal.
	ErrDiverged = errors.New("solver: candidate narrowing diverged from secret")
)

// DefaultOpener is the first guess played when none is configured. It
// was chosen offline for how hard it cuts the answer list; the solver
// never recomputes it.
const DefaultOpener = "roate"

// Config carries the solver knobs. The opener is played exactly as
// given; use DefaultConfig and override fields rather than building a
// Config from zero.
type Config struct {
	// Opener is the fixed first guess of every trial.
	Opener words.Word

	// Workers caps the goroutines used for scoring. Zero or negative
	// means one per available CPU. Results are identical at any width.
	Workers int

	// CacheSize bounds the feedback-signature cache; zero or negative
	// disables caching. The cache only changes speed, never results.
	CacheSize int
}

// DefaultConfig returns the standard knobs: the stock opener, one
// worker per CPU, and a bounded feedback cache.
func DefaultConfig() Config {
	return Config{
		Opener:    words.MustParse(DefaultOpener),
		Workers:   runtime.GOMAXPROCS(0),
		CacheSize: 1 << 20,
	}
}

// workerCount resolves the Workers knob to a concrete width, at least
// one. Every parallel dimension in the package sizes itself from this.
func (c Config) workerCount() int {
	if c.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}

// TrialResult records one completed trial. Guesses holds the words
// actually played, opener first.
type TrialResult struct {
	SecretIndex int
	Secret      words.Word
	Guesses     []words.Word
	Elapsed     time.Duration
}

// Count returns the number of guesses used to pin down the secret,
// opener included.
func (r TrialResult) Count() int { return len(r.Guesses) }

// RunTrial plays one full trial against the secret at answer index
// secretIdx. The index must lie inside the answer prefix; ErrSecretIndex
// is returned before any work otherwise. Cancellation is honored between
// rounds, never mid-round.
func RunTrial(ctx context.Context, list words.List, secretIdx int, cfg Config) (TrialResult, error) {
	return newScorer(list, cfg).runTrial(ctx, secretIdx)
}

// scorer bundles the entry list with the scoring resources one solve or
// sweep shares: the worker budget and the feedback cache.
type scorer struct {
	list    words.List
	opener  words.Word
	workers int
	fb      feedbackCache
}

func newScorer(list words.List, cfg Config) *scorer {
	return &scorer{
		list:    list,
		opener:  cfg.Opener,
		workers: cfg.workerCount(),
		fb:      newFeedbackCache(cfg.CacheSize),
	}
}

func (s *scorer) runTrial(ctx context.Context, secretIdx int) (TrialResult, error) {
	if secretIdx < 0 || secretIdx >= s.list.NumAnswers {
		return TrialResult{}, fmt.Errorf("%w: index %d with %d answers", ErrSecretIndex, secretIdx, s.list.NumAnswers)
	}
	secret := s.list.At(secretIdx)
	start := time.Now()

	tr := clues.NewTrial(secret)
	tr.Guess(s.opener)
	guesses := []words.Word{s.opener}

	cands := make([]int, 0, s.list.NumAnswers)
	for i := 0; i < s.list.NumAnswers; i++ {
		if tr.Matches(s.list.At(i)) {
			cands = append(cands, i)
		}
	}
	log.Debug().
		Str("secret", secret.String()).
		Str("opener", s.opener.String()).
		Int("candidates", len(cands)).
		Msg("trial opened")

	for len(cands) > 1 {
		if err := ctx.Err(); err != nil {
			return TrialResult{}, err
		}

		scores := s.scoreRound(guesses, cands)
		best := 0
		for i := 1; i < len(scores); i++ {
			if scores[i] < scores[best] {
				best = i
			}
		}

		guess := s.list.At(best)
		guesses = append(guesses, guess)
		tr.Guess(guess)

		kept := cands[:0]
		for _, ci := range cands {
			if tr.Matches(s.list.At(ci)) {
				kept = append(kept, ci)
			}
		}
		cands = kept
		log.Debug().
			Str("guess", guess.String()).
			Int("round", len(guesses)).
			Int("candidates", len(cands)).
			Msg("narrowed candidates")
	}

	if len(cands) != 1 || s.list.At(cands[0]) != secret {
		return TrialResult{}, fmt.Errorf("%w: secret %s", ErrDiverged, secret)
	}
	return TrialResult{
		SecretIndex: secretIdx,
		Secret:      secret,
		Guesses:     guesses,
		Elapsed:     time.Since(start),
	}, nil
}

// scoreRound accumulates, for every entry in the full list, the total
// number of candidates that would survive it across each hypothetical
// candidate-secret. Workers walk a strided share of the candidate set
// into private score vectors which are then summed element-wise, so the
// totals are identical to a sequential pass at any worker count.
func (s *scorer) scoreRound(history []words.Word, cands []int) []int64 {
	workers := s.workers
	if workers > len(cands) {
		workers = len(cands)
	}
	if workers <= 1 {
		scores := make([]int64, s.list.Len())
		for _, ci := range cands {
			s.scoreCandidate(scores, history, cands, ci)
		}
		return scores
	}

	parts := make([][]int64, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			part := make([]int64, s.list.Len())
			for i := w; i < len(cands); i += workers {
				s.scoreCandidate(part, history, cands, cands[i])
			}
			parts[w] = part
			return nil
		})
	}
	g.Wait()

	scores := parts[0]
	for _, part := range parts[1:] {
		for i, v := range part {
			scores[i] += v
		}
	}
	return scores
}

// scoreCandidate treats the answer at index ci as if it were the
// secret: it replays the guess history against it, then adds to every
// entry's score the count of current candidates that would still match
// after that entry is guessed next.
func (s *scorer) scoreCandidate(scores []int64, history []words.Word, cands []int, ci int) {
	base := clues.NewTrial(s.list.At(ci))
	base.Replay(history)
	st := base.Clues()

	for e := 0; e < s.list.Len(); e++ {
		fb, ok := s.fb.get(e, ci)
		if !ok {
			fb = base.Feedback(s.list.At(e))
			s.fb.put(e, ci, fb)
		}
		after := st
		after.Apply(s.list.At(e), fb)

		var n int64
		for _, c2 := range cands {
			if after.Matches(s.list.At(c2)) {
				n++
			}
		}
		scores[e] += n
	}
}
