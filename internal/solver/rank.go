// internal/solver/rank.go
//
// Opener ranking: one exhaustive pass scoring every entry as a
// standalone first guess over every possible secret. No narrowing, no
// state between rounds; this is the offline pass the stock opener came
// from.

package solver

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Rob-Crane/wordle/internal/clues"
	"github.com/Rob-Crane/wordle/internal/words"
)

// DefaultRankTop is how many ranked openers callers usually report.
const DefaultRankTop = 50

// GuessScore pairs an entry with its accumulated remaining-answers
// total across all secrets. Lower is better.
type GuessScore struct {
	Index int
	Word  words.Word
	Score int64
}

// RankOpeners scores every entry as a first guess: for each secret in
// the answer prefix it derives the entry's feedback and counts the
// answers left consistent, accumulating per entry. The full list comes
// back sorted ascending by score, ties by entry index, so output order
// is deterministic. Cancellation is honored between secrets.
func RankOpeners(ctx context.Context, list words.List, cfg Config) ([]GuessScore, error) {
	return newScorer(list, cfg).rankOpeners(ctx)
}

func (s *scorer) rankOpeners(ctx context.Context) ([]GuessScore, error) {
	numAnswers := s.list.NumAnswers
	if numAnswers == 0 {
		return nil, nil
	}
	workers := s.workers
	if workers > numAnswers {
		workers = numAnswers
	}

	parts := make([][]int64, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			part := make([]int64, s.list.Len())
			for si := w; si < numAnswers; si += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				s.scoreOpeners(part, si)
				log.Debug().Int("secret", si).Int("answers", numAnswers).Msg("ranked secret")
			}
			parts[w] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	scores := parts[0]
	for _, part := range parts[1:] {
		for i, v := range part {
			scores[i] += v
		}
	}

	ranked := make([]GuessScore, s.list.Len())
	for i := range ranked {
		ranked[i] = GuessScore{Index: i, Word: s.list.At(i), Score: scores[i]}
	}
	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].Score != ranked[b].Score {
			return ranked[a].Score < ranked[b].Score
		}
		return ranked[a].Index < ranked[b].Index
	})
	return ranked, nil
}

// scoreOpeners adds, for every entry, the number of answers that would
// remain after guessing it against the secret at answer index si.
func (s *scorer) scoreOpeners(scores []int64, si int) {
	tr := clues.NewTrial(s.list.At(si))
	for e := 0; e < s.list.Len(); e++ {
		fb, ok := s.fb.get(e, si)
		if !ok {
			fb = tr.Feedback(s.list.At(e))
			s.fb.put(e, si, fb)
		}
		st := clues.New()
		st.Apply(s.list.At(e), fb)

		var n int64
		for ai := 0; ai < s.list.NumAnswers; ai++ {
			if st.Matches(s.list.At(ai)) {
				n++
			}
		}
		scores[e] += n
	}
}
