package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// backends returns one fresh store per implementation so every test
// exercises memory and SQLite identically.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	sq, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sq.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sq,
	}
}

func TestTrialRoundTrip(t *testing.T) {
	for name, st := range backends(t) {
		st := st
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			tr := &TrialRecord{
				Mode:       ModeManual,
				Secret:     "crane",
				Opener:     "roate",
				Guesses:    3,
				Sequence:   []string{"roate", "clint", "crane"},
				DurationMs: 12,
			}
			require.NoError(t, st.SaveTrial(ctx, tr))
			require.NotEmpty(t, tr.ID, "save assigns an id")
			require.False(t, tr.CreatedAt.IsZero(), "save assigns a timestamp")

			got, err := st.RecentTrials(ctx, 10)
			require.NoError(t, err)
			require.Len(t, got, 1)
			require.Equal(t, tr.ID, got[0].ID)
			require.Equal(t, "crane", got[0].Secret)
			require.Equal(t, "roate", got[0].Opener)
			require.Equal(t, 3, got[0].Guesses)
			require.Equal(t, []string{"roate", "clint", "crane"}, got[0].Sequence)
			require.Equal(t, int64(12), got[0].DurationMs)
			require.WithinDuration(t, tr.CreatedAt, got[0].CreatedAt, time.Second)
		})
	}
}

func TestRecentTrialsOrderAndLimit(t *testing.T) {
	for name, st := range backends(t) {
		st := st
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
			for i := 0; i < 5; i++ {
				tr := &TrialRecord{
					ID:        fmt.Sprintf("trial-%d", i),
					CreatedAt: base.Add(time.Duration(i) * time.Minute),
					Mode:      ModeSweep,
					Secret:    "slate",
					Opener:    "roate",
					Guesses:   4,
					Sequence:  []string{"roate", "slate"},
				}
				require.NoError(t, st.SaveTrial(ctx, tr))
			}

			got, err := st.RecentTrials(ctx, 2)
			require.NoError(t, err)
			require.Len(t, got, 2)
			require.Equal(t, "trial-4", got[0].ID)
			require.Equal(t, "trial-3", got[1].ID)
		})
	}
}

func TestDailyTrialFirstRecordWins(t *testing.T) {
	for name, st := range backends(t) {
		st := st
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := st.DailyTrial(ctx, "2024-05-01")
			require.ErrorIs(t, err, ErrNotFound)

			first := &TrialRecord{
				Mode: ModeDaily, Date: "2024-05-01",
				Secret: "crane", Opener: "roate", Guesses: 3,
				Sequence: []string{"roate", "crane"},
			}
			require.NoError(t, st.SaveTrial(ctx, first))

			second := &TrialRecord{
				Mode: ModeDaily, Date: "2024-05-01",
				Secret: "crane", Opener: "roate", Guesses: 5,
				Sequence: []string{"roate", "crane"},
			}
			require.NoError(t, st.SaveTrial(ctx, second))

			got, err := st.DailyTrial(ctx, "2024-05-01")
			require.NoError(t, err)
			require.Equal(t, first.ID, got.ID)
			require.Equal(t, 3, got.Guesses)

			trials, err := st.RecentTrials(ctx, 10)
			require.NoError(t, err)
			require.Len(t, trials, 1, "duplicate daily save is ignored")
		})
	}
}

func TestRankingRoundTrip(t *testing.T) {
	for name, st := range backends(t) {
		st := st
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := st.LatestRanking(ctx)
			require.ErrorIs(t, err, ErrNotFound)

			base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
			old := &Ranking{
				CreatedAt: base,
				Answers:   2309, Entries: 12947, DurationMs: 60000,
				Top: []RankedGuess{{Rank: 0, Word: "roate", Score: 60296}},
			}
			require.NoError(t, st.SaveRanking(ctx, old))

			latest := &Ranking{
				CreatedAt: base.Add(time.Hour),
				Answers:   2309, Entries: 12947, DurationMs: 61000,
				Top: []RankedGuess{
					{Rank: 0, Word: "roate", Score: 60296},
					{Rank: 1, Word: "raise", Score: 61769},
				},
			}
			require.NoError(t, st.SaveRanking(ctx, latest))

			got, err := st.LatestRanking(ctx)
			require.NoError(t, err)
			require.Equal(t, latest.ID, got.ID)
			require.Equal(t, 2309, got.Answers)
			require.Equal(t, 12947, got.Entries)
			require.Equal(t, latest.Top, got.Top)
		})
	}
}
