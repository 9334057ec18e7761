// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// This is a lightweight persistence layer used when durability is not
// required, primarily in development/testing.
//
// Characteristics:
//   - Keeps trials and rankings in slices guarded by an RWMutex.
//   - State is lost when the process restarts.
//   - ErrNotFound for missing lookups, like the SQLite backend.

package store

import (
	"context"
	"sync"
)

// memory is an in-memory slice-and-map Store implementation.
type memory struct {
	mu       sync.RWMutex
	trials   []TrialRecord  // append order, newest last
	daily    map[string]int // date -> index into trials
	rankings []Ranking      // append order, newest last
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{daily: make(map[string]int)}
}

func (m *memory) SaveTrial(ctx context.Context, t *TrialRecord) error {
	ensureMeta(&t.ID, &t.CreatedAt)
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.Mode == ModeDaily && t.Date != "" {
		if _, ok := m.daily[t.Date]; ok {
			return nil
		}
		m.daily[t.Date] = len(m.trials)
	}
	m.trials = append(m.trials, cloneTrial(*t))
	return nil
}

func (m *memory) RecentTrials(ctx context.Context, limit int) ([]TrialRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]TrialRecord, 0, limit)
	for i := len(m.trials) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, cloneTrial(m.trials[i]))
	}
	return out, nil
}

func (m *memory) DailyTrial(ctx context.Context, date string) (*TrialRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.daily[date]
	if !ok {
		return nil, ErrNotFound
	}
	t := cloneTrial(m.trials[i])
	return &t, nil
}

func (m *memory) SaveRanking(ctx context.Context, r *Ranking) error {
	ensureMeta(&r.ID, &r.CreatedAt)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rankings = append(m.rankings, cloneRanking(*r))
	return nil
}

func (m *memory) LatestRanking(ctx context.Context) (*Ranking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.rankings) == 0 {
		return nil, ErrNotFound
	}
	r := cloneRanking(m.rankings[len(m.rankings)-1])
	return &r, nil
}

func (m *memory) Close() error { return nil }

// cloneTrial copies the record's slice so callers and the store never
// alias each other's data.
func cloneTrial(t TrialRecord) TrialRecord {
	t.Sequence = append([]string(nil), t.Sequence...)
	return t
}

func cloneRanking(r Ranking) Ranking {
	r.Top = append([]RankedGuess(nil), r.Top...)
	return r
}
