// internal/store/store.go
//
// Persistence layer for solver results.
// Defines:
//   - TrialRecord / Ranking: the rows solves and ranking runs produce.
//   - Store: the persistence interface, with memory and SQLite backends.
//
// Characteristics:
//   - Stores completed outcomes only; a running solve never touches it.
//   - Record IDs are ksuids, assigned on save when absent.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/segmentio/ksuid"
)

// ErrNotFound is returned by lookups with no matching record.
var ErrNotFound = errors.New("store: not found")

// Trial modes.
const (
	ModeManual = "manual"
	ModeDaily  = "daily"
	ModeSweep  = "sweep"
)

// TrialRecord is one completed solver trial.
type TrialRecord struct {
	ID         string
	CreatedAt  time.Time
	Mode       string // manual, daily or sweep
	Date       string // YYYY-MM-DD, daily trials only
	Secret     string
	Opener     string
	Guesses    int
	Sequence   []string // words played, opener first
	DurationMs int64
}

// RankedGuess is one reported row of a ranking.
type RankedGuess struct {
	Rank  int
	Word  string
	Score int64
}

// Ranking is one completed opener-ranking run, keeping only the
// reported top of the full ordering.
type Ranking struct {
	ID         string
	CreatedAt  time.Time
	Answers    int
	Entries    int
	DurationMs int64
	Top        []RankedGuess
}

// Store defines persistence for solver outcomes.
// Implementations may be backed by memory (this package) or SQLite.
type Store interface {
	// SaveTrial persists a trial, assigning ID and CreatedAt when
	// unset. A daily trial for an already-recorded date is ignored, so
	// the first record for a date wins.
	SaveTrial(ctx context.Context, t *TrialRecord) error

	// RecentTrials returns up to limit trials, newest first.
	RecentTrials(ctx context.Context, limit int) ([]TrialRecord, error)

	// DailyTrial returns the trial recorded for a YYYY-MM-DD date.
	// Returns ErrNotFound if the date has not been played.
	DailyTrial(ctx context.Context, date string) (*TrialRecord, error)

	// SaveRanking persists a ranking, assigning ID and CreatedAt when
	// unset.
	SaveRanking(ctx context.Context, r *Ranking) error

	// LatestRanking returns the most recent ranking.
	// Returns ErrNotFound when none has been stored.
	LatestRanking(ctx context.Context) (*Ranking, error)

	// Close releases the backing resources.
	Close() error
}

// ensureMeta fills the identity fields a fresh record is missing.
func ensureMeta(id *string, createdAt *time.Time) {
	if *id == "" {
		*id = ksuid.New().String()
	}
	if createdAt.IsZero() {
		*createdAt = time.Now().UTC()
	}
}
