// internal/store/sqlite.go
//
// SQLite implementation of the Store interface.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded sql/*.sql migrations (idempotent, recorded in _migrations).
//   - Trial and ranking persistence.

package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

type sqliteStore struct {
	db *sql.DB
}

/**
 * OpenSQLite opens (and creates if missing) a SQLite database file and
 * brings its schema up to date.
 *
 * - Ensures parent directory exists for relative DSNs (e.g. ./data/app.db).
 * - Configures busy timeout and WAL journaling mode.
 * - Enforces foreign keys.
 */
func OpenSQLite(dsn string) (Store, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

/**
 * migrate applies the embedded SQL migrations.
 *
 * - Uses a _migrations table to track applied files.
 * - Executes each *.sql file in lexical order.
 * - Skips files already applied.
 */
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	entries, err := migrationsFS.ReadDir("sql")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrationsFS.ReadFile("sql/" + f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

const trialColumns = `id, created_at, mode, date, secret, opener, guesses, sequence, duration_ms`

func (s *sqliteStore) SaveTrial(ctx context.Context, t *TrialRecord) error {
	ensureMeta(&t.ID, &t.CreatedAt)
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO trials (`+trialColumns+`)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.CreatedAt, t.Mode, t.Date, t.Secret, t.Opener, t.Guesses,
		strings.Join(t.Sequence, " "), t.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("insert trial: %w", err)
	}
	return nil
}

func (s *sqliteStore) RecentTrials(ctx context.Context, limit int) ([]TrialRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT `+trialColumns+`
        FROM trials
        ORDER BY created_at DESC, id DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TrialRecord, 0, limit)
	for rows.Next() {
		t, err := scanTrial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *sqliteStore) DailyTrial(ctx context.Context, date string) (*TrialRecord, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT `+trialColumns+`
        FROM trials
        WHERE mode=? AND date=?
        LIMIT 1`, ModeDaily, date,
	)
	t, err := scanTrial(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *sqliteStore) SaveRanking(ctx context.Context, r *Ranking) error {
	ensureMeta(&r.ID, &r.CreatedAt)
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
        INSERT INTO rankings (id, created_at, answers, entries, duration_ms)
        VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt, r.Answers, r.Entries, r.DurationMs,
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert ranking: %w", err)
	}
	for _, g := range r.Top {
		if _, err := tx.ExecContext(ctx, `
            INSERT INTO ranking_entries (ranking_id, rank, word, score)
            VALUES (?, ?, ?, ?)`,
			r.ID, g.Rank, g.Word, g.Score,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert ranking entry: %w", err)
		}
	}
	return tx.Commit()
}

func (s *sqliteStore) LatestRanking(ctx context.Context) (*Ranking, error) {
	var r Ranking
	err := s.db.QueryRowContext(ctx, `
        SELECT id, created_at, answers, entries, duration_ms
        FROM rankings
        ORDER BY created_at DESC, id DESC
        LIMIT 1`,
	).Scan(&r.ID, &r.CreatedAt, &r.Answers, &r.Entries, &r.DurationMs)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT rank, word, score
        FROM ranking_entries
        WHERE ranking_id=?
        ORDER BY rank ASC`, r.ID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var g RankedGuess
		if err := rows.Scan(&g.Rank, &g.Word, &g.Score); err != nil {
			return nil, err
		}
		r.Top = append(r.Top, g)
	}
	return &r, rows.Err()
}

func (s *sqliteStore) Close() error { return s.db.Close() }

// scanTrial reads one trials row from either a *sql.Row or *sql.Rows.
func scanTrial(row interface{ Scan(...any) error }) (TrialRecord, error) {
	var t TrialRecord
	var seq string
	err := row.Scan(&t.ID, &t.CreatedAt, &t.Mode, &t.Date, &t.Secret, &t.Opener,
		&t.Guesses, &seq, &t.DurationMs)
	if err != nil {
		return TrialRecord{}, err
	}
	t.Sequence = strings.Fields(seq)
	return t, nil
}
