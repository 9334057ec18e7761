// internal/httpserver/server.go
//
// HTTP API for the solver.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts, JSON).
//   - Diagnostics: "/", "/health", "/debug/words".
//   - Read endpoints: GET /api/trials, GET /api/rankings/latest, GET /api/daily.
//   - Compute endpoints (admin-gated when configured): POST /api/solve, POST /api/rank.
//
// Notes:
//   - Solves and rankings run on the request context, so a dropped client
//     cancels the work at the next round/secret boundary.
//   - The daily trial is computed once per date and memoized in the store.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Rob-Crane/wordle/internal/clues"
	"github.com/Rob-Crane/wordle/internal/solver"
	"github.com/Rob-Crane/wordle/internal/store"
	"github.com/Rob-Crane/wordle/internal/words"
)

// Server bundles router, entry list, solver config, and result store.
type Server struct {
	r    *chi.Mux
	st   store.Store
	list words.List
	cfg  solver.Config
	salt string
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, list words.List, cfg solver.Config) *Server {
	s := &Server{
		r:    chi.NewRouter(),
		st:   st,
		list: list,
		cfg:  cfg,
		salt: getEnv("DAILY_SALT", "local_dev_salt"),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(60 * time.Second)) // solve/rank runs are CPU-heavy
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","/debug/words","GET /api/trials","GET /api/rankings/latest","GET /api/daily","POST /api/solve","POST /api/rank","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{
			"answers": s.list.NumAnswers,
			"entries": s.list.Len(),
		})
	})

	// Read endpoints stay open.
	s.r.Get("/api/trials", s.handleTrials)
	s.r.Get("/api/rankings/latest", s.handleLatestRanking)
	s.r.Get("/api/daily", s.handleDaily)

	// Compute endpoints require the admin token once a hash is set.
	s.r.With(s.requireAdmin()).Post("/api/solve", s.handleSolve)
	s.r.With(s.requireAdmin()).Post("/api/rank", s.handleRank)

	s.mountAuth()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	if os.Getenv("ADMIN_PASSWORD_HASH") == "" {
		log.Warn().Msg("ADMIN_PASSWORD_HASH unset; compute endpoints are open")
	}
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ payloads -----------------------------------

// trialJSON is the wire shape of a stored or freshly solved trial.
type trialJSON struct {
	ID         string         `json:"id,omitempty"`
	Mode       string         `json:"mode"`
	Date       string         `json:"date,omitempty"`
	Secret     string         `json:"secret"`
	Opener     string         `json:"opener"`
	Guesses    int            `json:"guesses"`
	Sequence   []string       `json:"sequence"`
	Marks      [][]clues.Mark `json:"marks,omitempty"`
	DurationMs int64          `json:"durationMs"`
}

type rankRow struct {
	Rank  int    `json:"rank"`
	Word  string `json:"word"`
	Score int64  `json:"score"`
}

type rankJSON struct {
	ID         string    `json:"id,omitempty"`
	Answers    int       `json:"answers"`
	Entries    int       `json:"entries"`
	DurationMs int64     `json:"durationMs"`
	Top        []rankRow `json:"top"`
}

func trialFromRecord(t store.TrialRecord, withMarks bool) trialJSON {
	out := trialJSON{
		ID:         t.ID,
		Mode:       t.Mode,
		Date:       t.Date,
		Secret:     t.Secret,
		Opener:     t.Opener,
		Guesses:    t.Guesses,
		Sequence:   t.Sequence,
		DurationMs: t.DurationMs,
	}
	if withMarks {
		out.Marks = sequenceMarks(t.Secret, t.Sequence)
	}
	return out
}

// sequenceMarks renders per-guess hit/present/miss labels for a
// recorded sequence. Records are written by us, so parse failures only
// mean a hand-edited row; marks are then omitted rather than guessed.
func sequenceMarks(secret string, seq []string) [][]clues.Mark {
	sec, err := words.Parse(secret)
	if err != nil {
		return nil
	}
	out := make([][]clues.Mark, 0, len(seq))
	for _, g := range seq {
		gw, err := words.Parse(g)
		if err != nil {
			return nil
		}
		m := clues.Score(gw, sec).Marks()
		out = append(out, m[:])
	}
	return out
}

func recordTrial(res solver.TrialResult, mode, date string, cfg solver.Config) store.TrialRecord {
	seq := make([]string, len(res.Guesses))
	for i, g := range res.Guesses {
		seq[i] = g.String()
	}
	return store.TrialRecord{
		Mode:       mode,
		Date:       date,
		Secret:     res.Secret.String(),
		Opener:     cfg.Opener.String(),
		Guesses:    res.Count(),
		Sequence:   seq,
		DurationMs: res.Elapsed.Milliseconds(),
	}
}

// ------------------------------ handlers -----------------------------------

type solveReq struct {
	Secret string `json:"secret"`
	Index  *int   `json:"index"`
}

// handleSolve runs one trial for the requested secret (by word or by
// answer index) and persists the outcome.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	var idx int
	switch {
	case req.Index != nil:
		idx = *req.Index
	case req.Secret != "":
		wd, err := words.Parse(req.Secret)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		idx = s.list.IndexOf(wd)
		if idx < 0 || idx >= s.list.NumAnswers {
			http.Error(w, `{"error":"secret is not an answer"}`, http.StatusBadRequest)
			return
		}
	default:
		http.Error(w, `{"error":"secret or index required"}`, http.StatusBadRequest)
		return
	}

	res, err := solver.RunTrial(r.Context(), s.list, idx, s.cfg)
	if err != nil {
		writeSolverError(w, r, err)
		return
	}

	rec := recordTrial(res, store.ModeManual, "", s.cfg)
	if err := s.st.SaveTrial(r.Context(), &rec); err != nil {
		log.Warn().Err(err).Msg("save trial")
	}
	_ = json.NewEncoder(w).Encode(trialFromRecord(rec, true))
}

type rankReq struct {
	Top int `json:"top"`
}

// handleRank runs the full opener ranking and persists the reported top.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req rankReq
	_ = json.NewDecoder(r.Body).Decode(&req)
	top := req.Top
	if top <= 0 {
		top = solver.DefaultRankTop
	}

	start := time.Now()
	ranked, err := solver.RankOpeners(r.Context(), s.list, s.cfg)
	if err != nil {
		writeSolverError(w, r, err)
		return
	}
	if top > len(ranked) {
		top = len(ranked)
	}

	rec := store.Ranking{
		Answers:    s.list.NumAnswers,
		Entries:    s.list.Len(),
		DurationMs: time.Since(start).Milliseconds(),
	}
	rows := make([]rankRow, top)
	for i := 0; i < top; i++ {
		rows[i] = rankRow{Rank: i, Word: ranked[i].Word.String(), Score: ranked[i].Score}
		rec.Top = append(rec.Top, store.RankedGuess{Rank: i, Word: rows[i].Word, Score: rows[i].Score})
	}
	if err := s.st.SaveRanking(r.Context(), &rec); err != nil {
		log.Warn().Err(err).Msg("save ranking")
	}
	_ = json.NewEncoder(w).Encode(rankJSON{
		ID: rec.ID, Answers: rec.Answers, Entries: rec.Entries,
		DurationMs: rec.DurationMs, Top: rows,
	})
}

// handleTrials lists recent trials, newest first.
func (s *Server) handleTrials(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	trials, err := s.st.RecentTrials(r.Context(), limit)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	out := make([]trialJSON, len(trials))
	for i, t := range trials {
		out[i] = trialFromRecord(t, false)
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleLatestRanking returns the most recent stored ranking.
func (s *Server) handleLatestRanking(w http.ResponseWriter, r *http.Request) {
	rec, err := s.st.LatestRanking(r.Context())
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	rows := make([]rankRow, len(rec.Top))
	for i, g := range rec.Top {
		rows[i] = rankRow{Rank: g.Rank, Word: g.Word, Score: g.Score}
	}
	_ = json.NewEncoder(w).Encode(rankJSON{
		ID: rec.ID, Answers: rec.Answers, Entries: rec.Entries,
		DurationMs: rec.DurationMs, Top: rows,
	})
}

// writeSolverError maps solver failures onto HTTP statuses.
func writeSolverError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, solver.ErrSecretIndex):
		http.Error(w, `{"error":"secret index out of range"}`, http.StatusBadRequest)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Warn().Err(err).Str("path", r.URL.Path).Msg("solve canceled")
		http.Error(w, `{"error":"canceled"}`, http.StatusServiceUnavailable)
	default:
		// Divergence and anything else unexpected is an internal failure.
		log.Error().Err(err).Str("path", r.URL.Path).Msg("solver failure")
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt returns the integer value of k or def if unset/invalid.
func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
