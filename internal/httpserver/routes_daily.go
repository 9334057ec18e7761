// internal/httpserver/routes_daily.go
//
// HTTP route for the daily trial.
// GET /api/daily returns the solver's run against today's secret.
// Deterministic word selection is based on date + salt; the first
// request of a date computes the trial and persists it, later requests
// (and concurrent racers, via the store's first-record-wins rule)
// read it back.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Rob-Crane/wordle/internal/daily"
	"github.com/Rob-Crane/wordle/internal/solver"
	"github.com/Rob-Crane/wordle/internal/store"
)

// handleDaily returns the trial for today's deterministic secret,
// computing and recording it on first request.
func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	date := daily.DateKey(now)

	// Served already today?
	rec, err := s.st.DailyTrial(r.Context(), date)
	if err == nil {
		_ = json.NewEncoder(w).Encode(trialFromRecord(*rec, true))
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}

	// First request of the date: pick the secret and run the trial.
	idx := daily.WordIndex(now, s.salt, s.list.NumAnswers)
	res, err := solver.RunTrial(r.Context(), s.list, idx, s.cfg)
	if err != nil {
		writeSolverError(w, r, err)
		return
	}

	fresh := recordTrial(res, store.ModeDaily, date, s.cfg)
	if err := s.st.SaveTrial(r.Context(), &fresh); err != nil {
		log.Warn().Err(err).Str("date", date).Msg("save daily trial")
	}
	_ = json.NewEncoder(w).Encode(trialFromRecord(fresh, true))
}
