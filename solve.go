// solve.go
//
// "wordle solve" runs one trial: the solver plays its greedy strategy
// against a chosen secret and prints the guess sequence with per-letter
// marks (* hit, + present, . miss).

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/Rob-Crane/wordle/internal/clues"
	"github.com/Rob-Crane/wordle/internal/daily"
	"github.com/Rob-Crane/wordle/internal/solver"
	"github.com/Rob-Crane/wordle/internal/store"
	"github.com/Rob-Crane/wordle/internal/words"
)

func init() {
	funcs["solve"] = subcommand{
		"[-s/--secret=<word> | -i/--index=<n> | --daily]",
		"Runs one trial against the given secret and prints the guess sequence",
		func(a []string) int {
			o := struct {
				Secret string `long:"secret" short:"s"`
				Index  int    `long:"index" short:"i" default:"-1"`
				Daily  bool   `long:"daily"`
			}{}
			p := flags.NewParser(&o, 0)
			if _, err := p.ParseArgs(a); err != nil {
				die(fmt.Sprintf("parse: %v", err))
			}

			list := mustList()
			cfg := solverConfig()

			mode := store.ModeManual
			date := ""
			var idx int
			switch {
			case o.Daily:
				now := time.Now()
				mode, date = store.ModeDaily, daily.DateKey(now)
				idx = daily.WordIndex(now, getEnv("DAILY_SALT", "local_dev_salt"), list.NumAnswers)
			case o.Secret != "":
				w, err := words.Parse(o.Secret)
				if err != nil {
					die(err.Error())
				}
				idx = list.IndexOf(w)
				if idx < 0 || idx >= list.NumAnswers {
					die(fmt.Sprintf("%q is not in the answer list", o.Secret))
				}
			case o.Index >= 0:
				idx = o.Index
			default:
				return exitSubcommandUsage
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			res, err := solver.RunTrial(ctx, list, idx, cfg)
			if err != nil {
				die(err.Error())
			}

			printTrial(res)
			persistTrial(ctx, res, cfg, mode, date)
			return 0
		},
	}
}

// printTrial writes the played sequence and its outcome to stdout.
func printTrial(res solver.TrialResult) {
	for i, g := range res.Guesses {
		fb := clues.Score(g, res.Secret)
		fmt.Printf("%2d  %s  %s\n", i+1, g, markGlyphs(fb.Marks()))
	}
	fmt.Printf("secret %s found with %d guesses (%s)\n",
		res.Secret, res.Count(), res.Elapsed.Round(time.Millisecond))
}

// markGlyphs renders marks compactly: * hit, + present, . miss.
func markGlyphs(marks [words.Length]clues.Mark) string {
	var b strings.Builder
	for _, m := range marks {
		switch m {
		case clues.MarkHit:
			b.WriteByte('*')
		case clues.MarkPresent:
			b.WriteByte('+')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// persistTrial records the trial when DB_PATH is configured. CLI runs
// without a database are throwaway, so there is nothing to save then.
func persistTrial(ctx context.Context, res solver.TrialResult, cfg solver.Config, mode, date string) {
	if os.Getenv("DB_PATH") == "" {
		return
	}
	st := openStore()
	defer st.Close()
	rec := trialRecord(res, cfg, mode, date)
	if err := st.SaveTrial(ctx, &rec); err != nil {
		log.Warn().Err(err).Msg("save trial")
	}
}

// trialRecord converts a solver result into its stored form.
func trialRecord(res solver.TrialResult, cfg solver.Config, mode, date string) store.TrialRecord {
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
