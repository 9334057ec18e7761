// sweep.go
//
// "wordle sweep" runs trials against secrets sampled at a fixed stride
// across the answer list (default 50 of them), then prints a guess
// histogram and summary metrics. Per-trial detail lands at debug level.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/Rob-Crane/wordle/internal/solver"
	"github.com/Rob-Crane/wordle/internal/store"
)

func init() {
	funcs["sweep"] = subcommand{
		"[-n/--trials=50] [--all]",
		"Runs trials across the answer list and prints summary statistics",
		func(a []string) int {
			o := struct {
				Trials int  `long:"trials" short:"n" default:"50"`
				All    bool `long:"all"`
			}{}
			p := flags.NewParser(&o, 0)
			if _, err := p.ParseArgs(a); err != nil {
				die(fmt.Sprintf("parse: %v", err))
			}

			list := mustList()
			cfg := solverConfig()

			n := o.Trials
			if o.All {
				n = 0 // RunSweep clamps to the full answer prefix
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			res, err := solver.RunSweep(ctx, list, n, cfg)
			if err != nil {
				die(err.Error())
			}

			for _, tr := range res.Results {
				log.Debug().
					Int("secret", tr.SecretIndex).
					Str("word", tr.Secret.String()).
					Int("guesses", tr.Count()).
					Msg("trial")
			}

			fmt.Printf("trials: %d  elapsed: %s\n", len(res.Results), res.Elapsed.Round(time.Millisecond))
			hist := res.Histogram()
			for g := 1; g < len(hist); g++ {
				if hist[g] == 0 {
					continue
				}
				fmt.Printf("%d guesses: %d\n", g, hist[g])
			}
			for _, line := range res.MetricLines() {
				fmt.Println(line)
			}

			if os.Getenv("DB_PATH") != "" {
				st := openStore()
				defer st.Close()
				for i := range res.Results {
					rec := trialRecord(res.Results[i], cfg, store.ModeSweep, "")
					if err := st.SaveTrial(ctx, &rec); err != nil {
						log.Warn().Err(err).Msg("save trial")
						break
					}
				}
			}
			return 0
		},
	}
}
