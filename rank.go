// rank.go
//
// "wordle rank" scores every entry word as an opening guess: for each
// candidate, the sum over all secrets of how many answers its feedback
// would leave alive. Lower is better. The full run is quadratic in the
// list sizes and takes a long time on real lists; progress is visible
// at debug level.

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
	funcs["rank"] = subcommand{
		"[-t/--top=50]",
		"Scores every entry word as an opening guess and prints the best ones",
		func(a []string) int {
			o := struct {
				Top int `long:"top" short:"t"`
			}{}
			p := flags.NewParser(&o, 0)
			if _, err := p.ParseArgs(a); err != nil {
				die(fmt.Sprintf("parse: %v", err))
			}
			if o.Top <= 0 {
				o.Top = solver.DefaultRankTop
			}

			list := mustList()
			cfg := solverConfig()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			start := time.Now()
			ranked, err := solver.RankOpeners(ctx, list, cfg)
			if err != nil {
				die(err.Error())
			}
			elapsed := time.Since(start)

			top := o.Top
			if top > len(ranked) {
				top = len(ranked)
			}
			for i := 0; i < top; i++ {
				fmt.Printf("%3d  %s  %d\n", i, ranked[i].Word, ranked[i].Score)
			}
			fmt.Printf("ranked %d entries against %d answers (%s)\n",
				list.Len(), list.NumAnswers, elapsed.Round(time.Millisecond))

			if os.Getenv("DB_PATH") != "" {
				st := openStore()
				defer st.Close()
				rec := store.Ranking{
					Answers:    list.NumAnswers,
					Entries:    list.Len(),
					DurationMs: elapsed.Milliseconds(),
				}
				for i := 0; i < top; i++ {
					rec.Top = append(rec.Top, store.RankedGuess{
						Rank: i, Word: ranked[i].Word.String(), Score: ranked[i].Score,
					})
				}
				if err := st.SaveRanking(ctx, &rec); err != nil {
					log.Warn().Err(err).Msg("save ranking")
				}
			}
			return 0
		},
	}
}
