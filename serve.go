// serve.go
//
// "wordle serve" starts the HTTP API. The store backend follows
// DB_PATH (SQLite when set, in-memory otherwise), so a bare invocation
// serves but forgets on restart.

package main

import (
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/Rob-Crane/wordle/internal/httpserver"
)

func init() {
	funcs["serve"] = subcommand{
		"[-p/--port=5175]",
		"Starts the HTTP API",
		func(a []string) int {
			o := struct {
				Port string `long:"port" short:"p"`
			}{}
			p := flags.NewParser(&o, 0)
			if _, err := p.ParseArgs(a); err != nil {
				die(fmt.Sprintf("parse: %v", err))
			}

			list := mustList()
			cfg := solverConfig()
			st := openStore()
			defer st.Close()

			srv := httpserver.New(st, list, cfg)
			port := o.Port
			if port == "" {
				port = getEnv("PORT", "5175")
			}
			log.Info().
				Str("port", port).
				Int("answers", list.NumAnswers).
				Int("entries", list.Len()).
				Msg("starting wordle server")
			if err := srv.Start(":" + port); err != nil {
				log.Fatal().Err(err).Msg("server exited")
			}
			return 0
		},
	}
}
