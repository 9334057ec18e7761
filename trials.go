// trials.go
//
// "wordle trials" lists recorded trials, newest first. Only useful with
// DB_PATH set, since the memory store dies with the process.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
)

func init() {
	funcs["trials"] = subcommand{
		"[-l/--limit=20]",
		"Lists recorded trials, newest first",
		func(a []string) int {
			o := struct {
				Limit int `long:"limit" short:"l" default:"20"`
			}{}
			p := flags.NewParser(&o, 0)
			if _, err := p.ParseArgs(a); err != nil {
				die(fmt.Sprintf("parse: %v", err))
			}

			if os.Getenv("DB_PATH") == "" {
				die("DB_PATH not set; no recorded trials to list")
			}
			st := openStore()
			defer st.Close()

			trials, err := st.RecentTrials(context.Background(), o.Limit)
			if err != nil {
				die(err.Error())
			}
			if len(trials) == 0 {
				fmt.Println("no trials recorded")
				return 0
			}
			for _, tr := range trials {
				date := tr.Date
				if date == "" {
					date = "-"
				}
				fmt.Printf("%s  %-6s  %-10s  %s  %d  %s\n",
					tr.CreatedAt.Format(time.RFC3339), tr.Mode, date,
					tr.Secret, tr.Guesses, strings.Join(tr.Sequence, " "))
			}
			return 0
		},
	}
}
