// main.go
//
// wordle: a greedy Wordle strategy engine.
//
// Subcommands (see -h):
//   solve   run one trial against a chosen secret
//   sweep   run trials across the answer list and report statistics
//   rank    score every entry word as an opening guess
//   trials  list recorded trials
//   serve   start the HTTP API
//   hashpw  hash an operator password for ADMIN_PASSWORD_HASH
//
// Configuration comes from the environment (a .env file is honored):
//   LOG_LEVEL            zerolog level, default "info"
//   WORDS_ANSWERS_FILE   answer list path (embedded defaults otherwise)
//   WORDS_ALLOWED_FILE   extra guess list path
//   OPENER_WORD          opening guess, default "roate"
//   SOLVER_WORKERS       worker count, default GOMAXPROCS
//   SOLVER_CACHE_SIZE    feedback cache entries, 0 disables
//   DB_PATH              SQLite file; unset keeps results in memory
//
// Results go to stdout; logs go to stderr.

package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Rob-Crane/wordle/internal/solver"
	"github.com/Rob-Crane/wordle/internal/store"
	"github.com/Rob-Crane/wordle/internal/words"
)

const (
	exitError           = 1
	exitSubcommandUsage = 2
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if len(os.Args) == 1 {
		die("specify subcommand or -h")
	}
	if os.Args[1] == "-h" {
		usages()
	}
	if f, ok := funcs[os.Args[1]]; ok {
		exit := f.f(os.Args[2:])
		if exit == exitSubcommandUsage {
			printSubcommandUsage(os.Args[1], f)
		}
		os.Exit(exit)
	}
	die("unknown subcommand")
}

func die(m string) {
	fmt.Fprintln(os.Stderr, m)
	os.Exit(1)
}

type subcommand struct {
	// usage is the command-specific CLI synopsis shown after "wordle <name>".
	usage string
	// summary is a short one-line description shown in "wordle -h" listings.
	summary string
	f       func([]string) int
}

func printSubcommandUsage(name string, c subcommand) {
	fmt.Fprintf(os.Stderr, "usage: wordle %s %s\n", name, c.usage)
}

func usages() {
	fmt.Println(`wordle commands:`)
	keys := make([]string, len(funcs))
	i := 0
	for n := range funcs {
		keys[i] = n
		i++
	}
	sort.Strings(keys)
	for _, n := range keys {
		c := funcs[n]
		fmt.Printf("%s %s\n  %s\n", n, c.usage, c.summary)
	}
	os.Exit(0)
}

// funcs maps subcommand names to implementations; each command file
// registers itself in init.
var funcs = map[string]subcommand{}

// ----------------------------- shared setup --------------------------------

// mustList loads the entry list from the environment, dying on failure.
func mustList() words.List {
	list, skipped, err := words.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	if skipped > 0 {
		log.Warn().Int("lines", skipped).Msg("skipped malformed word list lines")
	}
	log.Debug().Int("answers", list.NumAnswers).Int("entries", list.Len()).Msg("word lists loaded")
	return list
}

// solverConfig builds the solver configuration from the environment.
func solverConfig() solver.Config {
	cfg := solver.DefaultConfig()
	if v := os.Getenv("OPENER_WORD"); v != "" {
		w, err := words.Parse(v)
		if err != nil {
			log.Fatal().Err(err).Str("word", v).Msg("invalid OPENER_WORD")
		}
		cfg.Opener = w
	}
	if n := envInt("SOLVER_WORKERS", 0); n > 0 {
		cfg.Workers = n
	}
	if n := envInt("SOLVER_CACHE_SIZE", -1); n >= 0 {
		cfg.CacheSize = n
	}
	return cfg
}

// openStore opens the SQLite store at DB_PATH, or a memory store when
// DB_PATH is unset.
func openStore() store.Store {
	dsn := os.Getenv("DB_PATH")
	if dsn == "" {
		log.Debug().Msg("DB_PATH unset; results are not persisted across runs")
		return store.NewMemoryStore()
	}
	st, err := store.OpenSQLite(dsn)
	if err != nil {
		log.Fatal().Err(err).Str("path", dsn).Msg("failed to open store")
	}
	return st
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" { return v }
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
