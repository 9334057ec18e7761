// internal/words/load.go
//
// Word list loading for the drivers.
//
// Word Lists:
//   - "answers": legal secrets (exactly 5 lowercase letters, one per line).
//   - "allowed": additional words accepted as guesses but never as answers.
//
// Loading behavior (Load):
//   1. If WORDS_ANSWERS_FILE and WORDS_ALLOWED_FILE are both set,
//      load answers from the first and extra guesses from the second.
//   2. If only one of the two is set, load that file and use it as the
//      answer list with no extra guesses.
//   3. If neither is set, fall back to the small embedded defaults from
//      default_small_answers.txt / default_small_allowed.txt.
//
// Lines are trimmed and lowercased; blank lines and #-comments are
// ignored. Lines that still fail to decode are skipped and counted so
// callers can surface them instead of silently narrowing the list; a
// scanner error aborts the load entirely rather than returning a short
// list. Extra guesses that duplicate an answer (or each other) are
// dropped so the answer prefix stays the only home of each answer word.

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Small embedded defaults so every command runs with no files configured.

//go:embed default_small_answers.txt
var embeddedAnswers string

//go:embed default_small_allowed.txt
var embeddedAllowed string

// Env var names for externally supplied lists.
const (
	EnvAnswersFile = "WORDS_ANSWERS_FILE"
	EnvAllowedFile = "WORDS_ALLOWED_FILE"
)

// Load builds the entry list from the environment, falling back to the
// embedded defaults. The second return value counts skipped malformed
// lines across all sources.
func Load() (List, int, error) {
	return LoadFiles(os.Getenv(EnvAnswersFile), os.Getenv(EnvAllowedFile))
}

// LoadFiles builds the entry list from explicit paths. Either path may be
// empty; with both empty the embedded defaults are used.
func LoadFiles(answersPath, allowedPath string) (List, int, error) {
	var (
		answers, extras []Word
		skipped         int
	)

	switch {
	case answersPath != "" && allowedPath != "":
		var err error
		var n int
		answers, n, err = readWordFile(answersPath)
		if err != nil {
			return List{}, 0, err
		}
		skipped += n
		extras, n, err = readWordFile(allowedPath)
		if err != nil {
			return List{}, 0, err
		}
		skipped += n

	case answersPath != "":
		var err error
		answers, skipped, err = readWordFile(answersPath)
		if err != nil {
			return List{}, 0, err
		}

	case allowedPath != "":
		var err error
		answers, skipped, err = readWordFile(allowedPath)
		if err != nil {
			return List{}, 0, err
		}

	default:
		var err error
		var n int
		answers, n, err = parseLines(strings.NewReader(embeddedAnswers))
		if err != nil {
			return List{}, 0, err
		}
		skipped += n
		extras, n, err = parseLines(strings.NewReader(embeddedAllowed))
		if err != nil {
			return List{}, 0, err
		}
		skipped += n
	}

	if len(answers) == 0 {
		return List{}, skipped, errors.New("words: answers list is empty")
	}
	return NewList(answers, dedupeExtras(answers, extras)), skipped, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]Word, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	out, skipped, err := parseLines(f)
	if err != nil {
		return nil, 0, fmt.Errorf("words: read %s: %w", path, err)
	}
	return out, skipped, nil
}

// parseLines decodes words from r, returning the decoded words and the
// number of non-blank, non-comment lines that failed to decode. A
// scanner failure discards the partial result.
func parseLines(r io.Reader) ([]Word, int, error) {
	var out []Word
	skipped := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(strings.ToLower(sc.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w, err := Parse(line)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, 0, err
	}
	return out, skipped, nil
}

// dedupeExtras drops extra guesses already present among the answers or
// earlier extras, preserving order.
func dedupeExtras(answers, extras []Word) []Word {
	if len(extras) == 0 {
		return nil
	}
	seen := make(map[Word]struct{}, len(answers)+len(extras))
	for _, w := range answers {
		seen[w] = struct{}{}
	}
	out := make([]Word, 0, len(extras))
	for _, w := range extras {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
