// internal/solver/sweep.go
//
// Sweeps: batches of trials over stride-sampled secrets, plus the
// summary metrics reported for a batch (worst/best/average guess count
// and the share of secrets blowing the guess budget).

package solver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/Rob-Crane/wordle/internal/words"
)

// GuessBudget is the puzzle's standard guess allowance. Secrets that
// need more are reported as regressions, not treated as failures.
const GuessBudget = 6

// Sweep holds the results of a batch of trials, in secret-index order.
type Sweep struct {
	Results []TrialResult
	Elapsed time.Duration
}

// RunSweep runs n trials with secrets sampled at a fixed stride across
// the answer prefix (index i*(numAnswers/n)). n outside [1, numAnswers]
// is clamped to the full prefix, so every distinct secret is visited at
// most once. Trials are independent tasks capped at the configured
// worker width; they share only the feedback cache, and each keeps its
// own scoring sequential so the batch is the parallel dimension.
func RunSweep(ctx context.Context, list words.List, n int, cfg Config) (Sweep, error) {
	if n <= 0 || n > list.NumAnswers {
		n = list.NumAnswers
	}
	if n == 0 {
		return Sweep{}, nil
	}
	stride := list.NumAnswers / n
	start := time.Now()

	inner := cfg
	inner.Workers = 1
	sc := newScorer(list, inner)

	results := make([]TrialResult, n)
	var g errgroup.Group
	g.SetLimit(cfg.workerCount())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := sc.runTrial(ctx, i*stride)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Sweep{}, err
	}
	return Sweep{Results: results, Elapsed: time.Since(start)}, nil
}

// Counts returns the per-trial guess counts, in sweep order.
func (s Sweep) Counts() []int {
	counts := make([]int, len(s.Results))
	for i, r := range s.Results {
		counts[i] = r.Count()
	}
	return counts
}

// Histogram buckets trials by guess count; index = count.
func (s Sweep) Histogram() []int {
	if len(s.Results) == 0 {
		return nil
	}
	hist := make([]int, maxOf(s.Counts())+1)
	for _, r := range s.Results {
		hist[r.Count()]++
	}
	return hist
}

// Worst returns the highest guess count in the sweep, zero when empty.
func (s Sweep) Worst() int {
	if len(s.Results) == 0 {
		return 0
	}
	return maxOf(s.Counts())
}

// Best returns the lowest guess count in the sweep, zero when empty.
func (s Sweep) Best() int {
	if len(s.Results) == 0 {
		return 0
	}
	return minOf(s.Counts())
}

// Average returns the mean guess count, zero when empty.
func (s Sweep) Average() float64 {
	if len(s.Results) == 0 {
		return 0
	}
	return float64(sumOf(s.Counts())) / float64(len(s.Results))
}

// OverBudget returns the trials that needed more than GuessBudget
// guesses.
func (s Sweep) OverBudget() []TrialResult {
	var over []TrialResult
	for _, r := range s.Results {
		if r.Count() > GuessBudget {
			over = append(over, r)
		}
	}
	return over
}

// OverBudgetPercent returns the share of trials over budget, 0..100.
func (s Sweep) OverBudgetPercent() float64 {
	if len(s.Results) == 0 {
		return 0
	}
	return 100 * float64(len(s.OverBudget())) / float64(len(s.Results))
}

type sweepMetric interface {
	line(s Sweep) string
}

type sweepMetricImpl[T constraints.Ordered] struct {
	name string
	eval func(Sweep) T
}

func (m sweepMetricImpl[T]) line(s Sweep) string {
	return fmt.Sprintf("%s: %v", m.name, m.eval(s))
}

var sweepMetrics = []sweepMetric{
	sweepMetricImpl[int]{"worst", Sweep.Worst},
	sweepMetricImpl[int]{"best", Sweep.Best},
	sweepMetricImpl[float64]{"average", Sweep.Average},
	sweepMetricImpl[float64]{"over-budget-pct", Sweep.OverBudgetPercent},
}

// MetricLines renders the summary metrics in a fixed order, with the
// over-budget secrets named when there are any.
func (s Sweep) MetricLines() []string {
	out := make([]string, 0, len(sweepMetrics)+1)
	for _, m := range sweepMetrics {
		out = append(out, m.line(s))
	}
	if over := s.OverBudget(); len(over) > 0 {
		ws := make([]string, len(over))
		for i, r := range over {
			ws[i] = r.Secret.String()
		}
		out = append(out, fmt.Sprintf("over-budget secrets: %s", strings.Join(ws, " ")))
	}
	return out
}

func minOf[T constraints.Ordered](xs []T) T {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func maxOf[T constraints.Ordered](xs []T) T {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func sumOf[T constraints.Integer | constraints.Float](xs []T) T {
	var sum T
	for _, x := range xs {
		sum += x
	}
	return sum
}
