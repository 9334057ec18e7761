// internal/solver/cache.go
//
// LRU memoization of feedback signatures for (entry, answer) index
// pairs. Feedback derivation is pure, so the cache can only change
// speed, never the scores a round produces.

package solver

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/Rob-Crane/wordle/internal/clues"
)

// feedbackCache is safe for concurrent workers; the underlying LRU
// serializes access internally. A zero feedbackCache is a disabled
// cache and every get misses.
type feedbackCache struct {
	c *lru.Cache
}

func newFeedbackCache(size int) feedbackCache {
	if size <= 0 {
		return feedbackCache{}
	}
	c, err := lru.New(size)
	if err != nil {
		return feedbackCache{}
	}
	return feedbackCache{c: c}
}

// pairKey packs an (entry, answer) index pair into one key. Entry lists
// are far smaller than 1<<32, so the packing cannot collide.
func pairKey(entryIdx, answerIdx int) uint64 {
	return uint64(uint32(entryIdx))<<32 | uint64(uint32(answerIdx))
}

func (fc feedbackCache) get(entryIdx, answerIdx int) (clues.Feedback, bool) {
	if fc.c == nil {
		return clues.Feedback{}, false
	}
	v, ok := fc.c.Get(pairKey(entryIdx, answerIdx))
	if !ok {
		return clues.Feedback{}, false
	}
	return v.(clues.Feedback), true
}

func (fc feedbackCache) put(entryIdx, answerIdx int, fb clues.Feedback) {
	if fc.c == nil {
		return
	}
	fc.c.Add(pairKey(entryIdx, answerIdx), fb)
}
