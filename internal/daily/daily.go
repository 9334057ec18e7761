// internal/daily/daily.go
//
// Deterministic date -> answer-index mapping. A date and salt always
// select the same secret, so daily trials reproduce across processes
// with no shared state.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns the canonical YYYY-MM-DD key for t in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex maps a date to an index in [0, answersLen) with
// HMAC-SHA256(salt, DateKey). Rotating the salt reshuffles the whole
// schedule. answersLen <= 0 yields 0.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}
