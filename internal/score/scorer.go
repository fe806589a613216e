// Package score implements the deterministic confidence scorer: a
// reproducible pseudo-random draw from a methodology's confidence range,
// seeded by initiative identity.
package score

import (
	"crypto/md5"
	"encoding/binary"
	"math/rand"

	"github.com/openimpact/impacteval/internal/model"
)

// StableSeed derives a 32-bit seed from a string, identical across
// processes and platforms. MD5 is used for stability only, nothing here
// is security-sensitive.
func StableSeed(s string) uint32 {
	sum := md5.Sum([]byte(s))
	// Digest interpreted as a big-endian integer, reduced mod 2^32:
	// the low 32 bits are the last four bytes.
	return binary.BigEndian.Uint32(sum[12:16])
}

// Confidence draws one uniform value from confidenceRange, seeded by
// initiativeID. Identical inputs yield bit-identical output, including
// across process restarts.
func Confidence(initiativeID string, confidenceRange model.ConfidenceRange) model.ScoreResult {
	rng := rand.New(rand.NewSource(int64(StableSeed(initiativeID))))
	lo, hi := confidenceRange.Low(), confidenceRange.High()
	confidence := lo + rng.Float64()*(hi-lo)

	return model.ScoreResult{
		InitiativeID:    initiativeID,
		Confidence:      confidence,
		ConfidenceRange: confidenceRange,
	}
}
