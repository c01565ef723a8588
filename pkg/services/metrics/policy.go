package metrics

import (
	"hash/fnv"
	"math/rand"
)

// EstimationPolicy supplies the variation multiplier applied to
// base-table yield estimates when a field has no recorded yield data.
// It exists so the fallback stays a pure function of its inputs:
// callers inject a fixed policy in tests and a seeded one in
// production instead of reaching for a global RNG.
type EstimationPolicy interface {
	// Variation returns a multiplier for the given field, expected to
	// stay within [0.8, 1.2].
	Variation(fieldID string) float64
}

// FixedPolicy always returns its own value. FixedPolicy(1) disables
// variation entirely.
type FixedPolicy float64

func (p FixedPolicy) Variation(string) float64 { return float64(p) }

type seededPolicy struct {
	seed int64
}

// NewSeededPolicy returns a policy whose variation is deterministic
// per (seed, fieldID) pair, spread across ±20%. Two calls for the same
// field always agree, so repeated report builds are idempotent.
func NewSeededPolicy(seed int64) EstimationPolicy {
	return &seededPolicy{seed: seed}
}

func (p *seededPolicy) Variation(fieldID string) float64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fieldID))
	rng := rand.New(rand.NewSource(p.seed ^ int64(h.Sum64())))
	return 0.8 + rng.Float64()*0.4
}
