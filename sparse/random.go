// SPDX-License-Identifier: MIT
// Package sparse: seeded random matrix generation.
//
// Random exists for fixtures and benchmarks: property tests compare kernel
// results against dense re-computation on reproducible inputs, and benches
// need matrices of controlled density without hand-written literals.

package sparse

import (
	"math"
	"math/rand"
)

// Probability domain accepted by Random.
const (
	probMin = 0.0
	probMax = 1.0
)

// Random returns a rows×cols Matrix where each cell independently holds a
// value with probability p (one Bernoulli trial per cell). Stored values are
// drawn uniformly from [-1, 1); a sampled exact zero stays implicit.
//
// Behavior highlights:
//   - Trials run in deterministic i → j order: the same seeded source
//     reproduces the same matrix bit-for-bit.
//   - p == 0 performs no trials and needs no source.
//
// Inputs:
//   - rows, cols: shape, validated as in New.
//   - p: per-cell fill probability in [0, 1].
//   - rng: random source; required whenever p > 0.
//
// Errors:
//   - ErrInvalidDimensions, ErrInvalidProbability, ErrNeedRandSource.
//
// Complexity: O(rows·cols) trials, O(nnz) space.
func Random(rows, cols int, p float64, rng *rand.Rand, opts ...Option) (*Matrix, error) {
	res, err := New(rows, cols, opts...)
	if err != nil {
		return nil, sparseErrorf("Random", err)
	}
	if math.IsNaN(p) || p < probMin || p > probMax {
		return nil, sparseErrorf("Random", ErrInvalidProbability)
	}
	if p == probMin {
		return res, nil // no trials, no source needed
	}
	if rng == nil {
		return nil, sparseErrorf("Random", ErrNeedRandSource)
	}

	var (
		i, j int     // trial coordinates
		v    float64 // sampled value
	)
	for i = 0; i < rows; i++ { // fixed row order
		for j = 0; j < cols; j++ { // fixed column order
			if rng.Float64() >= p {
				continue // cell stays implicit
			}
			v = rng.Float64()*2 - 1 // uniform in [-1, 1)
			if v == 0 {
				continue // keep randomly filled cells non-zero
			}
			res.store(i, j, v)
		}
	}

	return res, nil
}
