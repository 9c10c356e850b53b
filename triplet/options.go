// SPDX-License-Identifier: MIT
// Package triplet: codec options (functional, order-independent).

package triplet

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/sparmat/sparse"
)

// Options bundles the per-call codec knobs. The zero value is NOT ready for
// use; obtain one via gatherOptions.
type Options struct {
	log        zerolog.Logger  // structured debug logging; Nop by default
	matrixOpts []sparse.Option // storage policies for the decoded matrix
}

// Option mutates Options during Decode/Encode/ReadFile/WriteFile. Options
// apply in call order; later options win on conflict.
type Option func(*Options)

// WithLogger attaches a zerolog logger; the codec emits debug events for
// decoded headers, entry counts, and completion. The default logger is a
// no-op, so logging costs nothing unless requested.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) { o.log = log }
}

// WithMatrixOptions forwards storage policies (for example
// sparse.WithImplicitZeros()) to the Matrix that Decode constructs.
// Successive calls accumulate.
func WithMatrixOptions(opts ...sparse.Option) Option {
	return func(o *Options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

// defaultOptions returns the documented defaults: silent logger, default
// sparse storage policies.
func defaultOptions() Options {
	return Options{log: zerolog.Nop()}
}

// gatherOptions folds opts over the defaults in call order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
