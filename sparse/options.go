// SPDX-License-Identifier: MIT
// Package sparse: construction options (functional, order-independent).
//
// Options control two per-matrix storage policies:
//   - explicit zeros: whether Set(i, j, 0) stores the entry or removes it;
//   - numeric policy: whether Set rejects NaN and ±Inf values.
//
// Defaults favor the most faithful observable behavior: written zeros are
// stored verbatim (they survive encode/decode round-trips) and non-finite
// values are rejected at the door.

package sparse

// Default* constants document the zero-argument behavior of New.
const (
	// DefaultStoreExplicitZeros keeps Set(i, j, 0) as a stored entry, so NNZ
	// counts what was written, not what is mathematically non-zero.
	DefaultStoreExplicitZeros = true

	// DefaultValidateNaNInf rejects NaN and ±Inf on Set with ErrNaNInf.
	DefaultValidateNaNInf = true
)

// Options bundles the storage policies applied at construction time.
// The zero value is NOT ready for use; obtain one via gatherOptions.
type Options struct {
	storeExplicitZeros bool // Set(i, j, 0) stores (true) or removes (false)
	validateNaNInf     bool // Set rejects non-finite values when true
}

// Option mutates Options during New. Options apply in call order; later
// options win on conflict.
type Option func(*Options)

// WithImplicitZeros makes Set(i, j, 0) remove the entry instead of storing
// it, keeping NNZ equal to the count of mathematically non-zero elements.
func WithImplicitZeros() Option {
	return func(o *Options) { o.storeExplicitZeros = false }
}

// WithExplicitZeros restores the default: Set(i, j, 0) stores the entry.
func WithExplicitZeros() Option {
	return func(o *Options) { o.storeExplicitZeros = true }
}

// WithNoValidateNaNInf disables the finite-value check on Set, admitting
// NaN and ±Inf payloads. Arithmetic then follows IEEE-754 semantics.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithValidateNaNInf restores the default rejection of NaN and ±Inf on Set.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// defaultOptions returns the documented default policy set.
func defaultOptions() Options {
	return Options{
		storeExplicitZeros: DefaultStoreExplicitZeros,
		validateNaNInf:     DefaultValidateNaNInf,
	}
}

// gatherOptions folds opts over the defaults in call order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
