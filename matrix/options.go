// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the elimination solver and
// the numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set and NewFromRows.
	DefaultValidateNaNInf = true

	// DefaultPivotTolerance is the relative threshold below which a pivot is
	// treated as zero: |pivot| <= tol * max|row entry| ⇒ ErrSingular.
	DefaultPivotTolerance = 1e-12
)

// Pivoting selects how Solve/Inverse choose the pivot row at each step.
type Pivoting int

const (
	// PartialPivoting swaps in the row with the largest |a[p][i]| (p ≥ i).
	PartialPivoting Pivoting = iota

	// NoPivoting uses the diagonal entry as-is. Zero pivots still fail with ErrSingular.
	NoPivoting
)

// DefaultPivoting is the strategy used when no option overrides it.
const DefaultPivoting = PartialPivoting

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
	panicPivotingInvalid  = "matrix: WithPivoting: unknown pivoting strategy"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	pivoting Pivoting // DefaultPivoting
	tol      float64  // >= 0; DefaultPivotTolerance
}

// WithPivoting selects the pivoting strategy.
// Panics on values outside {PartialPivoting, NoPivoting}.
func WithPivoting(p Pivoting) Option {
	if p != PartialPivoting && p != NoPivoting {
		panic(panicPivotingInvalid)
	}

	return func(o *Options) { o.pivoting = p }
}

// WithNoPivoting is shorthand for WithPivoting(NoPivoting): classic Gaussian
// elimination on the diagonal as given.
func WithNoPivoting() Option { return WithPivoting(NoPivoting) }

// WithPivotTolerance sets the relative near-zero pivot threshold.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Notes:
//   - tol = 0 only rejects exact zero pivots.
//   - The threshold is scaled per row by the largest absolute entry of that
//     input row, so it is invariant under scaling any row of A and b.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		pivoting: DefaultPivoting,
		tol:      DefaultPivotTolerance,
	}
}

// gatherOptions applies opts over defaults; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
