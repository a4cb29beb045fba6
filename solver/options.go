// SPDX-License-Identifier: MIT

// Package solver: functional configuration for the reference engine.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package solver

import (
	"math"
	"time"

	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEps is the tolerance used for integrality checks and
	// incumbent pruning in branch-and-bound.
	DefaultEps = 1e-6

	// DefaultTimeLimit disables the soft wall-clock budget (0 = none).
	DefaultTimeLimit = time.Duration(0)

	// DefaultMaxIterations bounds the ADMM iteration count per
	// continuous subproblem. Exceeding it yields StatusInterrupted.
	DefaultMaxIterations = 500_000

	// DefaultTolAbs is the absolute residual tolerance of the ADMM core.
	DefaultTolAbs = 1e-8

	// DefaultTolRel is the relative residual tolerance of the ADMM core.
	DefaultTolRel = 1e-8
)

// ADMM internals. Fixed, not user-tunable: the values follow the OSQP
// reference settings and interact with each other.
const (
	admmSigma    = 1e-6 // primal regularization; keeps the KKT matrix SPD
	admmAlpha    = 1.6  // over-relaxation
	admmRho      = 0.1  // step for inequality rows
	admmRhoEqMul = 1e3  // equality rows get rho * admmRhoEqMul
)

const (
	panicEpsInvalid       = "solver: WithEps: eps must be finite, non-negative"
	panicTimeLimitInvalid = "solver: WithTimeLimit: duration must be non-negative"
	panicMaxIterInvalid   = "solver: WithMaxIterations: n must be positive"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option
// and resolve them via gatherOptions.
type Options struct {
	eps       float64
	timeLimit time.Duration
	maxIter   int
	tolAbs    float64
	tolRel    float64
	log       zerolog.Logger
}

// WithEps sets the integrality/pruning tolerance.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity: O(1).
func WithEps(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithTimeLimit sets a soft wall-clock budget for one Solve call.
// The deadline is checked sparsely (per branch-and-bound node and every
// few hundred ADMM iterations); exceeding it yields StatusInterrupted.
// A zero duration disables the budget.
//
// Errors:
//   - Panics with a stable message on negative durations.
//
// Complexity: O(1).
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic(panicTimeLimitInvalid)
	}

	return func(o *Options) { o.timeLimit = d }
}

// WithMaxIterations caps the ADMM iteration count per continuous
// subproblem. Exceeding the cap yields StatusInterrupted.
//
// Errors:
//   - Panics with a stable message when n <= 0.
//
// Complexity: O(1).
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithLogger attaches a zerolog logger for engine tracing: routing
// decisions, relaxation outcomes, incumbents and prunes are emitted at
// Debug level. The default logger discards everything.
//
// Complexity: O(1).
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) { o.log = log }
}

// gatherOptions applies user-provided setters on top of the documented
// defaults (last-writer-wins). The canonical internal entry point; all
// constructors resolve options through it.
//
// Complexity: O(k) for k = len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:       DefaultEps,
		timeLimit: DefaultTimeLimit,
		maxIter:   DefaultMaxIterations,
		tolAbs:    DefaultTolAbs,
		tolRel:    DefaultTolRel,
		log:       zerolog.Nop(),
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
