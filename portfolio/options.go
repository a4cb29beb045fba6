// SPDX-License-Identifier: MIT

// Package portfolio: functional configuration for EfficientPortfolio.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Presence is tracked explicitly: an absent parameter omits its
// constraint (and its budget term) entirely, which is not the same as
// supplying zero - e.g. WithFeesBuy(0) adds a zero-fee term to the
// budget row, while omitting the option leaves the row without one.
package portfolio

import "math"

// DefaultMaxTotalShort is the leverage cap S when WithMaxTotalShort is
// not supplied: no shorting. The big-M bound x_short <= S*b_short then
// collapses every short position to zero, so long-only portfolios need
// no separate code path.
const DefaultMaxTotalShort = 0.0

const (
	panicCountInvalid    = "portfolio: trade/position limits must be non-negative"
	panicFractionInvalid = "portfolio: fees, costs, minimum sizes and the shorting cap must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly
// (idempotent); constructors panic only on nonsensical values
// (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Fields are unexported; EfficientPortfolio accepts ...Option
// and resolves them via gatherOptions.
type Options struct {
	maxTotalShort float64
	holdings      []float64

	maxTrades    int
	hasTrades    bool
	maxPositions int
	hasPositions bool

	feesBuy, feesSell   float64
	hasFeesBuy          bool
	hasFeesSell         bool
	costsBuy, costsSell float64
	hasCostsBuy         bool
	hasCostsSell        bool

	minLong, minShort float64
	hasMinLong        bool
	hasMinShort       bool
}

// nonNegFraction guards the float-valued options.
func nonNegFraction(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		panic(panicFractionInvalid)
	}
}

// WithMaxTrades caps the total number of trades (buys plus sells) in
// the rebalance: sum(b_buy) + sum(b_sell) <= k.
func WithMaxTrades(k int) Option {
	if k < 0 {
		panic(panicCountInvalid)
	}

	return func(o *Options) { o.maxTrades, o.hasTrades = k, true }
}

// WithMaxPositions caps the number of open positions (long plus short):
// sum(b_long) + sum(b_short) <= k.
func WithMaxPositions(k int) Option {
	if k < 0 {
		panic(panicCountInvalid)
	}

	return func(o *Options) { o.maxPositions, o.hasPositions = k, true }
}

// WithFeesBuy adds a fixed-charge fee per buy transaction, relative to
// total portfolio value; charged once per trade regardless of size.
func WithFeesBuy(f float64) Option {
	nonNegFraction(f)

	return func(o *Options) { o.feesBuy, o.hasFeesBuy = f, true }
}

// WithFeesSell adds a fixed-charge fee per sell transaction, relative
// to total portfolio value.
func WithFeesSell(f float64) Option {
	nonNegFraction(f)

	return func(o *Options) { o.feesSell, o.hasFeesSell = f, true }
}

// WithCostsBuy adds a variable transaction cost per unit bought,
// relative to trade value.
func WithCostsBuy(c float64) Option {
	nonNegFraction(c)

	return func(o *Options) { o.costsBuy, o.hasCostsBuy = c, true }
}

// WithCostsSell adds a variable transaction cost per unit sold,
// relative to trade value.
func WithCostsSell(c float64) Option {
	nonNegFraction(c)

	return func(o *Options) { o.costsSell, o.hasCostsSell = c, true }
}

// WithMinLong sets a lower bound on every executed buy: if the buy
// indicator fires for an asset, the bought volume is at least m. Keeps
// the engine from trading negligible amounts purely to shave cost
// elsewhere.
func WithMinLong(m float64) Option {
	nonNegFraction(m)

	return func(o *Options) { o.minLong, o.hasMinLong = m, true }
}

// WithMinShort sets the symmetric lower bound on every executed sell.
func WithMinShort(m float64) Option {
	nonNegFraction(m)

	return func(o *Options) { o.minShort, o.hasMinShort = m, true }
}

// WithMaxTotalShort sets the leverage cap S: sum(x_short) <= S, and S
// enters the big-M links tying positions and trades to their
// indicators. Zero (the default) forbids shorting outright.
func WithMaxTotalShort(s float64) Option {
	nonNegFraction(s)

	return func(o *Options) { o.maxTotalShort = s }
}

// WithInitialHoldings sets the pre-rebalance holdings vector h
// (default all-zero). Its length must equal the universe size; that is
// verified at solve time, not here. sum(h) <= 1 is a caller-side
// precondition, not validated.
func WithInitialHoldings(h []float64) Option {
	return func(o *Options) { o.holdings = append([]float64(nil), h...) }
}

// WithInitialHoldingsSeries is the labeled-form variant of
// WithInitialHoldings; the labels are informational and the values are
// taken in the canonical ordering.
func WithInitialHoldingsSeries(h Series) Option {
	return func(o *Options) { o.holdings = append([]float64(nil), h.Data...) }
}

// gatherOptions applies user setters on top of the documented defaults
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{maxTotalShort: DefaultMaxTotalShort}
	for _, set := range user {
		set(&o)
	}

	return o
}
