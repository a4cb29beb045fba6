// Package portfolio - model construction, input normalization and
// result decoding.
package portfolio

import (
	"fmt"
)

// resultShape fixes how solution vectors are re-expressed, set once at
// construction and applied uniformly to every solve on the model.
type resultShape int

const (
	shapePlain resultShape = iota
	shapeLabeled
)

// Model holds the canonical covariance matrix and return vector for a
// universe of assets. It is immutable after construction; every solve
// call builds its own fresh formulation, so a Model may be solved
// repeatedly (and from multiple goroutines) without coordination.
type Model struct {
	n      int
	sigma  [][]float64
	mu     []float64
	labels []string
	shape  resultShape
}

// New builds a Model from a covariance matrix and an expected-return
// vector, each in either plain or labeled form:
//
//   - sigma: [][]float64, or Frame (labels on both axes, assumed equal)
//   - mu:    []float64, or Series
//
// If either argument is labeled, results are labeled too, using sigma's
// label ordering when available (mu's otherwise).
//
// Errors:
//   - ErrBadInput when an argument is in neither recognized form.
//   - ErrDimensionMismatch when sigma is not square, mu's length does
//     not match, or a labeled input carries the wrong label count.
func New(sigma, mu any) (*Model, error) {
	m := &Model{shape: shapePlain}

	switch s := sigma.(type) {
	case [][]float64:
		m.sigma = copyMatrix(s)
	case Frame:
		m.sigma = copyMatrix(s.Data)
		m.labels = append([]string(nil), s.Labels...)
		m.shape = shapeLabeled
	default:
		return nil, fmt.Errorf("%w: Sigma is %T", ErrBadInput, sigma)
	}

	switch v := mu.(type) {
	case []float64:
		m.mu = append([]float64(nil), v...)
	case Series:
		m.mu = append([]float64(nil), v.Data...)
		if m.shape == shapePlain {
			m.labels = append([]string(nil), v.Labels...)
			m.shape = shapeLabeled
		}
	default:
		return nil, fmt.Errorf("%w: mu is %T", ErrBadInput, mu)
	}

	m.n = len(m.sigma)
	for i, row := range m.sigma {
		if len(row) != m.n {
			return nil, fmt.Errorf("%w: Sigma row %d has length %d, want %d", ErrDimensionMismatch, i, len(row), m.n)
		}
	}
	if len(m.mu) != m.n {
		return nil, fmt.Errorf("%w: mu has length %d, Sigma is %d×%d", ErrDimensionMismatch, len(m.mu), m.n, m.n)
	}
	if m.shape == shapeLabeled && len(m.labels) != m.n {
		return nil, fmt.Errorf("%w: %d labels for %d assets", ErrDimensionMismatch, len(m.labels), m.n)
	}

	return m, nil
}

// NumAssets reports the universe size n.
func (m *Model) NumAssets() int { return m.n }

// decode re-expresses a raw solution vector in the caller's shape.
// Pure; called once per successful solve.
func (m *Model) decode(x []float64) Weights {
	w := Weights{Values: append([]float64(nil), x...)}
	if m.shape == shapeLabeled {
		w.Labels = append([]string(nil), m.labels...)
	}

	return w
}

// copyMatrix deep-copies a row-major matrix so the model never aliases
// caller storage.
func copyMatrix(src [][]float64) [][]float64 {
	out := make([][]float64, len(src))
	for i, row := range src {
		out[i] = append([]float64(nil), row...)
	}

	return out
}
