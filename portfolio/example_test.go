package portfolio_test

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/portfolio"
)

// ExampleModel_MinimizeRisk builds a two-asset model and asks for the
// least-risky fully-invested portfolio earning at least 10%.
func ExampleModel_MinimizeRisk() {
	sigma := [][]float64{{0.04, 0}, {0, 0.09}}
	mu := []float64{0.08, 0.12}

	m, err := portfolio.New(sigma, mu)
	if err != nil {
		fmt.Println("model:", err)
		return
	}

	w, err := m.MinimizeRisk(0.10)
	if err != nil {
		fmt.Println("solve:", err)
		return
	}
	fmt.Printf("weights: [%.2f %.2f]\n", w.Values[0], w.Values[1])
	// Output:
	// weights: [0.50 0.50]
}

// ExampleModel_EfficientPortfolio allows limited shorting; with no risk
// aversion the optimizer shorts the weaker asset to the cap.
func ExampleModel_EfficientPortfolio() {
	sigma := portfolio.Frame{
		Labels: []string{"STABLE", "GROWTH"},
		Data:   [][]float64{{0.04, 0}, {0, 0.09}},
	}
	mu := portfolio.Series{
		Labels: []string{"STABLE", "GROWTH"},
		Data:   []float64{0.08, 0.12},
	}

	m, err := portfolio.New(sigma, mu)
	if err != nil {
		fmt.Println("model:", err)
		return
	}

	w, err := m.EfficientPortfolio(0, portfolio.WithMaxTotalShort(0.3))
	if err != nil {
		fmt.Println("solve:", err)
		return
	}
	for i, label := range w.Labels {
		fmt.Printf("%s: %.2f\n", label, w.Values[i])
	}
	// Output:
	// STABLE: -0.30
	// GROWTH: 1.30
}
