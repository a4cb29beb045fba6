package portfolio

// Frame is the labeled tabular form of a square matrix: one label per
// row/column, assumed identical on both axes. When a Frame is passed to
// New, its labels become the canonical asset ordering for all result
// vectors of that model.
type Frame struct {
	Labels []string
	Data   [][]float64
}

// Series is the labeled form of a vector.
type Series struct {
	Labels []string
	Data   []float64
}
