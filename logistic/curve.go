package logistic

import (
	"iter"
	"math"
)

// Curve evaluates a fitted logistic function on the original response scale:
//
//	y(x) = Ymax / (1 + exp(-(A*x + B)))
//
// A Curve is a pure value; evaluation has no side effects and needs no
// mutable state. With Ymax = 1 the curve yields response probabilities.
type Curve struct {
	// A is the slope coefficient.
	A float64
	// B is the intercept coefficient.
	B float64
	// Ymax is the scaling constant the responses were scaled by.
	Ymax float64
}

// At evaluates the curve at x.
func (c Curve) At(x float64) float64 {
	return c.Ymax / (1 + math.Exp(-(c.A*x + c.B)))
}

// Sample evaluates the curve at each of the given predictor values.
func (c Curve) Sample(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = c.At(x)
	}

	return out
}

// Points returns a lazy iterator over n evenly spaced (x, y) pairs from
// from to to inclusive, for plotting a continuous fitted curve. n values
// below 2 are treated as 2.
func (c Curve) Points(from, to float64, n int) iter.Seq2[float64, float64] {
	if n < 2 {
		n = 2
	}
	step := (to - from) / float64(n-1)

	return func(yield func(float64, float64) bool) {
		for i := range n {
			x := from + float64(i)*step
			if !yield(x, c.At(x)) {
				return
			}
		}
	}
}
