package series

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrTooFewPoints indicates the series has fewer than two observations.
	ErrTooFewPoints = errors.New("series: need at least 2 observations")
	// ErrLengthMismatch indicates predictor and response slices differ in length.
	ErrLengthMismatch = errors.New("series: predictor and response length mismatch")
	// ErrNonIncreasingX indicates predictor values are not strictly increasing.
	ErrNonIncreasingX = errors.New("series: predictor values must be strictly increasing")
	// ErrNegativeY indicates a negative response value.
	ErrNegativeY = errors.New("series: response values must be non-negative")
)

// Series is an immutable ordered set of (x, y) observations where x is a
// numeric predictor (cycle index, day count) and y is a non-negative response
// (fluorescence, cumulative case count).
//
// Invariants, enforced at construction:
//   - at least 2 observations
//   - x values strictly increasing
//   - y values >= 0
type Series struct {
	x []float64
	y []float64
}

// New validates the observation pairs and returns an immutable Series.
// The input slices are copied; callers may reuse them afterwards.
func New(x, y []float64) (*Series, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(x))
	}

	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return nil, fmt.Errorf("%w: x[%d]=%v, x[%d]=%v", ErrNonIncreasingX, i-1, x[i-1], i, x[i])
		}
	}
	for i, v := range y {
		if v < 0 {
			return nil, fmt.Errorf("%w: y[%d]=%v", ErrNegativeY, i, v)
		}
	}

	s := &Series{
		x: make([]float64, len(x)),
		y: make([]float64, len(y)),
	}
	copy(s.x, x)
	copy(s.y, y)

	return s, nil
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.x)
}

// X returns a copy of the predictor values.
func (s *Series) X() []float64 {
	out := make([]float64, len(s.x))
	copy(out, s.x)

	return out
}

// Y returns a copy of the response values.
func (s *Series) Y() []float64 {
	out := make([]float64, len(s.y))
	copy(out, s.y)

	return out
}

// XAt returns the predictor value at index i.
func (s *Series) XAt(i int) float64 {
	return s.x[i]
}

// YAt returns the response value at index i.
func (s *Series) YAt(i int) float64 {
	return s.y[i]
}

// MinX returns the smallest predictor value.
func (s *Series) MinX() float64 {
	return s.x[0]
}

// MaxX returns the largest predictor value.
func (s *Series) MaxX() float64 {
	return s.x[len(s.x)-1]
}

// MaxY returns the largest response value.
func (s *Series) MaxY() float64 {
	maxY := s.y[0]
	for _, v := range s.y[1:] {
		if v > maxY {
			maxY = v
		}
	}

	return maxY
}

// Points returns an iterator over (x, y) pairs in predictor order.
func (s *Series) Points() iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		for i := range s.x {
			if !yield(s.x[i], s.y[i]) {
				return
			}
		}
	}
}
