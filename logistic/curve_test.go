package logistic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurve_At(t *testing.T) {
	c := Curve{A: 0.5, B: -6, Ymax: 100}

	// At the inflection point x = -b/a the curve passes through Ymax/2.
	require.InDelta(t, 50.0, c.At(12), 1e-12)

	// Far tails approach 0 and Ymax.
	require.InDelta(t, 0.0, c.At(-100), 1e-9)
	require.InDelta(t, 100.0, c.At(100), 1e-9)
}

func TestCurve_UnitYmaxIsProbability(t *testing.T) {
	c := Curve{A: 0.5, B: -6, Ymax: 1}

	want := 1 / (1 + math.Exp(-(0.5*3 - 6)))
	require.InDelta(t, want, c.At(3), 1e-15)
}

func TestCurve_Sample(t *testing.T) {
	c := Curve{A: 1, B: 0, Ymax: 2}

	got := c.Sample([]float64{-1, 0, 1})
	require.Len(t, got, 3)
	require.InDelta(t, 1.0, got[1], 1e-12)
	// Symmetry around the inflection at x=0.
	require.InDelta(t, 2.0, got[0]+got[2], 1e-12)
}

func TestCurve_Points(t *testing.T) {
	c := Curve{A: 0.5, B: -6, Ymax: 100}

	var xs, ys []float64
	for x, y := range c.Points(0, 20, 5) {
		xs = append(xs, x)
		ys = append(ys, y)
	}

	require.Equal(t, []float64{0, 5, 10, 15, 20}, xs)
	require.Len(t, ys, 5)
	require.InDelta(t, c.At(0), ys[0], 1e-12)
	require.InDelta(t, c.At(20), ys[4], 1e-12)
}

func TestCurve_PointsEarlyStop(t *testing.T) {
	c := Curve{A: 1, B: 0, Ymax: 1}

	count := 0
	for range c.Points(0, 10, 1000) {
		count++
		if count == 3 {
			break
		}
	}
	require.Equal(t, 3, count)
}

func TestCurve_PointsMinimumSamples(t *testing.T) {
	c := Curve{A: 1, B: 0, Ymax: 1}

	count := 0
	var lastX float64
	for x := range c.Points(2, 4, 1) {
		count++
		lastX = x
	}
	require.Equal(t, 2, count)
	require.Equal(t, 4.0, lastX)
}
