package logistic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPseudoRSquared_PerfectFit(t *testing.T) {
	actual := []float64{0.1, 0.3, 0.6, 0.9}
	predicted := []float64{0.1, 0.3, 0.6, 0.9}

	require.InDelta(t, 1.0, PseudoRSquared(actual, predicted), 1e-12)
}

func TestPseudoRSquared_LargeResiduals(t *testing.T) {
	actual := []float64{0.1, 0.3, 0.6, 0.9}
	predicted := []float64{0.9, 0.1, 0.2, 0.3}

	r2 := PseudoRSquared(actual, predicted)
	require.Less(t, r2, 0.5)
}

func TestPseudoRSquared_WorseThanMeanIsNegative(t *testing.T) {
	actual := []float64{0.2, 0.4, 0.6}
	predicted := []float64{0.9, 0.9, 0.05}

	require.Less(t, PseudoRSquared(actual, predicted), 0.0)
}

func TestPseudoRSquared_DegenerateInputs(t *testing.T) {
	require.Zero(t, PseudoRSquared(nil, nil))
	require.Zero(t, PseudoRSquared([]float64{1, 2}, []float64{1}))
	// Constant actual values leave SST at zero.
	require.Zero(t, PseudoRSquared([]float64{0.5, 0.5}, []float64{0.4, 0.6}))
}
