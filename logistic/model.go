package logistic

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateModel indicates a numerically zero slope, which leaves the
// inflection point -b/a undefined.
var ErrDegenerateModel = errors.New("logistic: degenerate model")

// slopeEpsilon is the threshold below which a slope is treated as zero.
const slopeEpsilon = 1e-10

// Coefficient is one fitted model parameter with its inference statistics.
type Coefficient struct {
	// Value is the maximum-likelihood estimate.
	Value float64
	// StdErr is the standard error from the inverse Fisher information.
	StdErr float64
	// Z is Value / StdErr.
	Z float64
	// PValue is the two-sided p-value of Z against the standard normal.
	PValue float64
}

// Model holds the parameters of a fitted logistic model
// p = 1 / (1 + exp(-(a*x + b))). A Model is immutable after fitting.
type Model struct {
	// Slope is the coefficient a on the predictor.
	Slope Coefficient
	// Intercept is the constant term b.
	Intercept Coefficient
	// LogLikelihood is the Bernoulli log-likelihood at the optimum.
	LogLikelihood float64
	// Iterations is the number of IRLS iterations used.
	Iterations int
}

// Inflection returns the predictor value -b/a where the logistic curve
// switches from accelerating to decelerating growth. On the original
// response scale the curve passes through Ymax/2 there.
//
// Fails with ErrDegenerateModel when the slope is numerically zero.
func (m *Model) Inflection() (float64, error) {
	if math.Abs(m.Slope.Value) < slopeEpsilon {
		return 0, fmt.Errorf("%w: |slope|=%.3g below %.0e", ErrDegenerateModel, math.Abs(m.Slope.Value), slopeEpsilon)
	}

	return -m.Intercept.Value / m.Slope.Value, nil
}

// Curve binds the fitted coefficients to a scaling constant, producing a
// predictor on the original response scale.
func (m *Model) Curve(ymax float64) Curve {
	return Curve{A: m.Slope.Value, B: m.Intercept.Value, Ymax: ymax}
}

// String returns a one-line summary of the fitted model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{a: %.4f (SE %.4f, p %.3g), b: %.4f (SE %.4f, p %.3g), logLik: %.4f, iters: %d}",
		m.Slope.Value, m.Slope.StdErr, m.Slope.PValue,
		m.Intercept.Value, m.Intercept.StdErr, m.Intercept.PValue,
		m.LogLikelihood, m.Iterations)
}
