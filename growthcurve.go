// Package growthcurve fits two-parameter logistic growth curves to
// sigmoidal observation series such as qPCR fluorescence readings or
// cumulative epidemic case counts.
//
// The model is Y = Ymax / (1 + exp(-(a*x + b))). A fit runs a fixed
// pipeline over an immutable series: rescale the responses into (0,1) by a
// scaling constant Ymax, estimate (a, b) by maximum-likelihood binomial
// regression with a logit link, then evaluate goodness of fit and the
// inflection point x* = -b/a.
//
// # Basic Usage
//
//	s, _ := series.New(cycles, fluorescence)
//
//	result, err := growthcurve.FitSeries(s)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(result.Summary())
//	y40 := result.Curve.At(40) // forecast
//
// For a series that has not reached saturation, supply a projected maximum
// or a headroom factor instead of the observed maximum:
//
//	result, err := growthcurve.FitSeries(s, growthcurve.WithYmax(120000))
//	result, err = growthcurve.FitSeries(s, growthcurve.WithHeadroom(2))
//
// Subpackages expose each pipeline stage on its own: series (observation
// types), dataset (delimited-text loading), scale, logistic (fit, evaluate,
// predict) and chart (fitted-curve overlay rendering).
package growthcurve

import (
	"fmt"
	"math"

	"github.com/amplikon/growthcurve/internal/options"
	"github.com/amplikon/growthcurve/logistic"
	"github.com/amplikon/growthcurve/scale"
	"github.com/amplikon/growthcurve/series"
)

// DefaultClampEpsilon is the boundary clamp applied to scaled responses by
// FitSeries. Scaling by the observed maximum always puts one value exactly
// on the interval boundary, which the binomial link cannot represent.
const DefaultClampEpsilon = 1e-6

type config struct {
	ymax     float64
	headroom float64
	clamp    float64
	maxIter  int
	tol      float64
}

// Option configures FitSeries.
type Option = options.Option[*config]

// WithYmax supplies an explicit scaling constant, typically a projected
// maximum for a still-growing series.
func WithYmax(ymax float64) Option {
	return options.NoError(func(cfg *config) {
		cfg.ymax = ymax
	})
}

// WithHeadroom scales by factor times the observed maximum. A factor of 2
// assumes the series is currently at its inflection point; the choice is a
// modeling assumption, not a fitted quantity.
func WithHeadroom(factor float64) Option {
	return options.NoError(func(cfg *config) {
		cfg.headroom = factor
	})
}

// WithClamp overrides DefaultClampEpsilon.
func WithClamp(eps float64) Option {
	return options.NoError(func(cfg *config) {
		cfg.clamp = eps
	})
}

// WithoutClamp disables boundary clamping; scaled values on the interval
// boundary then fail the fit with scale.ErrInvalidScale.
func WithoutClamp() Option {
	return options.NoError(func(cfg *config) {
		cfg.clamp = 0
	})
}

// WithMaxIterations overrides the solver iteration budget.
func WithMaxIterations(n int) Option {
	return options.NoError(func(cfg *config) {
		cfg.maxIter = n
	})
}

// WithTolerance overrides the solver convergence tolerance.
func WithTolerance(tol float64) Option {
	return options.NoError(func(cfg *config) {
		cfg.tol = tol
	})
}

// Result bundles the outcome of a single fit. All fields are set once by
// FitSeries and never mutated.
type Result struct {
	// Model holds the fitted coefficients and their inference statistics.
	Model *logistic.Model
	// Curve evaluates the fit on the original response scale.
	Curve logistic.Curve
	// Ymax is the scaling constant used for the fit.
	Ymax float64
	// PseudoRSquared is 1 - SSE/SST on the scaled responses.
	PseudoRSquared float64
}

// Inflection returns the inflection point on the original response scale:
// x* = -b/a and y* = Ymax/2. Fails with logistic.ErrDegenerateModel when
// the slope is numerically zero.
func (r *Result) Inflection() (x, y float64, err error) {
	x, err = r.Model.Inflection()
	if err != nil {
		return 0, 0, err
	}

	return x, r.Ymax / 2, nil
}

// Summary returns a multi-line human-readable account of the fit.
func (r *Result) Summary() string {
	a, b := r.Model.Slope, r.Model.Intercept
	s := fmt.Sprintf("logistic fit: y = %.4g / (1 + exp(-(a*x + b)))\n", r.Ymax)
	s += fmt.Sprintf("  a = %.6g  (SE %.3g, z %.3g, p %.3g)\n", a.Value, a.StdErr, a.Z, a.PValue)
	s += fmt.Sprintf("  b = %.6g  (SE %.3g, z %.3g, p %.3g)\n", b.Value, b.StdErr, b.Z, b.PValue)
	s += fmt.Sprintf("  pseudo-R² = %.4f, log-likelihood = %.4f, iterations = %d\n",
		r.PseudoRSquared, r.Model.LogLikelihood, r.Model.Iterations)

	if x, y, err := r.Inflection(); err != nil {
		s += "  inflection: undefined (slope is numerically zero)"
	} else {
		s += fmt.Sprintf("  inflection: x = %.4g, y = %.4g", x, y)
	}

	return s
}

// FitSeries runs the whole pipeline on one observation series: scale the
// responses into (0,1), fit the logistic model, and evaluate pseudo-R²
// against the scaled responses.
//
// By default the scaling constant is the observed maximum with boundary
// values clamped by DefaultClampEpsilon; see the options for projected
// maxima, headroom scaling and solver tuning. Each fit is independent and
// atomic: any error discards the whole fit.
func FitSeries(s *series.Series, opts ...Option) (*Result, error) {
	cfg := config{clamp: DefaultClampEpsilon}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	var scaleOpts []scale.Option
	if cfg.ymax != 0 {
		scaleOpts = append(scaleOpts, scale.WithYmax(cfg.ymax))
	}
	if cfg.headroom != 0 {
		scaleOpts = append(scaleOpts, scale.WithHeadroom(cfg.headroom))
	}
	if cfg.clamp != 0 {
		scaleOpts = append(scaleOpts, scale.WithClamp(cfg.clamp))
	}

	scaled, err := scale.Scale(s, scaleOpts...)
	if err != nil {
		return nil, err
	}

	var fitOpts []logistic.FitOption
	if cfg.maxIter != 0 {
		fitOpts = append(fitOpts, logistic.WithMaxIterations(cfg.maxIter))
	}
	if cfg.tol != 0 {
		fitOpts = append(fitOpts, logistic.WithTolerance(cfg.tol))
	}

	x := s.X()
	model, err := logistic.Fit(x, scaled.Values, fitOpts...)
	if err != nil {
		return nil, err
	}

	predicted := model.Curve(1).Sample(x)

	return &Result{
		Model:          model,
		Curve:          model.Curve(scaled.Ymax),
		Ymax:           scaled.Ymax,
		PseudoRSquared: logistic.PseudoRSquared(scaled.Values, predicted),
	}, nil
}

// FitColumn is a convenience that extracts the named response column from a
// dataset and fits it.
func FitColumn(d *series.Dataset, column string, opts ...Option) (*Result, error) {
	s, err := d.Column(column)
	if err != nil {
		return nil, err
	}

	return FitSeries(s, opts...)
}

// Logistic evaluates the logistic function Ymax / (1 + exp(-(a*x + b))) at
// x. It is the closed form every fitted Curve evaluates.
func Logistic(x, a, b, ymax float64) float64 {
	return ymax / (1 + math.Exp(-(a*x + b)))
}
