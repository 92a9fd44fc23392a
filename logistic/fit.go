package logistic

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/amplikon/growthcurve/internal/options"
)

var (
	// ErrNonConvergence indicates the IRLS iteration did not stabilize
	// within the iteration budget. The fit is discarded; no restart is
	// attempted.
	ErrNonConvergence = errors.New("logistic: fit did not converge")
	// ErrSingularSystem indicates the weighted normal equations could not
	// be solved, e.g. because the predictor values are collinear. It is
	// always wrapped together with ErrNonConvergence.
	ErrSingularSystem = errors.New("logistic: singular weighted normal equations")
)

const (
	// DefaultMaxIterations is the default IRLS iteration budget.
	DefaultMaxIterations = 25
	// DefaultTolerance is the default convergence tolerance on the change
	// in log-likelihood between iterations.
	DefaultTolerance = 1e-8

	// minWeight keeps the working response finite when the fitted mean
	// saturates toward 0 or 1 during iteration.
	minWeight = 1e-12
)

type fitConfig struct {
	maxIter int
	tol     float64
}

// FitOption configures the IRLS solver.
type FitOption = options.Option[*fitConfig]

// WithMaxIterations overrides the iteration budget.
func WithMaxIterations(n int) FitOption {
	return options.New(func(cfg *fitConfig) error {
		if n < 1 {
			return fmt.Errorf("logistic: iteration budget must be at least 1, got %d", n)
		}
		cfg.maxIter = n

		return nil
	})
}

// WithTolerance overrides the convergence tolerance on the log-likelihood.
func WithTolerance(tol float64) FitOption {
	return options.New(func(cfg *fitConfig) error {
		if tol <= 0 {
			return fmt.Errorf("logistic: tolerance must be positive, got %v", tol)
		}
		cfg.tol = tol

		return nil
	})
}

// Fit estimates the logistic model p = 1/(1+exp(-(a*x+b))) from predictor
// values x and scaled responses p, each strictly inside (0,1).
//
// Estimation is maximum-likelihood binomial regression solved by
// iteratively reweighted least squares. Each iteration solves the weighted
// normal equations for the design [1, x] via Cholesky factorization; the
// iteration stops once the log-likelihood changes by less than the
// tolerance. Coefficient standard errors come from the inverse Fisher
// information (X'WX)^-1 at the optimum, z statistics are coefficient over
// standard error, and two-sided p-values are taken against the standard
// normal distribution.
//
// Fails with ErrNonConvergence if the iteration budget runs out or the
// normal equations become singular.
func Fit(x, p []float64, opts ...FitOption) (*Model, error) {
	if len(x) != len(p) {
		return nil, fmt.Errorf("logistic: predictor and response length mismatch: %d != %d", len(x), len(p))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("logistic: need at least 2 observations, got %d", len(x))
	}
	for i, v := range p {
		if v <= 0 || v >= 1 || math.IsNaN(v) {
			return nil, fmt.Errorf("logistic: response p[%d]=%v outside (0,1)", i, v)
		}
	}

	cfg := fitConfig{maxIter: DefaultMaxIterations, tol: DefaultTolerance}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	// Start from the null model: zero slope, intercept at the logit of the
	// mean response.
	meanP := 0.0
	for _, v := range p {
		meanP += v
	}
	meanP /= float64(len(p))

	a := 0.0
	b := math.Log(meanP / (1 - meanP))

	ll := logLikelihood(x, p, a, b)
	converged := false
	iters := 0

	var chol mat.Cholesky
	var sol mat.VecDense
	for iter := 1; iter <= cfg.maxIter; iter++ {
		iters = iter

		xtwx, xtwz := normalEquations(x, p, a, b)
		if !chol.Factorize(xtwx) {
			return nil, fmt.Errorf("%w: %w", ErrNonConvergence, ErrSingularSystem)
		}
		if err := chol.SolveVecTo(&sol, xtwz); err != nil {
			return nil, fmt.Errorf("%w: %w: %v", ErrNonConvergence, ErrSingularSystem, err)
		}
		b = sol.AtVec(0)
		a = sol.AtVec(1)

		next := logLikelihood(x, p, a, b)
		if math.Abs(next-ll) < cfg.tol {
			ll = next
			converged = true

			break
		}
		ll = next
	}

	if !converged {
		return nil, fmt.Errorf("%w: log-likelihood still changing after %d iterations", ErrNonConvergence, cfg.maxIter)
	}

	// Covariance is the inverse Fisher information at the optimum.
	xtwx, _ := normalEquations(x, p, a, b)
	if !chol.Factorize(xtwx) {
		return nil, fmt.Errorf("%w: %w: Fisher information at the optimum", ErrNonConvergence, ErrSingularSystem)
	}
	var cov mat.SymDense
	if err := chol.InverseTo(&cov); err != nil {
		return nil, fmt.Errorf("%w: %w: %v", ErrNonConvergence, ErrSingularSystem, err)
	}

	return &Model{
		Slope:         newCoefficient(a, cov.At(1, 1)),
		Intercept:     newCoefficient(b, cov.At(0, 0)),
		LogLikelihood: ll,
		Iterations:    iters,
	}, nil
}

// normalEquations accumulates the weighted normal equations X'WX and X'Wz
// for the two-column design [1, x] at the current coefficients, where z is
// the IRLS working response eta + (p-mu)/w.
func normalEquations(x, p []float64, a, b float64) (*mat.SymDense, *mat.VecDense) {
	var s00, s01, s11, t0, t1 float64
	for i := range x {
		eta := a*x[i] + b
		mu := sigmoid(eta)
		w := mu * (1 - mu)
		if w < minWeight {
			w = minWeight
		}
		z := eta + (p[i]-mu)/w

		s00 += w
		s01 += w * x[i]
		s11 += w * x[i] * x[i]
		t0 += w * z
		t1 += w * x[i] * z
	}

	xtwx := mat.NewSymDense(2, []float64{s00, s01, s01, s11})
	xtwz := mat.NewVecDense(2, []float64{t0, t1})

	return xtwx, xtwz
}

func newCoefficient(value, variance float64) Coefficient {
	se := math.Sqrt(variance)
	z := value / se

	return Coefficient{
		Value:  value,
		StdErr: se,
		Z:      z,
		PValue: 2 * distuv.UnitNormal.Survival(math.Abs(z)),
	}
}

// logLikelihood is the Bernoulli log-likelihood of coefficients (a, b) with
// each scaled response acting as the probability of a single trial.
func logLikelihood(x, p []float64, a, b float64) float64 {
	ll := 0.0
	for i := range x {
		mu := sigmoid(a*x[i] + b)
		if mu < minWeight {
			mu = minWeight
		} else if mu > 1-minWeight {
			mu = 1 - minWeight
		}
		ll += p[i]*math.Log(mu) + (1-p[i])*math.Log(1-mu)
	}

	return ll
}

func sigmoid(eta float64) float64 {
	return 1 / (1 + math.Exp(-eta))
}
