// Package logistic fits two-parameter logistic models to scaled growth
// series and evaluates the result.
//
// The model relates a numeric predictor x to a response probability p through
// the logit link:
//
//	p = 1 / (1 + exp(-(a*x + b)))
//
// Fit estimates (a, b) by maximum likelihood, treating each scaled response
// as the probability parameter of a single Bernoulli trial and solving by
// iteratively reweighted least squares, the standard Newton-Raphson scheme
// for generalized linear models with a logit link. The weighted
// normal-equations solve of each iteration goes through gonum's Cholesky
// factorization so the solver can be swapped for another vetted numerical
// routine in one place.
//
// # Usage
//
// Fit scaled responses against their predictor, then inspect the model:
//
//	model, err := logistic.Fit(x, scaled.Values)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(model)               // coefficients, SE, z, p
//	xStar, err := model.Inflection() // -b/a
//
// Predictions for plotting or forecasting come from a Curve, a pure function
// of the fitted coefficients and a scaling constant:
//
//	curve := model.Curve(scaled.Ymax)
//	for x, y := range curve.Points(0, 40, 200) {
//	    // plot (x, y)
//	}
//
// # Errors
//
//   - ErrNonConvergence: the iteration budget ran out before the
//     log-likelihood stabilized. No automatic restart is attempted.
//   - ErrDegenerateModel: the slope is numerically zero, so the inflection
//     point -b/a is undefined.
package logistic
