package logistic_test

import (
	"fmt"
	"math"

	"github.com/amplikon/growthcurve/logistic"
)

// ExampleFit fits a logistic model to noiseless scaled responses and
// recovers the generating coefficients.
func ExampleFit() {
	x := make([]float64, 20)
	p := make([]float64, 20)
	for i := range x {
		x[i] = float64(i + 1)
		p[i] = 1 / (1 + math.Exp(-(0.5*x[i] - 6)))
	}

	model, err := logistic.Fit(x, p)
	if err != nil {
		fmt.Println(err)
		return
	}

	xStar, _ := model.Inflection()
	fmt.Printf("a=%.2f b=%.2f inflection=%.2f\n", model.Slope.Value, model.Intercept.Value, xStar)
	// Output: a=0.50 b=-6.00 inflection=12.00
}

// ExampleCurve_Points samples a fitted curve for plotting.
func ExampleCurve_Points() {
	c := logistic.Curve{A: 0.5, B: -6, Ymax: 100}

	for x, y := range c.Points(8, 16, 5) {
		fmt.Printf("x=%.0f y=%.1f\n", x, y)
	}
	// Output:
	// x=8 y=11.9
	// x=10 y=26.9
	// x=12 y=50.0
	// x=14 y=73.1
	// x=16 y=88.1
}
