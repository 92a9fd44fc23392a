// Package chart renders a fitted logistic curve over the observations it was
// fitted to, for visual inspection of the fit.
package chart

import (
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/amplikon/growthcurve/internal/options"
	"github.com/amplikon/growthcurve/logistic"
	"github.com/amplikon/growthcurve/series"
)

const (
	defaultWidth   = 800
	defaultHeight  = 500
	defaultSamples = 200
)

type config struct {
	title   string
	width   int
	height  int
	samples int
}

// Option configures overlay rendering.
type Option = options.Option[*config]

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return options.NoError(func(cfg *config) {
		cfg.title = title
	})
}

// WithSize sets the output dimensions in pixels.
func WithSize(width, height int) Option {
	return options.New(func(cfg *config) error {
		if width < 1 || height < 1 {
			return fmt.Errorf("chart: size must be positive, got %dx%d", width, height)
		}
		cfg.width = width
		cfg.height = height

		return nil
	})
}

// WithSamples sets how many points the fitted curve is sampled at.
func WithSamples(n int) Option {
	return options.New(func(cfg *config) error {
		if n < 2 {
			return fmt.Errorf("chart: need at least 2 curve samples, got %d", n)
		}
		cfg.samples = n

		return nil
	})
}

// RenderOverlay writes a PNG scatter of the observations with the continuous
// fitted curve overlaid. The curve is sampled across the predictor range of
// the observations.
func RenderOverlay(w io.Writer, s *series.Series, curve logistic.Curve, opts ...Option) error {
	cfg := config{width: defaultWidth, height: defaultHeight, samples: defaultSamples}
	if err := options.Apply(&cfg, opts...); err != nil {
		return err
	}

	curveX := make([]float64, 0, cfg.samples)
	curveY := make([]float64, 0, cfg.samples)
	for x, y := range curve.Points(s.MinX(), s.MaxX(), cfg.samples) {
		curveX = append(curveX, x)
		curveY = append(curveY, y)
	}

	graph := gochart.Chart{
		Title:  cfg.title,
		Width:  cfg.width,
		Height: cfg.height,
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    "Observed",
				XValues: s.X(),
				YValues: s.Y(),
				Style: gochart.Style{
					StrokeWidth: 0,
					DotWidth:    4,
					DotColor:    gochart.ColorBlue,
				},
			},
			gochart.ContinuousSeries{
				Name:    "Fitted",
				XValues: curveX,
				YValues: curveY,
				Style: gochart.Style{
					StrokeWidth: 2,
					StrokeColor: gochart.ColorRed,
				},
			},
		},
	}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("chart: render failed: %w", err)
	}

	return nil
}
