// Package scale rescales raw response series into the open interval (0,1) so
// they can be fitted with a binomial logit link.
//
// The scaling constant Ymax is either the observed maximum of the series, an
// explicit projected maximum for series that have not yet saturated, or the
// observed maximum times a headroom factor. The headroom factor is a modeling
// assumption, not a derived quantity: a factor of 2 corresponds to assuming
// the series is currently at its inflection point. It is never applied unless
// the caller asks for it.
package scale

import (
	"errors"
	"fmt"

	"github.com/amplikon/growthcurve/internal/options"
	"github.com/amplikon/growthcurve/series"
)

// ErrInvalidScale indicates the scaling constant or a scaled value falls
// outside the domain of the logit link. The caller must re-check the input
// data or the choice of Ymax.
var ErrInvalidScale = errors.New("scale: invalid scale")

// Scaled carries a response series rescaled into (0,1) together with the
// scaling constant that produced it.
type Scaled struct {
	// Values are the scaled responses, each strictly inside (0,1).
	Values []float64
	// Ymax is the scaling constant used.
	Ymax float64
}

type config struct {
	ymax     float64 // explicit scaling constant; 0 means unset
	headroom float64 // multiplier on the observed maximum; 0 means unset
	clamp    float64 // boundary epsilon; 0 means reject boundary values
}

// Option configures a scaling operation.
type Option = options.Option[*config]

// WithYmax supplies an explicit scaling constant, typically a projected
// maximum for a series that has not reached saturation.
func WithYmax(ymax float64) Option {
	return options.New(func(cfg *config) error {
		if ymax <= 0 {
			return fmt.Errorf("%w: Ymax must be positive, got %v", ErrInvalidScale, ymax)
		}
		cfg.ymax = ymax

		return nil
	})
}

// WithHeadroom scales by factor times the observed maximum instead of the
// observed maximum itself. Factor must be greater than 1; a factor of 2
// assumes the series is at its inflection point.
func WithHeadroom(factor float64) Option {
	return options.New(func(cfg *config) error {
		if factor <= 1 {
			return fmt.Errorf("%w: headroom factor must exceed 1, got %v", ErrInvalidScale, factor)
		}
		cfg.headroom = factor

		return nil
	})
}

// WithClamp clamps scaled values into [eps, 1-eps] instead of rejecting
// values that land exactly on the interval boundary. Scaling a series by its
// own observed maximum always produces one value of exactly 1, so fitting
// such a series requires clamping. Values strictly outside [0, 1] are never
// clamped; they fail with ErrInvalidScale regardless.
func WithClamp(eps float64) Option {
	return options.New(func(cfg *config) error {
		if eps <= 0 || eps >= 0.5 {
			return fmt.Errorf("%w: clamp epsilon must be in (0, 0.5), got %v", ErrInvalidScale, eps)
		}
		cfg.clamp = eps

		return nil
	})
}

// Scale rescales the response values of s into (0,1).
//
// Without options the scaling constant is the observed maximum of the series.
// Any resulting value at or outside the interval boundary fails with
// ErrInvalidScale unless WithClamp is given; in particular an explicit Ymax
// below the observed maximum always fails.
func Scale(s *series.Series, opts ...Option) (*Scaled, error) {
	var cfg config
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.ymax != 0 && cfg.headroom != 0 {
		return nil, fmt.Errorf("%w: WithYmax and WithHeadroom are mutually exclusive", ErrInvalidScale)
	}

	ymax := cfg.ymax
	if ymax == 0 {
		ymax = s.MaxY()
		if cfg.headroom != 0 {
			ymax *= cfg.headroom
		}
	}
	if ymax <= 0 {
		return nil, fmt.Errorf("%w: scaling constant %v is not positive", ErrInvalidScale, ymax)
	}

	values := make([]float64, s.Len())
	for i := range values {
		v := s.YAt(i) / ymax
		// Values beyond the unit interval mean the scaling constant is
		// wrong; only boundary values are repairable by clamping.
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("%w: y[%d]=%v scales to %v with Ymax=%v",
				ErrInvalidScale, i, s.YAt(i), v, ymax)
		}
		if cfg.clamp > 0 {
			if v < cfg.clamp {
				v = cfg.clamp
			} else if v > 1-cfg.clamp {
				v = 1 - cfg.clamp
			}
		}
		if v <= 0 || v >= 1 {
			return nil, fmt.Errorf("%w: y[%d]=%v scales to %v with Ymax=%v",
				ErrInvalidScale, i, s.YAt(i), v, ymax)
		}
		values[i] = v
	}

	return &Scaled{Values: values, Ymax: ymax}, nil
}
