// core/phase/curve.go
// Empirical ethanol/water phase curves at 1 atm.
//
// A Curve is a piecewise-linear map from ethanol volume fraction to a
// temperature in °C. Queries outside the sampled domain clamp to the nearest
// endpoint; nothing is extrapolated.

package phase

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Point is one control point of a curve.
type Point struct {
	Fraction float64 // ethanol volume fraction
	TempC    float64
}

// Curve interpolates linearly between ordered control points.
type Curve struct {
	points []Point
	pl     interp.PiecewiseLinear

	// Below this fraction Lookup returns SentinelC instead of interpolating.
	// Zero disables the override.
	sentinelBelow float64
	sentinelC     float64
}

// NewCurve builds a curve from points sorted by strictly ascending fraction.
func NewCurve(points []Point) (*Curve, error) {
	if len(points) < 2 {
		return nil, errors.New("phase: curve needs at least 2 points")
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		if i > 0 && p.Fraction <= points[i-1].Fraction {
			return nil, fmt.Errorf("phase: fractions must ascend strictly (point %d: %g after %g)",
				i, p.Fraction, points[i-1].Fraction)
		}
		xs[i], ys[i] = p.Fraction, p.TempC
	}
	c := &Curve{points: append([]Point(nil), points...)}
	if err := c.pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("phase: %w", err)
	}
	return c, nil
}

// WithSentinel returns a copy of c that reports tempC for every fraction
// below threshold.
func (c *Curve) WithSentinel(threshold, tempC float64) *Curve {
	cp := *c
	cp.sentinelBelow = threshold
	cp.sentinelC = tempC
	return &cp
}

// Lookup returns the temperature at fraction x.
func (c *Curve) Lookup(x float64) float64 {
	if c.sentinelBelow > 0 && x < c.sentinelBelow {
		return c.sentinelC
	}
	lo, hi := c.points[0], c.points[len(c.points)-1]
	switch {
	case x <= lo.Fraction:
		return lo.TempC
	case x >= hi.Fraction:
		return hi.TempC
	}
	return c.pl.Predict(x)
}
