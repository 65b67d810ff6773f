// Public domain.

// Package interp fits a parabola through three equally spaced tabular
// values, Meeus chapter 3.  It is the refinement machinery behind the
// rise/transit/set solver: three position samples a day apart are enough
// for a slowly moving body, and interpolation converges in very few passes
// where a blind search would not.
package interp

// Len3 holds three y values tabulated at equal intervals of the
// independent variable, together with their finite differences.
type Len3 struct {
	y     [3]float64
	abSum float64
	c     float64
}

// NewLen3 creates a Len3 from three tabular values.
func NewLen3(y1, y2, y3 float64) Len3 {
	a := y2 - y1
	b := y3 - y2
	return Len3{
		y:     [3]float64{y1, y2, y3},
		abSum: a + b,
		c:     b - a,
	}
}

// InterpolateN evaluates the fitted parabola at interpolating factor n,
// where n is measured in table intervals from the middle value.  n in
// [-1, 1] interpolates; values slightly outside extrapolate.
func (l Len3) InterpolateN(n float64) float64 {
	return l.y[1] + n*.5*(l.abSum+n*l.c)
}
