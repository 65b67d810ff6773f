// Public domain.

// Package solar computes the position of the Sun from the low-precision
// theory of Meeus chapter 25: mean elements, the equation of center as a
// short periodic series, and nutation and aberration corrections to reach
// the apparent place.  Accuracy is about 0.01°, ample for rise/set and
// sensor work.
//
// By the convention of the low-precision model the Sun's ecliptic latitude
// is identically zero.
package solar

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"

	"github.com/Greg50100/ha-meeus-astronomy/transform"
)

// MeanLongitude returns the geometric mean longitude L0 of the Sun,
// referred to the mean equinox of date.
func MeanLongitude(T float64) unit.Angle {
	return unit.AngleFromDeg(base.Horner(T,
		280.46646, 36000.76983, .0003032)).Mod1()
}

// MeanAnomaly returns the mean anomaly M of the Sun.
func MeanAnomaly(T float64) unit.Angle {
	return unit.AngleFromDeg(base.Horner(T,
		357.52911, 35999.05029, -.0001537)).Mod1()
}

// Eccentricity returns the eccentricity of Earth's orbit.
func Eccentricity(T float64) float64 {
	return base.Horner(T, .016708634, -.000042037, -.0000001267)
}

// Center returns the equation of center, the periodic difference between
// the true and mean anomaly.
func Center(T float64) unit.Angle {
	m := MeanAnomaly(T).Rad()
	return unit.AngleFromDeg(
		base.Horner(T, 1.914602, -.004817, -.000014)*math.Sin(m) +
			(.019993-.000101*T)*math.Sin(2*m) +
			.000289*math.Sin(3*m))
}

// TrueLongitude returns the Sun's geometric (true) ecliptic longitude.
func TrueLongitude(T float64) unit.Angle {
	return (MeanLongitude(T) + Center(T)).Mod1()
}

// Radius returns the Sun-Earth distance in AU.
func Radius(T float64) float64 {
	e := Eccentricity(T)
	ν := (MeanAnomaly(T) + Center(T)).Rad()
	return 1.000001018 * (1 - e*e) / (1 + e*math.Cos(ν))
}

// node returns the longitude of the Moon's ascending node, the argument of
// the dominant nutation and aberration terms.
func node(T float64) unit.Angle {
	return unit.AngleFromDeg(125.04 - 1934.136*T)
}

// ApparentLongitude returns the Sun's apparent ecliptic longitude:
// the true longitude corrected for nutation and aberration.
func ApparentLongitude(jde float64) unit.Angle {
	T := base.J2000Century(jde)
	ω := node(T)
	return (TrueLongitude(T) +
		unit.AngleFromDeg(-.00569-.00478*ω.Sin())).Mod1()
}

// ApparentEquatorial returns the Sun's apparent right ascension and
// declination, and the Sun-Earth distance R in AU.
func ApparentEquatorial(jde float64) (α unit.RA, δ unit.Angle, R float64) {
	T := base.J2000Century(jde)
	λ := ApparentLongitude(jde)
	// obliquity corrected for the dominant nutation term, Meeus 25.8
	ε := transform.MeanObliquity(jde) +
		unit.AngleFromDeg(.00256*node(T).Cos())
	α, δ = transform.EclToEq(λ, 0, ε)
	return α, δ, Radius(T)
}

// EquationOfTime returns apparent minus mean solar time, Meeus (28.3).
// Positive means the sundial is ahead of the clock; the value stays within
// about ±17 minutes.
func EquationOfTime(jde float64) unit.Time {
	T := base.J2000Century(jde)
	ε := transform.TrueObliquity(jde)
	t := ε.Div(2).Tan()
	y := t * t
	l0 := MeanLongitude(T).Rad()
	m := MeanAnomaly(T).Rad()
	e := Eccentricity(T)
	s2l0, c2l0 := math.Sincos(2 * l0)
	sm := math.Sin(m)
	// E in radians
	E := y*s2l0 - 2*e*sm + 4*e*y*sm*c2l0 -
		y*y/2*math.Sin(4*l0) - 1.25*e*e*math.Sin(2*m)
	return unit.TimeFromRad(E)
}
