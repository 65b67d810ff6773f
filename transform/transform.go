// Public domain.

// Package transform converts coordinates between the ecliptic, equatorial,
// and horizontal frames, and supplies the obliquity and nutation values the
// conversions depend on.
//
// Conventions, pinned by the package tests: geographic longitude is
// positive east, and azimuth is reckoned from north through east, so an
// object due east of the observer has azimuth 90°.
package transform

import (
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"
)

// MeanObliquity returns the mean obliquity of the ecliptic, the tilt of
// Earth's equator against its orbital plane, from the secular polynomial
// of Meeus (22.2).
func MeanObliquity(jd float64) unit.Angle {
	t := base.J2000Century(jd)
	return unit.AngleFromSec(base.Horner(t,
		84381.448, -46.815, -.00059, .001813))
}

// Nutation returns nutation in longitude Δψ and obliquity Δε from the
// low-precision series of Meeus chapter 22, accurate to about 0.5″.
func Nutation(jd float64) (Δψ, Δε unit.Angle) {
	t := base.J2000Century(jd)
	ω := unit.AngleFromDeg(125.04452 - 1934.136261*t)
	l := unit.AngleFromDeg(280.4665 + 36000.7698*t)
	l1 := unit.AngleFromDeg(218.3165 + 481267.8813*t)
	sω, cω := ω.Sincos()
	s2l, c2l := l.Mul(2).Sincos()
	s2l1, c2l1 := l1.Mul(2).Sincos()
	s2ω, c2ω := ω.Mul(2).Sincos()
	Δψ = unit.AngleFromSec(-17.2*sω - 1.32*s2l - .23*s2l1 + .21*s2ω)
	Δε = unit.AngleFromSec(9.2*cω + .57*c2l + .1*c2l1 - .09*c2ω)
	return
}

// TrueObliquity returns the obliquity corrected for nutation.
func TrueObliquity(jd float64) unit.Angle {
	_, Δε := Nutation(jd)
	return MeanObliquity(jd) + Δε
}

// EclToEq converts ecliptic longitude and latitude to right ascension and
// declination, given the obliquity ε.  The conversion is a single rotation
// of the position vector about the equinox axis.
func EclToEq(λ, β, ε unit.Angle) (α unit.RA, δ unit.Angle) {
	sβ, cβ := β.Sincos()
	sλ, cλ := λ.Sincos()
	sε, cε := ε.Sincos()
	v := coord.Cart{X: cβ * cλ, Y: cβ * sλ, Z: sβ}
	v.RotateX(&v, -sε, cε)
	α = unit.RAFromRad(math.Atan2(v.Y, v.X))
	δ = unit.Angle(math.Asin(v.Z))
	return
}

// EqToEcl is the inverse of EclToEq.
func EqToEcl(α unit.RA, δ, ε unit.Angle) (λ, β unit.Angle) {
	sδ, cδ := δ.Sincos()
	sα, cα := math.Sincos(α.Rad())
	sε, cε := ε.Sincos()
	v := coord.Cart{X: cδ * cα, Y: cδ * sα, Z: sδ}
	v.RotateX(&v, sε, cε)
	λ = unit.Angle(math.Atan2(v.Y, v.X)).Mod1()
	β = unit.Angle(math.Asin(v.Z))
	return
}

// EqToHoriz converts equatorial coordinates to horizontal altitude and
// azimuth for an observer at latitude φ when the local sidereal time is
// θloc.  Azimuth is from north through east.
func EqToHoriz(α unit.RA, δ, φ, θloc unit.Angle) (az, alt unit.Angle) {
	h := θloc.Rad() - α.Rad()
	sh, ch := math.Sincos(h)
	sφ, cφ := φ.Sincos()
	sδ, cδ := δ.Sincos()
	alt = unit.Angle(math.Asin(sφ*sδ + cφ*cδ*ch))
	// Meeus reckons azimuth from the south; shift a half turn.
	az = unit.Angle(math.Atan2(sh, ch*sφ-sδ/cδ*cφ) + math.Pi).Mod1()
	return
}

// Refraction returns the atmospheric refraction to add to an airless
// altitude to obtain the apparent altitude, for standard conditions.
// Sæmundsson's formula (Meeus 16.4), good to about 0.1′ down to the
// horizon.  Below -1° the correction is not meaningful and 0 is returned.
func Refraction(alt unit.Angle) unit.Angle {
	h := alt.Deg()
	if h < -1 {
		return 0
	}
	if h < -.5 {
		h = -.5 // keep clear of the formula's singularity
	}
	m := 1.02 / math.Tan((h+10.3/(h+5.11))*math.Pi/180)
	return unit.AngleFromMin(m)
}
