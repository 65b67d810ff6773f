// Public domain.

// Package lunar computes the position and illumination of the Moon from a
// truncated form of the periodic series in Meeus chapters 47 and 48.  The
// series here keep the terms of the full tables down to a few arcseconds
// in longitude and latitude and a few kilometers in distance; combined
// truncation error stays within about 0.02° and 30 km, which is well
// inside the accuracy class of the rest of the module.
package lunar

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"

	"github.com/Greg50100/ha-meeus-astronomy/solar"
	"github.com/Greg50100/ha-meeus-astronomy/transform"
)

// EarthRadius is the equatorial radius of the Earth in km, the base of the
// Moon's horizontal parallax.
const EarthRadius = 6378.14

// AUKm is one astronomical unit in km.
const AUKm = 149597870.7

// arguments of one periodic term: multiples of D, M, M′, F and the
// coefficients of the sine (longitude, 1e-6 degree) and cosine (distance,
// 1e-3 km) series.
type tLR struct {
	d, m, mp, f int
	sl, sr      float64
}

// Meeus table 47.A, dominant terms.
var tabLR = []tLR{
	{0, 0, 1, 0, 6288774, -20905355},
	{2, 0, -1, 0, 1274027, -3699111},
	{2, 0, 0, 0, 658314, -2955968},
	{0, 0, 2, 0, 213618, -569925},
	{0, 1, 0, 0, -185116, 48888},
	{0, 0, 0, 2, -114332, -3149},
	{2, 0, -2, 0, 58793, 246158},
	{2, -1, -1, 0, 57066, -152138},
	{2, 0, 1, 0, 53322, -170733},
	{2, -1, 0, 0, 45758, -204586},
	{0, 1, -1, 0, -40923, -129620},
	{1, 0, 0, 0, -34720, 108743},
	{0, 1, 1, 0, -30383, 104755},
	{2, 0, 0, -2, 15327, 10321},
	{0, 0, 1, 2, -12528, 0},
	{0, 0, 1, -2, 10980, 79661},
	{4, 0, -1, 0, 10675, -34782},
	{0, 0, 3, 0, 10034, -23210},
	{4, 0, -2, 0, 8548, -21636},
	{2, 1, -1, 0, -7888, 24208},
	{2, 1, 0, 0, -6766, 30824},
	{1, 0, -1, 0, -5163, -8379},
	{1, 1, 0, 0, 4987, -16675},
	{2, -1, 1, 0, 4036, -12831},
	{2, 0, 2, 0, 3994, -10445},
	{4, 0, 0, 0, 3861, -11650},
	{2, 0, -3, 0, 3665, 14403},
	{0, 1, -2, 0, -2689, -7003},
	{2, 0, -1, 2, -2602, 0},
	{2, -1, -2, 0, 2390, 10056},
	{1, 0, 1, 0, -2348, 6322},
	{2, -2, 0, 0, 2236, -9884},
}

// one latitude term: multiples of D, M, M′, F and the sine coefficient in
// units of 1e-6 degree.
type tB struct {
	d, m, mp, f int
	sb          float64
}

// Meeus table 47.B, dominant terms.
var tabB = []tB{
	{0, 0, 0, 1, 5128122},
	{0, 0, 1, 1, 280602},
	{0, 0, 1, -1, 277693},
	{2, 0, 0, -1, 173237},
	{2, 0, -1, 1, 55413},
	{2, 0, -1, -1, 46271},
	{2, 0, 0, 1, 32573},
	{0, 0, 2, 1, 17198},
	{2, 0, 1, -1, 9266},
	{0, 0, 2, -1, 8822},
	{2, -1, 0, -1, 8216},
	{2, 0, -2, -1, 4324},
	{2, 0, 1, 1, 4200},
	{2, 1, 0, -1, -3359},
	{2, -1, -1, 1, 2463},
	{2, -1, 0, 1, 2211},
	{2, -1, -1, -1, 2065},
	{0, 1, -1, -1, -1870},
	{4, 0, -1, -1, 1828},
	{0, 1, 0, 1, -1794},
	{0, 0, 0, 3, -1749},
	{0, 1, -1, 1, -1565},
	{1, 0, 0, 1, -1491},
	{0, 1, 1, 1, -1475},
	{0, 1, 1, -1, -1410},
	{0, 1, 0, -1, -1344},
	{1, 0, 0, -1, -1335},
	{0, 0, 3, 1, 1107},
	{4, 0, 0, -1, 1021},
	{4, 0, -1, 1, 833},
}

// fundamental arguments of the lunar theory at time T, Meeus (47.1)-(47.7).
type args struct {
	l1, d, m, mp, f float64 // radians
	a1, a2, a3      float64 // radians
	e               float64
}

func fundamental(T float64) args {
	deg := func(d float64) float64 {
		return unit.AngleFromDeg(unit.PMod(d, 360)).Rad()
	}
	return args{
		l1: deg(base.Horner(T, 218.3164477, 481267.88123421,
			-.0015786, 1/538841., -1/65194000.)),
		d: deg(base.Horner(T, 297.8501921, 445267.1114034,
			-.0018819, 1/545868., -1/113065000.)),
		m: deg(base.Horner(T, 357.5291092, 35999.0502909,
			-.0001536, 1/24490000.)),
		mp: deg(base.Horner(T, 134.9633964, 477198.8675055,
			.0087414, 1/69699., -1/14712000.)),
		f: deg(base.Horner(T, 93.272095, 483202.0175233,
			-.0036539, -1/3526000., 1/863310000.)),
		a1: deg(119.75 + 131.849*T),
		a2: deg(53.09 + 479264.29*T),
		a3: deg(313.45 + 481266.484*T),
		e:  base.Horner(T, 1, -.002516, -.0000074),
	}
}

// Position returns the geocentric ecliptic longitude and latitude of the
// Moon referred to the mean equinox of date, and the Earth-Moon distance Δ
// in km, for a dynamical time jde.
func Position(jde float64) (λ, β unit.Angle, Δ float64) {
	T := base.J2000Century(jde)
	a := fundamental(T)

	var Σl, Σr, Σb float64
	for i := range tabLR {
		t := &tabLR[i]
		arg := float64(t.d)*a.d + float64(t.m)*a.m +
			float64(t.mp)*a.mp + float64(t.f)*a.f
		e := 1.
		switch t.m {
		case 1, -1:
			e = a.e
		case 2, -2:
			e = a.e * a.e
		}
		s, c := math.Sincos(arg)
		Σl += e * t.sl * s
		Σr += e * t.sr * c
	}
	for i := range tabB {
		t := &tabB[i]
		arg := float64(t.d)*a.d + float64(t.m)*a.m +
			float64(t.mp)*a.mp + float64(t.f)*a.f
		e := 1.
		switch t.m {
		case 1, -1:
			e = a.e
		case 2, -2:
			e = a.e * a.e
		}
		Σb += e * t.sb * math.Sin(arg)
	}
	// additive terms: Venus (A1), Jupiter (A2), and the flattening term
	Σl += 3958*math.Sin(a.a1) +
		1962*math.Sin(a.l1-a.f) +
		318*math.Sin(a.a2)
	Σb += -2235*math.Sin(a.l1) +
		382*math.Sin(a.a3) +
		175*math.Sin(a.a1-a.f) +
		175*math.Sin(a.a1+a.f) +
		127*math.Sin(a.l1-a.mp) -
		115*math.Sin(a.l1+a.mp)

	λ = (unit.Angle(a.l1) + unit.AngleFromDeg(Σl*1e-6)).Mod1()
	β = unit.AngleFromDeg(Σb * 1e-6)
	Δ = 385000.56 + Σr*1e-3
	return
}

// ApparentEquatorial returns the Moon's apparent geocentric right ascension
// and declination and the distance Δ in km.
func ApparentEquatorial(jde float64) (α unit.RA, δ unit.Angle, Δ float64) {
	λ, β, Δ := Position(jde)
	Δψ, _ := transform.Nutation(jde)
	ε := transform.TrueObliquity(jde)
	α, δ = transform.EclToEq((λ + Δψ).Mod1(), β, ε)
	return α, δ, Δ
}

// Parallax returns the Moon's equatorial horizontal parallax for a
// distance Δ in km.
func Parallax(Δ float64) unit.Angle {
	return unit.Angle(math.Asin(EarthRadius / Δ))
}

// PhaseAngle returns the phase angle of the Moon and the illuminated
// fraction k of the disk, for a dynamical time jde.  Meeus chapter 48.
//
// The returned angle measures phase progression: 0 at new moon, near 180°
// at full.  It is the supplement of the Sun-Moon-Earth triangle angle the
// illuminated fraction derives from.  k is 0 at new moon and 1 at full.
func PhaseAngle(jde float64) (phase unit.Angle, k float64) {
	T := base.J2000Century(jde)
	λ, β, Δ := Position(jde)
	λ0 := solar.ApparentLongitude(jde)
	R := solar.Radius(T) * AUKm

	// geocentric elongation, Meeus (48.2) in ecliptic coordinates
	cψ := β.Cos() * (λ - λ0).Cos()
	ψ := math.Acos(cψ)
	// angle at the Moon from the triangle, Meeus (48.3)
	i := unit.Angle(math.Atan2(R*math.Sin(ψ), Δ-R*cψ))
	return unit.Angle(math.Pi) - i, base.Illuminated(i)
}
