// Public domain.

// Package rise finds the times at which a body crosses a target altitude
// during one day, and the time of its meridian transit, by the
// interpolation method of Meeus chapter 15.
//
// Three position samples a day apart seed first approximations from the
// hour angle of the crossing; quadratic interpolation of right ascension
// and declination then refines each time in a small, bounded number of
// passes.  At extreme latitudes a body can stay above or below the target
// altitude all day; that is reported as a distinct Status, never as an
// error and never as a made-up time.
package rise

import (
	"math"

	"github.com/soniakeys/unit"

	"github.com/Greg50100/ha-meeus-astronomy/internal/interp"
	"github.com/Greg50100/ha-meeus-astronomy/sidereal"
)

// Status classifies a body's day with respect to the target altitude.
type Status int

const (
	// Normal means the body crosses the target altitude: rise and set
	// times are both valid.
	Normal Status = iota

	// AlwaysAbove means the body stays above the target altitude for the
	// whole day (circumpolar, polar day).  Only the transit time is valid.
	AlwaysAbove

	// AlwaysBelow means the body stays below the target altitude for the
	// whole day (polar night).  Only the transit time is valid.
	AlwaysBelow
)

func (s Status) String() string {
	switch s {
	case Normal:
		return "normal"
	case AlwaysAbove:
		return "always above"
	case AlwaysBelow:
		return "always below"
	}
	return "invalid status"
}

// Ephemeris returns the geocentric apparent right ascension and
// declination of a body at a dynamical time jde.
type Ephemeris func(jde float64) (α unit.RA, δ unit.Angle)

// Times holds the results of Compute: Julian Day values on the same time
// scale as the jd0 argument.  Rise and Set are valid only when Status is
// Normal; Transit is always valid.
type Times struct {
	Status            Status
	Rise, Transit, Set float64
}

// mean sidereal advance, degrees per UT day
const dailyMotion = 360.985647

// number of interpolation refinement passes; the method converges to
// better than a second in this many
const passes = 3

// Compute finds the times during the day [jd0, jd0+1) at which a body's
// geocentric altitude crosses h0, and its meridian transit.  lat and lon
// are the observer's geographic coordinates, longitude positive east.  ΔT
// is TD-UT in seconds, applied when sampling the ephemeris.
func Compute(eph Ephemeris, h0, lat, lon unit.Angle, jd0, ΔT float64) Times {
	Θ0 := sidereal.Apparent(jd0).Deg()
	ΔTd := ΔT / 86400

	// samples at universal times jd0-1, jd0, jd0+1, so the tabular
	// midpoint sits at interpolating factor m = 0
	var αd, δd [3]float64
	for i := range αd {
		α, δ := eph(jd0 + float64(i-1) + ΔTd)
		αd[i] = α.Deg()
		δd[i] = δ.Deg()
	}
	unwrap(&αd)
	iα := interp.NewLen3(αd[0], αd[1], αd[2])
	iδ := interp.NewLen3(δd[0], δd[1], δd[2])

	sφ, cφ := lat.Sincos()
	// Meeus reckons longitude positive west
	L := -lon.Deg()

	m0 := unit.PMod((αd[1]+L-Θ0)/360, 1)
	t := Times{Transit: jd0 + refineTransit(iα, Θ0, L, m0)}

	sδ2, cδ2 := unit.AngleFromDeg(δd[1]).Sincos()
	cH0 := (h0.Sin() - sφ*sδ2) / (cφ * cδ2)
	switch {
	case cH0 < -1:
		t.Status = AlwaysAbove
		return t
	case cH0 > 1:
		t.Status = AlwaysBelow
		return t
	}
	H0 := math.Acos(cH0) * 180 / math.Pi

	t.Rise = jd0 + refineCrossing(iα, iδ, Θ0, L, sφ, cφ, h0,
		unit.PMod(m0-H0/360, 1))
	t.Set = jd0 + refineCrossing(iα, iδ, Θ0, L, sφ, cφ, h0,
		unit.PMod(m0+H0/360, 1))
	return t
}

// refineTransit drives the local hour angle to zero.
func refineTransit(iα interp.Len3, Θ0, L, m float64) float64 {
	for i := 0; i < passes; i++ {
		θ := Θ0 + dailyMotion*m
		α := iα.InterpolateN(m)
		H := wrap180(θ - L - α)
		m -= H / 360
	}
	return m
}

// refineCrossing corrects m from the altitude miss at the current
// estimate, Meeus's Δm = (h-h0) / (360 cos δ cos φ sin H).
func refineCrossing(iα, iδ interp.Len3, Θ0, L, sφ, cφ float64,
	h0 unit.Angle, m float64) float64 {

	for i := 0; i < passes; i++ {
		θ := Θ0 + dailyMotion*m
		α := iα.InterpolateN(m)
		δ := unit.AngleFromDeg(iδ.InterpolateN(m))
		sδ, cδ := δ.Sincos()
		H := wrap180(θ-L-α) * math.Pi / 180
		sH, cH := math.Sincos(H)
		h := math.Asin(sφ*sδ + cφ*cδ*cH)
		Δm := (h - h0.Rad()) * 180 / math.Pi /
			(360 * cδ * cφ * sH)
		m += Δm
	}
	return m
}

// wrap180 reduces an angle in degrees to (-180, 180].
func wrap180(d float64) float64 {
	d = unit.PMod(d, 360)
	if d > 180 {
		d -= 360
	}
	return d
}

// unwrap adjusts three right ascension samples for wrap through 360° so
// they interpolate as a monotonic sequence.
func unwrap(α *[3]float64) {
	for i := 1; i < 3; i++ {
		for α[i]-α[i-1] > 180 {
			α[i] -= 360
		}
		for α[i]-α[i-1] < -180 {
			α[i] += 360
		}
	}
}
