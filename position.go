// Public domain.

package astronomy

import (
	"time"

	"github.com/soniakeys/unit"

	"github.com/Greg50100/ha-meeus-astronomy/julian"
	"github.com/Greg50100/ha-meeus-astronomy/lunar"
	"github.com/Greg50100/ha-meeus-astronomy/sidereal"
	"github.com/Greg50100/ha-meeus-astronomy/solar"
	"github.com/Greg50100/ha-meeus-astronomy/transform"
)

// JulianDay converts a calendar date to a Julian Day under the calendar
// mode selected in opt.  The day may carry a fraction.
func JulianDay(y, m int, d float64, opt Options) (float64, error) {
	return julian.CalendarToJD(y, m, d, opt.Calendar)
}

// jdeOf returns the Julian Day of t and the corresponding dynamical time.
func jdeOf(t time.Time) (jd, jde float64) {
	jd = julian.TimeToJD(t)
	return jd, jd + julian.DeltaT(julian.YearOf(jd)).Day()
}

// SunState returns the apparent state of the Sun at t.
func SunState(t time.Time) (BodyState, error) {
	if t.Year() < -4712 {
		return BodyState{}, julian.ErrDateRange
	}
	jd, jde := jdeOf(t)
	α, δ, r := solar.ApparentEquatorial(jde)
	return BodyState{
		Body: Sun,
		Time: t,
		JD:   jd,
		Ecliptic: EclipticCoord{
			Lon: solar.ApparentLongitude(jde),
			Lat: 0,
		},
		Equatorial: EquatorialCoord{RA: α, Dec: δ},
		Distance:   r,
	}, nil
}

// MoonState returns the apparent state of the Moon at t, including its
// phase angle and illuminated fraction.
func MoonState(t time.Time) (BodyState, error) {
	if t.Year() < -4712 {
		return BodyState{}, julian.ErrDateRange
	}
	jd, jde := jdeOf(t)
	λ, β, Δ := lunar.Position(jde)
	α, δ, _ := lunar.ApparentEquatorial(jde)
	i, k := lunar.PhaseAngle(jde)
	return BodyState{
		Body:        Moon,
		Time:        t,
		JD:          jd,
		Ecliptic:    EclipticCoord{Lon: λ, Lat: β},
		Equatorial:  EquatorialCoord{RA: α, Dec: δ},
		Distance:    Δ,
		PhaseAngle:  i,
		Illuminated: k,
	}, nil
}

// Horizontal converts a body state to altitude and azimuth for an
// observer.  With opt.Refraction set, the standard refraction correction
// is added to the altitude.
func Horizontal(s BodyState, loc Location, opt Options) HorizontalCoord {
	θ := sidereal.Local(s.JD, loc.Lon)
	az, alt := transform.EqToHoriz(s.Equatorial.RA, s.Equatorial.Dec,
		loc.Lat, θ)
	if s.Body == Moon {
		// first-order parallax correction: the topocentric altitude of
		// the nearby Moon is lower by about π·cos h
		π := lunar.Parallax(s.Distance)
		alt -= π.Mul(alt.Cos())
	}
	if opt.Refraction {
		alt += transform.Refraction(alt)
	}
	return HorizontalCoord{Az: az, Alt: alt}
}

// LocalSiderealTime returns the local apparent sidereal time at t for an
// observer, as an angle in [0, 2π).  Divide by 15°/h to read it as a
// clock: this is the value a sidereal clock at loc shows.
func LocalSiderealTime(t time.Time, loc Location) unit.Angle {
	return sidereal.Local(julian.TimeToJD(t), loc.Lon)
}
