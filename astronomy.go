// Public domain.

// Package astronomy computes positions and events of the Sun and Moon from
// the reduced-precision algorithms in Jean Meeus, "Astronomical
// Algorithms" (2nd edition).
//
// The package is a pure computation library: every function is a
// deterministic function of its explicit arguments, holds no state,
// performs no I/O, and is safe for unsynchronized concurrent use.  The
// caller, typically a scheduler or sensor layer, decides when to call and
// what to do with the results.
//
// Geographic longitude is positive east throughout, and azimuth is
// measured from north through east.  All returned times are UTC.
package astronomy

import (
	"errors"
	"time"

	"github.com/soniakeys/unit"

	"github.com/Greg50100/ha-meeus-astronomy/julian"
)

// Body identifies a celestial body handled by this package.
type Body int

const (
	Sun Body = iota
	Moon
)

func (b Body) String() string {
	switch b {
	case Sun:
		return "Sun"
	case Moon:
		return "Moon"
	}
	return "invalid body"
}

// ErrLocation is returned for latitudes outside ±90° or longitudes
// outside ±180°.
var ErrLocation = errors.New("astronomy: latitude or longitude out of range")

// Location is an observer position on Earth.
type Location struct {
	Lat unit.Angle // geographic latitude, north positive
	Lon unit.Angle // geographic longitude, east positive

	// Elevation in meters above the surrounding horizon.  It lowers the
	// rise and set altitude by the standard horizon dip; positions and
	// altitude crossings are unaffected.
	Elevation float64
}

// NewLocation validates and returns an observer location given latitude
// and longitude in degrees and elevation in meters.
func NewLocation(latDeg, lonDeg, elevation float64) (Location, error) {
	if latDeg < -90 || latDeg > 90 || lonDeg < -180 || lonDeg > 180 {
		return Location{}, ErrLocation
	}
	return Location{
		Lat:       unit.AngleFromDeg(latDeg),
		Lon:       unit.AngleFromDeg(lonDeg),
		Elevation: elevation,
	}, nil
}

// Options carries the per-call configuration knobs.  The zero value is
// valid: refraction off, proleptic Gregorian calendar.  Options values are
// never retained or mutated by this package.
type Options struct {
	// Refraction selects whether the standard atmospheric refraction
	// correction is applied to rise/set altitudes and to Horizontal.
	Refraction bool

	// Calendar selects the calendar mode for date conversions.
	Calendar julian.Calendar
}

// DefaultOptions returns the options most callers want: refraction on,
// proleptic Gregorian dates.
func DefaultOptions() Options {
	return Options{Refraction: true}
}

// EclipticCoord is an ecliptic position: longitude along the ecliptic
// from the equinox, latitude perpendicular to it.
type EclipticCoord struct {
	Lon, Lat unit.Angle
}

// EquatorialCoord is an equatorial position: right ascension and
// declination.
type EquatorialCoord struct {
	RA  unit.RA
	Dec unit.Angle
}

// HorizontalCoord is a topocentric direction: altitude above the horizon
// and azimuth from north through east.
type HorizontalCoord struct {
	Az, Alt unit.Angle
}

// BodyState is a snapshot of a body at one instant.  For the Sun, Distance
// is in AU; for the Moon, in km, and PhaseAngle and Illuminated are set.
type BodyState struct {
	Body       Body
	Time       time.Time
	JD         float64 // Julian Day of Time (universal time scale)
	Ecliptic   EclipticCoord
	Equatorial EquatorialCoord
	Distance   float64

	PhaseAngle  unit.Angle // Moon only
	Illuminated float64    // Moon only, fraction of the disk, 0..1
}

// EventKind labels a computed event.
type EventKind int

const (
	Rise EventKind = iota
	Transit
	Set
	NewMoon
	FirstQuarterMoon
	FullMoon
	LastQuarterMoon
	AltitudeCrossing
)

func (k EventKind) String() string {
	switch k {
	case Rise:
		return "rise"
	case Transit:
		return "transit"
	case Set:
		return "set"
	case NewMoon:
		return "new moon"
	case FirstQuarterMoon:
		return "first quarter"
	case FullMoon:
		return "full moon"
	case LastQuarterMoon:
		return "last quarter"
	case AltitudeCrossing:
		return "altitude crossing"
	}
	return "invalid event"
}

// Event is a computed (kind, instant) pair.
type Event struct {
	Kind EventKind
	Time time.Time
}
