// Public domain.

// Package julian converts between calendar dates and Julian Day numbers.
//
// The Julian Day is the continuous day count used as the time axis by all
// other packages in this module.  Conversion formulas are from Meeus,
// chapter 7.  All conversions are deterministic; the only failure mode is
// a date outside the supported range of the formulas.
package julian

import (
	"errors"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/base"
)

// Calendar selects how calendar dates map to Julian Days.
type Calendar int

const (
	// GregorianProleptic applies the Gregorian leap rule to all dates,
	// including dates before the 1582 calendar reform.
	GregorianProleptic Calendar = iota

	// GregorianCutover applies the Julian calendar through 1582 October 4
	// and the Gregorian calendar from 1582 October 15.  Dates inside the
	// reform gap do not exist.
	GregorianCutover

	// JulianCalendar applies the Julian leap rule to all dates.
	JulianCalendar
)

// ErrDateRange is returned for dates before -4712 January 1 and for dates
// that do not exist in the selected calendar.
var ErrDateRange = errors.New("julian: date outside supported calendar range")

// CalendarToJD returns the Julian Day for a calendar date.  The day may
// carry a fraction; 0h begins at day fraction .0, noon at .5.
func CalendarToJD(y, m int, d float64, cal Calendar) (float64, error) {
	if m < 1 || m > 12 || y < -4712 {
		return 0, ErrDateRange
	}
	julianRule := cal == JulianCalendar
	if cal == GregorianCutover {
		switch {
		case y < 1582, y == 1582 && m < 10, y == 1582 && m == 10 && d < 5:
			julianRule = true
		case y == 1582 && m == 10 && d < 15:
			// the ten days dropped by the Gregorian reform
			return 0, ErrDateRange
		}
	}
	if m <= 2 {
		y--
		m += 12
	}
	var b float64
	if !julianRule {
		a := math.Floor(float64(y) / 100)
		b = 2 - a + math.Floor(a/4)
	}
	return math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		d + b - 1524.5, nil
}

// JDToCalendar returns the calendar date for a Julian Day.  Dates from
// JD 2299160.5 on are Gregorian, earlier dates Julian, matching
// GregorianCutover.  Valid for non-negative jd.
func JDToCalendar(jd float64) (y, m int, d float64) {
	z, f := math.Modf(jd + .5)
	a := z
	if z >= 2299161 {
		α := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + α - math.Floor(α/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	da := math.Floor(365.25 * c)
	e := math.Floor((b - da) / 30.6001)
	d = b - da - math.Floor(30.6001*e) + f
	if e < 14 {
		m = int(e) - 1
	} else {
		m = int(e) - 13
	}
	if m > 2 {
		y = int(c) - 4716
	} else {
		y = int(c) - 4715
	}
	return
}

// TimeToJD returns the Julian Day for a time.Time.  The Go time package is
// proleptic Gregorian, so no calendar selection applies.
func TimeToJD(t time.Time) float64 {
	t = t.UTC()
	return 2440587.5 + (float64(t.Unix())+float64(t.Nanosecond())*1e-9)/86400
}

// JDToTime returns the time.Time for a Julian Day, in UTC, rounded to the
// nearest millisecond.  Sub-millisecond precision is below the accuracy of
// everything computed from low-precision theory.
func JDToTime(jd float64) time.Time {
	d := (jd - 2440587.5) * 86400
	sec, frac := math.Modf(d)
	ms := math.Round(frac * 1e3)
	return time.Unix(int64(sec), int64(ms)*int64(time.Millisecond)).UTC()
}

// J2000Century returns the time in Julian centuries from the J2000.0 epoch.
func J2000Century(jd float64) float64 {
	return base.J2000Century(jd)
}

// YearOf returns the decimal Gregorian year of a Julian Day, the argument
// form DeltaT expects.
func YearOf(jd float64) float64 {
	return 2000 + (jd-base.J2000+.5)/365.2425
}
