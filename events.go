// Public domain.

package astronomy

import (
	"math"
	"time"

	"github.com/soniakeys/unit"

	"github.com/Greg50100/ha-meeus-astronomy/julian"
	"github.com/Greg50100/ha-meeus-astronomy/lunar"
	"github.com/Greg50100/ha-meeus-astronomy/moonphase"
	"github.com/Greg50100/ha-meeus-astronomy/rise"
	"github.com/Greg50100/ha-meeus-astronomy/solar"
)

// DayEvents holds rise, transit, and set for one civil day.  Rise and Set
// are valid only when Status is rise.Normal; Transit is always valid.
type DayEvents struct {
	Status             rise.Status
	Rise, Transit, Set time.Time
}

// PhaseKind identifies a principal lunar phase for NearestPhase.
type PhaseKind = moonphase.Kind

// dayStart returns the Julian Day of local midnight beginning the civil
// day of date, in date's own zone, plus ΔT in seconds for that day.
func dayStart(date time.Time) (jd0, ΔT float64, err error) {
	y := date.Year()
	if y < -4712 {
		return 0, 0, julian.ErrDateRange
	}
	mid := time.Date(y, date.Month(), date.Day(), 0, 0, 0, 0,
		date.Location())
	jd0 = julian.TimeToJD(mid)
	ΔT = julian.DeltaT(julian.YearOf(jd0)).Sec()
	return jd0, ΔT, nil
}

// sunH0 is the standard altitude of the Sun's center at rise and set:
// 16′ of semidiameter, plus 34′ of horizon refraction when enabled.
func sunH0(opt Options) unit.Angle {
	if opt.Refraction {
		return unit.AngleFromMin(-50)
	}
	return unit.AngleFromMin(-16)
}

// moonH0 is the Moon's standard altitude, which depends on its horizontal
// parallax π: h0 = 0.7275π folds the mean semidiameter into the parallax
// term, and refraction subtracts a further 34′ when enabled.
func moonH0(π unit.Angle, opt Options) unit.Angle {
	h0 := π.Mul(.7275)
	if opt.Refraction {
		h0 -= unit.AngleFromMin(34)
	}
	return h0
}

// horizonDip is the depression of the sea horizon below the astronomical
// horizon for an observer elevated above it, the navigator's 1.75′·√h
// rule.
func horizonDip(elev float64) unit.Angle {
	if elev <= 0 {
		return 0
	}
	return unit.AngleFromMin(1.75 * math.Sqrt(elev))
}

// SunEvents returns sunrise, solar transit, and sunset for the civil day
// of date at loc.  The transit time is refined with the equation of time
// rather than by interpolation alone.
func SunEvents(loc Location, date time.Time, opt Options) (DayEvents, error) {
	if err := validate(loc); err != nil {
		return DayEvents{}, err
	}
	jd0, ΔT, err := dayStart(date)
	if err != nil {
		return DayEvents{}, err
	}
	h0 := sunH0(opt) - horizonDip(loc.Elevation)
	t := rise.Compute(sunEphemeris, h0, loc.Lat, loc.Lon, jd0, ΔT)
	t.Transit = solarTransit(loc.Lon, t.Transit, ΔT)
	return toDayEvents(t), nil
}

// MoonEvents returns moonrise, lunar transit, and moonset for the civil
// day of date at loc.  The standard altitude is parallax-adjusted from the
// Moon's distance at mid-day.
func MoonEvents(loc Location, date time.Time, opt Options) (DayEvents, error) {
	if err := validate(loc); err != nil {
		return DayEvents{}, err
	}
	jd0, ΔT, err := dayStart(date)
	if err != nil {
		return DayEvents{}, err
	}
	_, _, Δ := lunar.Position(jd0 + .5 + ΔT/86400)
	h0 := moonH0(lunar.Parallax(Δ), opt) - horizonDip(loc.Elevation)
	t := rise.Compute(moonEphemeris, h0, loc.Lat, loc.Lon, jd0, ΔT)
	return toDayEvents(t), nil
}

// Crossings returns the times at which the body's altitude crosses the
// target value during the civil day of date: the upward crossing as Rise,
// the downward as Set, and the meridian transit.  This is the primitive
// behind twilight times (target -6°, -12°, -18°) and custom elevation
// triggers.  Refraction does not apply: the target is a geometric
// altitude.
func Crossings(b Body, loc Location, date time.Time, target unit.Angle,
	opt Options) (DayEvents, error) {

	if err := validate(loc); err != nil {
		return DayEvents{}, err
	}
	jd0, ΔT, err := dayStart(date)
	if err != nil {
		return DayEvents{}, err
	}
	eph := sunEphemeris
	if b == Moon {
		eph = moonEphemeris
	}
	return toDayEvents(
		rise.Compute(eph, target, loc.Lat, loc.Lon, jd0, ΔT)), nil
}

// NearestPhase returns the instant of the occurrence of the given phase
// nearest to around, in UTC.  The result may precede around: the smallest
// absolute time difference wins.
func NearestPhase(kind PhaseKind, around time.Time) (time.Time, error) {
	if around.Year() < -4712 {
		return time.Time{}, julian.ErrDateRange
	}
	jd := julian.TimeToJD(around)
	ΔT := julian.DeltaT(julian.YearOf(jd)).Day()
	jde := moonphase.Nearest(kind, jd+ΔT)
	return julian.JDToTime(jde - ΔT), nil
}

// PhasesInYear returns the principal phases of a calendar year in time
// order, the batch form a precomputing scheduler wants once at year start.
func PhasesInYear(year int) []Event {
	kinds := []struct {
		pk PhaseKind
		ek EventKind
	}{
		{moonphase.New, NewMoon},
		{moonphase.FirstQuarter, FirstQuarterMoon},
		{moonphase.Full, FullMoon},
		{moonphase.LastQuarter, LastQuarterMoon},
	}
	var ev []Event
	for _, k := range kinds {
		// lunation numbers overlapping the year, with margin
		k0 := int(math.Floor(float64(year-2000) * 12.3685))
		for kn := k0 - 1; kn < k0+15; kn++ {
			jde := moonphase.At(k.pk, kn)
			ΔT := julian.DeltaT(julian.YearOf(jde)).Day()
			t := julian.JDToTime(jde - ΔT)
			if t.Year() == year {
				ev = append(ev, Event{Kind: k.ek, Time: t})
			}
		}
	}
	sortEvents(ev)
	return ev
}

func sortEvents(ev []Event) {
	// insertion sort; the slices here are tens of elements
	for i := 1; i < len(ev); i++ {
		for j := i; j > 0 && ev[j].Time.Before(ev[j-1].Time); j-- {
			ev[j], ev[j-1] = ev[j-1], ev[j]
		}
	}
}

func validate(loc Location) error {
	if math.Abs(loc.Lat.Deg()) > 90 || math.Abs(loc.Lon.Deg()) > 180 {
		return ErrLocation
	}
	return nil
}

func toDayEvents(t rise.Times) DayEvents {
	d := DayEvents{
		Status:  t.Status,
		Transit: julian.JDToTime(t.Transit),
	}
	if t.Status == rise.Normal {
		d.Rise = julian.JDToTime(t.Rise)
		d.Set = julian.JDToTime(t.Set)
	}
	return d
}

// solarTransit refines a first transit estimate with the equation of
// time: the Sun crosses the meridian when local apparent time is 12h, so
// the transit is local mean noon minus E.
func solarTransit(lon unit.Angle, approx, ΔT float64) float64 {
	// nearest local mean noon; an integer JD is noon at Greenwich
	lmn := math.Round(approx+lon.Deg()/360) - lon.Deg()/360
	tr := lmn
	for i := 0; i < 2; i++ {
		E := solar.EquationOfTime(tr + ΔT/86400)
		tr = lmn - E.Day()
	}
	return tr
}

func sunEphemeris(jde float64) (unit.RA, unit.Angle) {
	α, δ, _ := solar.ApparentEquatorial(jde)
	return α, δ
}

func moonEphemeris(jde float64) (unit.RA, unit.Angle) {
	α, δ, _ := lunar.ApparentEquatorial(jde)
	return α, δ
}
