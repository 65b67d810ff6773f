// Public domain.

package julian_test

import (
	"math"
	"testing"
	"time"

	"github.com/Greg50100/ha-meeus-astronomy/julian"
)

// worked examples from Meeus chapter 7.  Dates before the 1582 reform are
// Julian calendar dates, as the cutover mode interprets them.
var jdCases = []struct {
	y, m int
	d    float64
	jd   float64
}{
	{2000, 1, 1.5, 2451545},
	{1999, 1, 1, 2451179.5},
	{1987, 6, 19.5, 2446966},
	{1988, 1, 27, 2447187.5},
	{1957, 10, 4.81, 2436116.31},
	{1900, 1, 1, 2415020.5},
	{1600, 1, 1, 2305447.5},
	{1600, 12, 31, 2305812.5},
	{837, 4, 10.3, 2026871.8},
	{333, 1, 27.5, 1842713},
	{-1000, 7, 12.5, 1356001},
	{-4712, 1, 1.5, 0},
}

func TestCalendarToJD(t *testing.T) {
	for _, c := range jdCases {
		jd, err := julian.CalendarToJD(c.y, c.m, c.d, julian.GregorianCutover)
		if err != nil {
			t.Fatalf("CalendarToJD(%d, %d, %g): %v", c.y, c.m, c.d, err)
		}
		if math.Abs(jd-c.jd) > 1e-6 {
			t.Errorf("CalendarToJD(%d, %d, %g) = %f, want %f",
				c.y, c.m, c.d, jd, c.jd)
		}
	}
}

func TestJDToCalendarRoundTrip(t *testing.T) {
	for _, c := range jdCases {
		y, m, d := julian.JDToCalendar(c.jd)
		if y != c.y || m != c.m || math.Abs(d-c.d) > 1e-6 {
			t.Errorf("JDToCalendar(%f) = %d, %d, %f, want %d, %d, %g",
				c.jd, y, m, d, c.y, c.m, c.d)
		}
	}
}

func TestReformGap(t *testing.T) {
	if _, err := julian.CalendarToJD(1582, 10, 10, julian.GregorianCutover); err != julian.ErrDateRange {
		t.Errorf("date in reform gap: got err %v, want ErrDateRange", err)
	}
	// the same date exists in proleptic Gregorian mode
	if _, err := julian.CalendarToJD(1582, 10, 10, julian.GregorianProleptic); err != nil {
		t.Errorf("proleptic Gregorian: unexpected err %v", err)
	}
	if _, err := julian.CalendarToJD(-5000, 1, 1, julian.GregorianProleptic); err != julian.ErrDateRange {
		t.Errorf("year -5000: got err %v, want ErrDateRange", err)
	}
}

func TestTimeToJDMonotonic(t *testing.T) {
	t0 := time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := julian.TimeToJD(t0)
	for i := 1; i < 1000; i++ {
		jd := julian.TimeToJD(t0.Add(time.Duration(i) * 37 * time.Hour))
		if jd <= prev {
			t.Fatalf("TimeToJD not monotonic at step %d: %f <= %f",
				i, jd, prev)
		}
		prev = jd
	}
}

func TestTimeRoundTrip(t *testing.T) {
	cases := []time.Time{
		time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(1969, 7, 20, 20, 17, 40, 0, time.UTC),
		time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
	}
	for _, c := range cases {
		got := julian.JDToTime(julian.TimeToJD(c))
		if d := got.Sub(c); d < -time.Millisecond || d > time.Millisecond {
			t.Errorf("round trip %v = %v", c, got)
		}
	}
}

func TestTimeToJDEpochs(t *testing.T) {
	j2000 := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	if jd := julian.TimeToJD(j2000); math.Abs(jd-2451545) > 1e-9 {
		t.Errorf("J2000 = %f, want 2451545", jd)
	}
	if c := julian.J2000Century(2451545 + 36525); math.Abs(c-1) > 1e-12 {
		t.Errorf("J2000Century one century out = %f", c)
	}
}

// spot checks against the tabulated ΔT values Espenak and Meeus fit:
// the polynomial is an approximation, so tolerances are generous.
func TestDeltaT(t *testing.T) {
	cases := []struct {
		year, want, tol float64
	}{
		{2000, 63.8, 1},
		{1990, 56.9, 1},
		{1955, 31.1, 1},
		{1900, -2.8, 1.5},
		{1800, 13.7, 2},
		{1600, 120, 20},
		{900, 2200, 200},
		{-400, 15500, 1000},
	}
	for _, c := range cases {
		got := julian.DeltaT(c.year).Sec()
		if math.Abs(got-c.want) > c.tol {
			t.Errorf("DeltaT(%g) = %f, want %f ± %g",
				c.year, got, c.want, c.tol)
		}
	}
}

func TestDeltaTContinuity(t *testing.T) {
	// era boundaries should not jump by more than a few seconds
	for _, y := range []float64{-500, 500, 1600, 1700, 1800, 1860,
		1900, 1920, 1941, 1961, 1986, 2005, 2050, 2150} {
		lo := julian.DeltaT(y - .01).Sec()
		hi := julian.DeltaT(y + .01).Sec()
		if d := math.Abs(hi - lo); d > 15 {
			t.Errorf("DeltaT discontinuous at %g: %f vs %f", y, lo, hi)
		}
	}
}
