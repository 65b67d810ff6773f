// Public domain.

package solar_test

import (
	"math"
	"testing"

	"github.com/soniakeys/meeus/v3/base"

	"github.com/Greg50100/ha-meeus-astronomy/solar"
)

// Meeus 25.a: 1992 October 13, 0h TD.
const jd25a = 2448908.5

func TestMeanElements(t *testing.T) {
	T := base.J2000Century(jd25a)
	if got := solar.MeanLongitude(T).Deg(); math.Abs(got-201.80720) > 1e-4 {
		t.Errorf("L0 = %f°, want 201.80720°", got)
	}
	if got := solar.MeanAnomaly(T).Deg(); math.Abs(got-278.99397) > 1e-4 {
		t.Errorf("M = %f°, want 278.99397°", got)
	}
	if got := solar.Eccentricity(T); math.Abs(got-.016711668) > 1e-8 {
		t.Errorf("e = %f, want 0.016711668", got)
	}
}

func TestCenterAndTrueLongitude(t *testing.T) {
	T := base.J2000Century(jd25a)
	if got := solar.Center(T).Deg(); math.Abs(got-(-1.89732)) > 1e-4 {
		t.Errorf("C = %f°, want -1.89732°", got)
	}
	if got := solar.TrueLongitude(T).Deg(); math.Abs(got-199.90988) > 2e-4 {
		t.Errorf("Θ = %f°, want 199.90988°", got)
	}
}

func TestRadius(t *testing.T) {
	T := base.J2000Century(jd25a)
	if got := solar.Radius(T); math.Abs(got-.99766) > 1e-4 {
		t.Errorf("R = %f AU, want 0.99766", got)
	}
}

func TestApparentLongitude(t *testing.T) {
	if got := solar.ApparentLongitude(jd25a).Deg(); math.Abs(got-199.90895) > 2e-4 {
		t.Errorf("λ = %f°, want 199.90895°", got)
	}
}

func TestApparentEquatorial(t *testing.T) {
	α, δ, R := solar.ApparentEquatorial(jd25a)
	if got := α.Deg(); math.Abs(got-198.38083) > .01 {
		t.Errorf("α = %f°, want 198.38083°", got)
	}
	if got := δ.Deg(); math.Abs(got-(-7.78507)) > .01 {
		t.Errorf("δ = %f°, want -7.78507°", got)
	}
	if math.Abs(R-.99766) > 1e-4 {
		t.Errorf("R = %f AU, want 0.99766", R)
	}
}

func TestEquationOfTime(t *testing.T) {
	// Meeus 28.a: 1992 October 13, E = 13m42.6s
	want := 13*60 + 42.6
	if got := solar.EquationOfTime(jd25a).Sec(); math.Abs(got-want) > 5 {
		t.Errorf("E = %fs, want %fs", got, want)
	}
	// E changes sign through the year; near April 15 it is close to zero
	jdApr := 2448727.5 // 1992 April 14.0 TD
	if got := solar.EquationOfTime(jdApr).Sec(); math.Abs(got) > 120 {
		t.Errorf("E in mid-April = %fs, want within ±120s of 0", got)
	}
}
