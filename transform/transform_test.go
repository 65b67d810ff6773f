// Public domain.

package transform_test

import (
	"math"
	"testing"

	"github.com/soniakeys/unit"

	"github.com/Greg50100/ha-meeus-astronomy/transform"
)

func TestMeanObliquityJ2000(t *testing.T) {
	// 23°26′21.448″ at the epoch
	want := 23 + 26./60 + 21.448/3600
	if got := transform.MeanObliquity(2451545).Deg(); math.Abs(got-want) > 1e-9 {
		t.Errorf("MeanObliquity(J2000) = %.9f°, want %.9f°", got, want)
	}
}

func TestNutation(t *testing.T) {
	// Meeus 22.a: 1987 April 10, Δψ = -3.788″, Δε = +9.443″ from the full
	// series; the short series is good to about half an arcsecond.
	Δψ, Δε := transform.Nutation(2446895.5)
	if got := Δψ.Sec(); math.Abs(got-(-3.788)) > .6 {
		t.Errorf("Δψ = %f″, want -3.788″", got)
	}
	if got := Δε.Sec(); math.Abs(got-9.443) > .6 {
		t.Errorf("Δε = %f″, want 9.443″", got)
	}
}

// Meeus 13.a: Pollux.
var (
	polluxα = unit.RAFromDeg(116.328942)
	polluxδ = unit.AngleFromDeg(28.026183)
	polluxλ = 113.215630
	polluxβ = 6.684170
	ε0      = unit.AngleFromDeg(23.4392911)
)

func TestEqToEcl(t *testing.T) {
	λ, β := transform.EqToEcl(polluxα, polluxδ, ε0)
	if got := λ.Deg(); math.Abs(got-polluxλ) > 1e-5 {
		t.Errorf("λ = %f°, want %f°", got, polluxλ)
	}
	if got := β.Deg(); math.Abs(got-polluxβ) > 1e-5 {
		t.Errorf("β = %f°, want %f°", got, polluxβ)
	}
}

func TestEclToEq(t *testing.T) {
	α, δ := transform.EclToEq(unit.AngleFromDeg(polluxλ),
		unit.AngleFromDeg(polluxβ), ε0)
	if got := α.Deg(); math.Abs(got-polluxα.Deg()) > 1e-5 {
		t.Errorf("α = %f°, want %f°", got, polluxα.Deg())
	}
	if got := δ.Deg(); math.Abs(got-polluxδ.Deg()) > 1e-5 {
		t.Errorf("δ = %f°, want %f°", got, polluxδ.Deg())
	}
}

func TestEqToHoriz(t *testing.T) {
	// Meeus 13.b: Venus from the US Naval Observatory, 1987 April 10,
	// 19h21m UT.  Azimuth here is from north, so the book's 68.0337°
	// from south becomes 248.0337°.
	α := unit.RAFromDeg(347.3193)
	δ := unit.AngleFromDeg(-6.719892)
	φ := unit.AngleFromDeg(38.921389)
	θloc := unit.AngleFromDeg(128.736886 - 77.065556)
	az, alt := transform.EqToHoriz(α, δ, φ, θloc)
	if got := alt.Deg(); math.Abs(got-15.1249) > .01 {
		t.Errorf("alt = %f°, want 15.1249°", got)
	}
	if got := az.Deg(); math.Abs(got-248.0337) > .01 {
		t.Errorf("az = %f°, want 248.0337°", got)
	}
}

func TestAzimuthConvention(t *testing.T) {
	// a star on the celestial equator rising due east of an equatorial
	// observer: hour angle -90° puts it at azimuth 90°, altitude 0
	α := unit.RAFromDeg(100)
	θloc := unit.AngleFromDeg(10) // H = -90°
	az, alt := transform.EqToHoriz(α, 0, 0, θloc)
	if got := az.Deg(); math.Abs(got-90) > 1e-9 {
		t.Errorf("az = %f°, want 90°", got)
	}
	if got := alt.Deg(); math.Abs(got) > 1e-9 {
		t.Errorf("alt = %f°, want 0°", got)
	}
}

func TestRefraction(t *testing.T) {
	cases := []struct {
		alt, want, tol float64 // degrees
	}{
		{0, .478, .03},  // about 28.7′ at the horizon
		{5, .164, .01},  // 9.9′
		{45, .0165, .002},
		{90, 0, .001},
	}
	for _, c := range cases {
		got := transform.Refraction(unit.AngleFromDeg(c.alt)).Deg()
		if math.Abs(got-c.want) > c.tol {
			t.Errorf("Refraction(%g°) = %f°, want %f° ± %g",
				c.alt, got, c.want, c.tol)
		}
	}
	if got := transform.Refraction(unit.AngleFromDeg(-2)); got != 0 {
		t.Errorf("Refraction(-2°) = %v, want 0", got)
	}
}
