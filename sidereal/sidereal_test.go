// Public domain.

package sidereal_test

import (
	"math"
	"testing"

	"github.com/soniakeys/unit"

	"github.com/Greg50100/ha-meeus-astronomy/sidereal"
)

// Meeus 12.a: 1987 April 10, 0h UT.
const jd12a = 2446895.5

func TestMean(t *testing.T) {
	// 13h10m46.3668s
	want := 197.693195
	if got := sidereal.Mean(jd12a).Deg(); math.Abs(got-want) > 1e-4 {
		t.Errorf("Mean(%f) = %f°, want %f°", jd12a, got, want)
	}
}

func TestMeanWithTime(t *testing.T) {
	// Meeus 12.b: same date at 19h21m00s UT, GMST 8h34m57.0896s
	jd := jd12a + (19+21./60)/24
	want := (8 + 34./60 + 57.0896/3600) * 15
	if got := sidereal.Mean(jd).Deg(); math.Abs(got-want) > 1e-3 {
		t.Errorf("Mean(%f) = %f°, want %f°", jd, got, want)
	}
}

func TestApparent(t *testing.T) {
	// Meeus 12.a: apparent sidereal time 13h10m46.1351s
	want := (13 + 10./60 + 46.1351/3600) * 15
	if got := sidereal.Apparent(jd12a).Deg(); math.Abs(got-want) > 2e-3 {
		t.Errorf("Apparent(%f) = %f°, want %f°", jd12a, got, want)
	}
}

func TestLocal(t *testing.T) {
	// local sidereal time is Greenwich plus east longitude
	lon := unit.AngleFromDeg(30)
	g := sidereal.Apparent(jd12a).Deg()
	l := sidereal.Local(jd12a, lon).Deg()
	if d := math.Mod(l-g-30+720, 360); d > 1e-9 && d < 360-1e-9 {
		t.Errorf("Local - Apparent = %f°, want 30°", l-g)
	}
	// and it stays normalized
	if l < 0 || l >= 360 {
		t.Errorf("Local = %f°, outside [0, 360)", l)
	}
}
