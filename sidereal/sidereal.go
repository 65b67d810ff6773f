// Public domain.

// Package sidereal computes Greenwich and local sidereal time, the angle
// relating right ascension to an observer's meridian.  Meeus chapter 12.
package sidereal

import (
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"

	"github.com/Greg50100/ha-meeus-astronomy/transform"
)

// Mean returns Greenwich mean sidereal time at jd as an angle in [0, 2π),
// from the IAU 1982 series (Meeus 12.4).
func Mean(jd float64) unit.Angle {
	t := base.J2000Century(jd)
	θ := 280.46061837 + 360.98564736629*(jd-base.J2000) +
		t*t*(.000387933-t/38710000)
	return unit.AngleFromDeg(unit.PMod(θ, 360))
}

// Apparent returns Greenwich apparent sidereal time: mean sidereal time
// corrected by the equation of the equinoxes.
func Apparent(jd float64) unit.Angle {
	Δψ, _ := transform.Nutation(jd)
	ε := transform.TrueObliquity(jd)
	return (Mean(jd) + Δψ.Mul(ε.Cos())).Mod1()
}

// Local returns local apparent sidereal time for a geographic longitude,
// positive east, normalized to [0, 2π).
func Local(jd float64, lon unit.Angle) unit.Angle {
	return (Apparent(jd) + lon).Mod1()
}
