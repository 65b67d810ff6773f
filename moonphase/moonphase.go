// Public domain.

// Package moonphase computes the instants of the principal lunar phases
// from the mean-phase lunation series of Meeus chapter 49: a mean phase
// time indexed by lunation number, corrected by periodic series specific
// to each phase.  The direct series is far cheaper than root-finding over
// the lunar position and is the standard approach.
//
// Returned times are Julian Ephemeris Days (dynamical time); callers
// working in universal time subtract ΔT.
package moonphase

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"
)

// Kind identifies one of the four principal phases.
type Kind int

const (
	New Kind = iota
	FirstQuarter
	Full
	LastQuarter
)

func (k Kind) String() string {
	switch k {
	case New:
		return "new moon"
	case FirstQuarter:
		return "first quarter"
	case Full:
		return "full moon"
	case LastQuarter:
		return "last quarter"
	}
	return "invalid phase"
}

// MeanLunation is the mean length of the synodic month in days.
const MeanLunation = 29.530588861

// mean new moon of lunation k, Meeus (49.1), and the century time (49.3).
func mean(k float64) (jde, T float64) {
	T = k / 1236.85
	jde = 2451550.09766 + MeanLunation*k +
		T*T*(.00015437+T*(-.000000150+.00000000073*T))
	return
}

// arguments of the correction series at lunation k, Meeus (49.4)-(49.7).
type args struct {
	e          float64
	m, mp, f, ω float64 // radians
}

func phaseArgs(k, T float64) args {
	deg := func(d float64) float64 {
		return unit.AngleFromDeg(unit.PMod(d, 360)).Rad()
	}
	return args{
		e: base.Horner(T, 1, -.002516, -.0000074),
		m: deg(2.5534 + 29.1053567*k +
			T*T*(-.0000014-.00000011*T)),
		mp: deg(201.5643 + 385.81693528*k +
			T*T*(.0107582+T*(.00001238-.000000058*T))),
		f: deg(160.7108 + 390.67050284*k +
			T*T*(-.0016118+T*(-.00000227+.000000011*T))),
		ω: deg(124.7746 - 1.56375588*k +
			T*T*(.0020672+.00000215*T)),
	}
}

// planetary perturbation terms, Meeus table 49.A.
func additional(k, T float64) float64 {
	deg := func(d float64) float64 {
		return unit.AngleFromDeg(unit.PMod(d, 360)).Rad()
	}
	return .000325*math.Sin(deg(299.77+.107408*k-.009173*T*T)) +
		.000165*math.Sin(deg(251.88+.016321*k)) +
		.000164*math.Sin(deg(251.83+26.651886*k)) +
		.000126*math.Sin(deg(349.42+36.412478*k)) +
		.000110*math.Sin(deg(84.66+18.206239*k)) +
		.000062*math.Sin(deg(141.74+53.303771*k)) +
		.000060*math.Sin(deg(207.14+2.453732*k)) +
		.000056*math.Sin(deg(154.84+7.30686*k)) +
		.000047*math.Sin(deg(34.52+27.261239*k)) +
		.000042*math.Sin(deg(207.19+.121824*k)) +
		.000040*math.Sin(deg(291.34+1.844379*k)) +
		.000037*math.Sin(deg(161.72+24.198154*k)) +
		.000035*math.Sin(deg(239.56+25.513099*k)) +
		.000023*math.Sin(deg(331.55+3.592518*k))
}

// newFullCorrection evaluates the periodic series for new and full moons.
// The two series differ only in the first two coefficients.
func newFullCorrection(a args, c0, c1 float64) float64 {
	e, m, mp, f, ω := a.e, a.m, a.mp, a.f, a.ω
	return c0*math.Sin(mp) +
		c1*e*math.Sin(m) +
		.01608*math.Sin(2*mp) +
		.01039*math.Sin(2*f) +
		.00739*e*math.Sin(mp-m) -
		.00514*e*math.Sin(mp+m) +
		.00208*e*e*math.Sin(2*m) -
		.00111*math.Sin(mp-2*f) -
		.00057*math.Sin(mp+2*f) +
		.00056*e*math.Sin(2*mp+m) -
		.00042*math.Sin(3*mp) +
		.00042*e*math.Sin(m+2*f) +
		.00038*e*math.Sin(m-2*f) -
		.00024*e*math.Sin(2*mp-m) -
		.00017*math.Sin(ω) -
		.00007*math.Sin(mp+2*m) +
		.00004*math.Sin(2*mp-2*f) +
		.00004*math.Sin(3*m) +
		.00003*math.Sin(mp+m-2*f) +
		.00003*math.Sin(2*mp+2*f) -
		.00003*math.Sin(mp+m+2*f) +
		.00003*math.Sin(mp-m+2*f) -
		.00002*math.Sin(mp-m-2*f) -
		.00002*math.Sin(3*mp+m) +
		.00002*math.Sin(4*mp)
}

// quarterCorrection evaluates the periodic series for the quarters, with
// the W term applied with sign +1 for first quarter, -1 for last.
func quarterCorrection(a args, sign float64) float64 {
	e, m, mp, f, ω := a.e, a.m, a.mp, a.f, a.ω
	c := -.62801*math.Sin(mp) +
		.17172*e*math.Sin(m) -
		.01183*e*math.Sin(mp+m) +
		.00862*math.Sin(2*mp) +
		.00804*math.Sin(2*f) +
		.00454*e*math.Sin(mp-m) +
		.00204*e*e*math.Sin(2*m) -
		.0018*math.Sin(mp-2*f) -
		.0007*math.Sin(mp+2*f) -
		.0004*math.Sin(3*mp) -
		.00034*e*math.Sin(2*mp-m) +
		.00032*e*math.Sin(m+2*f) +
		.00032*e*math.Sin(m-2*f) -
		.00028*e*e*math.Sin(mp+2*m) +
		.00027*e*math.Sin(2*mp+m) -
		.00017*math.Sin(ω) -
		.00005*math.Sin(mp-m-2*f) +
		.00004*math.Sin(2*mp+2*f) -
		.00004*math.Sin(mp+m+2*f) +
		.00004*math.Sin(mp-2*m) +
		.00003*math.Sin(mp+m-2*f) +
		.00003*math.Sin(3*m) +
		.00002*math.Sin(2*mp-2*f) +
		.00002*math.Sin(mp-m+2*f) -
		.00002*math.Sin(3*mp+m)
	w := .00306 - .00038*a.e*math.Cos(m) + .00026*math.Cos(mp) -
		.00002*math.Cos(mp-m) + .00002*math.Cos(mp+m) +
		.00002*math.Cos(2*f)
	return c + sign*w
}

// At returns the JDE of the phase of the given kind in lunation k, where
// k is an integer lunation number counted from the new moon of
// 2000 January 6 (negative before).
func At(kind Kind, k int) float64 {
	kf := float64(k) + float64(kind)*.25
	jde, T := mean(kf)
	a := phaseArgs(kf, T)
	switch kind {
	case New:
		jde += newFullCorrection(a, -.4072, .17241)
	case Full:
		jde += newFullCorrection(a, -.40614, .17302)
	case FirstQuarter:
		jde += quarterCorrection(a, 1)
	case LastQuarter:
		jde += quarterCorrection(a, -1)
	}
	return jde + additional(kf, T)
}

// Nearest returns the JDE of the occurrence of the given phase nearest to
// jd.  The candidate may fall in the lunation before or after the one
// containing jd; the smallest absolute time difference wins, so results
// are stable across month boundaries.
func Nearest(kind Kind, jd float64) float64 {
	year := 2000 + (jd-base.J2000)/365.25
	k := int(math.Round((year-2000)*12.3685 - float64(kind)*.25))
	best := At(kind, k)
	for _, kc := range []int{k - 1, k + 1} {
		if c := At(kind, kc); math.Abs(c-jd) < math.Abs(best-jd) {
			best = c
		}
	}
	return best
}
