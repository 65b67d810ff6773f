// Public domain.

// Command meeus-astronomy prints the day's astronomy for a location:
// local sidereal time, Sun and Moon positions, rise/transit/set, twilight
// times, and the nearest lunar phases.
//
// The location comes from flags, or from the environment (MEEUS_LATITUDE,
// MEEUS_LONGITUDE, MEEUS_ELEVATION, optionally via a .env file) so the
// command drops into supervised deployments without a wrapper script.
//
//	meeus-astronomy -lat 51.48 -lon 0 -date 2024-06-21
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/soniakeys/exit"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	astronomy "github.com/Greg50100/ha-meeus-astronomy"
	"github.com/Greg50100/ha-meeus-astronomy/moonphase"
	"github.com/Greg50100/ha-meeus-astronomy/rise"
)

type envDefaults struct {
	Latitude  float64
	Longitude float64
	Elevation float64
}

func main() {
	defer exit.Handler()

	// .env is optional; absence is not an error
	_ = godotenv.Load()
	var env envDefaults
	if err := envconfig.Process("meeus", &env); err != nil {
		exit.Log(err)
	}

	lat := flag.Float64("lat", env.Latitude, "latitude, degrees north")
	lon := flag.Float64("lon", env.Longitude, "longitude, degrees east")
	elev := flag.Float64("elev", env.Elevation, "elevation, meters")
	dateStr := flag.String("date", "", "civil date, YYYY-MM-DD (default today UTC)")
	noRefr := flag.Bool("norefraction", false, "disable the atmospheric refraction correction")
	flag.Parse()

	loc, err := astronomy.NewLocation(*lat, *lon, *elev)
	if err != nil {
		exit.Log(err)
	}
	date := time.Now().UTC()
	if *dateStr != "" {
		date, err = time.Parse("2006-01-02", *dateStr)
		if err != nil {
			exit.Log(err)
		}
	}
	opt := astronomy.DefaultOptions()
	opt.Refraction = !*noRefr

	fmt.Printf("Location %.4f°N %.4f°E, %s UTC\n\n",
		*lat, *lon, date.Format("2006-01-02"))

	lst := astronomy.LocalSiderealTime(date, loc)
	fmt.Printf("Sidereal time  %s\n\n",
		sexa.FmtTime(unit.TimeFromRad(lst.Rad())))

	printBody("Sun", loc, date, opt)
	printBody("Moon", loc, date, opt)
	printTwilight(loc, date, opt)
	printPhases(date)
}

func printBody(name string, loc astronomy.Location, date time.Time,
	opt astronomy.Options) {

	var ev astronomy.DayEvents
	var st astronomy.BodyState
	var err error
	if name == "Sun" {
		ev, err = astronomy.SunEvents(loc, date, opt)
	} else {
		ev, err = astronomy.MoonEvents(loc, date, opt)
	}
	if err != nil {
		exit.Log(err)
	}
	if name == "Sun" {
		st, err = astronomy.SunState(date)
	} else {
		st, err = astronomy.MoonState(date)
	}
	if err != nil {
		exit.Log(err)
	}

	fmt.Printf("%s\n", name)
	fmt.Printf("  α %s  δ %s\n",
		sexa.FmtRA(st.Equatorial.RA), sexa.FmtAngle(st.Equatorial.Dec))
	hz := astronomy.Horizontal(st, loc, opt)
	fmt.Printf("  altitude %.2f°  azimuth %.2f°\n",
		hz.Alt.Deg(), hz.Az.Deg())
	if name == "Moon" {
		fmt.Printf("  illuminated %.1f%%\n", st.Illuminated*100)
	}
	switch ev.Status {
	case rise.Normal:
		fmt.Printf("  rise    %s\n", clock(ev.Rise))
		fmt.Printf("  transit %s\n", clock(ev.Transit))
		fmt.Printf("  set     %s\n", clock(ev.Set))
	default:
		fmt.Printf("  %s all day, transit %s\n",
			ev.Status, clock(ev.Transit))
	}
	fmt.Println()
}

func printTwilight(loc astronomy.Location, date time.Time,
	opt astronomy.Options) {

	kinds := []struct {
		name string
		deg  float64
	}{
		{"civil", -6},
		{"nautical", -12},
		{"astronomical", -18},
	}
	fmt.Println("Twilight")
	for _, k := range kinds {
		ev, err := astronomy.Crossings(astronomy.Sun, loc, date,
			unit.AngleFromDeg(k.deg), opt)
		if err != nil {
			exit.Log(err)
		}
		if ev.Status != rise.Normal {
			fmt.Printf("  %-13s %s all day\n", k.name, ev.Status)
			continue
		}
		fmt.Printf("  %-13s dawn %s  dusk %s\n",
			k.name, clock(ev.Rise), clock(ev.Set))
	}
	fmt.Println()
}

func printPhases(date time.Time) {
	fmt.Println("Nearest phases")
	for _, k := range []moonphase.Kind{
		moonphase.New, moonphase.FirstQuarter,
		moonphase.Full, moonphase.LastQuarter,
	} {
		t, err := astronomy.NearestPhase(k, date)
		if err != nil {
			exit.Log(err)
		}
		fmt.Printf("  %-13s %s\n", k, t.Format("2006-01-02 15:04 UTC"))
	}
}

func clock(t time.Time) string {
	return t.Format("15:04:05")
}
