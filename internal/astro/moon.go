package astro

import (
	"math"
	"time"
)

// SynodicMonth is the mean length of a lunation in days.
const SynodicMonth = 29.53059

// referenceNewMoon anchors the cycle.
var referenceNewMoon = time.Date(2024, time.January, 11, 11, 57, 0, 0, time.UTC)

type phaseBand struct {
	upper float64
	name  string
}

var phaseBands = []phaseBand{
	{1.84, "New Moon"},
	{5.53, "Waxing Crescent"},
	{9.22, "First Quarter"},
	{12.91, "Waxing Gibbous"},
	{16.61, "Full Moon"},
	{20.30, "Waning Gibbous"},
	{23.99, "Last Quarter"},
	{27.68, "Waning Crescent"},
}

// MoonPhase names the lunar phase at the given instant.
func MoonPhase(at time.Time) string {
	return phaseForAge(MoonAge(at))
}

// MoonAge returns the days elapsed since the last new moon, in [0, SynodicMonth).
func MoonAge(at time.Time) float64 {
	days := float64(at.Sub(referenceNewMoon)) / float64(24*time.Hour)
	pos := math.Mod(days, SynodicMonth)
	if pos < 0 {
		pos += SynodicMonth
	}
	return pos
}

func phaseForAge(pos float64) string {
	for _, band := range phaseBands {
		if pos < band.upper {
			return band.name
		}
	}
	return phaseBands[0].name
}
