package astro

import (
	"math"

	"AstroVision/internal/domain"
)

// sunriseHour is where the rising sign equals the sun sign.
const sunriseHour = 6

// Ascendant advances the sun sign by one sign per two hours after 06:00.
func Ascendant(sunSign string, tob domain.ClockTime) string {
	if !tob.Set {
		return domain.UnknownAscendant
	}

	hours := float64(tob.Hour) + float64(tob.Minute)/60 - sunriseHour
	if hours < 0 {
		hours += 24
	}
	shift := int(math.Floor(hours / 2))

	idx := SignIndex(sunSign)
	if idx < 0 {
		idx = 0
	}
	return signs[(idx+shift)%len(signs)].Name
}
