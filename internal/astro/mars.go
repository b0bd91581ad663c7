package astro

import "AstroVision/internal/domain"

// doshaHouses are the houses in which Mars marks a chart as manglik.
var doshaHouses = map[int]bool{1: true, 2: true, 4: true, 7: true, 8: true, 12: true}

// MarsHouse places Mars in one of the twelve houses from the chart seed.
func MarsHouse(seed int64) domain.MarsPlacement {
	house := mod(seed, 12) + 1
	return domain.MarsPlacement{House: house, Manglik: doshaHouses[house]}
}
