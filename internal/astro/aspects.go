package astro

import "AstroVision/internal/domain"

const (
	// AspectCount is the number of picks made for a single chart.
	AspectCount = 12
	// SynastryCount is the number of picks made for a pair.
	SynastryCount = 6
)

var chartPlanets = []string{"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "Pluto"}

// synastryPlanets are the personal and social planets only.
var synastryPlanets = chartPlanets[:7]

type aspectKind struct {
	name    string
	angle   int
	kind    string
	harmony domain.Harmony
	symbol  string
	meaning string
	impact  string
}

var aspectKinds = []aspectKind{
	{name: "Conjunction", angle: 0, kind: "Major", harmony: domain.Neutral, symbol: "☌", meaning: "Energy Fusion", impact: "High"},
	{name: "Opposition", angle: 180, kind: "Major", harmony: domain.Challenging, symbol: "☍", meaning: "Direct Tension", impact: "High"},
	{name: "Trine", angle: 120, kind: "Major", harmony: domain.Harmonious, symbol: "△", meaning: "Easy Flow", impact: "High"},
	{name: "Square", angle: 90, kind: "Major", harmony: domain.Challenging, symbol: "□", meaning: "Internal Friction", impact: "Medium"},
	{name: "Sextile", angle: 60, kind: "Major", harmony: domain.Harmonious, symbol: "⚹", meaning: "Opportunities", impact: "Medium"},
}

// AspectAngle returns the nominal angle of a named aspect, or -1.
func AspectAngle(name string) int {
	for _, k := range aspectKinds {
		if k.name == name {
			return k.angle
		}
	}
	return -1
}

// PickAspect selects the planet pair and aspect for step i of a chart walk.
func PickAspect(seed int64, i int) domain.AspectRecord {
	base := seed + int64(i)
	k := aspectKinds[mod(base, len(aspectKinds))]
	return domain.AspectRecord{
		FirstBody:  chartPlanets[mod(base, len(chartPlanets))],
		SecondBody: chartPlanets[mod(base+1, len(chartPlanets))],
		Aspect:     k.name,
		Type:       k.kind,
		Harmony:    k.harmony,
		Symbol:     k.symbol,
		Meaning:    k.meaning,
	}
}

// Aspects walks the seed, halving it after every pick. Picks pairing a planet
// with itself are dropped.
func Aspects(seed int64) []domain.AspectRecord {
	out := make([]domain.AspectRecord, 0, AspectCount)
	for i := 0; i < AspectCount; i++ {
		rec := PickAspect(seed, i)
		if rec.FirstBody != rec.SecondBody {
			out = append(out, rec)
		}
		seed = floorDiv(seed, 2)
	}
	return out
}

// PickSynastry selects the cross pair and aspect for step i of a synastry walk.
func PickSynastry(seed int64, i int) domain.SynastryRecord {
	base := seed + int64(i)
	k := aspectKinds[mod(base, len(aspectKinds))]
	return domain.SynastryRecord{
		UserPlanet:    synastryPlanets[mod(base, len(synastryPlanets))],
		PartnerPlanet: synastryPlanets[mod(base+2, len(synastryPlanets))],
		Aspect:        k.name,
		Symbol:        k.symbol,
		Harmony:       k.harmony,
		Impact:        k.impact,
	}
}

// Synastry walks the combined seed of two charts, dividing it by three after
// every pick. Self pairs are kept.
func Synastry(userSeed, partnerSeed int64) []domain.SynastryRecord {
	combined := userSeed + partnerSeed
	out := make([]domain.SynastryRecord, 0, SynastryCount)
	for i := 0; i < SynastryCount; i++ {
		out = append(out, PickSynastry(combined, i))
		combined = floorDiv(combined, 3)
	}
	return out
}
