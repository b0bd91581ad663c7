package astro

import (
	"time"

	"AstroVision/internal/domain"
)

// Compute derives the full metric set of a single subject.
func Compute(b domain.BirthInput) domain.DerivedMetrics {
	m := summarize(b)
	m.Aspects = Aspects(Seed(b))
	return m
}

// Compatibility derives both charts and the synastry list of a pair. The
// partner chart carries no aspect list.
func Compatibility(user, partner domain.BirthInput) domain.Compatibility {
	return domain.Compatibility{
		User:     Compute(user),
		Partner:  summarize(partner),
		Synastry: Synastry(Seed(user), Seed(partner)),
	}
}

func summarize(b domain.BirthInput) domain.DerivedMetrics {
	sun := SunSign(int(b.Date.Month()), b.Date.Day())
	return domain.DerivedMetrics{
		SunSign:       sun.Name,
		Ascendant:     Ascendant(sun.Name, b.Time),
		MoonPhase:     MoonPhase(b.Instant()),
		LifePath:      LifePath(b.DateString()),
		NameVibration: NameVibration(b.Name),
		Element:       sun.Element,
		ChineseZodiac: ChineseZodiac(b.Date.Year()),
		Mars:          MarsHouse(Seed(b)),
	}
}

func dateUTC(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
