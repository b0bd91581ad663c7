// Package astro holds the deterministic chart heuristics: sun sign, rising sign,
// moon phase, numerology, Chinese zodiac and the seeded aspect generators.
// Every function is pure.
package astro

import "AstroVision/internal/domain"

// capricornStart and capricornEnd bound the only range that wraps the year end.
const (
	capricornStart = 1222
	capricornEnd   = 119
)

var signs = [12]domain.ZodiacSign{
	{Name: "Aries", Element: domain.ElementFire, Start: 321, End: 419},
	{Name: "Taurus", Element: domain.ElementEarth, Start: 420, End: 520},
	{Name: "Gemini", Element: domain.ElementAir, Start: 521, End: 620},
	{Name: "Cancer", Element: domain.ElementWater, Start: 621, End: 722},
	{Name: "Leo", Element: domain.ElementFire, Start: 723, End: 822},
	{Name: "Virgo", Element: domain.ElementEarth, Start: 823, End: 922},
	{Name: "Libra", Element: domain.ElementAir, Start: 923, End: 1022},
	{Name: "Scorpio", Element: domain.ElementWater, Start: 1023, End: 1121},
	{Name: "Sagittarius", Element: domain.ElementFire, Start: 1122, End: 1221},
	{Name: "Capricorn", Element: domain.ElementEarth, Start: capricornStart, End: capricornEnd},
	{Name: "Aquarius", Element: domain.ElementAir, Start: 120, End: 218},
	{Name: "Pisces", Element: domain.ElementWater, Start: 219, End: 320},
}

// Signs returns a copy of the ordered sign table.
func Signs() []domain.ZodiacSign {
	out := make([]domain.ZodiacSign, len(signs))
	copy(out, signs[:])
	return out
}

// SunSign resolves the sign whose range contains month/day.
func SunSign(month, day int) domain.ZodiacSign {
	return resolveSign(signs[:], month*100+day)
}

// resolveSign walks table in order. When nothing matches the first entry is
// returned; the built-in table covers every value, so only a gapped table
// reaches that branch.
func resolveSign(table []domain.ZodiacSign, val int) domain.ZodiacSign {
	for _, sign := range table {
		if sign.Start > sign.End {
			if val >= sign.Start || val <= sign.End {
				return sign
			}
			continue
		}
		if val >= sign.Start && val <= sign.End {
			return sign
		}
	}
	return table[0]
}

// SignIndex returns the position of the named sign in the table, or -1.
func SignIndex(name string) int {
	for i, sign := range signs {
		if sign.Name == name {
			return i
		}
	}
	return -1
}
