package astro

import "AstroVision/internal/domain"

// Seed encodes a birth date and time as an integer: epoch milliseconds of the
// date at midnight UTC plus the HHMM reading of the clock (0 when unset).
func Seed(b domain.BirthInput) int64 {
	d := b.Date
	seed := dateUTC(d.Year(), int(d.Month()), d.Day()).UnixMilli()
	if b.Time.Set {
		seed += int64(b.Time.Hour*100 + b.Time.Minute)
	}
	return seed
}

// mod is the Euclidean remainder, always in [0, n).
func mod(a int64, n int) int {
	r := a % int64(n)
	if r < 0 {
		r += int64(n)
	}
	return int(r)
}

// floorDiv rounds toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
