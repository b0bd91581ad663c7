package astro

import "strings"

var letterValues = map[rune]int{
	'a': 1, 'b': 2, 'c': 3, 'd': 4, 'e': 5, 'f': 8, 'g': 3, 'h': 5, 'i': 1,
	'j': 1, 'k': 2, 'l': 3, 'm': 4, 'n': 5, 'o': 7, 'p': 8, 'q': 1, 'r': 2,
	's': 3, 't': 4, 'u': 6, 'v': 6, 'w': 6, 'x': 5, 'y': 1, 'z': 7,
}

// IsMasterNumber reports whether n is exempt from reduction.
func IsMasterNumber(n int) bool {
	return n == 11 || n == 22 || n == 33
}

// Reduce sums decimal digits until a single digit or a master number remains.
func Reduce(n int) int {
	for n > 9 && !IsMasterNumber(n) {
		n = digitSum(n)
	}
	return n
}

func digitSum(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// LifePath reduces the digits found in a date string such as "1990-06-15".
func LifePath(date string) int {
	sum := 0
	for _, r := range date {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
		}
	}
	return Reduce(sum)
}

// NameVibration reduces the letter values of a name; names without latin letters yield 0.
func NameVibration(name string) int {
	sum := 0
	for _, r := range strings.ToLower(name) {
		sum += letterValues[r]
	}
	if sum == 0 {
		return 0
	}
	return Reduce(sum)
}
