package astro

var chineseAnimals = [12]string{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

// ChineseZodiac returns the animal of the given year.
func ChineseZodiac(year int) string {
	return chineseAnimals[mod(int64(year-4), len(chineseAnimals))]
}
