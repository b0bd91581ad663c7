package tools

// Module ids referenced outside the catalog.
const (
	Compatibility  = "compatibility"
	DailyHoroscope = "daily"
	CosmicWeather  = "cosmic_weather"
)

const (
	defaultTemperature    = 0.8
	defaultThinkingBudget = 32768
)

var standard = Generation{Temperature: defaultTemperature, ThinkingBudget: defaultThinkingBudget}

// Default returns the registry with the built-in tool modules.
func Default() *Registry {
	r := NewRegistry()

	r.AddCategory(Category{ID: "natal", Title: "Natal Charts", Icon: "☉"})
	r.AddCategory(Category{ID: "relationship", Title: "Relationships", Icon: "♡"})
	r.AddCategory(Category{ID: "numerology", Title: "Numerology", Icon: "✦"})
	r.AddCategory(Category{ID: "forecast", Title: "Forecasts", Icon: "☾"})
	r.AddCategory(Category{ID: "eastern", Title: "Eastern Traditions", Icon: "☯"})

	r.Register(Module{ID: "kundli", Category: "natal", Title: "Birth Chart Analysis", Generation: standard,
		Description: "Sun, rising sign, moon phase and planetary aspects woven into a full natal reading."})
	r.Register(Module{ID: "ascendant", Category: "natal", Title: "Rising Sign Calculator", Generation: standard,
		Description: "Your ascendant from the hour of birth and how it colours first impressions."})
	r.Register(Module{ID: "moon_phase", Category: "natal", Title: "Birth Moon Phase", Generation: standard,
		Description: "The lunar phase of your birth and its emotional signature."})
	r.Register(Module{ID: Compatibility, Category: "relationship", Title: "Compatibility Synastry", NeedsPartner: true, Generation: standard,
		Description: "Inter-chart connections between two people and the dynamics they create."})
	r.Register(Module{ID: "life_path", Category: "numerology", Title: "Life Path Number", Generation: standard,
		Description: "The reduced digit sum of your birth date and the path it describes."})
	r.Register(Module{ID: "name_number", Category: "numerology", Title: "Name Vibration", Generation: standard,
		Description: "The numeric vibration carried by the letters of your name."})
	r.Register(Module{ID: DailyHoroscope, Category: "forecast", Title: "Personal Horoscope", UsesHoroscope: true, Generation: standard,
		Description: "A forecast for the chosen timeframe, tradition and language."})
	r.Register(Module{ID: "chinese", Category: "eastern", Title: "Chinese Zodiac", Generation: standard,
		Description: "Your animal sign and the temperament of its year."})
	r.Register(Module{ID: "mangal_dosha", Category: "eastern", Title: "Mangal Dosha Check", Generation: standard,
		Description: "Mars placement by house and whether the chart is manglik."})
	r.Register(Module{ID: CosmicWeather, Category: "forecast", Title: "Cosmic Weather", Hidden: true,
		Generation: Generation{Temperature: 0.7, MaxOutputTokens: 1024}})

	return r
}
