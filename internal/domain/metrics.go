package domain

// Element is one of the four classical zodiac elements.
type Element string

const (
	ElementFire  Element = "Fire"
	ElementEarth Element = "Earth"
	ElementAir   Element = "Air"
	ElementWater Element = "Water"
)

// Harmony classifies an aspect.
type Harmony string

const (
	Harmonious  Harmony = "Harmonious"
	Challenging Harmony = "Challenging"
	Neutral     Harmony = "Neutral"
)

// UnknownAscendant is reported when no time of birth was supplied.
const UnknownAscendant = "Unknown"

// ZodiacSign is a static table row; Start and End are encoded as month*100+day.
type ZodiacSign struct {
	Name    string
	Element Element
	Start   int
	End     int
}

// AspectRecord links two planets of a single chart.
type AspectRecord struct {
	FirstBody  string  `json:"p1"`
	SecondBody string  `json:"p2"`
	Aspect     string  `json:"aspect"`
	Type       string  `json:"type"`
	Harmony    Harmony `json:"harmony"`
	Symbol     string  `json:"symbol"`
	Meaning    string  `json:"meaning"`
}

// SynastryRecord links a planet of the subject with one of the partner.
type SynastryRecord struct {
	UserPlanet    string  `json:"userPlanet"`
	PartnerPlanet string  `json:"partnerPlanet"`
	Aspect        string  `json:"aspect"`
	Symbol        string  `json:"symbol"`
	Harmony       Harmony `json:"harmony"`
	Impact        string  `json:"impact"`
}

// MarsPlacement is the heuristic Mars house used for Mangal dosha checks.
type MarsPlacement struct {
	House   int  `json:"marsHouse"`
	Manglik bool `json:"hasMangalDosha"`
}

// DerivedMetrics is computed once per request and never mutated.
type DerivedMetrics struct {
	SunSign       string         `json:"sunSign"`
	Ascendant     string         `json:"ascendant"`
	MoonPhase     string         `json:"moonPhase"`
	LifePath      int            `json:"lifePath"`
	NameVibration int            `json:"nameVibration"`
	Element       Element        `json:"element"`
	ChineseZodiac string         `json:"chineseAnimal"`
	Mars          MarsPlacement  `json:"mars"`
	Aspects       []AspectRecord `json:"aspects,omitempty"`
}

// Compatibility holds both charts of a pair and their cross aspects.
type Compatibility struct {
	User     DerivedMetrics   `json:"user"`
	Partner  DerivedMetrics   `json:"partner"`
	Synastry []SynastryRecord `json:"synastry"`
}
