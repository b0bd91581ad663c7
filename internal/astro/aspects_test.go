package astro

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AstroVision/internal/domain"
)

func TestAscendant(t *testing.T) {
	t.Parallel()

	cases := []struct {
		sun  string
		tob  domain.ClockTime
		want string
	}{
		{"Aries", domain.ClockTime{Hour: 6, Set: true}, "Aries"},
		{"Aries", domain.ClockTime{Hour: 7, Minute: 59, Set: true}, "Aries"},
		{"Aries", domain.ClockTime{Hour: 8, Set: true}, "Taurus"},
		{"Aries", domain.ClockTime{Hour: 5, Minute: 59, Set: true}, "Pisces"},
		{"Pisces", domain.ClockTime{Hour: 8, Set: true}, "Aries"},
		{"Gemini", domain.ClockTime{Hour: 14, Minute: 30, Set: true}, "Libra"},
		{"Aries", domain.ClockTime{}, domain.UnknownAscendant},
		{"Nowhere", domain.ClockTime{Hour: 6, Set: true}, "Aries"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Ascendant(tc.sun, tc.tob), "%s at %s", tc.sun, tc.tob)
	}
}

func TestAspectsAreDeterministic(t *testing.T) {
	t.Parallel()

	b := mustBirth(t, "Test", "1990-06-15", "14:30")
	first := Aspects(Seed(b))
	second := Aspects(Seed(mustBirth(t, "Other name", "1990-06-15", "14:30")))

	require.Len(t, first, AspectCount)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("aspects differ for identical birth data (-first +second):\n%s", diff)
	}
	assert.NotEqual(t, first, Aspects(Seed(mustBirth(t, "Test", "1990-06-15", "14:31"))))
}

func TestAspectsWalk(t *testing.T) {
	t.Parallel()

	b := mustBirth(t, "Test", "1990-06-15", "14:30")
	require.Equal(t, int64(645408001430), Seed(b))

	got := Aspects(Seed(b))
	want := []domain.AspectRecord{
		{FirstBody: "Sun", SecondBody: "Moon", Aspect: "Conjunction", Type: "Major", Harmony: domain.Neutral, Symbol: "☌", Meaning: "Energy Fusion"},
		{FirstBody: "Saturn", SecondBody: "Uranus", Aspect: "Opposition", Type: "Major", Harmony: domain.Challenging, Symbol: "☍", Meaning: "Direct Tension"},
		{FirstBody: "Pluto", SecondBody: "Sun", Aspect: "Sextile", Type: "Major", Harmony: domain.Harmonious, Symbol: "⚹", Meaning: "Opportunities"},
	}
	if diff := cmp.Diff(want, got[:3]); diff != "" {
		t.Fatalf("unexpected aspect walk (-want +got):\n%s", diff)
	}
}

func TestAspectsNeverPairPlanetWithItself(t *testing.T) {
	t.Parallel()

	for seed := int64(-50); seed < 50; seed++ {
		for _, rec := range Aspects(seed * 7919) {
			assert.NotEqual(t, rec.FirstBody, rec.SecondBody)
		}
	}
}

func TestSynastry(t *testing.T) {
	t.Parallel()

	user := Seed(mustBirth(t, "A", "1990-06-15", "14:30"))
	partner := Seed(mustBirth(t, "B", "1992-03-03", "08:45"))

	got := Synastry(user, partner)
	require.Len(t, got, SynastryCount)
	assert.Equal(t, "Saturn", got[0].UserPlanet)
	assert.Equal(t, "Moon", got[0].PartnerPlanet)
	assert.Equal(t, "Conjunction", got[0].Aspect)
	assert.Equal(t, "High", got[0].Impact)
	assert.Equal(t, "Jupiter", got[1].UserPlanet)
	assert.Equal(t, "Sun", got[1].PartnerPlanet)
	assert.Equal(t, "Sextile", got[1].Aspect)
	assert.Equal(t, "Medium", got[1].Impact)

	if diff := cmp.Diff(got, Synastry(partner, user)); diff != "" {
		t.Fatalf("synastry should only depend on the combined seed:\n%s", diff)
	}
}

func TestSynastryHandlesNegativeSeeds(t *testing.T) {
	t.Parallel()

	got := Synastry(-1, 0)
	require.Len(t, got, SynastryCount)
	assert.Equal(t, "Saturn", got[0].UserPlanet)
	assert.Equal(t, "Moon", got[0].PartnerPlanet)
	assert.Equal(t, "Sextile", got[0].Aspect)
	assert.Equal(t, int64(-1), floorDiv(-1, 3))
}

func TestPickAspectUsesIndexOffset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PickAspect(10, 3), PickAspect(13, 0))
	assert.Equal(t, PickSynastry(10, 3), PickSynastry(13, 0))
	assert.Equal(t, 90, AspectAngle("Square"))
	assert.Equal(t, -1, AspectAngle("Quincunx"))
}

func TestMarsHouse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.MarsPlacement{House: 3, Manglik: false}, MarsHouse(645408001430))
	assert.Equal(t, domain.MarsPlacement{House: 1, Manglik: true}, MarsHouse(0))
	assert.Equal(t, domain.MarsPlacement{House: 12, Manglik: true}, MarsHouse(-1))
}

func mustBirth(t *testing.T, name, dob, tob string) domain.BirthInput {
	t.Helper()
	b, err := domain.ParseBirthInput(name, "", dob, tob, "X")
	require.NoError(t, err)
	return b
}
