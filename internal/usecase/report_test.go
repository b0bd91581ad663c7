package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AstroVision/internal/domain"
	"AstroVision/internal/tools"
)

func newReportRequest(t *testing.T, tool string) domain.ReportRequest {
	return domain.ReportRequest{
		ToolID:   tool,
		Language: domain.LangEnglish,
		Subject:  mustBirth(t, "Test", "1990-06-15", "14:30", "Hyderabad"),
	}
}

func TestReportGenerateFallbacks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		gen  *fakeGenerator
		want string
	}{
		{"missing credential", nil, MsgGatewayLocked},
		{"upstream error", &fakeGenerator{err: errors.New("boom")}, MsgGenerationFailed},
		{"empty text", &fakeGenerator{text: "  \n"}, MsgWeakSignal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			deps := ReportDeps{}
			if tc.gen != nil {
				deps.Generator = tc.gen
			}
			svc := NewReportService(deps)

			report, err := svc.Generate(context.Background(), newReportRequest(t, "kundli"))
			require.NoError(t, err)
			assert.True(t, report.Fallback)
			assert.Equal(t, tc.want, report.Text)
			assert.Equal(t, "Gemini", report.Metrics.SunSign)
			assert.Len(t, report.Metrics.Aspects, 12)
		})
	}
}

func TestReportGenerateSuccess(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{text: "## Your chart"}
	svc := NewReportService(ReportDeps{Generator: gen})

	req := newReportRequest(t, "kundli")
	req.Question = "  Will I travel?  "
	report, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, report.Fallback)
	assert.Equal(t, "## Your chart", report.Text)
	assert.Equal(t, "kundli", report.ToolID)

	call := gen.last(t)
	assert.InDelta(t, 0.8, call.Temperature, 1e-6)
	assert.Equal(t, int32(32768), call.ThinkingBudget)
	assert.Contains(t, call.Prompt, "Act as the Astro Vision AI Master Intelligence.")
	assert.Contains(t, call.Prompt, "Module: kundli")
	assert.Contains(t, call.Prompt, "Language: English")
	assert.Contains(t, call.Prompt, "USER: Test (N/A)")
	assert.Contains(t, call.Prompt, "BIRTH: 1990-06-15 14:30 at Hyderabad")
	assert.Contains(t, call.Prompt, `"sunSign":"Gemini"`)
	assert.Contains(t, call.Prompt, "SPECIFIC INQUIRY: Will I travel?")
	assert.Contains(t, call.Prompt, "4. Write EXCLUSIVELY in English.")
	assert.NotContains(t, call.Prompt, "PARTNER:")
	assert.Contains(t, call.SystemInstruction, "You speak ONLY in English.")
}

func TestReportValidation(t *testing.T) {
	t.Parallel()

	svc := NewReportService(ReportDeps{Generator: &fakeGenerator{text: "ok"}})
	ctx := context.Background()

	noTime := newReportRequest(t, "kundli")
	noTime.Subject.Time = domain.ClockTime{}
	_, err := svc.Generate(ctx, noTime)
	assert.ErrorIs(t, err, ErrIncompleteBirthData)

	noPlace := newReportRequest(t, "kundli")
	noPlace.Subject.Location = " "
	_, err = svc.Generate(ctx, noPlace)
	assert.ErrorIs(t, err, ErrIncompleteBirthData)

	_, err = svc.Generate(ctx, newReportRequest(t, ""))
	assert.ErrorIs(t, err, ErrIncompleteBirthData)

	_, err = svc.Generate(ctx, newReportRequest(t, "tarot"))
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestReportPartnerOnlyForCompatibility(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{text: "ok"}
	svc := NewReportService(ReportDeps{Generator: gen})
	partner := mustBirth(t, "Partner", "1992-03-03", "08:45", "Chennai")

	req := newReportRequest(t, tools.Compatibility)
	req.Partner = &partner
	report, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, report.PartnerMetrics)
	assert.Len(t, report.Synastry, 6)
	assert.Equal(t, "Pisces", report.PartnerMetrics.SunSign)
	assert.Empty(t, report.PartnerMetrics.Aspects)
	assert.Contains(t, gen.last(t).Prompt, "PARTNER: Partner (1992-03-03). SYNASTRY: [")

	req.ToolID = "kundli"
	report, err = svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, report.PartnerMetrics)
	assert.Empty(t, report.Synastry)
	assert.NotContains(t, gen.last(t).Prompt, "PARTNER:")
}

func TestReportHoroscopeLanguage(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{text: "ok"}
	svc := NewReportService(ReportDeps{Generator: gen})

	req := newReportRequest(t, tools.DailyHoroscope)
	req.HoroscopeLanguage = domain.LangHindi
	req.Perspective = "Vedic"
	req.Timeframe = "Weekly"
	_, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	call := gen.last(t)
	assert.Contains(t, call.Prompt, "Language: Hindi")
	assert.Contains(t, call.Prompt, "PERSPECTIVE: Vedic")
	assert.Contains(t, call.Prompt, "TIMEFRAME: Weekly")
	assert.Contains(t, call.SystemInstruction, "ONLY in Hindi")

	// Other tools keep the interface language.
	req.ToolID = "life_path"
	_, err = svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, gen.last(t).Prompt, "Language: English")
}

func TestCalculateWithoutNetwork(t *testing.T) {
	t.Parallel()

	svc := NewReportService(ReportDeps{})
	report := svc.Calculate(mustBirth(t, "Test", "1990-06-15", "14:30", "Hyderabad"), nil)
	assert.Equal(t, 7, report.Metrics.NameVibration)
	assert.Equal(t, "Libra", report.Metrics.Ascendant)
	assert.Nil(t, report.PartnerMetrics)
	assert.Empty(t, report.Text)
}

func TestBuildPromptListsAllInstructions(t *testing.T) {
	t.Parallel()

	req := newReportRequest(t, "chinese")
	rc := NewReportContext(req, domain.Report{})
	prompt, err := BuildPrompt("chinese", domain.LangTamil, rc)
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		assert.Contains(t, prompt, "\n"+string(rune('0'+i))+". ")
	}
	assert.Contains(t, prompt, "Write EXCLUSIVELY in Tamil.")
	assert.True(t, strings.HasPrefix(prompt, "Act as the Astro Vision AI"))
}
