package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"AstroVision/internal/domain"
	"AstroVision/internal/tools"
)

// WeatherReport is the cached cosmic weather for one language.
type WeatherReport struct {
	Language    domain.Language `json:"language"`
	Day         string          `json:"day"`
	Text        string          `json:"text"`
	Fallback    bool            `json:"fallback"`
	GeneratedAt time.Time       `json:"generatedAt"`
}

// WeatherService generates and caches the daily cosmic weather per language.
type WeatherService struct {
	reports   *ReportService
	languages []domain.Language
	logger    *slog.Logger
	now       func() time.Time

	mu    sync.RWMutex
	cache map[domain.Language]WeatherReport
}

// NewWeatherService builds the cache; languages are refreshed by Refresh.
func NewWeatherService(reports *ReportService, languages []domain.Language, log *slog.Logger) *WeatherService {
	if len(languages) == 0 {
		languages = []domain.Language{domain.LangEnglish}
	}
	return &WeatherService{
		reports:   reports,
		languages: languages,
		logger:    orDiscard(log),
		now:       time.Now,
		cache:     map[domain.Language]WeatherReport{},
	}
}

// Current returns today's weather, generating it on demand. Fallback texts
// are returned but not cached.
func (w *WeatherService) Current(ctx context.Context, lang domain.Language) (WeatherReport, error) {
	lang = domain.ParseLanguage(string(lang))
	today := w.now().UTC().Format(domain.DateLayout)

	w.mu.RLock()
	cached, ok := w.cache[lang]
	w.mu.RUnlock()
	if ok && cached.Day == today {
		return cached, nil
	}
	return w.generate(ctx, lang)
}

// Refresh regenerates the weather for every configured language.
func (w *WeatherService) Refresh(ctx context.Context, at time.Time) {
	for _, lang := range w.languages {
		if _, err := w.generate(ctx, lang); err != nil {
			w.logger.Error("refresh cosmic weather", "language", lang, "error", err)
		}
	}
	w.logger.Info("cosmic weather refreshed", "languages", len(w.languages), "trigger", at.Format(time.RFC3339))
}

func (w *WeatherService) generate(ctx context.Context, lang domain.Language) (WeatherReport, error) {
	now := w.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	report, err := w.reports.Generate(ctx, domain.ReportRequest{
		ToolID:   tools.CosmicWeather,
		Language: lang,
		Subject: domain.BirthInput{
			Name:     "Guest",
			Date:     today,
			Time:     domain.ClockTime{Hour: 12, Set: true},
			Location: "Global",
		},
	})
	if err != nil {
		return WeatherReport{}, fmt.Errorf("generate cosmic weather: %w", err)
	}

	out := WeatherReport{
		Language:    lang,
		Day:         today.Format(domain.DateLayout),
		Text:        report.Text,
		Fallback:    report.Fallback,
		GeneratedAt: now,
	}
	if !out.Fallback {
		w.mu.Lock()
		w.cache[lang] = out
		w.mu.Unlock()
	}
	return out, nil
}
