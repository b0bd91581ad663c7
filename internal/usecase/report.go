package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"AstroVision/internal/astro"
	"AstroVision/internal/domain"
	"AstroVision/internal/ports"
	"AstroVision/internal/tools"
)

// User-facing texts returned instead of a generated report.
const (
	MsgGatewayLocked       = "The cosmic gateway is currently locked. Please ensure the API_KEY is configured in your platform settings."
	MsgGenerationFailed    = "The planetary alignment encountered a temporary error."
	MsgWeakSignal          = "The celestial signals are weak. Please re-attempt your inquiry."
	MsgIncompleteBirthData = "Birth data is essential for accurate cosmic rendering."
)

var (
	// ErrIncompleteBirthData means date, time or place of birth (or the tool) is missing.
	ErrIncompleteBirthData = errors.New("incomplete birth data")
	// ErrUnknownTool means the requested tool module is not registered.
	ErrUnknownTool = errors.New("unknown tool")
)

// ReportDeps wires the driven adapters into the report service.
type ReportDeps struct {
	Registry  *tools.Registry
	Generator ports.TextGenerator
	Logger    *slog.Logger
}

// ReportService turns birth data into metrics and an AI narrative.
type ReportService struct {
	registry  *tools.Registry
	generator ports.TextGenerator
	logger    *slog.Logger
}

// NewReportService constructs the report use case. A nil generator models a
// missing API credential.
func NewReportService(deps ReportDeps) *ReportService {
	reg := deps.Registry
	if reg == nil {
		reg = tools.Default()
	}
	return &ReportService{
		registry:  reg,
		generator: deps.Generator,
		logger:    orDiscard(deps.Logger),
	}
}

// Tools exposes the module catalog.
func (s *ReportService) Tools() *tools.Registry {
	return s.registry
}

// Calculate computes the subject chart and, when a partner is given, the
// partner chart and synastry. No network call is made.
func (s *ReportService) Calculate(subject domain.BirthInput, partner *domain.BirthInput) domain.Report {
	if partner == nil || partner.Date.IsZero() {
		return domain.Report{Metrics: astro.Compute(subject)}
	}

	pair := astro.Compatibility(subject, *partner)
	return domain.Report{
		Metrics:        pair.User,
		PartnerMetrics: &pair.Partner,
		Synastry:       pair.Synastry,
	}
}

// Generate validates the request, computes the metrics and asks the text
// generator for a narrative. Generation failures never surface as errors; they
// are replaced with a fixed message and flagged through Report.Fallback.
func (s *ReportService) Generate(ctx context.Context, req domain.ReportRequest) (domain.Report, error) {
	if err := validateReportRequest(req); err != nil {
		return domain.Report{}, err
	}

	module, err := s.registry.Resolve(req.ToolID)
	if err != nil {
		return domain.Report{}, fmt.Errorf("%w: %s", ErrUnknownTool, req.ToolID)
	}

	var partner *domain.BirthInput
	if module.NeedsPartner {
		partner = req.Partner
	}
	report := s.Calculate(req.Subject, partner)
	report.ToolID = module.ID

	lang := targetLanguage(module, req)
	rc := NewReportContext(req, report)
	prompt, err := BuildPrompt(module.ID, lang, rc)
	if err != nil {
		return domain.Report{}, fmt.Errorf("build prompt: %w", err)
	}

	report.Text, report.Fallback = s.narrate(ctx, module, ports.GenerationRequest{
		Prompt:            prompt,
		SystemInstruction: SystemInstruction(lang),
		Temperature:       module.Generation.Temperature,
		MaxOutputTokens:   module.Generation.MaxOutputTokens,
		ThinkingBudget:    module.Generation.ThinkingBudget,
	})
	return report, nil
}

func (s *ReportService) narrate(ctx context.Context, module tools.Module, req ports.GenerationRequest) (string, bool) {
	if s.generator == nil {
		s.logger.Error("text generator is not configured", "tool", module.ID)
		return MsgGatewayLocked, true
	}

	text, err := s.generator.Generate(ctx, req)
	if err != nil {
		s.logger.Error("report generation failed", "tool", module.ID, "error", err)
		return MsgGenerationFailed, true
	}
	if strings.TrimSpace(text) == "" {
		s.logger.Warn("empty report", "tool", module.ID)
		return MsgWeakSignal, true
	}

	s.logger.Debug("report generated", "tool", module.ID, "chars", len(text))
	return text, false
}

func validateReportRequest(req domain.ReportRequest) error {
	b := req.Subject
	if req.ToolID == "" || b.Date.IsZero() || !b.Time.Set || strings.TrimSpace(b.Location) == "" {
		return ErrIncompleteBirthData
	}
	return nil
}

func targetLanguage(module tools.Module, req domain.ReportRequest) domain.Language {
	if module.UsesHoroscope && req.HoroscopeLanguage.Known() {
		return req.HoroscopeLanguage
	}
	return domain.ParseLanguage(string(req.Language))
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log != nil {
		return log
	}
	return slog.New(slog.DiscardHandler)
}
