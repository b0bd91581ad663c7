package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"AstroVision/internal/domain"
)

const notAvailable = "N/A"

var promptInstructions = []string{
	"Synthesize the provided metrics into a deep, professional, and spiritual analysis.",
	"Focus on psychological depth and actionable karmic advice.",
	"Use Markdown formatting with H2/H3 headers.",
	"Write EXCLUSIVELY in %s.",
	"Maintain a tone of elite professionalism and ancient wisdom.",
}

// ReportContext is the structured context handed to the text generator. It
// only copies values; nothing is computed here.
type ReportContext struct {
	Name        string                  `json:"name"`
	Pronouns    string                  `json:"pronouns"`
	BirthDate   string                  `json:"dob"`
	BirthTime   string                  `json:"tob"`
	Location    string                  `json:"location"`
	Metrics     domain.DerivedMetrics   `json:"metrics"`
	PartnerName string                  `json:"partnerName,omitempty"`
	PartnerDate string                  `json:"partnerDob,omitempty"`
	Synastry    []domain.SynastryRecord `json:"synastry,omitempty"`
	Question    string                  `json:"question"`
	Perspective string                  `json:"perspective,omitempty"`
	Timeframe   string                  `json:"timeframe,omitempty"`
}

// NewReportContext assembles the context from the request and its metrics.
func NewReportContext(req domain.ReportRequest, report domain.Report) ReportContext {
	rc := ReportContext{
		Name:        req.Subject.Name,
		Pronouns:    orNA(req.Subject.Pronouns),
		BirthDate:   req.Subject.DateString(),
		BirthTime:   req.Subject.Time.String(),
		Location:    req.Subject.Location,
		Metrics:     report.Metrics,
		Question:    orNA(strings.TrimSpace(req.Question)),
		Perspective: req.Perspective,
		Timeframe:   req.Timeframe,
	}
	if report.PartnerMetrics != nil && req.Partner != nil {
		rc.PartnerName = req.Partner.Name
		rc.PartnerDate = req.Partner.DateString()
		rc.Synastry = report.Synastry
	}
	return rc
}

// Block renders the context section of the prompt.
func (c ReportContext) Block() (string, error) {
	metrics, err := json.Marshal(c.Metrics)
	if err != nil {
		return "", fmt.Errorf("marshal metrics: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "USER: %s (%s)\n", c.Name, c.Pronouns)
	fmt.Fprintf(&b, "BIRTH: %s %s at %s\n", c.BirthDate, c.BirthTime, c.Location)
	fmt.Fprintf(&b, "DETERMINISTIC METRICS: %s\n", metrics)
	if c.PartnerName != "" || c.PartnerDate != "" {
		synastry, err := json.Marshal(c.Synastry)
		if err != nil {
			return "", fmt.Errorf("marshal synastry: %w", err)
		}
		fmt.Fprintf(&b, "PARTNER: %s (%s). SYNASTRY: %s\n", c.PartnerName, c.PartnerDate, synastry)
	}
	if c.Perspective != "" {
		fmt.Fprintf(&b, "PERSPECTIVE: %s\n", c.Perspective)
	}
	if c.Timeframe != "" {
		fmt.Fprintf(&b, "TIMEFRAME: %s\n", c.Timeframe)
	}
	fmt.Fprintf(&b, "SPECIFIC INQUIRY: %s\n", c.Question)
	return b.String(), nil
}

// BuildPrompt renders the full prompt for a tool module.
func BuildPrompt(toolID string, lang domain.Language, rc ReportContext) (string, error) {
	block, err := rc.Block()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Act as the Astro Vision AI Master Intelligence.\n")
	fmt.Fprintf(&b, "Module: %s\n", toolID)
	fmt.Fprintf(&b, "Language: %s\n\n", lang.Name())
	b.WriteString("ASTROLOGICAL CONTEXT:\n")
	b.WriteString(block)
	b.WriteString("\nINSTRUCTIONS:\n")
	for i, line := range promptInstructions {
		if strings.Contains(line, "%s") {
			line = fmt.Sprintf(line, lang.Name())
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, line)
	}
	return b.String(), nil
}

// SystemInstruction pins the model persona and output language.
func SystemInstruction(lang domain.Language) string {
	return fmt.Sprintf("You are Astro Vision AI. You provide world-class, multi-lingual astrological interpretations. You speak ONLY in %s.", lang.Name())
}

func orNA(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
