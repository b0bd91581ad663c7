package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"AstroVision/internal/domain"
)

// birthPayload is the form shape of a subject.
type birthPayload struct {
	Name     string `json:"name"`
	Pronouns string `json:"pronouns"`
	DOB      string `json:"dob"`
	TOB      string `json:"tob"`
	Location string `json:"location"`
}

// input parses the payload. A missing date yields a zero input, which the
// report service rejects as incomplete.
func (p birthPayload) input() (domain.BirthInput, error) {
	if strings.TrimSpace(p.DOB) == "" {
		clock, err := domain.ParseClock(strings.TrimSpace(p.TOB))
		if err != nil {
			return domain.BirthInput{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return domain.BirthInput{Name: p.Name, Pronouns: p.Pronouns, Time: clock, Location: p.Location}, nil
	}
	b, err := domain.ParseBirthInput(p.Name, p.Pronouns, strings.TrimSpace(p.DOB), strings.TrimSpace(p.TOB), p.Location)
	if err != nil {
		return domain.BirthInput{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return b, nil
}

type chartPayload struct {
	User    birthPayload  `json:"user"`
	Partner *birthPayload `json:"partner"`
}

type reportPayload struct {
	User              birthPayload  `json:"user"`
	Partner           *birthPayload `json:"partner"`
	Language          string        `json:"language"`
	Question          string        `json:"question"`
	HoroscopeLanguage string        `json:"horoscopeLanguage"`
	Perspective       string        `json:"perspective"`
	Timeframe         string        `json:"timeframe"`
}

func (p reportPayload) request(toolID string) (domain.ReportRequest, error) {
	subject, err := p.User.input()
	if err != nil {
		return domain.ReportRequest{}, err
	}
	req := domain.ReportRequest{
		ToolID:      toolID,
		Language:    domain.ParseLanguage(p.Language),
		Subject:     subject,
		Question:    p.Question,
		Perspective: p.Perspective,
		Timeframe:   p.Timeframe,
	}
	if p.HoroscopeLanguage != "" {
		req.HoroscopeLanguage = domain.ParseLanguage(p.HoroscopeLanguage)
	}
	if p.Partner != nil && strings.TrimSpace(p.Partner.DOB) != "" {
		partner, err := p.Partner.input()
		if err != nil {
			return domain.ReportRequest{}, err
		}
		req.Partner = &partner
	}
	return req, nil
}

type chatPayload struct {
	Text string `json:"text"`
}

type tagPayload struct {
	Tag string `json:"tag"`
}

type loginPayload struct {
	Passcode string `json:"passcode"`
}
