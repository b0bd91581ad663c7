package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"AstroVision/internal/domain"
)

func (s *Server) handleListTools(c *fiber.Ctx) error {
	groups := s.deps.Reports.Tools().Search(c.Query("q"))
	return c.JSON(envelope(groups, fiber.Map{"count": len(groups)}))
}

func (s *Server) handleChart(c *fiber.Ctx) error {
	var payload chartPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(payload.User.DOB) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "dob is required")
	}

	subject, err := payload.User.input()
	if err != nil {
		return err
	}
	var partner *domain.BirthInput
	if payload.Partner != nil && strings.TrimSpace(payload.Partner.DOB) != "" {
		p, err := payload.Partner.input()
		if err != nil {
			return err
		}
		partner = &p
	}

	return c.JSON(envelope(s.deps.Reports.Calculate(subject, partner), nil))
}

func (s *Server) handleReport(c *fiber.Ctx) error {
	var payload reportPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req, err := payload.request(c.Params("id"))
	if err != nil {
		return err
	}

	report, err := s.deps.Reports.Generate(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(envelope(report, fiber.Map{"fallback": report.Fallback}))
}

func (s *Server) handleWeather(c *fiber.Ctx) error {
	if s.deps.Weather == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "cosmic weather is disabled")
	}
	report, err := s.deps.Weather.Current(c.UserContext(), domain.ParseLanguage(c.Query("lang")))
	if err != nil {
		return err
	}
	return c.JSON(envelope(report, fiber.Map{"fallback": report.Fallback}))
}
