package api

import (
	"github.com/gofiber/fiber/v2"

	"AstroVision/internal/domain"
	"AstroVision/internal/usecase"
)

func (s *Server) handleAdminLogin(c *fiber.Ctx) error {
	var payload loginPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if s.deps.Admin == nil || !s.deps.Admin.Authorize(payload.Passcode) {
		s.logger.Warn("admin login rejected", "ip", c.IP())
		return fiber.NewError(fiber.StatusUnauthorized, "invalid admin passcode")
	}
	return c.JSON(envelope(fiber.Map{"authorized": true}, nil))
}

func (s *Server) handleCheckDraft(c *fiber.Ctx) error {
	check, err := s.deps.Drafts.Check(c.UserContext(), c.Query("editing"))
	if err != nil {
		return err
	}
	return c.JSON(envelope(check, nil))
}

func (s *Server) handleSaveDraft(c *fiber.Ctx) error {
	var draft domain.Draft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	saved, err := s.deps.Drafts.Save(c.UserContext(), draft)
	if err != nil {
		return err
	}
	return c.JSON(envelope(fiber.Map{"saved": saved}, nil))
}

func (s *Server) handleTouchDraft(c *fiber.Ctx) error {
	if s.deps.Autosave == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "autosave is disabled")
	}
	var draft domain.Draft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	s.deps.Autosave.Touch(draft)
	return c.Status(fiber.StatusAccepted).JSON(envelope(fiber.Map{"pending": true}, nil))
}

func (s *Server) handleDeclineDraft(c *fiber.Ctx) error {
	if err := s.deps.Drafts.Decline(c.UserContext()); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleDiscardDraft(c *fiber.Ctx) error {
	if err := s.deps.Drafts.Discard(c.UserContext()); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleSettings(c *fiber.Ctx) error {
	settings, err := s.deps.Settings.Get(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(envelope(settings, nil))
}

func (s *Server) handleUpdateContact(c *fiber.Ctx) error {
	var info domain.ContactInfo
	if err := c.BodyParser(&info); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	settings, err := s.deps.Settings.UpdateContact(c.UserContext(), info)
	if err != nil {
		return err
	}
	return c.JSON(envelope(settings, fiber.Map{"message": usecase.MsgContactUpdated}))
}

func (s *Server) handleUpdateSocial(c *fiber.Ctx) error {
	var links domain.SocialLinks
	if err := c.BodyParser(&links); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	settings, err := s.deps.Settings.UpdateSocial(c.UserContext(), links)
	if err != nil {
		return err
	}
	return c.JSON(envelope(settings, fiber.Map{"message": usecase.MsgSocialUpdated}))
}

func (s *Server) handleContact(c *fiber.Ctx) error {
	var msg domain.ContactMessage
	if err := c.BodyParser(&msg); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := s.deps.Contact.Submit(c.UserContext(), msg); err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(envelope(fiber.Map{"sent": true}, nil))
}

func (s *Server) handleListPages(c *fiber.Ctx) error {
	return c.JSON(envelope(s.deps.Content.PageNames(), nil))
}

func (s *Server) handlePage(c *fiber.Ctx) error {
	page, ok := s.deps.Content.Page(c.Params("name"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "page not found")
	}
	return c.JSON(envelope(page, nil))
}
