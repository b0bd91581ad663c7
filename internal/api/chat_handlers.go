package api

import (
	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleStartChat(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(envelope(s.deps.Chat.Start(), nil))
}

func (s *Server) handleTranscript(c *fiber.Ctx) error {
	sess, err := s.deps.Chat.Transcript(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(envelope(sess, fiber.Map{"count": len(sess.Messages)}))
}

func (s *Server) handleSendChat(c *fiber.Ctx) error {
	var payload chatPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	msg, err := s.deps.Chat.Send(c.UserContext(), c.Params("id"), payload.Text)
	if err != nil {
		return err
	}
	return c.JSON(envelope(msg, nil))
}

func (s *Server) handleCloseChat(c *fiber.Ctx) error {
	if err := s.deps.Chat.Close(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
