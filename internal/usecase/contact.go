package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"AstroVision/internal/domain"
	"AstroVision/internal/ports"
)

const maxMessageLength = 5000

// ErrRelayFailed means the form service did not accept the message.
var ErrRelayFailed = errors.New("contact message could not be delivered")

// ContactService validates visitor messages and hands them to the form relay.
type ContactService struct {
	relay  ports.FormRelay
	logger *slog.Logger
}

// NewContactService wires the relay.
func NewContactService(relay ports.FormRelay, log *slog.Logger) *ContactService {
	return &ContactService{relay: relay, logger: orDiscard(log)}
}

// Submit validates and forwards a message.
func (c *ContactService) Submit(ctx context.Context, msg domain.ContactMessage) error {
	msg = domain.ContactMessage{
		Name:    strings.TrimSpace(msg.Name),
		Email:   strings.TrimSpace(msg.Email),
		Message: strings.TrimSpace(msg.Message),
	}

	v := &validator{}
	v.required(msg.Name, "name").
		required(msg.Email, "email").
		email(msg.Email, "email").
		required(msg.Message, "message").
		maxLength(msg.Message, "message", maxMessageLength)
	if err := v.err(); err != nil {
		return err
	}

	if c.relay == nil {
		return fmt.Errorf("%w: form relay is not configured", ErrRelayFailed)
	}
	if err := c.relay.Submit(ctx, msg); err != nil {
		c.logger.Error("relay contact message", "error", err)
		return fmt.Errorf("%w: %w", ErrRelayFailed, err)
	}
	c.logger.Info("contact message relayed")
	return nil
}
