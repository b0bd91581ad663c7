package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"AstroVision/internal/domain"
	"AstroVision/internal/ports"
)

const (
	chatGreeting     = "Greetings, seeker. I am your Cosmic Guide. How can the stars assist you today?"
	chatSystemPrompt = "You are the Astro Vision AI Cosmic Guide. You assist users with wisdom regarding astrology, spirituality, and self-discovery."
	chatTemperature  = 0.75

	// MsgChatDisrupted replaces a failed model reply.
	MsgChatDisrupted = "A solar flare disrupted our connection. Please try again."
	// MsgChatSilent replaces an empty model reply.
	MsgChatSilent = "The cosmos is silent. Please try again later."

	DefaultMaxChatSessions = 1000
	DefaultChatIdleTimeout = 30 * time.Minute
)

var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrSessionNotFound = errors.New("chat session not found")
	ErrSessionBusy     = errors.New("chat session is awaiting a reply")
)

type chatSession struct {
	mu       sync.Mutex
	id       string
	started  time.Time
	active   time.Time
	messages []domain.ChatMessage
	busy     bool
}

// ChatService keeps in-memory multi-turn conversations with the cosmic guide.
type ChatService struct {
	model  ports.ChatModel
	logger *slog.Logger
	now    func() time.Time

	maxSessions int
	idleTimeout time.Duration

	mu       sync.Mutex
	sessions map[string]*chatSession
}

// NewChatService builds the chat use case; a nil model makes every reply a fallback.
func NewChatService(model ports.ChatModel, log *slog.Logger) *ChatService {
	return &ChatService{
		model:       model,
		logger:      orDiscard(log),
		now:         time.Now,
		maxSessions: DefaultMaxChatSessions,
		idleTimeout: DefaultChatIdleTimeout,
		sessions:    map[string]*chatSession{},
	}
}

// SetLimits bounds the number of live sessions and how long an untouched
// session survives. Non-positive values keep the current limit.
func (c *ChatService) SetLimits(maxSessions int, idleTimeout time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if maxSessions > 0 {
		c.maxSessions = maxSessions
	}
	if idleTimeout > 0 {
		c.idleTimeout = idleTimeout
	}
}

// Start opens a session seeded with the greeting. Idle sessions are dropped
// first; at the cap the least recently used session is evicted.
func (c *ChatService) Start() domain.ChatSession {
	now := c.now()
	sess := &chatSession{
		id:       uuid.NewString(),
		started:  now,
		active:   now,
		messages: []domain.ChatMessage{{Role: domain.RoleModel, Text: chatGreeting, At: now}},
	}

	snap := sess.snapshot()

	c.mu.Lock()
	c.sweepLocked(now)
	for len(c.sessions) >= c.maxSessions {
		c.evictOldestLocked()
	}
	c.sessions[sess.id] = sess
	c.mu.Unlock()

	c.logger.Debug("chat session started", "session", sess.id)
	return snap
}

// Send appends the user message and the model reply. Only one message per
// session may be in flight.
func (c *ChatService) Send(ctx context.Context, id, text string) (domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ChatMessage{}, ErrEmptyMessage
	}

	sess, err := c.lookup(id)
	if err != nil {
		return domain.ChatMessage{}, err
	}

	sess.mu.Lock()
	if sess.busy {
		sess.mu.Unlock()
		return domain.ChatMessage{}, ErrSessionBusy
	}
	sess.busy = true
	sess.active = c.now()
	sess.messages = append(sess.messages, domain.ChatMessage{Role: domain.RoleUser, Text: text, At: c.now()})
	history := upstreamHistory(sess.messages)
	sess.mu.Unlock()

	reply := c.reply(ctx, id, history)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	msg := domain.ChatMessage{Role: domain.RoleModel, Text: reply, At: c.now()}
	sess.messages = append(sess.messages, msg)
	sess.busy = false
	sess.active = msg.At
	return msg, nil
}

// Transcript returns a copy of the session messages.
func (c *ChatService) Transcript(id string) (domain.ChatSession, error) {
	sess, err := c.lookup(id)
	if err != nil {
		return domain.ChatSession{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

// Close forgets a session.
func (c *ChatService) Close(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(c.sessions, id)
	return nil
}

func (c *ChatService) reply(ctx context.Context, id string, history []domain.ChatMessage) string {
	if c.model == nil {
		c.logger.Error("chat model is not configured", "session", id)
		return MsgChatDisrupted
	}

	text, err := c.model.Reply(ctx, ports.ConversationRequest{
		SystemInstruction: chatSystemPrompt,
		Temperature:       chatTemperature,
		History:           history,
	})
	if err != nil {
		c.logger.Error("chat reply failed", "session", id, "error", err)
		return MsgChatDisrupted
	}
	if strings.TrimSpace(text) == "" {
		return MsgChatSilent
	}
	return text
}

// Len reports the number of live sessions.
func (c *ChatService) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sessions)
}

func (c *ChatService) lookup(id string) (*chatSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if sess.idle(c.now(), c.idleTimeout) {
		delete(c.sessions, id)
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// sweepLocked drops sessions idle for longer than the timeout. c.mu is held.
func (c *ChatService) sweepLocked(now time.Time) {
	for id, sess := range c.sessions {
		if sess.idle(now, c.idleTimeout) {
			delete(c.sessions, id)
			c.logger.Debug("chat session expired", "session", id)
		}
	}
}

// evictOldestLocked drops the least recently active session. c.mu is held.
func (c *ChatService) evictOldestLocked() {
	var (
		oldestID string
		oldestAt time.Time
	)
	for id, sess := range c.sessions {
		at := sess.lastActive()
		if oldestID == "" || at.Before(oldestAt) {
			oldestID, oldestAt = id, at
		}
	}
	delete(c.sessions, oldestID)
	c.logger.Debug("chat session evicted", "session", oldestID)
}

// upstreamHistory drops the local greeting, which the model never produced.
func upstreamHistory(messages []domain.ChatMessage) []domain.ChatMessage {
	out := make([]domain.ChatMessage, 0, len(messages))
	for i, m := range messages {
		if i == 0 && m.Role == domain.RoleModel && m.Text == chatGreeting {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (s *chatSession) lastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// idle reports whether the session has been untouched past timeout. A session
// waiting on a reply is never idle.
func (s *chatSession) idle(now time.Time, timeout time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.busy && now.Sub(s.active) > timeout
}

func (s *chatSession) snapshot() domain.ChatSession {
	return domain.ChatSession{
		ID:       s.id,
		Started:  s.started,
		Messages: append([]domain.ChatMessage(nil), s.messages...),
	}
}
