package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"AstroVision/internal/domain"
	"AstroVision/internal/ports"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeGenerator struct {
	mu    sync.Mutex
	text  string
	err   error
	calls []ports.GenerationRequest
}

func (f *fakeGenerator) Generate(_ context.Context, req ports.GenerationRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	return f.text, f.err
}

func (f *fakeGenerator) last(t *testing.T) ports.GenerationRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		t.Fatalf("generator was not called")
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeGenerator) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeChatModel struct {
	mu      sync.Mutex
	reply   string
	err     error
	block   chan struct{}
	entered chan struct{}
	history [][]domain.ChatMessage
}

func (f *fakeChatModel) Reply(ctx context.Context, req ports.ConversationRequest) (string, error) {
	f.mu.Lock()
	f.history = append(f.history, append([]domain.ChatMessage(nil), req.History...))
	block, entered := f.block, f.entered
	f.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.reply, f.err
}

type fakeRelay struct {
	err  error
	sent []domain.ContactMessage
}

func (f *fakeRelay) Submit(_ context.Context, msg domain.ContactMessage) error {
	f.sent = append(f.sent, msg)
	return f.err
}

type prefixExtractor struct{}

func (prefixExtractor) PlainText(content string) (string, error) {
	return "plain:" + content, nil
}

func (prefixExtractor) FirstImage(content string) (string, bool) {
	if strings.HasPrefix(content, "img:") {
		return strings.TrimPrefix(content, "img:"), true
	}
	return "", false
}

func mustBirth(t *testing.T, name, dob, tob, location string) domain.BirthInput {
	t.Helper()
	b, err := domain.ParseBirthInput(name, "", dob, tob, location)
	if err != nil {
		t.Fatalf("parse birth input: %v", err)
	}
	return b
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
