package ports

import (
	"context"
	"time"

	"AstroVision/internal/domain"
)

// GenerationRequest is a single-shot prompt for the text-generation service.
type GenerationRequest struct {
	Prompt            string
	SystemInstruction string
	Temperature       float32
	MaxOutputTokens   int32
	ThinkingBudget    int32
}

// TextGenerator produces narrative text from a prompt (e.g., Gemini).
type TextGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// ConversationRequest carries a full chat transcript for the next model turn.
type ConversationRequest struct {
	SystemInstruction string
	Temperature       float32
	History           []domain.ChatMessage
}

// ChatModel answers the last user turn of a transcript.
type ChatModel interface {
	Reply(ctx context.Context, req ConversationRequest) (string, error)
}

// BlogRepository keeps the ordered list of posts.
type BlogRepository interface {
	List(ctx context.Context) ([]domain.BlogPost, error)
	Get(ctx context.Context, id string) (domain.BlogPost, bool, error)
	GetBySlug(ctx context.Context, slug string) (domain.BlogPost, bool, error)
	Save(ctx context.Context, post domain.BlogPost) (created bool, err error)
	Delete(ctx context.Context, id string) (bool, error)
}

// KeyValueStore persists small JSON documents under fixed keys.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// FormRelay forwards contact submissions to the third-party form service.
type FormRelay interface {
	Submit(ctx context.Context, msg domain.ContactMessage) error
}

// TextExtractor reads plain text and embedded media out of rich post content.
type TextExtractor interface {
	PlainText(content string) (string, error)
	FirstImage(content string) (string, bool)
}

// Scheduler controls when recurring jobs execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
