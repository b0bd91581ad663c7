package llm

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"AstroVision/internal/config"
	"AstroVision/internal/domain"
	"AstroVision/internal/ports"
)

const defaultModel = "gemini-3-pro-preview"

// GeminiClient implements the report and chat ports on top of the genai SDK.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

var (
	_ ports.TextGenerator = (*GeminiClient)(nil)
	_ ports.ChatModel     = (*GeminiClient)(nil)
)

// NewGeminiClient builds a client from configuration. It fails when no API
// key is configured so callers can run without a generator.
func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &GeminiClient{client: client, model: model, timeout: cfg.Timeout}, nil
}

// Generate sends a single prompt and returns the concatenated text parts.
func (c *GeminiClient) Generate(ctx context.Context, req ports.GenerationRequest) (string, error) {
	contents := []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}
	return c.send(ctx, contents, generationConfig(req.SystemInstruction, req.Temperature, req.MaxOutputTokens, req.ThinkingBudget))
}

// Reply continues a conversation; the last history entry is the user turn.
func (c *GeminiClient) Reply(ctx context.Context, req ports.ConversationRequest) (string, error) {
	contents := historyContents(req.History)
	if len(contents) == 0 {
		return "", fmt.Errorf("empty conversation")
	}
	return c.send(ctx, contents, generationConfig(req.SystemInstruction, req.Temperature, 0, 0))
}

func (c *GeminiClient) send(ctx context.Context, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("gemini client is nil")
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return resp.Text(), nil
}

func generationConfig(system string, temperature float32, maxTokens, thinking int32) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(temperature),
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if maxTokens > 0 {
		cfg.MaxOutputTokens = maxTokens
	}
	if thinking > 0 {
		cfg.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(thinking)}
	}
	return cfg
}

// historyContents maps transcript turns to genai contents, skipping blanks.
func historyContents(history []domain.ChatMessage) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		if m.Text == "" {
			continue
		}
		var role genai.Role = genai.RoleUser
		if m.Role == domain.RoleModel {
			role = genai.RoleModel
		}
		out = append(out, genai.NewContentFromText(m.Text, role))
	}
	return out
}
