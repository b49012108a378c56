// Package openai implements the selfqa.ModelClient boundary against any
// OpenAI-compatible chat-completion endpoint.
package openai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/phrazzld/selfqa-api/internal/domain"
	"github.com/phrazzld/selfqa-api/internal/selfqa"
)

// ChatClient implements selfqa.ModelClient using the OpenAI SDK. It also
// supports OpenRouter and self-hosted OpenAI-compatible APIs via the
// config's endpoint field. The client is a pure network client and is
// safe for concurrent use.
type ChatClient struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewChatClient creates a chat client from a resolved model configuration.
// requestTimeout bounds each completion call at the transport level; zero
// means no client-side timeout.
func NewChatClient(cfg *domain.ModelConfig, requestTimeout time.Duration, logger *slog.Logger) (*ChatClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("model config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if requestTimeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: requestTimeout}
	}

	return &ChatClient{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.ModelName,
		logger: logger.With(slog.String("component", "chat_client"), slog.String("model", cfg.ModelName)),
	}, nil
}

// Ensure ChatClient implements selfqa.ModelClient
var _ selfqa.ModelClient = (*ChatClient)(nil)

// Complete sends the role-tagged messages to the chat-completion endpoint
// and returns the first choice's content.
func (c *ChatClient) Complete(ctx context.Context, messages []domain.Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: buildChatMessages(messages),
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	c.logger.Debug("chat completion succeeded",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("prompt_tokens", resp.Usage.PromptTokens),
		slog.Int("completion_tokens", resp.Usage.CompletionTokens))

	return resp.Choices[0].Message.Content, nil
}

func buildChatMessages(messages []domain.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := openai.ChatMessageRoleUser
		if m.Role == domain.RoleSystem {
			role = openai.ChatMessageRoleSystem
		}
		out = append(out, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}
	return out
}
