// Package llm wraps the language-model provider behind a single completion
// call. Groq exposes the OpenAI chat-completions API, so the client rides on
// the openai SDK with a custom base URL.
package llm

import (
	"context"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/donald-madangure/nutrifit.ai/internal/apperror"
)

// Request is one chat completion: a system persona, a user prompt, and the
// sampling controls the handlers pin down.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
	JSONOnly    bool
}

// Completer issues a completion and returns its raw content. Content carries
// no trust or type guarantee; callers must normalize it.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Client is the Groq-backed Completer.
type Client struct {
	api   *openai.Client
	model string
	log   *zap.Logger
}

// NewClient builds a Client for the given provider endpoint and model.
func NewClient(apiKey, baseURL, model string, timeout time.Duration, log *zap.Logger) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
		log:   log,
	}
}

// Complete sends the completion request and returns the first choice's
// content. Provider failures surface as upstream errors; an empty choice
// list yields empty content, which downstream decoding treats as {}.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: req.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	}
	if req.JSONOnly {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		c.log.Error("completion request failed", zap.String("model", c.model), zap.Error(err))
		return "", apperror.Upstream("language model request failed", err)
	}

	c.log.Debug("completion finished",
		zap.String("model", resp.Model),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
		zap.Duration("duration", time.Since(start)))

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
