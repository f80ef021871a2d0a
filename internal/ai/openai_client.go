package ai

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const providerOpenAI = "openai"

type OpenAIClient struct {
	client *openai.Client
	model  string
	log    *zap.Logger
}

// NewOpenAIClient builds a client for the chat completions API. baseURL
// may be empty to use the public endpoint.
func NewOpenAIClient(apiKey, model, baseURL string, log *zap.Logger) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		log:    log.Named("openai"),
	}
}

func (c *OpenAIClient) Invoke(
	ctx context.Context,
	messages []Message,
	temperature float32,
) (string, error) {

	msgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Text,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    msgs,
		Temperature: temperature,
	})
	if err != nil {
		c.log.Warn("chat completion failed", zap.Error(err))
		return "", upstream(providerOpenAI, classifyOpenAI(err), err)
	}

	if len(resp.Choices) == 0 {
		return "", upstream(providerOpenAI, KindEmptyResponse, errors.New("empty choices"))
	}

	raw := resp.Choices[0].Message.Content
	if strings.TrimSpace(raw) == "" {
		return "", upstream(providerOpenAI, KindEmptyResponse, errors.New("empty content"))
	}

	c.log.Debug("raw response", zap.String("model", c.model), zap.String("content", Short(raw)))

	return raw, nil
}

func classifyOpenAI(err error) ErrorKind {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return kindFromStatus(apiErr.HTTPStatusCode)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return kindFromStatus(reqErr.HTTPStatusCode)
	}
	return KindNetwork
}

// Short truncates model output for log lines without splitting a rune.
func Short(s string) string {
	const limit = 180
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
