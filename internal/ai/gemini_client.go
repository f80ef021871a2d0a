package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const providerGemini = "gemini"

// GeminiClient serves the same Invoker contract on Google's Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

func NewGeminiClient(ctx context.Context, apiKey, model string, log *zap.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
		log:    log.Named("gemini"),
	}, nil
}

func (c *GeminiClient) Invoke(ctx context.Context, messages []Message, temperature float32) (string, error) {
	system, contents := geminiContents(messages)

	temp := temperature
	cfg := &genai.GenerateContentConfig{Temperature: &temp}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		c.log.Warn("generate content failed", zap.Error(err))
		return "", upstream(providerGemini, classifyGemini(err), err)
	}

	raw := resp.Text()
	if strings.TrimSpace(raw) == "" {
		return "", upstream(providerGemini, KindEmptyResponse, errors.New("empty content"))
	}

	c.log.Debug("raw response", zap.String("model", c.model), zap.String("content", Short(raw)))

	return raw, nil
}

func classifyGemini(err error) ErrorKind {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return kindFromStatus(apiErr.Code)
	}
	return KindNetwork
}

// geminiContents lifts the leading system turns into the system
// instruction. Gemini only knows user and model turns, so a system turn
// after the first non-system turn is sent as user text in place.
func geminiContents(messages []Message) (string, []*genai.Content) {
	var system []string
	i := 0
	for ; i < len(messages) && messages[i].Role == RoleSystem; i++ {
		system = append(system, messages[i].Text)
	}

	contents := make([]*genai.Content, 0, len(messages)-i)
	for _, m := range messages[i:] {
		var role genai.Role = genai.RoleUser
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}

	return strings.Join(system, "\n\n"), contents
}
