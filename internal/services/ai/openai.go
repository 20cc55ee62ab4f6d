package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	apperrors "github.com/rachel-higgins/RecipeAI/internal/errors"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-3.5-turbo"

// OpenAIConfig configures the OpenAI completion client.
type OpenAIConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the provider endpoint, used by tests and proxies.
	BaseURL    string
	HTTPClient *http.Client
}

type openAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient builds a Client backed by the OpenAI chat completions API.
func NewOpenAIClient(cfg OpenAIConfig) (Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if strings.TrimSpace(cfg.BaseURL) != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	return &openAIClient{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// Complete sends a chat completion request and returns the generated text.
func (c *openAIClient) Complete(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", fmt.Errorf("prompt is required")
	}
	temperature := req.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeGenerationFailed, "openai completion", err)
	}
	if len(completion.Choices) == 0 {
		return "", apperrors.New(apperrors.CodeGenerationEmpty, "openai returned no choices")
	}
	content := completion.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", apperrors.New(apperrors.CodeGenerationEmpty, "openai returned empty content")
	}
	return content, nil
}
