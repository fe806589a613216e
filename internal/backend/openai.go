package backend

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/openimpact/impacteval/internal/model"
)

// OpenAIBackend completes via the OpenAI Chat Completions API. Works
// against Azure OpenAI and compatible endpoints through BaseURL.
type OpenAIBackend struct {
	client       *openai.Client
	defaultModel string
	maxTokens    int
}

func newOpenAI(cfg model.BackendConfig) (Backend, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required (set OPENAI_API_KEY)")
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	defaultModel := cfg.Model
	if defaultModel == "" {
		defaultModel = openai.GPT4o
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	return &OpenAIBackend{
		client:       openai.NewClientWithConfig(clientConfig),
		defaultModel: defaultModel,
		maxTokens:    maxTokens,
	}, nil
}

// Name returns the provider name
func (b *OpenAIBackend) Name() string {
	return "openai"
}

// Complete calls the Chat Completions API. OpenAI accepts system messages
// natively, so the message sequence passes through unchanged.
func (b *OpenAIBackend) Complete(ctx context.Context, messages []model.Message, opts CompleteOptions) (string, error) {
	chatModel := opts.Model
	if chatModel == "" {
		chatModel = b.defaultModel
	}
	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = b.maxTokens
	}

	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	req := openai.ChatCompletionRequest{
		Model:       chatModel,
		Messages:    chatMessages,
		Temperature: float32(opts.Temperature),
		MaxTokens:   maxTokens,
	}
	if opts.ResponseFormat == FormatJSON {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := b.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}
