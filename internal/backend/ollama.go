package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/openimpact/impacteval/internal/model"
)

// OllamaBackend completes via a local Ollama server
type OllamaBackend struct {
	baseURL      string
	httpClient   *http.Client
	defaultModel string
	maxTokens    int
}

// Ollama API structures
type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	System  string        `json:"system,omitempty"`
	Format  string        `json:"format,omitempty"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"` // Max tokens
}

type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type ollamaError struct {
	Error string `json:"error"`
}

func newOllama(cfg model.BackendConfig) (Backend, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = os.Getenv("OLLAMA_BASE_URL")
	}
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}

	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model must be specified (e.g., llama3.1:8b, mistral)")
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second // Local models can be slow
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	return &OllamaBackend{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   &http.Client{Timeout: timeout},
		defaultModel: cfg.Model,
		maxTokens:    maxTokens,
	}, nil
}

// Name returns the provider name
func (b *OllamaBackend) Name() string {
	return "ollama"
}

// Complete calls Ollama's generate endpoint. Ollama takes a single prompt
// plus a system string, so user messages are concatenated in order.
func (b *OllamaBackend) Complete(ctx context.Context, messages []model.Message, opts CompleteOptions) (string, error) {
	chatModel := opts.Model
	if chatModel == "" {
		chatModel = b.defaultModel
	}
	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = b.maxTokens
	}

	var systemParts, userParts []string
	for _, m := range messages {
		if m.Role == model.RoleSystem {
			systemParts = append(systemParts, m.Content)
			continue
		}
		userParts = append(userParts, m.Content)
	}

	apiReq := ollamaRequest{
		Model:  chatModel,
		Prompt: strings.Join(userParts, "\n\n"),
		Stream: false,
		System: strings.Join(systemParts, "\n\n"),
		Options: ollamaOptions{
			Temperature: opts.Temperature,
			NumPredict:  maxTokens,
		},
	}
	if opts.ResponseFormat == FormatJSON {
		apiReq.Format = "json"
	}

	resp, err := b.makeRequest(ctx, apiReq)
	if err != nil {
		return "", fmt.Errorf("ollama API error: %w", err)
	}

	return resp.Response, nil
}

// makeRequest makes an HTTP request to the Ollama API
func (b *OllamaBackend) makeRequest(ctx context.Context, apiReq ollamaRequest) (*ollamaResponse, error) {
	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/generate", b.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		var apiErr ollamaError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("API error (%d): %s", httpResp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("API error (%d): %s", httpResp.StatusCode, string(respBody))
	}

	var resp ollamaResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &resp, nil
}
