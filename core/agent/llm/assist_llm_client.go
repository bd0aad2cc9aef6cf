package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"assist_server/core/port/out"
	"assist_server/pkg/resilience"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// ErrEmptyCompletion is returned when the provider answers without any text.
var ErrEmptyCompletion = errors.New("provider returned no completion")

// ClientConfig configures the client for the active provider.
type ClientConfig struct {
	Provider   Provider
	APIKey     string
	Model      string
	BaseURL    string       // optional endpoint override
	HTTPClient *http.Client // optional
	Breaker    *resilience.CircuitBreaker
}

type completionBackend interface {
	complete(ctx context.Context, model string, req out.CompletionRequest) (string, error)
}

// Client sends completions to a single provider.
type Client struct {
	provider Provider
	model    string
	backend  completionBackend
	breaker  *resilience.CircuitBreaker
}

var _ out.LLMCompleter = (*Client)(nil)

// NewClient builds a client for cfg.Provider. Gemini goes through the genai SDK,
// every other provider through its OpenAI-compatible endpoint.
func NewClient(ctx context.Context, cfg ClientConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s: API key is required", cfg.Provider)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%s: model is required", cfg.Provider)
	}

	var backend completionBackend
	switch cfg.Provider {
	case ProviderGemini:
		gc, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      cfg.APIKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPClient:  cfg.HTTPClient,
			HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create GenAI client: %w", err)
		}
		backend = &geminiBackend{client: gc}
	case ProviderOpenAI, ProviderAnthropic, ProviderGroq, ProviderMistral:
		oc := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
		}
		if cfg.HTTPClient != nil {
			oc.HTTPClient = cfg.HTTPClient
		}
		backend = &openaiBackend{
			client: openai.NewClientWithConfig(oc),
			// Anthropic's compatibility layer does not honour response_format.
			jsonMode: cfg.Provider != ProviderAnthropic,
		}
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}

	return &Client{
		provider: cfg.Provider,
		model:    cfg.Model,
		backend:  backend,
		breaker:  cfg.Breaker,
	}, nil
}

// Provider returns the provider name.
func (c *Client) Provider() string {
	return string(c.provider)
}

// Model returns the model name.
func (c *Client) Model() string {
	return c.model
}

// Complete performs exactly one completion call.
func (c *Client) Complete(ctx context.Context, req out.CompletionRequest) (string, error) {
	if c.breaker == nil {
		return c.backend.complete(ctx, c.model, req)
	}

	var text string
	err := c.breaker.Execute(func() error {
		var err error
		text, err = c.backend.complete(ctx, c.model, req)
		return err
	})
	return text, err
}

type openaiBackend struct {
	client   *openai.Client
	jsonMode bool
}

func (b *openaiBackend) complete(ctx context.Context, model string, req out.CompletionRequest) (string, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.System,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.User,
			},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONMode && b.jsonMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := b.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}

type geminiBackend struct {
	client *genai.Client
}

func (b *geminiBackend) complete(ctx context.Context, model string, req out.CompletionRequest) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.JSONMode {
		cfg.ResponseMIMEType = "application/json"
	}

	resp, err := b.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{genai.NewContentFromText(req.User, genai.RoleUser)},
		cfg,
	)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
