package bootstrap

import (
	"context"

	"assist_server/config"
	"assist_server/core/agent/llm"
	"assist_server/core/service/ai"
	"assist_server/core/service/stub"
	"assist_server/pkg/httputil"
	"assist_server/pkg/logger"
	"assist_server/pkg/resilience"
)

type Dependencies struct {
	Config *config.Config

	Registry  *llm.ProviderRegistry
	LLMClient *llm.Client // nil when no provider is configured
	Breaker   *resilience.CircuitBreaker

	AIService *ai.Service
}

func NewDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	deps := &Dependencies{Config: cfg}

	deps.Registry = llm.NewProviderRegistry(credentialsFromConfig(cfg))

	var remote ai.Remote
	if provider, ok := deps.Registry.Active(); ok {
		if cfg.LLMBreakerEnabled {
			deps.Breaker = resilience.NewCircuitBreaker(resilience.DefaultCircuitBreakerConfig("llm-" + string(provider)))
		}

		client, err := llm.NewClient(ctx, llm.ClientConfig{
			Provider:   provider,
			APIKey:     deps.Registry.Credential(provider),
			Model:      modelFor(cfg, provider),
			BaseURL:    baseURLFor(cfg, provider),
			HTTPClient: httputil.NewOptimizedClient(httputil.LLMClientConfig(cfg.LLMTimeout)),
			Breaker:    deps.Breaker,
		})
		if err != nil {
			return nil, err
		}
		deps.LLMClient = client
		remote = llm.NewInference(client)

		logger.WithFields(map[string]any{
			"provider": string(provider),
			"model":    client.Model(),
			"breaker":  deps.Breaker != nil,
		}).Info("LLM provider configured")
	} else {
		logger.Warn("No LLM credentials configured, serving stub results")
	}

	deps.AIService = ai.NewService(deps.Registry, remote, stub.New())

	return deps, nil
}

func credentialsFromConfig(cfg *config.Config) map[llm.Provider]string {
	return map[llm.Provider]string{
		llm.ProviderOpenAI:    cfg.Credentials.OpenAI,
		llm.ProviderAnthropic: cfg.Credentials.Anthropic,
		llm.ProviderGemini:    cfg.Credentials.Gemini,
		llm.ProviderGroq:      cfg.Credentials.Groq,
		llm.ProviderMistral:   cfg.Credentials.Mistral,
	}
}

func modelFor(cfg *config.Config, p llm.Provider) string {
	switch p {
	case llm.ProviderOpenAI:
		return cfg.Models.OpenAI
	case llm.ProviderAnthropic:
		return cfg.Models.Anthropic
	case llm.ProviderGemini:
		return cfg.Models.Gemini
	case llm.ProviderGroq:
		return cfg.Models.Groq
	case llm.ProviderMistral:
		return cfg.Models.Mistral
	}
	return ""
}

func baseURLFor(cfg *config.Config, p llm.Provider) string {
	switch p {
	case llm.ProviderOpenAI:
		return cfg.BaseURLs.OpenAI
	case llm.ProviderAnthropic:
		return cfg.BaseURLs.Anthropic
	case llm.ProviderGemini:
		return cfg.BaseURLs.Gemini
	case llm.ProviderGroq:
		return cfg.BaseURLs.Groq
	case llm.ProviderMistral:
		return cfg.BaseURLs.Mistral
	}
	return ""
}
