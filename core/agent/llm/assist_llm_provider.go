package llm

import (
	"strings"

	"assist_server/core/domain"
)

// Provider names a remote LLM vendor.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGemini    Provider = "gemini"
	ProviderGroq      Provider = "groq"
	ProviderMistral   Provider = "mistral"
)

// providerPriority is the fixed pick order, highest first.
var providerPriority = []Provider{
	ProviderOpenAI,
	ProviderAnthropic,
	ProviderGemini,
	ProviderGroq,
	ProviderMistral,
}

// Providers returns all known providers in priority order.
func Providers() []Provider {
	out := make([]Provider, len(providerPriority))
	copy(out, providerPriority)
	return out
}

// ProviderRegistry answers which providers have credentials and which one is active.
type ProviderRegistry struct {
	credentials map[Provider]string
}

// NewProviderRegistry snapshots the given credential slots.
func NewProviderRegistry(credentials map[Provider]string) *ProviderRegistry {
	creds := make(map[Provider]string, len(providerPriority))
	for _, p := range providerPriority {
		if key := strings.TrimSpace(credentials[p]); key != "" {
			creds[p] = key
		}
	}
	return &ProviderRegistry{credentials: creds}
}

// Configured reports whether p has a credential.
func (r *ProviderRegistry) Configured(p Provider) bool {
	_, ok := r.credentials[p]
	return ok
}

// Credential returns the API key for p.
func (r *ProviderRegistry) Credential(p Provider) string {
	return r.credentials[p]
}

// Active returns the highest-priority configured provider.
func (r *ProviderRegistry) Active() (Provider, bool) {
	for _, p := range providerPriority {
		if r.Configured(p) {
			return p, true
		}
	}
	return "", false
}

// Status builds a fresh ProviderStatus.
func (r *ProviderRegistry) Status() domain.ProviderStatus {
	status := domain.ProviderStatus{
		Providers: make(map[string]bool, len(providerPriority)),
	}
	for _, p := range providerPriority {
		status.Providers[string(p)] = r.Configured(p)
	}
	if active, ok := r.Active(); ok {
		name := string(active)
		status.Available = true
		status.Provider = &name
	}
	return status
}
