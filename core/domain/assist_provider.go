package domain

// ProviderStatus reports which remote LLM providers are configured.
type ProviderStatus struct {
	Available bool            `json:"available"`
	Provider  *string         `json:"provider"`
	Providers map[string]bool `json:"providers"`
}
