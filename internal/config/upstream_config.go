package config

type UpstreamConfig interface {
	GetOpenRouterAPIKey() string
	GetOpenRouterModel() string
	GetSupadataAPIKey() string
}

type Upstream struct{}

var _ UpstreamConfig = Upstream{}

func (Upstream) GetOpenRouterAPIKey() string {
	return GetEnv("OPENROUTER_API_KEY", "")
}

func (Upstream) GetOpenRouterModel() string {
	return GetEnv("OPENROUTER_MODEL", "openai/gpt-4o-mini")
}

func (Upstream) GetSupadataAPIKey() string {
	return GetEnv("SUPADATA_API_KEY", "")
}
