package config

import (
	"os"
	"strings"
	"sync"
)

type MistralConfig struct {
	APIKey  string
	BaseURL string
	// Models is the capability-tier order the relay walks through.
	Models []string
}

var (
	mistralConfig *MistralConfig
	mistralOnce   sync.Once
)

func LoadMistralConfig() *MistralConfig {
	mistralOnce.Do(func() {
		baseURL := os.Getenv("MISTRAL_BASE_URL")
		if baseURL == "" {
			baseURL = "https://api.mistral.ai/v1"
		}
		models := []string{"mistral-large-latest", "mistral-medium-latest", "mistral-small-latest"}
		if raw := os.Getenv("MISTRAL_MODELS"); raw != "" {
			models = nil
			for _, m := range strings.Split(raw, ",") {
				if m = strings.TrimSpace(m); m != "" {
					models = append(models, m)
				}
			}
		}
		mistralConfig = &MistralConfig{
			APIKey:  os.Getenv("MISTRAL_API_KEY"),
			BaseURL: baseURL,
			Models:  models,
		}
	})
	return mistralConfig
}
