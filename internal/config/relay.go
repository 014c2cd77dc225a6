package config

import (
	"os"
	"sync"
)

type RelayConfig struct {
	// URL is where the pipeline server reaches the relay process.
	URL  string
	Port string
}

var (
	relayConfig *RelayConfig
	relayOnce   sync.Once
)

func LoadRelayConfig() *RelayConfig {
	relayOnce.Do(func() {
		url := os.Getenv("RELAY_URL")
		if url == "" {
			url = "http://localhost:4000"
		}
		port := os.Getenv("RELAY_PORT")
		if port == "" {
			port = ":4000"
		}
		relayConfig = &RelayConfig{
			URL:  url,
			Port: port,
		}
	})
	return relayConfig
}
