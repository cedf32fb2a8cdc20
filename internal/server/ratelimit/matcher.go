package ratelimit

import (
	"strings"
	"time"
)

// EndpointConfig holds per-endpoint rate limiting rules.
type EndpointConfig struct {
	Path   string // Exact path, or prefix when ending with "/"
	Method string // Empty matches any method
	Limit  int    // Requests per window; <= 0 means unlimited
	Window time.Duration
	Burst  int // Burst capacity; defaults to Limit when zero
}

// MatchEndpoint finds the config for the given path and method, preferring
// exact path matches over prefix matches.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	var prefixMatch *EndpointConfig

	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != "" && cfg.Method != method {
			continue
		}
		if cfg.Path == path {
			return cfg
		}
		if strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			if prefixMatch == nil || len(cfg.Path) > len(prefixMatch.Path) {
				prefixMatch = cfg
			}
		}
	}

	return prefixMatch
}
