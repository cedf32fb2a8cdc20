package ratelimit

import "time"

// DefaultConfig returns the rate limiting configuration for the gateway.
// Generation endpoints are expensive upstream calls and get tight limits;
// read-only endpoints are generous, and the health check is unlimited.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    120,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/health", Limit: 0},
			{Path: "/jobs", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},
			{Path: "/jobs/refine", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
			{Path: "/jobs/translate", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
			{Path: "/jobs/images", Method: "POST", Limit: 5, Window: time.Minute, Burst: 2},
			{Path: "/jobs/", Method: "GET", Limit: 240, Window: time.Minute},
		},
	}
}
