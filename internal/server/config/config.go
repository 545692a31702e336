// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the zkpauth verifier.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - ChallengeTTL: how long an issued challenge stays answerable.
//   - ReapInterval: how often expired challenges are swept.
//   - StrictRegistration: reject re-registration instead of overwriting.
//   - OpaqueIDLength: length of generated auth and session IDs.
type Config struct {
	EndpointAddrGRPC   string
	ChallengeTTL       time.Duration
	ReapInterval       time.Duration
	StrictRegistration bool
	OpaqueIDLength     int
}

// LoadDefaults populates Config with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.ChallengeTTL = 2 * time.Minute
	c.ReapInterval = 30 * time.Second
	c.StrictRegistration = false
	c.OpaqueIDLength = 16
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
