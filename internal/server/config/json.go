package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/zkpauth/internal/flagx"
	"github.com/dmitrijs2005/zkpauth/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files. Interval fields use timex.Duration, which accepts
// both string values such as "30s" and integer nanoseconds. After
// unmarshalling, the fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrGRPC   string         `json:"endpoint_addr_grpc"`
	ChallengeTTL       timex.Duration `json:"challenge_ttl"`
	ReapInterval       timex.Duration `json:"reap_interval"`
	StrictRegistration bool           `json:"strict_registration"`
	OpaqueIDLength     int            `json:"opaque_id_length"`
}

// parseJson loads configuration values from the JSON file given via the
// -c/-config flags into the provided Config. If no file is given, nothing
// is loaded. An unreadable or invalid file panics: the server must not start
// half-configured.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.ChallengeTTL = c.ChallengeTTL.Duration
	config.ReapInterval = c.ReapInterval.Duration
	config.StrictRegistration = c.StrictRegistration
	config.OpaqueIDLength = c.OpaqueIDLength
}
