package config

import (
	"encoding/json"
	"os"

	"github.com/Shahzad-Ali-44/TaskMate/internal/flagx"
	"github.com/Shahzad-Ali-44/TaskMate/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations may be
// strings such as "168h" or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP             string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC             *string        `json:"endpoint_addr_grpc"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	SessionTokenValidityDuration timex.Duration `json:"session_token_validity_duration"`
	BcryptCost                   int            `json:"bcrypt_cost"`
	FrontendURL                  string         `json:"frontend_url"`
	Environment                  string         `json:"environment"`
	LogLevel                     string         `json:"log_level"`
	HealthCheckInterval          timex.Duration `json:"health_check_interval"`
}

// parseJson overlays config with the file named by -c/-config. Keys that are
// absent keep their current values; endpoint_addr_grpc may be set to "" to
// disable the gRPC listener. Unreadable or malformed files panic.
func parseJson(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	if c.EndpointAddrGRPC != nil {
		config.EndpointAddrGRPC = *c.EndpointAddrGRPC
	}
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.SessionTokenValidityDuration.Duration > 0 {
		config.SessionTokenValidityDuration = c.SessionTokenValidityDuration.Duration
	}
	if c.BcryptCost > 0 {
		config.BcryptCost = c.BcryptCost
	}
	setString(&config.FrontendURL, c.FrontendURL)
	setString(&config.Environment, c.Environment)
	setString(&config.LogLevel, c.LogLevel)
	if c.HealthCheckInterval.Duration > 0 {
		config.HealthCheckInterval = c.HealthCheckInterval.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
