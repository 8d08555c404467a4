package config

import "os"

// lookupEnv is a seam for tests.
var lookupEnv = os.LookupEnv

// parseEnv applies the deployment environment variables:
//
//	PORT          HTTP port, bound on all interfaces
//	DATABASE_URL  PostgreSQL DSN
//	JWT_SECRET    session token signing key
//	FRONTEND_URL  CORS origin
//	NODE_ENV      environment name
//	LOG_LEVEL     log level
//	GRPC_ADDR     gRPC health listener ("" disables)
func parseEnv(config *Config) {
	if v, ok := lookupEnv("PORT"); ok && v != "" {
		config.EndpointAddrHTTP = ":" + v
	}
	if v, ok := lookupEnv("GRPC_ADDR"); ok {
		config.EndpointAddrGRPC = v
	}

	envString(&config.DatabaseDSN, "DATABASE_URL")
	envString(&config.SecretKey, "JWT_SECRET")
	envString(&config.FrontendURL, "FRONTEND_URL")
	envString(&config.Environment, "NODE_ENV")
	envString(&config.LogLevel, "LOG_LEVEL")
}

func envString(dst *string, name string) {
	if v, ok := lookupEnv(name); ok && v != "" {
		*dst = v
	}
}
