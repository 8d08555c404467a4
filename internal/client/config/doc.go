// Package config loads runtime configuration for the TaskMate CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags.
//
// Supported flags
//
//	-a string   base URL of the TaskMate API
//	-p string   path of the local SQLite session database
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// Durations may be strings such as "10s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://localhost:5000",
//	  "database_path": "taskmate.db",
//	  "request_timeout": "10s"
//	}
package config
