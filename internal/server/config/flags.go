package config

import (
	"flag"
	"os"
	"time"

	"github.com/Shahzad-Ali-44/TaskMate/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g. ":5000")
//	-g string   gRPC health bind address ("" disables)
//	-d string   PostgreSQL DSN
//	-s string   session token secret key
//	-t int      session token validity, hours
//	-b int      bcrypt cost
//	-f string   frontend origin for CORS
//	-e string   environment name
//	-l string   log level
//
// Only these flags are read from os.Args; anything else is left for other
// flag sets. Parse errors panic.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-d", "-s", "-t", "-b", "-f", "-e", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port to run server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC health address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.SessionTokenValidityDuration.Hours()), "session token validity (in hours)")

	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.FrontendURL, "f", config.FrontendURL, "frontend URL allowed by CORS")
	fs.StringVar(&config.Environment, "e", config.Environment, "environment (development, production)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.SessionTokenValidityDuration = time.Duration(*tokenValidity) * time.Hour
		}
	})
}
