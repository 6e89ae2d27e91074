// Package config loads application configuration from environment variables
// into tagged structs.
//
// It combines github.com/joho/godotenv, which populates the process
// environment from .env files, with github.com/caarlos0/env/v11, which parses
// the environment into struct fields using `env`, `envDefault` and `envPrefix`
// tags. Nested structs such as httpserver.Config and logger.Config can be
// embedded directly in a service config.
//
//	type Config struct {
//		Schema string           `env:"SCHEMA,required"`
//		HTTP   httpserver.Config
//		Log    logger.Config
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg, config.WithPrefix("FORMKIT_"))
//
// Parsing failures wrap ErrParsingConfig; use errors.Is to detect them.
package config
