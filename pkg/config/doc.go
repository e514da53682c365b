// Package config loads configuration structs from environment variables.
//
// Load parses `env` struct tags via caarlos0/env, after loading a .env file
// once per process if one exists (missing .env files are not an error).
// MustLoad panics on failure and is intended for configuration the process
// cannot start without.
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
package config
