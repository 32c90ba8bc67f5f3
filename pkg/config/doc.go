// Package config loads typed configuration structs from environment
// variables.
//
// It wraps github.com/joho/godotenv, which merges .env files into the process
// environment without overriding variables that are already set, and
// github.com/caarlos0/env/v11, which parses the environment into a struct
// using `env` and `envDefault` field tags.
//
// # Usage
//
//	type Settings struct {
//		Language string `env:"LANGUAGE" envDefault:"en"`
//		Strict   bool   `env:"STRICT"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("VALIDATOR_")); err != nil {
//		return err
//	}
//
// Without WithEnvFiles, Load tries the .env file in the working directory and
// silently ignores it when absent. Explicitly listed files must exist.
//
// # Errors
//
// Failures are reported as ErrNilPointer, ErrLoadingEnvFile or
// ErrParsingConfig joined with the underlying cause, so callers can use
// errors.Is.
package config
