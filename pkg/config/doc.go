// Package config loads typed configuration structs from the environment.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment,
//     falling back to an optional `.env` in the working directory.
//   - Load parses the environment into any struct using `env` field tags.
//   - MustLoadEnv and MustLoad panic instead, for binaries that cannot start
//     without configuration.
//
// # Usage
//
//	if err := config.LoadEnv(); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//
//	var rules validator.Config
//	if err := config.Load(&rules); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Failures wrap the sentinels ErrLoadingEnvFile, ErrParsingConfig and
// ErrNilPointer, so they can be matched with errors.Is.
package config
