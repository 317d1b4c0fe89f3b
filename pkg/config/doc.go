// Package config loads configuration structs from environment variables.
//
// It combines `github.com/caarlos0/env/v11` for tag-driven parsing with
// `github.com/joho/godotenv` for optional `.env` files:
//
//	type Settings struct {
//		MatchMode postcode.MatchMode `env:"POSTCODE_MATCH_MODE" envDefault:"contains"`
//	}
//
//	var s Settings
//	config.MustLoad(&s)
//
// Fields may be any type env supports, including encoding.TextUnmarshaler
// implementations such as slog.Level, postcode.BillingCountry and
// cardnetwork.Network.
//
// # Precedence
//
// Real environment variables override `.env` values, and earlier env files
// override later ones. WithEnvironment substitutes an explicit map for the
// process environment, which keeps tests hermetic.
//
// # Errors
//
// Parsing failures are joined with ErrParsingConfig, unreadable env files
// with ErrReadingEnvFile; test with errors.Is.
package config
