// Package config loads typed configuration structs from environment variables.
//
// Values are parsed with github.com/caarlos0/env/v11 using `env` and
// `envDefault` struct tags. Optional .env files are read into the process
// environment with github.com/joho/godotenv before parsing.
//
// Unlike a process-wide singleton, every Load call parses afresh, so callers
// own the resulting value and may build several independent configurations.
//
// # Usage
//
//	type Config struct {
//		Precision int    `env:"MONEY_PRECISION" envDefault:"2"`
//		Algorithm string `env:"PASSPHRASE_ALGORITHM" envDefault:"shannon"`
//	}
//
//	func main() {
//		config.MustLoadEnv() // optional .env
//
//		var cfg Config
//		config.MustLoad(&cfg, config.WithPrefix("FORMKIT_"))
//	}
//
// # Error Handling
//
// Parsing failures are joined with ErrParsingConfig; unreadable explicit .env
// files are joined with ErrLoadingEnvFile. Use errors.Is to check them.
package config
