// Package config loads application configuration from environment variables
// into annotated Go structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the default `.env` file in the working directory is loaded once per
// process (silently skipped when absent), then the environment is parsed
// into the struct via `env` field tags.
//
// # Usage
//
//	type AppConfig struct {
//		LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
//		LogFormat  string `env:"LOG_FORMAT" envDefault:"json"`
//		ThemePath  string `env:"THEME_PATH"`
//		StackLimit int    `env:"STACK_LIMIT" envDefault:"5"`
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
//
// MustLoad panics on failure for configuration the process cannot start
// without.
package config
