// Package config loads runtime configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config carries the settings shared by all commands. Command-line flags
// take precedence over these values.
type Config struct {
	// BWPath is the Bitwarden CLI binary.
	BWPath string `env:"BW_PATH" envDefault:"bw"`
	// OPPath is the 1Password CLI binary.
	OPPath string `env:"OP_PATH" envDefault:"op"`
	// DataDir holds dumps and staged attachments during a run.
	DataDir string `env:"OPMIGRATE_DATA_DIR" envDefault:"data"`
	// Account is the default 1Password account shorthand or ID.
	Account string `env:"OP_ACCOUNT"`
	// Vault is the default 1Password vault name or ID.
	Vault string `env:"OP_VAULT"`
	// BWSession is a pre-existing Bitwarden session token.
	BWSession string `env:"BW_SESSION"`
}

// Load reads configuration from a .env file (if present) and the process
// environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
