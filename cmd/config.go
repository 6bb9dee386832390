package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/deploymenttheory/go-certtool/internal/types"
)

// ToolConfig holds operator defaults loaded from an optional config file.
type ToolConfig struct {
	KeyDerivationRounds uint32 `mapstructure:"key_derivation_rounds"`
	DefaultKeypairFile  string `mapstructure:"default_keypair_file"`
}

// LoadToolConfig loads certtool configuration using Viper. A missing config
// file is fine; defaults apply.
func LoadToolConfig() (*ToolConfig, error) {
	viper.SetConfigName("certtool-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.certtool")
	viper.AddConfigPath("/etc/certtool")

	viper.SetDefault("key_derivation_rounds", types.DefaultKeyDerivationRounds)
	viper.SetDefault("default_keypair_file", "keypair.cert")

	viper.SetEnvPrefix("CERTTOOL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	var config ToolConfig
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if config.KeyDerivationRounds == 0 {
		return nil, fmt.Errorf("key_derivation_rounds must be greater than zero")
	}

	return &config, nil
}

// effectiveRounds resolves the key derivation work factor: the -R flag wins,
// then the config file, then the built-in default.
func effectiveRounds(flagRounds uint32, config *ToolConfig) uint32 {
	if flagRounds > 0 {
		return flagRounds
	}
	return config.KeyDerivationRounds
}
