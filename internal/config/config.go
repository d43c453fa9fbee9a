package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const (
	DefaultGenerateURL  = "https://fal.run/xai/grok-imagine-image"
	DefaultEditURL      = "https://fal.run/xai/grok-imagine-image/edit"
	DefaultGatewayURL   = "http://localhost:18789"
	DefaultRelayCommand = "openclaw"
	DefaultTransport    = "cli"
)

var envBindings = map[string]string{
	"fal.api_key":   "FAL_KEY",
	"gateway.url":   "OPENCLAW_GATEWAY_URL",
	"gateway.token": "OPENCLAW_GATEWAY_TOKEN",
}

// Load reads the optional clawpic.toml from the working directory and binds
// the environment variables on top of it. Env values win over file values.
func Load() error {
	viper.SetConfigName("clawpic")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("could not read config file: %w", err)
		}
	}

	viper.SetDefault("fal.generate_url", DefaultGenerateURL)
	viper.SetDefault("fal.edit_url", DefaultEditURL)
	viper.SetDefault("gateway.url", DefaultGatewayURL)
	viper.SetDefault("relay.command", DefaultRelayCommand)
	viper.SetDefault("relay.transport", DefaultTransport)
	viper.SetDefault("log.level", "info")

	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			return fmt.Errorf("could not bind %s: %w", env, err)
		}
	}

	return nil
}
