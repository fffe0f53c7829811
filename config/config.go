package config

import (
	"fmt"

	"github.com/levrofin/anvil-go/errors"
	"github.com/levrofin/anvil-go/logger"
	"github.com/levrofin/anvil-go/util"
)

// Environment selectors recognized by the client.
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "production"
)

// DefaultBaseURL is the Anvil API host used for both environments unless
// overridden.
const DefaultBaseURL = "https://app.useanvil.com"

// Config is the complete client configuration. APIKey and Environment are
// the only recognized options besides the BaseURL testing override and
// logging settings.
type Config struct {
	// APIKey authenticates every request. Required.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	// Environment selects the target environment: "dev" or "production".
	Environment string `yaml:"environment" mapstructure:"environment"`
	// BaseURL overrides the API host. Mainly useful against test servers.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Logging configures the client logger.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	c.Environment = util.Coalesce(c.Environment, EnvironmentDev)
	c.BaseURL = util.Coalesce(c.BaseURL, DefaultBaseURL)
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.InvalidConfig("api_key is required")
	}
	if c.Environment != EnvironmentDev && c.Environment != EnvironmentProduction {
		return errors.InvalidConfig(fmt.Sprintf("environment must be one of [dev, production] (got: %s)", c.Environment))
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.InvalidConfig(fmt.Sprintf("logging: %v", err)).WithCause(err)
	}
	return nil
}
