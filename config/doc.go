// Package config provides configuration loading for the Anvil client.
//
// The client recognizes an API key, an environment selector, and an
// optional base URL override — nothing else. Configuration can be
// constructed directly or loaded from the environment (including a
// .env file):
//
//	cfg, err := config.Load()
//
// Recognized environment variables:
//
//	ANVIL_API_KEY      the API key (required)
//	ANVIL_ENVIRONMENT  "dev" (default) or "production"
//	ANVIL_BASE_URL     base URL override, mainly for testing
package config
