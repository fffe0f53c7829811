package config

import (
	"testing"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{APIKey: "key"}
	cfg.ApplyDefaults()
	if cfg.Environment != EnvironmentDev {
		t.Errorf("expected dev environment, got %s", cfg.Environment)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base URL, got %s", cfg.BaseURL)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid dev", Config{APIKey: "k", Environment: EnvironmentDev}, false},
		{"valid production", Config{APIKey: "k", Environment: EnvironmentProduction}, false},
		{"missing api key", Config{Environment: EnvironmentDev}, true},
		{"unknown environment", Config{APIKey: "k", Environment: "staging"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Logging.ApplyDefaults()
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ANVIL_API_KEY", "env-key")
	t.Setenv("ANVIL_ENVIRONMENT", "production")

	cfg, err := Load(WithFileSystem(&fakeFS{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("expected env-key, got %s", cfg.APIKey)
	}
	if cfg.Environment != EnvironmentProduction {
		t.Errorf("expected production, got %s", cfg.Environment)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base URL, got %s", cfg.BaseURL)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("ANVIL_API_KEY", "")
	t.Setenv("ANVIL_ENVIRONMENT", "")

	if _, err := Load(WithFileSystem(&fakeFS{})); err == nil {
		t.Fatal("expected error when api key is unset")
	}
}

// fakeFS reports no files so tests never pick up a real .env.
type fakeFS struct{}

func (f *fakeFS) Exists(string) bool   { return false }
func (f *fakeFS) LoadEnv(string) error { return nil }
