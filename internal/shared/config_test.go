package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./demos.db" {
			t.Errorf("expected database path ./demos.db, got %s", config.Database.Path)
		}

		if config.Server.Port != 3000 {
			t.Errorf("expected server port 3000, got %d", config.Server.Port)
		}

		if config.GitHub.APIBaseURL != "https://api.github.com" {
			t.Errorf("expected GitHub API base URL https://api.github.com, got %s", config.GitHub.APIBaseURL)
		}

		if config.GitHub.RateLimit != 5.0 {
			t.Errorf("expected GitHub rate limit 5.0, got %f", config.GitHub.RateLimit)
		}

		if config.OAuth.ClientID != "your_github_client_id" {
			t.Errorf("expected oauth client_id your_github_client_id, got %s", config.OAuth.ClientID)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[server]
host = "0.0.0.0"
port = 8080

[github]
token = "ghp_test_token"
api_base_url = "https://github.example.com/api/v3"
rate_limit = 2.5

[oauth]
client_id = "test_client_id"
client_secret = "test_secret"
redirect_uri = "http://localhost:3000/auth/callback"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if config.Server.Port != 8080 {
			t.Errorf("expected server port 8080, got %d", config.Server.Port)
		}

		if config.GitHub.Token != "ghp_test_token" {
			t.Errorf("expected github token ghp_test_token, got %s", config.GitHub.Token)
		}

		if config.OAuth.ClientID != "test_client_id" {
			t.Errorf("expected oauth client_id test_client_id, got %s", config.OAuth.ClientID)
		}
	})

	t.Run("LoadConfigMissingFile", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})
}
