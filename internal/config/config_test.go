package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMissingKeyIsFatal(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	_, err := Load("")
	if !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("error = %v, want ErrNoAPIKey", err)
	}
	if err.Error() != "No Linear API key provided" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestKeyFromEnvironment(t *testing.T) {
	t.Setenv(EnvAPIKey, "lin_api_env")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "lin_api_env" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.Endpoint != "" {
		t.Errorf("Endpoint = %q, want empty", cfg.Endpoint)
	}
}

func TestConfigFileOverridesEnvironment(t *testing.T) {
	t.Setenv(EnvAPIKey, "lin_api_env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api_key: lin_api_file\nendpoint: http://localhost:8080/graphql\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "lin_api_file" {
		t.Errorf("APIKey = %q, want the file's key", cfg.APIKey)
	}
	if cfg.Endpoint != "http://localhost:8080/graphql" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
}

func TestConfigFileWithoutKeyFallsBackToEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "lin_api_env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("endpoint: http://proxy/graphql\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "lin_api_env" {
		t.Errorf("APIKey = %q, want the env key", cfg.APIKey)
	}
	if cfg.Endpoint != "http://proxy/graphql" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
}

func TestAbsentConfigFileIsNotAnError(t *testing.T) {
	t.Setenv(EnvAPIKey, "lin_api_env")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "lin_api_env" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
}

func TestMalformedConfigFile(t *testing.T) {
	t.Setenv(EnvAPIKey, "lin_api_env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_key: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
