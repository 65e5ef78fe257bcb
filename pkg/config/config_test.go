package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleConfig = `
environment: test
server:
  port: 9090
  read_timeout: 5s
  write_timeout: 30s
  shutdown_timeout: 5s
log:
  level: debug
  format: json
  output: stdout
store:
  path: state.db
gemini:
  analysis_model: analysis-model
  pulse_model: pulse-model
  timeout: 60s
pulse:
  cache_ttl: 10m
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Gemini.Timeout != 60*time.Second {
		t.Errorf("gemini timeout = %v, want 60s", cfg.Gemini.Timeout)
	}
	if cfg.Pulse.CacheTTL != 10*time.Minute {
		t.Errorf("pulse ttl = %v, want 10m", cfg.Pulse.CacheTTL)
	}
}

func TestLoadMissingStorePath(t *testing.T) {
	bad := `
environment: test
gemini:
  analysis_model: a
  pulse_model: b
`
	if _, err := Load(writeConfig(t, bad)); err == nil {
		t.Fatalf("Load() should reject config without store.path")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key-123")
	t.Setenv("GEMSCOUT_STORE_PATH", "/tmp/override.db")

	cfg, err := LoadWithEnv(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadWithEnv() error = %v", err)
	}
	if cfg.Gemini.APIKey != "env-key-123" {
		t.Errorf("api key = %q, want env override", cfg.Gemini.APIKey)
	}
	if cfg.Store.Path != "/tmp/override.db" {
		t.Errorf("store path = %q, want env override", cfg.Store.Path)
	}
}
