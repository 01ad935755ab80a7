package adapter

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.API.BaseURL != "https://www.themealdb.com/api/json/v1/1/" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.UI.ExcerptLength != 100 {
		t.Errorf("UI.ExcerptLength = %d, want 100", cfg.UI.ExcerptLength)
	}
	if cfg.Session.DiscardStale {
		t.Error("Session.DiscardStale = true, want false")
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("Logging.Level = %q, want INFO", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: http://localhost:9999/api/
session:
  discard_stale: true
ui:
  excerpt_length: 40
viewer:
  command: feh
  args: ["--scale-down"]
logging:
  level: debug
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:9999/api/" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.UserAgent != "mealfinder/1.0" {
		t.Errorf("API.UserAgent = %q, want default kept", cfg.API.UserAgent)
	}
	if !cfg.Session.DiscardStale {
		t.Error("Session.DiscardStale = false, want true")
	}
	if cfg.UI.ExcerptLength != 40 {
		t.Errorf("UI.ExcerptLength = %d, want 40", cfg.UI.ExcerptLength)
	}
	if cfg.Viewer.Command != "feh" || !reflect.DeepEqual(cfg.Viewer.Args, []string{"--scale-down"}) {
		t.Errorf("Viewer = %#v", cfg.Viewer)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "ui:\n  excerpt_length: 40\n")
	t.Setenv("MEALFINDER_API_BASE_URL", "http://env.example/api/")
	t.Setenv("MEALFINDER_UI_EXCERPT_LENGTH", "60")
	t.Setenv("MEALFINDER_SESSION_DISCARD_STALE", "true")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.API.BaseURL != "http://env.example/api/" {
		t.Errorf("API.BaseURL = %q, want env value", cfg.API.BaseURL)
	}
	if cfg.UI.ExcerptLength != 60 {
		t.Errorf("UI.ExcerptLength = %d, want 60 from env", cfg.UI.ExcerptLength)
	}
	if !cfg.Session.DiscardStale {
		t.Error("Session.DiscardStale = false, want true from env")
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadConfig returned nil error for missing explicit file")
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero excerpt", "ui:\n  excerpt_length: 0\n", "excerpt_length"},
		{"blank base url", "api:\n  base_url: \"  \"\n", "base_url"},
		{"bad yaml", "ui: [", "reading config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("LoadConfig error = %v, want containing %q", err, tt.want)
			}
		})
	}
}
