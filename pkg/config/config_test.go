package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.AllowHeaders) != 4 {
		t.Errorf("allow_headers=%d, want default list of 4", len(cfg.AllowHeaders))
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log_level=%q, want=info", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
allow_headers: [x-custom, accept]
script_format: bat
log_level: debug
no_color: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ScriptFormat != "bat" {
		t.Errorf("script_format=%q, want=bat", cfg.ScriptFormat)
	}
	if !cfg.NoColor {
		t.Error("no_color should be true")
	}
	p := cfg.Policy()
	if !p.Allows("X-Custom") || p.Allows("cookie") {
		t.Error("policy should use the configured allow-list only")
	}
}

func TestLoad_BadScriptFormat(t *testing.T) {
	path := writeConfig(t, "script_format: zsh\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown script format")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "allow_headers: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
