package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DONATUI_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Study.Platform != "Apple Health" {
		t.Fatalf("default platform mismatch: %q", cfg.Study.Platform)
	}
	if cfg.UI.Locale != "en" {
		t.Fatalf("default locale mismatch: %q", cfg.UI.Locale)
	}
	if cfg.Database.Path == "" {
		t.Fatalf("default database path empty")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[ui]\nlocale = \"nl\"\n\n[study]\nplatform = \"Apple Health NL\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DONATUI_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.Locale != "nl" {
		t.Fatalf("locale not read from file: %q", cfg.UI.Locale)
	}
	if cfg.Study.Platform != "Apple Health NL" {
		t.Fatalf("platform not read from file: %q", cfg.Study.Platform)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("DONATUI_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("DONATUI_UI_LOCALE", "nl")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.Locale != "nl" {
		t.Fatalf("env override not applied: %q", cfg.UI.Locale)
	}
}
