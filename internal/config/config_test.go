package config

import (
	"path/filepath"
	"testing"
)

func TestConfigDir_HonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	if got, want := ConfigDir(), filepath.Join("/tmp/xdg-test", "casa"); got != want {
		t.Fatalf("ConfigDir = %q, want %q", got, want)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("Load = %+v, want defaults", cfg)
	}
	if Exists() {
		t.Fatal("Exists = true before any save")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := DefaultConfig()
	want.General.DefaultYears = 25
	want.General.ScenarioPath = "casa.toml"
	want.Appearance.Theme = "catppuccin-mocha"

	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}
