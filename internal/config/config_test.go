package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	l := cfg.Lint
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"MaxIndent", l.MaxIndent, 8},
		{"SuspectIndent", l.SuspectIndent, 2},
		{"TestBaseClass", l.TestBaseClass, "NH.xunit.TestCase"},
		{"SkipKeywords", len(l.SkipKeywords), 11},
		{"BareHeaders", len(l.BareHeaders), 2},
		{"Include", len(cfg.Files.Include), 1},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")

	yaml := `lint:
  max_indent: 10
  helper_factories:
    - new Shortcut
    - new Hotkey
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Lint.MaxIndent != 10 {
		t.Errorf("MaxIndent: got %d, want 10", cfg.Lint.MaxIndent)
	}
	want := []string{"new Shortcut", "new Hotkey"}
	if !reflect.DeepEqual(cfg.Lint.HelperFactories, want) {
		t.Errorf("HelperFactories: got %q, want %q", cfg.Lint.HelperFactories, want)
	}

	// Unspecified fields keep defaults.
	if cfg.Lint.SuspectIndent != 2 {
		t.Errorf("SuspectIndent: got %d, want 2 (default)", cfg.Lint.SuspectIndent)
	}
	if cfg.Lint.TestBaseClass != "NH.xunit.TestCase" {
		t.Errorf("TestBaseClass: got %q, want default", cfg.Lint.TestBaseClass)
	}
}

func TestLoadNoConfigReturnsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestDiscoverPriority(t *testing.T) {
	dir := t.TempDir()

	content := []byte("lint:\n  max_indent: 8\n")

	names := []string{"memberlint.yml", "memberlint.yaml", ".memberlint.yml", ".memberlint.yaml"}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	// Each removal exposes the next name in search order.
	for i, name := range names {
		got := Discover(dir)
		want := filepath.Join(dir, name)
		if got != want {
			t.Errorf("step %d: Discover = %q, want %q", i, got, want)
		}
		if err := os.Remove(want); err != nil {
			t.Fatal(err)
		}
	}

	if got := Discover(dir); got != "" {
		t.Errorf("Discover in emptied dir: got %q, want empty string", got)
	}
}

func TestLoadDiscovery(t *testing.T) {
	dir := t.TempDir()
	yaml := "files:\n  include:\n    - \"src/**/*.js\"\n"
	if err := os.WriteFile(filepath.Join(dir, ".memberlint.yml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if len(cfg.Files.Include) != 1 || cfg.Files.Include[0] != "src/**/*.js" {
		t.Errorf("Include: got %q, want [src/**/*.js]", cfg.Files.Include)
	}
	// Exclude was not given, so the default list survives.
	if !reflect.DeepEqual(cfg.Files.Exclude, DefaultConfig().Files.Exclude) {
		t.Errorf("Exclude: got %q, want defaults", cfg.Files.Exclude)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")

	if err := os.WriteFile(path, []byte("{{{{not valid yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load("/nonexistent/path/config.yml"); err == nil {
		t.Error("expected error for missing explicit path, got nil")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yml")

	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("expected default config for empty file, got %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero max indent", "lint:\n  max_indent: 0\n"},
		{"negative suspect indent", "lint:\n  suspect_indent: -1\n"},
		{"empty include", "files:\n  include: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.yml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
