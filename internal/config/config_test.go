package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
models = ["claude-internal-preview"]
tools = ["^Custom(\\(.+\\))?$"]

[description]
min_length = 5
max_length = 120

[ui]
accent = "#A78BFA"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	opts, err := cfg.RuleOptions()
	if err != nil {
		t.Fatalf("RuleOptions: %v", err)
	}

	if !opts.Models["claude-internal-preview"] {
		t.Error("extra model not merged")
	}
	if !opts.Models["claude-3-5-haiku-20241022"] {
		t.Error("built-in models should survive a merge")
	}
	if opts.DescriptionMin != 5 || opts.DescriptionMax != 120 {
		t.Errorf("thresholds = (%d, %d)", opts.DescriptionMin, opts.DescriptionMax)
	}
	if cfg.UI.Accent != "#A78BFA" {
		t.Errorf("accent = %q", cfg.UI.Accent)
	}

	matched := false
	for _, re := range opts.ToolPatterns {
		if re.MatchString("Custom(scope)") {
			matched = true
		}
	}
	if !matched {
		t.Error("extra tool pattern not compiled")
	}
}

func TestReplaceModels(t *testing.T) {
	cfg := &Config{ReplaceModels: true, Models: []string{"only-this"}}
	opts, err := cfg.RuleOptions()
	if err != nil {
		t.Fatalf("RuleOptions: %v", err)
	}
	if !opts.Models["only-this"] || len(opts.Models) != 1 {
		t.Errorf("models = %v", opts.Models)
	}
}

func TestInvalidToolPattern(t *testing.T) {
	cfg := &Config{Tools: []string{"("}}
	if _, err := cfg.RuleOptions(); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	if _, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error")
	}
}
