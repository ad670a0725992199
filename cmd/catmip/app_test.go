package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRootSubcommands(t *testing.T) {
	root := rootCmd()

	want := []string{"build", "json", "csv", "skos", "verify", "new", "convert", "version"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestSetupFlagOverrides(t *testing.T) {
	a := &app{}
	if err := a.setup("", "debug", "/srv/standards", "/srv/build", true); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if a.cfg.Registry.StandardsDir != "/srv/standards" {
		t.Errorf("StandardsDir = %q", a.cfg.Registry.StandardsDir)
	}
	if a.cfg.Registry.BuildDir != "/srv/build" {
		t.Errorf("BuildDir = %q", a.cfg.Registry.BuildDir)
	}
	if !a.cfg.Registry.Strict {
		t.Error("strict flag not applied")
	}
	if a.logger == nil {
		t.Error("logger not configured")
	}
}

func TestSetupExplicitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catmip.yaml")
	content := "registry:\n  standards_dir: terms\nsite:\n  name: Test Registry\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	a := &app{}
	if err := a.setup(path, "info", "", "", false); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if a.cfg.Registry.StandardsDir != "terms" {
		t.Errorf("StandardsDir = %q", a.cfg.Registry.StandardsDir)
	}
	if a.cfg.Site.Name != "Test Registry" {
		t.Errorf("Site.Name = %q", a.cfg.Site.Name)
	}
	// Fields absent from the file keep their defaults.
	if a.cfg.Registry.BuildDir == "" {
		t.Error("BuildDir default lost in merge")
	}
}

func TestSetupMissingConfigFile(t *testing.T) {
	a := &app{}
	if err := a.setup(filepath.Join(t.TempDir(), "nope.yaml"), "info", "", "", false); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}
