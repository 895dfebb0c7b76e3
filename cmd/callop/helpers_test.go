package main

import (
	"os"
	"path/filepath"
	"testing"

	"callop/internal/driver"
)

func writeManifest(t *testing.T, dir, body string) {
	t.Helper()
	path := filepath.Join(dir, "callop.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write callop.toml: %v", err)
	}
}

func TestResolveOptionsManifestDefaults(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `[package]
name = "demo"

[syntax]
bind_this = true

[diagnostics]
max = 7
`)
	target := filepath.Join(root, "main.js")
	if err := os.WriteFile(target, []byte("f::(r);\n"), 0o600); err != nil {
		t.Fatalf("write main.js: %v", err)
	}

	cmd := newRootCmd()
	opts, manifest, err := resolveOptions(cmd, target)
	if err != nil {
		t.Fatalf("resolveOptions: %v", err)
	}
	if manifest == nil {
		t.Fatalf("expected manifest to be found")
	}
	if !opts.BindThis {
		t.Fatalf("expected BindThis from manifest")
	}
	if opts.MaxDiagnostics != 7 {
		t.Fatalf("MaxDiagnostics = %d, want 7", opts.MaxDiagnostics)
	}
}

func TestResolveOptionsFlagOverridesManifest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `[package]
name = "demo"

[diagnostics]
max = 7
`)

	cmd := newRootCmd()
	if err := cmd.PersistentFlags().Set("max-diagnostics", "3"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	opts, _, err := resolveOptions(cmd, root)
	if err != nil {
		t.Fatalf("resolveOptions: %v", err)
	}
	if opts.MaxDiagnostics != 3 {
		t.Fatalf("MaxDiagnostics = %d, want 3", opts.MaxDiagnostics)
	}
}

func TestResolveOptionsWithoutManifest(t *testing.T) {
	root := t.TempDir()

	cmd := newRootCmd()
	opts, manifest, err := resolveOptions(cmd, root)
	if err != nil {
		t.Fatalf("resolveOptions: %v", err)
	}
	if manifest != nil {
		t.Fatalf("expected no manifest, got %q", manifest.Path)
	}
	if opts.MaxDiagnostics != driver.DefaultMaxDiagnostics {
		t.Fatalf("MaxDiagnostics = %d, want default %d",
			opts.MaxDiagnostics, driver.DefaultMaxDiagnostics)
	}
	if opts.BindThis {
		t.Fatalf("BindThis should default to false")
	}
}

func TestUseColorExplicitModes(t *testing.T) {
	cmd := newRootCmd()

	if err := cmd.PersistentFlags().Set("color", "on"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if !useColor(cmd, nil) {
		t.Fatalf("color=on should enable coloring")
	}

	if err := cmd.PersistentFlags().Set("color", "off"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if useColor(cmd, nil) {
		t.Fatalf("color=off should disable coloring")
	}
}
