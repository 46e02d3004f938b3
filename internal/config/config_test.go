package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoad_MissingFile returns the defaults without error.
func TestLoad_MissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Listen != ":8470" {
		t.Errorf("expected default listen address, got %q", s.Listen)
	}
	if s.Canvas.Width != 800 || s.Canvas.Height != 600 {
		t.Errorf("expected default canvas 800x600, got %gx%g", s.Canvas.Width, s.Canvas.Height)
	}
	if s.LogLevel != "info" {
		t.Errorf("expected default log level info, got %q", s.LogLevel)
	}
}

// TestLoad_File overrides only the fields present in the file.
func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.toml")
	content := `
listen = "127.0.0.1:9000"

[canvas]
width = 1280
height = 720
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Listen != "127.0.0.1:9000" {
		t.Errorf("expected overridden listen address, got %q", s.Listen)
	}
	if s.Canvas.Width != 1280 || s.Canvas.Height != 720 {
		t.Errorf("expected canvas 1280x720, got %gx%g", s.Canvas.Width, s.Canvas.Height)
	}
	if s.LogLevel != "info" {
		t.Errorf("expected the absent log level to keep its default, got %q", s.LogLevel)
	}
}

// TestLoad_Malformed reports a parse error.
func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.toml")
	if err := os.WriteFile(path, []byte("listen = [broken"), 0o644); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed TOML")
	}
}
