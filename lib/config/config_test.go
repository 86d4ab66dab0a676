// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bettracker.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Backend.BaseURL != "http://127.0.0.1:8000/api" {
		t.Errorf("default base_url = %q", cfg.Backend.BaseURL)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("default log level = %q", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
backend:
  base_url: http://tracker.lan:9000/api
log:
  level: debug
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Backend.BaseURL != "http://tracker.lan:9000/api" {
		t.Errorf("base_url = %q", cfg.Backend.BaseURL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
	// Untouched sections keep their defaults.
	if cfg.Import.ScreenshotDir == "" {
		t.Error("screenshot_dir default lost in merge")
	}
}

func TestLoadFileExpandsHome(t *testing.T) {
	t.Setenv("HOME", "/home/punter")
	path := writeConfig(t, `
import:
  screenshot_dir: ${HOME}/screenshots
log:
  file: ${HOME}/bettracker.log
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Import.ScreenshotDir != "/home/punter/screenshots" {
		t.Errorf("screenshot_dir = %q", cfg.Import.ScreenshotDir)
	}
	if cfg.Log.File != "/home/punter/bettracker.log" {
		t.Errorf("log file = %q", cfg.Log.File)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv(EnvVar, "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load without env: %v", err)
	}
	if cfg.Backend.BaseURL != "http://127.0.0.1:8000/api" {
		t.Errorf("base_url = %q", cfg.Backend.BaseURL)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "bad url",
			content: "backend:\n  base_url: not-a-url\n",
			want:    "base_url",
		},
		{
			name:    "bad level",
			content: "log:\n  level: verbose\n",
			want:    "log.level",
		},
		{
			name:    "bad bookmaker",
			content: "import:\n  default_bookmaker: bwin\n",
			want:    "default_bookmaker",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tc.content))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %v, want mention of %s", err, tc.want)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/bettracker.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
