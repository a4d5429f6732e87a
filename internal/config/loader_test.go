package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadBlockfall("")
	if err != nil {
		t.Fatalf("LoadBlockfall() failed: %v", err)
	}
	if cfg != DefaultBlockfallConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultBlockfallConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := writeFile(t, t.TempDir(), "rules.yaml", `
timing:
  start_delay: 500ms
scoring:
  line_base: 40
`)

	cfg, err := LoadBlockfall(path)
	if err != nil {
		t.Fatalf("LoadBlockfall() failed: %v", err)
	}
	if cfg.Timing.StartDelay != 500*time.Millisecond {
		t.Errorf("StartDelay = %s, expected 500ms", cfg.Timing.StartDelay)
	}
	if cfg.Scoring.LineBase != 40 {
		t.Errorf("LineBase = %d, expected 40", cfg.Scoring.LineBase)
	}
	// Untouched keys keep defaults
	if cfg.Timing.MinDelay != 100*time.Millisecond {
		t.Errorf("MinDelay = %s, expected default 100ms", cfg.Timing.MinDelay)
	}
	if cfg.Scoring.LockBonus != 10 {
		t.Errorf("LockBonus = %d, expected default 10", cfg.Scoring.LockBonus)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBlockfall(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := writeFile(t, dir, "bad.yaml", "timing: [not, a, map]")
	if _, err := LoadBlockfall(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := writeFile(t, dir, "invalid.yaml", "timing:\n  start_delay: 50ms\n  min_delay: 100ms\n")
	_, err := LoadBlockfall(invalid)
	if err == nil {
		t.Fatal("expected validation error when min_delay exceeds start_delay")
	}
	if !strings.Contains(err.Error(), "min_delay") {
		t.Errorf("error should mention min_delay, got %v", err)
	}
}

func TestLoadLocalConfigsDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "configs"), "blockfall.yaml", "scoring:\n  lock_bonus: 3\n")

	cfg, err := LoadBlockfall("")
	if err != nil {
		t.Fatalf("LoadBlockfall() failed: %v", err)
	}
	if cfg.Scoring.LockBonus != 3 {
		t.Errorf("LockBonus = %d, expected 3 from ./configs", cfg.Scoring.LockBonus)
	}
}

func TestApplyBlockfallPreset(t *testing.T) {
	tests := []struct {
		preset        DifficultyPreset
		wantStart     time.Duration
		wantDecrement time.Duration
	}{
		{DifficultyEasy, 900 * time.Millisecond, 3 * time.Millisecond},
		{DifficultyNormal, 700 * time.Millisecond, 3 * time.Millisecond},
		{DifficultyHard, 400 * time.Millisecond, 3 * time.Millisecond},
		{DifficultyFixed, 700 * time.Millisecond, 0},
		{"", 700 * time.Millisecond, 3 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBlockfallConfig()
			ApplyBlockfallPreset(&cfg, tc.preset)

			if cfg.Timing.StartDelay != tc.wantStart {
				t.Errorf("StartDelay = %s, expected %s", cfg.Timing.StartDelay, tc.wantStart)
			}
			if cfg.Timing.DecrementPerRow != tc.wantDecrement {
				t.Errorf("DecrementPerRow = %s, expected %s", cfg.Timing.DecrementPerRow, tc.wantDecrement)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParseDifficultyPreset(s); err != nil {
			t.Errorf("ParseDifficultyPreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseDifficultyPreset("nightmare"); err == nil {
		t.Error("ParseDifficultyPreset(nightmare) should fail")
	}
}
