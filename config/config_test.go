/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DATABASE_URL", "SWISSPAIR_CLUBWEB_URL",
		"SWISSPAIR_STRATEGY", "SWISSPAIR_SECTION", "SWISSPAIR_TOTAL_ROUNDS",
		"SWISSPAIR_SCORING_FILE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// TestLoadDefaults verifies strategy and scoring defaults with a minimal
// environment.
func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/swisspair")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Strategy != "dutch" {
		t.Errorf("Strategy = %q; want dutch", cfg.Strategy)
	}
	if cfg.Scoring.Win != 1.0 || cfg.Scoring.Draw != 0.5 {
		t.Errorf("scoring = %+v; want standard table", cfg.Scoring)
	}
}

// TestLoadRequiresStore verifies Load fails when neither store is
// configured.
func TestLoadRequiresStore(t *testing.T) {
	clearEnv(t)

	if _, err := Load(); err == nil {
		t.Error("Load succeeded with no store configured; want error")
	}
}

// TestLoadRejectsBadRounds verifies non-numeric round counts fail.
func TestLoadRejectsBadRounds(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/swisspair")
	t.Setenv("SWISSPAIR_TOTAL_ROUNDS", "five")

	if _, err := Load(); err == nil {
		t.Error("Load succeeded with bad round count; want error")
	}
}

// TestScoringFile verifies the YAML override replaces only the fields it
// names.
func TestScoringFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "scoring.yaml")
	if err := os.WriteFile(path, []byte("win: 1.2\npairingAllocatedBye: 0.5\n"),
		0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DATABASE_URL", "postgres://localhost/swisspair")
	t.Setenv("SWISSPAIR_SCORING_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scoring.Win != 1.2 {
		t.Errorf("Win = %v; want 1.2", cfg.Scoring.Win)
	}
	if cfg.Scoring.PairingAllocatedBye != 0.5 {
		t.Errorf("PairingAllocatedBye = %v; want 0.5",
			cfg.Scoring.PairingAllocatedBye)
	}
	if cfg.Scoring.Draw != 0.5 {
		t.Errorf("Draw = %v; want untouched 0.5", cfg.Scoring.Draw)
	}
}
