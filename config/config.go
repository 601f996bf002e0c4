/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mikeb26/swisspair/swiss"
)

// Config holds the runtime parameters for the pairing tools.
type Config struct {
	// DatabaseURL is the Postgres connection string. Empty selects the
	// club-website store instead.
	DatabaseURL string

	// ClubWebBaseURL is the root of the club website scraped when no
	// database is configured.
	ClubWebBaseURL string

	// Strategy names the pairing system, dutch or burstein.
	Strategy string

	TotalRounds int

	Section string

	Scoring swiss.ScoringTable
}

// scoringFile mirrors the optional YAML scoring-override file. Omitted
// fields keep their standard values.
type scoringFile struct {
	Win                 *float64 `yaml:"win"`
	Draw                *float64 `yaml:"draw"`
	Loss                *float64 `yaml:"loss"`
	ZeroPointBye        *float64 `yaml:"zeroPointBye"`
	ForfeitLoss         *float64 `yaml:"forfeitLoss"`
	PairingAllocatedBye *float64 `yaml:"pairingAllocatedBye"`
}

// Load reads configuration from environment variables, optionally seeded
// from a .env file. SWISSPAIR_SCORING_FILE points at a YAML scoring
// override.
func Load() (*Config, error) {
	// a missing .env file is not an error
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		ClubWebBaseURL: os.Getenv("SWISSPAIR_CLUBWEB_URL"),
		Strategy:       os.Getenv("SWISSPAIR_STRATEGY"),
		Section:        os.Getenv("SWISSPAIR_SECTION"),
		Scoring:        swiss.DefaultScoring(),
	}
	if cfg.Strategy == "" {
		cfg.Strategy = "dutch"
	}
	if cfg.DatabaseURL == "" && cfg.ClubWebBaseURL == "" {
		return nil, fmt.Errorf("config: neither DATABASE_URL nor SWISSPAIR_CLUBWEB_URL is set")
	}

	if v := os.Getenv("SWISSPAIR_TOTAL_ROUNDS"); v != "" {
		rounds, err := strconv.Atoi(v)
		if err != nil || rounds <= 0 {
			return nil, fmt.Errorf("config: invalid SWISSPAIR_TOTAL_ROUNDS %q", v)
		}
		cfg.TotalRounds = rounds
	}

	if path := os.Getenv("SWISSPAIR_SCORING_FILE"); path != "" {
		scoring, err := loadScoringFile(path)
		if err != nil {
			return nil, err
		}
		cfg.Scoring = scoring
	}

	return cfg, nil
}

func loadScoringFile(path string) (swiss.ScoringTable, error) {
	table := swiss.DefaultScoring()

	data, err := os.ReadFile(path)
	if err != nil {
		return table, fmt.Errorf("config: read scoring file: %w", err)
	}
	var sf scoringFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return table, fmt.Errorf("config: parse scoring file %v: %w", path, err)
	}

	apply := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&table.Win, sf.Win)
	apply(&table.Draw, sf.Draw)
	apply(&table.Loss, sf.Loss)
	apply(&table.ZeroPointBye, sf.ZeroPointBye)
	apply(&table.ForfeitLoss, sf.ForfeitLoss)
	apply(&table.PairingAllocatedBye, sf.PairingAllocatedBye)

	return table, nil
}
