// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	// Batch mode
	ContestPath string
	BallotsPath string
	OutputPath  string

	// Serve mode
	Serve        bool
	Port         int
	DatabaseURL  string
	DatabaseType string
	AdminKeySalt string
}

// ParseFlags validates flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("ballotbox", flag.ContinueOnError)

	// Batch mode (can be CLI args or env)
	fs.StringVar(&cfg.ContestPath, "contest", "", "Contest definition file")
	fs.StringVar(&cfg.BallotsPath, "ballots", "", "Ballots file (JSON lines)")
	fs.StringVar(&cfg.OutputPath, "o", "", "Result output file")

	// Serve mode
	fs.BoolVar(&cfg.Serve, "serve", false, "Run the HTTP API instead of a one-shot tally")
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables, then defaults
	if cfg.ContestPath == "" {
		cfg.ContestPath = os.Getenv("CONTEST_FILE")
	}
	if cfg.ContestPath == "" {
		cfg.ContestPath = "election.json"
	}
	if cfg.BallotsPath == "" {
		cfg.BallotsPath = os.Getenv("BALLOTS_FILE")
	}
	if cfg.BallotsPath == "" {
		cfg.BallotsPath = "votes.json"
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = os.Getenv("OUTPUT_FILE")
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "result.json"
	}

	if !cfg.Serve {
		return cfg, nil
	}

	// The rest only matters when serving
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4117 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required in serve mode (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	// Secrets - MUST be provided
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required in serve mode")
	}

	return cfg, nil
}
