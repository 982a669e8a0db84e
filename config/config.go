// Package config holds the embedder-facing configuration record: where
// state lives on disk, and the transition_config overrides for each game
// engine (spec.md §6). Load/Validate/Save/DefaultConfig mirror the
// teacher's config.go shape, trimmed of the consensus/network/TLS fields
// that no longer apply once the host owns those concerns.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ajuna-network/ajunacore/battlemogs"
	"github.com/ajuna-network/ajunacore/dot4gravity"
)

// Config holds everything an embedder needs to stand up a host: where its
// AssetStore persists, and the per-engine transition_config records.
type Config struct {
	NodeID      string              `json:"node_id"`
	DataDir     string              `json:"data_dir"`
	BattleMogs  *battlemogs.Config  `json:"battlemogs"`
	Dot4Gravity *dot4gravity.Config `json:"dot4gravity"`
}

// DefaultConfig returns a single-node development configuration with both
// engines at their spec-default transition_config values.
func DefaultConfig() *Config {
	return &Config{
		NodeID:      "node0",
		DataDir:     "./data",
		BattleMogs:  battlemogs.DefaultConfig(),
		Dot4Gravity: dot4gravity.DefaultConfig(),
	}
}

// Load reads a JSON config file from path, filling in defaults for any
// field the file omits, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required fields are present and well-formed.
func (c *Config) Validate() error {
	if c.NodeID == "" {
		return fmt.Errorf("node_id must not be empty")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if c.BattleMogs == nil {
		return fmt.Errorf("battlemogs config must not be nil")
	}
	if c.Dot4Gravity == nil {
		return fmt.Errorf("dot4gravity config must not be nil")
	}
	if c.Dot4Gravity.BoardWidth <= 0 || c.Dot4Gravity.BoardHeight <= 0 {
		return fmt.Errorf("dot4gravity: board dimensions must be positive")
	}
	if c.Dot4Gravity.NumBlocks < 0 {
		return fmt.Errorf("dot4gravity: num_blocks must not be negative")
	}
	return nil
}

// Save writes the config to path as formatted JSON.
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
