package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the process settings read from the environment.
type Env struct {
	ConfigPath  string `env:"ARENA_CONFIG" envDefault:"./arena_config.yaml"`
	DBPath      string `env:"ARENA_DB" envDefault:"./data/arena.db"`
	Address     string `env:"ARENA_ADDR"`
	MaxTurns    int    `env:"ARENA_MAX_TURNS"`
	RecentLimit int    `env:"ARENA_RECENT_LIMIT" envDefault:"20"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (*Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &e, nil
}

// Load parses the environment, reads the config file it points to and
// applies the environment overrides on top.
func Load() (*LoadedConfig, *Env, error) {
	e, err := ParseEnv()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := LoadConfig(e.ConfigPath)
	if err != nil {
		return nil, e, err
	}
	cfg.ApplyEnv(e)
	return cfg, e, nil
}

// ApplyEnv overrides file settings with the ones set in the environment.
func (c *LoadedConfig) ApplyEnv(e *Env) {
	if e == nil {
		return
	}
	if e.Address != "" {
		c.ServerAddress = e.Address
	}
	if e.MaxTurns > 0 {
		c.MaxTurns = e.MaxTurns
	}
	c.DBPath = e.DBPath
	c.RecentLimit = e.RecentLimit
}
