package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ericogr/tournament-arena/internal/game"

	"gopkg.in/yaml.v3"
)

type unitEntry struct {
	Name   string `yaml:"name"`
	Health int    `yaml:"health"`
	Attack int    `yaml:"attack"`
}

type rawConfig struct {
	UnitList []unitEntry `yaml:"unit_list"`
	Server   *struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Battle *struct {
		// Upper bound on attack attempts per battle before it is declared
		// stuck.
		MaxTurns int `yaml:"max_turns"`
		// Largest roster a single player may bring.
		MaxRosterSize int `yaml:"max_roster_size"`
	} `yaml:"battle"`
}

// LoadedConfig contains the unit catalog to seed plus server and battle
// settings.
type LoadedConfig struct {
	Units         []game.Unit
	ServerAddress string
	MaxTurns      int
	MaxRosterSize int
	DBPath        string
	RecentLimit   int
}

const (
	defaultAddress       = ":8080"
	defaultMaxTurns      = 100000
	defaultMaxRosterSize = 25
)

// LoadConfig reads the YAML configuration file at path. It requires a
// non-empty `unit_list`.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := yaml.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.UnitList) == 0 {
		return nil, fmt.Errorf("config file %s: unit_list is empty (provide 'unit_list' array)", path)
	}

	out := make([]game.Unit, 0, len(rc.UnitList))
	nameSet := make(map[string]struct{}, len(rc.UnitList))
	for _, u := range rc.UnitList {
		name := strings.TrimSpace(u.Name)
		if name == "" {
			return nil, fmt.Errorf("config file %s: unit entry missing 'name'", path)
		}
		ln := strings.ToLower(name)
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate unit name '%s'", path, name)
		}
		nameSet[ln] = struct{}{}
		if u.Health <= 0 {
			return nil, fmt.Errorf("config file %s: unit '%s' must have positive health", path, name)
		}
		out = append(out, game.Unit{Name: name, Health: u.Health, Attack: u.Attack})
	}

	cfg := &LoadedConfig{
		Units:         out,
		ServerAddress: defaultAddress,
		MaxTurns:      defaultMaxTurns,
		MaxRosterSize: defaultMaxRosterSize,
	}
	if rc.Server != nil && rc.Server.Address != "" {
		cfg.ServerAddress = rc.Server.Address
	}
	if rc.Battle != nil {
		if rc.Battle.MaxTurns > 0 {
			cfg.MaxTurns = rc.Battle.MaxTurns
		}
		if rc.Battle.MaxRosterSize > 0 {
			cfg.MaxRosterSize = rc.Battle.MaxRosterSize
		}
	}
	return cfg, nil
}
