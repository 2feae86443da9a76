// Package config loads the game and server configuration from YAML,
// falling back to playable defaults when the file is absent.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration sections
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Server  ServerConfig  `yaml:"server"`
	History HistoryConfig `yaml:"history"`
}

// GameConfig holds the economy tuning knobs
type GameConfig struct {
	// StartingMoney is the gold balance a new game begins with
	StartingMoney int `yaml:"starting_money"`

	// MaxQueueSize bounds the NPC arrival queue
	MaxQueueSize int `yaml:"max_queue_size"`

	// SpawnIntervalHours is the minimum game time between NPC
	// arrivals while no negotiation dialog is open
	SpawnIntervalHours int `yaml:"spawn_interval_hours"`

	// NegotiationSpawnIntervalHours replaces SpawnIntervalHours while
	// the player has the negotiation dialog open, so the queue does
	// not pile up mid-interaction
	NegotiationSpawnIntervalHours int `yaml:"negotiation_spawn_interval_hours"`

	// GoalTarget is how many player goals the game keeps active
	GoalTarget int `yaml:"goal_target"`

	// GoalMinWaitHours is the minimum game time between goal
	// generations
	GoalMinWaitHours int `yaml:"goal_min_wait_hours"`

	// GoalGenerationChance is the percent likelihood a due goal
	// generation actually happens
	GoalGenerationChance int `yaml:"goal_generation_chance"`

	// GoalAmountMin/Max bound the required amount of generated goals
	GoalAmountMin int `yaml:"goal_amount_min"`
	GoalAmountMax int `yaml:"goal_amount_max"`

	// HourLengthMS is the real time in milliseconds for one game hour
	HourLengthMS int `yaml:"hour_length_ms"`
}

// ServerConfig holds the websocket server settings
type ServerConfig struct {
	// ListenAddress is the host:port the server binds to
	ListenAddress string `yaml:"listen_address"`

	// AllowedOrigins is a list of origins allowed to connect via
	// WebSocket. Empty list enforces same-origin policy; "*" allows
	// all origins (not recommended for production).
	AllowedOrigins []string `yaml:"allowed_origins"`

	// MaxMessageSize is the maximum WebSocket message size in bytes
	MaxMessageSize int64 `yaml:"max_message_size"`
}

// HistoryConfig holds the guild chronicle database settings
type HistoryConfig struct {
	// Enabled turns the chronicle on; the game is fully playable
	// without it
	Enabled bool `yaml:"enabled"`

	// Dialect selects the database: "sqlite" or "postgres"
	Dialect string `yaml:"dialect"`

	// Path is the SQLite database file (sqlite dialect only)
	Path string `yaml:"path"`

	// DSN is the connection string (postgres dialect only)
	DSN string `yaml:"dsn"`
}

// DefaultConfig returns a Config with the stock tuning
func DefaultConfig() *Config {
	return &Config{
		Game: GameConfig{
			StartingMoney:                 1000,
			MaxQueueSize:                  8,
			SpawnIntervalHours:            3,
			NegotiationSpawnIntervalHours: 9,
			GoalTarget:                    3,
			GoalMinWaitHours:              5,
			GoalGenerationChance:          90,
			GoalAmountMin:                 1,
			GoalAmountMax:                 5,
			HourLengthMS:                  3000,
		},
		Server: ServerConfig{
			ListenAddress:  ":4600",
			AllowedOrigins: []string{},
			MaxMessageSize: 4096,
		},
		History: HistoryConfig{
			Enabled: false,
			Dialect: "sqlite",
			Path:    "data/chronicle.db",
		},
	}
}

// LoadConfig loads configuration from a YAML file. A missing file
// yields the defaults; a malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	config.clamp()
	return config, nil
}

// clamp keeps loaded values inside playable bounds
func (c *Config) clamp() {
	g := &c.Game
	if g.StartingMoney < 0 {
		g.StartingMoney = 0
	}
	if g.MaxQueueSize < 1 {
		g.MaxQueueSize = 1
	}
	if g.SpawnIntervalHours < 1 {
		g.SpawnIntervalHours = 1
	}
	if g.NegotiationSpawnIntervalHours < g.SpawnIntervalHours {
		g.NegotiationSpawnIntervalHours = g.SpawnIntervalHours
	}
	if g.GoalTarget < 0 {
		g.GoalTarget = 0
	}
	if g.GoalMinWaitHours < 0 {
		g.GoalMinWaitHours = 0
	}
	if g.GoalGenerationChance < 0 {
		g.GoalGenerationChance = 0
	}
	if g.GoalGenerationChance > 100 {
		g.GoalGenerationChance = 100
	}
	if g.GoalAmountMin < 1 {
		g.GoalAmountMin = 1
	}
	if g.GoalAmountMax < g.GoalAmountMin {
		g.GoalAmountMax = g.GoalAmountMin
	}
	if g.HourLengthMS < 1 {
		g.HourLengthMS = 1
	}
}

// IsOriginAllowed checks if the given origin may open a websocket.
// Allowed when the list contains "*" or the exact origin; an empty
// list means same-origin only (the caller compares against Host).
func (s *ServerConfig) IsOriginAllowed(origin string) bool {
	for _, allowed := range s.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
