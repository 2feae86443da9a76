package npc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/guildhall-game/guildhall/internal/dice"
)

// NamePool holds the first and last names NPC identities are drawn
// from. Pools can be loaded from a YAML file; the built-in defaults
// keep the game playable without one.
type NamePool struct {
	First []string `yaml:"first"`
	Last  []string `yaml:"last"`
}

// namesConfig represents the structure of the names.yaml file
type namesConfig struct {
	Names NamePool `yaml:"names"`
}

// DefaultNamePool returns the built-in name pools
func DefaultNamePool() *NamePool {
	return &NamePool{
		First: []string{
			"Alda", "Bram", "Cedric", "Dora", "Edwin", "Freya", "Gareth",
			"Hilda", "Ivo", "Jorun", "Kara", "Leif", "Mira", "Nils",
			"Odette", "Percy", "Runa", "Sten", "Thea", "Ulf", "Vera",
			"Wenzel", "Ylva", "Zed",
		},
		Last: []string{
			"Ashdown", "Birchwood", "Cragg", "Dunmore", "Elmsworth",
			"Foxglove", "Grimsby", "Hollowell", "Ironside", "Krol",
			"Larkspur", "Moss", "Nethervale", "Oakhart", "Pellwick",
			"Quill", "Ravenshaw", "Stonebrook", "Thorngage", "Underhill",
			"Vance", "Wolfe",
		},
	}
}

// LoadNamePool loads name pools from a YAML file. An empty section
// falls back to the built-in defaults.
func LoadNamePool(filename string) (*NamePool, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read names file: %w", err)
	}

	var config namesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse names YAML: %w", err)
	}

	pool := &config.Names
	defaults := DefaultNamePool()
	if len(pool.First) == 0 {
		pool.First = defaults.First
	}
	if len(pool.Last) == 0 {
		pool.Last = defaults.Last
	}
	return pool, nil
}

// Random draws a full name from the pools
func (p *NamePool) Random(r *dice.Roller) string {
	first := p.First[r.Pick(len(p.First))]
	last := p.Last[r.Pick(len(p.Last))]
	return first + " " + last
}
