package balancing

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/guildhall-game/guildhall/internal/items"
	"github.com/guildhall-game/guildhall/internal/logger"
	"github.com/guildhall-game/guildhall/internal/npc"
)

// RowDefinition represents one balancing row in YAML format.
// time_per_quantity_d and quantity_per_day are aliases from different
// data-file generations; whichever is positive wins.
type RowDefinition struct {
	ItemType            string `yaml:"item_type"`
	BaseProbability     int    `yaml:"base_probability"`
	MinGoldCompensation int    `yaml:"min_gold_compensation"`
	TimePerQuantityDays int    `yaml:"time_per_quantity_d,omitempty"`
	QuantityPerDay      int    `yaml:"quantity_per_day,omitempty"`
	QuantityStep        int    `yaml:"quantity_step"`
}

// roleTableConfig represents the structure of a per-role table file
type roleTableConfig struct {
	Rows []RowDefinition `yaml:"rows"`
}

// EconomyDefinition represents one item economy row in YAML format
type EconomyDefinition struct {
	ItemType                 string  `yaml:"item_type"`
	Level                    int     `yaml:"level"`
	MeanWorth                float64 `yaml:"mean_worth"`
	MaxWorth                 float64 `yaml:"max_worth"`
	MeanTimePerQuantityHours float64 `yaml:"mean_time_per_quantity_h"`
	MeanQuantityStep         int     `yaml:"mean_quantity_step"`
}

// economyConfig represents the structure of the item economy file
type economyConfig struct {
	Items []EconomyDefinition `yaml:"items"`
}

// LoadRoleTable loads the balancing rows for one role from a YAML
// file into the table. Rows with unknown item types are skipped with
// a warning rather than failing the load.
func (t *Table) LoadRoleTable(role npc.Role, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read balancing file: %w", err)
	}

	var config roleTableConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse balancing YAML: %w", err)
	}

	for _, def := range config.Rows {
		item, ok := items.ParseItemType(def.ItemType)
		if !ok {
			logger.Warn("Skipping balancing row with unknown item type",
				"role", role.String(), "item_type", def.ItemType, "file", filename)
			continue
		}
		days := def.TimePerQuantityDays
		if days <= 0 {
			days = def.QuantityPerDay
		}
		t.Put(role, item, Row{
			BaseProbability:     def.BaseProbability,
			MinGoldCompensation: def.MinGoldCompensation,
			TimePerQuantityDays: days,
			QuantityStep:        def.QuantityStep,
		})
	}
	return nil
}

// LoadEconomy loads the item economy rows from a YAML file
func (t *Table) LoadEconomy(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read item economy file: %w", err)
	}

	var config economyConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse item economy YAML: %w", err)
	}

	for _, def := range config.Items {
		item, ok := items.ParseItemType(def.ItemType)
		if !ok {
			logger.Warn("Skipping economy row with unknown item type",
				"item_type", def.ItemType, "file", filename)
			continue
		}
		t.PutEconomy(item, EconomyRow{
			Level:                    def.Level,
			MeanWorth:                def.MeanWorth,
			MaxWorth:                 def.MaxWorth,
			MeanTimePerQuantityHours: def.MeanTimePerQuantityHours,
			MeanQuantityStep:         def.MeanQuantityStep,
		})
	}
	return nil
}

// LoadDir loads all role tables plus the item economy from a data
// directory ({role}_table.yaml, item_economy.yaml)
func (t *Table) LoadDir(dir string) error {
	for _, role := range npc.AllRoles() {
		path := filepath.Join(dir, role.String()+"_table.yaml")
		if err := t.LoadRoleTable(role, path); err != nil {
			return fmt.Errorf("loading %s table: %w", role.String(), err)
		}
	}
	if err := t.LoadEconomy(filepath.Join(dir, "item_economy.yaml")); err != nil {
		return fmt.Errorf("loading item economy: %w", err)
	}
	return nil
}

// LoadDirAsync loads the data directory in the background. The table
// stays queryable throughout; reads that race the load get the
// documented fallbacks. Errors are logged, not fatal.
func (t *Table) LoadDirAsync(dir string) {
	go func() {
		if err := t.LoadDir(dir); err != nil {
			logger.Error("Balancing data load failed, queries will use fallbacks", "dir", dir, "error", err)
			return
		}
		logger.Info("Balancing data loaded", "dir", dir)
	}()
}
