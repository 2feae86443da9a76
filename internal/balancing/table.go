// Package balancing holds the static coefficients that drive the
// quest economy: per-(role, item) probability rows and the per-item
// economy rows used for goal generation. Tables load asynchronously
// at startup; every query has a documented fallback so gameplay that
// races the load never fails.
package balancing

import (
	"math"
	"sync"

	"github.com/guildhall-game/guildhall/internal/dice"
	"github.com/guildhall-game/guildhall/internal/items"
	"github.com/guildhall-game/guildhall/internal/npc"
)

const (
	// FallbackDuration is returned when no row covers a quest
	FallbackDuration = 24

	// Reward valuation multiplier range: goals always pay a little
	// over the item's maximum worth
	worthFactorLo = 1.10
	worthFactorHi = 1.25

	// Gather-time multiplier range
	timeFactorLo = 0.75
	timeFactorHi = 1.25
)

// Row holds the balancing coefficients for one (role, item) pair
type Row struct {
	// BaseProbability in percent (0-100)
	BaseProbability int

	// MinGoldCompensation is the gold per item unit the role considers
	// fair; offers are judged against it
	MinGoldCompensation int

	// TimePerQuantityDays is how many days one quantity step takes
	TimePerQuantityDays int

	// QuantityStep is the batch size a worker handles at once
	QuantityStep int
}

// EconomyRow holds the role-independent economy data for one item
// type, used only for goal reward and deadline generation
type EconomyRow struct {
	Level                    int
	MeanWorth                float64
	MaxWorth                 float64
	MeanTimePerQuantityHours float64
	MeanQuantityStep         int
}

// Table answers all economy queries. Safe for concurrent use: the
// loader swaps rows in under the write lock while gameplay reads.
type Table struct {
	mu   sync.RWMutex
	rows map[npc.Role]map[items.ItemType]Row
	econ map[items.ItemType]EconomyRow
}

// NewTable creates an empty table. All queries return their fallbacks
// until rows are loaded.
func NewTable() *Table {
	return &Table{
		rows: make(map[npc.Role]map[items.ItemType]Row),
		econ: make(map[items.ItemType]EconomyRow),
	}
}

// Put inserts or replaces the row for a (role, item) pair
func (t *Table) Put(role npc.Role, item items.ItemType, row Row) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.rows[role] == nil {
		t.rows[role] = make(map[items.ItemType]Row)
	}
	t.rows[role][item] = row
}

// PutEconomy inserts or replaces the economy row for an item type
func (t *Table) PutEconomy(item items.ItemType, row EconomyRow) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.econ[item] = row
}

// Lookup returns the row for a (role, item) pair
func (t *Table) Lookup(role npc.Role, item items.ItemType) (Row, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[role][item]
	return row, ok
}

// Economy returns the economy row for an item type
func (t *Table) Economy(item items.ItemType) (EconomyRow, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.econ[item]
	return row, ok
}

// AcceptanceProbability returns the percent chance [0,100] that an
// NPC of the given role accepts a quest for amount units of item
// against the offered gold reward. Missing rows yield 0: nobody takes
// a quest their trade does not cover.
func (t *Table) AcceptanceProbability(role npc.Role, item items.ItemType, amount, reward int) float64 {
	row, ok := t.Lookup(role, item)
	if !ok || row.MinGoldCompensation <= 0 {
		return 0
	}
	if amount < 1 {
		amount = 1
	}
	p := float64(row.BaseProbability) * float64(reward) / float64(row.MinGoldCompensation*amount)
	return math.Min(100, p)
}

// SuccessProbability returns the percent chance [0,100] that the NPC
// delivers: the base probability compounded once per quantity step.
// Monotonically non-increasing in the required amount.
func (t *Table) SuccessProbability(role npc.Role, item items.ItemType, amount int) float64 {
	row, ok := t.Lookup(role, item)
	if !ok || row.QuantityStep <= 0 {
		return 0
	}
	steps := stepsFor(amount, row.QuantityStep)
	p := 100 * math.Pow(float64(row.BaseProbability)/100, float64(steps))
	return math.Min(100, p)
}

// QuestDuration returns how long the quest takes in game hours.
// Missing rows and empty items fall back to a single day.
func (t *Table) QuestDuration(role npc.Role, item items.ItemType, amount int) int {
	if item == items.None {
		return FallbackDuration
	}
	row, ok := t.Lookup(role, item)
	if !ok || row.QuantityStep <= 0 || row.TimePerQuantityDays <= 0 {
		return FallbackDuration
	}
	return stepsFor(amount, row.QuantityStep) * row.TimePerQuantityDays * 24
}

// ItemWorth values amount units of an item for goal rewards: the
// maximum worth with a random premium on top. Returns 0 when no
// economy data exists; callers fall back to a flat range.
func (t *Table) ItemWorth(item items.ItemType, amount int, r *dice.Roller) float64 {
	row, ok := t.Economy(item)
	if !ok || row.MaxWorth <= 0 {
		return 0
	}
	return row.MaxWorth * float64(amount) * r.Uniform(worthFactorLo, worthFactorHi)
}

// ItemTime estimates the hours needed to gather amount units of an
// item, used for goal deadlines. Returns 0 when no economy data
// exists.
func (t *Table) ItemTime(item items.ItemType, amount int, r *dice.Roller) int {
	row, ok := t.Economy(item)
	if !ok || row.MeanQuantityStep <= 0 || row.MeanTimePerQuantityHours <= 0 {
		return 0
	}
	steps := stepsFor(amount, row.MeanQuantityStep)
	return int(math.Ceil(row.MeanTimePerQuantityHours * r.Uniform(timeFactorLo, timeFactorHi) * float64(steps)))
}

// stepsFor returns how many quantity steps cover an amount, at least 1
func stepsFor(amount, step int) int {
	if amount < 1 {
		amount = 1
	}
	return int(math.Ceil(float64(amount) / float64(step)))
}
