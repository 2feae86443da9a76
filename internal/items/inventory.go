package items

import "sync"

// Inventory is the player's ledger: a count per item type, with the
// gold balance stored as the Money entry. All mutation goes through
// Credit/Debit/Set so counts can never drop below zero.
type Inventory struct {
	mu            sync.RWMutex
	counts        map[ItemType]int
	startingMoney int
}

// NewInventory creates a ledger holding only the starting gold balance
func NewInventory(startingMoney int) *Inventory {
	inv := &Inventory{startingMoney: startingMoney}
	inv.Reset()
	return inv
}

// Reset clears all items and restores the starting gold balance,
// the "new game" trigger
func (inv *Inventory) Reset() {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.counts = make(map[ItemType]int)
	for _, t := range All() {
		inv.counts[t] = 0
	}
	inv.counts[Money] = inv.startingMoney
}

// Count returns the held amount of an item type
func (inv *Inventory) Count(item ItemType) int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.counts[item]
}

// Money returns the current gold balance
func (inv *Inventory) Money() int {
	return inv.Count(Money)
}

// CanAfford reports whether the gold balance covers a cost
func (inv *Inventory) CanAfford(cost int) bool {
	return inv.Money() >= cost
}

// Credit adds a stack to the ledger
func (inv *Inventory) Credit(s Stack) {
	inv.add(s.Item, s.Amount)
}

// Debit removes a stack from the ledger, clamping at zero
func (inv *Inventory) Debit(s Stack) {
	inv.add(s.Item, -s.Amount)
}

// Set overwrites the count of an item type, clamping at zero
func (inv *Inventory) Set(item ItemType, amount int) {
	if amount < 0 {
		amount = 0
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.counts[item] = amount
}

func (inv *Inventory) add(item ItemType, delta int) {
	if item == None {
		return
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	total := inv.counts[item] + delta
	if total < 0 {
		total = 0
	}
	inv.counts[item] = total
}

// Snapshot returns a copy of all counts, used by state queries and
// the websocket layer
func (inv *Inventory) Snapshot() map[ItemType]int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make(map[ItemType]int, len(inv.counts))
	for t, n := range inv.counts {
		out[t] = n
	}
	return out
}
