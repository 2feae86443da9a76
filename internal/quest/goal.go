package quest

import (
	"fmt"

	"github.com/guildhall-game/guildhall/internal/items"
)

// NoDeadline marks a goal that never expires
const NoDeadline = -1

// PlayerGoal is a player-held objective independent of any NPC:
// gather the required items, optionally before a deadline, to earn
// a gold reward. Its status is derived, never stored.
type PlayerGoal struct {
	Items   []items.Stack
	Rewards []items.Stack

	// Deadline is the absolute game hour the goal expires at,
	// or NoDeadline
	Deadline int

	collected bool
}

// NewGoal creates a goal. Pass NoDeadline for an open-ended goal.
func NewGoal(goalItems, rewards []items.Stack, deadline int) *PlayerGoal {
	return &PlayerGoal{Items: goalItems, Rewards: rewards, Deadline: deadline}
}

// Item returns the first (and currently only) required stack
func (g *PlayerGoal) Item() items.Stack {
	if len(g.Items) == 0 {
		return items.EmptyStack()
	}
	return g.Items[0]
}

// Reward returns the first (and currently only) reward stack
func (g *PlayerGoal) Reward() items.Stack {
	if len(g.Rewards) == 0 {
		return items.EmptyStack()
	}
	return g.Rewards[0]
}

// HasDeadline reports whether the goal can expire
func (g *PlayerGoal) HasDeadline() bool {
	return g.Deadline != NoDeadline
}

// TimeLeft returns the hours remaining before the deadline. Goals
// without a deadline report a single large sentinel value; callers
// should check HasDeadline before displaying it.
func (g *PlayerGoal) TimeLeft(now int) int {
	if !g.HasDeadline() {
		return int(^uint(0) >> 1)
	}
	return g.Deadline - now
}

// Status derives the goal state from an inventory count and the clock.
// It is a pure function of its inputs: SUCCESS when enough items are
// held in time, FAILURE when the deadline passed short of the target,
// PENDING otherwise.
func (g *PlayerGoal) Status(held, now int) Status {
	onTime := !g.HasDeadline() || g.Deadline-now >= 0
	hasItems := held >= g.Item().Amount
	switch {
	case onTime && hasItems:
		return StatusSuccess
	case onTime:
		return StatusPending
	default:
		return StatusFailure
	}
}

// MarkCollected tags the goal as collected. It returns false if the
// reward was already paid out, guarding against double-crediting.
func (g *PlayerGoal) MarkCollected() bool {
	if g.collected {
		return false
	}
	g.collected = true
	return true
}

// String renders the goal for logs, e.g. "5 Apples for 120 Gold"
func (g *PlayerGoal) String() string {
	return fmt.Sprintf("%s for %s", g.Item(), g.Reward())
}
