// Package quest holds the value types of the quest economy: the Quest
// an NPC carries, the PlayerGoal the player chases, and the Builder
// the negotiation dialog edits.
package quest

import (
	"fmt"

	"github.com/guildhall-game/guildhall/internal/items"
)

// Quest is a time-bounded obligation held by exactly one NPC: deliver
// the item stacks in exchange for an escrowed reward. Currently both
// lists hold exactly one stack; the slices keep the door open for
// multi-item quests.
type Quest struct {
	Items   []items.Stack
	Rewards []items.Stack

	// Duration in game hours; fixed once Start is called
	Duration int

	// StartTime is the absolute game hour the quest was accepted at
	StartTime int

	started  bool
	resolved bool
}

// New creates an unstarted quest
func New(questItems, rewards []items.Stack) *Quest {
	return &Quest{Items: questItems, Rewards: rewards}
}

// Item returns the first (and currently only) required stack
func (q *Quest) Item() items.Stack {
	if len(q.Items) == 0 {
		return items.EmptyStack()
	}
	return q.Items[0]
}

// Reward returns the first (and currently only) reward stack
func (q *Quest) Reward() items.Stack {
	if len(q.Rewards) == 0 {
		return items.EmptyStack()
	}
	return q.Rewards[0]
}

// Start stamps the quest with the current clock reading. Duration and
// start time are frozen from this point on.
func (q *Quest) Start(now int) {
	if q.started {
		return
	}
	q.StartTime = now
	q.started = true
}

// Started reports whether the quest has been clock-stamped
func (q *Quest) Started() bool {
	return q.started
}

// TimeLeft returns the hours remaining before the quest resolves
func (q *Quest) TimeLeft(now int) int {
	return q.StartTime + q.Duration - now
}

// Expired reports whether the quest's time has elapsed
func (q *Quest) Expired(now int) bool {
	return q.started && q.TimeLeft(now) <= 0
}

// MarkResolved tags the quest as resolved. It returns false if the
// quest was already resolved, guarding against double-crediting.
func (q *Quest) MarkResolved() bool {
	if q.resolved {
		return false
	}
	q.resolved = true
	return true
}

// Resolved reports whether the quest outcome has been applied
func (q *Quest) Resolved() bool {
	return q.resolved
}

// Clone produces a value-equal, independently mutable copy. Assigning
// a clone decouples the NPC's quest from the negotiation draft.
func (q *Quest) Clone() *Quest {
	c := &Quest{
		Items:     make([]items.Stack, len(q.Items)),
		Rewards:   make([]items.Stack, len(q.Rewards)),
		Duration:  q.Duration,
		StartTime: q.StartTime,
		started:   q.started,
		resolved:  q.resolved,
	}
	for i, s := range q.Items {
		c.Items[i] = s.Clone()
	}
	for i, s := range q.Rewards {
		c.Rewards[i] = s.Clone()
	}
	return c
}

// String renders the quest for logs, e.g. "3 Furs for 40 Gold (48h)"
func (q *Quest) String() string {
	return fmt.Sprintf("%s for %s (%dh)", q.Item(), q.Reward(), q.Duration)
}
