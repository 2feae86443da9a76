// Package npc models the visitors of the guild hall: their roles, the
// negotiation state machine, and random identity generation.
package npc

import (
	"math"

	"github.com/google/uuid"

	"github.com/guildhall-game/guildhall/internal/dice"
	"github.com/guildhall-game/guildhall/internal/items"
	"github.com/guildhall-game/guildhall/internal/quest"
)

// Balancer answers the economy queries an NPC needs during
// negotiation. Implemented by balancing.Table.
type Balancer interface {
	// AcceptanceProbability returns the percent chance [0,100] that
	// an NPC of this role takes the offer
	AcceptanceProbability(role Role, item items.ItemType, amount, reward int) float64

	// SuccessProbability returns the percent chance [0,100] that the
	// NPC delivers
	SuccessProbability(role Role, item items.ItemType, amount int) float64

	// QuestDuration returns how long the quest takes, in game hours
	QuestDuration(role Role, item items.ItemType, amount int) int
}

// NPC is a visitor waiting in the arrival queue or out working a
// quest. One NPC owns at most one quest.
type NPC struct {
	ID    string
	Name  string
	Role  Role
	Level int

	// AcceptProb and SuccessProb are the last probabilities computed
	// from the balancing table, in percent
	AcceptProb  float64
	SuccessProb float64

	Quest *quest.Quest

	accepted bool
	decided  bool
}

// New creates an NPC with a fresh id. Levels below 1 are clamped.
func New(name string, role Role, level float64) *NPC {
	return &NPC{
		ID:    uuid.NewString(),
		Name:  name,
		Role:  role,
		Level: int(math.Max(1, math.Round(level))),
	}
}

// Recalculate refreshes both probabilities from the balancing table
// without touching the acceptance decision. Called whenever the
// player edits the quest draft.
func (n *NPC) Recalculate(q *quest.Quest, b Balancer) {
	item := q.Item()
	reward := q.Reward()
	n.AcceptProb = b.AcceptanceProbability(n.Role, item.Item, item.Amount, reward.Amount)
	n.SuccessProb = b.SuccessProbability(n.Role, item.Item, item.Amount)
}

// WouldAcceptQuest recomputes the probabilities and runs the
// acceptance trial. The decision is made once per negotiation and
// cached; repeated calls (UI refreshes) return the same answer.
func (n *NPC) WouldAcceptQuest(q *quest.Quest, b Balancer, r *dice.Roller) bool {
	n.Recalculate(q, b)
	if !n.decided {
		n.accepted = r.Chance(n.AcceptProb)
		n.decided = true
	}
	return n.accepted
}

// AcceptedQuest reports the cached acceptance decision
func (n *NPC) AcceptedQuest() bool {
	return n.accepted
}

// AssignQuest attaches a quest, but only after a positive acceptance
// decision. Returns false (and leaves the NPC unchanged) otherwise.
func (n *NPC) AssignQuest(q *quest.Quest) bool {
	if !n.accepted {
		return false
	}
	n.Quest = q
	return true
}

// TryCompleteQuest resolves the quest outcome with a single Bernoulli
// trial against the current success probability. Called exactly once,
// when the quest's time elapses.
func (n *NPC) TryCompleteQuest(r *dice.Roller) bool {
	return r.Chance(n.SuccessProb)
}
