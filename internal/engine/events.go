package engine

import (
	"github.com/guildhall-game/guildhall/internal/npc"
	"github.com/guildhall-game/guildhall/internal/quest"
)

// LeaveReason explains why an NPC left the guild hall
type LeaveReason string

const (
	LeaveRejected  LeaveReason = "rejected"
	LeaveCompleted LeaveReason = "completed"
	LeaveFailed    LeaveReason = "failed"
)

// Notifier receives game lifecycle notifications. The channel is
// strictly one-way: the engine never reads presentation state back.
// Implementations must not retain the pointers past the call.
type Notifier interface {
	HourAdvanced(day, hour int)

	NPCArrived(n *npc.NPC)
	NPCLeft(n *npc.NPC, reason LeaveReason)

	QuestAssigned(n *npc.NPC, q *quest.Quest)
	QuestResolved(n *npc.NPC, q *quest.Quest, success bool)

	GoalAdded(g *quest.PlayerGoal)
	GoalSucceeded(g *quest.PlayerGoal)
	GoalFailed(g *quest.PlayerGoal)
	GoalCollected(g *quest.PlayerGoal)

	GameReset()
}

// NopNotifier implements Notifier with no-ops. Embed it to implement
// only the notifications a consumer cares about.
type NopNotifier struct{}

func (NopNotifier) HourAdvanced(day, hour int)                             {}
func (NopNotifier) NPCArrived(n *npc.NPC)                                  {}
func (NopNotifier) NPCLeft(n *npc.NPC, reason LeaveReason)                 {}
func (NopNotifier) QuestAssigned(n *npc.NPC, q *quest.Quest)               {}
func (NopNotifier) QuestResolved(n *npc.NPC, q *quest.Quest, success bool) {}
func (NopNotifier) GoalAdded(g *quest.PlayerGoal)                          {}
func (NopNotifier) GoalSucceeded(g *quest.PlayerGoal)                      {}
func (NopNotifier) GoalFailed(g *quest.PlayerGoal)                         {}
func (NopNotifier) GoalCollected(g *quest.PlayerGoal)                      {}
func (NopNotifier) GameReset()                                             {}

// multiNotifier fans notifications out to several consumers in order
type multiNotifier struct {
	targets []Notifier
}

// CombineNotifiers joins notifiers into one. Nil entries are skipped.
func CombineNotifiers(targets ...Notifier) Notifier {
	kept := make([]Notifier, 0, len(targets))
	for _, t := range targets {
		if t != nil {
			kept = append(kept, t)
		}
	}
	switch len(kept) {
	case 0:
		return NopNotifier{}
	case 1:
		return kept[0]
	default:
		return &multiNotifier{targets: kept}
	}
}

func (m *multiNotifier) HourAdvanced(day, hour int) {
	for _, t := range m.targets {
		t.HourAdvanced(day, hour)
	}
}

func (m *multiNotifier) NPCArrived(n *npc.NPC) {
	for _, t := range m.targets {
		t.NPCArrived(n)
	}
}

func (m *multiNotifier) NPCLeft(n *npc.NPC, reason LeaveReason) {
	for _, t := range m.targets {
		t.NPCLeft(n, reason)
	}
}

func (m *multiNotifier) QuestAssigned(n *npc.NPC, q *quest.Quest) {
	for _, t := range m.targets {
		t.QuestAssigned(n, q)
	}
}

func (m *multiNotifier) QuestResolved(n *npc.NPC, q *quest.Quest, success bool) {
	for _, t := range m.targets {
		t.QuestResolved(n, q, success)
	}
}

func (m *multiNotifier) GoalAdded(g *quest.PlayerGoal) {
	for _, t := range m.targets {
		t.GoalAdded(g)
	}
}

func (m *multiNotifier) GoalSucceeded(g *quest.PlayerGoal) {
	for _, t := range m.targets {
		t.GoalSucceeded(g)
	}
}

func (m *multiNotifier) GoalFailed(g *quest.PlayerGoal) {
	for _, t := range m.targets {
		t.GoalFailed(g)
	}
}

func (m *multiNotifier) GoalCollected(g *quest.PlayerGoal) {
	for _, t := range m.targets {
		t.GoalCollected(g)
	}
}

func (m *multiNotifier) GameReset() {
	for _, t := range m.targets {
		t.GameReset()
	}
}
