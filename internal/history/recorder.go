package history

import (
	"github.com/guildhall-game/guildhall/internal/engine"
	"github.com/guildhall-game/guildhall/internal/logger"
	"github.com/guildhall-game/guildhall/internal/npc"
	"github.com/guildhall-game/guildhall/internal/quest"
)

// Recorder bridges game notifications into the chronicle. Write
// failures are logged, never surfaced: history is a convenience and
// must not stall the game loop.
type Recorder struct {
	engine.NopNotifier

	chronicle *Chronicle
	day       int
	hour      int
}

// NewRecorder wraps a chronicle as a notification consumer.
func NewRecorder(chronicle *Chronicle) *Recorder {
	return &Recorder{chronicle: chronicle}
}

// HourAdvanced tracks the game clock so records carry game timestamps.
func (r *Recorder) HourAdvanced(day, hour int) {
	r.day = day
	r.hour = hour
}

// GameReset rewinds the tracked clock.
func (r *Recorder) GameReset() {
	r.day = 0
	r.hour = 0
}

// QuestResolved records the settled quest.
func (r *Recorder) QuestResolved(n *npc.NPC, q *quest.Quest, success bool) {
	err := r.chronicle.RecordQuest(QuestRecord{
		NPCName: n.Name,
		NPCRole: n.Role.String(),
		Item:    q.Item().Item.String(),
		Amount:  q.Item().Amount,
		Reward:  q.Reward().Amount,
		Success: success,
		Day:     r.day,
		Hour:    r.hour,
	})
	if err != nil {
		logger.Error("failed to chronicle quest", "error", err)
	}
}

// GoalCollected records the paid-out goal.
func (r *Recorder) GoalCollected(g *quest.PlayerGoal) {
	r.recordGoal(g, OutcomeCollected)
}

// GoalFailed records the expired goal.
func (r *Recorder) GoalFailed(g *quest.PlayerGoal) {
	r.recordGoal(g, OutcomeFailed)
}

func (r *Recorder) recordGoal(g *quest.PlayerGoal, outcome string) {
	err := r.chronicle.RecordGoal(GoalRecord{
		Item:    g.Item().Item.String(),
		Amount:  g.Item().Amount,
		Reward:  g.Reward().Amount,
		Outcome: outcome,
		Day:     r.day,
		Hour:    r.hour,
	})
	if err != nil {
		logger.Error("failed to chronicle goal", "error", err)
	}
}
