package engine

import (
	"strconv"
	"testing"
	"time"

	"github.com/guildhall-game/guildhall/internal/balancing"
	"github.com/guildhall-game/guildhall/internal/config"
	"github.com/guildhall-game/guildhall/internal/dice"
	"github.com/guildhall-game/guildhall/internal/items"
	"github.com/guildhall-game/guildhall/internal/npc"
	"github.com/guildhall-game/guildhall/internal/quest"
)

// recorder captures notifications for assertions
type recorder struct {
	NopNotifier

	hours     int
	arrived   int
	left      []LeaveReason
	assigned  int
	resolved  []bool
	goalAdds  int
	goalWins  int
	goalFails int
	collected int
	resets    int
}

func (r *recorder) HourAdvanced(day, hour int)                  { r.hours++ }
func (r *recorder) NPCArrived(n *npc.NPC)                       { r.arrived++ }
func (r *recorder) NPCLeft(n *npc.NPC, reason LeaveReason)      { r.left = append(r.left, reason) }
func (r *recorder) QuestAssigned(n *npc.NPC, q *quest.Quest)    { r.assigned++ }
func (r *recorder) QuestResolved(n *npc.NPC, q *quest.Quest, ok bool) {
	r.resolved = append(r.resolved, ok)
}
func (r *recorder) GoalAdded(g *quest.PlayerGoal)     { r.goalAdds++ }
func (r *recorder) GoalSucceeded(g *quest.PlayerGoal) { r.goalWins++ }
func (r *recorder) GoalFailed(g *quest.PlayerGoal)    { r.goalFails++ }
func (r *recorder) GoalCollected(g *quest.PlayerGoal) { r.collected++ }
func (r *recorder) GameReset()                        { r.resets++ }

func testGameConfig() config.GameConfig {
	return config.DefaultConfig().Game
}

// sureThingTable covers furs for every role with coefficients that
// make any reasonable offer a certain accept and a certain success
func sureThingTable() *balancing.Table {
	table := balancing.NewTable()
	for _, role := range npc.AllRoles() {
		table.Put(role, items.Fur, balancing.Row{
			BaseProbability:     100,
			MinGoldCompensation: 1,
			TimePerQuantityDays: 1,
			QuantityStep:        2,
		})
	}
	return table
}

func furDraft(amount, reward int) *quest.Quest {
	b := quest.NewBuilder()
	b.SetQuestItem(items.Fur)
	b.SetQuestAmount(amount)
	b.SetRewardAmount(reward)
	return b.Build()
}

func TestEngineUpdateCrossesHours(t *testing.T) {
	cfg := testGameConfig()
	cfg.HourLengthMS = 1000

	rec := &recorder{}
	e := New(cfg, sureThingTable(), dice.NewRoller(1), nil, rec)

	e.Update(2500 * time.Millisecond)

	if rec.hours != 2 {
		t.Errorf("expected 2 hour notifications, got %d", rec.hours)
	}
	if e.Clock().Time() != 2 {
		t.Errorf("expected clock at hour 2, got %d", e.Clock().Time())
	}

	e.Update(500 * time.Millisecond)

	if e.Clock().Time() != 3 {
		t.Errorf("expected accumulator carry to hour 3, got %d", e.Clock().Time())
	}
}

func TestEngineStartingState(t *testing.T) {
	cfg := testGameConfig()
	e := New(cfg, sureThingTable(), dice.NewRoller(7), nil, nil)

	if e.ActiveNPC() == nil {
		t.Fatal("expected a visitor waiting at game start")
	}
	if e.QueueSize() != 1 {
		t.Errorf("expected queue of 1, got %d", e.QueueSize())
	}
	if got := len(e.Goals()); got != cfg.GoalTarget {
		t.Errorf("expected %d starting goals, got %d", cfg.GoalTarget, got)
	}
	if e.Inventory().Money() != cfg.StartingMoney {
		t.Errorf("expected %d starting gold, got %d", cfg.StartingMoney, e.Inventory().Money())
	}
}

func TestEngineOfferDraftIncomplete(t *testing.T) {
	e := New(testGameConfig(), sureThingTable(), dice.NewRoller(7), nil, nil)

	if e.OfferDraft() {
		t.Error("expected offer without a quest item to be refused")
	}
	if e.QueueSize() != 1 {
		t.Error("refused offer must not consume the visitor")
	}
}

func TestEngineOfferDraftUnaffordable(t *testing.T) {
	cfg := testGameConfig()
	cfg.StartingMoney = 10

	e := New(cfg, sureThingTable(), dice.NewRoller(7), nil, nil)
	e.SetDraftItem(items.Fur)
	e.SetDraftAmount("3")
	e.SetDraftReward("40")

	if e.OfferDraft() {
		t.Error("expected unaffordable offer to be refused")
	}
	if e.QueueSize() != 1 {
		t.Error("refused offer must not consume the visitor")
	}
	if e.Inventory().Money() != 10 {
		t.Errorf("expected no escrow on refusal, got %d gold", e.Inventory().Money())
	}
}

func TestEngineQuestRoundTrip(t *testing.T) {
	cfg := testGameConfig()
	rec := &recorder{}
	e := New(cfg, sureThingTable(), dice.NewRoller(7), nil, rec)

	e.SetDraftItem(items.Fur)
	e.SetDraftAmount("3")
	e.SetDraftReward("40")

	if !e.OfferDraft() {
		t.Fatal("expected a certain accept")
	}
	if got := e.Inventory().Money(); got != cfg.StartingMoney-40 {
		t.Errorf("expected reward escrowed, got %d gold", got)
	}
	if e.Builder().QuestItem().Item != items.None {
		t.Error("expected draft reset after the offer")
	}
	if len(e.QuestLog()) != 1 {
		t.Fatalf("expected 1 quest in the field, got %d", len(e.QuestLog()))
	}

	// 3 furs at 2 per step and 1 day per step is a 48 hour quest
	e.AdvanceHours(47)
	if len(e.QuestLog()) != 1 {
		t.Fatal("quest resolved early")
	}

	e.AdvanceHours(1)
	if len(e.QuestLog()) != 0 {
		t.Fatal("quest did not resolve on its deadline")
	}
	if got := e.Inventory().Count(items.Fur); got != 3 {
		t.Errorf("expected 3 furs delivered, got %d", got)
	}
	if len(rec.resolved) != 1 || !rec.resolved[0] {
		t.Errorf("expected one successful resolution, got %v", rec.resolved)
	}
}

func TestEngineDraftEditsRefreshOdds(t *testing.T) {
	e := New(testGameConfig(), sureThingTable(), dice.NewRoller(7), nil, nil)

	e.SetDraftItem(items.Fur)
	e.SetDraftReward("40")

	active := e.ActiveNPC()
	if active.AcceptProb != 100 {
		t.Errorf("expected displayed acceptance 100, got %.2f", active.AcceptProb)
	}

	e.SetDraftItem(items.Gem)
	if active.AcceptProb != 0 {
		t.Errorf("expected 0 acceptance for an uncovered item, got %.2f", active.AcceptProb)
	}
}

func TestEngineNewGame(t *testing.T) {
	cfg := testGameConfig()
	rec := &recorder{}
	e := New(cfg, sureThingTable(), dice.NewRoller(7), nil, rec)

	e.SetDraftItem(items.Fur)
	e.SetDraftReward("40")
	e.OfferDraft()
	e.AdvanceHours(10)

	e.NewGame()

	if e.Clock().Time() != 0 {
		t.Errorf("expected clock reset, got hour %d", e.Clock().Time())
	}
	if e.Inventory().Money() != cfg.StartingMoney {
		t.Errorf("expected starting gold restored, got %d", e.Inventory().Money())
	}
	if e.QueueSize() != 1 {
		t.Errorf("expected one fresh visitor, got %d", e.QueueSize())
	}
	if len(e.QuestLog()) != 0 {
		t.Error("expected the field cleared")
	}
	if got := len(e.Goals()); got != cfg.GoalTarget {
		t.Errorf("expected %d fresh goals, got %d", cfg.GoalTarget, got)
	}
	if rec.resets != 1 {
		t.Errorf("expected one reset notification, got %d", rec.resets)
	}
}

func TestEngineBankrupt(t *testing.T) {
	cfg := testGameConfig()
	cfg.StartingMoney = 0
	cfg.GoalTarget = 0

	e := New(cfg, sureThingTable(), dice.NewRoller(7), nil, nil)

	if !e.Bankrupt() {
		t.Error("expected bankruptcy with no gold, no quests, no goals")
	}

	e.Inventory().Credit(items.NewStack(items.Money, 5))
	if e.Bankrupt() {
		t.Error("expected solvency with gold in hand")
	}
}

func TestEngineBankruptWaitsOnField(t *testing.T) {
	cfg := testGameConfig()
	cfg.GoalTarget = 0

	e := New(cfg, sureThingTable(), dice.NewRoller(7), nil, nil)
	e.SetDraftItem(items.Fur)
	e.SetDraftAmount("3")
	e.SetDraftReward(strconv.Itoa(cfg.StartingMoney))

	if !e.OfferDraft() {
		t.Fatal("expected a certain accept")
	}
	if e.Inventory().Money() != 0 {
		t.Fatalf("expected the whole balance escrowed, got %d", e.Inventory().Money())
	}
	if e.Bankrupt() {
		t.Error("a quest in the field can still pay out in items")
	}
}
