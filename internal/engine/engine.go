package engine

import (
	"time"

	"github.com/guildhall-game/guildhall/internal/balancing"
	"github.com/guildhall-game/guildhall/internal/config"
	"github.com/guildhall-game/guildhall/internal/dice"
	"github.com/guildhall-game/guildhall/internal/gametime"
	"github.com/guildhall-game/guildhall/internal/items"
	"github.com/guildhall-game/guildhall/internal/logger"
	"github.com/guildhall-game/guildhall/internal/npc"
	"github.com/guildhall-game/guildhall/internal/quest"
)

// Engine ties the clock, the economy tables, the visitor queue, and
// the player's goals into one game. All methods must be called from a
// single goroutine; the server serializes commands onto it.
type Engine struct {
	cfg      config.GameConfig
	clock    *gametime.GameClock
	table    *balancing.Table
	roller   *dice.Roller
	inv      *items.Inventory
	builder  *quest.Builder
	npcs     *NPCManager
	goals    *GoalManager
	notifier Notifier
}

func New(cfg config.GameConfig, table *balancing.Table, roller *dice.Roller, names *npc.NamePool, notifier Notifier) *Engine {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if names == nil {
		names = npc.DefaultNamePool()
	}

	inv := items.NewInventory(cfg.StartingMoney)

	e := &Engine{
		cfg:      cfg,
		clock:    gametime.NewGameClock(time.Duration(cfg.HourLengthMS) * time.Millisecond),
		table:    table,
		roller:   roller,
		inv:      inv,
		builder:  quest.NewBuilder(),
		npcs:     NewNPCManager(cfg, table, roller, names, inv, notifier),
		goals:    NewGoalManager(cfg, table, roller, inv, notifier),
		notifier: notifier,
	}

	e.start()

	return e
}

// start seeds the opening state: one visitor already waiting and a
// full set of goals
func (e *Engine) start() {
	now := e.clock.Time()
	e.npcs.Spawn(now)
	e.goals.Reset(now)
}

// Update feeds real elapsed time into the clock and runs the hourly
// tick for every game hour that passed
func (e *Engine) Update(elapsed time.Duration) {
	crossed := e.clock.Advance(elapsed)
	for i := 0; i < crossed; i++ {
		e.tick()
	}
}

// AdvanceHours steps the game forward whole hours, ignoring the real
// clock. Used by the headless simulator.
func (e *Engine) AdvanceHours(hours int) {
	for i := 0; i < hours; i++ {
		e.clock.AdvanceHour()
		e.tick()
	}
}

func (e *Engine) tick() {
	now := e.clock.Time()
	e.notifier.HourAdvanced(e.clock.Day(), e.clock.Hour())
	e.npcs.Tick(now)
	e.goals.Tick(now)
	e.refreshDraft()
}

// NewGame wipes everything back to the starting state
func (e *Engine) NewGame() {
	e.clock.Reset()
	e.inv.Reset()
	e.builder.Reset()
	e.npcs.Reset()
	e.start()
	e.notifier.GameReset()

	logger.Info("new game started")
}

// Bankrupt reports whether the game is unwinnable: no money to fund a
// quest, nothing out in the field, and no fulfilled goal left to cash in
func (e *Engine) Bankrupt() bool {
	if e.inv.Money() > 0 {
		return false
	}
	if len(e.npcs.inProgress) > 0 {
		return false
	}

	now := e.clock.Time()
	for _, g := range e.goals.Goals() {
		if e.goals.Status(g, now) == quest.StatusSuccess {
			return false
		}
	}

	return true
}

// Draft editing. Each change refreshes the active NPC's displayed
// odds; the accept decision is only rolled when the quest is offered.

func (e *Engine) SetDraftItem(item items.ItemType) {
	e.builder.SetQuestItem(item)
	e.refreshDraft()
}

func (e *Engine) SetDraftAmount(text string) {
	e.builder.SetQuestAmountText(text)
	e.refreshDraft()
}

func (e *Engine) SetDraftReward(text string) {
	e.builder.SetRewardAmountText(text)
	e.refreshDraft()
}

func (e *Engine) refreshDraft() {
	active := e.npcs.Active()
	if active == nil {
		return
	}

	active.Recalculate(e.builder.Build(), e.table)
}

// SetNegotiating marks the quest dialog open or closed
func (e *Engine) SetNegotiating(open bool) {
	e.npcs.SetNegotiating(open)
}

// OfferDraft presents the current draft to the active NPC. The offer
// only goes out when the draft names an item and the reward is
// affordable; either outcome consumes the draft.
func (e *Engine) OfferDraft() bool {
	if !e.builder.Complete() {
		return false
	}

	draft := e.builder.Build()
	if !e.inv.CanAfford(draft.Reward().Amount) {
		logger.Debug("offer blocked, reward unaffordable", "quest", draft.String())
		return false
	}

	accepted := e.npcs.OfferQuest(draft, e.clock.Time())
	e.builder.Reset()

	return accepted
}

// CollectGoal cashes in a fulfilled goal by its position in Goals()
func (e *Engine) CollectGoal(index int) bool {
	return e.goals.Collect(index, e.clock.Time())
}

// DismissGoal drops a goal without payout
func (e *Engine) DismissGoal(index int) bool {
	return e.goals.Dismiss(index)
}

// Accessors for the presentation layer

func (e *Engine) Clock() *gametime.GameClock {
	return e.clock
}

func (e *Engine) Inventory() *items.Inventory {
	return e.inv
}

func (e *Engine) Builder() *quest.Builder {
	return e.builder
}

func (e *Engine) ActiveNPC() *npc.NPC {
	return e.npcs.Active()
}

func (e *Engine) QueueSize() int {
	return len(e.npcs.queue)
}

// QuestLog returns the quests currently out in the field, soonest
// deadline first
func (e *Engine) QuestLog() []*npc.NPC {
	return e.npcs.InProgress(e.clock.Time())
}

func (e *Engine) Goals() []*quest.PlayerGoal {
	return e.goals.Goals()
}

func (e *Engine) GoalStatus(g *quest.PlayerGoal) quest.Status {
	return e.goals.Status(g, e.clock.Time())
}
