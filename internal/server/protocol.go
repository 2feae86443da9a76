package server

import (
	"github.com/guildhall-game/guildhall/internal/engine"
	"github.com/guildhall-game/guildhall/internal/items"
	"github.com/guildhall-game/guildhall/internal/npc"
	"github.com/guildhall-game/guildhall/internal/quest"
)

// Command is a player action sent by the browser client.
type Command struct {
	// Type selects the action: draft_item, draft_amount, draft_reward,
	// negotiate, offer, collect_goal, dismiss_goal, new_game, state
	Type string `json:"type"`

	// Item names an item type for draft_item
	Item string `json:"item,omitempty"`

	// Text carries raw numeric input for draft_amount and draft_reward
	Text string `json:"text,omitempty"`

	// Index picks a goal for collect_goal and dismiss_goal
	Index int `json:"index,omitempty"`

	// Open flags the negotiation dialog state for negotiate
	Open bool `json:"open,omitempty"`
}

// Event is a server-to-client message.
type Event struct {
	Type  string     `json:"type"`
	State *StateView `json:"state,omitempty"`
	NPC   *NPCView   `json:"npc,omitempty"`
	Quest *QuestView `json:"quest,omitempty"`
	Goal  *GoalView  `json:"goal,omitempty"`

	// Reason qualifies npc_left events
	Reason string `json:"reason,omitempty"`

	// Success qualifies quest_resolved events
	Success bool `json:"success,omitempty"`
}

// StateView is the full game snapshot pushed after every command and
// every game hour.
type StateView struct {
	Day       int            `json:"day"`
	Hour      int            `json:"hour"`
	Clock     string         `json:"clock"`
	Money     int            `json:"money"`
	Bankrupt  bool           `json:"bankrupt"`
	Inventory map[string]int `json:"inventory"`
	Active    *NPCView       `json:"active,omitempty"`
	QueueSize int            `json:"queue_size"`
	Draft     *DraftView     `json:"draft"`
	QuestLog  []QuestView    `json:"quest_log"`
	Goals     []GoalView     `json:"goals"`
}

// NPCView is a visitor as the client sees one.
type NPCView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Level       int     `json:"level"`
	AcceptProb  float64 `json:"accept_prob"`
	SuccessProb float64 `json:"success_prob"`
}

// DraftView mirrors the negotiation dialog fields.
type DraftView struct {
	Item     string `json:"item"`
	Amount   int    `json:"amount"`
	Reward   int    `json:"reward"`
	Complete bool   `json:"complete"`
}

// QuestView is one quest out in the field.
type QuestView struct {
	NPC      NPCView `json:"npc"`
	Item     string  `json:"item"`
	Amount   int     `json:"amount"`
	Reward   int     `json:"reward"`
	TimeLeft int     `json:"time_left"`
	Text     string  `json:"text"`
}

// GoalView is one player goal with its derived status.
type GoalView struct {
	Item     string `json:"item"`
	Amount   int    `json:"amount"`
	Held     int    `json:"held"`
	Reward   int    `json:"reward"`
	TimeLeft int    `json:"time_left"`
	Status   string `json:"status"`
	Text     string `json:"text"`
}

func npcView(n *npc.NPC) *NPCView {
	if n == nil {
		return nil
	}

	return &NPCView{
		ID:          n.ID,
		Name:        n.Name,
		Role:        n.Role.DisplayName(),
		Level:       n.Level,
		AcceptProb:  n.AcceptProb,
		SuccessProb: n.SuccessProb,
	}
}

func questView(n *npc.NPC, q *quest.Quest, now int) *QuestView {
	view := &QuestView{
		Item:   q.Item().Item.String(),
		Amount: q.Item().Amount,
		Reward: q.Reward().Amount,
		Text:   q.String(),
	}
	if n != nil {
		view.NPC = *npcView(n)
	}
	if q.Started() {
		view.TimeLeft = q.TimeLeft(now)
	}

	return view
}

func goalView(g *quest.PlayerGoal, status quest.Status, held, now int) GoalView {
	return GoalView{
		Item:     g.Item().Item.String(),
		Amount:   g.Item().Amount,
		Held:     held,
		Reward:   g.Reward().Amount,
		TimeLeft: g.TimeLeft(now),
		Status:   string(status),
		Text:     g.String(),
	}
}

// buildState snapshots the engine for the client. Must be called from
// the session goroutine that owns the engine.
func buildState(e *engine.Engine) *StateView {
	now := e.Clock().Time()

	inventory := make(map[string]int)
	for item, count := range e.Inventory().Snapshot() {
		inventory[item.String()] = count
	}

	draft := &DraftView{
		Item:     e.Builder().QuestItem().Item.String(),
		Amount:   e.Builder().QuestItem().Amount,
		Reward:   e.Builder().RewardItem().Amount,
		Complete: e.Builder().Complete(),
	}

	log := make([]QuestView, 0)
	for _, visitor := range e.QuestLog() {
		log = append(log, *questView(visitor, visitor.Quest, now))
	}

	goals := make([]GoalView, 0)
	for _, g := range e.Goals() {
		held := e.Inventory().Count(g.Item().Item)
		goals = append(goals, goalView(g, e.GoalStatus(g), held, now))
	}

	return &StateView{
		Day:       e.Clock().Day(),
		Hour:      e.Clock().Hour(),
		Clock:     e.Clock().String(),
		Money:     e.Inventory().Money(),
		Bankrupt:  e.Bankrupt(),
		Inventory: inventory,
		Active:    npcView(e.ActiveNPC()),
		QueueSize: e.QueueSize(),
		Draft:     draft,
		QuestLog:  log,
		Goals:     goals,
	}
}

// parseItem maps a wire item name, tolerating unknown values as a
// cleared selection
func parseItem(name string) items.ItemType {
	item, ok := items.ParseItemType(name)
	if !ok {
		return items.None
	}
	return item
}
