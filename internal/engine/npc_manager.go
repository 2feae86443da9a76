package engine

import (
	"sort"

	"github.com/guildhall-game/guildhall/internal/config"
	"github.com/guildhall-game/guildhall/internal/dice"
	"github.com/guildhall-game/guildhall/internal/items"
	"github.com/guildhall-game/guildhall/internal/logger"
	"github.com/guildhall-game/guildhall/internal/npc"
	"github.com/guildhall-game/guildhall/internal/quest"
)

const (
	minLevel = 1
	maxLevel = 5
)

// NPCManager owns the visitor queue and the quests currently out in
// the field. The NPC at the head of the queue is the one the player
// negotiates with; everyone behind waits their turn.
type NPCManager struct {
	cfg      config.GameConfig
	table    npc.Balancer
	roller   *dice.Roller
	names    *npc.NamePool
	inv      *items.Inventory
	notifier Notifier

	queue       []*npc.NPC
	inProgress  []*npc.NPC
	lastSpawn   int
	negotiating bool
}

func NewNPCManager(cfg config.GameConfig, table npc.Balancer, roller *dice.Roller, names *npc.NamePool, inv *items.Inventory, notifier Notifier) *NPCManager {
	if notifier == nil {
		notifier = NopNotifier{}
	}

	return &NPCManager{
		cfg:      cfg,
		table:    table,
		roller:   roller,
		names:    names,
		inv:      inv,
		notifier: notifier,
	}
}

// Active returns the NPC at the head of the queue, or nil when the
// hall is empty
func (m *NPCManager) Active() *npc.NPC {
	if len(m.queue) == 0 {
		return nil
	}

	return m.queue[0]
}

// Queue returns a copy of the waiting NPCs in arrival order
func (m *NPCManager) Queue() []*npc.NPC {
	out := make([]*npc.NPC, len(m.queue))
	copy(out, m.queue)

	return out
}

// InProgress returns the NPCs out on quests, soonest deadline first
func (m *NPCManager) InProgress(now int) []*npc.NPC {
	out := make([]*npc.NPC, len(m.inProgress))
	copy(out, m.inProgress)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Quest.TimeLeft(now) < out[j].Quest.TimeLeft(now)
	})

	return out
}

// SetNegotiating flags whether the quest dialog is open. Arrivals slow
// down while the player is negotiating so the queue does not pile up.
func (m *NPCManager) SetNegotiating(open bool) {
	m.negotiating = open
}

func (m *NPCManager) Negotiating() bool {
	return m.negotiating
}

func (m *NPCManager) spawnInterval() int {
	if m.negotiating {
		return m.cfg.NegotiationSpawnIntervalHours
	}

	return m.cfg.SpawnIntervalHours
}

// Spawn adds a fresh visitor to the back of the queue and stamps the
// spawn clock. Does nothing when the queue is at capacity.
func (m *NPCManager) Spawn(now int) *npc.NPC {
	if len(m.queue) >= m.cfg.MaxQueueSize {
		return nil
	}

	role := npc.AllRoles()[m.roller.Pick(len(npc.AllRoles()))]
	level := float64(m.roller.Between(minLevel, maxLevel))
	visitor := npc.New(m.names.Random(m.roller), role, level)

	m.queue = append(m.queue, visitor)
	m.lastSpawn = now
	m.notifier.NPCArrived(visitor)

	logger.Debug("NPC arrived", "name", visitor.Name, "role", visitor.Role.String(), "queue", len(m.queue))

	return visitor
}

// Tick advances arrivals and settles any quests whose time is up
func (m *NPCManager) Tick(now int) {
	if now-m.lastSpawn >= m.spawnInterval() {
		if len(m.queue) < m.cfg.MaxQueueSize {
			m.Spawn(now)
		} else {
			// Full hall: restart the wait so a freed slot does not
			// fill again instantly.
			m.lastSpawn = now
		}
	}

	m.resolveQuests(now)
}

// OfferQuest puts the draft in front of the active NPC. On acceptance
// the reward is escrowed from the inventory, the quest clock starts,
// and the NPC heads out; either way the NPC leaves the queue. Returns
// whether the quest was accepted, and false when nobody is waiting.
func (m *NPCManager) OfferQuest(draft *quest.Quest, now int) bool {
	visitor := m.Active()
	if visitor == nil {
		return false
	}

	m.queue = m.queue[1:]

	if !visitor.WouldAcceptQuest(draft, m.table, m.roller) {
		m.notifier.NPCLeft(visitor, LeaveRejected)
		logger.Debug("quest rejected", "name", visitor.Name, "quest", draft.String())

		return false
	}

	assigned := draft.Clone()
	assigned.Duration = m.table.QuestDuration(visitor.Role, assigned.Item().Item, assigned.Item().Amount)
	assigned.Start(now)

	visitor.AssignQuest(assigned)
	m.inv.Debit(assigned.Reward())
	m.inProgress = append(m.inProgress, visitor)
	m.notifier.QuestAssigned(visitor, assigned)

	logger.Info("quest assigned", "name", visitor.Name, "quest", assigned.String())

	return true
}

func (m *NPCManager) resolveQuests(now int) {
	remaining := m.inProgress[:0]

	for _, visitor := range m.inProgress {
		q := visitor.Quest
		if q == nil || !q.Expired(now) {
			remaining = append(remaining, visitor)
			continue
		}

		if !q.MarkResolved() {
			continue
		}

		success := visitor.TryCompleteQuest(m.roller)
		if success {
			m.inv.Credit(q.Item())
			m.notifier.QuestResolved(visitor, q, true)
			m.notifier.NPCLeft(visitor, LeaveCompleted)
			logger.Info("quest completed", "name", visitor.Name, "quest", q.String())
		} else {
			m.notifier.QuestResolved(visitor, q, false)
			m.notifier.NPCLeft(visitor, LeaveFailed)
			logger.Info("quest failed", "name", visitor.Name, "quest", q.String())
		}
	}

	m.inProgress = remaining
}

// Reset clears the hall and the field for a new game
func (m *NPCManager) Reset() {
	m.queue = nil
	m.inProgress = nil
	m.lastSpawn = 0
	m.negotiating = false
}
