package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/guildhall-game/guildhall/internal/balancing"
	"github.com/guildhall-game/guildhall/internal/config"
	"github.com/guildhall-game/guildhall/internal/dice"
	"github.com/guildhall-game/guildhall/internal/engine"
	"github.com/guildhall-game/guildhall/internal/logger"
	"github.com/guildhall-game/guildhall/internal/npc"
	"github.com/guildhall-game/guildhall/internal/quest"
)

// sessionUpdateInterval is how often real time is fed into the engine
const sessionUpdateInterval = 250 * time.Millisecond

// Session is one browser's game: a private engine driven by a
// real-time ticker, with commands and notifications flowing over a
// single websocket. The engine is only ever touched from the run
// goroutine.
type Session struct {
	engine.NopNotifier

	id       string
	client   *WebSocketClient
	engine   *engine.Engine
	commands chan Command

	shutdown chan struct{}
	once     sync.Once

	// dirty marks that notifications arrived during the last engine
	// call, so a fresh state snapshot must follow. Only the run
	// goroutine touches it.
	dirty bool
}

// NewSession builds a session and its private engine. Extra notifiers
// (the chronicle recorder) observe the same game.
func NewSession(client *WebSocketClient, cfg config.GameConfig, table *balancing.Table, names *npc.NamePool, seed int64, extra ...engine.Notifier) *Session {
	s := &Session{
		id:       uuid.NewString(),
		client:   client,
		commands: make(chan Command),
		shutdown: make(chan struct{}),
	}

	notifiers := append([]engine.Notifier{s}, extra...)
	s.engine = engine.New(cfg, table, dice.NewRoller(seed), names, engine.CombineNotifiers(notifiers...))

	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Run drives the session until the client disconnects or the server
// shuts down. Blocks; callers start it on its own goroutine.
func (s *Session) Run() {
	defer s.Close()

	go s.readLoop()

	ticker := time.NewTicker(sessionUpdateInterval)
	defer ticker.Stop()

	s.pushState()

	last := time.Now()
	for {
		select {
		case <-s.shutdown:
			return
		case cmd := <-s.commands:
			s.handle(cmd)
			s.pushState()
		case now := <-ticker.C:
			s.engine.Update(now.Sub(last))
			last = now
			if s.dirty {
				s.pushState()
			}
		}
	}
}

// Close tears the session down. Safe to call more than once.
func (s *Session) Close() {
	s.once.Do(func() {
		close(s.shutdown)
		s.client.Close()
		logger.Info("session closed", "session", s.id)
	})
}

// readLoop decodes client commands onto the run goroutine
func (s *Session) readLoop() {
	for {
		cmd, err := s.client.ReadCommand()
		if err != nil {
			logger.Debug("client read ended", "session", s.id, "error", err)
			s.Close()
			return
		}

		select {
		case s.commands <- cmd:
		case <-s.shutdown:
			return
		}
	}
}

func (s *Session) handle(cmd Command) {
	switch cmd.Type {
	case "draft_item":
		s.engine.SetDraftItem(parseItem(cmd.Item))
	case "draft_amount":
		s.engine.SetDraftAmount(cmd.Text)
	case "draft_reward":
		s.engine.SetDraftReward(cmd.Text)
	case "negotiate":
		s.engine.SetNegotiating(cmd.Open)
	case "offer":
		accepted := s.engine.OfferDraft()
		logger.Debug("offer handled", "session", s.id, "accepted", accepted)
	case "collect_goal":
		s.engine.CollectGoal(cmd.Index)
	case "dismiss_goal":
		s.engine.DismissGoal(cmd.Index)
	case "new_game":
		s.engine.NewGame()
	case "state":
		// The snapshot after this switch covers it
	default:
		logger.Warn("unknown command", "session", s.id, "type", cmd.Type)
	}
}

func (s *Session) pushState() {
	s.dirty = false
	s.send(Event{Type: "state", State: buildState(s.engine)})
}

func (s *Session) send(event Event) {
	if err := s.client.WriteEvent(event); err != nil {
		logger.Debug("client write failed", "session", s.id, "error", err)
		s.Close()
	}
}

// Notifier implementation. Called synchronously from engine methods on
// the run goroutine, so events interleave correctly with state pushes.

func (s *Session) HourAdvanced(day, hour int) {
	s.dirty = true
}

func (s *Session) NPCArrived(n *npc.NPC) {
	s.dirty = true
	s.send(Event{Type: "npc_arrived", NPC: npcView(n)})
}

func (s *Session) NPCLeft(n *npc.NPC, reason engine.LeaveReason) {
	s.dirty = true
	s.send(Event{Type: "npc_left", NPC: npcView(n), Reason: string(reason)})
}

func (s *Session) QuestAssigned(n *npc.NPC, q *quest.Quest) {
	s.dirty = true
	s.send(Event{Type: "quest_assigned", Quest: questView(n, q, s.engine.Clock().Time())})
}

func (s *Session) QuestResolved(n *npc.NPC, q *quest.Quest, success bool) {
	s.dirty = true
	s.send(Event{Type: "quest_resolved", Quest: questView(n, q, s.engine.Clock().Time()), Success: success})
}

func (s *Session) GoalAdded(g *quest.PlayerGoal) {
	s.dirty = true
	s.sendGoal("goal_added", g)
}

func (s *Session) GoalSucceeded(g *quest.PlayerGoal) {
	s.dirty = true
	s.sendGoal("goal_succeeded", g)
}

func (s *Session) GoalFailed(g *quest.PlayerGoal) {
	s.dirty = true
	s.sendGoal("goal_failed", g)
}

func (s *Session) GoalCollected(g *quest.PlayerGoal) {
	s.dirty = true
	s.sendGoal("goal_collected", g)
}

func (s *Session) GameReset() {
	s.dirty = true
	s.send(Event{Type: "reset"})
}

func (s *Session) sendGoal(eventType string, g *quest.PlayerGoal) {
	// Seed goals are announced while the engine is still being built;
	// the initial state push covers them.
	if s.engine == nil {
		return
	}

	now := s.engine.Clock().Time()
	held := s.engine.Inventory().Count(g.Item().Item)
	view := goalView(g, g.Status(held, now), held, now)
	s.send(Event{Type: eventType, Goal: &view})
}
