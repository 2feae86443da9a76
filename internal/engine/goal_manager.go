package engine

import (
	"sort"

	"github.com/guildhall-game/guildhall/internal/balancing"
	"github.com/guildhall-game/guildhall/internal/config"
	"github.com/guildhall-game/guildhall/internal/dice"
	"github.com/guildhall-game/guildhall/internal/items"
	"github.com/guildhall-game/guildhall/internal/logger"
	"github.com/guildhall-game/guildhall/internal/quest"
)

// Flat fallback ranges used when no economy data is loaded for an item
const (
	fallbackRewardMin   = 25
	fallbackRewardMax   = 100
	fallbackDeadlineMin = 24
	fallbackDeadlineMax = 72
	minDeadlineHours    = 24
	deadlineSlack       = 2
)

// GoalManager keeps the player's delivery goals topped up and settles
// them against the inventory each hour. Goals that run out of time are
// removed; fulfilled goals wait for the player to collect the reward.
type GoalManager struct {
	cfg      config.GameConfig
	table    *balancing.Table
	roller   *dice.Roller
	inv      *items.Inventory
	notifier Notifier

	goals     []*quest.PlayerGoal
	announced map[*quest.PlayerGoal]bool
	lastGen   int
}

func NewGoalManager(cfg config.GameConfig, table *balancing.Table, roller *dice.Roller, inv *items.Inventory, notifier Notifier) *GoalManager {
	if notifier == nil {
		notifier = NopNotifier{}
	}

	return &GoalManager{
		cfg:       cfg,
		table:     table,
		roller:    roller,
		inv:       inv,
		notifier:  notifier,
		announced: make(map[*quest.PlayerGoal]bool),
	}
}

// Goals returns the current goals, tightest deadline first. The index
// into this slice is the handle Collect and Dismiss take.
func (m *GoalManager) Goals() []*quest.PlayerGoal {
	out := make([]*quest.PlayerGoal, len(m.goals))
	copy(out, m.goals)

	return out
}

// Status reports the goal's standing against the current inventory
func (m *GoalManager) Status(g *quest.PlayerGoal, now int) quest.Status {
	return g.Status(m.inv.Count(g.Item().Item), now)
}

// Tick settles expired goals, announces fulfilled ones, and tops the
// list back up toward the configured target
func (m *GoalManager) Tick(now int) {
	remaining := m.goals[:0]

	for _, g := range m.goals {
		switch m.Status(g, now) {
		case quest.StatusFailure:
			delete(m.announced, g)
			m.notifier.GoalFailed(g)
			logger.Info("goal failed", "goal", g.String())
		case quest.StatusSuccess:
			if !m.announced[g] {
				m.announced[g] = true
				m.notifier.GoalSucceeded(g)
				logger.Info("goal fulfilled", "goal", g.String())
			}
			remaining = append(remaining, g)
		default:
			remaining = append(remaining, g)
		}
	}

	m.goals = remaining
	m.sortGoals(now)

	if len(m.goals) < m.cfg.GoalTarget && now-m.lastGen >= m.cfg.GoalMinWaitHours {
		m.lastGen = now
		if m.roller.Chance(float64(m.cfg.GoalGenerationChance)) {
			m.addGoal(now)
		}
	}
}

// Collect pays out a fulfilled goal and removes it. Returns false for
// an out-of-range index, a goal that is not fulfilled, or one already
// collected.
func (m *GoalManager) Collect(index, now int) bool {
	if index < 0 || index >= len(m.goals) {
		return false
	}

	g := m.goals[index]
	if m.Status(g, now) != quest.StatusSuccess {
		return false
	}
	if !g.MarkCollected() {
		return false
	}

	m.inv.Credit(g.Reward())
	m.goals = append(m.goals[:index], m.goals[index+1:]...)
	delete(m.announced, g)
	m.notifier.GoalCollected(g)

	logger.Info("goal collected", "goal", g.String())

	return true
}

// Dismiss drops a goal without payout. Out-of-range indexes are a no-op.
func (m *GoalManager) Dismiss(index int) bool {
	if index < 0 || index >= len(m.goals) {
		return false
	}

	g := m.goals[index]
	m.goals = append(m.goals[:index], m.goals[index+1:]...)
	delete(m.announced, g)

	logger.Debug("goal dismissed", "goal", g.String())

	return true
}

// Reset clears all goals and seeds a fresh set for a new game
func (m *GoalManager) Reset(now int) {
	m.goals = nil
	m.announced = make(map[*quest.PlayerGoal]bool)
	m.lastGen = now

	for i := 0; i < m.cfg.GoalTarget; i++ {
		m.addGoal(now)
	}
}

func (m *GoalManager) addGoal(now int) {
	goods := items.TradeGoods()
	item := goods[m.roller.Pick(len(goods))]
	amount := m.roller.Between(m.cfg.GoalAmountMin, m.cfg.GoalAmountMax)

	reward := m.table.ItemWorth(item, amount, m.roller)
	if reward <= 0 {
		reward = float64(amount * m.roller.Between(fallbackRewardMin, fallbackRewardMax))
	}

	deadlineHours := m.roller.Between(fallbackDeadlineMin, fallbackDeadlineMax)
	if hours := m.table.ItemTime(item, amount, m.roller); hours > 0 {
		// Give the player room beyond the raw gather estimate
		deadlineHours = hours * deadlineSlack
		if deadlineHours < minDeadlineHours {
			deadlineHours = minDeadlineHours
		}
	}

	g := quest.NewGoal(
		[]items.Stack{items.NewStack(item, float64(amount))},
		[]items.Stack{items.NewStack(items.Money, reward)},
		now+deadlineHours,
	)

	m.goals = append(m.goals, g)
	m.sortGoals(now)
	m.notifier.GoalAdded(g)

	logger.Debug("goal added", "goal", g.String())
}

func (m *GoalManager) sortGoals(now int) {
	sort.SliceStable(m.goals, func(i, j int) bool {
		return m.goals[i].TimeLeft(now) < m.goals[j].TimeLeft(now)
	})
}
