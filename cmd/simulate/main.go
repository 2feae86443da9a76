// Command simulate runs a headless, seeded game for a number of
// in-game days and prints economy statistics. Used to sanity-check
// balancing table changes without clicking through a browser.
package main

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/guildhall-game/guildhall/internal/balancing"
	"github.com/guildhall-game/guildhall/internal/config"
	"github.com/guildhall-game/guildhall/internal/dice"
	"github.com/guildhall-game/guildhall/internal/engine"
	"github.com/guildhall-game/guildhall/internal/items"
	"github.com/guildhall-game/guildhall/internal/logger"
	"github.com/guildhall-game/guildhall/internal/npc"
	"github.com/guildhall-game/guildhall/internal/quest"
)

// tally counts game events over the run
type tally struct {
	engine.NopNotifier

	arrivals       int
	assigned       int
	questSuccesses int
	questFailures  int
	goalsAdded     int
	goalsCollected int
	goalsFailed    int
	goldCollected  int
	goldEscrowed   int
}

func (t *tally) NPCArrived(n *npc.NPC) {
	t.arrivals++
}

func (t *tally) QuestAssigned(n *npc.NPC, q *quest.Quest) {
	t.assigned++
	t.goldEscrowed += q.Reward().Amount
}

func (t *tally) QuestResolved(n *npc.NPC, q *quest.Quest, success bool) {
	if success {
		t.questSuccesses++
	} else {
		t.questFailures++
	}
}

func (t *tally) GoalAdded(g *quest.PlayerGoal) {
	t.goalsAdded++
}

func (t *tally) GoalCollected(g *quest.PlayerGoal) {
	t.goalsCollected++
	t.goldCollected += g.Reward().Amount
}

func (t *tally) GoalFailed(g *quest.PlayerGoal) {
	t.goalsFailed++
}

func main() {
	seed := flag.Int64("seed", 0, "Game seed (default: random based on current time)")
	days := flag.Int("days", 30, "In-game days to simulate")
	configFile := flag.String("config", "data/config.yaml", "Path to game config YAML file")
	balancingDir := flag.String("balancing", "data/balancing", "Path to balancing tables directory")
	namesFile := flag.String("names", "data/names.yaml", "Path to NPC name pool YAML file")
	flag.Parse()

	logConfig := logger.DefaultConfig()
	logConfig.Level = "WARN"
	logger.Initialize(logConfig)

	gameSeed := *seed
	if gameSeed == 0 {
		gameSeed = time.Now().UnixNano()
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Warn("Failed to load config, using defaults", "path", *configFile, "error", err)
	}

	table := balancing.NewTable()
	if err := table.LoadDir(*balancingDir); err != nil {
		logger.Warn("Failed to load balancing tables, using fallbacks", "dir", *balancingDir, "error", err)
	}

	names, err := npc.LoadNamePool(*namesFile)
	if err != nil {
		names = npc.DefaultNamePool()
	}

	stats := &tally{}
	game := engine.New(cfg.Game, table, dice.NewRoller(gameSeed), names, stats)

	hours := 0
	for hours < *days*24 {
		game.AdvanceHours(1)
		hours++
		autoplay(game, table)
		if game.Bankrupt() {
			break
		}
	}

	fmt.Printf("Guild Hall simulation (seed %d)\n", gameSeed)
	fmt.Printf("  simulated:       %dd %dh\n", hours/24, hours%24)
	fmt.Printf("  final gold:      %d (started with %d)\n", game.Inventory().Money(), cfg.Game.StartingMoney)
	fmt.Printf("  visitors:        %d\n", stats.arrivals)
	fmt.Printf("  quests assigned: %d (%d gold escrowed)\n", stats.assigned, stats.goldEscrowed)
	fmt.Printf("  quest outcomes:  %d succeeded, %d failed\n", stats.questSuccesses, stats.questFailures)
	fmt.Printf("  goals:           %d added, %d collected (%d gold), %d failed\n",
		stats.goalsAdded, stats.goalsCollected, stats.goldCollected, stats.goalsFailed)
	if game.Bankrupt() {
		fmt.Println("  result:          BANKRUPT")
	} else {
		fmt.Println("  result:          solvent")
	}
}

// autoplay is a simple greedy guild master: collect every fulfilled
// goal, then offer the waiting visitor a fair-priced quest for the
// item their trade is best at.
func autoplay(game *engine.Engine, table *balancing.Table) {
	goals := game.Goals()
	for i := len(goals) - 1; i >= 0; i-- {
		if game.GoalStatus(goals[i]) == quest.StatusSuccess {
			game.CollectGoal(i)
		}
	}

	active := game.ActiveNPC()
	if active == nil {
		return
	}

	best := items.None
	var bestRow balancing.Row
	for _, item := range items.TradeGoods() {
		row, ok := table.Lookup(active.Role, item)
		if ok && row.BaseProbability > bestRow.BaseProbability {
			best = item
			bestRow = row
		}
	}
	if best == items.None {
		return
	}

	amount := bestRow.QuantityStep
	if amount < 1 {
		amount = 1
	}
	reward := bestRow.MinGoldCompensation * amount
	if reward < 1 || !game.Inventory().CanAfford(reward) {
		return
	}

	game.SetDraftItem(best)
	game.SetDraftAmount(strconv.Itoa(amount))
	game.SetDraftReward(strconv.Itoa(reward))
	game.OfferDraft()
}
