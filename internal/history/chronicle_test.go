package history

import (
	"path/filepath"
	"testing"

	"github.com/guildhall-game/guildhall/internal/config"
	"github.com/guildhall-game/guildhall/internal/items"
	"github.com/guildhall-game/guildhall/internal/npc"
	"github.com/guildhall-game/guildhall/internal/quest"
)

func openTestChronicle(t *testing.T) *Chronicle {
	t.Helper()

	c, err := Open(config.HistoryConfig{
		Dialect: string(DialectSQLite),
		Path:    filepath.Join(t.TempDir(), "chronicle.db"),
	})
	if err != nil {
		t.Fatalf("failed to open chronicle: %v", err)
	}
	t.Cleanup(func() { c.Close() })

	return c
}

func TestChronicleQuestRoundTrip(t *testing.T) {
	c := openTestChronicle(t)

	records := []QuestRecord{
		{NPCName: "Borin Stonebeard", NPCRole: "hunter", Item: "fur", Amount: 3, Reward: 40, Success: true, Day: 2, Hour: 0},
		{NPCName: "Mira Thornwood", NPCRole: "thief", Item: "gem", Amount: 1, Reward: 120, Success: false, Day: 3, Hour: 12},
	}
	for _, r := range records {
		if err := c.RecordQuest(r); err != nil {
			t.Fatalf("failed to record quest: %v", err)
		}
	}

	got, err := c.RecentQuests(10)
	if err != nil {
		t.Fatalf("failed to read quests: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}

	// Newest first
	if got[0].NPCName != "Mira Thornwood" || got[0].Success {
		t.Errorf("unexpected newest record: %+v", got[0])
	}
	if got[1].Item != "fur" || got[1].Amount != 3 || got[1].Reward != 40 {
		t.Errorf("unexpected oldest record: %+v", got[1])
	}
	if got[1].Day != 2 || got[1].Hour != 0 {
		t.Errorf("game timestamp not preserved: %+v", got[1])
	}
}

func TestChronicleQuestTotals(t *testing.T) {
	c := openTestChronicle(t)

	for i := 0; i < 3; i++ {
		if err := c.RecordQuest(QuestRecord{NPCName: "a", NPCRole: "gatherer", Item: "apple", Amount: 1, Reward: 10, Success: true}); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.RecordQuest(QuestRecord{NPCName: "b", NPCRole: "fighter", Item: "meat", Amount: 2, Reward: 30, Success: false}); err != nil {
		t.Fatal(err)
	}

	completed, failed, err := c.QuestTotals()
	if err != nil {
		t.Fatalf("failed to read totals: %v", err)
	}
	if completed != 3 || failed != 1 {
		t.Errorf("expected 3 completed and 1 failed, got %d and %d", completed, failed)
	}
}

func TestChronicleGoalRoundTrip(t *testing.T) {
	c := openTestChronicle(t)

	if err := c.RecordGoal(GoalRecord{Item: "apple", Amount: 5, Reward: 120, Outcome: OutcomeCollected, Day: 1, Hour: 6}); err != nil {
		t.Fatalf("failed to record goal: %v", err)
	}
	if err := c.RecordGoal(GoalRecord{Item: "gem", Amount: 2, Reward: 300, Outcome: OutcomeFailed, Day: 4, Hour: 18}); err != nil {
		t.Fatalf("failed to record goal: %v", err)
	}

	got, err := c.RecentGoals(10)
	if err != nil {
		t.Fatalf("failed to read goals: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Outcome != OutcomeFailed || got[1].Outcome != OutcomeCollected {
		t.Errorf("unexpected order: %+v", got)
	}
}

func TestChronicleRecentLimit(t *testing.T) {
	c := openTestChronicle(t)

	for i := 0; i < 5; i++ {
		if err := c.RecordQuest(QuestRecord{NPCName: "a", NPCRole: "gatherer", Item: "apple", Amount: 1, Reward: 10, Success: true}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := c.RecentQuests(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("expected the limit honored, got %d records", len(got))
	}
}

func TestRecorderStampsGameTime(t *testing.T) {
	c := openTestChronicle(t)
	rec := NewRecorder(c)

	rec.HourAdvanced(2, 13)

	visitor := npc.New("Borin Stonebeard", npc.Hunter, 2)
	b := quest.NewBuilder()
	b.SetQuestItem(items.Fur)
	b.SetQuestAmount(3)
	b.SetRewardAmount(40)

	rec.QuestResolved(visitor, b.Build(), true)

	got, err := c.RecentQuests(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatal("expected the resolution recorded")
	}
	if got[0].Day != 2 || got[0].Hour != 13 {
		t.Errorf("expected game time 2/13, got %d/%d", got[0].Day, got[0].Hour)
	}
	if got[0].NPCRole != "hunter" || got[0].Item != "fur" {
		t.Errorf("unexpected record: %+v", got[0])
	}
}

func TestDialectPlaceholders(t *testing.T) {
	query := "INSERT INTO t (a, b) VALUES (?, ?)"

	if got := buildQuery(&SQLiteDialect{}, query); got != query {
		t.Errorf("expected SQLite query unchanged, got %q", got)
	}

	want := "INSERT INTO t (a, b) VALUES ($1, $2)"
	if got := buildQuery(&PostgresDialect{}, query); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
