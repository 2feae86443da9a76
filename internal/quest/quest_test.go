package quest

import (
	"testing"

	"github.com/guildhall-game/guildhall/internal/items"
)

func newTestQuest(item items.ItemType, amount, reward, duration int) *Quest {
	q := New(
		[]items.Stack{items.NewStack(item, float64(amount))},
		[]items.Stack{items.NewStack(items.Money, float64(reward))},
	)
	q.Duration = duration
	return q
}

func TestQuestStartStampsClock(t *testing.T) {
	q := newTestQuest(items.Fur, 3, 40, 48)

	if q.Started() {
		t.Error("new quest should not be started")
	}

	q.Start(100)
	if !q.Started() {
		t.Error("quest should be started")
	}
	if q.StartTime != 100 {
		t.Errorf("start time: got %d, want 100", q.StartTime)
	}

	// A second start must not re-stamp
	q.Start(200)
	if q.StartTime != 100 {
		t.Errorf("start time after second Start: got %d, want 100", q.StartTime)
	}
}

func TestQuestTimeLeft(t *testing.T) {
	q := newTestQuest(items.Fur, 3, 40, 48)
	q.Start(10)

	tests := []struct {
		now      int
		timeLeft int
		expired  bool
	}{
		{10, 48, false},
		{30, 28, false},
		{57, 1, false},
		{58, 0, true},
		{60, -2, true},
	}

	for _, tt := range tests {
		if got := q.TimeLeft(tt.now); got != tt.timeLeft {
			t.Errorf("TimeLeft(%d): got %d, want %d", tt.now, got, tt.timeLeft)
		}
		if got := q.Expired(tt.now); got != tt.expired {
			t.Errorf("Expired(%d): got %v, want %v", tt.now, got, tt.expired)
		}
	}
}

func TestUnstartedQuestNeverExpires(t *testing.T) {
	q := newTestQuest(items.Fur, 3, 40, 0)
	if q.Expired(1000) {
		t.Error("unstarted quest must not expire")
	}
}

func TestQuestCloneIndependence(t *testing.T) {
	q := newTestQuest(items.Gem, 2, 80, 24)
	q.Start(5)

	c := q.Clone()
	if c.Item() != q.Item() || c.Reward() != q.Reward() {
		t.Error("clone should be value-equal")
	}
	if c.Duration != q.Duration || c.StartTime != q.StartTime || c.Started() != q.Started() {
		t.Error("clone should carry duration and start stamp")
	}

	// Mutating the clone's stacks never affects the original
	c.Items[0].SetAmount(99)
	c.Rewards[0].SetAmount(1)
	if q.Item().Amount != 2 {
		t.Errorf("original item amount changed: got %d, want 2", q.Item().Amount)
	}
	if q.Reward().Amount != 80 {
		t.Errorf("original reward amount changed: got %d, want 80", q.Reward().Amount)
	}
}

func TestQuestResolutionTag(t *testing.T) {
	q := newTestQuest(items.Meat, 1, 10, 24)

	if q.Resolved() {
		t.Error("new quest should not be resolved")
	}
	if !q.MarkResolved() {
		t.Error("first MarkResolved should succeed")
	}
	if q.MarkResolved() {
		t.Error("second MarkResolved must fail to prevent double-crediting")
	}
}

func TestEmptyQuestAccessors(t *testing.T) {
	q := New(nil, nil)
	if q.Item().Item != items.None {
		t.Errorf("empty quest item: got %v, want None", q.Item().Item)
	}
	if q.Reward().Item != items.None {
		t.Errorf("empty quest reward: got %v, want None", q.Reward().Item)
	}
}

func TestQuestString(t *testing.T) {
	q := newTestQuest(items.Fur, 3, 40, 48)
	if got := q.String(); got != "3 Furs for 40 Gold (48h)" {
		t.Errorf("String(): got %q", got)
	}
}
