package items

import "testing"

func TestStackAmountClamping(t *testing.T) {
	tests := []struct {
		amount   float64
		expected int
	}{
		{3.0, 3},
		{2.4, 2},
		{2.5, 3},
		{0.0, 0},
		{-5.0, 0},
		{0.49, 0},
	}

	for _, tt := range tests {
		s := NewStack(Apple, tt.amount)
		if s.Amount != tt.expected {
			t.Errorf("NewStack(Apple, %v): got amount %d, want %d", tt.amount, s.Amount, tt.expected)
		}
	}
}

func TestStackSetAmount(t *testing.T) {
	s := NewStack(Fur, 3)
	s.SetAmount(-1)
	if s.Amount != 0 {
		t.Errorf("SetAmount(-1): got %d, want 0", s.Amount)
	}
	s.SetAmount(7)
	if s.Amount != 7 {
		t.Errorf("SetAmount(7): got %d, want 7", s.Amount)
	}
}

func TestStackCloneIsIndependent(t *testing.T) {
	original := NewStack(Gem, 5)
	clone := original.Clone()

	if clone != original {
		t.Errorf("Clone should be value-equal: got %+v, want %+v", clone, original)
	}

	clone.SetAmount(99)
	clone.SetItem(Horse)
	if original.Amount != 5 || original.Item != Gem {
		t.Errorf("mutating clone changed original: %+v", original)
	}
}

func TestStackString(t *testing.T) {
	tests := []struct {
		stack    Stack
		expected string
	}{
		{NewStack(Apple, 1), "1 Apple"},
		{NewStack(Apple, 3), "3 Apples"},
		{NewStack(HuntingTrophy, 1), "1 Dragon Tooth"},
		{NewStack(HuntingTrophy, 2), "2 Dragon Teeth"},
		{NewStack(Money, 100), "100 Gold"},
		{NewStack(Meat, 4), "4 Meat"},
	}

	for _, tt := range tests {
		if got := tt.stack.String(); got != tt.expected {
			t.Errorf("Stack.String(): got %q, want %q", got, tt.expected)
		}
	}
}

func TestEmptyStack(t *testing.T) {
	s := EmptyStack()
	if s.Item != None {
		t.Errorf("EmptyStack item: got %v, want None", s.Item)
	}
	if s.Item.Name(s.Amount) != "_ _ _ _ _ _" {
		t.Errorf("EmptyStack display: got %q", s.Item.Name(s.Amount))
	}
}

func TestParseItemTypeRoundTrip(t *testing.T) {
	for _, item := range All() {
		parsed, ok := ParseItemType(item.String())
		if !ok || parsed != item {
			t.Errorf("ParseItemType(%q): got %v ok=%v, want %v", item.String(), parsed, ok, item)
		}
	}

	if _, ok := ParseItemType("dragon"); ok {
		t.Error("ParseItemType should reject unknown identifiers")
	}
}

func TestTradeGoodsExcludesMoney(t *testing.T) {
	for _, item := range TradeGoods() {
		if item == Money {
			t.Error("TradeGoods must not contain Money")
		}
	}
	if len(TradeGoods()) != len(All())-1 {
		t.Errorf("TradeGoods length: got %d, want %d", len(TradeGoods()), len(All())-1)
	}
}
