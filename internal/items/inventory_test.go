package items

import "testing"

func TestNewInventoryStartingBalance(t *testing.T) {
	inv := NewInventory(1000)

	if inv.Money() != 1000 {
		t.Errorf("starting money: got %d, want 1000", inv.Money())
	}
	for _, item := range TradeGoods() {
		if inv.Count(item) != 0 {
			t.Errorf("starting count of %v: got %d, want 0", item, inv.Count(item))
		}
	}
}

func TestInventoryCreditDebit(t *testing.T) {
	inv := NewInventory(1000)

	inv.Credit(NewStack(Apple, 5))
	if inv.Count(Apple) != 5 {
		t.Errorf("after credit: got %d, want 5", inv.Count(Apple))
	}

	inv.Debit(NewStack(Apple, 2))
	if inv.Count(Apple) != 3 {
		t.Errorf("after debit: got %d, want 3", inv.Count(Apple))
	}

	// Debits clamp at zero rather than going negative
	inv.Debit(NewStack(Apple, 100))
	if inv.Count(Apple) != 0 {
		t.Errorf("after over-debit: got %d, want 0", inv.Count(Apple))
	}
}

func TestInventoryMoneyLedger(t *testing.T) {
	inv := NewInventory(100)

	if !inv.CanAfford(100) {
		t.Error("should afford exactly the balance")
	}
	if inv.CanAfford(101) {
		t.Error("should not afford more than the balance")
	}

	inv.Debit(NewStack(Money, 40))
	if inv.Money() != 60 {
		t.Errorf("after spending 40: got %d, want 60", inv.Money())
	}

	inv.Credit(NewStack(Money, 15))
	if inv.Money() != 75 {
		t.Errorf("after earning 15: got %d, want 75", inv.Money())
	}
}

func TestInventoryReset(t *testing.T) {
	inv := NewInventory(1000)
	inv.Credit(NewStack(Fur, 10))
	inv.Debit(NewStack(Money, 500))

	inv.Reset()

	if inv.Money() != 1000 {
		t.Errorf("money after reset: got %d, want 1000", inv.Money())
	}
	if inv.Count(Fur) != 0 {
		t.Errorf("fur after reset: got %d, want 0", inv.Count(Fur))
	}
}

func TestInventorySetClamps(t *testing.T) {
	inv := NewInventory(0)
	inv.Set(Gem, -3)
	if inv.Count(Gem) != 0 {
		t.Errorf("Set(-3): got %d, want 0", inv.Count(Gem))
	}
	inv.Set(Gem, 12)
	if inv.Count(Gem) != 12 {
		t.Errorf("Set(12): got %d, want 12", inv.Count(Gem))
	}
}

func TestInventoryIgnoresNoneItem(t *testing.T) {
	inv := NewInventory(100)
	inv.Credit(Stack{Item: None, Amount: 5})
	inv.Debit(Stack{Item: None, Amount: 5})

	snap := inv.Snapshot()
	if _, exists := snap[None]; exists {
		t.Error("ledger should never track the None item")
	}
}

func TestInventorySnapshotIsCopy(t *testing.T) {
	inv := NewInventory(100)
	snap := inv.Snapshot()
	snap[Money] = 9999

	if inv.Money() != 100 {
		t.Errorf("mutating snapshot changed ledger: got %d, want 100", inv.Money())
	}
}
