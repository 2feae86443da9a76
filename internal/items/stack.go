package items

import (
	"fmt"
	"math"
)

// Stack is an item type paired with a quantity. Amounts are rounded to
// the nearest integer and never drop below zero.
type Stack struct {
	Item   ItemType
	Amount int
}

// NewStack creates a stack with a clamped, rounded amount
func NewStack(item ItemType, amount float64) Stack {
	s := Stack{Item: item}
	s.SetAmountF(amount)
	return s
}

// EmptyStack returns a stack with no item selected
func EmptyStack() Stack {
	return Stack{Item: None, Amount: 1}
}

// Clone returns an independent copy of the stack
func (s Stack) Clone() Stack {
	return Stack{Item: s.Item, Amount: s.Amount}
}

// SetAmount sets the amount, clamped to zero or above
func (s *Stack) SetAmount(amount int) {
	if amount < 0 {
		amount = 0
	}
	s.Amount = amount
}

// SetAmountF rounds a fractional amount to the nearest integer before
// clamping, mirroring how reward valuations are applied
func (s *Stack) SetAmountF(amount float64) {
	s.SetAmount(int(math.Round(amount)))
}

// SetItem changes the item type without touching the amount
func (s *Stack) SetItem(item ItemType) {
	s.Item = item
}

// String renders the stack for logs and the quest board,
// e.g. "3 Furs" or "1 Dragon Tooth"
func (s Stack) String() string {
	return fmt.Sprintf("%d %s", s.Amount, s.Item.Name(s.Amount))
}
