package quest

import (
	"strconv"

	"github.com/guildhall-game/guildhall/internal/items"
)

const (
	minAmount           = 1
	defaultRewardAmount = 100
)

// Builder is the mutable quest draft behind the negotiation dialog.
// Numeric input arrives as raw text from the UI and is coerced to a
// valid amount, never rejected.
type Builder struct {
	questItem  items.Stack
	rewardItem items.Stack
}

// NewBuilder creates a draft with no quest item selected and a
// default gold reward
func NewBuilder() *Builder {
	b := &Builder{}
	b.Reset()
	return b
}

// Reset returns the draft to its initial state
func (b *Builder) Reset() {
	b.questItem = items.EmptyStack()
	b.rewardItem = items.NewStack(items.Money, defaultRewardAmount)
}

// QuestItem returns the current required-item stack
func (b *Builder) QuestItem() items.Stack {
	return b.questItem
}

// RewardItem returns the current reward stack
func (b *Builder) RewardItem() items.Stack {
	return b.rewardItem
}

// SetQuestItem picks the item type the NPC must deliver
func (b *Builder) SetQuestItem(item items.ItemType) {
	b.questItem.SetItem(item)
}

// SetQuestAmount sets the required amount, coerced to at least 1
func (b *Builder) SetQuestAmount(amount int) {
	b.questItem.SetAmount(coerceAmount(amount))
}

// SetQuestAmountText sets the required amount from raw UI text
func (b *Builder) SetQuestAmountText(text string) {
	b.questItem.SetAmount(parseAmount(text))
}

// SetRewardAmount sets the gold reward, coerced to at least 1
func (b *Builder) SetRewardAmount(amount int) {
	b.rewardItem.SetAmount(coerceAmount(amount))
}

// SetRewardAmountText sets the gold reward from raw UI text
func (b *Builder) SetRewardAmountText(text string) {
	b.rewardItem.SetAmount(parseAmount(text))
}

// Complete reports whether the draft can be offered: an item has been
// picked (amounts are always valid by construction)
func (b *Builder) Complete() bool {
	return b.questItem.Item != items.None
}

// Build clones the draft into a fresh unstarted quest, decoupling the
// offered quest from further dialog edits
func (b *Builder) Build() *Quest {
	return New(
		[]items.Stack{b.questItem.Clone()},
		[]items.Stack{b.rewardItem.Clone()},
	)
}

// parseAmount coerces raw text to a valid amount. Non-numeric input
// falls back to the minimum rather than propagating an error.
func parseAmount(text string) int {
	n, err := strconv.Atoi(text)
	if err != nil {
		return minAmount
	}
	return coerceAmount(n)
}

func coerceAmount(n int) int {
	if n < minAmount {
		return minAmount
	}
	return n
}
