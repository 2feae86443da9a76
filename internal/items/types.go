package items

// ItemType represents a kind of tradeable quest good
type ItemType int

// None marks an empty stack slot, used by quest drafts before the
// player picks an item
const None ItemType = -1

const (
	Money ItemType = iota
	Mushroom
	Apple
	Gem
	Meat
	Fur
	Horse
	Weapon
	HuntingTrophy
	Message
)

// All returns every item type, including Money
func All() []ItemType {
	return []ItemType{Money, Mushroom, Apple, Gem, Meat, Fur, Horse, Weapon, HuntingTrophy, Message}
}

// TradeGoods returns every item type except Money, the set quests
// and goals are generated from
func TradeGoods() []ItemType {
	return []ItemType{Mushroom, Apple, Gem, Meat, Fur, Horse, Weapon, HuntingTrophy, Message}
}

// String returns the identifier used in data files and wire messages
func (t ItemType) String() string {
	switch t {
	case Money:
		return "money"
	case Mushroom:
		return "mushroom"
	case Apple:
		return "apple"
	case Gem:
		return "gem"
	case Meat:
		return "meat"
	case Fur:
		return "fur"
	case Horse:
		return "horse"
	case Weapon:
		return "weapon"
	case HuntingTrophy:
		return "hunting_trophy"
	case Message:
		return "message"
	case None:
		return "none"
	default:
		return "unknown"
	}
}

// Name returns the display name for the given quantity
// (e.g. "Apple" for 1, "Apples" for 3)
func (t ItemType) Name(amount int) string {
	switch t {
	case Money:
		return "Gold"
	case Mushroom:
		if amount > 1 {
			return "Mushrooms"
		}
		return "Mushroom"
	case Apple:
		if amount > 1 {
			return "Apples"
		}
		return "Apple"
	case Gem:
		if amount > 1 {
			return "Gems"
		}
		return "Gem"
	case Meat:
		return "Meat"
	case Fur:
		if amount > 1 {
			return "Furs"
		}
		return "Fur"
	case Horse:
		if amount > 1 {
			return "Horses"
		}
		return "Horse"
	case Weapon:
		if amount > 1 {
			return "Weapons"
		}
		return "Weapon"
	case HuntingTrophy:
		if amount > 1 {
			return "Dragon Teeth"
		}
		return "Dragon Tooth"
	case Message:
		if amount > 1 {
			return "Messages"
		}
		return "Message"
	case None:
		return "_ _ _ _ _ _"
	default:
		return "Unknown"
	}
}

// ParseItemType converts a data-file identifier to an ItemType.
// The second return value is false for unrecognized identifiers.
func ParseItemType(s string) (ItemType, bool) {
	switch s {
	case "money":
		return Money, true
	case "mushroom":
		return Mushroom, true
	case "apple":
		return Apple, true
	case "gem":
		return Gem, true
	case "meat":
		return Meat, true
	case "fur":
		return Fur, true
	case "horse":
		return Horse, true
	case "weapon":
		return Weapon, true
	case "hunting_trophy":
		return HuntingTrophy, true
	case "message":
		return Message, true
	default:
		return Money, false
	}
}
