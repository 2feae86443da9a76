package npc

// Role represents an NPC archetype. The role decides which balancing
// table rows govern the NPC's quest behavior.
type Role int

const (
	Gatherer Role = iota
	Hunter
	Fighter
	Thief
)

// AllRoles returns every role, the set NPCs are spawned from
func AllRoles() []Role {
	return []Role{Gatherer, Hunter, Fighter, Thief}
}

// String returns the identifier used in data files and wire messages
func (r Role) String() string {
	switch r {
	case Gatherer:
		return "gatherer"
	case Hunter:
		return "hunter"
	case Fighter:
		return "fighter"
	case Thief:
		return "thief"
	default:
		return "unknown"
	}
}

// DisplayName returns the capitalized name shown to the player
func (r Role) DisplayName() string {
	switch r {
	case Gatherer:
		return "Gatherer"
	case Hunter:
		return "Hunter"
	case Fighter:
		return "Fighter"
	case Thief:
		return "Thief"
	default:
		return "Unknown"
	}
}

// ParseRole converts a data-file identifier to a Role.
// The second return value is false for unrecognized identifiers.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "gatherer":
		return Gatherer, true
	case "hunter":
		return Hunter, true
	case "fighter":
		return Fighter, true
	case "thief":
		return Thief, true
	default:
		return Fighter, false
	}
}
