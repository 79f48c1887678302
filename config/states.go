package config

// StateID is the authoritative combat state of a character.
type StateID int

const (
	StateNone StateID = iota - 1

	Idle
	Move
	Attack
	Skill
	Hit
	Dash
	Die
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Move:      "move",
	Attack:    "attack",
	Skill:     "skill",
	Hit:       "hit",
	Dash:      "dash",
	Die:       "die",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// AIMode is what the enemy decision function is currently doing. It is
// separate from StateID: a chasing enemy is in the Move state, a winding-up
// enemy is in the Attack state.
type AIMode int

const (
	ModeIdle AIMode = iota
	ModePatrolling
	ModeChasing
	ModeAttackWindup
	ModeAttackResolving
)

func (m AIMode) String() string {
	switch m {
	case ModePatrolling:
		return "patrolling"
	case ModeChasing:
		return "chasing"
	case ModeAttackWindup:
		return "attack_windup"
	case ModeAttackResolving:
		return "attack_resolving"
	default:
		return "idle"
	}
}

// BehaviorKind selects how an enemy archetype moves and delivers damage.
type BehaviorKind int

const (
	BehaviorMelee BehaviorKind = iota
	BehaviorRanged
	BehaviorExplosion
	BehaviorMultiHit
	BehaviorSelfDestruct
	BehaviorTurret
	BehaviorSupport
	BehaviorBoss
)

var behaviorNames = map[BehaviorKind]string{
	BehaviorMelee:        "melee",
	BehaviorRanged:       "ranged",
	BehaviorExplosion:    "explosion",
	BehaviorMultiHit:     "multi_hit",
	BehaviorSelfDestruct: "self_destruct",
	BehaviorTurret:       "turret",
	BehaviorSupport:      "support",
	BehaviorBoss:         "boss",
}

func (b BehaviorKind) String() string {
	if name, ok := behaviorNames[b]; ok {
		return name
	}
	return "unknown"
}

// ParseBehavior maps a behavior name back to its kind.
func ParseBehavior(name string) (BehaviorKind, bool) {
	for kind, n := range behaviorNames {
		if n == name {
			return kind, true
		}
	}
	return BehaviorMelee, false
}

// Stationary reports whether enemies with this behavior never move.
func (b BehaviorKind) Stationary() bool {
	return b == BehaviorTurret || b == BehaviorSupport
}

// RoomType tags a room in the dungeon graph.
type RoomType int

const (
	RoomNormal RoomType = iota
	RoomBegin
	RoomBoss
	RoomEnd
	RoomReward
)

func (t RoomType) String() string {
	switch t {
	case RoomBegin:
		return "begin"
	case RoomBoss:
		return "boss"
	case RoomEnd:
		return "end"
	case RoomReward:
		return "reward"
	default:
		return "normal"
	}
}

// RewardKind distinguishes the two special room flavours.
type RewardKind int

const (
	RewardNone RewardKind = iota
	RewardWeapon
	RewardProp
)

// Direction indexes door arrays. Screen space: North is -Y.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all cardinal directions in index order.
var Directions = [4]Direction{North, East, South, West}

// Offset returns the grid step for the direction.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// Opposite returns the facing direction on the neighbouring room.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	return [...]string{"north", "east", "south", "west"}[d]
}

// TileKind is a cell of a room's tile grid.
type TileKind uint8

const (
	TileFloor TileKind = iota
	TileWall
	TileDoor
)
