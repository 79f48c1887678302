package components

import (
	"github.com/automoto/dungeonrush/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type EnemyData struct {
	TypeName   string                  // "Slime", "Goblin", "Warden" etc...
	TypeConfig *config.EnemyTypeConfig // Cached copy of the type configuration
	Behavior   config.BehaviorKind
	Mode       config.AIMode

	SightRange     float64
	AttackRange    float64
	AttackWindup   int // frames
	CooldownFrames int // attack cooldown applied on commit
	Recovery       int // frames left idling after an attack resolves or aborts
	AttackFrames   int // frames spent in the current attack, read by the watchdog

	Home         math.Vec2
	PatrolTarget math.Vec2
	PatrolTimer  int

	RedMarked          bool
	CountsForRoomClear bool
	Room               donburi.Entity // owning room, donburi.Null when free

	SmokeCooldown int // frames until the next on-hit cloud
	SupportTimer  int // frames until the next support cloud
}

var Enemy = donburi.NewComponentType[EnemyData]()
