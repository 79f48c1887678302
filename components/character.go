package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CharacterData holds the combat attributes shared by the player and enemies.
type CharacterData struct {
	MoveSpeed       float64
	Attack          int
	Facing          math.Vec2
	AttackCooldown  int     // frames until the next attack is allowed
	HitstunTimer    int     // frames left in Hit before control returns
	DamageReduction float64 // 0..1 removed from incoming damage
}

var Character = donburi.NewComponentType[CharacterData]()
