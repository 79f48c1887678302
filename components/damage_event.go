package components

import "github.com/yohamta/donburi"

type Hit struct {
	Amount       int
	Attacker     donburi.Entity
	PoisonAttack int  // applies a poison stack with this source attack when > 0
	Skill        bool // player projectile or skill, ignored by stealthed targets
	Pure         bool // status damage: no stagger, no on-hit reactions
}

// DamageEventData queues hits until UpdateCombat applies them.
type DamageEventData struct {
	Hits []Hit
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
