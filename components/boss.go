package components

import "github.com/yohamta/donburi"

type BossData struct {
	Phase           int
	TransitionTimer int // frames of invulnerable Skill state left
	Relocated       bool

	BaseSpeed       float64
	BaseCooldown    float64
	BaseReduction   float64
	BaseAttackRange float64
}

var Boss = donburi.NewComponentType[BossData]()
