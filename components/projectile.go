package components

import "github.com/yohamta/donburi"

type ProjectileData struct {
	Owner        donburi.Entity
	FromPlayer   bool
	Damage       int
	PoisonAttack int
	Lifetime     int // frames
	Room         donburi.Entity
}

var Projectile = donburi.NewComponentType[ProjectileData]()
