package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Boss       = donburi.NewTag().SetName("Boss")
	Room       = donburi.NewTag().SetName("Room")
	Hallway    = donburi.NewTag().SetName("Hallway")
	Projectile = donburi.NewTag().SetName("Projectile")
	Smoke      = donburi.NewTag().SetName("Smoke")
	Effect     = donburi.NewTag().SetName("Effect")
)

// Resolv tags for collision queries
const (
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvProjectile = "Projectile"
	ResolvSmoke      = "smoke"
	ResolvQuery      = "query"
)
