package systems

import (
	"github.com/automoto/dungeonrush/components"
	"github.com/automoto/dungeonrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves bullets and resolves what they touch. A bullet
// ends on its first live target, on the room walls or when its lifetime
// runs out. Player bullets pass through stealthed enemies.
func UpdateProjectiles(ecs *ecs.ECS) {
	var bullets []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		bullets = append(bullets, e)
	})

	for _, e := range bullets {
		p := components.Projectile.Get(e)
		p.Lifetime--
		if p.Lifetime < 0 {
			destroy(ecs, e)
			continue
		}

		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		if hitProjectileTarget(ecs, e, p, physics.SpeedX, physics.SpeedY) {
			destroy(ecs, e)
			continue
		}
		moveBy(e, physics.SpeedX, physics.SpeedY)

		if room := roomOf(ecs.World, p.Room); room != nil && !room.Contains(obj.Center()) {
			destroy(ecs, e)
		}
	}
}

func hitProjectileTarget(ecs *ecs.ECS, e *donburi.Entry, p *components.ProjectileData, dx, dy float64) bool {
	want := tags.ResolvPlayer
	if p.FromPlayer {
		want = tags.ResolvEnemy
	}
	bullet := components.Object.Get(e)
	collision := bullet.Check(dx, dy, want)
	if collision == nil {
		return false
	}
	for _, obj := range collision.Objects {
		handle, ok := obj.Data.(donburi.Entity)
		if !ok || handle == p.Owner {
			continue
		}
		// Check is a broadphase over cells.
		if !overlaps(bullet.Object, obj, dx, dy) {
			continue
		}
		target := entryOf(ecs.World, handle)
		if !IsAlive(target) {
			continue
		}
		if p.FromPlayer && IsStealthed(target) {
			continue
		}
		QueueDamage(target, components.Hit{
			Amount:       p.Damage,
			Attacker:     p.Owner,
			PoisonAttack: p.PoisonAttack,
		})
		return true
	}
	return false
}
