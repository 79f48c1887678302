package factory

import (
	"github.com/automoto/dungeonrush/archetypes"
	"github.com/automoto/dungeonrush/components"
	"github.com/automoto/dungeonrush/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const projectileSize = 8

// ProjectileSpec describes a bullet at launch. Velocity is in pixels per
// frame and Lifetime in frames.
type ProjectileSpec struct {
	Owner        donburi.Entity
	FromPlayer   bool
	Position     dmath.Vec2
	Velocity     dmath.Vec2
	Damage       int
	PoisonAttack int
	Lifetime     int
	Room         donburi.Entity
}

func CreateProjectile(ecs *ecs.ECS, spec ProjectileSpec) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	obj := resolv.NewObject(spec.Position.X-projectileSize/2, spec.Position.Y-projectileSize/2,
		projectileSize, projectileSize, tags.ResolvProjectile)
	obj.Data = p.Entity()
	components.Object.SetValue(p, components.ObjectData{Object: obj})
	addToSpace(ecs.World, obj)

	components.Physics.SetValue(p, components.PhysicsData{SpeedX: spec.Velocity.X, SpeedY: spec.Velocity.Y})
	components.Projectile.SetValue(p, components.ProjectileData{
		Owner:        spec.Owner,
		FromPlayer:   spec.FromPlayer,
		Damage:       spec.Damage,
		PoisonAttack: spec.PoisonAttack,
		Lifetime:     spec.Lifetime,
		Room:         spec.Room,
	})
	return p
}
