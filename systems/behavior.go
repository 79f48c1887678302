package systems

import (
	"math"

	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/automoto/dungeonrush/shared/gamemath"
	"github.com/automoto/dungeonrush/systems/factory"
	"github.com/automoto/dungeonrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// resolveBehavior delivers the damage of a landed attack. It returns how
// many more frames the attack keeps the enemy busy.
func resolveBehavior(ecs *ecs.ECS, self, target *donburi.Entry) int {
	enemy := components.Enemy.Get(self)
	switch enemy.Behavior {
	case cfg.BehaviorRanged, cfg.BehaviorTurret:
		fireBullet(ecs, self, target)
	case cfg.BehaviorExplosion:
		explode(ecs, self, enemy.TypeConfig.ExplosionRadius)
	case cfg.BehaviorSelfDestruct:
		explode(ecs, self, enemy.TypeConfig.ExplosionRadius)
		Kill(ecs, self)
	case cfg.BehaviorMultiHit:
		return multiHit(ecs, self, target)
	case cfg.BehaviorSupport:
	default:
		strike(ecs, self, target)
	}
	return 0
}

func enemyHit(self *donburi.Entry, amount int) components.Hit {
	hit := components.Hit{Amount: amount, Attacker: self.Entity()}
	if tc := components.Enemy.Get(self).TypeConfig; tc != nil && tc.PoisonOnHit {
		hit.PoisonAttack = amount
	}
	return hit
}

func strike(ecs *ecs.ECS, self, target *donburi.Entry) {
	QueueDamage(target, enemyHit(self, components.Character.Get(self).Attack))
	spawnEffect(ecs, Position(target), cfg.ClipHitSpark)
}

func fireBullet(ecs *ecs.ECS, self, target *donburi.Entry) {
	enemy := components.Enemy.Get(self)
	char := components.Character.Get(self)
	tc := enemy.TypeConfig

	from := Position(self)
	dir := gamemath.Direction(from, Position(target))
	if dir.X == 0 && dir.Y == 0 {
		dir = char.Facing
	}
	speed := tc.BulletSpeed
	if speed <= 0 {
		speed = cfg.Player.ProjectileSpeed
	}
	hit := enemyHit(self, char.Attack)
	factory.CreateProjectile(ecs, factory.ProjectileSpec{
		Owner:        self.Entity(),
		Position:     from,
		Velocity:     gamemath.Scale(dir, speed),
		Damage:       hit.Amount,
		PoisonAttack: hit.PoisonAttack,
		Lifetime:     int(math.Ceil(enemy.SightRange/speed)) + 1,
		Room:         enemy.Room,
	})
	ServicesOf(ecs.World).Audio.PlaySFX(cfg.SoundShoot)
}

// explode damages the player inside radius around self.
func explode(ecs *ecs.ECS, self *donburi.Entry, radius float64) {
	pos := Position(self)
	amount := components.Character.Get(self).Attack
	for _, e := range QueryNearby(ecs.World, pos, radius, tags.ResolvPlayer) {
		QueueDamage(e, enemyHit(self, amount))
	}
	spawnEffect(ecs, pos, cfg.ClipExplosion)
	ServicesOf(ecs.World).Audio.PlaySFX(cfg.SoundExplosion)
}

// multiHit lands the first hit now and schedules the rest. Each later hit
// checks range again, so stepping away part way avoids the remainder.
func multiHit(ecs *ecs.ECS, self, target *donburi.Entry) int {
	tc := components.Enemy.Get(self).TypeConfig
	count := max(1, tc.HitCount)
	interval := max(1, cfg.Frames(tc.HitInterval))
	amount := max(1, components.Character.Get(self).Attack/count)
	targetHandle := target.Entity()

	QueueDamage(target, enemyHit(self, amount))
	spawnEffect(ecs, Position(target), cfg.ClipHitSpark)
	for i := 1; i < count; i++ {
		Schedule(ecs, self, i*interval, GroupAttack, followUpHit(targetHandle, amount))
	}
	return (count-1)*interval + 1
}

// followUpHit is one later strike of a multi-hit sequence. It misses when the
// target died or left attack range.
func followUpHit(targetHandle donburi.Entity, amount int) components.TaskFunc {
	return func(w *ecs.ECS, self *donburi.Entry) {
		target := entryOf(w.World, targetHandle)
		if target == nil || !IsAlive(target) {
			return
		}
		if gamemath.Distance(Position(self), Position(target)) > components.Enemy.Get(self).AttackRange {
			return
		}
		QueueDamage(target, enemyHit(self, amount))
		spawnEffect(w, Position(target), cfg.ClipHitSpark)
	}
}

// Nova damages every enemy within radius of pos. Stealthed enemies are not
// affected. It returns the number of enemies hit.
func Nova(ecs *ecs.ECS, caster *donburi.Entry, pos dmath.Vec2, radius float64, amount int) int {
	n := 0
	for _, e := range QueryNearby(ecs.World, pos, radius, tags.ResolvEnemy) {
		if !IsAlive(e) || IsStealthed(e) {
			continue
		}
		QueueDamage(e, components.Hit{Amount: amount, Attacker: caster.Entity(), Skill: true})
		n++
	}
	spawnEffect(ecs, pos, cfg.ClipExplosion)
	return n
}
