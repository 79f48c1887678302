package systems

import (
	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/automoto/dungeonrush/shared/gamemath"
	"github.com/automoto/dungeonrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateEnemies runs the decision function of every enemy once. Enemies only
// see the player while both are in the same room.
func UpdateEnemies(ecs *ecs.ECS) {
	var target *donburi.Entry
	if player, ok := FindPlayer(ecs.World); ok && IsAlive(player) {
		target = player
	}
	playerRoom := donburi.Null
	if d := dungeonOf(ecs.World); d != nil {
		playerRoom = d.Current
	}

	var enemies []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})

	for _, e := range enemies {
		if !e.Valid() {
			continue
		}
		visible := target
		if room := components.Enemy.Get(e).Room; room != donburi.Null && room != playerRoom {
			visible = nil
		}
		updateEnemyAI(ecs, e, visible)
	}
}

func updateEnemyAI(ecs *ecs.ECS, e *donburi.Entry, target *donburi.Entry) {
	state := CurrentState(e)
	if state == cfg.Die {
		return
	}
	if state == cfg.StateNone {
		SetState(ecs, e, cfg.Idle)
	}

	enemy := components.Enemy.Get(e)
	char := components.Character.Get(e)
	physics := components.Physics.Get(e)
	physics.SpeedX, physics.SpeedY = 0, 0

	switch CurrentState(e) {
	case cfg.Hit:
		if char.HitstunTimer > 0 {
			return
		}
		SetState(ecs, e, cfg.Idle)
	case cfg.Skill:
		// Boss phase transitions own this state until UpdateBosses ends it.
		return
	case cfg.Attack:
		if enemy.AttackFrames > attackBudget(enemy) {
			ServicesOf(ecs.World).Logger.Warn("attack watchdog fired", "type", enemy.TypeName, "frames", enemy.AttackFrames)
			endAttack(ecs, e)
			return
		}
		if target != nil {
			faceToward(e, target)
		}
		return
	}

	if enemy.Recovery > 0 {
		enemy.Mode = cfg.ModeIdle
		SetState(ecs, e, cfg.Idle)
		return
	}

	if enemy.Behavior == cfg.BehaviorSupport {
		updateSupport(ecs, e, enemy, target)
		return
	}

	if target == nil {
		patrol(ecs, e, enemy, char)
		return
	}
	dist := gamemath.Distance(Position(e), Position(target))
	switch {
	case dist > enemy.SightRange:
		patrol(ecs, e, enemy, char)
	case dist > enemy.AttackRange:
		chase(ecs, e, enemy, char, target)
	default:
		faceToward(e, target)
		if char.AttackCooldown == 0 {
			commitAttack(ecs, e, target)
			return
		}
		enemy.Mode = cfg.ModeIdle
		SetState(ecs, e, cfg.Idle)
	}
}

func patrol(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData, char *components.CharacterData) {
	if stationary(enemy) {
		enemy.Mode = cfg.ModeIdle
		SetState(ecs, e, cfg.Idle)
		return
	}

	pos := Position(e)
	if enemy.PatrolTimer == 0 || gamemath.Distance(pos, enemy.PatrolTarget) <= cfg.Enemy.ArrivalDistance {
		rng := ServicesOf(ecs.World).Rand
		enemy.PatrolTarget = gamemath.RandomPointInRadius(enemy.Home, enemy.TypeConfig.PatrolRadius, rng.Float64)
		enemy.PatrolTimer = cfg.Frames(enemy.TypeConfig.PatrolInterval)
	}

	enemy.Mode = cfg.ModePatrolling
	moveEnemyToward(ecs, e, char, enemy.PatrolTarget)
}

func chase(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData, char *components.CharacterData, target *donburi.Entry) {
	faceToward(e, target)
	if stationary(enemy) {
		enemy.Mode = cfg.ModeIdle
		SetState(ecs, e, cfg.Idle)
		return
	}
	enemy.Mode = cfg.ModeChasing
	moveEnemyToward(ecs, e, char, Position(target))
}

func moveEnemyToward(ecs *ecs.ECS, e *donburi.Entry, char *components.CharacterData, dest dmath.Vec2) {
	pos := Position(e)
	vx, vy := gamemath.VelocityToward(pos, dest, char.MoveSpeed)
	if room := roomOf(ecs.World, components.Enemy.Get(e).Room); room != nil {
		vx, vy = ConfineVelocity(room, pos, vx, vy, halfSize(e))
	}
	if vx == 0 && vy == 0 {
		SetState(ecs, e, cfg.Idle)
		return
	}
	char.Facing = gamemath.Normalize(dmath.Vec2{X: vx, Y: vy})
	physics := components.Physics.Get(e)
	physics.SpeedX, physics.SpeedY = vx, vy
	moveBy(e, vx, vy)
	SetState(ecs, e, cfg.Move)
}

func faceToward(e, target *donburi.Entry) {
	if dir := gamemath.Direction(Position(e), Position(target)); dir.X != 0 || dir.Y != 0 {
		components.Character.Get(e).Facing = dir
	}
}

func stationary(enemy *components.EnemyData) bool {
	return enemy.TypeConfig.Behavior.Stationary() || enemy.TypeConfig.MoveSpeed == 0
}

// commitAttack enters Attack and schedules the windup. The windup task is
// the primary way out of Attack; the watchdog in updateEnemyAI is the
// second.
func commitAttack(ecs *ecs.ECS, e *donburi.Entry, target *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	char := components.Character.Get(e)

	SetState(ecs, e, cfg.Attack)
	char.AttackCooldown = enemy.CooldownFrames
	enemy.Mode = cfg.ModeAttackWindup
	enemy.AttackFrames = 0

	targetHandle := target.Entity()
	Schedule(ecs, e, enemy.AttackWindup, GroupAttack, windupTask(targetHandle))
}

func windupTask(targetHandle donburi.Entity) components.TaskFunc {
	return func(w *ecs.ECS, self *donburi.Entry) {
		resolveWindup(w, self, targetHandle)
	}
}

// resolveWindup lands the attack when the target is still alive and in
// range. Otherwise the attack was dodged and the enemy goes back to Idle.
func resolveWindup(ecs *ecs.ECS, self *donburi.Entry, targetHandle donburi.Entity) {
	if CurrentState(self) != cfg.Attack {
		return
	}
	enemy := components.Enemy.Get(self)
	target := entryOf(ecs.World, targetHandle)
	if target == nil || !IsAlive(target) || gamemath.Distance(Position(self), Position(target)) > enemy.AttackRange {
		enemy.Mode = cfg.ModeIdle
		endAttack(ecs, self)
		return
	}

	enemy.Mode = cfg.ModeAttackResolving
	extra := resolveBehavior(ecs, self, target)
	if extra <= 0 {
		endAttack(ecs, self)
		return
	}
	Schedule(ecs, self, extra, GroupAttack, endAttack)
}

// endAttack returns the enemy to Idle for its recovery window.
func endAttack(ecs *ecs.ECS, e *donburi.Entry) {
	CancelGroup(e, GroupAttack)
	if !IsAlive(e) {
		return
	}
	enemy := components.Enemy.Get(e)
	enemy.Mode = cfg.ModeIdle
	if enemy.TypeConfig != nil {
		enemy.Recovery = cfg.Frames(enemy.TypeConfig.Recovery)
	}
	SetState(ecs, e, cfg.Idle)
}

// attackBudget is how long an attack may last before the watchdog forces
// the enemy out of it.
func attackBudget(enemy *components.EnemyData) int {
	budget := enemy.AttackWindup + cfg.Frames(cfg.Enemy.AttackTimeout)
	if enemy.Behavior == cfg.BehaviorMultiHit && enemy.TypeConfig != nil {
		budget += max(0, enemy.TypeConfig.HitCount-1) * cfg.Frames(enemy.TypeConfig.HitInterval)
	}
	return budget
}

func updateSupport(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData, target *donburi.Entry) {
	enemy.Mode = cfg.ModeIdle
	SetState(ecs, e, cfg.Idle)
	if target == nil || enemy.SupportTimer > 0 {
		return
	}
	if gamemath.Distance(Position(e), Position(target)) > enemy.SightRange {
		return
	}
	enemy.SupportTimer = cfg.Frames(enemy.TypeConfig.SmokeInterval)
	spawnSmoke(ecs, Position(e), enemy.Room)
}
