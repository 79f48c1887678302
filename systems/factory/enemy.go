package factory

import (
	"github.com/automoto/dungeonrush/archetypes"
	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/automoto/dungeonrush/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// fallbackEnemy replaces unknown type names.
const fallbackEnemy = "Slime"

// CreateEnemy spawns an enemy of the named archetype centred on pos and adds
// it to the roster of room. Unknown names fall back to a Slime. The enemy
// starts without a state; its first AI update enters Idle.
func CreateEnemy(ecs *ecs.ECS, name string, pos dmath.Vec2, room donburi.Entity, redMarked bool) *donburi.Entry {
	enemyType, exists := cfg.Enemy.Types[name]
	if !exists {
		logger(ecs.World).Warn("unknown enemy type, using fallback", "type", name, "fallback", fallbackEnemy)
		name = fallbackEnemy
		enemyType = cfg.Enemy.Types[name]
	}

	boss := enemyType.Behavior == cfg.BehaviorBoss
	var enemy *donburi.Entry
	if boss {
		enemy = archetypes.Enemy.Spawn(ecs, tags.Boss, components.Boss)
	} else {
		enemy = archetypes.Enemy.Spawn(ecs)
	}

	size := enemyType.CollisionSize
	obj := resolv.NewObject(pos.X-size/2, pos.Y-size/2, size, size, "character", tags.ResolvEnemy)
	obj.Data = enemy.Entity()
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs.World, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:           name,
		TypeConfig:         &enemyType,
		Behavior:           enemyType.Behavior,
		SightRange:         enemyType.SightRange,
		AttackRange:        enemyType.AttackRange,
		AttackWindup:       cfg.Frames(enemyType.AttackWindup),
		CooldownFrames:     cfg.Frames(enemyType.AttackCooldown),
		Home:               pos,
		PatrolTarget:       pos,
		RedMarked:          redMarked,
		CountsForRoomClear: enemyType.CountsForRoomClear,
		Room:               room,
		SupportTimer:       cfg.Frames(enemyType.SmokeInterval),
	})
	components.Character.SetValue(enemy, components.CharacterData{
		MoveSpeed:       enemyType.MoveSpeed,
		Attack:          enemyType.Attack,
		Facing:          dmath.Vec2{X: -1},
		DamageReduction: enemyType.DamageReduction,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.StateNone,
		PreviousState: cfg.StateNone,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.Stealth.SetValue(enemy, *components.NewStealth())

	tint := enemyType.TintColor
	if redMarked {
		tint = cfg.RedMark
	}
	components.Tint.SetValue(enemy, components.TintData{Current: tint, Base: tint})

	if boss {
		components.Boss.SetValue(enemy, components.BossData{
			BaseSpeed:       enemyType.MoveSpeed,
			BaseCooldown:    enemyType.AttackCooldown,
			BaseReduction:   enemyType.DamageReduction,
			BaseAttackRange: enemyType.AttackRange,
		})
		if len(cfg.Boss.Phases) > 0 {
			components.Enemy.Get(enemy).Behavior = cfg.Boss.Phases[0].Behavior
		}
	}

	if ecs.World.Valid(room) {
		if r := ecs.World.Entry(room); r.HasComponent(components.Room) {
			roster := components.Room.Get(r)
			roster.Enemies = append(roster.Enemies, enemy.Entity())
		}
	}
	return enemy
}
