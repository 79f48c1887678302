package archetypes

import (
	"slices"

	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/automoto/dungeonrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Physics,
		components.State,
		components.Character,
		components.Shield,
		components.Poison,
		components.Tasks,
		components.Tint,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Physics,
		components.State,
		components.Character,
		components.Poison,
		components.Stealth,
		components.Tasks,
		components.Tint,
	)
	Room = newArchetype(
		tags.Room,
		components.Room,
	)
	Hallway = newArchetype(
		tags.Hallway,
		components.Hallway,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Physics,
	)
	Smoke = newArchetype(
		tags.Smoke,
		components.Smoke,
		components.Object,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Dungeon = newArchetype(
		components.Dungeon,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Services = newArchetype(
		components.Services,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		slices.Concat(a.components, cs)...,
	))
	return e
}
