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

func CreatePlayer(ecs *ecs.ECS, pos dmath.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.CollisionSize
	obj := resolv.NewObject(pos.X-size/2, pos.Y-size/2, size, size, "character", tags.ResolvPlayer)
	obj.Data = player.Entity()
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs.World, obj)

	components.Player.SetValue(player, components.PlayerData{
		MP:    float64(cfg.Player.MP),
		MaxMP: cfg.Player.MP,
	})
	components.Character.SetValue(player, components.CharacterData{
		MoveSpeed: cfg.Player.MoveSpeed,
		Attack:    cfg.Player.Attack,
		Facing:    dmath.Vec2{X: 1},
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.StateNone,
		PreviousState: cfg.StateNone,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Shield.SetValue(player, components.ShieldData{
		Amount: cfg.Player.Shield,
		Max:    cfg.Player.Shield,
	})
	components.Tint.SetValue(player, components.TintData{Current: cfg.White, Base: cfg.White})

	return player
}
