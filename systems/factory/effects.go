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

// CreateSmoke spawns a cloud that stealths enemies of room within radius.
func CreateSmoke(ecs *ecs.ECS, pos dmath.Vec2, radius float64, room donburi.Entity) *donburi.Entry {
	smoke := archetypes.Smoke.Spawn(ecs)

	obj := resolv.NewObject(pos.X-radius, pos.Y-radius, radius*2, radius*2, tags.ResolvSmoke)
	obj.Data = smoke.Entity()
	components.Object.SetValue(smoke, components.ObjectData{Object: obj})
	addToSpace(ecs.World, obj)

	components.Smoke.SetValue(smoke, components.SmokeData{
		Timer:  cfg.Frames(cfg.Status.SmokeDuration),
		Radius: radius,
		Room:   room,
	})
	return smoke
}

// CreateEffect spawns a world-anchored visual that lasts as long as its clip.
// It has no collision object in the space.
func CreateEffect(ecs *ecs.ECS, pos dmath.Vec2, clip string) *donburi.Entry {
	fx := archetypes.Effect.Spawn(ecs)

	obj := resolv.NewObject(pos.X, pos.Y, 0, 0)
	components.Object.SetValue(fx, components.ObjectData{Object: obj})

	lib := cfg.ClipLibrary()
	frames, ok := lib[clip]
	if !ok {
		frames = lib[cfg.FallbackClip]
	}
	components.Effect.SetValue(fx, components.EffectData{Clip: clip, Timer: frames})
	return fx
}
