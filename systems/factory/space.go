package factory

import (
	"log/slog"

	"github.com/automoto/dungeonrush/archetypes"
	"github.com/automoto/dungeonrush/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

// addToSpace registers obj in the level space, if the world has one.
func addToSpace(w donburi.World, obj *resolv.Object) {
	entry, ok := components.Space.First(w)
	if !ok {
		return
	}
	components.Space.Get(entry).Add(obj)
}

func logger(w donburi.World) *slog.Logger {
	if entry, ok := components.Services.First(w); ok {
		return components.Services.Get(entry).Logger
	}
	return slog.Default()
}
