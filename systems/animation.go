package systems

import (
	"github.com/automoto/dungeonrush/components"
	"github.com/automoto/dungeonrush/engine"
	"github.com/automoto/dungeonrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances player timelines and retires finished world
// effects.
func UpdateAnimations(ecs *ecs.ECS) {
	if adv, ok := ServicesOf(ecs.World).Animation.(engine.Advancer); ok {
		adv.Advance(ecs.World.Valid)
	}

	var done []*donburi.Entry
	tags.Effect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		fx.Timer--
		if fx.Timer <= 0 {
			done = append(done, e)
		}
	})
	for _, e := range done {
		destroy(ecs, e)
	}
}
