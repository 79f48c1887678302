package systems

import (
	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/automoto/dungeonrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths runs death timers. A finished enemy leaves its room roster,
// the collision space and the world. A finished player ends the run.
func UpdateDeaths(ecs *ecs.ECS) {
	var done []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer--
		if death.Timer <= 0 {
			done = append(done, e)
		}
	})

	for _, e := range done {
		if e.HasComponent(tags.Player) {
			handlePlayerDeath(ecs, e)
			continue
		}
		if e.HasComponent(components.Enemy) {
			if room := roomOf(ecs.World, components.Enemy.Get(e).Room); room != nil {
				room.Enemies = removeHandle(room.Enemies, e.Entity())
			}
		}
		destroy(ecs, e)
	}
}

func handlePlayerDeath(ecs *ecs.ECS, e *donburi.Entry) {
	d := dungeonOf(ecs.World)
	if d == nil || d.GameOver {
		return
	}
	d.GameOver = true
	svc := ServicesOf(ecs.World)
	svc.Audio.PlayBGM(cfg.MusicGameOver, false)
	svc.Logger.Info("game over", "level", d.Level)
}

// destroy removes e and its collision object.
func destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
