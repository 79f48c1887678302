package systems

import (
	"github.com/automoto/dungeonrush/archetypes"
	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the simulation tick every other system reads.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = archetypes.Clock.Spawn(ecs)
	}
	components.Clock.Get(entry).Tick++
}

func countdown(v *int) {
	if *v > 0 {
		*v--
	}
}

// UpdateTimers decrements every frame counter before any decision reads
// them. Counters run in every state, Die included.
func UpdateTimers(ecs *ecs.ECS) {
	components.State.Each(ecs.World, func(e *donburi.Entry) {
		components.State.Get(e).StateTimer++
	})

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Character.Get(e)
		countdown(&c.AttackCooldown)
		countdown(&c.HitstunTimer)
	})

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		countdown(&enemy.Recovery)
		countdown(&enemy.PatrolTimer)
		countdown(&enemy.SmokeCooldown)
		countdown(&enemy.SupportTimer)
		if CurrentState(e) == cfg.Attack {
			enemy.AttackFrames++
		}
	})

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		countdown(&player.InvulnFrames)
		countdown(&player.DashTimer)
		countdown(&player.DashCooldown)
		if IsAlive(e) && player.MP < float64(player.MaxMP) {
			player.MP = min(float64(player.MaxMP), player.MP+cfg.Player.MPRegen/cfg.TPS)
		}
	})

	components.Boss.Each(ecs.World, func(e *donburi.Entry) {
		countdown(&components.Boss.Get(e).TransitionTimer)
	})

	var expired []*donburi.Entry
	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.HealthBar.Get(e)
		bar.TimeToLive--
		if bar.TimeToLive <= 0 {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		donburi.Remove[components.HealthBarData](e, components.HealthBar)
	}

	expired = expired[:0]
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		flash.Duration--
		if flash.Duration <= 0 {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		donburi.Remove[components.FlashData](e, components.Flash)
	}
}
