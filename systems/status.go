package systems

import (
	"math"
	"slices"

	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/automoto/dungeonrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ApplyPoison adds one stack, capped, and restarts the shared expiry timer.
// The latest source attack drives the tick damage.
func ApplyPoison(ecs *ecs.ECS, e *donburi.Entry, sourceAttack int) {
	if !IsAlive(e) || sourceAttack <= 0 {
		return
	}
	if !e.HasComponent(components.Poison) {
		donburi.Add(e, components.Poison, &components.PoisonData{})
	}
	poison := components.Poison.Get(e)
	if poison.Stacks == 0 {
		poison.TickTimer = cfg.Frames(cfg.Status.PoisonTickInterval)
	}
	poison.Stacks = min(poison.Stacks+1, cfg.Status.PoisonMaxStacks)
	poison.Timer = cfg.Frames(cfg.Status.PoisonDuration)
	poison.SourceAttack = sourceAttack

	if e.HasComponent(components.Tint) {
		components.Tint.Get(e).Current = cfg.Status.PoisonTint
	}
	ServicesOf(ecs.World).Audio.PlaySFX(cfg.SoundPoison)
}

// PoisonTickDamage is the damage one tick deals at the current stacks.
func PoisonTickDamage(p *components.PoisonData) int {
	return int(math.Round(float64(p.SourceAttack) * cfg.Status.PoisonDamageFactor * float64(p.Stacks)))
}

// AddStealthSource registers src as hiding e. Adding a source twice keeps
// one entry.
func AddStealthSource(e *donburi.Entry, src donburi.Entity) {
	if !e.HasComponent(components.Stealth) {
		donburi.Add(e, components.Stealth, components.NewStealth())
	}
	components.Stealth.Get(e).Sources.Put(src)
}

// RemoveStealthSource unregisters src. Unknown sources are ignored.
func RemoveStealthSource(e *donburi.Entry, src donburi.Entity) {
	if !e.HasComponent(components.Stealth) {
		return
	}
	components.Stealth.Get(e).Sources.Remove(src)
}

// IsStealthed reports whether any source still hides e.
func IsStealthed(e *donburi.Entry) bool {
	if !e.HasComponent(components.Stealth) {
		return false
	}
	return components.Stealth.Get(e).Sources.Size() > 0
}

// UpdateStatus ticks poison, refreshes smoke clouds and drops stealth
// sources that no longer exist. Poison damage is queued so the death check
// in UpdateCombat sees it this frame.
func UpdateStatus(ecs *ecs.ECS) {
	var poisoned []*donburi.Entry
	components.Poison.Each(ecs.World, func(e *donburi.Entry) {
		if components.Poison.Get(e).Stacks > 0 && CurrentState(e) != cfg.Die {
			poisoned = append(poisoned, e)
		}
	})

	for _, e := range poisoned {
		poison := components.Poison.Get(e)

		poison.TickTimer--
		if poison.TickTimer <= 0 {
			poison.TickTimer = cfg.Frames(cfg.Status.PoisonTickInterval)
			if dmg := PoisonTickDamage(poison); dmg > 0 {
				QueueDamage(e, components.Hit{Amount: dmg, Pure: true})
			}
		}

		poison.Timer--
		if poison.Timer <= 0 {
			poison.Stacks = 0
			poison.TickTimer = 0
			if e.HasComponent(components.Tint) {
				tint := components.Tint.Get(e)
				tint.Current = tint.Base
			}
		}
	}

	updateSmoke(ecs)

	components.Stealth.Each(ecs.World, func(e *donburi.Entry) {
		sources := components.Stealth.Get(e).Sources
		var stale []donburi.Entity
		sources.Each(func(src donburi.Entity) {
			if !ecs.World.Valid(src) {
				stale = append(stale, src)
			}
		})
		for _, src := range stale {
			sources.Remove(src)
		}
	})
}

func updateSmoke(ecs *ecs.ECS) {
	var clouds []*donburi.Entry
	tags.Smoke.Each(ecs.World, func(e *donburi.Entry) {
		clouds = append(clouds, e)
	})

	for _, cloud := range clouds {
		smoke := components.Smoke.Get(cloud)
		src := cloud.Entity()

		smoke.Timer--
		if smoke.Timer <= 0 {
			for _, h := range smoke.Hidden {
				if e := entryOf(ecs.World, h); e != nil {
					RemoveStealthSource(e, src)
				}
			}
			destroy(ecs, cloud)
			continue
		}

		var inside []donburi.Entity
		for _, e := range QueryNearby(ecs.World, Position(cloud), smoke.Radius, tags.ResolvEnemy) {
			if !IsAlive(e) || components.Enemy.Get(e).Room != smoke.Room {
				continue
			}
			AddStealthSource(e, src)
			inside = append(inside, e.Entity())
		}
		for _, h := range smoke.Hidden {
			if slices.Contains(inside, h) {
				continue
			}
			if e := entryOf(ecs.World, h); e != nil {
				RemoveStealthSource(e, src)
			}
		}
		smoke.Hidden = inside
	}
}
