package systems

import (
	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SetState is the only way a character changes state. Setting the current
// state again does nothing. Otherwise the exit hook of the old state runs,
// then the entry hook of the new one. Die is never left. It reports whether
// a transition happened.
func SetState(ecs *ecs.ECS, e *donburi.Entry, next cfg.StateID) bool {
	if e == nil || !e.Valid() || !e.HasComponent(components.State) {
		return false
	}
	state := components.State.Get(e)
	if state.CurrentState == next || state.CurrentState == cfg.Die {
		return false
	}

	exitState(ecs, e, state.CurrentState)
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTimer = 0
	enterState(ecs, e, next)
	return true
}

// CurrentState returns the state of e, or StateNone for stateless entities.
func CurrentState(e *donburi.Entry) cfg.StateID {
	if e == nil || !e.Valid() || !e.HasComponent(components.State) {
		return cfg.StateNone
	}
	return components.State.Get(e).CurrentState
}

func exitState(ecs *ecs.ECS, e *donburi.Entry, prev cfg.StateID) {
	switch prev {
	case cfg.Attack:
		if e.HasComponent(components.Enemy) {
			components.Enemy.Get(e).AttackFrames = 0
		}
	case cfg.Dash:
		if e.HasComponent(components.Physics) {
			physics := components.Physics.Get(e)
			physics.SpeedX, physics.SpeedY = 0, 0
		}
	}
}

func enterState(ecs *ecs.ECS, e *donburi.Entry, next cfg.StateID) {
	svc := ServicesOf(ecs.World)
	svc.PlayClip(e.Entity(), cfg.Clip(spriteKey(e), next), cfg.LoopingStates[next])

	switch next {
	case cfg.Hit, cfg.Attack, cfg.Skill, cfg.Die:
		if e.HasComponent(components.Physics) {
			physics := components.Physics.Get(e)
			physics.SpeedX, physics.SpeedY = 0, 0
		}
	}
	if next == cfg.Attack && e.HasComponent(components.Enemy) {
		svc.Audio.PlaySFX(cfg.SoundEnemyAttack)
	}
}

func spriteKey(e *donburi.Entry) string {
	if e.HasComponent(components.Enemy) {
		if tc := components.Enemy.Get(e).TypeConfig; tc != nil {
			return tc.SpriteKey
		}
	}
	return "player"
}
