package systems

import (
	"testing"

	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/automoto/dungeonrush/engine"
	enginemock "github.com/automoto/dungeonrush/engine/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSetStateIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	anim := enginemock.NewMockAnimationPlayer(ctrl)
	svc := engine.NewServices(nil, 1)
	svc.Animation = anim
	f := newFixture(t, svc)
	e := f.enemy("Goblin", roomCenter)

	anim.EXPECT().Play(e.Entity(), "goblin_move", true).Return(nil).Times(1)

	assert.True(t, SetState(f.ecs, e, cfg.Move))
	state := components.State.Get(e)
	state.StateTimer = 12

	assert.False(t, SetState(f.ecs, e, cfg.Move), "same state is a no-op")
	assert.Equal(t, 12, state.StateTimer, "no-op keeps the timer")
	assert.Equal(t, cfg.StateNone, state.PreviousState)
}

func TestSetStateFallsBackOnMissingClip(t *testing.T) {
	ctrl := gomock.NewController(t)
	anim := enginemock.NewMockAnimationPlayer(ctrl)
	svc := engine.NewServices(nil, 1)
	svc.Animation = anim
	f := newFixture(t, svc)
	turret := f.enemy("Turret", roomCenter)

	gomock.InOrder(
		anim.EXPECT().Play(turret.Entity(), "turret_move", true).Return(engine.ErrClipNotFound),
		anim.EXPECT().Play(turret.Entity(), cfg.FallbackClip, true).Return(nil),
	)

	assert.True(t, SetState(f.ecs, turret, cfg.Move))
	assert.Equal(t, cfg.Move, CurrentState(turret), "a missing clip never blocks the transition")
}

func TestDieIsTerminal(t *testing.T) {
	f := newFixture(t, nil)
	e := f.enemy("Goblin", roomCenter)
	SetState(f.ecs, e, cfg.Idle)

	assert.True(t, SetState(f.ecs, e, cfg.Die))
	for _, s := range []cfg.StateID{cfg.Idle, cfg.Move, cfg.Attack, cfg.Skill, cfg.Hit, cfg.Dash} {
		assert.False(t, SetState(f.ecs, e, s), s.String())
		assert.Equal(t, cfg.Die, CurrentState(e))
	}
	assert.False(t, IsAlive(e))
}

func TestEnteringAttackStopsMovement(t *testing.T) {
	f := newFixture(t, nil)
	e := f.enemy("Goblin", roomCenter)
	physics := components.Physics.Get(e)
	physics.SpeedX, physics.SpeedY = 2, 3

	SetState(f.ecs, e, cfg.Attack)

	assert.Zero(t, physics.SpeedX)
	assert.Zero(t, physics.SpeedY)
}
