package systems

import (
	"testing"

	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/automoto/dungeonrush/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeDamage(t *testing.T) {
	tests := []struct {
		name     string
		enemy    string
		hit      components.Hit
		wantLost int
	}{
		{"plain hit", "Goblin", components.Hit{Amount: 10}, 10},
		{"reduction rounds", "Knight", components.Hit{Amount: 10}, 6},
		{"pure damage skips reduction", "Knight", components.Hit{Amount: 10, Pure: true}, 10},
		{"one damage per hit", "Ghost", components.Hit{Amount: 50}, 1},
		{"overkill stops at zero", "MiniSlime", components.Hit{Amount: 999}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			e := f.enemy(tt.enemy, roomCenter)
			start := hp(e)

			lost := TakeDamage(f.ecs, e, tt.hit)

			assert.Equal(t, tt.wantLost, lost)
			assert.Equal(t, start-tt.wantLost, hp(e))
		})
	}
}

func TestShieldAbsorbsBeforeHealth(t *testing.T) {
	f := newFixture(t, nil)
	p := f.player(roomCenter)
	shield := components.Shield.Get(p)
	shield.Amount = 8

	lost := TakeDamage(f.ecs, p, components.Hit{Amount: 20})

	assert.Equal(t, 12, lost)
	assert.Zero(t, shield.Amount)
	assert.Equal(t, 88, hp(p))
}

func TestPlayerInvulnerabilityAfterAHit(t *testing.T) {
	f := newFixture(t, nil)
	p := f.player(roomCenter)

	require.Equal(t, 10, TakeDamage(f.ecs, p, components.Hit{Amount: 10}))
	assert.Zero(t, TakeDamage(f.ecs, p, components.Hit{Amount: 10}), "i-frames")
	assert.Equal(t, cfg.Hit, CurrentState(p))

	for range cfg.Frames(cfg.Player.InvulnDuration) {
		UpdateTimers(f.ecs)
	}
	assert.Equal(t, 10, TakeDamage(f.ecs, p, components.Hit{Amount: 10}))
}

func TestPoisonOnHit(t *testing.T) {
	f := newFixture(t, nil)
	p := f.player(roomCenter)

	TakeDamage(f.ecs, p, components.Hit{Amount: 6, PoisonAttack: 6})

	assert.Equal(t, 1, components.Poison.Get(p).Stacks)
}

func TestDeadTargetsTakeNoDamage(t *testing.T) {
	f := newFixture(t, nil)
	e := f.enemy("Goblin", roomCenter)
	Kill(f.ecs, e)

	assert.Zero(t, TakeDamage(f.ecs, e, components.Hit{Amount: 10}))
	assert.Equal(t, cfg.Die, CurrentState(e))
}

func TestQueuedDamageKillsThisFrame(t *testing.T) {
	f := newFixture(t, nil)
	e := f.enemy("MiniSlime", roomCenter)

	QueueDamage(e, components.Hit{Amount: 6})
	QueueDamage(e, components.Hit{Amount: 6})
	UpdateCombat(f.ecs)

	assert.Equal(t, cfg.Die, CurrentState(e))
	assert.True(t, e.HasComponent(components.Death))
	assert.False(t, e.HasComponent(components.DamageEvent))
}

func TestPlayerDeathEndsTheRun(t *testing.T) {
	svc := engine.NewServices(nil, 1)
	audio := svc.Audio.(*engine.QueueAudio)
	f := newFixture(t, svc)
	p := f.player(roomCenter)

	Kill(f.ecs, p)
	f.ticks(cfg.Frames(cfg.Combat.DeathDuration))

	assert.True(t, f.dungeonData().GameOver)
	assert.Equal(t, cfg.MusicGameOver, audio.Music())
	assert.True(t, f.ecs.World.Valid(p.Entity()), "the player stays for the game over screen")
}

func TestDyingEnemyIsFrozen(t *testing.T) {
	f := newFixture(t, nil)
	f.player(roomCenter)
	goblin := f.enemy("Goblin", offset(roomCenter, 150, 0))
	start := Position(goblin)

	f.ticks(5)
	require.NotEqual(t, start, Position(goblin), "the goblin closes in before dying")

	ApplyPoison(f.ecs, goblin, 10)
	Kill(f.ecs, goblin)
	pos, state := Position(goblin), CurrentState(goblin)
	require.Equal(t, cfg.Die, state)

	*components.Poison.Get(goblin) = components.PoisonData{Stacks: 3, Timer: 600, TickTimer: 1, SourceAttack: 10}
	QueueDamage(goblin, components.Hit{Amount: 10})
	QueueDamage(goblin, components.Hit{Amount: 10, Pure: true})

	f.ticks(cfg.Frames(cfg.Combat.DeathDuration) - 1)

	require.True(t, f.ecs.World.Valid(goblin.Entity()))
	assert.Equal(t, pos, Position(goblin))
	assert.Zero(t, hp(goblin))
	assert.Equal(t, cfg.Die, CurrentState(goblin))
	assert.Equal(t, 3, components.Poison.Get(goblin).Stacks, "poison does not tick on the dying")

	f.tick()
	assert.False(t, f.ecs.World.Valid(goblin.Entity()))
}

func TestPoisonTickKillsThisFrame(t *testing.T) {
	f := newFixture(t, nil)
	f.player(offset(roomCenter, -180, 0))
	e := f.enemy("Goblin", offset(roomCenter, 180, 0))
	components.Health.Get(e).Current = 5
	ApplyPoison(f.ecs, e, 10)
	poison := components.Poison.Get(e)
	poison.Stacks = cfg.Status.PoisonMaxStacks
	poison.TickTimer = 1
	require.GreaterOrEqual(t, PoisonTickDamage(poison), 5)

	f.tick()

	assert.Zero(t, hp(e))
	assert.Equal(t, cfg.Die, CurrentState(e))
	assert.True(t, e.HasComponent(components.Death))
}
