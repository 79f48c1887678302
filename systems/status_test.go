package systems

import (
	"testing"

	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestPoisonTicksEveryHalfSecond(t *testing.T) {
	f := newFixture(t, nil)
	e := f.enemy("Knight", offset(roomCenter, 200, 0))
	components.Enemy.Get(e).Room = donburi.Null
	start := hp(e)

	ApplyPoison(f.ecs, e, 100)
	poison := components.Poison.Get(e)
	require.Equal(t, 1, poison.Stacks)

	UpdateStatus(f.ecs)
	UpdateCombat(f.ecs)
	assert.Equal(t, start, hp(e), "no damage before the first interval")

	for range 29 {
		UpdateStatus(f.ecs)
		UpdateCombat(f.ecs)
	}
	assert.Equal(t, start-10, hp(e), "round(100 * 0.1 * 1) after 30 frames, unreduced")

	for range 30 {
		UpdateStatus(f.ecs)
		UpdateCombat(f.ecs)
	}
	assert.Equal(t, start-20, hp(e))
}

func TestPoisonStacksAndExpires(t *testing.T) {
	f := newFixture(t, nil)
	e := f.enemy("Warden", offset(roomCenter, 200, 0))
	tint := components.Tint.Get(e)
	base := tint.Current

	for range 3 {
		ApplyPoison(f.ecs, e, 10)
	}
	poison := components.Poison.Get(e)
	assert.Equal(t, 3, poison.Stacks)
	assert.Equal(t, 3, PoisonTickDamage(poison))
	assert.Equal(t, cfg.Status.PoisonTint, tint.Current)

	for range cfg.Frames(cfg.Status.PoisonDuration) {
		UpdateStatus(f.ecs)
	}
	assert.Zero(t, poison.Stacks)
	assert.Equal(t, base, tint.Current, "expiry restores the tint")
}

func TestPoisonStackCap(t *testing.T) {
	f := newFixture(t, nil)
	e := f.enemy("Warden", roomCenter)

	for range cfg.Status.PoisonMaxStacks + 20 {
		ApplyPoison(f.ecs, e, 1)
	}
	assert.Equal(t, cfg.Status.PoisonMaxStacks, components.Poison.Get(e).Stacks)
}

func TestStealthSourceSet(t *testing.T) {
	f := newFixture(t, nil)
	e := f.enemy("Goblin", roomCenter)
	a := f.ecs.World.Create(components.Smoke)
	b := f.ecs.World.Create(components.Smoke)

	AddStealthSource(e, a)
	AddStealthSource(e, b)
	AddStealthSource(e, a)
	assert.Equal(t, 2, components.Stealth.Get(e).Sources.Size())

	RemoveStealthSource(e, a)
	assert.True(t, IsStealthed(e), "b still hides the enemy")
	RemoveStealthSource(e, a)
	assert.True(t, IsStealthed(e), "removing an absent source is ignored")
	RemoveStealthSource(e, b)
	assert.False(t, IsStealthed(e))
}

func TestStealthDropsRemovedSources(t *testing.T) {
	f := newFixture(t, nil)
	e := f.enemy("Goblin", roomCenter)
	src := f.ecs.World.Create(components.Smoke)
	AddStealthSource(e, src)

	f.ecs.World.Remove(src)
	UpdateStatus(f.ecs)

	assert.False(t, IsStealthed(e))
}

func TestSmokeHidesEnemiesInItsRoom(t *testing.T) {
	f := newFixture(t, nil)
	inside := f.enemy("Goblin", offset(roomCenter, 30, 0))
	far := f.enemy("Goblin", offset(roomCenter, 200, 100))

	spawnSmoke(f.ecs, roomCenter, f.room.Entity())
	UpdateStatus(f.ecs)

	assert.True(t, IsStealthed(inside))
	assert.False(t, IsStealthed(far))

	for range cfg.Frames(cfg.Status.SmokeDuration) {
		UpdateStatus(f.ecs)
	}
	assert.False(t, IsStealthed(inside), "the cloud is gone")
}

func TestStealthBlocksSkillDamage(t *testing.T) {
	f := newFixture(t, nil)
	player := f.player(offset(roomCenter, -100, 0))
	e := f.enemy("Goblin", offset(roomCenter, -60, 0))
	start := hp(e)
	AddStealthSource(e, f.ecs.World.Create(components.Smoke))

	assert.Zero(t, Nova(f.ecs, player, Position(player), 200, 50))
	assert.Zero(t, TakeDamage(f.ecs, e, components.Hit{Amount: 50, Skill: true}))
	assert.Equal(t, start, hp(e))
}
