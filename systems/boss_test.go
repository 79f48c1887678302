package systems

import (
	"testing"

	"github.com/automoto/dungeonrush/archetypes"
	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func (f *fixture) arena() *donburi.Entry {
	arena := archetypes.Room.Spawn(f.ecs)
	components.Room.SetValue(arena, components.RoomData{
		Center:      offset(roomCenter, 0, 800),
		TilesWidth:  cfg.Room.TilesWidth,
		TilesHeight: cfg.Room.TilesHeight,
		Arena:       true,
		Cleared:     true,
	})
	f.dungeonData().Arena = arena.Entity()
	return arena
}

func TestBossStartsInFirstPhase(t *testing.T) {
	f := newFixture(t, nil)
	boss := f.enemy(cfg.Boss.TypeName, roomCenter)

	require.True(t, boss.HasComponent(components.Boss))
	assert.Equal(t, cfg.Boss.Phases[0].Behavior, components.Enemy.Get(boss).Behavior)
	assert.Zero(t, components.Boss.Get(boss).Phase)
}

func TestBossPhaseTransition(t *testing.T) {
	f := newFixture(t, nil)
	boss := f.enemy(cfg.Boss.TypeName, roomCenter)
	tc := cfg.Enemy.Types[cfg.Boss.TypeName]
	phase := cfg.Boss.Phases[1]

	components.Health.Get(boss).Current = int(float64(tc.Health) * 0.6)
	f.tick()

	data := components.Boss.Get(boss)
	enemy := components.Enemy.Get(boss)
	char := components.Character.Get(boss)
	assert.Equal(t, 1, data.Phase)
	assert.Equal(t, cfg.Skill, CurrentState(boss))
	assert.Equal(t, phase.Behavior, enemy.Behavior)
	assert.InDelta(t, tc.MoveSpeed*phase.SpeedMultiplier, char.MoveSpeed, 1e-9)
	assert.InDelta(t, phase.DamageReduction, char.DamageReduction, 1e-9)
	assert.Len(t, f.roomData().Enemies, 1+phase.SummonCount)

	assert.Zero(t, TakeDamage(f.ecs, boss, components.Hit{Amount: 50}), "invulnerable while transitioning")

	f.ticks(cfg.Frames(cfg.Boss.TransitionDuration))
	assert.NotEqual(t, cfg.Skill, CurrentState(boss))
	assert.Positive(t, TakeDamage(f.ecs, boss, components.Hit{Amount: 50}))
}

func TestBossSkipsToTheLowestReachedPhase(t *testing.T) {
	f := newFixture(t, nil)
	boss := f.enemy(cfg.Boss.TypeName, roomCenter)

	components.Health.Get(boss).Current = 1
	UpdateBosses(f.ecs)

	assert.Equal(t, len(cfg.Boss.Phases)-1, components.Boss.Get(boss).Phase)
}

func TestBossRelocatesToTheArena(t *testing.T) {
	f := newFixture(t, nil)
	arena := f.arena()
	boss := f.enemy(cfg.Boss.TypeName, roomCenter)
	last := cfg.Boss.Phases[len(cfg.Boss.Phases)-1]

	components.Health.Get(boss).Current = 1
	UpdateBosses(f.ecs)

	enemy := components.Enemy.Get(boss)
	arenaData := components.Room.Get(arena)
	assert.True(t, components.Boss.Get(boss).Relocated)
	assert.Equal(t, arena.Entity(), enemy.Room)
	assert.Contains(t, arenaData.Enemies, boss.Entity())
	assert.NotContains(t, f.roomData().Enemies, boss.Entity())
	assert.Equal(t, arenaData.Center, Position(boss))
	assert.Equal(t, last.AttackRange, enemy.AttackRange)
	assert.False(t, AllEnemiesKilled(f.ecs.World, arenaData))
}

func TestBossWithoutArenaStaysPut(t *testing.T) {
	f := newFixture(t, nil)
	boss := f.enemy(cfg.Boss.TypeName, roomCenter)

	components.Health.Get(boss).Current = 1
	UpdateBosses(f.ecs)

	assert.False(t, components.Boss.Get(boss).Relocated)
	assert.Equal(t, f.room.Entity(), components.Enemy.Get(boss).Room)
}
