package systems

import (
	"testing"

	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func setIntent(p *donburi.Entry, in components.IntentData) {
	components.Player.Get(p).Intent = in
}

func TestPlayerMovesWithinTheRoom(t *testing.T) {
	f := newFixture(t, nil)
	p := f.player(roomCenter)

	setIntent(p, components.IntentData{MoveX: 1})
	f.tick()

	assert.Equal(t, cfg.Move, CurrentState(p))
	assert.InDelta(t, roomCenter.X+cfg.Player.MoveSpeed, Position(p).X, 1e-9)

	hw, _ := f.roomData().HalfExtents()
	for range 200 {
		setIntent(p, components.IntentData{MoveX: 1, MoveY: 0.5})
		f.tick()
	}
	pos := Position(p)
	assert.LessOrEqual(t, pos.X, roomCenter.X+hw-cfg.Room.TileSize-cfg.Player.CollisionSize/2+1e-9, "closed doors hold the player in")

	setIntent(p, components.IntentData{})
	f.tick()
	assert.Equal(t, cfg.Idle, CurrentState(p), "no intent, no movement")
}

func TestPlayerShotKillsAnEnemy(t *testing.T) {
	f := newFixture(t, nil)
	p := f.player(roomCenter)
	decoy := f.enemy("Decoy", offset(roomCenter, 120, 0))
	components.Character.Get(decoy).MoveSpeed = 0

	for range 4 {
		setIntent(p, components.IntentData{AimX: 1, Attack: true})
		f.ticks(cfg.Frames(cfg.Player.AttackCooldown))
	}

	assert.False(t, IsAlive(decoy), "four one-damage hits")
}

func TestPlayerShotsPassStealthedEnemies(t *testing.T) {
	f := newFixture(t, nil)
	p := f.player(roomCenter)
	turret := f.enemy("Turret", offset(roomCenter, 120, 0))
	start := hp(turret)
	AddStealthSource(turret, f.ecs.World.Create(components.Smoke))

	setIntent(p, components.IntentData{AimX: 1, Attack: true})
	f.ticks(40)

	assert.Equal(t, start, hp(turret))
}

func TestNovaCostsMP(t *testing.T) {
	f := newFixture(t, nil)
	p := f.player(roomCenter)
	goblin := f.enemy("Goblin", offset(roomCenter, 100, 0))
	player := components.Player.Get(p)
	start := hp(goblin)

	setIntent(p, components.IntentData{Nova: true})
	f.tick()

	assert.Equal(t, cfg.Skill, CurrentState(p))
	assert.Less(t, hp(goblin), start)
	assert.Less(t, player.MP, float64(cfg.Player.MP))
}

func TestNovaWithoutMPIsANoop(t *testing.T) {
	f := newFixture(t, nil)
	p := f.player(roomCenter)
	goblin := f.enemy("Goblin", offset(roomCenter, 100, 0))
	components.Player.Get(p).MP = float64(cfg.Player.NovaCost) - 1
	start := hp(goblin)

	setIntent(p, components.IntentData{Nova: true})
	f.tick()

	assert.NotEqual(t, cfg.Skill, CurrentState(p))
	assert.Equal(t, start, hp(goblin))
}

func TestDashGrantsInvulnerability(t *testing.T) {
	f := newFixture(t, nil)
	p := f.player(roomCenter)

	setIntent(p, components.IntentData{MoveX: -1, Dash: true})
	f.tick()

	require.Equal(t, cfg.Dash, CurrentState(p))
	assert.Less(t, Position(p).X, roomCenter.X-cfg.Player.MoveSpeed)
	assert.Zero(t, TakeDamage(f.ecs, p, components.Hit{Amount: 10}))

	f.ticks(cfg.Frames(cfg.Player.DashDuration))
	assert.NotEqual(t, cfg.Dash, CurrentState(p))
	assert.Positive(t, components.Player.Get(p).DashCooldown)
}
