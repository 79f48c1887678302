package systems

import (
	"testing"

	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/automoto/dungeonrush/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func connectedRoom() *components.RoomData {
	return &components.RoomData{
		Center:      roomCenter,
		TilesWidth:  cfg.Room.TilesWidth,
		TilesHeight: cfg.Room.TilesHeight,
		Doors:       [4]bool{true, true, true, true},
	}
}

func TestCheckBoundary(t *testing.T) {
	r := connectedRoom()
	hw, _ := r.HalfExtents()
	wallX := roomCenter.X + hw - cfg.Room.TileSize // interior east edge
	const margin = 10.0

	tests := []struct {
		name   string
		open   bool
		pos    dmath.Vec2
		vx, vy float64
		wantVX float64
		wantVY float64
	}{
		{"free movement", false, roomCenter, 3, -2, 3, -2},
		{"closed door stops at the wall", false, dmath.Vec2{X: wallX - margin - 1, Y: roomCenter.Y}, 5, 0, 1, 0},
		{"open door lets the body through", true, dmath.Vec2{X: wallX - margin - 1, Y: roomCenter.Y}, 5, 0, 5, 0},
		{"open door outside the window", true, dmath.Vec2{X: wallX - margin - 1, Y: roomCenter.Y + 100}, 5, 0, 1, 0},
		{"doorway confines the perpendicular axis", true, dmath.Vec2{X: wallX + 5, Y: roomCenter.Y}, 2, 100, 2, cfg.Room.DoorHalfWidth() - margin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.DoorOpen = [4]bool{}
			if tt.open {
				r.DoorOpen[cfg.East] = true
			}
			vx, vy := CheckBoundary(r, tt.pos, tt.vx, tt.vy, margin)
			assert.InDelta(t, tt.wantVX, vx, 1e-9)
			assert.InDelta(t, tt.wantVY, vy, 1e-9)
		})
	}
}

func TestCheckBoundaryNeverMovesOutward(t *testing.T) {
	r := connectedRoom()
	_, hh := r.HalfExtents()
	edge := roomCenter.Y - hh + cfg.Room.TileSize
	pos := dmath.Vec2{X: roomCenter.X + 150, Y: edge}

	_, vy := CheckBoundary(r, pos, 0, -4, 0)
	assert.Zero(t, vy, "standing on the wall with the door closed")
}

func TestConfineVelocityIgnoresDoors(t *testing.T) {
	r := connectedRoom()
	r.DoorOpen = r.Doors
	hw, _ := r.HalfExtents()
	pos := dmath.Vec2{X: roomCenter.X + hw - cfg.Room.TileSize - 12, Y: roomCenter.Y}

	vx, _ := ConfineVelocity(r, pos, 5, 0, 10)
	assert.InDelta(t, 2, vx, 1e-9)
}

func TestAllEnemiesKilled(t *testing.T) {
	f := newFixture(t, nil)
	r := f.roomData()
	assert.True(t, AllEnemiesKilled(f.ecs.World, r), "an empty roster is clear")

	e1 := f.enemy("Goblin", offset(roomCenter, 100, 0))
	e2 := f.enemy("Decoy", offset(roomCenter, -100, 0))
	require.False(t, components.Enemy.Get(e2).CountsForRoomClear)
	Kill(f.ecs, e2)

	assert.False(t, AllEnemiesKilled(f.ecs.World, r))
	Kill(f.ecs, e1)
	assert.True(t, AllEnemiesKilled(f.ecs.World, r), "dying enemies count as dead")

	f.ecs.World.Remove(e1.Entity())
	assert.True(t, AllEnemiesKilled(f.ecs.World, r), "removed handles count as dead")
}

func TestRoomGatesDoorsOnItsRoster(t *testing.T) {
	f := newFixture(t, nil)
	r := f.roomData()
	r.Doors = [4]bool{true, false, true, false}
	r.DoorOpen = r.Doors
	r.Cleared = false
	f.dungeonData().Current = donburi.Null

	e1 := f.enemy("Goblin", offset(roomCenter, 150, 100))
	e2 := f.enemy("Decoy", offset(roomCenter, -150, 100))
	Kill(f.ecs, e2)
	f.player(roomCenter)

	f.tick()
	assert.Equal(t, f.room.Entity(), f.dungeonData().Current)
	assert.True(t, r.Visited)
	assert.False(t, r.Cleared)
	assert.Equal(t, [4]bool{}, r.DoorOpen, "entering an uncleared room closes it")

	Kill(f.ecs, e1)
	f.tick()
	assert.True(t, r.Cleared)
	assert.Equal(t, r.Doors, r.DoorOpen)

	for range cfg.Frames(cfg.Room.DoorTweenDuration) + 1 {
		f.tick()
	}
	assert.InDelta(t, 1, r.DoorOpenness[cfg.North], 1e-3)
	assert.Nil(t, r.DoorTweens[cfg.North])
	assert.Zero(t, r.DoorOpenness[cfg.East], "no door, no tween")
}

func TestRewardRoomChimesOnFirstVisit(t *testing.T) {
	svc := engine.NewServices(nil, 1)
	audio := svc.Audio.(*engine.QueueAudio)
	f := newFixture(t, svc)
	r := f.roomData()
	r.Type = cfg.RoomReward
	f.dungeonData().Current = donburi.Null
	f.player(roomCenter)

	f.tick()
	require.True(t, r.Visited)
	assert.Equal(t, 1, audio.Played(cfg.SoundReward))

	// Walking back in later stays quiet.
	f.dungeonData().Current = donburi.Null
	f.ticks(2)
	assert.Equal(t, 1, audio.Played(cfg.SoundReward))
}

func TestPortalCompletesTheLevel(t *testing.T) {
	f := newFixture(t, nil)
	d := f.dungeonData()
	d.Exit = f.room.Entity()
	f.player(roomCenter)

	f.tick()

	assert.True(t, d.Complete)
}

func TestPortalWaitsForTheRoomToClear(t *testing.T) {
	f := newFixture(t, nil)
	d := f.dungeonData()
	d.Exit = f.room.Entity()
	f.roomData().Cleared = false
	f.enemy("Turret", offset(roomCenter, 200, 120))
	f.player(roomCenter)

	f.tick()

	assert.False(t, d.Complete)
}
