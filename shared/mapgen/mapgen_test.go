package mapgen

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/automoto/dungeonrush/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProperties(t *testing.T) {
	for seed := int64(0); seed < 300; seed++ {
		level := int(seed%5) + 1
		m := Generate(level, rand.New(rand.NewSource(seed)))

		require.NotEmpty(t, m.Rooms, "seed %d", seed)
		assert.LessOrEqual(t, len(m.Rooms), config.Dungeon.MaxRooms, "seed %d", seed)

		begins := 0
		for _, r := range m.Rooms {
			if r.Type == config.RoomBegin {
				begins++
			}
		}
		assert.Equal(t, 1, begins, "seed %d", seed)

		reachable := m.Reachable(m.Begin)
		assert.Equal(t, len(m.Rooms), reachable.Size(), "seed %d: every room reachable from the start", seed)

		path, ok := m.CriticalPath()
		require.True(t, ok, "seed %d", seed)
		assert.Same(t, m.Begin, path[0])
		assert.Same(t, m.Exit, path[len(path)-1])
	}
}

func TestGenerateReachesMinimumRooms(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		m := Generate(1, rand.New(rand.NewSource(seed)))
		assert.GreaterOrEqual(t, len(m.Rooms), config.Dungeon.MinRooms, "seed %d", seed)
	}
}

func TestDoorsFollowGridAdjacency(t *testing.T) {
	m := Generate(2, rand.New(rand.NewSource(42)))
	for _, r := range m.Rooms {
		for _, d := range config.Directions {
			n := m.Neighbor(r, d)
			assert.Equal(t, n != nil, r.Doors[d], "room %d,%d %s", r.GridX, r.GridY, d)
			if n != nil {
				assert.True(t, n.Doors[d.Opposite()], "door is set on both sides")
			}
		}
	}
}

func TestRootNeverGrowsNorth(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		m := Generate(1, rand.New(rand.NewSource(seed)))
		north := m.Neighbor(m.Begin, config.North)
		if north == nil {
			continue
		}
		// The root's own children are created first, as rooms 1 and 2. A room
		// north of it can only come later, through a detour.
		assert.GreaterOrEqual(t, north.Order, 3, "seed %d", seed)
	}
}

func TestRoomCentresFollowSpacing(t *testing.T) {
	m := Generate(1, rand.New(rand.NewSource(3)))
	for _, r := range m.Rooms {
		assert.Equal(t, CellCenter(r.GridX, r.GridY), r.Center)
		assert.Equal(t, float64(r.GridX-m.Begin.GridX)*config.Dungeon.RoomSpacing, r.Center.X-m.Begin.Center.X)
	}
}

func TestExitTypeByLevel(t *testing.T) {
	for level := 1; level <= 6; level++ {
		m := Generate(level, rand.New(rand.NewSource(int64(level))))
		require.NotSame(t, m.Begin, m.Exit)
		want := config.RoomEnd
		if level%config.Dungeon.BossEvery == 0 {
			want = config.RoomBoss
		}
		assert.Equal(t, want, m.Exit.Type, "level %d", level)
		assert.Same(t, m.Rooms[len(m.Rooms)-1], m.Exit, "exit is the last room created")
	}
}

func TestRewardRoomsAvoidStart(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		m := Generate(1, rand.New(rand.NewSource(seed)))
		rewards := 0
		for _, r := range m.Rooms {
			if r.Type != config.RoomReward {
				assert.Equal(t, config.RewardNone, r.Reward)
				continue
			}
			rewards++
			assert.False(t, adjacent(r, m.Begin), "seed %d", seed)
			assert.NotEqual(t, config.RewardNone, r.Reward)
		}
		assert.LessOrEqual(t, rewards, config.Dungeon.SpecialRooms)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(2, rand.New(rand.NewSource(99)))
	b := Generate(2, rand.New(rand.NewSource(99)))
	assert.Equal(t, a.String(), b.String())
}

func TestBossFloor(t *testing.T) {
	m := GenerateBossFloor(6, true)
	require.Len(t, m.Rooms, 3)
	assert.True(t, m.BossFloor)

	path, ok := m.CriticalPath()
	require.True(t, ok)
	require.Len(t, path, 3)
	assert.Equal(t, config.RoomBegin, path[0].Type)
	assert.Equal(t, config.RoomBoss, path[1].Type)
	assert.True(t, path[1].Oversized)
	assert.Same(t, m.Arena, path[2])
	assert.Same(t, m.Exit, m.Arena)

	w, h := path[1].TileSize()
	assert.Equal(t, config.Room.BossTilesWidth, w)
	assert.Equal(t, config.Room.BossTilesHeight, h)

	noArena := GenerateBossFloor(6, false)
	assert.Len(t, noArena.Rooms, 2)
	assert.Nil(t, noArena.Arena)
	assert.Equal(t, config.RoomBoss, noArena.Exit.Type)
}

func TestNewUsesBossFloorOnConfiguredLevels(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.True(t, New(6, rng).BossFloor)
	assert.False(t, New(1, rng).BossFloor)
}

func TestTilesOpenDoors(t *testing.T) {
	m := GenerateBossFloor(6, false)
	tiles := m.Begin.Tiles()
	w, h := m.Begin.TileSize()
	require.Len(t, tiles, h)

	assert.Equal(t, config.TileDoor, tiles[0][w/2], "begin connects north to the boss room")
	assert.Equal(t, config.TileWall, tiles[h-1][w/2])
	assert.Equal(t, config.TileWall, tiles[h/2][0])
	assert.Equal(t, config.TileFloor, tiles[h/2][w/2])

	doors := 0
	for _, tile := range tiles[0] {
		if tile == config.TileDoor {
			doors++
		}
	}
	assert.Equal(t, config.Room.DoorWidthTiles, doors)
}

func TestString(t *testing.T) {
	out := GenerateBossFloor(6, true).String()
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "B")
	assert.Contains(t, out, "S")
	assert.Equal(t, 2, strings.Count(out, "|"))
}
