// Package mapgen builds the room graph of a dungeon level. It is pure data:
// the systems/factory package turns a Map into entities.
package mapgen

import (
	"math/rand"

	"github.com/automoto/dungeonrush/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// Room is one materialised grid cell.
type Room struct {
	GridX, GridY int
	Center       dmath.Vec2
	Type         config.RoomType
	Reward       config.RewardKind
	Doors        [4]bool
	Oversized    bool // boss rooms on boss floors
	Arena        bool
	Order        int // creation order, 0 is the root

	m *Map
}

// Map is the generated level layout.
type Map struct {
	Level     int
	Size      int
	Rooms     []*Room // creation order
	Begin     *Room
	Exit      *Room
	Arena     *Room
	BossFloor bool

	grid [][]*Room // [y][x]
}

func newMap(level, size int) *Map {
	grid := make([][]*Room, size)
	for y := range grid {
		grid[y] = make([]*Room, size)
	}
	return &Map{Level: level, Size: size, grid: grid}
}

// At returns the room at a grid cell, or nil.
func (m *Map) At(x, y int) *Room {
	if x < 0 || y < 0 || x >= m.Size || y >= m.Size {
		return nil
	}
	return m.grid[y][x]
}

// Neighbor returns the room next to r in direction d, or nil.
func (m *Map) Neighbor(r *Room, d config.Direction) *Room {
	dx, dy := d.Offset()
	return m.At(r.GridX+dx, r.GridY+dy)
}

func (m *Map) add(x, y int, center dmath.Vec2) *Room {
	r := &Room{GridX: x, GridY: y, Center: center, Order: len(m.Rooms), m: m}
	m.grid[y][x] = r
	m.Rooms = append(m.Rooms, r)
	return r
}

// connect sets doors between every pair of grid-adjacent rooms.
func (m *Map) connect() {
	for _, r := range m.Rooms {
		for _, d := range config.Directions {
			r.Doors[d] = m.Neighbor(r, d) != nil
		}
	}
}

// CellCenter is the world position of a grid cell's centre. The grid's
// top-left corner is the world origin.
func CellCenter(x, y int) dmath.Vec2 {
	s := config.Dungeon.RoomSpacing
	return dmath.Vec2{X: (float64(x) + 0.5) * s, Y: (float64(y) + 0.5) * s}
}

// WorldSize is the side length of the square world holding the grid.
func WorldSize() float64 {
	return float64(config.Dungeon.GridSize) * config.Dungeon.RoomSpacing
}

// New returns the layout for level: the fixed boss floor on configured
// levels, a generated grid otherwise.
func New(level int, rng *rand.Rand) *Map {
	if config.Dungeon.IsBossFloor(level) {
		return GenerateBossFloor(level, config.Dungeon.BossFloorArena)
	}
	return Generate(level, rng)
}

// Generate grows rooms breadth-first from the centre of the grid. Layouts
// with fewer than MinRooms rooms are thrown away and regrown with the same
// rng, up to MaxAttempts times; the last attempt is kept regardless.
func Generate(level int, rng *rand.Rand) *Map {
	var m *Map
	for attempt := 0; attempt < max(1, config.Dungeon.MaxAttempts); attempt++ {
		m = grow(level, rng)
		if len(m.Rooms) >= config.Dungeon.MinRooms {
			break
		}
	}
	assignTypes(m, rng)
	m.connect()
	return m
}

func grow(level int, rng *rand.Rand) *Map {
	d := config.Dungeon
	m := newMap(level, d.GridSize)
	budget := d.MinRooms
	if d.MaxRooms > d.MinRooms {
		budget += rng.Intn(d.MaxRooms - d.MinRooms + 1)
	}

	root := m.add(d.GridSize/2, d.GridSize/2, CellCenter(d.GridSize/2, d.GridSize/2))
	queue := []*Room{root}
	for len(queue) > 0 && len(m.Rooms) < budget {
		cur := queue[0]
		queue = queue[1:]

		var free []config.Direction
		for _, dir := range config.Directions {
			// The entrance room never grows north.
			if cur == root && dir == config.North {
				continue
			}
			dx, dy := dir.Offset()
			x, y := cur.GridX+dx, cur.GridY+dy
			if x < 0 || y < 0 || x >= m.Size || y >= m.Size || m.grid[y][x] != nil {
				continue
			}
			free = append(free, dir)
		}
		if len(free) == 0 {
			continue
		}

		rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
		n := min(1+rng.Intn(2), len(free))
		for _, dir := range free[:n] {
			if len(m.Rooms) >= budget {
				break
			}
			dx, dy := dir.Offset()
			center := dmath.Vec2{
				X: cur.Center.X + float64(dx)*d.RoomSpacing,
				Y: cur.Center.Y + float64(dy)*d.RoomSpacing,
			}
			queue = append(queue, m.add(cur.GridX+dx, cur.GridY+dy, center))
		}
	}
	return m
}

func assignTypes(m *Map, rng *rand.Rand) {
	m.Begin = m.Rooms[0]
	m.Begin.Type = config.RoomBegin

	m.Exit = m.Begin
	if len(m.Rooms) > 1 {
		m.Exit = m.Rooms[len(m.Rooms)-1]
		m.Exit.Type = config.RoomEnd
		if every := config.Dungeon.BossEvery; every > 0 && m.Level%every == 0 {
			m.Exit.Type = config.RoomBoss
		}
	}

	var candidates []*Room
	for _, r := range m.Rooms {
		if r.Type != config.RoomNormal || adjacent(r, m.Begin) {
			continue
		}
		candidates = append(candidates, r)
	}
	kinds := []config.RewardKind{config.RewardWeapon, config.RewardProp}
	for i, idx := range rng.Perm(len(candidates)) {
		if i >= config.Dungeon.SpecialRooms {
			break
		}
		r := candidates[idx]
		r.Type = config.RoomReward
		r.Reward = kinds[i%len(kinds)]
	}
}

func adjacent(a, b *Room) bool {
	dx, dy := a.GridX-b.GridX, a.GridY-b.GridY
	return dx*dx+dy*dy == 1
}

// GenerateBossFloor returns the fixed boss layout: an entrance south of an
// oversized boss room, and optionally an arena north of it that the boss
// retreats to in its last phase.
func GenerateBossFloor(level int, arena bool) *Map {
	d := config.Dungeon
	m := newMap(level, d.GridSize)
	m.BossFloor = true
	cx := d.GridSize / 2

	m.Begin = m.add(cx, cx+1, CellCenter(cx, cx+1))
	m.Begin.Type = config.RoomBegin

	boss := m.add(cx, cx, CellCenter(cx, cx))
	boss.Type = config.RoomBoss
	boss.Oversized = true
	m.Exit = boss

	if arena {
		m.Arena = m.add(cx, cx-1, CellCenter(cx, cx-1))
		m.Arena.Type = config.RoomEnd
		m.Arena.Arena = true
		m.Exit = m.Arena
	}
	m.connect()
	return m
}
