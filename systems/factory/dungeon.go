package factory

import (
	"math/rand"

	"github.com/automoto/dungeonrush/archetypes"
	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/automoto/dungeonrush/shared/mapgen"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const spaceCellSize = 32

// CreateRoom materialises one generated room. Doors start open; rooms
// holding enemies close them when the player walks in.
func CreateRoom(ecs *ecs.ECS, r *mapgen.Room) *donburi.Entry {
	room := archetypes.Room.Spawn(ecs)
	w, h := r.TileSize()

	data := components.RoomData{
		GridX:       r.GridX,
		GridY:       r.GridY,
		Center:      r.Center,
		TilesWidth:  w,
		TilesHeight: h,
		Tiles:       r.Tiles(),
		Doors:       r.Doors,
		DoorOpen:    r.Doors,
		Type:        r.Type,
		Reward:      r.Reward,
		Arena:       r.Arena,
		Cleared:     true,
	}
	for _, d := range cfg.Directions {
		if r.Doors[d] {
			data.DoorOpenness[d] = 1
		}
	}
	components.Room.SetValue(room, data)
	return room
}

// CreateHallway joins two grid-adjacent rooms. from is the west or north
// room of the pair.
func CreateHallway(ecs *ecs.ECS, from, to *donburi.Entry) *donburi.Entry {
	hall := archetypes.Hallway.Spawn(ecs)
	a, b := components.Room.Get(from), components.Room.Get(to)
	ahw, ahh := a.HalfExtents()
	bhw, bhh := b.HalfExtents()
	half := cfg.Room.DoorHalfWidth()

	data := components.HallwayData{From: from.Entity(), To: to.Entity()}
	if a.GridY == b.GridY {
		data.Horizontal = true
		data.Min = dmath.Vec2{X: a.Center.X + ahw, Y: a.Center.Y - half}
		data.Max = dmath.Vec2{X: b.Center.X - bhw, Y: a.Center.Y + half}
	} else {
		data.Min = dmath.Vec2{X: a.Center.X - half, Y: a.Center.Y + ahh}
		data.Max = dmath.Vec2{X: a.Center.X + half, Y: b.Center.Y - bhh}
	}
	components.Hallway.SetValue(hall, data)
	return hall
}

// BuildDungeon turns a generated map into entities: the collision space,
// rooms, hallways, enemy rosters and the dungeon singleton.
func BuildDungeon(ecs *ecs.ECS, m *mapgen.Map, seed int64, rng *rand.Rand) *donburi.Entry {
	if _, ok := components.Space.First(ecs.World); !ok {
		size := int(mapgen.WorldSize())
		CreateSpace(ecs, size, size, spaceCellSize, spaceCellSize)
	}

	entries := make(map[*mapgen.Room]*donburi.Entry, len(m.Rooms))
	grid := make(map[[2]int]donburi.Entity, len(m.Rooms))
	for _, r := range m.Rooms {
		e := CreateRoom(ecs, r)
		entries[r] = e
		grid[[2]int{r.GridX, r.GridY}] = e.Entity()
	}
	for _, r := range m.Rooms {
		for _, d := range []cfg.Direction{cfg.East, cfg.South} {
			if n := m.Neighbor(r, d); n != nil && r.Doors[d] {
				CreateHallway(ecs, entries[r], entries[n])
			}
		}
	}

	handle := func(r *mapgen.Room) donburi.Entity {
		if r == nil {
			return donburi.Null
		}
		return entries[r].Entity()
	}
	var critical [][2]int
	if path, ok := m.CriticalPath(); ok {
		for _, r := range path {
			critical = append(critical, [2]int{r.GridX, r.GridY})
		}
	}

	dungeon := archetypes.Dungeon.Spawn(ecs)
	components.Dungeon.SetValue(dungeon, components.DungeonData{
		Level:        m.Level,
		Seed:         seed,
		BossFloor:    m.BossFloor,
		Grid:         grid,
		Begin:        handle(m.Begin),
		Exit:         handle(m.Exit),
		Arena:        handle(m.Arena),
		Current:      donburi.Null,
		CriticalPath: critical,
	})

	for _, r := range m.Rooms {
		populateRoom(ecs, m.Level, r, entries[r], rng)
	}
	logger(ecs.World).Info("dungeon built",
		"level", m.Level, "rooms", len(m.Rooms), "boss_floor", m.BossFloor, "critical_path", len(critical))
	return dungeon
}

// populateRoom fills a room from the depth pool. Boss rooms hold the boss
// alone; begin, reward and arena rooms stay empty.
func populateRoom(ecs *ecs.ECS, level int, r *mapgen.Room, entry *donburi.Entry, rng *rand.Rand) {
	if r.Arena {
		return
	}
	switch r.Type {
	case cfg.RoomBoss:
		CreateEnemy(ecs, cfg.Boss.TypeName, r.Center, entry.Entity(), false)
	case cfg.RoomNormal, cfg.RoomEnd:
		pools := cfg.Enemy.Pools
		if len(pools) == 0 {
			return
		}
		pool := pools[min(max(level-1, 0), len(pools)-1)]
		if len(pool) == 0 {
			return
		}
		n := cfg.Enemy.MinPerRoom + rng.Intn(cfg.Enemy.MaxPerRoom-cfg.Enemy.MinPerRoom+1)
		for range n {
			name := pool[rng.Intn(len(pool))]
			red := rng.Float64() < cfg.Enemy.RedMarkChance
			CreateEnemy(ecs, name, spawnPoint(components.Room.Get(entry), rng), entry.Entity(), red)
		}
	default:
		return
	}

	room := components.Room.Get(entry)
	for _, h := range room.Enemies {
		if components.Enemy.Get(ecs.World.Entry(h)).CountsForRoomClear {
			room.Cleared = false
			break
		}
	}
}

// spawnPoint picks a floor position two tiles clear of the walls.
func spawnPoint(r *components.RoomData, rng *rand.Rand) dmath.Vec2 {
	hw, hh := r.HalfExtents()
	margin := 2 * cfg.Room.TileSize
	return dmath.Vec2{
		X: r.Center.X + (rng.Float64()*2-1)*(hw-margin),
		Y: r.Center.Y + (rng.Float64()*2-1)*(hh-margin),
	}
}
