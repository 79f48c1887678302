package systems

import (
	"testing"

	"github.com/automoto/dungeonrush/archetypes"
	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/automoto/dungeonrush/engine"
	"github.com/automoto/dungeonrush/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var roomCenter = dmath.Vec2{X: 400, Y: 300}

type fixture struct {
	ecs     *ecs.ECS
	svc     *engine.Services
	room    *donburi.Entry
	dungeon *donburi.Entry
}

// newFixture builds a world with one closed-off room holding the dungeon's
// current position. svc may be nil for the headless defaults.
func newFixture(t *testing.T, svc *engine.Services) *fixture {
	t.Helper()
	if svc == nil {
		svc = engine.NewServices(nil, 1)
	}
	e := ecs.NewECS(donburi.NewWorld())
	components.Services.SetValue(archetypes.Services.Spawn(e), components.ServicesData{Services: svc})
	factory.CreateSpace(e, 2000, 2000, 32, 32)
	AddGameplaySystems(e)

	room := archetypes.Room.Spawn(e)
	components.Room.SetValue(room, components.RoomData{
		Center:      roomCenter,
		TilesWidth:  cfg.Room.TilesWidth,
		TilesHeight: cfg.Room.TilesHeight,
		Cleared:     true,
	})

	dungeon := archetypes.Dungeon.Spawn(e)
	components.Dungeon.SetValue(dungeon, components.DungeonData{
		Level:   1,
		Begin:   room.Entity(),
		Exit:    donburi.Null,
		Arena:   donburi.Null,
		Current: room.Entity(),
	})
	return &fixture{ecs: e, svc: svc, room: room, dungeon: dungeon}
}

func (f *fixture) player(pos dmath.Vec2) *donburi.Entry {
	p := factory.CreatePlayer(f.ecs, pos)
	components.Shield.Get(p).Amount = 0
	return p
}

func (f *fixture) enemy(name string, pos dmath.Vec2) *donburi.Entry {
	return factory.CreateEnemy(f.ecs, name, pos, f.room.Entity(), false)
}

func (f *fixture) roomData() *components.RoomData {
	return components.Room.Get(f.room)
}

func (f *fixture) dungeonData() *components.DungeonData {
	return components.Dungeon.Get(f.dungeon)
}

// tick runs the registered gameplay systems once.
func (f *fixture) tick() {
	f.ecs.Update()
}

func (f *fixture) ticks(n int) {
	for range n {
		f.tick()
	}
}

func hp(e *donburi.Entry) int {
	return components.Health.Get(e).Current
}

func offset(p dmath.Vec2, dx, dy float64) dmath.Vec2 {
	return dmath.Vec2{X: p.X + dx, Y: p.Y + dy}
}
