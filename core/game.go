// Package core assembles the simulation: the world, its services, the system
// order and the level lifecycle. It has no rendering and no input device.
package core

import (
	"log/slog"
	"math/rand"

	"github.com/automoto/dungeonrush/archetypes"
	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/automoto/dungeonrush/engine"
	"github.com/automoto/dungeonrush/shared/mapgen"
	"github.com/automoto/dungeonrush/systems"
	"github.com/automoto/dungeonrush/systems/factory"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a run. Nil collaborators get the headless defaults.
type Options struct {
	Seed      int64
	Level     int
	Logger    *slog.Logger
	Animation engine.AnimationPlayer
	Audio     engine.AudioPlayer
}

// Game is one run through the dungeon, level after level, until the player
// dies.
type Game struct {
	ECS      *ecs.ECS
	Services *engine.Services
	RunID    string

	seed  int64
	level int
	rng   *rand.Rand
	m     *mapgen.Map
	ticks uint64
}

// New starts a run at opts.Level (1 when unset).
func New(opts Options) *Game {
	runID := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	svc := engine.NewServices(logger.With("run", runID), opts.Seed)
	if opts.Animation != nil {
		svc.Animation = opts.Animation
	}
	if opts.Audio != nil {
		svc.Audio = opts.Audio
	}

	level := max(opts.Level, 1)
	g := &Game{
		Services: svc,
		RunID:    runID,
		seed:     opts.Seed,
		level:    level,
		rng:      rand.New(rand.NewSource(opts.Seed)),
	}
	g.loadLevel(level, nil)
	svc.Logger.Info("run started", "seed", opts.Seed, "level", level)
	return g
}

// carried is what the player keeps between levels.
type carried struct {
	health components.HealthData
	mp     float64
	shield components.ShieldData
}

func (g *Game) loadLevel(level int, keep *carried) {
	if r, ok := g.Services.Animation.(engine.Resetter); ok {
		r.Reset()
	}

	world := donburi.NewWorld()
	e := ecs.NewECS(world)
	svcEntry := archetypes.Services.Spawn(e)
	components.Services.SetValue(svcEntry, components.ServicesData{Services: g.Services})
	systems.AddGameplaySystems(e)

	g.m = mapgen.New(level, g.rng)
	dungeon := factory.BuildDungeon(e, g.m, g.seed, g.rng)
	d := components.Dungeon.Get(dungeon)

	begin := world.Entry(d.Begin)
	player := factory.CreatePlayer(e, components.Room.Get(begin).Center)
	if keep != nil {
		components.Health.SetValue(player, keep.health)
		components.Player.Get(player).MP = keep.mp
		components.Shield.SetValue(player, keep.shield)
	}

	g.ECS = e
	g.level = level
	music := cfg.MusicDungeon
	if g.m.BossFloor {
		music = cfg.MusicBoss
	}
	g.Services.Audio.PlayBGM(music, true)
}

// Tick runs one frame. A completed level is replaced by the next one before
// the following frame.
func (g *Game) Tick() {
	g.ECS.Update()
	g.ticks++

	d := g.Dungeon()
	if d == nil || !d.Complete || d.GameOver {
		return
	}
	player, ok := systems.FindPlayer(g.ECS.World)
	if !ok {
		return
	}
	keep := &carried{
		health: *components.Health.Get(player),
		mp:     components.Player.Get(player).MP,
		shield: *components.Shield.Get(player),
	}
	g.Services.Logger.Info("descending", "from", g.level, "to", g.level+1, "ticks", g.ticks)
	g.loadLevel(g.level+1, keep)
}

// SetIntent replaces the player's intent for the next frame.
func (g *Game) SetIntent(intent components.IntentData) {
	if player, ok := systems.FindPlayer(g.ECS.World); ok {
		components.Player.Get(player).Intent = intent
	}
}

// Player returns the player entry.
func (g *Game) Player() (*donburi.Entry, bool) {
	return systems.FindPlayer(g.ECS.World)
}

// Dungeon returns the current level singleton.
func (g *Game) Dungeon() *components.DungeonData {
	entry, ok := components.Dungeon.First(g.ECS.World)
	if !ok {
		return nil
	}
	return components.Dungeon.Get(entry)
}

func (g *Game) Level() int       { return g.level }
func (g *Game) Map() *mapgen.Map { return g.m }
func (g *Game) Ticks() uint64    { return g.ticks }

// GameOver reports whether the player's death sequence has finished.
func (g *Game) GameOver() bool {
	d := g.Dungeon()
	return d != nil && d.GameOver
}
