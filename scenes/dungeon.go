package scenes

import (
	"image/color"
	"log/slog"
	"sync"

	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/automoto/dungeonrush/core"
	"github.com/automoto/dungeonrush/systems"
	"github.com/automoto/dungeonrush/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

var (
	floorColor  = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	wallColor   = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	doorColor   = color.RGBA{R: 150, G: 100, B: 50, A: 255}
	shotColor   = color.RGBA{R: 255, G: 240, B: 120, A: 255}
	smokeColor  = color.RGBA{R: 120, G: 120, B: 140, A: 90}
	portalColor = color.RGBA{R: 120, G: 180, B: 255, A: 255}
)

// DungeonScene plays a run with keyboard input and flat-colour rendering.
type DungeonScene struct {
	sceneChanger SceneChanger
	game         *core.Game
	seed         int64
	level        int
	once         sync.Once
}

func NewDungeonScene(sc SceneChanger, seed int64, level int) *DungeonScene {
	return &DungeonScene{sceneChanger: sc, seed: seed, level: level}
}

func (ds *DungeonScene) configure() {
	ds.game = core.New(core.Options{Seed: ds.seed, Level: ds.level, Logger: slog.Default()})
}

func (ds *DungeonScene) Update() {
	ds.once.Do(ds.configure)
	if ds.game.GameOver() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			ds.sceneChanger.ChangeScene(NewSetupScene(ds.sceneChanger, ds.seed+1))
		}
		return
	}
	ds.game.SetIntent(readIntent())
	ds.game.Tick()
}

func readIntent() components.IntentData {
	var in components.IntentData
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.MoveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		in.MoveY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		in.MoveY++
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.AimX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.AimX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.AimY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.AimY++
	}
	in.Attack = in.AimX != 0 || in.AimY != 0 || ebiten.IsKeyPressed(ebiten.KeyJ)
	in.Nova = inpututil.IsKeyJustPressed(ebiten.KeyK)
	in.Dash = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	return in
}

func (ds *DungeonScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ds.game == nil {
		return
	}
	w := ds.game.ECS.World
	player, ok := ds.game.Player()
	if !ok {
		return
	}
	cam := systems.Position(player)
	ox := float32(cam.X) - float32(cfg.C.Width)/2
	oy := float32(cam.Y) - float32(cfg.C.Height)/2

	tags.Room.Each(w, func(e *donburi.Entry) {
		drawRoom(screen, components.Room.Get(e), ox, oy)
	})
	tags.Hallway.Each(w, func(e *donburi.Entry) {
		h := components.Hallway.Get(e)
		vector.FillRect(screen, float32(h.Min.X)-ox, float32(h.Min.Y)-oy,
			float32(h.Max.X-h.Min.X), float32(h.Max.Y-h.Min.Y), floorColor, false)
	})
	if d := ds.game.Dungeon(); d != nil && w.Valid(d.Exit) {
		if exit := components.Room.Get(w.Entry(d.Exit)); exit.Cleared {
			r := float32(cfg.Room.PortalRadius)
			vector.FillRect(screen, float32(exit.Center.X)-ox-r, float32(exit.Center.Y)-oy-r, 2*r, 2*r, portalColor, false)
		}
	}
	tags.Smoke.Each(w, func(e *donburi.Entry) {
		drawObject(screen, e, smokeColor, ox, oy)
	})
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		c := components.Tint.Get(e).Current
		if systems.IsStealthed(e) {
			c.A = 80
		}
		if e.HasComponent(components.Flash) {
			c = cfg.White
		}
		drawObject(screen, e, c, ox, oy)
		if e.HasComponent(components.HealthBar) {
			obj := components.Object.Get(e)
			x, y := float32(obj.X)-ox, float32(obj.Y)-oy-5
			vector.FillRect(screen, x, y, float32(obj.W), 3, barBack, false)
			vector.FillRect(screen, x, y, float32(obj.W)*float32(components.Health.Get(e).Fraction()), 3, hpColor, false)
		}
	})
	tags.Projectile.Each(w, func(e *donburi.Entry) {
		drawObject(screen, e, shotColor, ox, oy)
	})
	drawObject(screen, player, components.Tint.Get(player).Current, ox, oy)

	ds.drawHUD(screen, player)
}

func drawRoom(screen *ebiten.Image, r *components.RoomData, ox, oy float32) {
	hw, hh := r.HalfExtents()
	left := float32(r.Center.X-hw) - ox
	top := float32(r.Center.Y-hh) - oy
	t := float32(cfg.Room.TileSize)
	for row, tiles := range r.Tiles {
		for col, kind := range tiles {
			c := floorColor
			switch kind {
			case cfg.TileWall:
				c = wallColor
			case cfg.TileDoor:
				if !r.DoorOpen[doorSide(r, row, col)] {
					c = doorColor
				}
			}
			vector.FillRect(screen, left+float32(col)*t, top+float32(row)*t, t, t, c, false)
		}
	}
}

// doorSide maps a door tile back to the wall it sits in.
func doorSide(r *components.RoomData, row, col int) cfg.Direction {
	switch {
	case row == 0:
		return cfg.North
	case row == r.TilesHeight-1:
		return cfg.South
	case col == 0:
		return cfg.West
	default:
		return cfg.East
	}
}

func drawObject(screen *ebiten.Image, e *donburi.Entry, c color.Color, ox, oy float32) {
	obj := components.Object.Get(e)
	vector.FillRect(screen, float32(obj.X)-ox, float32(obj.Y)-oy, float32(obj.W), float32(obj.H), c, false)
}
