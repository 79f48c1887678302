package main

import (
	"flag"
	"log"

	"github.com/automoto/dungeonrush/config"
	"github.com/automoto/dungeonrush/fonts"
	"github.com/automoto/dungeonrush/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(seed int64, level int, skipSetup bool) *Game {
	g := &Game{}
	if skipSetup {
		g.scene = scenes.NewDungeonScene(g, seed, level)
	} else {
		g.scene = scenes.NewSetupScene(g, seed)
	}
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	seed := flag.Int64("seed", 1, "dungeon seed")
	level := flag.Int("level", 1, "start level when skipping setup")
	skipSetup := flag.Bool("skip-setup", false, "start the run immediately")
	overrides := flag.String("config", "", "YAML tuning overrides")
	flag.Parse()

	if *overrides != "" {
		if err := config.LoadOverridesFile(*overrides); err != nil {
			log.Fatalf("Failed to load overrides: %v", err)
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("dungeonrush")
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(NewGame(*seed, *level, *skipSetup)); err != nil {
		log.Fatal(err)
	}
}
