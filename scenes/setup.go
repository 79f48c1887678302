package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/dungeonrush/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// SetupScene lets the player pick a seed and start level.
type SetupScene struct {
	sceneChanger SceneChanger
	seed         int64
	setupUI      *ui.SetupUI
	once         sync.Once
	start        *ui.RunSettings
}

func NewSetupScene(sc SceneChanger, seed int64) *SetupScene {
	return &SetupScene{sceneChanger: sc, seed: seed}
}

func (s *SetupScene) configure() {
	s.setupUI = ui.NewSetupUI(s.seed, func(settings ui.RunSettings) {
		s.start = &settings
	})
}

func (s *SetupScene) Update() {
	s.once.Do(s.configure)
	s.setupUI.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.setupUI.Submit()
	}

	if s.start != nil {
		s.sceneChanger.ChangeScene(NewDungeonScene(s.sceneChanger, s.start.Seed, s.start.Level))
	}
}

func (s *SetupScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})
	if s.setupUI == nil {
		return
	}
	s.setupUI.UI.Draw(screen)
}
