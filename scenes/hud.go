package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/dungeonrush/components"
	"github.com/automoto/dungeonrush/fonts"
	"github.com/automoto/dungeonrush/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

var (
	hudColor     = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	hpColor      = color.RGBA{R: 200, G: 60, B: 60, A: 255}
	mpColor      = color.RGBA{R: 70, G: 120, B: 220, A: 255}
	shieldColor  = color.RGBA{R: 160, G: 160, B: 180, A: 255}
	barBack      = color.RGBA{R: 20, G: 20, B: 20, A: 200}
	overlayColor = color.RGBA{R: 0, G: 0, B: 0, A: 170}
)

const (
	barWidth  = 100
	barHeight = 6
)

// drawHUD renders the player's bars, the level line and the controls hint.
func (ds *DungeonScene) drawHUD(screen *ebiten.Image, player *donburi.Entry) {
	hp := components.Health.Get(player)
	p := components.Player.Get(player)
	shield := components.Shield.Get(player)

	drawBar(screen, 8, 8, float32(hp.Fraction()), hpColor)
	drawBar(screen, 8, 18, float32(p.MP)/float32(max(p.MaxMP, 1)), mpColor)
	if shield.Max > 0 {
		drawBar(screen, 8, 28, float32(shield.Amount)/float32(shield.Max), shieldColor)
	}

	face := fonts.HUD.Get()
	line := fmt.Sprintf("Level %d  HP %d/%d  MP %d  %s",
		ds.game.Level(), hp.Current, hp.Max, int(p.MP), systems.CurrentState(player))
	text.Draw(screen, line, face, 116, 16, hudColor)

	hint := "WASD move  arrows/J shoot  K nova  Space dash"
	small := fonts.Small.Get()
	text.Draw(screen, hint, small, 8, screen.Bounds().Dy()-8, hudColor)

	if ds.game.GameOver() {
		drawGameOver(screen)
	}
}

func drawBar(screen *ebiten.Image, x, y, fill float32, c color.Color) {
	fill = min(max(fill, 0), 1)
	vector.FillRect(screen, x, y, barWidth, barHeight, barBack, false)
	vector.FillRect(screen, x, y, barWidth*fill, barHeight, c, false)
}

func drawGameOver(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)

	title := "YOU DIED"
	titleFace := fonts.Title.Get()
	text.Draw(screen, title, titleFace, (w-fonts.Width(titleFace, title))/2, h/2, hpColor)

	prompt := "press Enter for a new dungeon"
	face := fonts.HUD.Get()
	text.Draw(screen, prompt, face, (w-fonts.Width(face, prompt))/2, h/2+24, hudColor)
}
