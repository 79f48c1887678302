package ui

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"strconv"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MaxStartLevel bounds the level a run may start on.
const MaxStartLevel = 20

// RunSettings is what the setup screen hands to the dungeon scene.
type RunSettings struct {
	Seed  int64
	Level int
}

// ParseRunSettings validates the raw text of the setup inputs. An empty
// level means level 1.
func ParseRunSettings(seed, level string) (RunSettings, error) {
	var s RunSettings
	seed = strings.TrimSpace(seed)
	if seed == "" {
		return s, errors.New("seed is required")
	}
	n, err := strconv.ParseInt(seed, 10, 64)
	if err != nil {
		return s, fmt.Errorf("seed must be a whole number: %q", seed)
	}
	s.Seed = n

	s.Level = 1
	if level = strings.TrimSpace(level); level != "" {
		l, err := strconv.Atoi(level)
		if err != nil || l < 1 || l > MaxStartLevel {
			return s, fmt.Errorf("level must be between 1 and %d", MaxStartLevel)
		}
		s.Level = l
	}
	return s, nil
}

// SetupUI is the run setup screen: seed, start level and a start button.
type SetupUI struct {
	UI *ebitenui.UI

	OnStart func(RunSettings)

	seedInput   *widget.TextInput
	levelInput  *widget.TextInput
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewSetupUI(seed int64, onStart func(RunSettings)) *SetupUI {
	ui := &SetupUI{OnStart: onStart}
	ui.loadFonts()
	ui.buildUI(seed)
	return ui
}

func (ui *SetupUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *SetupUI) buildUI(seed int64) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("DUNGEONRUSH", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	ui.seedInput = ui.newInput(160, strconv.FormatInt(seed, 10))
	ui.seedInput.SetText(strconv.FormatInt(seed, 10))
	panel.AddChild(ui.labelledRow("Seed: ", ui.seedInput))
	ui.levelInput = ui.newInput(60, "1")
	panel.AddChild(ui.labelledRow("Level:", ui.levelInput))
	contentContainer.AddChild(panel)

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	contentContainer.AddChild(ui.buildButtons())
	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *SetupUI) labelledRow(label string, input *widget.TextInput) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(label, &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))
	row.AddChild(input)
	return row
}

func (ui *SetupUI) newInput(width int, placeholder string) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 22)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
}

func (ui *SetupUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		}),
		widget.ButtonOpts.Text("Enter the dungeon", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.Submit()
		}),
	)
	container.AddChild(startButton)

	randomButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Random", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{220, 220, 255, 255},
			Pressed: color.RGBA{170, 170, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.seedInput.SetText(strconv.FormatInt(rand.Int63n(1_000_000), 10))
			ui.SetStatus("")
		}),
	)
	container.AddChild(randomButton)

	return container
}

// Submit validates the inputs and starts the run, or shows why it cannot.
func (ui *SetupUI) Submit() {
	settings, err := ParseRunSettings(ui.seedInput.GetText(), ui.levelInput.GetText())
	if err != nil {
		ui.SetStatus(err.Error())
		return
	}
	if ui.OnStart != nil {
		ui.OnStart(settings)
	}
}

func (ui *SetupUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *SetupUI) Update() {
	ui.UI.Update()
}
