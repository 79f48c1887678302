package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// TintData is the colour the entity is drawn with. Base is restored when
// status tints wear off.
type TintData struct {
	Current color.RGBA
	Base    color.RGBA
}

var Tint = donburi.NewComponentType[TintData]()

// FlashData tracks sprite flash effect (hit flash, damage flash)
type FlashData struct {
	Duration int // frames remaining
}

var Flash = donburi.NewComponentType[FlashData]()
