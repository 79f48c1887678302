package components

import "github.com/yohamta/donburi"

// EffectData is a one-shot visual anchored in the world, such as an
// explosion or hit spark. It is removed once Timer reaches zero.
type EffectData struct {
	Clip  string
	Timer int
}

var Effect = donburi.NewComponentType[EffectData]()
