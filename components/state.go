package components

import (
	"github.com/automoto/dungeonrush/config"
	"github.com/yohamta/donburi"
)

// StateData is written only through systems.SetState.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int // frames spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()
