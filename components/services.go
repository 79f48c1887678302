package components

import (
	"github.com/automoto/dungeonrush/engine"
	"github.com/yohamta/donburi"
)

// ServicesData carries the collaborators handed to systems.
type ServicesData struct {
	*engine.Services
}

var Services = donburi.NewComponentType[ServicesData]()
