package components

import "github.com/yohamta/donburi"

// SmokeData is a cloud that stealths every enemy inside its radius.
type SmokeData struct {
	Timer  int
	Radius float64
	Room   donburi.Entity
	Hidden []donburi.Entity // enemies this cloud is currently a source for
}

var Smoke = donburi.NewComponentType[SmokeData]()
