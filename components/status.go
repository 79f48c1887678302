package components

import (
	"github.com/yohamta/donburi"
	"github.com/zyedidia/generic/mapset"
)

// PoisonData stacks additively and shares one expiry timer.
type PoisonData struct {
	Stacks       int
	Timer        int // frames until all stacks expire
	TickTimer    int // frames until the next damage tick
	SourceAttack int
}

var Poison = donburi.NewComponentType[PoisonData]()

// StealthData is a set of live sources hiding the entity. The entity is
// stealthed while the set is non-empty.
type StealthData struct {
	Sources mapset.Set[donburi.Entity]
}

func NewStealth() *StealthData {
	return &StealthData{Sources: mapset.New[donburi.Entity]()}
}

var Stealth = donburi.NewComponentType[StealthData]()

// ShieldData absorbs damage before health.
type ShieldData struct {
	Amount int
	Max    int
}

var Shield = donburi.NewComponentType[ShieldData]()
