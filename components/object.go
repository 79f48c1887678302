package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ObjectData struct {
	*resolv.Object
}

// Center is the logical position of the entity.
func (o *ObjectData) Center() math.Vec2 {
	return math.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// SetCenter moves the object so its centre lands on p.
func (o *ObjectData) SetCenter(p math.Vec2) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
