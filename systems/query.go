package systems

import (
	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/automoto/dungeonrush/engine"
	"github.com/automoto/dungeonrush/shared/gamemath"
	"github.com/automoto/dungeonrush/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ServicesOf returns the collaborators stored in the world. A world without
// them gets headless defaults on first use.
func ServicesOf(w donburi.World) *engine.Services {
	entry, ok := components.Services.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Services))
		components.Services.SetValue(entry, components.ServicesData{Services: engine.NewServices(nil, 0)})
	}
	return components.Services.Get(entry).Services
}

// Now returns the current clock tick.
func Now(w donburi.World) uint64 {
	entry, ok := components.Clock.First(w)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Tick
}

// FindPlayer returns the player entry, if one exists.
func FindPlayer(w donburi.World) (*donburi.Entry, bool) {
	return tags.Player.First(w)
}

// IsAlive reports whether e is a live character: present, with health left
// and not in its death sequence.
func IsAlive(e *donburi.Entry) bool {
	if e == nil || !e.Valid() {
		return false
	}
	if e.HasComponent(components.State) && components.State.Get(e).CurrentState == cfg.Die {
		return false
	}
	if e.HasComponent(components.Health) && components.Health.Get(e).Current <= 0 {
		return false
	}
	return true
}

// Position is the centre of the entity's collision object.
func Position(e *donburi.Entry) math.Vec2 {
	return components.Object.Get(e).Center()
}

func spaceOf(w donburi.World) *resolv.Space {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(entry).Space
}

// entryOf resolves a handle, returning nil for removed entities.
func entryOf(w donburi.World, e donburi.Entity) *donburi.Entry {
	if e == donburi.Null || !w.Valid(e) {
		return nil
	}
	return w.Entry(e)
}

// QueryNearby returns entities carrying the resolv tag whose centre lies
// within radius of pos.
func QueryNearby(w donburi.World, pos math.Vec2, radius float64, tag string) []*donburi.Entry {
	space := spaceOf(w)
	if space == nil || radius <= 0 {
		return nil
	}

	probe := resolv.NewObject(pos.X-radius, pos.Y-radius, radius*2, radius*2, tags.ResolvQuery)
	space.Add(probe)
	defer space.Remove(probe)

	collision := probe.Check(0, 0, tag)
	if collision == nil {
		return nil
	}

	var found []*donburi.Entry
	for _, obj := range collision.Objects {
		handle, ok := obj.Data.(donburi.Entity)
		if !ok {
			continue
		}
		e := entryOf(w, handle)
		if e == nil {
			continue
		}
		if gamemath.Distance(pos, Position(e)) <= radius {
			found = append(found, e)
		}
	}
	return found
}

// moveBy shifts the entity's collision object.
func moveBy(e *donburi.Entry, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	obj := components.Object.Get(e)
	obj.X += dx
	obj.Y += dy
	obj.Update()
}

func halfSize(e *donburi.Entry) float64 {
	obj := components.Object.Get(e)
	return min(obj.W, obj.H) / 2
}

// overlaps reports whether a, moved by (dx, dy), intersects b.
func overlaps(a, b *resolv.Object, dx, dy float64) bool {
	ax, ay := a.X+dx, a.Y+dy
	return ax < b.X+b.W && ax+a.W > b.X && ay < b.Y+b.H && ay+a.H > b.Y
}
