package systems

import (
	"math"

	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/automoto/dungeonrush/shared/gamemath"
	"github.com/automoto/dungeonrush/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func dungeonOf(w donburi.World) *components.DungeonData {
	entry, ok := components.Dungeon.First(w)
	if !ok {
		return nil
	}
	return components.Dungeon.Get(entry)
}

func roomOf(w donburi.World, h donburi.Entity) *components.RoomData {
	e := entryOf(w, h)
	if e == nil || !e.HasComponent(components.Room) {
		return nil
	}
	return components.Room.Get(e)
}

func removeHandle(list []donburi.Entity, h donburi.Entity) []donburi.Entity {
	out := list[:0]
	for _, x := range list {
		if x != h {
			out = append(out, x)
		}
	}
	return out
}

// interior is the floor area of the room inside its wall ring, shrunk by
// margin on every side.
func interior(r *components.RoomData, margin float64) (minX, minY, maxX, maxY float64) {
	hw, hh := r.HalfExtents()
	t := cfg.Room.TileSize
	return r.Center.X - hw + t + margin, r.Center.Y - hh + t + margin,
		r.Center.X + hw - t - margin, r.Center.Y + hh - t - margin
}

// CheckBoundary clamps the velocity of a body with the given half size so it
// does not cross the room walls. A crossing is allowed when the door on that
// side is open and the body fits its window. Inside a doorway the
// perpendicular axis is held within the window.
func CheckBoundary(r *components.RoomData, pos dmath.Vec2, velX, velY, margin float64) (float64, float64) {
	minX, minY, maxX, maxY := interior(r, margin)
	window := cfg.Room.DoorHalfWidth() - margin
	inWindowY := math.Abs(pos.Y-r.Center.Y) <= window
	inWindowX := math.Abs(pos.X-r.Center.X) <= window

	nx := pos.X + velX
	if velX < 0 && nx < minX && !(r.DoorOpen[cfg.West] && inWindowY) {
		velX = math.Min(0, minX-pos.X)
	}
	if velX > 0 && nx > maxX && !(r.DoorOpen[cfg.East] && inWindowY) {
		velX = math.Max(0, maxX-pos.X)
	}
	ny := pos.Y + velY
	if velY < 0 && ny < minY && !(r.DoorOpen[cfg.North] && inWindowX) {
		velY = math.Min(0, minY-pos.Y)
	}
	if velY > 0 && ny > maxY && !(r.DoorOpen[cfg.South] && inWindowX) {
		velY = math.Max(0, maxY-pos.Y)
	}

	nx, ny = pos.X+velX, pos.Y+velY
	if nx < minX || nx > maxX {
		velY = gamemath.Clamp(ny, r.Center.Y-window, r.Center.Y+window) - pos.Y
	}
	if ny < minY || ny > maxY {
		velX = gamemath.Clamp(nx, r.Center.X-window, r.Center.X+window) - pos.X
	}
	return velX, velY
}

// ConfineVelocity keeps a body inside the room floor, ignoring doors.
func ConfineVelocity(r *components.RoomData, pos dmath.Vec2, velX, velY, margin float64) (float64, float64) {
	minX, minY, maxX, maxY := interior(r, margin)
	return gamemath.Clamp(pos.X+velX, minX, maxX) - pos.X, gamemath.Clamp(pos.Y+velY, minY, maxY) - pos.Y
}

// ConfineToHallway keeps a body within the corridor width. Its ends lead into
// the connected rooms and are closed while the facing door is.
func ConfineToHallway(w donburi.World, h *components.HallwayData, pos dmath.Vec2, velX, velY, margin float64) (float64, float64) {
	from, to := roomOf(w, h.From), roomOf(w, h.To)
	closed := func(r *components.RoomData, d cfg.Direction) bool {
		return r != nil && !r.DoorOpen[d]
	}

	if h.Horizontal {
		velY = gamemath.Clamp(pos.Y+velY, h.Min.Y+margin, h.Max.Y-margin) - pos.Y
		nx := pos.X + velX
		if velX < 0 && nx < h.Min.X && closed(from, cfg.East) {
			velX = math.Min(0, h.Min.X-pos.X)
		}
		if velX > 0 && nx > h.Max.X && closed(to, cfg.West) {
			velX = math.Max(0, h.Max.X-pos.X)
		}
		return velX, velY
	}

	velX = gamemath.Clamp(pos.X+velX, h.Min.X+margin, h.Max.X-margin) - pos.X
	ny := pos.Y + velY
	if velY < 0 && ny < h.Min.Y && closed(from, cfg.South) {
		velY = math.Min(0, h.Min.Y-pos.Y)
	}
	if velY > 0 && ny > h.Max.Y && closed(to, cfg.North) {
		velY = math.Max(0, h.Max.Y-pos.Y)
	}
	return velX, velY
}

// RoomAt returns the room whose bounds strictly contain pos.
func RoomAt(w donburi.World, pos dmath.Vec2) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Room.Each(w, func(e *donburi.Entry) {
		if found == nil && components.Room.Get(e).Contains(pos) {
			found = e
		}
	})
	return found, found != nil
}

func hallwayAt(w donburi.World, pos dmath.Vec2) *components.HallwayData {
	var found *components.HallwayData
	tags.Hallway.Each(w, func(e *donburi.Entry) {
		if h := components.Hallway.Get(e); found == nil && h.Contains(pos) {
			found = h
		}
	})
	return found
}

// ConstrainMovement applies the wall rules of wherever pos is: room walls and
// doors, or hallway sides.
func ConstrainMovement(w donburi.World, pos dmath.Vec2, velX, velY, margin float64) (float64, float64) {
	if room, ok := RoomAt(w, pos); ok {
		return CheckBoundary(components.Room.Get(room), pos, velX, velY, margin)
	}
	if h := hallwayAt(w, pos); h != nil {
		return ConfineToHallway(w, h, pos, velX, velY, margin)
	}
	return velX, velY
}

// AllEnemiesKilled reports whether every roster enemy that counts toward
// clearing the room is dead. Removed enemies count as dead and a room with
// no counting enemies is clear.
func AllEnemiesKilled(w donburi.World, r *components.RoomData) bool {
	for _, h := range r.Enemies {
		e := entryOf(w, h)
		if e == nil {
			continue
		}
		if !components.Enemy.Get(e).CountsForRoomClear {
			continue
		}
		if IsAlive(e) {
			return false
		}
	}
	return true
}

// OpenDoors opens every connected door of the room.
func OpenDoors(ecs *ecs.ECS, r *components.RoomData) {
	if setDoors(r, true) {
		ServicesOf(ecs.World).Audio.PlaySFX(cfg.SoundDoorOpen)
	}
}

// CloseDoors closes every connected door of the room.
func CloseDoors(ecs *ecs.ECS, r *components.RoomData) {
	if setDoors(r, false) {
		ServicesOf(ecs.World).Audio.PlaySFX(cfg.SoundDoorClose)
	}
}

func setDoors(r *components.RoomData, open bool) bool {
	target := float32(0)
	if open {
		target = 1
	}
	changed := false
	for _, d := range cfg.Directions {
		if !r.Doors[d] || r.DoorOpen[d] == open {
			continue
		}
		r.DoorOpen[d] = open
		r.DoorTweens[d] = gween.New(r.DoorOpenness[d], target, float32(cfg.Room.DoorTweenDuration), ease.OutQuad)
		changed = true
	}
	return changed
}

// UpdateRooms tracks the room the player is in, gates doors on the roster
// and detects the exit portal.
func UpdateRooms(ecs *ecs.ECS) {
	d := dungeonOf(ecs.World)
	if d == nil {
		return
	}
	svc := ServicesOf(ecs.World)

	player, ok := FindPlayer(ecs.World)
	if ok && IsAlive(player) {
		current := donburi.Null
		if room, ok := RoomAt(ecs.World, Position(player)); ok {
			current = room.Entity()
		}
		if current != d.Current {
			d.Current = current
			if r := roomOf(ecs.World, current); r != nil {
				enterRoom(ecs, r)
			}
		}
	}

	tags.Room.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Room.Get(e)
		clear := AllEnemiesKilled(ecs.World, r)
		switch {
		case clear && !r.Cleared:
			r.Cleared = true
			OpenDoors(ecs, r)
			svc.Logger.Debug("room cleared", "x", r.GridX, "y", r.GridY, "type", r.Type.String())
		case !clear && r.Cleared:
			// New counting enemies arrived, for instance a relocated boss.
			r.Cleared = false
		}
		for _, dir := range cfg.Directions {
			if tw := r.DoorTweens[dir]; tw != nil {
				v, done := tw.Update(1.0 / cfg.TPS)
				r.DoorOpenness[dir] = v
				if done {
					r.DoorTweens[dir] = nil
				}
			}
		}
	})

	if ok && IsAlive(player) && !d.Complete {
		exit := roomOf(ecs.World, d.Exit)
		if exit != nil && exit.Cleared && d.Current == d.Exit &&
			gamemath.Distance(Position(player), exit.Center) <= cfg.Room.PortalRadius {
			d.Complete = true
			svc.Audio.PlaySFX(cfg.SoundPortal)
			svc.Logger.Info("level complete", "level", d.Level)
		}
	}
}

func enterRoom(ecs *ecs.ECS, r *components.RoomData) {
	if !r.Visited && r.Type == cfg.RoomReward {
		ServicesOf(ecs.World).Audio.PlaySFX(cfg.SoundReward)
	}
	r.Visited = true
	if !AllEnemiesKilled(ecs.World, r) {
		r.Cleared = false
		CloseDoors(ecs, r)
	}
	if r.Type == cfg.RoomBoss || r.Arena {
		ServicesOf(ecs.World).Audio.PlayBGM(cfg.MusicBoss, true)
	}
}
