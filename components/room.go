package components

import (
	"github.com/automoto/dungeonrush/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// RoomData is one cell of the dungeon grid.
type RoomData struct {
	GridX, GridY int
	Center       math.Vec2
	TilesWidth   int
	TilesHeight  int
	Tiles        [][]config.TileKind // [row][col]

	Doors    [4]bool // connection exists, indexed by config.Direction
	DoorOpen [4]bool // passable
	// DoorOpenness is the visual state of each door, 0 closed to 1 open,
	// driven by DoorTweens.
	DoorOpenness [4]float32
	DoorTweens   [4]*gween.Tween

	Type   config.RoomType
	Reward config.RewardKind
	Arena  bool // boss retreat room on boss floors

	Enemies []donburi.Entity
	Visited bool
	Cleared bool
}

// HalfExtents is half the room interior size in pixels.
func (r *RoomData) HalfExtents() (float64, float64) {
	return float64(r.TilesWidth) * config.Room.TileSize / 2, float64(r.TilesHeight) * config.Room.TileSize / 2
}

// Contains reports whether p lies strictly inside the room interior.
func (r *RoomData) Contains(p math.Vec2) bool {
	hw, hh := r.HalfExtents()
	return p.X > r.Center.X-hw && p.X < r.Center.X+hw && p.Y > r.Center.Y-hh && p.Y < r.Center.Y+hh
}

var Room = donburi.NewComponentType[RoomData]()

// HallwayData is a straight corridor between two facing doors.
type HallwayData struct {
	From, To   donburi.Entity
	Horizontal bool
	Min, Max   math.Vec2 // corridor bounds, doorway to doorway
}

// Contains reports whether p lies inside the corridor bounds.
func (h *HallwayData) Contains(p math.Vec2) bool {
	return p.X >= h.Min.X && p.X <= h.Max.X && p.Y >= h.Min.Y && p.Y <= h.Max.Y
}

var Hallway = donburi.NewComponentType[HallwayData]()
