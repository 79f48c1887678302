package components

import (
	"github.com/yohamta/donburi"
)

// DungeonData is the singleton describing the current level.
type DungeonData struct {
	Level     int
	Seed      int64
	BossFloor bool

	Grid    map[[2]int]donburi.Entity // grid cell to room
	Begin   donburi.Entity
	Exit    donburi.Entity // End or Boss room, holds the portal once cleared
	Arena   donburi.Entity // donburi.Null unless the boss floor has one
	Current donburi.Entity // room the player is inside, donburi.Null in hallways

	CriticalPath [][2]int
	Complete     bool // player stepped on the exit portal
	GameOver     bool
}

var Dungeon = donburi.NewComponentType[DungeonData]()

type ClockData struct {
	Tick uint64
}

var Clock = donburi.NewComponentType[ClockData]()
