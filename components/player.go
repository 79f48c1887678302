package components

import "github.com/yohamta/donburi"

// IntentData is what the player wants to do this frame. It is written by the
// input layer (keyboard, bot or test) and consumed by UpdatePlayer.
type IntentData struct {
	MoveX, MoveY float64
	AimX, AimY   float64
	Attack       bool
	Nova         bool
	Dash         bool
}

type PlayerData struct {
	MP           float64
	MaxMP        int
	InvulnFrames int
	DashTimer    int
	DashCooldown int
	Intent       IntentData
}

var Player = donburi.NewComponentType[PlayerData]()
