package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundEnemyAttack
	SoundHit
	SoundDeath
	SoundExplosion
	SoundShoot
	SoundNova
	SoundDash
	SoundSmoke
	SoundPoison
	// Room sounds
	SoundDoorOpen
	SoundDoorClose
	SoundReward
	SoundPortal
	SoundBossPhase
)

var soundNames = map[SoundID]string{
	SoundEnemyAttack: "enemy_attack",
	SoundHit:         "hit",
	SoundDeath:       "death",
	SoundExplosion:   "explosion",
	SoundShoot:       "shoot",
	SoundNova:        "nova",
	SoundDash:        "dash",
	SoundSmoke:       "smoke",
	SoundPoison:      "poison",
	SoundDoorOpen:    "door_open",
	SoundDoorClose:   "door_close",
	SoundReward:      "reward",
	SoundPortal:      "portal",
	SoundBossPhase:   "boss_phase",
}

func (s SoundID) String() string {
	if name, ok := soundNames[s]; ok {
		return name
	}
	return "none"
}

// MusicID represents a background track
type MusicID int

const (
	MusicNone MusicID = iota
	MusicDungeon
	MusicBoss
	MusicGameOver
)

func (m MusicID) String() string {
	switch m {
	case MusicDungeon:
		return "dungeon"
	case MusicBoss:
		return "boss"
	case MusicGameOver:
		return "game_over"
	default:
		return "none"
	}
}
