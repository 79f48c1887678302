package config

// FallbackClip is played whenever a requested clip is missing.
const FallbackClip = "placeholder"

// Effect clips played on targets rather than on the owning character.
const (
	ClipHitSpark  = "hit_spark"
	ClipExplosion = "explosion"
	ClipSmoke     = "smoke"
	ClipPoisoned  = "poisoned"
)

// stateClipSeconds is the default length of each state clip.
var stateClipSeconds = map[StateID]float64{
	Idle:   0.6,
	Move:   0.5,
	Attack: 0.5,
	Skill:  1.0,
	Hit:    0.2,
	Dash:   0.15,
	Die:    0.8,
}

// LoopingStates lists states whose clips repeat until the state changes.
var LoopingStates = map[StateID]bool{
	Idle: true,
	Move: true,
}

// Clip names the clip for a sprite key in a state, e.g. "slime_attack".
func Clip(spriteKey string, state StateID) string {
	return spriteKey + "_" + state.String()
}

// ClipLibrary returns clip lengths in frames for every sprite key the enemy
// table and the player use. Stationary archetypes ship without a move clip.
func ClipLibrary() map[string]int {
	lib := map[string]int{
		FallbackClip:  Frames(0.5),
		ClipHitSpark:  Frames(0.2),
		ClipExplosion: Frames(0.6),
		ClipSmoke:     Frames(0.4),
		ClipPoisoned:  Frames(0.3),
	}
	add := func(key string, stationary bool) {
		for state, secs := range stateClipSeconds {
			if stationary && (state == Move || state == Dash) {
				continue
			}
			lib[Clip(key, state)] = Frames(secs)
		}
	}
	add("player", false)
	for _, t := range Enemy.Types {
		add(t.SpriteKey, t.Behavior.Stationary())
	}
	return lib
}
