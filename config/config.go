package config

import (
	"image/color"
	"math"

	"github.com/yohamta/donburi/ecs"
)

// TPS is the fixed simulation rate. All timers are counted in frames.
const TPS = 60

// Default is the only ECS layer the simulation uses.
const Default ecs.LayerID = 0

// Frames converts a duration in seconds to whole simulation frames.
func Frames(seconds float64) int {
	return int(math.Round(seconds * TPS))
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Health    int     `yaml:"health"`
	MP        int     `yaml:"mp"`
	MPRegen   float64 `yaml:"mp_regen"` // MP per second
	Shield    int     `yaml:"shield"`
	MoveSpeed float64 `yaml:"move_speed"` // pixels per frame
	Attack    int     `yaml:"attack"`

	AttackCooldown     float64 `yaml:"attack_cooldown"`
	ProjectileSpeed    float64 `yaml:"projectile_speed"`
	ProjectileLifetime float64 `yaml:"projectile_lifetime"`
	VenomShots         bool    `yaml:"venom_shots"` // projectiles apply poison

	NovaCost       int     `yaml:"nova_cost"`
	NovaRadius     float64 `yaml:"nova_radius"`
	NovaMultiplier float64 `yaml:"nova_multiplier"`
	NovaDuration   float64 `yaml:"nova_duration"` // Skill state length

	DashSpeed    float64 `yaml:"dash_speed"`
	DashDuration float64 `yaml:"dash_duration"`
	DashCooldown float64 `yaml:"dash_cooldown"`

	InvulnDuration  float64 `yaml:"invuln_duration"` // after taking a hit
	HitstunDuration float64 `yaml:"hitstun_duration"`
	CollisionSize   float64 `yaml:"collision_size"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name      string       `yaml:"-"`
	SpriteKey string       `yaml:"sprite_key"`
	Behavior  BehaviorKind `yaml:"behavior"`

	Health    int     `yaml:"health"`
	Attack    int     `yaml:"attack"`
	MoveSpeed float64 `yaml:"move_speed"`

	SightRange      float64 `yaml:"sight_range"`
	AttackRange     float64 `yaml:"attack_range"`
	AttackWindup    float64 `yaml:"attack_windup"`   // seconds between commit and impact
	AttackCooldown  float64 `yaml:"attack_cooldown"` // seconds
	Recovery        float64 `yaml:"recovery"`        // idle seconds after an attack resolves or aborts
	HitstunDuration float64 `yaml:"hitstun_duration"`

	PatrolRadius   float64 `yaml:"patrol_radius"`
	PatrolInterval float64 `yaml:"patrol_interval"` // seconds before a new destination is picked

	CollisionSize   float64 `yaml:"collision_size"`
	DamageReduction float64 `yaml:"damage_reduction"` // 0..1 fraction removed from incoming damage
	OneDamagePerHit bool    `yaml:"one_damage_per_hit"`
	Staggerable     bool    `yaml:"staggerable"`

	// CountsForRoomClear is false for support and decoy enemies.
	CountsForRoomClear bool `yaml:"counts_for_room_clear"`

	PoisonOnHit   bool    `yaml:"poison_on_hit"`
	SmokeOnHit    bool    `yaml:"smoke_on_hit"`
	SmokeInterval float64 `yaml:"smoke_interval"` // support enemies only

	ExplosionRadius float64 `yaml:"explosion_radius"`
	HitCount        int     `yaml:"hit_count"`
	HitInterval     float64 `yaml:"hit_interval"`
	BulletSpeed     float64 `yaml:"bullet_speed"`

	SplitInto   string `yaml:"split_into"`
	SplitCount  int    `yaml:"split_count"`
	MarkedSpawn string `yaml:"marked_spawn"` // spawned on death when red-marked

	TintColor color.RGBA `yaml:"tint"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig `yaml:"types"`

	// Spawn pools by depth; index = min(level-1, len-1).
	Pools [][]string `yaml:"pools"`

	MinPerRoom      int     `yaml:"min_per_room"`
	MaxPerRoom      int     `yaml:"max_per_room"`
	RedMarkChance   float64 `yaml:"red_mark_chance"`
	AttackTimeout   float64 `yaml:"attack_timeout"` // watchdog slack past the windup
	ArrivalDistance float64 `yaml:"arrival_distance"`
}

// StatusConfig holds status-effect tuning.
type StatusConfig struct {
	PoisonMaxStacks    int        `yaml:"poison_max_stacks"`
	PoisonDuration     float64    `yaml:"poison_duration"`
	PoisonTickInterval float64    `yaml:"poison_tick_interval"`
	PoisonDamageFactor float64    `yaml:"poison_damage_factor"`
	PoisonTint         color.RGBA `yaml:"poison_tint"`

	SmokeRadius   float64 `yaml:"smoke_radius"`
	SmokeDuration float64 `yaml:"smoke_duration"`
	SmokeCooldown float64 `yaml:"smoke_cooldown"` // between on-hit clouds of one enemy
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	DeathDuration    float64 `yaml:"death_duration"`
	FlashDuration    float64 `yaml:"flash_duration"`
	HealthBarSeconds float64 `yaml:"health_bar_seconds"`
}

// RoomConfig describes room geometry in tiles and pixels.
type RoomConfig struct {
	TileSize          float64 `yaml:"tile_size"`
	TilesWidth        int     `yaml:"tiles_width"`
	TilesHeight       int     `yaml:"tiles_height"`
	BossTilesWidth    int     `yaml:"boss_tiles_width"`
	BossTilesHeight   int     `yaml:"boss_tiles_height"`
	DoorWidthTiles    int     `yaml:"door_width_tiles"`
	DoorTweenDuration float64 `yaml:"door_tween_duration"`
	PortalRadius      float64 `yaml:"portal_radius"`
}

// DoorHalfWidth is half the door opening in pixels.
func (r RoomConfig) DoorHalfWidth() float64 {
	return float64(r.DoorWidthTiles) * r.TileSize / 2
}

// DungeonConfig drives level generation.
type DungeonConfig struct {
	GridSize     int     `yaml:"grid_size"`
	MinRooms     int     `yaml:"min_rooms"`
	MaxRooms     int     `yaml:"max_rooms"`
	RoomSpacing  float64 `yaml:"room_spacing"` // world distance between neighbouring room centres
	BossEvery    int     `yaml:"boss_every"`
	SpecialRooms int     `yaml:"special_rooms"`
	MaxAttempts  int     `yaml:"max_attempts"`

	// Levels that use the fixed boss floor instead of the grid generator.
	BossFloorLevels []int `yaml:"boss_floor_levels"`
	BossFloorArena  bool  `yaml:"boss_floor_arena"`
}

// IsBossFloor reports whether the level uses the fixed boss floor layout.
func (d DungeonConfig) IsBossFloor(level int) bool {
	for _, l := range d.BossFloorLevels {
		if l == level {
			return true
		}
	}
	return false
}

// BossPhase is applied when the boss health fraction drops to Threshold.
type BossPhase struct {
	Threshold       float64      `yaml:"threshold"`
	Behavior        BehaviorKind `yaml:"behavior"`
	SpeedMultiplier float64      `yaml:"speed_multiplier"`
	CooldownScale   float64      `yaml:"cooldown_scale"`
	DamageReduction float64      `yaml:"damage_reduction"`
	AttackRange     float64      `yaml:"attack_range"` // 0 keeps the archetype range
	SummonType      string       `yaml:"summon_type"`
	SummonCount     int          `yaml:"summon_count"`
	Announce        string       `yaml:"announce"`
}

// BossConfig contains the multi-phase boss encounter.
type BossConfig struct {
	TypeName           string      `yaml:"type_name"`
	Phases             []BossPhase `yaml:"phases"`
	TransitionDuration float64     `yaml:"transition_duration"`
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Status StatusConfig
var Combat CombatConfig
var Room RoomConfig
var Dungeon DungeonConfig
var Boss BossConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	PoisonTint = color.RGBA{R: 120, G: 255, B: 120, A: 255}
	RedMark    = color.RGBA{R: 255, G: 80, B: 80, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Player = PlayerConfig{
		Health:    100,
		MP:        60,
		MPRegen:   4,
		Shield:    30,
		MoveSpeed: 3.0,
		Attack:    12,

		AttackCooldown:     0.3,
		ProjectileSpeed:    7.0,
		ProjectileLifetime: 1.2,

		NovaCost:       25,
		NovaRadius:     140,
		NovaMultiplier: 2.0,
		NovaDuration:   0.3,

		DashSpeed:    9.0,
		DashDuration: 0.15,
		DashCooldown: 0.8,

		InvulnDuration:  0.5,
		HitstunDuration: 0.15,
		CollisionSize:   20,
	}

	Enemy = EnemyConfig{
		Types: defaultEnemyTypes(),
		Pools: [][]string{
			{"Slime", "Goblin", "Archer", "Decoy"},
			{"Slime", "Goblin", "Archer", "Bomber", "Shade", "Skeleton", "Totem"},
			{"BigSlime", "Knight", "Spitter", "FireSpirit", "Berserker", "Turret", "Shade", "Totem", "Imp"},
		},
		MinPerRoom:      2,
		MaxPerRoom:      5,
		RedMarkChance:   0.15,
		AttackTimeout:   1.0,
		ArrivalDistance: 4,
	}

	Status = StatusConfig{
		PoisonMaxStacks:    100,
		PoisonDuration:     10,
		PoisonTickInterval: 0.5,
		PoisonDamageFactor: 0.1,
		PoisonTint:         PoisonTint,

		SmokeRadius:   90,
		SmokeDuration: 4,
		SmokeCooldown: 6,
	}

	Combat = CombatConfig{
		DeathDuration:    1.0,
		FlashDuration:    0.1,
		HealthBarSeconds: 2,
	}

	Room = RoomConfig{
		TileSize:          32,
		TilesWidth:        15,
		TilesHeight:       11,
		BossTilesWidth:    21,
		BossTilesHeight:   15,
		DoorWidthTiles:    3,
		DoorTweenDuration: 0.25,
		PortalRadius:      24,
	}

	Dungeon = DungeonConfig{
		GridSize:        5,
		MinRooms:        6,
		MaxRooms:        10,
		RoomSpacing:     800,
		BossEvery:       3,
		SpecialRooms:    2,
		MaxAttempts:     16,
		BossFloorLevels: []int{6},
		BossFloorArena:  true,
	}

	Boss = BossConfig{
		TypeName:           "Warden",
		TransitionDuration: 1.5,
		Phases: []BossPhase{
			{Threshold: 1.0, Behavior: BehaviorMelee, SpeedMultiplier: 1, CooldownScale: 1},
			{Threshold: 0.66, Behavior: BehaviorMultiHit, SpeedMultiplier: 1.3, CooldownScale: 0.8, DamageReduction: 0.3, SummonType: "Slime", SummonCount: 2, Announce: "The Warden hardens its shell"},
			{Threshold: 0.33, Behavior: BehaviorRanged, SpeedMultiplier: 1.5, CooldownScale: 0.5, AttackRange: 260, SummonType: "Imp", SummonCount: 2, Announce: "The Warden retreats to the arena"},
		},
	}
}
