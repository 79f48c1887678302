package config

import "image/color"

// defaultEnemyTypes is the archetype table. Every archetype is one row of
// numbers plus a behavior kind; there is no per-archetype code.
func defaultEnemyTypes() map[string]EnemyTypeConfig {
	types := map[string]EnemyTypeConfig{
		"Slime": {
			SpriteKey: "slime", Behavior: BehaviorMelee,
			Health: 30, Attack: 8, MoveSpeed: 1.0,
			SightRange: 260, AttackRange: 40, AttackWindup: 0.4, AttackCooldown: 1.2, Recovery: 0.25,
			HitstunDuration: 0.2, PatrolRadius: 96, PatrolInterval: 3,
			CollisionSize: 24, Staggerable: true, CountsForRoomClear: true,
			MarkedSpawn: "MiniSlime",
			TintColor:   color.RGBA{R: 140, G: 220, B: 140, A: 255},
		},
		"MiniSlime": {
			SpriteKey: "slime", Behavior: BehaviorMelee,
			Health: 10, Attack: 4, MoveSpeed: 1.6,
			SightRange: 260, AttackRange: 30, AttackWindup: 0.3, AttackCooldown: 0.9, Recovery: 0.2,
			HitstunDuration: 0.2, PatrolRadius: 64, PatrolInterval: 2,
			CollisionSize: 14, Staggerable: true, CountsForRoomClear: true,
			TintColor: color.RGBA{R: 180, G: 240, B: 180, A: 255},
		},
		"BigSlime": {
			SpriteKey: "slime", Behavior: BehaviorMelee,
			Health: 60, Attack: 14, MoveSpeed: 0.7,
			SightRange: 240, AttackRange: 48, AttackWindup: 0.6, AttackCooldown: 1.6, Recovery: 0.3,
			HitstunDuration: 0.1, PatrolRadius: 64, PatrolInterval: 4,
			CollisionSize: 36, CountsForRoomClear: true,
			SplitInto: "Slime", SplitCount: 2,
			TintColor: color.RGBA{R: 100, G: 200, B: 100, A: 255},
		},
		"Goblin": {
			SpriteKey: "goblin", Behavior: BehaviorMelee,
			Health: 25, Attack: 10, MoveSpeed: 1.8,
			SightRange: 300, AttackRange: 50, AttackWindup: 0.5, AttackCooldown: 1.5, Recovery: 0.25,
			HitstunDuration: 0.25, PatrolRadius: 128, PatrolInterval: 2.5,
			CollisionSize: 22, Staggerable: true, CountsForRoomClear: true,
			TintColor: White,
		},
		"Knight": {
			SpriteKey: "knight", Behavior: BehaviorMelee,
			Health: 70, Attack: 18, MoveSpeed: 1.1,
			SightRange: 280, AttackRange: 56, AttackWindup: 0.7, AttackCooldown: 1.8, Recovery: 0.4,
			HitstunDuration: 0.1, PatrolRadius: 96, PatrolInterval: 4,
			CollisionSize: 28, DamageReduction: 0.4, CountsForRoomClear: true,
			TintColor: White,
		},
		"Skeleton": {
			SpriteKey: "skeleton", Behavior: BehaviorMelee,
			Health: 35, Attack: 12, MoveSpeed: 1.4,
			SightRange: 280, AttackRange: 48, AttackWindup: 0.5, AttackCooldown: 1.4, Recovery: 0.25,
			HitstunDuration: 0.2, PatrolRadius: 96, PatrolInterval: 3,
			CollisionSize: 22, Staggerable: true, CountsForRoomClear: true,
			MarkedSpawn: "Ghost",
			TintColor:   White,
		},
		"Ghost": {
			SpriteKey: "ghost", Behavior: BehaviorMelee,
			Health: 3, Attack: 9, MoveSpeed: 1.5,
			SightRange: 320, AttackRange: 36, AttackWindup: 0.45, AttackCooldown: 1.3, Recovery: 0.25,
			HitstunDuration: 0.3, PatrolRadius: 128, PatrolInterval: 2,
			CollisionSize: 20, OneDamagePerHit: true, Staggerable: true, CountsForRoomClear: true,
			TintColor: color.RGBA{R: 200, G: 200, B: 255, A: 200},
		},
		"Decoy": {
			SpriteKey: "decoy", Behavior: BehaviorMelee,
			Health: 4, Attack: 2, MoveSpeed: 0.8,
			SightRange: 200, AttackRange: 32, AttackWindup: 0.6, AttackCooldown: 2, Recovery: 0.3,
			HitstunDuration: 0.3, PatrolRadius: 96, PatrolInterval: 2,
			CollisionSize: 20, OneDamagePerHit: true, Staggerable: true,
			TintColor: color.RGBA{R: 220, G: 220, B: 160, A: 255},
		},
		"Archer": {
			SpriteKey: "archer", Behavior: BehaviorRanged,
			Health: 20, Attack: 9, MoveSpeed: 1.2,
			SightRange: 360, AttackRange: 240, AttackWindup: 0.6, AttackCooldown: 2, Recovery: 0.3,
			HitstunDuration: 0.25, PatrolRadius: 96, PatrolInterval: 3,
			CollisionSize: 22, Staggerable: true, CountsForRoomClear: true, BulletSpeed: 4.5,
			TintColor: White,
		},
		"Spitter": {
			SpriteKey: "spitter", Behavior: BehaviorRanged,
			Health: 22, Attack: 6, MoveSpeed: 1.0,
			SightRange: 340, AttackRange: 220, AttackWindup: 0.5, AttackCooldown: 2.2, Recovery: 0.3,
			HitstunDuration: 0.25, PatrolRadius: 96, PatrolInterval: 3,
			CollisionSize: 22, Staggerable: true, CountsForRoomClear: true, BulletSpeed: 3.5,
			PoisonOnHit: true,
			TintColor:   color.RGBA{R: 160, G: 255, B: 120, A: 255},
		},
		"Imp": {
			SpriteKey: "imp", Behavior: BehaviorRanged,
			Health: 18, Attack: 8, MoveSpeed: 2.0,
			SightRange: 360, AttackRange: 200, AttackWindup: 0.35, AttackCooldown: 1.4, Recovery: 0.2,
			HitstunDuration: 0.2, PatrolRadius: 160, PatrolInterval: 1.5,
			CollisionSize: 18, Staggerable: true, CountsForRoomClear: true, BulletSpeed: 5.5,
			TintColor: color.RGBA{R: 255, G: 160, B: 120, A: 255},
		},
		"Turret": {
			SpriteKey: "turret", Behavior: BehaviorTurret,
			Health: 40, Attack: 10, MoveSpeed: 0,
			SightRange: 380, AttackRange: 380, AttackWindup: 0.8, AttackCooldown: 2.4, Recovery: 0.3,
			CollisionSize: 28, DamageReduction: 0.2, CountsForRoomClear: true, BulletSpeed: 5,
			TintColor: White,
		},
		"Bomber": {
			SpriteKey: "bomber", Behavior: BehaviorSelfDestruct,
			Health: 15, Attack: 30, MoveSpeed: 2.2,
			SightRange: 300, AttackRange: 36, AttackWindup: 0.8, AttackCooldown: 1, Recovery: 0.2,
			HitstunDuration: 0.1, PatrolRadius: 96, PatrolInterval: 2,
			CollisionSize: 20, CountsForRoomClear: true, ExplosionRadius: 80,
			TintColor: color.RGBA{R: 255, G: 120, B: 80, A: 255},
		},
		"FireSpirit": {
			SpriteKey: "firespirit", Behavior: BehaviorExplosion,
			Health: 28, Attack: 12, MoveSpeed: 1.5,
			SightRange: 300, AttackRange: 44, AttackWindup: 0.5, AttackCooldown: 2, Recovery: 0.3,
			HitstunDuration: 0.15, PatrolRadius: 128, PatrolInterval: 2,
			CollisionSize: 22, Staggerable: true, CountsForRoomClear: true, ExplosionRadius: 70,
			TintColor: color.RGBA{R: 255, G: 200, B: 90, A: 255},
		},
		"Berserker": {
			SpriteKey: "berserker", Behavior: BehaviorMultiHit,
			Health: 55, Attack: 7, MoveSpeed: 1.7,
			SightRange: 300, AttackRange: 52, AttackWindup: 0.45, AttackCooldown: 2.2, Recovery: 0.3,
			HitstunDuration: 0.1, PatrolRadius: 96, PatrolInterval: 3,
			CollisionSize: 26, CountsForRoomClear: true, HitCount: 3, HitInterval: 0.15,
			TintColor: color.RGBA{R: 255, G: 140, B: 140, A: 255},
		},
		"Shade": {
			SpriteKey: "shade", Behavior: BehaviorMelee,
			Health: 26, Attack: 11, MoveSpeed: 1.9,
			SightRange: 320, AttackRange: 44, AttackWindup: 0.4, AttackCooldown: 1.4, Recovery: 0.25,
			HitstunDuration: 0.2, PatrolRadius: 128, PatrolInterval: 2,
			CollisionSize: 20, Staggerable: true, CountsForRoomClear: true, SmokeOnHit: true,
			TintColor: color.RGBA{R: 150, G: 120, B: 200, A: 255},
		},
		"Totem": {
			SpriteKey: "totem", Behavior: BehaviorSupport,
			Health: 20, Attack: 0, MoveSpeed: 0,
			SightRange:    320,
			CollisionSize: 24, SmokeInterval: 7,
			TintColor: color.RGBA{R: 200, G: 170, B: 120, A: 255},
		},
		"Warden": {
			SpriteKey: "warden", Behavior: BehaviorBoss,
			Health: 400, Attack: 16, MoveSpeed: 1.2,
			SightRange: 600, AttackRange: 64, AttackWindup: 0.7, AttackCooldown: 1.6, Recovery: 0.35,
			PatrolRadius: 96, PatrolInterval: 3,
			CollisionSize: 48, CountsForRoomClear: true,
			HitCount: 4, HitInterval: 0.2, BulletSpeed: 5, ExplosionRadius: 96,
			TintColor: White,
		},
	}
	for name, t := range types {
		t.Name = name
		types[name] = t
	}
	return types
}
