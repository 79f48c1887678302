package systems

import (
	"math"

	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/automoto/dungeonrush/shared/gamemath"
	"github.com/automoto/dungeonrush/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePlayer turns the player's intent into state changes, movement and
// attacks. Intents are consumed every frame, held or not.
func UpdatePlayer(ecs *ecs.ECS) {
	e, ok := FindPlayer(ecs.World)
	if !ok || !IsAlive(e) {
		return
	}
	player := components.Player.Get(e)
	char := components.Character.Get(e)
	physics := components.Physics.Get(e)
	intent := player.Intent
	player.Intent.Attack, player.Intent.Nova, player.Intent.Dash = false, false, false

	if CurrentState(e) == cfg.StateNone {
		SetState(ecs, e, cfg.Idle)
	}

	switch CurrentState(e) {
	case cfg.Hit:
		if char.HitstunTimer > 0 {
			return
		}
		SetState(ecs, e, cfg.Idle)
	case cfg.Skill:
		if components.State.Get(e).StateTimer < cfg.Frames(cfg.Player.NovaDuration) {
			return
		}
		SetState(ecs, e, cfg.Idle)
	case cfg.Dash:
		if player.DashTimer > 0 {
			movePlayer(ecs, e, physics.SpeedX, physics.SpeedY)
			return
		}
		SetState(ecs, e, cfg.Idle)
	}

	move := gamemath.Normalize(dmath.Vec2{X: intent.MoveX, Y: intent.MoveY})
	moving := move.X != 0 || move.Y != 0
	if moving {
		char.Facing = move
	}

	if intent.Dash && player.DashCooldown == 0 {
		dir := char.Facing
		if moving {
			dir = move
		}
		startDash(ecs, e, dir)
		return
	}
	if intent.Nova && castNova(ecs, e) {
		return
	}
	if intent.Attack && char.AttackCooldown == 0 {
		aim := gamemath.Normalize(dmath.Vec2{X: intent.AimX, Y: intent.AimY})
		if aim.X == 0 && aim.Y == 0 {
			aim = char.Facing
		}
		firePlayerShot(ecs, e, aim)
	}

	if !moving {
		physics.SpeedX, physics.SpeedY = 0, 0
		SetState(ecs, e, cfg.Idle)
		return
	}
	physics.SpeedX, physics.SpeedY = move.X*char.MoveSpeed, move.Y*char.MoveSpeed
	SetState(ecs, e, cfg.Move)
	movePlayer(ecs, e, physics.SpeedX, physics.SpeedY)
}

func movePlayer(ecs *ecs.ECS, e *donburi.Entry, vx, vy float64) {
	vx, vy = ConstrainMovement(ecs.World, Position(e), vx, vy, halfSize(e))
	moveBy(e, vx, vy)
}

func startDash(ecs *ecs.ECS, e *donburi.Entry, dir dmath.Vec2) {
	if dir.X == 0 && dir.Y == 0 {
		dir = dmath.Vec2{X: 1}
	}
	player := components.Player.Get(e)
	frames := cfg.Frames(cfg.Player.DashDuration)
	player.DashTimer = frames
	player.DashCooldown = cfg.Frames(cfg.Player.DashCooldown)
	player.InvulnFrames = max(player.InvulnFrames, frames)

	SetState(ecs, e, cfg.Dash)
	physics := components.Physics.Get(e)
	physics.SpeedX, physics.SpeedY = dir.X*cfg.Player.DashSpeed, dir.Y*cfg.Player.DashSpeed
	ServicesOf(ecs.World).Audio.PlaySFX(cfg.SoundDash)
	movePlayer(ecs, e, physics.SpeedX, physics.SpeedY)
}

// castNova spends MP on an area skill around the player. Without enough MP
// nothing happens.
func castNova(ecs *ecs.ECS, e *donburi.Entry) bool {
	player := components.Player.Get(e)
	cost := float64(cfg.Player.NovaCost)
	if player.MP < cost {
		return false
	}
	player.MP -= cost

	SetState(ecs, e, cfg.Skill)
	amount := int(math.Round(float64(components.Character.Get(e).Attack) * cfg.Player.NovaMultiplier))
	hits := Nova(ecs, e, Position(e), cfg.Player.NovaRadius, amount)
	svc := ServicesOf(ecs.World)
	svc.Audio.PlaySFX(cfg.SoundNova)
	svc.Logger.Debug("nova", "hits", hits, "mp", player.MP)
	return true
}

func firePlayerShot(ecs *ecs.ECS, e *donburi.Entry, dir dmath.Vec2) {
	char := components.Character.Get(e)
	char.AttackCooldown = cfg.Frames(cfg.Player.AttackCooldown)

	room := donburi.Null
	if d := dungeonOf(ecs.World); d != nil {
		room = d.Current
	}
	poison := 0
	if cfg.Player.VenomShots {
		poison = char.Attack
	}
	factory.CreateProjectile(ecs, factory.ProjectileSpec{
		Owner:        e.Entity(),
		FromPlayer:   true,
		Position:     Position(e),
		Velocity:     gamemath.Scale(dir, cfg.Player.ProjectileSpeed),
		Damage:       char.Attack,
		PoisonAttack: poison,
		Lifetime:     cfg.Frames(cfg.Player.ProjectileLifetime),
		Room:         room,
	})
	ServicesOf(ecs.World).Audio.PlaySFX(cfg.SoundShoot)
}
