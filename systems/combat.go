package systems

import (
	"math"

	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/automoto/dungeonrush/systems/factory"
	"github.com/automoto/dungeonrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// QueueDamage records a hit for UpdateCombat to apply this frame.
func QueueDamage(e *donburi.Entry, hit components.Hit) {
	if e == nil || !e.Valid() {
		return
	}
	if !e.HasComponent(components.DamageEvent) {
		donburi.Add(e, components.DamageEvent, &components.DamageEventData{})
	}
	ev := components.DamageEvent.Get(e)
	ev.Hits = append(ev.Hits, hit)
}

// TakeDamage applies one hit and returns the health lost. Dead, dying and
// invulnerable targets are not affected. Damage reduction scales the hit,
// one-damage archetypes take exactly one point, and a shield absorbs before
// health. Status damage skips reduction and on-hit reactions.
func TakeDamage(ecs *ecs.ECS, e *donburi.Entry, hit components.Hit) int {
	if !IsAlive(e) || !e.HasComponent(components.Health) {
		return 0
	}
	if isInvulnerable(e) {
		return 0
	}
	if hit.Skill && IsStealthed(e) {
		return 0
	}

	amount := hit.Amount
	if !hit.Pure && e.HasComponent(components.Character) {
		reduction := components.Character.Get(e).DamageReduction
		amount = int(math.Round(float64(amount) * (1 - reduction)))
	}
	if amount > 0 && e.HasComponent(components.Enemy) {
		if tc := components.Enemy.Get(e).TypeConfig; tc != nil && tc.OneDamagePerHit {
			amount = 1
		}
	}
	if amount <= 0 {
		return 0
	}

	if e.HasComponent(components.Shield) {
		shield := components.Shield.Get(e)
		absorbed := min(shield.Amount, amount)
		shield.Amount -= absorbed
		amount -= absorbed
	}

	hp := components.Health.Get(e)
	lost := min(amount, hp.Current)
	hp.Current -= lost

	if e.HasComponent(tags.Enemy) {
		setOrAdd(e, components.HealthBar, components.HealthBarData{
			TimeToLive: cfg.Frames(cfg.Combat.HealthBarSeconds),
		})
	}
	setOrAdd(e, components.Flash, components.FlashData{Duration: cfg.Frames(cfg.Combat.FlashDuration)})

	if hit.Pure {
		return lost
	}

	svc := ServicesOf(ecs.World)
	svc.Audio.PlaySFX(cfg.SoundHit)
	if hit.PoisonAttack > 0 {
		ApplyPoison(ecs, e, hit.PoisonAttack)
	}
	if hp.Current > 0 {
		reactToHit(ecs, e)
	}
	return lost
}

// setOrAdd refreshes a transient component, adding it when missing.
func setOrAdd[T any](e *donburi.Entry, c *donburi.ComponentType[T], v T) {
	if e.HasComponent(c) {
		c.SetValue(e, v)
		return
	}
	donburi.Add(e, c, &v)
}

func isInvulnerable(e *donburi.Entry) bool {
	if e.HasComponent(components.Player) && components.Player.Get(e).InvulnFrames > 0 {
		return true
	}
	if e.HasComponent(components.Boss) && components.Boss.Get(e).TransitionTimer > 0 {
		return true
	}
	return false
}

func reactToHit(ecs *ecs.ECS, e *donburi.Entry) {
	char := components.Character.Get(e)

	if e.HasComponent(components.Player) {
		player := components.Player.Get(e)
		player.InvulnFrames = cfg.Frames(cfg.Player.InvulnDuration)
		if CurrentState(e) != cfg.Dash {
			char.HitstunTimer = cfg.Frames(cfg.Player.HitstunDuration)
			SetState(ecs, e, cfg.Hit)
		}
		return
	}

	enemy := components.Enemy.Get(e)
	tc := enemy.TypeConfig
	if tc == nil {
		return
	}
	if tc.Staggerable {
		// Stagger interrupts a committed attack.
		CancelGroup(e, GroupAttack)
		char.HitstunTimer = cfg.Frames(tc.HitstunDuration)
		enemy.Mode = cfg.ModeIdle
		SetState(ecs, e, cfg.Hit)
	}
	if tc.SmokeOnHit && enemy.SmokeCooldown == 0 {
		enemy.SmokeCooldown = cfg.Frames(cfg.Status.SmokeCooldown)
		spawnSmoke(ecs, Position(e), enemy.Room)
	}
}

func spawnSmoke(ecs *ecs.ECS, pos dmath.Vec2, room donburi.Entity) {
	cloud := factory.CreateSmoke(ecs, pos, cfg.Status.SmokeRadius, room)
	svc := ServicesOf(ecs.World)
	svc.PlayClip(cloud.Entity(), cfg.ClipSmoke, true)
	svc.Audio.PlaySFX(cfg.SoundSmoke)
}

func spawnEffect(ecs *ecs.ECS, pos dmath.Vec2, clip string) {
	fx := factory.CreateEffect(ecs, pos, clip)
	ServicesOf(ecs.World).PlayClip(fx.Entity(), clip, false)
}

// UpdateCombat applies queued hits, keeps health within range and starts
// the death sequence of anything that reached zero this frame.
func UpdateCombat(ecs *ecs.ECS) {
	var hurt []*donburi.Entry
	components.DamageEvent.Each(ecs.World, func(e *donburi.Entry) {
		hurt = append(hurt, e)
	})
	for _, e := range hurt {
		if !e.Valid() {
			continue
		}
		hits := components.DamageEvent.Get(e).Hits
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
		for _, hit := range hits {
			TakeDamage(ecs, e, hit)
		}
	}

	var dying []*donburi.Entry
	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		hp := components.Health.Get(e)
		if hp.Current < 0 {
			hp.Current = 0
		}
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}
		if hp.Current == 0 && !e.HasComponent(components.Death) {
			dying = append(dying, e)
		}
	})
	for _, e := range dying {
		startDeathSequence(ecs, e)
	}
}

// Kill starts the death sequence of e immediately.
func Kill(ecs *ecs.ECS, e *donburi.Entry) {
	if e == nil || !e.Valid() || e.HasComponent(components.Death) {
		return
	}
	components.Health.Get(e).Current = 0
	startDeathSequence(ecs, e)
}

func startDeathSequence(ecs *ecs.ECS, e *donburi.Entry) {
	svc := ServicesOf(ecs.World)
	svc.Audio.PlaySFX(cfg.SoundDeath)

	CancelTasks(e)
	SetState(ecs, e, cfg.Die)
	donburi.Add(e, components.Death, &components.DeathData{Timer: cfg.Frames(cfg.Combat.DeathDuration)})

	if e.HasComponent(components.Physics) {
		physics := components.Physics.Get(e)
		physics.SpeedX, physics.SpeedY = 0, 0
	}
	if e.HasComponent(components.Poison) {
		*components.Poison.Get(e) = components.PoisonData{}
	}

	if e.HasComponent(components.Enemy) {
		enemy := components.Enemy.Get(e)
		svc.Logger.Debug("enemy died", "type", enemy.TypeName, "red_marked", enemy.RedMarked)
		spawnDerived(ecs, e, enemy)
	} else if e.HasComponent(tags.Player) {
		svc.Logger.Info("player died")
	}
}

// spawnDerived places split children and red-mark spawns into the dying
// enemy's room as soon as the death starts.
func spawnDerived(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData) {
	tc := enemy.TypeConfig
	if tc == nil {
		return
	}
	pos := Position(e)
	var spawns []string
	for range tc.SplitCount {
		if tc.SplitInto != "" {
			spawns = append(spawns, tc.SplitInto)
		}
	}
	if enemy.RedMarked && tc.MarkedSpawn != "" {
		spawns = append(spawns, tc.MarkedSpawn)
	}

	for i, name := range spawns {
		angle := 2 * math.Pi * float64(i) / float64(len(spawns))
		offset := dmath.Vec2{X: pos.X + math.Cos(angle)*tc.CollisionSize, Y: pos.Y + math.Sin(angle)*tc.CollisionSize}
		child := factory.CreateEnemy(ecs, name, offset, enemy.Room, false)
		if child != nil {
			SetState(ecs, child, cfg.Idle)
		}
	}
}
