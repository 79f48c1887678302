package systems

import (
	"github.com/automoto/dungeonrush/components"
	cfg "github.com/automoto/dungeonrush/config"
	"github.com/automoto/dungeonrush/systems/factory"
	"github.com/automoto/dungeonrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateBosses advances boss phases by health fraction and ends phase
// transitions.
func UpdateBosses(ecs *ecs.ECS) {
	var bosses []*donburi.Entry
	tags.Boss.Each(ecs.World, func(e *donburi.Entry) {
		bosses = append(bosses, e)
	})

	for _, e := range bosses {
		if !IsAlive(e) {
			continue
		}
		boss := components.Boss.Get(e)
		if CurrentState(e) == cfg.Skill && boss.TransitionTimer == 0 {
			SetState(ecs, e, cfg.Idle)
		}

		hp := components.Health.Get(e)
		frac := hp.Fraction()
		for boss.Phase+1 < len(cfg.Boss.Phases) && frac <= cfg.Boss.Phases[boss.Phase+1].Threshold {
			boss.Phase++
			enterPhase(ecs, e, boss)
		}
	}
}

// ApplyBossPhase sets the combat numbers of a phase without the transition.
func ApplyBossPhase(e *donburi.Entry, phase int) {
	if phase < 0 || phase >= len(cfg.Boss.Phases) {
		return
	}
	p := cfg.Boss.Phases[phase]
	boss := components.Boss.Get(e)
	enemy := components.Enemy.Get(e)
	char := components.Character.Get(e)

	enemy.Behavior = p.Behavior
	char.MoveSpeed = boss.BaseSpeed * p.SpeedMultiplier
	enemy.CooldownFrames = cfg.Frames(boss.BaseCooldown * p.CooldownScale)
	char.DamageReduction = min(0.95, boss.BaseReduction+p.DamageReduction)
	enemy.AttackRange = boss.BaseAttackRange
	if p.AttackRange > 0 {
		enemy.AttackRange = p.AttackRange
	}
}

func enterPhase(ecs *ecs.ECS, e *donburi.Entry, boss *components.BossData) {
	svc := ServicesOf(ecs.World)
	phase := cfg.Boss.Phases[boss.Phase]
	enemy := components.Enemy.Get(e)

	ApplyBossPhase(e, boss.Phase)
	CancelGroup(e, GroupAttack)
	enemy.Mode = cfg.ModeIdle
	boss.TransitionTimer = cfg.Frames(cfg.Boss.TransitionDuration)
	SetState(ecs, e, cfg.Skill)
	svc.Audio.PlaySFX(cfg.SoundBossPhase)
	svc.Logger.Info("boss phase", "phase", boss.Phase, "announce", phase.Announce)

	if boss.Phase == len(cfg.Boss.Phases)-1 {
		relocateToArena(ecs, e, boss)
	}

	pos := Position(e)
	for i := range phase.SummonCount {
		offset := dmath.Vec2{X: pos.X + float64(i*2-phase.SummonCount+1)*48, Y: pos.Y + 64}
		if add := factory.CreateEnemy(ecs, phase.SummonType, offset, enemy.Room, false); add != nil {
			SetState(ecs, add, cfg.Idle)
		}
	}
}

// relocateToArena moves the boss into the arena room roster on floors that
// have one.
func relocateToArena(ecs *ecs.ECS, e *donburi.Entry, boss *components.BossData) {
	d := dungeonOf(ecs.World)
	if d == nil || boss.Relocated {
		return
	}
	arena := roomOf(ecs.World, d.Arena)
	if arena == nil {
		return
	}
	enemy := components.Enemy.Get(e)
	if from := roomOf(ecs.World, enemy.Room); from != nil {
		from.Enemies = removeHandle(from.Enemies, e.Entity())
	}
	arena.Enemies = append(arena.Enemies, e.Entity())
	enemy.Room = d.Arena
	enemy.Home = arena.Center
	enemy.PatrolTarget = arena.Center
	components.Object.Get(e).SetCenter(arena.Center)
	boss.Relocated = true
}
