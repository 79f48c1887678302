package core

import (
	"math"

	"github.com/automoto/dungeonrush/components"
	"github.com/automoto/dungeonrush/shared/gamemath"
	"github.com/automoto/dungeonrush/systems"
	"github.com/automoto/dungeonrush/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

const (
	botKeepAway  = 140.0
	botAlignSlop = 4.0
	botNovaCount = 3
)

// Bot drives the player along the critical path, fighting whatever is in the
// way. It is used by the headless simulation.
type Bot struct {
	last  [2]int // grid cell of the last room the player stood in
	seen  bool
	level int
}

// Intent decides the player's input for the next frame.
func (b *Bot) Intent(g *Game) components.IntentData {
	player, ok := g.Player()
	d := g.Dungeon()
	if !ok || d == nil || !systems.IsAlive(player) {
		return components.IntentData{}
	}
	if b.level != g.Level() {
		*b = Bot{level: g.Level()}
	}
	pos := systems.Position(player)

	if room := roomEntry(g, d.Current); room != nil {
		r := components.Room.Get(room)
		b.last, b.seen = [2]int{r.GridX, r.GridY}, true
		if target := nearestEnemy(g.ECS.World, d.Current, pos); target != nil {
			return fightIntent(g, player, pos, target)
		}
	}

	if next, ok := b.nextCell(d); ok {
		from, to := roomEntry(g, d.Grid[b.last]), roomEntry(g, d.Grid[next])
		if from != nil && to != nil {
			return moveIntent(pos, doorwayWaypoint(pos, components.Room.Get(from), components.Room.Get(to)))
		}
	}
	exit := roomEntry(g, d.Exit)
	if exit == nil {
		return components.IntentData{}
	}
	return moveIntent(pos, components.Room.Get(exit).Center)
}

// nextCell is the cell after the last visited one on the critical path.
func (b *Bot) nextCell(d *components.DungeonData) ([2]int, bool) {
	if !b.seen {
		return [2]int{}, false
	}
	for i, cell := range d.CriticalPath {
		if cell == b.last && i+1 < len(d.CriticalPath) {
			return d.CriticalPath[i+1], true
		}
	}
	return [2]int{}, false
}

func roomEntry(g *Game, h donburi.Entity) *donburi.Entry {
	if h == donburi.Null || !g.ECS.World.Valid(h) {
		return nil
	}
	return g.ECS.World.Entry(h)
}

func nearestEnemy(w donburi.World, room donburi.Entity, pos dmath.Vec2) *donburi.Entry {
	var best *donburi.Entry
	bestDist := math.Inf(1)
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if !systems.IsAlive(e) || components.Enemy.Get(e).Room != room {
			return
		}
		if dist := gamemath.Distance(pos, systems.Position(e)); dist < bestDist {
			best, bestDist = e, dist
		}
	})
	return best
}

func fightIntent(g *Game, player *donburi.Entry, pos dmath.Vec2, target *donburi.Entry) components.IntentData {
	tpos := systems.Position(target)
	aim := gamemath.Direction(pos, tpos)
	intent := components.IntentData{AimX: aim.X, AimY: aim.Y, Attack: true}

	near := systems.QueryNearby(g.ECS.World, pos, botKeepAway, tags.ResolvEnemy)
	if len(near) >= botNovaCount {
		intent.Nova = true
	}
	if gamemath.Distance(pos, tpos) < botKeepAway/2 {
		intent.MoveX, intent.MoveY = -aim.X, -aim.Y
		intent.Dash = components.Player.Get(player).InvulnFrames == 0
	}
	return intent
}

// doorwayWaypoint lines the player up with the door between from and to
// before walking through it.
func doorwayWaypoint(pos dmath.Vec2, from, to *components.RoomData) dmath.Vec2 {
	if from.GridY == to.GridY {
		if math.Abs(pos.Y-from.Center.Y) > botAlignSlop && from.Contains(pos) {
			return dmath.Vec2{X: pos.X, Y: from.Center.Y}
		}
		return dmath.Vec2{X: to.Center.X, Y: from.Center.Y}
	}
	if math.Abs(pos.X-from.Center.X) > botAlignSlop && from.Contains(pos) {
		return dmath.Vec2{X: from.Center.X, Y: pos.Y}
	}
	return dmath.Vec2{X: from.Center.X, Y: to.Center.Y}
}

func moveIntent(pos, to dmath.Vec2) components.IntentData {
	dir := gamemath.Direction(pos, to)
	return components.IntentData{MoveX: dir.X, MoveY: dir.Y}
}
