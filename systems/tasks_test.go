package systems

import (
	"testing"

	"github.com/automoto/dungeonrush/components"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestScheduledTasksRunWhenDue(t *testing.T) {
	f := newFixture(t, nil)
	e := f.enemy("Goblin", roomCenter)
	var ran []int

	Schedule(f.ecs, e, 3, "a", func(*ecs.ECS, *donburi.Entry) { ran = append(ran, 3) })
	Schedule(f.ecs, e, 0, "a", func(*ecs.ECS, *donburi.Entry) { ran = append(ran, 1) })

	UpdateClock(f.ecs)
	UpdateTasks(f.ecs)
	assert.Equal(t, []int{1}, ran, "zero delay runs on the next tick")

	for range 2 {
		UpdateClock(f.ecs)
		UpdateTasks(f.ecs)
	}
	assert.Equal(t, []int{1, 3}, ran)
	assert.Zero(t, PendingTasks(e, ""))
}

func TestCancelTasksDropsEverything(t *testing.T) {
	f := newFixture(t, nil)
	e := f.enemy("Goblin", roomCenter)
	ran := false
	Schedule(f.ecs, e, 1, "a", func(*ecs.ECS, *donburi.Entry) { ran = true })
	epoch := components.Tasks.Get(e).Epoch

	CancelTasks(e)
	UpdateClock(f.ecs)
	UpdateTasks(f.ecs)

	assert.False(t, ran)
	assert.Equal(t, epoch+1, components.Tasks.Get(e).Epoch)
}

func TestTaskCancellingLaterTasks(t *testing.T) {
	f := newFixture(t, nil)
	e := f.enemy("Goblin", roomCenter)
	second := false
	Schedule(f.ecs, e, 1, "a", func(_ *ecs.ECS, self *donburi.Entry) { CancelTasks(self) })
	Schedule(f.ecs, e, 1, "b", func(*ecs.ECS, *donburi.Entry) { second = true })

	UpdateClock(f.ecs)
	UpdateTasks(f.ecs)

	assert.False(t, second, "an earlier task cancelled it this tick")
}

func TestCancelGroupKeepsOtherGroups(t *testing.T) {
	f := newFixture(t, nil)
	e := f.enemy("Goblin", roomCenter)
	noop := func(*ecs.ECS, *donburi.Entry) {}
	Schedule(f.ecs, e, 5, GroupAttack, noop)
	Schedule(f.ecs, e, 5, GroupAttack, noop)
	Schedule(f.ecs, e, 5, "other", noop)

	CancelGroup(e, GroupAttack)

	assert.Zero(t, PendingTasks(e, GroupAttack))
	assert.Equal(t, 1, PendingTasks(e, ""))
}

func TestTasksDieWithTheirOwner(t *testing.T) {
	f := newFixture(t, nil)
	e := f.enemy("Goblin", roomCenter)
	ran := false
	Schedule(f.ecs, e, 1, "a", func(*ecs.ECS, *donburi.Entry) { ran = true })

	f.ecs.World.Remove(e.Entity())
	UpdateClock(f.ecs)
	UpdateTasks(f.ecs)

	assert.False(t, ran)
}
