package systems

import (
	"github.com/automoto/dungeonrush/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GroupAttack tags the tasks of a committed attack. Stagger and phase
// changes cancel them as a group.
const GroupAttack = "attack"

// Schedule queues run on e to execute delay frames from now. A delay of zero
// runs on the next tick. Entities without a task list get one.
func Schedule(ecs *ecs.ECS, e *donburi.Entry, delay int, group string, run components.TaskFunc) {
	if !e.HasComponent(components.Tasks) {
		donburi.Add(e, components.Tasks, &components.TasksData{})
	}
	tasks := components.Tasks.Get(e)
	tasks.Pending = append(tasks.Pending, components.Task{
		Due:   Now(ecs.World) + uint64(max(delay, 1)),
		Epoch: tasks.Epoch,
		Group: group,
		Run:   run,
	})
}

// CancelTasks drops every pending task of e.
func CancelTasks(e *donburi.Entry) {
	if !e.HasComponent(components.Tasks) {
		return
	}
	tasks := components.Tasks.Get(e)
	tasks.Epoch++
	tasks.Pending = tasks.Pending[:0]
}

// CancelGroup drops the pending tasks of e that belong to group.
func CancelGroup(e *donburi.Entry, group string) {
	if !e.HasComponent(components.Tasks) {
		return
	}
	tasks := components.Tasks.Get(e)
	kept := tasks.Pending[:0]
	for _, t := range tasks.Pending {
		if t.Group != group {
			kept = append(kept, t)
		}
	}
	tasks.Pending = kept
}

// PendingTasks reports how many tasks of group are queued on e. An empty
// group counts all of them.
func PendingTasks(e *donburi.Entry, group string) int {
	if !e.HasComponent(components.Tasks) {
		return 0
	}
	n := 0
	for _, t := range components.Tasks.Get(e).Pending {
		if group == "" || t.Group == group {
			n++
		}
	}
	return n
}

// UpdateTasks runs every task that is due. Owners are collected first so a
// task may spawn or remove entities. A task is dropped when its owner is
// gone or its epoch was cancelled, including by an earlier task this tick.
func UpdateTasks(ecs *ecs.ECS) {
	now := Now(ecs.World)

	var owners []donburi.Entity
	components.Tasks.Each(ecs.World, func(e *donburi.Entry) {
		if len(components.Tasks.Get(e).Pending) > 0 {
			owners = append(owners, e.Entity())
		}
	})

	for _, owner := range owners {
		e := entryOf(ecs.World, owner)
		if e == nil {
			continue
		}
		runDue(ecs, e, now)
	}
}

func runDue(ecs *ecs.ECS, e *donburi.Entry, now uint64) {
	tasks := components.Tasks.Get(e)

	var due []components.Task
	kept := tasks.Pending[:0]
	for _, t := range tasks.Pending {
		if t.Epoch != tasks.Epoch {
			continue
		}
		if t.Due <= now {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	tasks.Pending = kept

	for _, t := range due {
		if !e.Valid() {
			return
		}
		// Re-read: an earlier task may have cancelled the rest.
		if components.Tasks.Get(e).Epoch != t.Epoch {
			return
		}
		t.Run(ecs, e)
	}
}
