package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TaskFunc receives the live owner entry; it must not capture entries of its own.
type TaskFunc func(e *ecs.ECS, self *donburi.Entry)

type Task struct {
	Due   uint64 // clock tick the task runs on
	Epoch uint32
	Group string
	Run   TaskFunc
}

// TasksData is the deferred work owned by one entity. Tasks whose epoch is
// older than Epoch are dropped without running.
type TasksData struct {
	Epoch   uint32
	Pending []Task
}

var Tasks = donburi.NewComponentType[TasksData]()
