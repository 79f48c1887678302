package systems

import "github.com/yohamta/donburi/ecs"

// AddGameplaySystems registers the simulation in its fixed order. Timers run
// before any decision reads them and combat resolves every hit queued
// earlier in the frame.
func AddGameplaySystems(e *ecs.ECS) {
	e.AddSystem(UpdateClock)
	e.AddSystem(UpdateTimers)
	e.AddSystem(UpdateTasks)
	e.AddSystem(UpdateStatus)
	e.AddSystem(UpdatePlayer)
	e.AddSystem(UpdateBosses)
	e.AddSystem(UpdateEnemies)
	e.AddSystem(UpdateProjectiles)
	e.AddSystem(UpdateCombat)
	e.AddSystem(UpdateDeaths)
	e.AddSystem(UpdateRooms)
	e.AddSystem(UpdateAnimations)
	e.AddSystem(UpdateAudio)
}
