package systems

import (
	"github.com/automoto/dungeonrush/engine"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAudio drains the frame's sound requests.
func UpdateAudio(ecs *ecs.ECS) {
	if f, ok := ServicesOf(ecs.World).Audio.(engine.Flusher); ok {
		f.Flush()
	}
}
