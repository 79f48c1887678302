package engine

import (
	"log/slog"

	"github.com/automoto/dungeonrush/config"
)

// QueueAudio buffers sound requests for one frame and drains them into a
// log sink. Duplicate effects within a frame are collapsed.
type QueueAudio struct {
	logger  *slog.Logger
	pending []config.SoundID
	music   config.MusicID
	looping bool
	played  map[config.SoundID]int
}

func NewQueueAudio(logger *slog.Logger) *QueueAudio {
	return &QueueAudio{
		logger: logger.With("component", "audio"),
		played: make(map[config.SoundID]int),
	}
}

func (a *QueueAudio) PlaySFX(id config.SoundID) {
	if id == config.SoundNone {
		return
	}
	for _, p := range a.pending {
		if p == id {
			return
		}
	}
	a.pending = append(a.pending, id)
}

func (a *QueueAudio) PlayBGM(id config.MusicID, loop bool) {
	if id == a.music {
		return
	}
	a.music = id
	a.looping = loop
	a.logger.Debug("music", "track", id.String(), "loop", loop)
}

// Flush drains the pending effects.
func (a *QueueAudio) Flush() {
	for _, id := range a.pending {
		a.played[id]++
		a.logger.Debug("sfx", "sound", id.String())
	}
	a.pending = a.pending[:0]
}

// Pending returns the effects queued since the last Flush. Systems flush
// at the end of every tick, so outside a frame this is only useful in tests.
func (a *QueueAudio) Pending() []config.SoundID {
	return a.pending
}

// Played returns how many times id has been flushed.
func (a *QueueAudio) Played(id config.SoundID) int {
	return a.played[id]
}

// Music returns the current background track.
func (a *QueueAudio) Music() config.MusicID {
	return a.music
}
