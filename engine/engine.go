// Package engine defines the collaborators the simulation calls into but does
// not own: animation playback and audio. The defaults are headless so the
// simulation runs the same under ebiten, the CLI and tests.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/automoto/dungeonrush/engine AnimationPlayer,AudioPlayer

import (
	"errors"
	"io"
	"log/slog"
	"math/rand"

	"github.com/automoto/dungeonrush/config"
	"github.com/yohamta/donburi"
)

// ErrClipNotFound is returned by Play when the clip library has no such clip.
var ErrClipNotFound = errors.New("animation clip not found")

// AnimationPlayer plays clips on entities.
type AnimationPlayer interface {
	Play(target donburi.Entity, clip string, loop bool) error
	IsPlaying(target donburi.Entity, clip string) bool
	Stop(target donburi.Entity, clip string)
}

// AudioPlayer is fire-and-forget.
type AudioPlayer interface {
	PlaySFX(id config.SoundID)
	PlayBGM(id config.MusicID, loop bool)
}

// Advancer is implemented by animation players that keep their own timeline.
type Advancer interface {
	Advance(valid func(donburi.Entity) bool)
}

// Resetter is implemented by animation players that drop every timeline
// when a level is torn down.
type Resetter interface {
	Reset()
}

// Flusher is implemented by audio players that buffer requests per frame.
type Flusher interface {
	Flush()
}

// Services bundles the collaborators handed to systems.
type Services struct {
	Animation AnimationPlayer
	Audio     AudioPlayer
	Logger    *slog.Logger
	Rand      *rand.Rand
}

// NewServices builds the headless defaults.
func NewServices(logger *slog.Logger, seed int64) *Services {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Services{
		Animation: NewClipPlayer(config.ClipLibrary()),
		Audio:     NewQueueAudio(logger),
		Logger:    logger,
		Rand:      rand.New(rand.NewSource(seed)),
	}
}

// PlayClip plays clip on target. A missing clip is logged and replaced by
// config.FallbackClip; game logic never waits on animations.
func (s *Services) PlayClip(target donburi.Entity, clip string, loop bool) {
	err := s.Animation.Play(target, clip, loop)
	if err == nil {
		return
	}
	s.Logger.Warn("animation unavailable, using fallback", "clip", clip, "error", err)
	if err := s.Animation.Play(target, config.FallbackClip, loop); err != nil {
		s.Logger.Error("fallback animation failed", "error", err)
	}
}
