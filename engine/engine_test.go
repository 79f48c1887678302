package engine

import (
	"testing"

	"github.com/automoto/dungeonrush/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestClipPlayerUnknownClip(t *testing.T) {
	p := NewClipPlayer(map[string]int{"slime_idle": 4})
	target := donburi.Entity(1)

	err := p.Play(target, "slime_dance", false)
	require.ErrorIs(t, err, ErrClipNotFound)
	assert.False(t, p.IsPlaying(target, "slime_dance"))
}

func TestClipPlayerOneShotFinishes(t *testing.T) {
	p := NewClipPlayer(map[string]int{"hit": 3, "idle": 2})
	a, b := donburi.Entity(1), donburi.Entity(2)
	require.NoError(t, p.Play(a, "hit", false))
	require.NoError(t, p.Play(b, "idle", true))

	for range 3 {
		p.Advance(nil)
	}

	assert.False(t, p.IsPlaying(a, "hit"))
	assert.True(t, p.IsPlaying(b, "idle"), "looping clips keep playing")
}

func TestClipPlayerPrunesInvalidTargets(t *testing.T) {
	p := NewClipPlayer(map[string]int{"idle": 10})
	a, b := donburi.Entity(1), donburi.Entity(2)
	require.NoError(t, p.Play(a, "idle", true))
	require.NoError(t, p.Play(b, "idle", true))

	p.Advance(func(e donburi.Entity) bool { return e == b })

	assert.Equal(t, 1, p.Len())
	clip, ok := p.Current(b)
	assert.True(t, ok)
	assert.Equal(t, "idle", clip)
}

func TestClipPlayerStopOnlyMatchingClip(t *testing.T) {
	p := NewClipPlayer(map[string]int{"idle": 10})
	a := donburi.Entity(1)
	require.NoError(t, p.Play(a, "idle", true))

	p.Stop(a, "move")
	assert.True(t, p.IsPlaying(a, "idle"))
	p.Stop(a, "idle")
	assert.False(t, p.IsPlaying(a, "idle"))
}

func TestQueueAudioCollapsesDuplicates(t *testing.T) {
	a := NewQueueAudio(NewServices(nil, 1).Logger)
	a.PlaySFX(config.SoundHit)
	a.PlaySFX(config.SoundHit)
	a.PlaySFX(config.SoundNone)
	a.PlaySFX(config.SoundDeath)
	assert.Len(t, a.Pending(), 2)

	a.Flush()
	assert.Empty(t, a.Pending())
	assert.Equal(t, 1, a.Played(config.SoundHit))
	assert.Equal(t, 1, a.Played(config.SoundDeath))

	a.PlayBGM(config.MusicBoss, true)
	assert.Equal(t, config.MusicBoss, a.Music())
}

func TestPlayClipFallsBack(t *testing.T) {
	s := NewServices(nil, 1)
	target := donburi.Entity(3)

	s.PlayClip(target, "turret_move", true)

	assert.True(t, s.Animation.IsPlaying(target, config.FallbackClip))
}
