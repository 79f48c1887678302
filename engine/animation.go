package engine

import (
	"fmt"

	"github.com/yohamta/donburi"
)

type playback struct {
	clip   string
	frame  int
	length int
	loop   bool
}

// ClipPlayer is a frame timeline per entity over a fixed clip library.
// One clip plays per entity; a new Play replaces the previous clip.
type ClipPlayer struct {
	library map[string]int
	playing map[donburi.Entity]*playback
}

func NewClipPlayer(library map[string]int) *ClipPlayer {
	return &ClipPlayer{
		library: library,
		playing: make(map[donburi.Entity]*playback),
	}
}

func (p *ClipPlayer) Play(target donburi.Entity, clip string, loop bool) error {
	length, ok := p.library[clip]
	if !ok {
		return fmt.Errorf("%w: %s", ErrClipNotFound, clip)
	}
	p.playing[target] = &playback{clip: clip, length: length, loop: loop}
	return nil
}

func (p *ClipPlayer) IsPlaying(target donburi.Entity, clip string) bool {
	pb, ok := p.playing[target]
	return ok && pb.clip == clip
}

func (p *ClipPlayer) Stop(target donburi.Entity, clip string) {
	if pb, ok := p.playing[target]; ok && pb.clip == clip {
		delete(p.playing, target)
	}
}

// Current returns the clip playing on target, if any.
func (p *ClipPlayer) Current(target donburi.Entity) (string, bool) {
	pb, ok := p.playing[target]
	if !ok {
		return "", false
	}
	return pb.clip, true
}

// Advance moves every timeline one frame. One-shot clips are dropped when
// they finish, and so are the timelines of entities valid rejects.
func (p *ClipPlayer) Advance(valid func(donburi.Entity) bool) {
	for target, pb := range p.playing {
		if valid != nil && !valid(target) {
			delete(p.playing, target)
			continue
		}
		pb.frame++
		if pb.frame < pb.length {
			continue
		}
		if pb.loop {
			pb.frame = 0
			continue
		}
		delete(p.playing, target)
	}
}

// Len is the number of active timelines.
func (p *ClipPlayer) Len() int {
	return len(p.playing)
}

func (p *ClipPlayer) Reset() {
	clear(p.playing)
}
