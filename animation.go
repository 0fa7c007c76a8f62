package trek

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Clip is a named animation of a given length, in seconds.
type Clip struct {
	Name   string
	Length float32
}

type clipInstance struct {
	clip     Clip
	playhead float32
	loop     bool
	weight   float32
	fade     *gween.Tween
	stopping bool
}

// ClipPlayer plays named Clips. Any number of clips can play at once; each is faded in when played and faded
// out when stopped over BlendTime seconds, so switching from one clip to another blends between them.
// The ClipPlayer only keeps time and weights; applying them to a skeleton or mesh is up to whatever renders the actor.
type ClipPlayer struct {
	clips   map[string]Clip
	playing []*clipInstance

	PlaySpeed float32 // A multiplier for how quickly playheads advance.
	BlendTime float32 // How long, in seconds, clips take to fade in or out.

	// OnFinish is called when a clip reaches its end; for looping clips, this happens on each loop.
	OnFinish func(name string)
}

// NewClipPlayer creates a new ClipPlayer that can play the given Clips.
func NewClipPlayer(clips ...Clip) *ClipPlayer {
	cp := &ClipPlayer{
		clips:     map[string]Clip{},
		PlaySpeed: 1,
		BlendTime: 0.1,
	}
	for _, clip := range clips {
		cp.AddClip(clip)
	}
	return cp
}

// AddClip makes a Clip available to play, replacing any existing clip of the same name.
func (cp *ClipPlayer) AddClip(clip Clip) {
	cp.clips[clip.Name] = clip
}

// Clips returns the clips the player knows about, sorted by name.
func (cp *ClipPlayer) Clips() []Clip {
	clips := make([]Clip, 0, len(cp.clips))
	for _, c := range cp.clips {
		clips = append(clips, c)
	}
	sort.Slice(clips, func(i, j int) bool { return clips[i].Name < clips[j].Name })
	return clips
}

func (cp *ClipPlayer) instance(name string) *clipInstance {
	for _, inst := range cp.playing {
		if inst.clip.Name == name {
			return inst
		}
	}
	return nil
}

// Play starts playing the named clip from the beginning, fading it in. If the clip is already playing, only
// its looping is changed; if it was fading out, it fades back in from where it was. Unknown clips are ignored.
func (cp *ClipPlayer) Play(name string, loop bool) {

	clip, exists := cp.clips[name]
	if !exists {
		return
	}

	inst := cp.instance(name)

	if inst == nil {
		inst = &clipInstance{clip: clip}
		cp.playing = append(cp.playing, inst)
	} else if !inst.stopping {
		inst.loop = loop
		return
	}

	inst.loop = loop
	inst.stopping = false
	cp.fadeTo(inst, 1)

}

// Stop fades the named clip out, after which it stops playing.
func (cp *ClipPlayer) Stop(name string) {

	inst := cp.instance(name)
	if inst == nil || inst.stopping {
		return
	}

	inst.stopping = true
	cp.fadeTo(inst, 0)

	if inst.fade == nil {
		cp.remove(inst)
	}

}

func (cp *ClipPlayer) fadeTo(inst *clipInstance, weight float32) {
	if cp.BlendTime <= 0 {
		inst.weight = weight
		inst.fade = nil
		return
	}
	inst.fade = gween.New(inst.weight, weight, cp.BlendTime, ease.OutQuad)
}

func (cp *ClipPlayer) remove(inst *clipInstance) {
	for i, p := range cp.playing {
		if p == inst {
			cp.playing = append(cp.playing[:i], cp.playing[i+1:]...)
			return
		}
	}
}

// Playing returns whether the named clip is playing and not on its way out.
func (cp *ClipPlayer) Playing(name string) bool {
	inst := cp.instance(name)
	return inst != nil && !inst.stopping
}

// Weight returns the current blend weight of the named clip, ranging from 0 to 1. Clips that aren't playing weigh 0.
func (cp *ClipPlayer) Weight(name string) float32 {
	if inst := cp.instance(name); inst != nil {
		return inst.weight
	}
	return 0
}

// Playhead returns the time, in seconds, into the named clip.
func (cp *ClipPlayer) Playhead(name string) float32 {
	if inst := cp.instance(name); inst != nil {
		return inst.playhead
	}
	return 0
}

// Update advances the ClipPlayer by dt seconds, and should be called once every game frame.
// OnFinish is called once the playing clips have been advanced, so it's free to play or stop clips.
func (cp *ClipPlayer) Update(dt float32) {

	var finished []string

	remaining := cp.playing[:0]

	for _, inst := range cp.playing {

		if inst.fade != nil {
			w, faded := inst.fade.Update(dt)
			inst.weight = w
			if faded {
				inst.fade = nil
				if inst.stopping {
					continue
				}
			}
		}

		inst.playhead += dt * cp.PlaySpeed

		if length := inst.clip.Length; length > 0 && inst.playhead >= length {

			finished = append(finished, inst.clip.Name)

			if !inst.loop {
				continue
			}

			inst.playhead = math32.Mod(inst.playhead, length)

		}

		remaining = append(remaining, inst)

	}

	clear(cp.playing[len(remaining):])
	cp.playing = remaining

	if cp.OnFinish != nil {
		for _, name := range finished {
			cp.OnFinish(name)
		}
	}

}
