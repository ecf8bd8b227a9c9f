// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/ik5/audmix/audio"
)

// Renderable is anything the engine can mix into an output period.
// Render adds, never overwrites, its contribution to out.
type Renderable interface {
	Render(out []float32, frames int)
}

// Player is a playback cursor over a sample source. Every field is
// atomic: control goroutines write them while the render goroutine reads
// them once per period.
type Player struct {
	source *audio.SampleSource

	playing atomic.Bool
	looping atomic.Bool
	volume  atomic.Uint32 // math.Float32bits
	cursor  atomic.Int64  // next frame to render
}

var _ Renderable = (*Player)(nil)

// NewPlayer returns a stopped, non-looping player at full volume
// positioned at the first frame of src.
func NewPlayer(src *audio.SampleSource) *Player {
	p := &Player{source: src}
	p.volume.Store(math.Float32bits(1))
	return p
}

// Source returns the sample source the player reads from.
func (p *Player) Source() *audio.SampleSource { return p.source }

func (p *Player) Playing() bool       { return p.playing.Load() }
func (p *Player) SetPlaying(v bool)   { p.playing.Store(v) }
func (p *Player) Looping() bool       { return p.looping.Load() }
func (p *Player) SetLooping(v bool)   { p.looping.Store(v) }
func (p *Player) Volume() float32     { return math.Float32frombits(p.volume.Load()) }
func (p *Player) setVolume(v float32) { p.volume.Store(math.Float32bits(v)) }
func (p *Player) Cursor() int64       { return p.cursor.Load() }

// SeekTo moves the cursor to the frame at ms milliseconds. Positions past
// the end land on the last frame; negative or NaN positions land on 0.
func (p *Player) SeekTo(ms float64) {
	if ms == 0 {
		p.cursor.Store(0)
		return
	}

	p.cursor.Store(p.frameAt(ms))
}

func (p *Player) frameAt(ms float64) int64 {
	if math.IsNaN(ms) || ms < 0 {
		return 0
	}

	last := p.source.Frames() - 1
	frame := ms / 1000 * float64(p.source.Format().SampleRate)
	if frame >= float64(last) {
		return last
	}

	return int64(frame)
}

// Render mixes up to frames frames of the source into out, scaled by the
// volume. A non-looping player that reaches the end of its source renders
// the remaining frames, rewinds and stops.
//
// The cursor is published with a compare-and-swap, so a seek that lands
// while a period is being rendered takes precedence over the advance.
func (p *Player) Render(out []float32, frames int) {
	if !p.playing.Load() {
		return
	}

	ch := int(p.source.Format().Channels)
	frames = min(frames, len(out)/ch)

	total := p.source.Frames()
	data := p.source.Samples()

	start := p.cursor.Load()
	cur := start
	if cur < 0 || cur >= total {
		cur = 0
	}

	n := int64(frames)
	finished := false
	if !p.looping.Load() && cur+n >= total {
		n = total - cur
		finished = true
	}

	vol := p.Volume()
	for f := range int(n) {
		src := data[int(cur)*ch : int(cur)*ch+ch]
		dst := out[f*ch : f*ch+ch]
		for c, s := range src {
			dst[c] += s * vol
		}

		if cur++; cur >= total {
			cur = 0
		}
	}

	p.publish(start, cur, finished)
}

// publish stores the advanced cursor unless a seek replaced start while
// the period was rendered. A finished player is stopped only when its
// advance was stored, so the seek also keeps the player playing.
func (p *Player) publish(start, cur int64, finished bool) {
	if p.cursor.CompareAndSwap(start, cur) && finished {
		p.playing.Store(false)
	}
}

// PlayerInfo is a point-in-time view of a player.
type PlayerInfo struct {
	ID       string
	Playing  bool
	Looping  bool
	Volume   float32
	Position time.Duration
	Duration time.Duration
	Format   audio.Format
}

// Info returns a snapshot of the player's state.
func (p *Player) Info(id string) PlayerInfo {
	format := p.source.Format()

	return PlayerInfo{
		ID:       id,
		Playing:  p.Playing(),
		Looping:  p.Looping(),
		Volume:   p.Volume(),
		Position: format.FrameDuration(p.Cursor()),
		Duration: p.source.Duration(),
		Format:   format,
	}
}
