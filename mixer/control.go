// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"errors"
	"fmt"
	"math"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/decode"
)

// maxIDAttempts bounds id regeneration on collision.
const maxIDAttempts = 8

// Update sets one player's value in a batch call. Updates naming unknown
// ids are skipped.
type Update[T any] struct {
	ID    string
	Value T
}

// Load decodes br against the configured format and registers a new
// stopped player for it. It blocks until decoding finishes and must not
// be called from an audio callback.
func (e *Engine) Load(br decode.ByteRange) (string, error) {
	format, err := e.configuredFormat()
	if err != nil {
		return "", &LoadError{Err: err}
	}

	pcm, err := e.decoder.Decode(br, format)
	if err != nil {
		e.logger.Warn("decoding sound failed", "error", err)
		return "", &LoadError{Err: err}
	}

	src, err := audio.NewSampleSource(pcm.Data, pcm.Format, format)
	switch {
	case errors.Is(err, audio.ErrFormatMismatch):
		return "", &LoadError{Err: err}
	case err != nil:
		e.logger.Warn("decoded sound is unusable", "error", err)
		return "", &LoadError{Err: fmt.Errorf("%w: %w", ErrUnknownDecodeFailure, err)}
	}

	return e.AddSource(src)
}

// AddSource registers a new stopped player over an already decoded
// source. The same source may back any number of players.
func (e *Engine) AddSource(src *audio.SampleSource) (string, error) {
	if src == nil {
		return "", &LoadError{Err: ErrUnknownDecodeFailure}
	}

	format, err := e.configuredFormat()
	if err != nil {
		return "", &LoadError{Err: err}
	}

	if src.Format() != format {
		return "", &LoadError{Err: fmt.Errorf("%w: source is %s, stream is %s", audio.ErrFormatMismatch, src.Format(), format)}
	}

	p := NewPlayer(src)
	for range maxIDAttempts {
		id := e.newID()
		if e.players.add(id, p) {
			e.logger.Info("sound loaded", "id", id, "frames", src.Frames(), "duration", src.Duration())
			return id, nil
		}
	}

	return "", &LoadError{Err: fmt.Errorf("%w: could not allocate a unique player id", ErrUnknownDecodeFailure)}
}

func (e *Engine) configuredFormat() (audio.Format, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stream == nil {
		return audio.Format{}, ErrNoStream
	}
	return e.format, nil
}

// Unload removes the players with the given ids. Unknown ids are ignored.
func (e *Engine) Unload(ids ...string) {
	removed := e.players.remove(ids...)
	for _, id := range removed {
		e.logger.Debug("sound unloaded", "id", id)
	}
}

// UnloadAll removes every player.
func (e *Engine) UnloadAll() {
	n := e.players.clear()
	e.logger.Debug("all sounds unloaded", "count", n)
}

// SetPlaying starts or stops players. Players keep their position when
// stopped.
func (e *Engine) SetPlaying(updates ...Update[bool]) {
	for _, u := range updates {
		if p, ok := e.players.get(u.ID); ok {
			p.SetPlaying(u.Value)
		}
	}
}

// SetLooping turns looping on or off.
func (e *Engine) SetLooping(updates ...Update[bool]) {
	for _, u := range updates {
		if p, ok := e.players.get(u.ID); ok {
			p.SetLooping(u.Value)
		}
	}
}

// SetVolume sets player volumes. If any value is outside [0, 1] the whole
// batch is rejected and no player is changed.
func (e *Engine) SetVolume(updates ...Update[float64]) error {
	for _, u := range updates {
		if math.IsNaN(u.Value) || u.Value < 0 || u.Value > 1 {
			return fmt.Errorf("%w: %v for %s", ErrVolumeOutOfRange, u.Value, u.ID)
		}
	}

	for _, u := range updates {
		if p, ok := e.players.get(u.ID); ok {
			p.setVolume(float32(u.Value))
		}
	}

	return nil
}

// SeekTo moves players to a position given in milliseconds.
func (e *Engine) SeekTo(updates ...Update[float64]) {
	for _, u := range updates {
		if p, ok := e.players.get(u.ID); ok {
			p.SeekTo(u.Value)
		}
	}
}

// Players returns the ids of all loaded players in sorted order.
func (e *Engine) Players() []string {
	return e.players.ids()
}

// PlayerInfo returns a snapshot of one player.
func (e *Engine) PlayerInfo(id string) (PlayerInfo, bool) {
	p, ok := e.players.get(id)
	if !ok {
		return PlayerInfo{}, false
	}
	return p.Info(id), true
}

// AnyPlaying reports whether at least one player is playing.
func (e *Engine) AnyPlaying() bool {
	for _, r := range e.players.renderables() {
		if p, ok := r.(*Player); ok && p.Playing() {
			return true
		}
	}
	return false
}
