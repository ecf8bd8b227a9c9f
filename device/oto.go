// SPDX-License-Identifier: EPL-2.0

package device

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/audmix/audio"
)

const bytesPerFloat = 4

// Oto plays through github.com/ebitengine/oto/v3. Oto allows one context
// per process, so the first opened format is kept for the process
// lifetime and a later Open with another format fails with
// ErrFormatLocked.
type Oto struct {
	// BufferSize is the latency oto is asked for. Zero picks oto's default.
	BufferSize time.Duration

	mu     sync.Mutex
	ctx    *oto.Context
	format audio.Format
}

// NewOto returns an oto driver with the given buffer latency.
func NewOto(bufferSize time.Duration) *Oto {
	return &Oto{BufferSize: bufferSize}
}

func (o *Oto) Open(format audio.Format, usage Usage, cb Callback) (Stream, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("%w: %s", audio.ErrInvalidFormat, format)
	}

	ctx, err := o.context(format)
	if err != nil {
		return nil, err
	}

	s := &otoStream{core: newCore(format, usage, cb)}
	s.player = ctx.NewPlayer(s)

	return s, nil
}

func (o *Oto) context(format audio.Format) (*oto.Context, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.ctx != nil {
		if o.format != format {
			return nil, fmt.Errorf("%w: %s, requested %s", ErrFormatLocked, o.format, format)
		}
		return o.ctx, nil
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(format.SampleRate),
		ChannelCount: int(format.Channels),
		Format:       oto.FormatFloat32LE,
		BufferSize:   o.BufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create oto context: %w", err)
	}
	<-ready

	o.ctx = ctx
	o.format = format

	return ctx, nil
}

// otoStream is pulled by the oto player through Read.
type otoStream struct {
	*core
	player *oto.Player

	// scratch is only touched by oto's reader goroutine.
	scratch []float32
}

// Read renders the next period and encodes it as float32 little-endian.
func (s *otoStream) Read(p []byte) (int, error) {
	frameBytes := bytesPerFloat * int(s.format.Channels)
	frames := len(p) / frameBytes
	samples := frames * int(s.format.Channels)

	if cap(s.scratch) < samples {
		s.scratch = make([]float32, samples)
	}
	buf := s.scratch[:samples]

	s.render(buf, frames)

	for i, v := range buf {
		binary.LittleEndian.PutUint32(p[i*bytesPerFloat:], math.Float32bits(v))
	}
	clear(p[samples*bytesPerFloat:])

	return len(p), nil
}

func (s *otoStream) Start() error {
	switch s.State() {
	case StateClosing, StateClosed:
		return ErrClosed
	}

	s.setState(StateStarting)
	s.player.Play()

	return nil
}

func (s *otoStream) Pause() error {
	switch s.State() {
	case StateClosing, StateClosed:
		return ErrClosed
	}

	s.setState(StatePausing)
	s.player.Pause()
	s.setState(StatePaused)

	return nil
}

func (s *otoStream) Close() error {
	if s.State() == StateClosed {
		return ErrClosed
	}

	s.player.Pause()
	s.shut()

	if err := s.player.Close(); err != nil {
		return fmt.Errorf("closing oto player: %w", err)
	}

	return nil
}
