// SPDX-License-Identifier: EPL-2.0

//go:build portaudio

package device

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
	"github.com/ik5/audmix/audio"
)

// PortAudio plays through the default PortAudio output device.
type PortAudio struct {
	// FramesPerBuffer is the period size. Zero lets PortAudio choose.
	FramesPerBuffer int
}

// NewPortAudio returns a PortAudio driver.
func NewPortAudio(framesPerBuffer int) *PortAudio {
	return &PortAudio{FramesPerBuffer: framesPerBuffer}
}

func (p *PortAudio) Open(format audio.Format, usage Usage, cb Callback) (Stream, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("%w: %s", audio.ErrInvalidFormat, format)
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	s := &paStream{core: newCore(format, usage, cb)}

	stream, err := portaudio.OpenDefaultStream(
		0, int(format.Channels), float64(format.SampleRate), p.FramesPerBuffer, s.process,
	)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("failed to open stream: %w", err)
	}
	s.stream = stream

	return s, nil
}

type paStream struct {
	*core
	stream *portaudio.Stream
}

func (s *paStream) process(out []float32) {
	s.render(out, len(out)/int(s.format.Channels))
}

func (s *paStream) Start() error {
	switch s.State() {
	case StateClosing, StateClosed:
		return ErrClosed
	}

	s.setState(StateStarting)
	if err := s.stream.Start(); err != nil {
		s.setState(StateOpen)
		return fmt.Errorf("failed to start stream: %w", err)
	}

	return nil
}

func (s *paStream) Pause() error {
	switch s.State() {
	case StateClosing, StateClosed:
		return ErrClosed
	}

	s.setState(StatePausing)
	if err := s.stream.Stop(); err != nil {
		return fmt.Errorf("failed to stop stream: %w", err)
	}
	s.setState(StatePaused)

	return nil
}

func (s *paStream) Close() error {
	if s.State() == StateClosed {
		return ErrClosed
	}

	s.shut()

	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("failed to close stream: %w", err)
	}

	return portaudio.Terminate()
}
