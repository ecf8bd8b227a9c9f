// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"
	"sync"

	"github.com/ik5/audmix/audio"
)

// Offline is a Driver with no hardware behind it. Periods are rendered
// only when Pull is called, on the caller's goroutine, which makes it
// suitable for tests and for rendering to a file.
//
// The *Err fields make the matching stream operation fail, to exercise
// device failure handling.
type Offline struct {
	OpenErr  error
	StartErr error
	PauseErr error
	CloseErr error

	mu      sync.Mutex
	current *OfflineStream
}

// NewOffline returns an offline driver.
func NewOffline() *Offline {
	return &Offline{}
}

func (o *Offline) Open(format audio.Format, usage Usage, cb Callback) (Stream, error) {
	if o.OpenErr != nil {
		return nil, o.OpenErr
	}
	if !format.Valid() {
		return nil, fmt.Errorf("%w: %s", audio.ErrInvalidFormat, format)
	}

	s := &OfflineStream{core: newCore(format, usage, cb), drv: o}

	o.mu.Lock()
	o.current = s
	o.mu.Unlock()

	return s, nil
}

// Stream returns the most recently opened stream, or nil.
func (o *Offline) Stream() *OfflineStream {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.current
}

// Pull renders len(out)/channels frames from the current stream into out.
// It returns ErrNotRunning, leaving out silent, while the stream is not
// started.
func (o *Offline) Pull(out []float32) (Result, error) {
	s := o.Stream()
	if s == nil {
		return Stop, ErrNoStream
	}

	return s.Pull(out)
}

// OfflineStream is the Stream returned by Offline.
type OfflineStream struct {
	*core
	drv *Offline
}

// Usage returns the category the stream was opened with.
func (s *OfflineStream) Usage() Usage { return s.usage }

func (s *OfflineStream) Start() error {
	switch s.State() {
	case StateClosing, StateClosed:
		return ErrClosed
	}
	if s.drv.StartErr != nil {
		return s.drv.StartErr
	}

	// Settles to Started on the first pulled period.
	s.setState(StateStarting)
	return nil
}

func (s *OfflineStream) Pause() error {
	switch s.State() {
	case StateClosing, StateClosed:
		return ErrClosed
	}
	if s.drv.PauseErr != nil {
		return s.drv.PauseErr
	}

	s.setState(StatePaused)
	return nil
}

func (s *OfflineStream) Close() error {
	if s.State() == StateClosed {
		return ErrClosed
	}
	if s.drv.CloseErr != nil {
		return s.drv.CloseErr
	}

	s.shut()
	return nil
}

// Pull runs one period into out. See Offline.Pull.
func (s *OfflineStream) Pull(out []float32) (Result, error) {
	clear(out)

	switch s.State() {
	case StateStarting, StateStarted:
	case StateClosing, StateClosed:
		return Stop, ErrClosed
	default:
		return Continue, ErrNotRunning
	}

	frames := len(out) / int(s.format.Channels)
	return s.render(out[:frames*int(s.format.Channels)], frames), nil
}
