// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/decode"
	"github.com/ik5/audmix/device"
)

// Loader decodes a byte range into PCM matching the expected format.
type Loader interface {
	Decode(br decode.ByteRange, expected audio.Format) (decode.PCM, error)
}

// Engine mixes any number of players into one output stream. Create one
// per output device with New.
//
// Lifecycle methods (Configure, Start, Pause, Close) are meant to be
// called from one goroutine at a time. Player control methods may be
// called from any goroutine, concurrently with rendering.
type Engine struct {
	driver  device.Driver
	decoder Loader
	logger  *slog.Logger
	newID   func() string

	mu     sync.Mutex
	stream device.Stream
	format audio.Format
	closed bool // a stream was configured and then closed

	players *registry
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for lifecycle and load events.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDecoder replaces the default decoder used by Load.
func WithDecoder(d Loader) Option {
	return func(e *Engine) {
		if d != nil {
			e.decoder = d
		}
	}
}

// WithIDGenerator replaces the UUIDv4 player id generator.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) {
		if gen != nil {
			e.newID = gen
		}
	}
}

// New returns an engine that opens its stream on driver.
func New(driver device.Driver, opts ...Option) *Engine {
	e := &Engine{
		driver:  driver,
		decoder: decode.Default(),
		logger:  slog.Default(),
		newID:   uuid.NewString,
		players: newRegistry(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.logger = e.logger.With("component", "mixer")

	return e
}

// State reports the lifecycle state as derived from the device.
func (e *Engine) State() StreamState {
	e.mu.Lock()
	s := e.stream
	e.mu.Unlock()

	if s == nil {
		return StateClosed
	}
	return stateOf(s.State())
}

// Format returns the configured stream format, or the zero Format when
// no stream is configured.
func (e *Engine) Format() audio.Format {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stream == nil {
		return audio.Format{}
	}
	return e.format
}

// Configure opens a device stream without starting it. Players whose
// format differs from the new one are dropped.
func (e *Engine) Configure(format audio.Format, usage device.Usage) error {
	if !format.Valid() {
		return fmt.Errorf("%w: %s", audio.ErrInvalidFormat, format)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stream != nil {
		return ErrAlreadyConfigured
	}

	usage = device.UsageFromInt(int(usage))

	stream, err := e.driver.Open(format, usage, e.render)
	if err != nil {
		return fmt.Errorf("opening audio stream: %w", err)
	}

	e.stream = stream
	e.format = format
	e.closed = false

	dropped := e.players.retain(func(p *Player) bool {
		return p.Source().Format() == format
	})
	for _, id := range dropped {
		e.logger.Warn("dropping player with mismatched format", "id", id, "format", format.String())
	}

	e.logger.Info("audio stream configured", "format", format.String(), "usage", usage.String())

	return nil
}

// Start asks the device to begin rendering.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stream == nil {
		return ErrNoStream
	}

	switch e.stream.State() {
	case device.StateStarting, device.StateStarted:
		return ErrAlreadyStarted
	case device.StateClosing, device.StateClosed:
		return ErrNoStream
	}

	if err := e.stream.Start(); err != nil {
		return fmt.Errorf("starting audio stream: %w", err)
	}

	e.logger.Info("audio stream started")

	return nil
}

// Pause asks the device to stop requesting periods without releasing it.
func (e *Engine) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stream == nil {
		return ErrNoStream
	}

	switch e.stream.State() {
	case device.StateOpen:
		return ErrNotStarted
	case device.StatePausing, device.StatePaused:
		return ErrAlreadyPaused
	case device.StateClosing, device.StateClosed:
		return ErrNoStream
	}

	if err := e.stream.Pause(); err != nil {
		return fmt.Errorf("pausing audio stream: %w", err)
	}

	e.logger.Info("audio stream paused")

	return nil
}

// Close releases the device stream. It returns after the device has
// confirmed that no further render callback will run. Loaded players are
// kept for the next Configure.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stream == nil {
		if e.closed {
			return ErrAlreadyClosed
		}
		return ErrNoStream
	}

	if err := e.stream.Close(); err != nil && !errors.Is(err, device.ErrClosed) {
		return fmt.Errorf("closing audio stream: %w", err)
	}

	e.stream = nil
	e.closed = true

	e.logger.Info("audio stream closed", "players", e.players.len())

	return nil
}

// render is the device callback. It must not block, allocate or fail.
func (e *Engine) render(out []float32, frames int) device.Result {
	clear(out)

	for _, r := range e.players.renderables() {
		r.Render(out, frames)
	}

	return device.Continue
}
