// SPDX-License-Identifier: EPL-2.0

package mixer

import "errors"

// Lifecycle errors.
var (
	ErrAlreadyConfigured = errors.New("audio stream is already configured")
	ErrNoStream          = errors.New("no audio stream configured")
	ErrAlreadyStarted    = errors.New("audio stream is already started")
	ErrAlreadyPaused     = errors.New("audio stream is already paused")
	ErrNotStarted        = errors.New("audio stream was never started")
	ErrAlreadyClosed     = errors.New("audio stream is already closed")
)

var (
	// ErrUnknownDecodeFailure is returned when decoding succeeded but left
	// nothing that can be played.
	ErrUnknownDecodeFailure = errors.New("an unknown error occurred while loading the audio file")

	// ErrVolumeOutOfRange is returned when a volume is outside [0, 1].
	ErrVolumeOutOfRange = errors.New("volume must be between 0 and 1")
)

// LoadError is returned by the engine's load operations. It wraps the
// decode or lifecycle error that caused the failure.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string { return "loading sound: " + e.Err.Error() }
func (e *LoadError) Unwrap() error { return e.Err }
