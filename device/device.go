// SPDX-License-Identifier: EPL-2.0

package device

import (
	"github.com/ik5/audmix/audio"
)

// State is the status a device stream reports for itself. Transitions
// requested through Start, Pause and Close may settle asynchronously, so
// a stream can sit in Starting, Pausing or Closing for a while.
type State int32

const (
	StateOpen State = iota
	StateStarting
	StateStarted
	StatePausing
	StatePaused
	StateClosing
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateStarting:
		return "starting"
	case StateStarted:
		return "started"
	case StatePausing:
		return "pausing"
	case StatePaused:
		return "paused"
	case StateClosing:
		return "closing"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Result tells the device whether to keep requesting periods.
type Result int

const (
	Continue Result = iota
	Stop
)

// Callback fills out with frames interleaved frames. It runs on the
// device's real-time goroutine and must not block.
type Callback func(out []float32, frames int) Result

// Driver opens output streams on one audio backend.
type Driver interface {
	Open(format audio.Format, usage Usage, cb Callback) (Stream, error)
}

// Stream is an opened output stream. Start, Pause and Close are
// requests; State reports what the device has actually reached.
type Stream interface {
	Start() error
	Pause() error
	// Close returns once no further callback can run.
	Close() error
	State() State
	Format() audio.Format
}
