// SPDX-License-Identifier: EPL-2.0

package mixer

import "github.com/ik5/audmix/device"

// StreamState is the engine's lifecycle state.
type StreamState int

const (
	StateClosed StreamState = iota
	StateInitialized
	StateOpen
	StatePaused
)

func (s StreamState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateInitialized:
		return "initialized"
	case StateOpen:
		return "open"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// stateOf folds the device's own status into a lifecycle state. A device
// still starting counts as open and one still closing as closed.
func stateOf(s device.State) StreamState {
	switch s {
	case device.StateStarting, device.StateStarted:
		return StateOpen
	case device.StatePausing, device.StatePaused:
		return StatePaused
	case device.StateOpen:
		return StateInitialized
	default:
		return StateClosed
	}
}
