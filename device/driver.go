// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"
	"time"
)

// Backend names accepted by NewDriver.
const (
	BackendOto       = "oto"
	BackendPortAudio = "portaudio"
	BackendOffline   = "offline"
)

// NewDriver returns the driver registered under name. buffer is the
// period latency hint passed to the backend.
func NewDriver(name string, buffer time.Duration) (Driver, error) {
	switch name {
	case BackendOto, "":
		return NewOto(buffer), nil
	case BackendPortAudio:
		return NewPortAudio(0), nil
	case BackendOffline:
		return NewOffline(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
