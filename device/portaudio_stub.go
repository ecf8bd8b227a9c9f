// SPDX-License-Identifier: EPL-2.0

//go:build !portaudio

package device

import (
	"fmt"

	"github.com/ik5/audmix/audio"
)

// PortAudio is a placeholder used when the binary is built without the
// portaudio tag.
type PortAudio struct {
	FramesPerBuffer int
}

// NewPortAudio returns a PortAudio driver whose Open always fails.
func NewPortAudio(framesPerBuffer int) *PortAudio {
	return &PortAudio{FramesPerBuffer: framesPerBuffer}
}

func (*PortAudio) Open(audio.Format, Usage, Callback) (Stream, error) {
	return nil, fmt.Errorf("%w: portaudio (build with -tags portaudio)", ErrBackendUnavailable)
}
