// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// Format describes the layout every sample source of a stream must share.
// It is fixed for the lifetime of an open stream; there is no conversion
// between formats.
type Format struct {
	SampleRate int32
	Channels   int32
}

// Valid reports whether both the sample rate and channel count are positive.
func (f Format) Valid() bool {
	return f.SampleRate > 0 && f.Channels > 0
}

// FrameDuration converts a frame count into wall-clock time at f's sample rate.
func (f Format) FrameDuration(frames int64) time.Duration {
	if f.SampleRate <= 0 {
		return 0
	}

	return time.Duration(frames) * time.Second / time.Duration(f.SampleRate)
}

func (f Format) String() string {
	return fmt.Sprintf("%dHz/%dch", f.SampleRate, f.Channels)
}
