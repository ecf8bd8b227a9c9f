// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"

	"github.com/ik5/audmix/utils"
)

// SampleSource is an immutable buffer of interleaved float32 samples in
// [-1.0, 1.0) together with the format it was decoded against.
//
// A SampleSource is never modified after construction, so any number of
// players may read it concurrently.
type SampleSource struct {
	samples []float32
	frames  int64
	format  Format
}

// NewSampleSource converts interleaved signed 16-bit little-endian PCM into
// a SampleSource.
//
// decoded is the format the PCM was produced in, required is the format of
// the stream the source will be mixed into. They must be equal: there is no
// resampling or channel conversion. Trailing bytes that do not form a whole
// frame are dropped.
func NewSampleSource(pcm []byte, decoded, required Format) (*SampleSource, error) {
	if !required.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, required)
	}

	if decoded != required {
		return nil, fmt.Errorf("%w: decoded %s, stream requires %s", ErrFormatMismatch, decoded, required)
	}

	bytesPerFrame := 2 * int(required.Channels)
	frames := len(pcm) / bytesPerFrame
	if frames == 0 {
		return nil, ErrEmptySource
	}

	samples := make([]float32, frames*int(required.Channels))
	utils.PCM16ToFloat32(samples, pcm[:frames*bytesPerFrame])

	return &SampleSource{
		samples: samples,
		frames:  int64(frames),
		format:  required,
	}, nil
}

// NewSampleSourceFloat wraps already normalized interleaved samples. The
// slice is copied.
func NewSampleSourceFloat(samples []float32, format Format) (*SampleSource, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}

	frames := len(samples) / int(format.Channels)
	if frames == 0 {
		return nil, ErrEmptySource
	}

	buf := make([]float32, frames*int(format.Channels))
	copy(buf, samples)

	return &SampleSource{
		samples: buf,
		frames:  int64(frames),
		format:  format,
	}, nil
}

// Samples returns the interleaved sample buffer. Callers must not modify it.
func (s *SampleSource) Samples() []float32 { return s.samples }

// Frames returns the number of frames held by the source.
func (s *SampleSource) Frames() int64 { return s.frames }

// Format returns the format the source was decoded against.
func (s *SampleSource) Format() Format { return s.format }

// Duration returns the playback length of the source.
func (s *SampleSource) Duration() time.Duration {
	return s.format.FrameDuration(s.frames)
}
