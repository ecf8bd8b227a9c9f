// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/ik5/audmix/utils"
)

// MockStream is a test helper that generates 16-bit PCM for testing.
// It satisfies audio.Stream.
type MockStream struct {
	sampleRate  int
	channels    int
	totalFrames int // Total frames to generate
	generated   int // Frames generated so far
	waveform    func(frame int, channel int) float32

	// Err, when set, is returned by ReadPCM once the frames run out.
	Err error
}

// NewMockStream creates a new mock PCM stream.
// waveform returns the value in [-1, 1] for the given frame and channel.
func NewMockStream(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockStream {
	return &MockStream{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentStream creates a mock stream that generates silence.
func NewSilentStream(sampleRate, channels, totalFrames int) *MockStream {
	return NewMockStream(sampleRate, channels, totalFrames, func(int, int) float32 {
		return 0
	})
}

// NewSineStream creates a mock stream that generates a sine wave.
func NewSineStream(sampleRate, channels, totalFrames int, frequency float64) *MockStream {
	return NewMockStream(sampleRate, channels, totalFrames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(0.5 * math.Sin(2*math.Pi*frequency*t))
	})
}

// NewConstantStream creates a mock stream with constant value.
func NewConstantStream(sampleRate, channels, totalFrames int, value float32) *MockStream {
	return NewMockStream(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

func (m *MockStream) SampleRate() int { return m.sampleRate }
func (m *MockStream) Channels() int   { return m.channels }
func (m *MockStream) Close() error    { return nil }

// Reset rewinds the stream to its first frame.
func (m *MockStream) Reset() {
	m.generated = 0
}

func (m *MockStream) ReadPCM(dst []byte) (int, error) {
	if m.generated >= m.totalFrames {
		if m.Err != nil {
			return 0, m.Err
		}
		return 0, io.EOF
	}

	frameBytes := 2 * m.channels
	frames := min(len(dst)/frameBytes, m.totalFrames-m.generated)

	for f := range frames {
		for ch := range m.channels {
			v := utils.Float32ToInt16(m.waveform(m.generated+f, ch))
			binary.LittleEndian.PutUint16(dst[(f*m.channels+ch)*2:], uint16(v))
		}
	}

	m.generated += frames

	return frames * frameBytes, nil
}
