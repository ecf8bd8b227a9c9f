// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"io"
)

// mockStream is a test helper that emits a fixed block of 16-bit PCM.
type mockStream struct {
	sampleRate int
	channels   int
	pcm        []byte
	offset     int
}

// newMockStream creates a stream holding the given 16-bit samples.
func newMockStream(sampleRate, channels int, samples ...int16) *mockStream {
	pcm := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(pcm[2*i:], uint16(s))
	}

	return &mockStream{
		sampleRate: sampleRate,
		channels:   channels,
		pcm:        pcm,
	}
}

func (m *mockStream) SampleRate() int { return m.sampleRate }
func (m *mockStream) Channels() int   { return m.channels }
func (m *mockStream) Close() error    { return nil }

func (m *mockStream) ReadPCM(dst []byte) (int, error) {
	if m.offset >= len(m.pcm) {
		return 0, io.EOF
	}

	n := copy(dst[:len(dst)&^1], m.pcm[m.offset:])
	m.offset += n

	return n, nil
}

// pcm16 encodes samples as little-endian bytes.
func pcm16(samples ...int16) []byte {
	return newMockStream(0, 0, samples...).pcm
}
