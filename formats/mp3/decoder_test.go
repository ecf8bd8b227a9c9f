// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate   int
	pcm          []byte
	offset       int
	returnErrors bool
}

func newMockReader(sampleRate int, samples ...int16) *mockMP3Reader {
	pcm := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(pcm[2*i:], uint16(s))
	}
	return &mockMP3Reader{sampleRate: sampleRate, pcm: pcm}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.pcm) {
		return 0, io.EOF
	}

	n := copy(buf, m.pcm[m.offset:])
	m.offset += n

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not MP3 data at all")))
	if !errors.Is(err, ErrNotMP3File) {
		t.Errorf("Decode() error = %v, want %v", err, ErrNotMP3File)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestStream_Metadata(t *testing.T) {
	t.Parallel()

	s := &stream{dec: newMockReader(44100), sampleRate: 44100}

	if s.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", s.SampleRate())
	}

	if s.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", s.Channels())
	}

	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestStream_ReadPCM_Passthrough(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 32767, -32768, 1}
	s := &stream{dec: newMockReader(48000, samples...), sampleRate: 48000}

	dst := make([]byte, 64)
	n, err := s.ReadPCM(dst)
	if err != nil {
		t.Fatalf("ReadPCM() error = %v", err)
	}

	if n != len(samples)*2 {
		t.Fatalf("ReadPCM() n = %d, want %d", n, len(samples)*2)
	}

	for i, want := range samples {
		if got := int16(binary.LittleEndian.Uint16(dst[2*i:])); got != want {
			t.Errorf("sample[%d] = %d, want %d", i, got, want)
		}
	}

	n, err = s.ReadPCM(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadPCM() after end = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestStream_ReadPCM_OddBuffer(t *testing.T) {
	t.Parallel()

	s := &stream{dec: newMockReader(44100, 1, 2, 3), sampleRate: 44100}

	n, err := s.ReadPCM(make([]byte, 5))
	if err != nil {
		t.Fatalf("ReadPCM() error = %v", err)
	}

	if n != 4 {
		t.Errorf("ReadPCM() n = %d, want 4", n)
	}
}

func TestStream_ReadPCM_EmptyBuffer(t *testing.T) {
	t.Parallel()

	s := &stream{dec: newMockReader(44100, 1, 2), sampleRate: 44100}

	n, err := s.ReadPCM(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadPCM(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestStream_ReadPCM_Error(t *testing.T) {
	t.Parallel()

	dec := newMockReader(44100, 1, 2)
	dec.returnErrors = true
	s := &stream{dec: dec, sampleRate: 44100}

	_, err := s.ReadPCM(make([]byte, 8))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadPCM() error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
}

func TestStream_ReadPCM_SmallReads(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 100)
	for i := range samples {
		samples[i] = int16(i * 10)
	}
	s := &stream{dec: newMockReader(44100, samples...), sampleRate: 44100}

	var total int
	dst := make([]byte, 6)
	for {
		n, err := s.ReadPCM(dst)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadPCM() error = %v", err)
		}
	}

	if total != 200 {
		t.Errorf("read %d bytes, want 200", total)
	}
}

func BenchmarkStream_ReadPCM(b *testing.B) {
	samples := make([]int16, 8192)
	dst := make([]byte, 4096)

	b.ReportAllocs()
	for b.Loop() {
		s := &stream{dec: newMockReader(44100, samples...), sampleRate: 44100}
		_, _ = s.ReadPCM(dst)
	}
}
