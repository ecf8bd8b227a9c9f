// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/mewkiz/flac/frame"
)

// mockFrameParser hands out pre-built frames.
type mockFrameParser struct {
	frames []*frame.Frame
	err    error
}

func (m *mockFrameParser) ParseNext() (*frame.Frame, error) {
	if len(m.frames) == 0 {
		if m.err != nil {
			return nil, m.err
		}
		return nil, io.EOF
	}

	f := m.frames[0]
	m.frames = m.frames[1:]

	return f, nil
}

// planar builds a frame from per-channel sample slices.
func planar(channels ...[]int32) *frame.Frame {
	f := &frame.Frame{
		Header: frame.Header{BlockSize: uint16(len(channels[0]))},
	}
	for _, samples := range channels {
		f.Subframes = append(f.Subframes, &frame.Subframe{Samples: samples})
	}
	return f
}

func int16s(b []byte) []int16 {
	out := make([]int16, len(b)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(b[2*i:]))
	}
	return out
}

func readAll(t *testing.T, s *stream, chunk int) []int16 {
	t.Helper()

	var out []int16
	buf := make([]byte, chunk)
	for {
		n, err := s.ReadPCM(buf)
		out = append(out, int16s(buf[:n])...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadPCM() error = %v", err)
		}
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("OggS not flac at all")))
	if !errors.Is(err, ErrNotFlacFile) {
		t.Errorf("Decode() error = %v, want %v", err, ErrNotFlacFile)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestStream_Interleaves(t *testing.T) {
	t.Parallel()

	s := &stream{
		dec: &mockFrameParser{frames: []*frame.Frame{
			planar([]int32{1, 2, 3}, []int32{-1, -2, -3}),
			planar([]int32{4}, []int32{-4}),
		}},
		sampleRate: 48000,
		channels:   2,
		bitDepth:   16,
	}

	got := readAll(t, s, 64)
	want := []int16{1, -1, 2, -2, 3, -3, 4, -4}

	if len(got) != len(want) {
		t.Fatalf("read %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestStream_SplitsFramesAcrossReads(t *testing.T) {
	t.Parallel()

	left := make([]int32, 100)
	right := make([]int32, 100)
	for i := range left {
		left[i] = int32(i)
		right[i] = int32(-i)
	}

	s := &stream{
		dec:        &mockFrameParser{frames: []*frame.Frame{planar(left, right)}},
		sampleRate: 44100,
		channels:   2,
		bitDepth:   16,
	}

	// 3 frames per read, never a partial frame.
	got := readAll(t, s, 14)
	if len(got) != 200 {
		t.Fatalf("read %d samples, want 200", len(got))
	}
	for i := range 100 {
		if got[2*i] != int16(i) || got[2*i+1] != int16(-i) {
			t.Fatalf("frame %d = (%d, %d), want (%d, %d)", i, got[2*i], got[2*i+1], i, -i)
		}
	}
}

func TestStream_BitDepth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		input    int32
		want     int16
	}{
		{"16-bit", 16, -1234, -1234},
		{"24-bit", 24, 8388607, 32767},
		{"20-bit", 20, -524288, -32768},
		{"8-bit", 8, 127, 32512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := &stream{
				dec:      &mockFrameParser{frames: []*frame.Frame{planar([]int32{tt.input})}},
				channels: 1,
				bitDepth: tt.bitDepth,
			}

			got := readAll(t, s, 2)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("samples = %v, want [%d]", got, tt.want)
			}
		})
	}
}

func TestStream_ParseError(t *testing.T) {
	t.Parallel()

	bad := errors.New("crc mismatch")
	s := &stream{
		dec: &mockFrameParser{
			frames: []*frame.Frame{planar([]int32{7, 8})},
			err:    bad,
		},
		channels: 1,
		bitDepth: 16,
	}

	n, err := s.ReadPCM(make([]byte, 16))
	if !errors.Is(err, bad) {
		t.Fatalf("ReadPCM() error = %v, want %v", err, bad)
	}
	if n != 4 {
		t.Errorf("ReadPCM() n = %d, want 4", n)
	}
}

func TestStream_Close(t *testing.T) {
	t.Parallel()

	s := &stream{dec: &mockFrameParser{}, channels: 1}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
