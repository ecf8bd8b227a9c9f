// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/utils"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type stream struct {
	dec        oggReader
	sampleRate int
	channels   int
	floatBuf   []float32
}

func (s *stream) SampleRate() int { return s.sampleRate }
func (s *stream) Channels() int   { return s.channels }
func (s *stream) Close() error    { return nil }

func (s *stream) ReadPCM(dst []byte) (int, error) {
	// Whole frames only, so channels stay aligned across calls.
	want := len(dst) / 2 / s.channels * s.channels
	if want == 0 {
		return 0, nil
	}

	if cap(s.floatBuf) < want {
		s.floatBuf = make([]float32, want)
	}
	s.floatBuf = s.floatBuf[:want]

	// oggvorbis counts individual values, not frames.
	n, err := s.dec.Read(s.floatBuf)
	utils.Float32ToPCM16(dst, s.floatBuf[:n])

	switch {
	case err == nil:
		return n * 2, nil
	case err == io.EOF:
		if n == 0 {
			return 0, io.EOF
		}
		return n * 2, nil
	default:
		return n * 2, fmt.Errorf("reading vorbis packets: %w", err)
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Stream, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	if dec.Channels() < 1 {
		return nil, ErrNotVorbisFile
	}

	return &stream{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
