// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audmix/audio"
)

// go-mp3 always emits interleaved stereo, duplicating mono input.
const outputChannels = 2

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type stream struct {
	dec        mp3Reader
	sampleRate int
}

func (s *stream) SampleRate() int { return s.sampleRate }
func (s *stream) Channels() int   { return outputChannels }
func (s *stream) Close() error    { return nil }

// ReadPCM hands dst straight to go-mp3, whose output already is 16-bit
// little-endian PCM.
func (s *stream) ReadPCM(dst []byte) (int, error) {
	dst = dst[:len(dst)&^1]
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst)
	n &^= 1

	switch {
	case err == nil, errors.Is(err, io.EOF):
		if n == 0 && err != nil {
			return 0, io.EOF
		}
		return n, nil
	default:
		return n, fmt.Errorf("reading mp3 frames: %w", err)
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Stream, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return &stream{
		dec:        dec,
		sampleRate: dec.SampleRate(),
	}, nil
}
