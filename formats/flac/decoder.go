// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/utils"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameParser is an interface for flac.Stream to allow testing
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

type stream struct {
	dec        frameParser
	closer     io.Closer
	sampleRate int
	channels   int
	bitDepth   int

	// pending holds interleaved samples of a frame not yet handed out.
	pending []int16
}

func (s *stream) SampleRate() int { return s.sampleRate }
func (s *stream) Channels() int   { return s.channels }

func (s *stream) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *stream) ReadPCM(dst []byte) (int, error) {
	want := len(dst) / 2 / s.channels * s.channels
	if want == 0 {
		return 0, nil
	}

	written := 0
	for written < want {
		if len(s.pending) == 0 {
			f, err := s.dec.ParseNext()
			if errors.Is(err, io.EOF) {
				if written == 0 {
					return 0, io.EOF
				}
				break
			}
			if err != nil {
				return written * 2, fmt.Errorf("parsing flac frame: %w", err)
			}
			s.interleave(f)
			continue
		}

		n := min(len(s.pending), want-written)
		for i, v := range s.pending[:n] {
			binary.LittleEndian.PutUint16(dst[2*(written+i):], uint16(v))
		}
		s.pending = s.pending[n:]
		written += n
	}

	return written * 2, nil
}

// interleave converts the planar subframes of f into pending.
func (s *stream) interleave(f *frame.Frame) {
	if len(f.Subframes) < s.channels {
		return
	}

	block := int(f.BlockSize)
	for _, sub := range f.Subframes[:s.channels] {
		block = min(block, len(sub.Samples))
	}

	need := block * s.channels
	if cap(s.pending) < need {
		s.pending = make([]int16, need)
	}
	s.pending = s.pending[:need]

	for i := range block {
		for ch := range s.channels {
			s.pending[i*s.channels+ch] = utils.IntToInt16(int(f.Subframes[ch].Samples[i]), s.bitDepth)
		}
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Stream, error) {
	dec, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := dec.Info
	if info == nil || info.NChannels == 0 {
		_ = dec.Close()
		return nil, ErrNotFlacFile
	}

	return &stream{
		dec:        dec,
		closer:     dec,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
	}, nil
}
