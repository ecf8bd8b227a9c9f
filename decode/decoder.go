// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/formats/aiff"
	"github.com/ik5/audmix/formats/flac"
	"github.com/ik5/audmix/formats/mp3"
	"github.com/ik5/audmix/formats/vorbis"
	"github.com/ik5/audmix/formats/wav"
	"golang.org/x/sync/errgroup"
)

const (
	defaultChunkSize = 16 * 1024
	chunkQueue       = 4
	// maxEmptyReads bounds how many consecutive zero-byte reads a codec may
	// return before the decode is abandoned.
	maxEmptyReads = 100
)

// PCM is a fully decoded clip as interleaved signed 16-bit little-endian
// samples.
type PCM struct {
	Data   []byte
	Format audio.Format
}

// Frames returns the number of whole frames in Data.
func (p PCM) Frames() int64 {
	if p.Format.Channels <= 0 {
		return 0
	}
	return int64(len(p.Data)) / (2 * int64(p.Format.Channels))
}

// Decoder turns a compressed byte range into PCM using the codecs of a
// registry.
type Decoder struct {
	registry  *audio.Registry
	chunkSize int
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithChunkSize sets the size in bytes of each extracted PCM chunk.
func WithChunkSize(n int) Option {
	return func(d *Decoder) {
		if n >= 2 {
			d.chunkSize = n &^ 1
		}
	}
}

// New returns a decoder that looks up codecs in reg.
func New(reg *audio.Registry, opts ...Option) *Decoder {
	d := &Decoder{
		registry:  reg,
		chunkSize: defaultChunkSize,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Default returns a decoder backed by DefaultRegistry.
func Default() *Decoder {
	return New(DefaultRegistry())
}

// DefaultRegistry returns a registry holding every bundled codec.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(FormatWAV, wav.Decoder{})
	reg.Register(FormatAIFF, aiff.Decoder{})
	reg.Register(FormatVorbis, vorbis.Decoder{})
	reg.Register(FormatFLAC, flac.Decoder{})
	reg.Register(FormatMP3, mp3.Decoder{})

	return reg
}

// Decode decodes br completely and checks it against expected. It blocks
// until the codec reports end of stream and must not be called from an
// audio callback.
func (d *Decoder) Decode(br ByteRange, expected audio.Format) (PCM, error) {
	if err := br.validate(); err != nil {
		return PCM{}, err
	}

	sec := br.section()

	key, ok := Sniff(sec)
	if !ok {
		return PCM{}, fmt.Errorf("%w: unrecognized container", ErrDecodeSetupFailed)
	}

	codec, ok := d.registry.Get(key)
	if !ok {
		return PCM{}, fmt.Errorf("%w: no codec registered for %s", ErrDecodeSetupFailed, key)
	}

	stream, err := codec.Decode(sec)
	if err != nil {
		return PCM{}, fmt.Errorf("%w: %w", ErrDecodeSetupFailed, err)
	}
	defer stream.Close()

	format, err := checkFormat(stream, expected)
	if err != nil {
		return PCM{}, err
	}

	data, err := d.drain(stream, format)
	if err != nil {
		return PCM{}, err
	}

	return PCM{Data: data, Format: format}, nil
}

func checkFormat(stream audio.Stream, expected audio.Format) (audio.Format, error) {
	rate := int32(stream.SampleRate())
	if rate <= 0 {
		return audio.Format{}, fmt.Errorf("%w: could not determine sample rate", ErrDecodeSetupFailed)
	}
	if rate != expected.SampleRate {
		return audio.Format{}, &MismatchError{Field: fieldSampleRate, File: rate, Stream: expected.SampleRate}
	}

	channels := int32(stream.Channels())
	if channels <= 0 {
		return audio.Format{}, fmt.Errorf("%w: could not determine channel count", ErrDecodeSetupFailed)
	}
	if channels != expected.Channels {
		return audio.Format{}, &MismatchError{Field: fieldChannelCount, File: channels, Stream: expected.Channels}
	}

	return audio.Format{SampleRate: rate, Channels: channels}, nil
}

// drain runs the extract and accumulate loops until the codec signals end
// of stream and every extracted chunk has been collected.
func (d *Decoder) drain(stream audio.Stream, format audio.Format) ([]byte, error) {
	// Chunks hold whole frames so codecs that read frame-aligned always
	// make progress.
	frameBytes := 2 * int(format.Channels)
	size := max(d.chunkSize/frameBytes, 1) * frameBytes

	chunks := make(chan []byte, chunkQueue)

	var g errgroup.Group

	g.Go(func() error {
		defer close(chunks)

		empty := 0
		for {
			buf := make([]byte, size)
			n, err := stream.ReadPCM(buf)
			if n > 0 {
				empty = 0
				chunks <- buf[:n]
			}

			switch {
			case errors.Is(err, io.EOF):
				return nil
			case err != nil:
				return fmt.Errorf("%w: %w", ErrDecodeFailed, err)
			case n == 0:
				empty++
				if empty >= maxEmptyReads {
					return fmt.Errorf("%w: %w", ErrDecodeFailed, io.ErrNoProgress)
				}
			}
		}
	})

	var data []byte
	g.Go(func() error {
		for chunk := range chunks {
			data = append(data, chunk...)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return data, nil
}
