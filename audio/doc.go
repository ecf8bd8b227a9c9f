// SPDX-License-Identifier: EPL-2.0

// Package audio provides the core audio types shared by the decoders, the
// decode pipeline and the mixer.
//
// This package contains:
//   - Format, the sample rate and channel layout of an output stream
//   - Stream and Decoder, the contract every codec in formats/ implements
//   - Registry for decoder registration by format key
//   - SampleSource, the immutable decoded clip players read from
//
// # Stream Interface
//
// Codecs turn a compressed container into interleaved signed 16-bit
// little-endian PCM:
//
//	type Stream interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadPCM(dst []byte) (int, error)
//	    Close() error
//	}
//
// A stream is finished when ReadPCM returns 0 bytes with io.EOF.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample Sources
//
// A SampleSource holds a whole decoded clip as float32 samples in the range
// [-1.0, 1.0):
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Sources are validated against the stream format on construction:
//
//	src, err := audio.NewSampleSource(pcm, decodedFormat, streamFormat)
//	if errors.Is(err, audio.ErrFormatMismatch) {
//	    // no resampling or channel conversion is attempted
//	}
//
// Once built a source is never modified, so it can be shared by any number
// of players without synchronization.
package audio
