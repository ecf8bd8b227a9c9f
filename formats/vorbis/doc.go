// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio using github.com/jfreymuth/oggvorbis.
//
// The Vorbis decoder yields float32 values in [-1, 1]; the stream converts
// them to interleaved 16-bit little-endian PCM so every codec hands the
// same representation to the sample source.
//
//	f, _ := os.Open("ambience.ogg")
//	stream, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	defer stream.Close()
package vorbis
