// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files into
// interleaved 16-bit little-endian PCM.
//
// Decoding is delegated to github.com/go-audio/aiff. Integer PCM at 16, 24
// and 32 bits per sample is accepted; wider samples are narrowed to 16 bits
// by dropping the low-order bits. Compressed AIFF-C payloads are rejected.
//
//	f, _ := os.Open("click.aif")
//	stream, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not AIFF
//	}
//	buf := make([]byte, 4096)
//	n, err := stream.ReadPCM(buf)
//
// AIFF stores samples big-endian; the returned stream always yields
// little-endian bytes so it can feed audio.NewSampleSource directly.
package aiff
