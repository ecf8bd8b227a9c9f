// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio using
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 already produces interleaved 16-bit little-endian PCM, so the
// returned stream passes its output through unchanged. The stream always
// reports two channels; mono files are upmixed by the decoder itself.
//
//	f, _ := os.Open("jingle.mp3")
//	stream, err := mp3.Decoder{}.Decode(f)
//	if errors.Is(err, mp3.ErrNotMP3File) {
//	    // not MP3
//	}
//
// The sample rate is taken from the first frame header. Files with a
// leading ID3v2 tag are accepted.
package mp3
