// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"bytes"
	"io"
)

// Container keys, matching the names the codecs are registered under.
const (
	FormatWAV    = "wav"
	FormatAIFF   = "aiff"
	FormatVorbis = "vorbis"
	FormatFLAC   = "flac"
	FormatMP3    = "mp3"
)

const sniffLen = 12

// Sniff identifies the container of r from its leading magic bytes.
func Sniff(r io.ReaderAt) (string, bool) {
	head := make([]byte, sniffLen)
	n, _ := r.ReadAt(head, 0)

	return sniffHead(head[:n])
}

func sniffHead(head []byte) (string, bool) {
	switch {
	case len(head) >= 12 && bytes.Equal(head[0:4], []byte("RIFF")) && bytes.Equal(head[8:12], []byte("WAVE")):
		return FormatWAV, true
	case len(head) >= 12 && bytes.Equal(head[0:4], []byte("FORM")) &&
		(bytes.Equal(head[8:12], []byte("AIFF")) || bytes.Equal(head[8:12], []byte("AIFC"))):
		return FormatAIFF, true
	case bytes.HasPrefix(head, []byte("OggS")):
		return FormatVorbis, true
	case bytes.HasPrefix(head, []byte("fLaC")):
		return FormatFLAC, true
	case bytes.HasPrefix(head, []byte("ID3")):
		return FormatMP3, true
	case len(head) >= 2 && head[0] == 0xFF && head[1]&0xE0 == 0xE0:
		return FormatMP3, true
	}

	return "", false
}
