// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/internal/audiotest"
)

var stereo44 = audio.Format{SampleRate: 44100, Channels: 2}

// fakeCodec returns a prepared stream regardless of input.
type fakeCodec struct {
	stream audio.Stream
	err    error
}

func (f fakeCodec) Decode(io.Reader) (audio.Stream, error) {
	return f.stream, f.err
}

// riffHeader is just enough for the sniffer to pick the wav codec.
var riffHeader = []byte("RIFF\x00\x00\x00\x00WAVEfmt ")

func fakeDecoder(codec audio.Decoder, opts ...Option) *Decoder {
	reg := audio.NewRegistry()
	reg.Register(FormatWAV, codec)
	return New(reg, opts...)
}

func int16s(b []byte) []int16 {
	out := make([]int16, len(b)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(b[2*i:]))
	}
	return out
}

func TestDecode_WAV(t *testing.T) {
	t.Parallel()

	data := audiotest.WAV16(44100, 2, 1, -1, 2, -2, 3, -3)

	pcm, err := Default().Decode(BytesRange(data), stereo44)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if pcm.Format != stereo44 {
		t.Errorf("Format = %v, want %v", pcm.Format, stereo44)
	}

	if pcm.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", pcm.Frames())
	}

	want := []int16{1, -1, 2, -2, 3, -3}
	got := int16s(pcm.Data)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDecode_AIFF(t *testing.T) {
	t.Parallel()

	data := audiotest.AIFF16(44100, 2, 10, 20, 30, 40)

	pcm, err := Default().Decode(BytesRange(data), stereo44)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if pcm.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", pcm.Frames())
	}
}

func TestDecode_RangeInsideLargerBlob(t *testing.T) {
	t.Parallel()

	clip := audiotest.WAV16(44100, 2, 7, 8)
	blob := append([]byte("some unrelated header bytes"), clip...)
	blob = append(blob, []byte("trailing junk")...)

	br := ByteRange{
		Reader: bytes.NewReader(blob),
		Offset: int64(len("some unrelated header bytes")),
		Length: int64(len(clip)),
	}

	pcm, err := Default().Decode(br, stereo44)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got := int16s(pcm.Data)
	if len(got) != 2 || got[0] != 7 || got[1] != 8 {
		t.Errorf("samples = %v, want [7 8]", got)
	}
}

func TestDecode_FormatMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		data      []byte
		wantField string
		wantFile  int32
	}{
		{"sample rate", audiotest.WAV16(48000, 2, 0, 0), "sample rate", 48000},
		{"channel count", audiotest.WAV16(44100, 1, 0, 0), "channel count", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Default().Decode(BytesRange(tt.data), stereo44)
			if !errors.Is(err, audio.ErrFormatMismatch) {
				t.Fatalf("Decode() error = %v, want %v", err, audio.ErrFormatMismatch)
			}

			var mm *MismatchError
			if !errors.As(err, &mm) {
				t.Fatalf("Decode() error %T is not *MismatchError", err)
			}
			if mm.Field != tt.wantField || mm.File != tt.wantFile {
				t.Errorf("MismatchError = %+v, want field %q file %d", mm, tt.wantField, tt.wantFile)
			}
		})
	}
}

func TestDecode_SetupFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		br   ByteRange
	}{
		{"nil reader", ByteRange{Length: 10}},
		{"negative offset", ByteRange{Reader: bytes.NewReader([]byte("x")), Offset: -1, Length: 1}},
		{"empty range", BytesRange(nil)},
		{"unknown container", BytesRange([]byte("plain text, not audio"))},
		{"broken wav", BytesRange([]byte("RIFF\x10\x00\x00\x00WAVEjunkjunk"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Default().Decode(tt.br, stereo44)
			if !errors.Is(err, ErrDecodeSetupFailed) {
				t.Errorf("Decode() error = %v, want %v", err, ErrDecodeSetupFailed)
			}
		})
	}
}

func TestDecode_UndeterminedFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stream *audiotest.MockStream
	}{
		{"sample rate", audiotest.NewSilentStream(0, 2, 10)},
		{"channel count", audiotest.NewSilentStream(44100, 0, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dec := fakeDecoder(fakeCodec{stream: tt.stream})

			_, err := dec.Decode(BytesRange(riffHeader), stereo44)
			if !errors.Is(err, ErrDecodeSetupFailed) {
				t.Errorf("Decode() error = %v, want %v", err, ErrDecodeSetupFailed)
			}
		})
	}
}

func TestDecode_MissingCodec(t *testing.T) {
	t.Parallel()

	dec := New(audio.NewRegistry())

	_, err := dec.Decode(BytesRange(audiotest.WAV16(44100, 2, 1, 1)), stereo44)
	if !errors.Is(err, ErrDecodeSetupFailed) {
		t.Errorf("Decode() error = %v, want %v", err, ErrDecodeSetupFailed)
	}
}

func TestDecode_MidStreamError(t *testing.T) {
	t.Parallel()

	stream := audiotest.NewConstantStream(44100, 2, 100, 0.25)
	stream.Err = io.ErrUnexpectedEOF

	dec := fakeDecoder(fakeCodec{stream: stream})

	_, err := dec.Decode(BytesRange(riffHeader), stereo44)
	if !errors.Is(err, ErrDecodeFailed) {
		t.Fatalf("Decode() error = %v, want %v", err, ErrDecodeFailed)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Decode() error = %v, want it to wrap %v", err, io.ErrUnexpectedEOF)
	}
}

// stalledStream never produces data nor reaches the end.
type stalledStream struct{}

func (stalledStream) SampleRate() int             { return 44100 }
func (stalledStream) Channels() int               { return 2 }
func (stalledStream) ReadPCM([]byte) (int, error) { return 0, nil }
func (stalledStream) Close() error                { return nil }

func TestDecode_NoProgress(t *testing.T) {
	t.Parallel()

	dec := fakeDecoder(fakeCodec{stream: stalledStream{}})

	_, err := dec.Decode(BytesRange(riffHeader), stereo44)
	if !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("Decode() error = %v, want %v", err, io.ErrNoProgress)
	}
}

func TestDecode_ChunkSizeDoesNotChangeOutput(t *testing.T) {
	t.Parallel()

	const frames = 1000

	for _, size := range []int{2, 6, 64, 4096} {
		stream := audiotest.NewSineStream(44100, 2, frames, 440)
		dec := fakeDecoder(fakeCodec{stream: stream}, WithChunkSize(size))

		pcm, err := dec.Decode(BytesRange(riffHeader), stereo44)
		if err != nil {
			t.Fatalf("chunk %d: Decode() error = %v", size, err)
		}

		if pcm.Frames() != frames {
			t.Errorf("chunk %d: Frames() = %d, want %d", size, pcm.Frames(), frames)
		}
	}
}

func TestFileRange(t *testing.T) {
	t.Parallel()

	clip := audiotest.WAV16(44100, 2, 5, 6, 7, 8)
	path := filepath.Join(t.TempDir(), "bundle.bin")
	if err := os.WriteFile(path, append([]byte("HDR!"), clip...), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	br, err := FileRange(f, 4, 0)
	if err != nil {
		t.Fatalf("FileRange() error = %v", err)
	}

	if br.Length != int64(len(clip)) {
		t.Errorf("Length = %d, want %d", br.Length, len(clip))
	}

	pcm, err := Default().Decode(br, stereo44)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if pcm.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", pcm.Frames())
	}
}

func TestMismatchError_Message(t *testing.T) {
	t.Parallel()

	err := &MismatchError{Field: "sample rate", File: 48000, Stream: 44100}
	want := "resampling audio files is not supported: the sample rate of the audio file, 48000, doesn't match the sample rate of the stream, 44100"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	err = &MismatchError{Field: "channel count", File: 1, Stream: 2}
	want = "the channel count of the audio file, 1, doesn't match the channel count of the stream, 2"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestDefaultRegistry_Formats(t *testing.T) {
	t.Parallel()

	got := DefaultRegistry().Formats()
	want := []string{"aiff", "flac", "mp3", "vorbis", "wav"}

	if len(got) != len(want) {
		t.Fatalf("Formats() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Formats()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
