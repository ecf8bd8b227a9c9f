// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"errors"
	"fmt"

	"github.com/ik5/audmix/audio"
)

var (
	// ErrDecodeSetupFailed is returned when the byte range cannot be opened
	// as an audio container or its format cannot be determined.
	ErrDecodeSetupFailed = errors.New("failed to load sound file")

	// ErrDecodeFailed is returned when the codec fails after decoding started.
	ErrDecodeFailed = errors.New("decoding sound file failed")
)

// MismatchError reports a decoded sample rate or channel count that
// differs from the stream's. It unwraps to audio.ErrFormatMismatch.
type MismatchError struct {
	// Field is either "sample rate" or "channel count".
	Field  string
	File   int32
	Stream int32
}

func (e *MismatchError) Error() string {
	if e.Field == fieldSampleRate {
		return fmt.Sprintf(
			"resampling audio files is not supported: the sample rate of the audio file, %d, doesn't match the sample rate of the stream, %d",
			e.File, e.Stream,
		)
	}

	return fmt.Sprintf(
		"the %s of the audio file, %d, doesn't match the %s of the stream, %d",
		e.Field, e.File, e.Field, e.Stream,
	)
}

func (e *MismatchError) Unwrap() error { return audio.ErrFormatMismatch }

const (
	fieldSampleRate   = "sample rate"
	fieldChannelCount = "channel count"
)
