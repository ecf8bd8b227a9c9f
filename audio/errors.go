// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrFormatMismatch indicates decoded audio does not match the stream format.
	ErrFormatMismatch = errors.New("audio format mismatch")

	// ErrInvalidFormat indicates a format with a non-positive rate or channel count.
	ErrInvalidFormat = errors.New("invalid audio format")

	// ErrEmptySource indicates decoded PCM that holds no complete frame.
	ErrEmptySource = errors.New("sample source holds no frames")
)
