// SPDX-License-Identifier: EPL-2.0

// Package decode turns a compressed audio asset into 16-bit PCM that
// matches a stream's format.
//
// The asset is addressed by a ByteRange, so a clip may live at an offset
// inside a larger file. The container is identified from its magic bytes
// and decoded by the codec registered for it:
//
//	dec := decode.Default()
//	pcm, err := dec.Decode(decode.BytesRange(data), audio.Format{SampleRate: 44100, Channels: 2})
//	var mm *decode.MismatchError
//	switch {
//	case errors.As(err, &mm):
//	    // wrong sample rate or channel count, nothing is resampled
//	case errors.Is(err, decode.ErrDecodeSetupFailed):
//	    // not audio, or format unknown
//	}
//
// Decode is synchronous. One goroutine extracts PCM chunks from the codec
// while another accumulates them, and the call returns once both finish.
package decode
