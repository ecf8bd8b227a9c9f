// SPDX-License-Identifier: EPL-2.0

// Package device abstracts an audio output stream driven by a render
// callback.
//
// A Driver opens a Stream for a format and a usage category. The stream
// calls the supplied Callback once per period with a float32 buffer that
// the callback must fill completely. Start, Pause and Close are requests;
// State reports the status the backend actually reached, which may lag
// behind (Starting settles to Started once the first period is rendered).
//
// Three backends are provided:
//   - Oto, backed by github.com/ebitengine/oto/v3
//   - PortAudio, backed by github.com/gordonklaus/portaudio when built
//     with -tags portaudio
//   - Offline, which renders only when Pull is called
//
// Every backend guarantees that Close returns only after the callback in
// flight, if any, has returned, and that no callback runs afterwards.
package device
