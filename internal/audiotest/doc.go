// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by the codec, decode and mixer
// tests: synthetic PCM streams, in-memory WAV and AIFF files, and
// ready-made sample sources.
package audiotest
