// SPDX-License-Identifier: EPL-2.0

package device

import "errors"

var (
	// ErrClosed is returned by operations on a closed stream.
	ErrClosed = errors.New("device stream is closed")

	// ErrNotRunning is returned by Offline.Pull when the stream is not started.
	ErrNotRunning = errors.New("device stream is not running")

	// ErrNoStream is returned by Offline.Pull before any stream was opened.
	ErrNoStream = errors.New("no device stream opened")

	// ErrFormatLocked is returned when a backend that supports a single
	// output format per process is asked for another one.
	ErrFormatLocked = errors.New("output format already fixed for this process")

	// ErrBackendUnavailable is returned by backends not compiled in.
	ErrBackendUnavailable = errors.New("audio backend not available in this build")

	// ErrUnknownBackend is returned by NewDriver for unrecognized names.
	ErrUnknownBackend = errors.New("unknown audio backend")
)
