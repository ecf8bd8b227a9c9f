// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMP3File is returned when no MPEG audio frame header can be found.
var ErrNotMP3File = errors.New("not an MP3 file")
