// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

// ErrNotFlacFile is returned when the input has no valid FLAC signature or
// STREAMINFO block.
var ErrNotFlacFile = errors.New("not a FLAC file")
