// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// ByteRange addresses a compressed asset inside a larger readable object,
// such as a sound packed at an offset of an archive or bundle file.
type ByteRange struct {
	Reader io.ReaderAt
	Offset int64
	Length int64
}

// BytesRange returns a range spanning all of b.
func BytesRange(b []byte) ByteRange {
	return ByteRange{
		Reader: bytes.NewReader(b),
		Length: int64(len(b)),
	}
}

// FileRange returns a range over f starting at offset. A length of zero
// or less extends the range to the end of the file.
func FileRange(f *os.File, offset, length int64) (ByteRange, error) {
	if length <= 0 {
		info, err := f.Stat()
		if err != nil {
			return ByteRange{}, fmt.Errorf("stat %s: %w", f.Name(), err)
		}
		length = info.Size() - offset
	}

	return ByteRange{Reader: f, Offset: offset, Length: length}, nil
}

func (br ByteRange) validate() error {
	switch {
	case br.Reader == nil:
		return fmt.Errorf("%w: no reader", ErrDecodeSetupFailed)
	case br.Offset < 0:
		return fmt.Errorf("%w: negative offset %d", ErrDecodeSetupFailed, br.Offset)
	case br.Length <= 0:
		return fmt.Errorf("%w: empty byte range", ErrDecodeSetupFailed)
	}

	return nil
}

func (br ByteRange) section() *io.SectionReader {
	return io.NewSectionReader(br.Reader, br.Offset, br.Length)
}
