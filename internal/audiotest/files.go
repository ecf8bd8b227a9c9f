// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// WAV16 builds a canonical 44-byte-header 16-bit PCM WAV file in memory.
func WAV16(sampleRate, channels int, samples ...int16) []byte {
	var buf bytes.Buffer

	dataSize := uint32(len(samples) * 2)
	blockAlign := uint16(channels * 2)

	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate)*uint32(blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, blockAlign)
	_ = binary.Write(&buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, dataSize)
	_ = binary.Write(&buf, binary.LittleEndian, samples)

	return buf.Bytes()
}

// AIFF16 builds a 16-bit PCM AIFF file in memory.
func AIFF16(sampleRate, channels int, samples ...int16) []byte {
	var buf bytes.Buffer

	frames := uint32(0)
	if channels > 0 {
		frames = uint32(len(samples) / channels)
	}
	dataSize := uint32(len(samples) * 2)

	buf.WriteString("FORM")
	// COMM is 8+18 bytes, SSND is 8+8+data.
	_ = binary.Write(&buf, binary.BigEndian, 4+26+16+dataSize)
	buf.WriteString("AIFF")

	buf.WriteString("COMM")
	_ = binary.Write(&buf, binary.BigEndian, uint32(18))
	_ = binary.Write(&buf, binary.BigEndian, uint16(channels))
	_ = binary.Write(&buf, binary.BigEndian, frames)
	_ = binary.Write(&buf, binary.BigEndian, uint16(16))
	buf.Write(extended80(uint64(sampleRate)))

	buf.WriteString("SSND")
	_ = binary.Write(&buf, binary.BigEndian, 8+dataSize)
	_ = binary.Write(&buf, binary.BigEndian, uint32(0))
	_ = binary.Write(&buf, binary.BigEndian, uint32(0))
	_ = binary.Write(&buf, binary.BigEndian, samples)

	return buf.Bytes()
}

// extended80 encodes a positive integer as an IEEE 754 80-bit extended float.
func extended80(v uint64) []byte {
	out := make([]byte, 10)
	if v == 0 {
		return out
	}

	shift := bits.Len64(v) - 1
	binary.BigEndian.PutUint16(out, uint16(16383+shift))
	binary.BigEndian.PutUint64(out[2:], v<<(63-shift))

	return out
}
