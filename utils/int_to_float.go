// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// Int16ToFloat32 normalizes a 16-bit sample into [-1.0, 1.0).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// PCM16ToFloat32 converts signed 16-bit little-endian PCM bytes in src into
// normalized float32 samples in dst. It returns the number of samples
// written, bounded by both len(dst) and len(src)/2.
func PCM16ToFloat32(dst []float32, src []byte) int {
	n := min(len(dst), len(src)/2)
	for i := range n {
		dst[i] = Int16ToFloat32(int16(binary.LittleEndian.Uint16(src[2*i:])))
	}

	return n
}

// IntToInt16 rescales an integer sample of the given bit depth (1 to 32)
// to 16 bits. Other depths pass the value through unchanged.
func IntToInt16(v int, bitDepth int) int16 {
	switch {
	case bitDepth < 1 || bitDepth > 32:
		return int16(v)
	case bitDepth > 16:
		return int16(v >> (bitDepth - 16))
	default:
		return int16(v << (16 - bitDepth))
	}
}
