// SPDX-License-Identifier: EPL-2.0

// Package flac decodes Free Lossless Audio Codec files using
// github.com/mewkiz/flac.
//
// FLAC frames are planar and may carry any bit depth from 4 to 32 bits.
// The stream interleaves each frame's subframes and narrows the samples
// to 16 bits, buffering the part of a frame that did not fit into the
// caller's buffer.
package flac
