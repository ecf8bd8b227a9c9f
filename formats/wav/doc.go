// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is handled by github.com/go-audio/wav, which walks the RIFF
// chunk list, so files with LIST, fact or other extra chunks before the
// data chunk are accepted.
//
// # Supported Formats
//
// Currently supported:
//   - Integer PCM, 16, 24 and 32 bits per sample
//   - Any channel count
//   - Any sample rate
//
// Every bit depth is delivered as signed 16-bit little-endian PCM.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	stream, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]byte, 8192)
//	n, err := stream.ReadPCM(buf)
//
// # Writing WAV Files
//
// Use WriteWAV16 to create WAV files from interleaved samples:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, 2, samples)
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrOnlyPCMSupported: The fmt chunk is not integer PCM
//   - ErrUnsupportedBitDepth: Bit depth other than 16, 24 or 32
//   - ErrUnsupportedWavLayout: Unsupported WAV file structure
//
// Example:
//
//	stream, err := decoder.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
