// SPDX-License-Identifier: EPL-2.0

// Package audmix is a real-time mixing engine for short audio clips.
//
// Clips are decoded once into memory and played by any number of
// independent players that are summed into a single output stream. Each
// player can be started, stopped, looped, seeked and given its own volume
// while the stream is running.
//
// The work is split across subpackages:
//   - mixer: the Engine, its lifecycle and the per-clip Player
//   - device: output backends (oto, PortAudio, and an offline backend)
//   - decode: container sniffing and full-clip decoding to 16-bit PCM
//   - formats/*: WAV, AIFF, MP3, Ogg Vorbis and FLAC codecs
//   - audio: the shared Format, SampleSource and codec contracts
//
// This package adds file helpers on top of the engine:
//
//	drv := device.NewOto(20 * time.Millisecond)
//	eng := mixer.New(drv)
//	_ = eng.Configure(audio.Format{SampleRate: 44100, Channels: 2}, device.UsageGame)
//
//	ids, err := audmix.LoadFiles(eng, "kick.wav", "snare.flac")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	_ = eng.Start()
//	eng.SetPlaying(mixer.Update[bool]{ID: ids[0], Value: true})
//
// RenderPCM16 drives an engine on an offline device and collects the mix
// as 16-bit samples, which is how the render command writes WAV files.
//
// # Format
//
// A stream has one sample rate and channel count, fixed by Configure.
// Every clip must already be in that format: there is no resampling and
// no channel conversion. A mismatching clip fails to load with an error
// that wraps audio.ErrFormatMismatch.
package audmix
