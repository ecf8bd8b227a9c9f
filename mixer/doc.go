// SPDX-License-Identifier: EPL-2.0

// Package mixer implements a real-time engine that mixes many
// independently controlled clips into one output stream.
//
// An Engine owns one device stream and a registry of Players. Each
// Player is a cursor over an immutable audio.SampleSource with its own
// playing, looping, volume and position state.
//
//	eng := mixer.New(device.NewOto(20 * time.Millisecond))
//	_ = eng.Configure(audio.Format{SampleRate: 44100, Channels: 2}, device.UsageGame)
//	id, err := eng.Load(decode.BytesRange(clickWAV))
//	_ = eng.Start()
//	eng.SetPlaying(mixer.Update[bool]{ID: id, Value: true})
//
// # Lifecycle
//
// The stream moves through Closed, Initialized, Open and Paused:
//
//	Configure  Closed -> Initialized
//	Start      Initialized, Paused -> Open
//	Pause      Open -> Paused
//	Close      any -> Closed
//
// Illegal transitions return one of the lifecycle errors (ErrNoStream,
// ErrAlreadyConfigured and so on). State is read back from the device,
// so a stream the device is still starting already reports Open.
//
// # Rendering
//
// The device calls the engine once per period. The engine zeroes the
// buffer and lets every player add its samples, scaled by its volume.
// The render path takes no locks and allocates nothing: the registry is
// published as an immutable snapshot through an atomic pointer, and all
// player state is atomic.
//
// A non-looping player that reaches the end of its clip renders the
// remaining frames, rewinds to the start and stops.
//
// # Control
//
// SetPlaying, SetLooping, SetVolume and SeekTo take batches of Update
// values. Updates for unknown ids are skipped so one stale id never
// fails a batch.
package mixer
