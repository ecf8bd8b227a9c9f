// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"github.com/ik5/audmix/audio"
)

// Ramp returns a sample source of the given length whose every sample in
// frame i equals float32(i)/scale. It makes cursor positions observable in
// mixed output.
func Ramp(format audio.Format, frames int, scale float32) *audio.SampleSource {
	ch := int(format.Channels)
	samples := make([]float32, frames*ch)
	for i := range frames {
		for c := range ch {
			samples[i*ch+c] = float32(i) / scale
		}
	}

	src, err := audio.NewSampleSourceFloat(samples, format)
	if err != nil {
		panic(err)
	}

	return src
}

// Constant returns a sample source where every sample equals value.
func Constant(format audio.Format, frames int, value float32) *audio.SampleSource {
	samples := make([]float32, frames*int(format.Channels))
	for i := range samples {
		samples[i] = value
	}

	src, err := audio.NewSampleSourceFloat(samples, format)
	if err != nil {
		panic(err)
	}

	return src
}
