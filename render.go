// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"context"
	"errors"
	"fmt"

	"github.com/ik5/audmix/device"
	"github.com/ik5/audmix/mixer"
	"github.com/ik5/audmix/utils"
)

// ErrInvalidPeriod is returned by RenderPCM16 for a non-positive period.
var ErrInvalidPeriod = errors.New("render period must be positive")

// RenderPCM16 pulls periods of period frames from drv until no player on
// eng is playing, maxFrames frames have been rendered, or ctx is done. A
// maxFrames of 0 means no limit, in which case a looping player renders
// until ctx is done.
//
// The engine must be configured on drv and started. The mix is returned
// as interleaved 16-bit samples; values outside [-1, 1] are clipped.
//
// Example:
//
//	drv := device.NewOffline()
//	eng := mixer.New(drv)
//	_ = eng.Configure(format, device.UsageMedia)
//	// load and start players, then start the engine
//	pcm, err := audmix.RenderPCM16(ctx, eng, drv, 1024, 0)
func RenderPCM16(ctx context.Context, eng *mixer.Engine, drv *device.Offline, period int, maxFrames int64) ([]int16, error) {
	if period <= 0 {
		return nil, ErrInvalidPeriod
	}

	ch := int(eng.Format().Channels)
	if ch <= 0 {
		return nil, mixer.ErrNoStream
	}

	// Start with about two seconds and grow as needed.
	pcm16 := make([]int16, 0, 2*int(eng.Format().SampleRate)*ch)
	buf := make([]float32, period*ch)

	var rendered int64
	for eng.AnyPlaying() {
		if err := ctx.Err(); err != nil {
			return pcm16, fmt.Errorf("%w", err)
		}

		frames := period
		if maxFrames > 0 {
			if rendered >= maxFrames {
				break
			}
			frames = int(min(int64(period), maxFrames-rendered))
		}

		out := buf[:frames*ch]
		if _, err := drv.Pull(out); err != nil {
			return pcm16, fmt.Errorf("rendering period: %w", err)
		}

		n := len(out)
		if cap(pcm16)-len(pcm16) < n {
			grown := make([]int16, len(pcm16), len(pcm16)+max(n, cap(pcm16)))
			copy(grown, pcm16)
			pcm16 = grown
		}

		start := len(pcm16)
		pcm16 = pcm16[:start+n]
		for i, x := range out {
			pcm16[start+i] = utils.Float32ToInt16(x)
		}

		rendered += int64(frames)
	}

	return pcm16, nil
}
