// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"context"
	"errors"
	"testing"

	"github.com/ik5/audmix/internal/audiotest"
	"github.com/ik5/audmix/mixer"
)

func TestRenderPCM16(t *testing.T) {
	t.Parallel()

	eng, drv := newEngine(t)

	id, err := eng.AddSource(audiotest.Constant(mono8k, 10, 0.5))
	if err != nil {
		t.Fatalf("AddSource() error = %v", err)
	}
	eng.SetPlaying(mixer.Update[bool]{ID: id, Value: true})
	if err := eng.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	pcm, err := RenderPCM16(context.Background(), eng, drv, 4, 0)
	if err != nil {
		t.Fatalf("RenderPCM16() error = %v", err)
	}

	// Three periods of four frames; the last one is partly silent.
	if len(pcm) != 12 {
		t.Fatalf("len(pcm) = %d, want 12", len(pcm))
	}
	for i, s := range pcm {
		want := int16(16383)
		if i >= 10 {
			want = 0
		}
		if s != want {
			t.Errorf("pcm[%d] = %d, want %d", i, s, want)
		}
	}
}

func TestRenderPCM16_Clips(t *testing.T) {
	t.Parallel()

	eng, drv := newEngine(t)

	src := audiotest.Constant(mono8k, 4, 0.75)
	for range 2 {
		id, _ := eng.AddSource(src)
		eng.SetPlaying(mixer.Update[bool]{ID: id, Value: true})
	}
	_ = eng.Start()

	pcm, err := RenderPCM16(context.Background(), eng, drv, 4, 0)
	if err != nil {
		t.Fatalf("RenderPCM16() error = %v", err)
	}
	for i, s := range pcm {
		if s != 32767 {
			t.Errorf("pcm[%d] = %d, want 32767", i, s)
		}
	}
}

func TestRenderPCM16_MaxFrames(t *testing.T) {
	t.Parallel()

	eng, drv := newEngine(t)

	id, _ := eng.AddSource(audiotest.Constant(mono8k, 3, 0.1))
	eng.SetPlaying(mixer.Update[bool]{ID: id, Value: true})
	eng.SetLooping(mixer.Update[bool]{ID: id, Value: true})
	_ = eng.Start()

	pcm, err := RenderPCM16(context.Background(), eng, drv, 4, 10)
	if err != nil {
		t.Fatalf("RenderPCM16() error = %v", err)
	}
	if len(pcm) != 10 {
		t.Errorf("len(pcm) = %d, want 10", len(pcm))
	}
	if !eng.AnyPlaying() {
		t.Error("looping player stopped")
	}
}

func TestRenderPCM16_Errors(t *testing.T) {
	t.Parallel()

	t.Run("bad period", func(t *testing.T) {
		t.Parallel()

		eng, drv := newEngine(t)
		if _, err := RenderPCM16(context.Background(), eng, drv, 0, 0); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("RenderPCM16() error = %v, want %v", err, ErrInvalidPeriod)
		}
	})

	t.Run("canceled", func(t *testing.T) {
		t.Parallel()

		eng, drv := newEngine(t)
		id, _ := eng.AddSource(audiotest.Constant(mono8k, 3, 0.1))
		eng.SetPlaying(mixer.Update[bool]{ID: id, Value: true})
		eng.SetLooping(mixer.Update[bool]{ID: id, Value: true})
		_ = eng.Start()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := RenderPCM16(ctx, eng, drv, 4, 0); !errors.Is(err, context.Canceled) {
			t.Errorf("RenderPCM16() error = %v, want %v", err, context.Canceled)
		}
	})

	t.Run("not started", func(t *testing.T) {
		t.Parallel()

		eng, drv := newEngine(t)
		id, _ := eng.AddSource(audiotest.Constant(mono8k, 3, 0.1))
		eng.SetPlaying(mixer.Update[bool]{ID: id, Value: true})

		if _, err := RenderPCM16(context.Background(), eng, drv, 4, 0); err == nil {
			t.Error("RenderPCM16() on a stream that was never started succeeded")
		}
	})
}
