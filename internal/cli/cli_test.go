// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/audmix/formats/wav"
	"github.com/ik5/audmix/internal/audiotest"
)

// The commands share the global viper instance and flag variables, so
// these tests do not run in parallel.

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(out, "audmix version "+Version) {
		t.Errorf("version output = %q", out)
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	a := filepath.Join(dir, "a.wav")
	b := filepath.Join(dir, "b.wav")
	out := filepath.Join(dir, "mix.wav")

	if err := os.WriteFile(a, audiotest.WAV16(8000, 1, 8192, 8192, 8192, 8192), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, audiotest.WAV16(8000, 1, 8192, 8192), 0o600); err != nil {
		t.Fatal(err)
	}

	stdout, err := execute(t, "render", a, b, "-o", out,
		"--sample-rate", "8000", "--channels", "1", "--backend", "offline", "--period", "2")
	if err != nil {
		t.Fatalf("render error = %v\n%s", err, stdout)
	}
	if !strings.Contains(stdout, "wrote 500µs of audio") {
		t.Errorf("render output = %q", stdout)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Open(%s) error = %v", out, err)
	}
	defer f.Close()

	stream, err := wav.Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if stream.SampleRate() != 8000 || stream.Channels() != 1 {
		t.Errorf("output format = %dHz/%dch, want 8000Hz/1ch", stream.SampleRate(), stream.Channels())
	}

	t.Run("loop needs duration", func(t *testing.T) {
		_, err := execute(t, "render", a, "-o", out, "--loop")
		if !errors.Is(err, errEndlessRender) {
			t.Errorf("render --loop error = %v, want %v", err, errEndlessRender)
		}
	})
}

func TestPlayCommand_RejectsOffline(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "play", "missing.wav", "--backend", "offline")
	if !errors.Is(err, errOfflinePlay) {
		t.Errorf("play error = %v, want %v", err, errOfflinePlay)
	}
}
