// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrNotWavFile", ErrNotWavFile, "not a WAV file"},
		{"ErrUnsupportedWavLayout", ErrUnsupportedWavLayout, "unsupported WAV layout"},
		{"ErrOnlyPCMSupported", ErrOnlyPCMSupported, "only integer PCM WAV is supported"},
		{"ErrUnsupportedBitDepth", ErrUnsupportedBitDepth, "unsupported WAV bit depth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.want)
			}
		})
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	errs := []error{ErrNotWavFile, ErrUnsupportedWavLayout, ErrOnlyPCMSupported, ErrUnsupportedBitDepth}

	for i, a := range errs {
		for j, b := range errs {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, 8)
	if !errors.Is(wrapped, ErrUnsupportedBitDepth) {
		t.Error("errors.Is() failed for wrapped ErrUnsupportedBitDepth")
	}
}
