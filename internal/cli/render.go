// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/audmix"
	"github.com/ik5/audmix/device"
	"github.com/ik5/audmix/formats/wav"
)

var errEndlessRender = errors.New("--duration is required when looping")

var (
	renderOpts     clipOptions
	renderOutput   string
	renderDuration time.Duration
	renderPeriod   int
)

var renderCmd = &cobra.Command{
	Use:   "render FILE... -o OUT.wav",
	Short: "Mix clips into a 16-bit WAV file",
	Long: `Render mixes every FILE on the offline backend, exactly as play would
start them, and writes the result as 16-bit PCM WAV. It stops when all clips
have finished or after --duration.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	renderOpts.register(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output WAV file")
	renderCmd.Flags().DurationVarP(&renderDuration, "duration", "d", 0, "stop after this much audio (0 renders until all clips finish)")
	renderCmd.Flags().IntVar(&renderPeriod, "period", 1024, "frames rendered per period")
	_ = renderCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderOpts.loop && renderDuration <= 0 {
		return errEndlessRender
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	drv := device.NewOffline()
	eng, ids, err := openEngine(cfg, drv, args, renderOpts)
	if err != nil {
		return err
	}
	defer eng.Close()

	playAll(eng, ids)
	if err := eng.Start(); err != nil {
		return fmt.Errorf("failed to start stream: %w", err)
	}

	format := cfg.Format()
	maxFrames := int64(renderDuration.Seconds() * float64(format.SampleRate))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	pcm, err := audmix.RenderPCM16(ctx, eng, drv, renderPeriod, maxFrames)
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	f, err := os.Create(renderOutput)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := wav.WriteWAV16(f, int(format.SampleRate), int(format.Channels), pcm); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", renderOutput, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	frames := int64(len(pcm) / int(format.Channels))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s of audio to %s\n", format.FrameDuration(frames), renderOutput)

	return nil
}
