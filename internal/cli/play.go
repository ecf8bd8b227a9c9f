// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/audmix/device"
)

// pollInterval is how often play checks whether any clip is still playing.
const pollInterval = 50 * time.Millisecond

var errOfflinePlay = errors.New("the offline backend cannot play in real time; use the render command")

var playOpts clipOptions

var playCmd = &cobra.Command{
	Use:   "play FILE...",
	Short: "Play clips together until they finish",
	Long: `Play loads every FILE, starts them at the same time and waits until all of
them have finished. With --loop it plays until interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlay,
}

func init() {
	playOpts.register(playCmd)
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.Device.Backend == device.BackendOffline {
		return errOfflinePlay
	}

	drv, err := device.NewDriver(cfg.Device.Backend, cfg.Device.Buffer)
	if err != nil {
		return fmt.Errorf("failed to open backend: %w", err)
	}

	eng, ids, err := openEngine(cfg, drv, args, playOpts)
	if err != nil {
		return err
	}
	defer eng.Close()

	playAll(eng, ids)
	if err := eng.Start(); err != nil {
		return fmt.Errorf("failed to start stream: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for eng.AnyPlaying() {
		select {
		case <-ctx.Done():
			slog.Info("interrupted, stopping playback")
			return nil
		case <-ticker.C:
		}
	}

	return nil
}
