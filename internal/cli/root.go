// SPDX-License-Identifier: EPL-2.0

// Package cli implements the audmix command line.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ik5/audmix"
	"github.com/ik5/audmix/device"
	"github.com/ik5/audmix/internal/config"
	"github.com/ik5/audmix/internal/logger"
	"github.com/ik5/audmix/mixer"
)

var (
	cfgFile string
	envFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "audmix",
	Short: "Mix and play short audio clips",
	Long: `audmix decodes WAV, AIFF, MP3, Ogg Vorbis and FLAC clips into memory and
mixes any number of them into one output stream.

Every clip must match the stream's sample rate and channel count; there is
no resampling. Use --sample-rate and --channels, a config file or AUDMIX_*
environment variables to pick the stream format.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	flags.StringVar(&envFile, "env-file", "", "environment file (default is ./.env)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	flags.Int("sample-rate", 44100, "stream sample rate in Hz")
	flags.Int("channels", 2, "stream channel count")
	flags.String("usage", device.UsageMedia.String(), "stream usage (media, game, alarm, ...)")
	flags.String("backend", device.BackendOto, "output backend (oto, portaudio, offline)")
	flags.Duration("buffer", 20*time.Millisecond, "device buffer duration")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")

	_ = viper.BindPFlag("stream.sample_rate", flags.Lookup("sample-rate"))
	_ = viper.BindPFlag("stream.channels", flags.Lookup("channels"))
	_ = viper.BindPFlag("stream.usage", flags.Lookup("usage"))
	_ = viper.BindPFlag("device.backend", flags.Lookup("backend"))
	_ = viper.BindPFlag("device.buffer", flags.Lookup("buffer"))
	_ = viper.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", flags.Lookup("log-format"))
}

// initConfig applies flags that override configuration values.
func initConfig() {
	if verbose {
		viper.Set("logging.level", "debug")
	}
}

// loadConfig loads, validates and applies the configuration.
func loadConfig() (*config.Config, error) {
	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}
	if err := config.LoadEnv(envFiles...); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)

	return cfg, nil
}

// clipOptions are the per-clip flags shared by play, render and board.
type clipOptions struct {
	loop   bool
	volume float64
}

func (o *clipOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.loop, "loop", "l", false, "loop every clip")
	cmd.Flags().Float64Var(&o.volume, "volume", 1, "volume of every clip, between 0 and 1")
}

// openEngine configures an engine on drv and loads paths into it. The
// caller must close the returned engine.
func openEngine(cfg *config.Config, drv device.Driver, paths []string, opts clipOptions) (*mixer.Engine, []string, error) {
	eng := mixer.New(drv, mixer.WithLogger(slog.Default()))

	if err := eng.Configure(cfg.Format(), cfg.Usage()); err != nil {
		return nil, nil, fmt.Errorf("failed to configure stream: %w", err)
	}

	ids, err := audmix.LoadFiles(eng, paths...)
	if err != nil {
		_ = eng.Close()
		return nil, nil, err
	}

	volumes := make([]mixer.Update[float64], len(ids))
	loops := make([]mixer.Update[bool], len(ids))
	for i, id := range ids {
		volumes[i] = mixer.Update[float64]{ID: id, Value: opts.volume}
		loops[i] = mixer.Update[bool]{ID: id, Value: opts.loop}
	}

	if err := eng.SetVolume(volumes...); err != nil {
		_ = eng.Close()
		return nil, nil, err
	}
	eng.SetLooping(loops...)

	return eng, ids, nil
}

func playAll(eng *mixer.Engine, ids []string) {
	updates := make([]mixer.Update[bool], len(ids))
	for i, id := range ids {
		updates[i] = mixer.Update[bool]{ID: id, Value: true}
	}
	eng.SetPlaying(updates...)
}
