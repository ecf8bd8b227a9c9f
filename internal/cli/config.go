// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management commands",
	Long:  "Commands for inspecting and validating audmix configuration.",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration",
	Long:  "Validate the current configuration file, environment variables and flags.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(); err != nil {
			slog.Error("configuration validation failed", "error", err)
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid")
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the effective configuration after files, environment and flags are applied.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Current Configuration:")
		fmt.Fprintf(out, "  Stream:\n")
		fmt.Fprintf(out, "    Format: %s\n", cfg.Format())
		fmt.Fprintf(out, "    Usage: %s\n", cfg.Usage())
		fmt.Fprintf(out, "  Device:\n")
		fmt.Fprintf(out, "    Backend: %s\n", cfg.Device.Backend)
		fmt.Fprintf(out, "    Buffer: %s\n", cfg.Device.Buffer)
		fmt.Fprintf(out, "  Logging:\n")
		fmt.Fprintf(out, "    Level: %s\n", cfg.Logging.Level)
		fmt.Fprintf(out, "    Format: %s\n", cfg.Logging.Format)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)
}
