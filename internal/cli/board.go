// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ik5/audmix/device"
)

var boardOpts clipOptions

var boardCmd = &cobra.Command{
	Use:   "board FILE...",
	Short: "Interactive soundboard",
	Long: `Board loads every FILE and shows a soundboard to trigger, loop, seek and
change the volume of each clip while the stream runs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBoard,
}

func init() {
	boardOpts.register(boardCmd)
	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
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

	eng, ids, err := openEngine(cfg, drv, args, boardOpts)
	if err != nil {
		return err
	}
	defer eng.Close()

	if err := eng.Start(); err != nil {
		return fmt.Errorf("failed to start stream: %w", err)
	}

	pads := make([]pad, len(ids))
	for i, id := range ids {
		pads[i] = pad{id: id, name: filepath.Base(args[i])}
	}

	p := tea.NewProgram(newBoardModel(eng, pads), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("soundboard: %w", err)
	}

	return nil
}
