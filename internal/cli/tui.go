package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/depeter/wheelpicker/internal/haptics"
	"github.com/depeter/wheelpicker/internal/tui"
	"github.com/depeter/wheelpicker/internal/wheel"
)

func newTUICmd() *cobra.Command {
	var (
		bell    bool
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the picker in the terminal and print the confirmed item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)

			// The alternate screen owns the terminal, so logs go to a file.
			out := io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			logger := newLogger(out, loggerFromContext(ctx).GetLevel())

			wcfg, err := cfg.WheelConfig()
			if err != nil {
				return err
			}

			var h haptics.Haptic = haptics.Nop{}
			if bell {
				h = haptics.Func(func() error {
					_, err := os.Stderr.WriteString("\a")
					return err
				})
			}
			async := haptics.NewAsync(h, logger, 2)
			defer async.Close()

			opts := []wheel.Option{wheel.WithHaptic(async), wheel.WithLogger(logger)}
			if cfg.Picker.DefaultItem != "" {
				opts = append(opts, wheel.WithDefaultItem(cfg.Picker.DefaultItem))
			}
			picker := wheel.New(cfg.Picker.Items, wcfg, opts...)

			model := tui.New(picker, cfg.UI.VisibleItems, logger)
			p := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(ctx),
			)
			if _, err := p.Run(); err != nil {
				return err
			}
			logger.Debug("tui exited", "state", model.Describe())

			if item, ok := model.Chosen(); ok {
				fmt.Fprintln(cmd.OutOrStdout(), item)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&bell, "bell", false, "ring the terminal bell on every item crossed while dragging")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file, e.g. "+filepath.Join(os.TempDir(), "wheelpicker.log"))
	return cmd
}
