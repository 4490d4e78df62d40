package cli

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/wheelpicker/assets/icon"
	"github.com/depeter/wheelpicker/internal/app"
	"github.com/depeter/wheelpicker/internal/ui"
)

func newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the picker in a window (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd.Context())
		},
	}
}

func runGUI(ctx context.Context) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	if err := ui.InitFonts(goregular.TTF); err != nil {
		return fmt.Errorf("init fonts: %w", err)
	}

	game, err := app.NewGame(cfg, logger)
	if err != nil {
		return err
	}
	ebiten.SetWindowIcon(icon.Generate())

	logger.Debug("opening window", "items", len(cfg.Picker.Items), "axis", cfg.Picker.Axis)
	return game.Run("Wheel Picker")
}
